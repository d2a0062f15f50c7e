// Package config loads service configuration from an optional .env file, an
// optional slantpath.toml and SLANTPATH_* environment variables, in increasing
// order of precedence.
package config

import (
	"errors"
	"log/slog"
	"math"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/star/slantpath/internal/atmosphere"
	"github.com/star/slantpath/internal/batch"
	"github.com/star/slantpath/internal/sweep"
)

// EnvPrefix is prepended to every key when read from the environment.
const EnvPrefix = "SLANTPATH"

// DefaultSearchPaths are the directories searched for slantpath.toml.
var DefaultSearchPaths = []string{"/etc/slantpath", "."}

// Config is the full service configuration.
type Config struct {
	HTTPAddr       string
	LogLevel       slog.Level
	BatchWidth     batch.Width
	MemoizeProfile bool
	Sweep          sweep.Config
	Atmosphere     atmosphere.Reference
}

// Load reads the configuration. Invalid values are logged and replaced by
// their defaults; Load never fails.
func Load(logger *slog.Logger) Config {
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file loaded", "error", err)
	}
	return load(logger, DefaultSearchPaths...)
}

func load(logger *slog.Logger, paths ...string) Config {
	ref := atmosphere.MeanAnnualGlobal()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("http_addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("batch_width", int(batch.DefaultWidth))
	v.SetDefault("max_sweep_points", 2000)
	v.SetDefault("memoize_profile", true)
	v.SetDefault("surface_water_density", ref.SurfaceWaterDensity)
	v.SetDefault("water_scale_height", ref.WaterScaleHeightKm)

	v.SetConfigName("slantpath")
	v.SetConfigType("toml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			logger.Debug("no config file found", "paths", paths)
		} else {
			logger.Warn("failed to read config file, ignoring it", "error", err)
		}
	} else {
		logger.Info("loaded config file", "path", v.ConfigFileUsed())
	}

	cfg := Config{
		HTTPAddr: v.GetString("http_addr"),
		LogLevel: slog.LevelInfo,
		Sweep: sweep.Config{
			Workers:   runtime.NumCPU(),
			MaxPoints: 2000,
		},
		BatchWidth:     batch.DefaultWidth,
		MemoizeProfile: true,
		Atmosphere:     ref,
	}

	if s := v.GetString("log_level"); s != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(s)); err != nil {
			logger.Warn("invalid SLANTPATH_LOG_LEVEL value, using default", "value", s, "default", "info")
		} else {
			cfg.LogLevel = level
		}
	}

	if n, ok := positiveInt(logger, v, "workers", cfg.Sweep.Workers); ok {
		cfg.Sweep.Workers = n
	}
	if n, ok := positiveInt(logger, v, "batch_width", int(cfg.BatchWidth)); ok {
		cfg.BatchWidth = batch.Width(n)
	}
	if n, ok := positiveInt(logger, v, "max_sweep_points", cfg.Sweep.MaxPoints); ok {
		cfg.Sweep.MaxPoints = n
	}

	if s := v.GetString("memoize_profile"); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			logger.Warn("invalid SLANTPATH_MEMOIZE_PROFILE value, using default", "value", s, "default", true)
		} else {
			cfg.MemoizeProfile = b
		}
	}

	if x, ok := positiveFloat(logger, v, "surface_water_density", ref.SurfaceWaterDensity); ok {
		cfg.Atmosphere.SurfaceWaterDensity = x
	}
	if x, ok := positiveFloat(logger, v, "water_scale_height", ref.WaterScaleHeightKm); ok {
		cfg.Atmosphere.WaterScaleHeightKm = x
	}

	logger.Info("config",
		"http_addr", cfg.HTTPAddr,
		"log_level", cfg.LogLevel.String(),
		"workers", cfg.Sweep.Workers,
		"batch_width", int(cfg.BatchWidth),
		"max_sweep_points", cfg.Sweep.MaxPoints,
		"memoize_profile", cfg.MemoizeProfile,
		"surface_water_density", cfg.Atmosphere.SurfaceWaterDensity,
		"water_scale_height_km", cfg.Atmosphere.WaterScaleHeightKm,
	)

	return cfg
}

func envName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(key)
}

func positiveInt(logger *slog.Logger, v *viper.Viper, key string, def int) (int, bool) {
	s := v.GetString(key)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		logger.Warn("invalid "+envName(key)+" value, using default", "value", s, "default", def)
		return 0, false
	}
	return n, true
}

func positiveFloat(logger *slog.Logger, v *viper.Viper, key string, def float64) (float64, bool) {
	s := v.GetString(key)
	if s == "" {
		return 0, false
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil || !(x > 0) || math.IsInf(x, 1) {
		logger.Warn("invalid "+envName(key)+" value, using default", "value", s, "default", def)
		return 0, false
	}
	return x, true
}
