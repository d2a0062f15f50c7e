package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/star/slantpath/internal/atmosphere"
	"github.com/star/slantpath/internal/batch"
	"github.com/star/slantpath/internal/raytrace"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	freq := flag.Float64("f", 22.235, "frequency in GHz")
	h1 := flag.Float64("h1", 0, "low terminal height in km")
	h2 := flag.Float64("h2", 10, "high terminal height in km")
	elevation := flag.Float64("el", 90, "elevation in degrees at the low terminal (negative below the horizontal)")
	width := flag.Int("width", int(batch.DefaultWidth), "batch width")
	shells := flag.Int("shells", 10, "number of shells to print from each end (0 for none, -1 for all)")
	flag.Parse()

	tracer := raytrace.NewTracer(batch.Width(*width))
	tracer.RecordShells = *shells != 0

	ref := atmosphere.MeanAnnualGlobal()
	angle := (90 - *elevation) * math.Pi / 180

	fmt.Printf("Frequency:   %.4f GHz\n", *freq)
	fmt.Printf("Terminals:   %.3f km -> %.3f km\n", *h1, *h2)
	fmt.Printf("Elevation:   %.4f deg (%.6f rad from zenith)\n", *elevation, angle)
	fmt.Printf("Surface n-1: %.3e\n", atmosphere.IndexAt(ref, *h1)-1)

	g := raytrace.NewGeometry(*h1, *h2)
	fmt.Printf("Shells:      %d (i=%d..%d, m=%.6g)\n", g.Shells(), g.Lower, g.Upper, g.M)

	res, err := tracer.SlantPath(*freq, *h1, *h2, angle, ref)
	if err != nil {
		logger.Error("trace failed", "error", err)
		if errors.Is(err, raytrace.ErrGroundIntersection) {
			fmt.Println("ERROR: ray meets the ground before reaching the high terminal")
		} else {
			fmt.Println("ERROR:", err)
		}
		os.Exit(1)
	}

	fmt.Printf("\nAbsorption:  %.6f dB\n", res.AbsorptionDB)
	fmt.Printf("Bending:     %.6f mdeg\n", res.BendingRad*180/math.Pi*1000)
	fmt.Printf("Path length: %.6f km\n", res.PathLengthKm)
	fmt.Printf("Excess path: %.3f m\n", res.ExcessPathLengthKm*1000)
	fmt.Printf("Exit angle:  %.6f deg from zenith\n", res.ExitAngleRad*180/math.Pi)
	if res.Clamped() {
		fmt.Printf("WARNING: %d Bouguer arguments clamped (ducting or grazing)\n", res.ClampCount)
	}
	if !res.Valid() {
		fmt.Println("WARNING: result has non-finite fields")
	}

	if len(res.Shells) == 0 {
		return
	}

	fmt.Printf("\n%6s %10s %10s %12s %12s %10s %10s\n", "i", "h (km)", "d (km)", "n-1", "gamma dB/km", "beta deg", "a (km)")
	n := *shells
	for j, s := range res.Shells {
		if n > 0 && j == n && len(res.Shells) > 2*n {
			fmt.Printf("%6s\n", "...")
		}
		if n > 0 && j >= n && j < len(res.Shells)-n {
			continue
		}
		fmt.Printf("%6d %10.4f %10.6f %12.4e %12.6f %10.4f %10.6f\n",
			s.Index, s.LowerHeightKm, s.ThicknessKm, s.RefractiveIndex-1,
			s.SpecificAttenuation, s.EntryAngleRad*180/math.Pi, s.PathLengthKm)
	}
}
