package main

import (
	"fmt"

	"github.com/Ashwin-A21/mallnav/pkg/route"
	"github.com/Ashwin-A21/mallnav/pkg/validation"
)

func printRoute(r route.Route) {
	fmt.Println("Route")
	fmt.Println("=====")
	for _, ins := range r.Instructions {
		fmt.Printf("  [%-8s] %s\n", ins.Icon, ins.Text)
	}
	fmt.Println()
	fmt.Printf("Distance: %.0f m\n", r.DistanceMeters)
	fmt.Printf("ETA:      %d s\n", r.ETASeconds)
	fmt.Printf("Floors:   %d -> %d (%d transition(s))\n",
		r.OriginFloor, r.DestFloor, len(r.Transitions))
	for _, seg := range r.Segments {
		fmt.Printf("  floor %d: %d points\n", seg.Floor, len(seg.Coords))
	}
}

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.Subject != "" {
				fmt.Printf("    -> %s = %v\n", e.Subject, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.Subject != "" {
				fmt.Printf("    -> %s = %v\n", w.Subject, w.ActualValue)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}
