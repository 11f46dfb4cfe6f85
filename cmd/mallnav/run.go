package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Ashwin-A21/mallnav/pkg/nav"
	"github.com/Ashwin-A21/mallnav/pkg/route"
	"github.com/Ashwin-A21/mallnav/pkg/scene"
	"github.com/Ashwin-A21/mallnav/pkg/validation"
	"github.com/Ashwin-A21/mallnav/pkg/venue"
)

func runRoute(projectPath, from, to string, asJSON bool) error {
	if from == to {
		return fmt.Errorf("origin and destination are the same")
	}

	v, err := venue.LoadProject(projectPath)
	if err != nil {
		return err
	}

	resolver := nav.NewResolver(v.Graph, v.Places())
	path, err := nav.FindRoute(v.Graph, resolver, from, to)
	if err != nil {
		return err
	}

	planned := route.Plan(path, route.Options{
		WalkingSpeedMPS: v.Manifest.WalkingSpeedMPS,
		FloorPenaltyS:   v.Manifest.FloorPenaltyS,
		FromLabel:       from,
		ToLabel:         to,
		FloorName:       v.Manifest.FloorName,
	})

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(planned)
	}

	printRoute(planned)
	return nil
}

func runValidate(projectPath string) error {
	v, err := venue.LoadProject(projectPath)
	if err != nil {
		return err
	}

	report := validation.ValidateVenue(v)
	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runScene(projectPath string) error {
	v, err := venue.LoadProject(projectPath)
	if err != nil {
		return err
	}

	graph := scene.Assemble(v)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(graph)
}
