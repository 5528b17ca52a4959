package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/azlabs/tanit/internal/model"
)

// Renderer writes extraction reports.
type Renderer struct {
	verbose bool
}

// NewRenderer creates a renderer.
func NewRenderer(verbose bool) *Renderer {
	return &Renderer{verbose: verbose}
}

// RenderJSON writes the report as indented JSON.
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// RenderSummary prints a one-screen summary to stdout.
func (r *Renderer) RenderSummary(report *model.Report) {
	e := report.Entities

	fmt.Printf("\n%s\n", report.Subject)
	if report.SourceURL != "" {
		fmt.Printf("%s\n", report.SourceURL)
	}
	fmt.Printf("persons: %d  organisations: %d  locations: %d\n",
		len(e.Persons), len(e.Organisations), len(e.Locations))

	if !r.verbose {
		return
	}

	for _, p := range e.Persons {
		fmt.Printf("  PERSON        %-30s %s\n", p.Name, p.Position)
	}
	for _, o := range e.Organisations {
		fmt.Printf("  %-13s %s\n", o.Type, o.Name)
	}
	for _, l := range e.Locations {
		fmt.Printf("  %-13s %s\n", l.Type, l.Name)
	}
}
