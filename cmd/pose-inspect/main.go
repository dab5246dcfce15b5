package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/formsight/formsight-server/pkg/analysis"
	"github.com/formsight/formsight-server/pkg/catalog"
	"github.com/formsight/formsight-server/pkg/detector"
)

func main() {
	inputPath := flag.String("input", "", "Path to landmark JSON file")
	minVis := flag.Float64("min-visibility", analysis.DefaultMinVisibility, "Minimum landmark visibility")
	verbose := flag.Bool("detailed-dump", false, "Print per-side angles before aggregation")
	flag.Parse()

	if *inputPath == "" {
		fmt.Println("Please provide input file with -input")
		flag.Usage()
		os.Exit(1)
	}

	data, err := os.ReadFile(*inputPath)
	if err != nil {
		fmt.Printf("Failed to read input file: %v\n", err)
		os.Exit(1)
	}

	snap, err := detector.ParseLandmarks(data)
	if err != nil {
		fmt.Printf("Failed to parse landmarks: %v\n", err)
		os.Exit(1)
	}

	cat, err := catalog.New()
	if err != nil {
		fmt.Printf("Catalog failed validation: %v\n", err)
		os.Exit(1)
	}

	analyzer := analysis.NewAnalyzer(cat, analysis.WithMinVisibility(*minVis))

	if *verbose {
		side := analyzer.SideAngles(snap)
		names := make([]string, 0, len(side))
		for name := range side {
			names = append(names, string(name))
		}
		sort.Strings(names)

		fmt.Println("Per-side angles:")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, name := range names {
			fmt.Fprintf(w, "  %s\t%.1f°\n", name, side[analysis.SideAngleName(name)])
		}
		w.Flush()
		fmt.Println()
	}

	result := analyzer.Analyze(snap)

	fmt.Printf("Exercise:   %s\n", result.Exercise)
	fmt.Printf("Status:     %s\n", result.Status)
	fmt.Printf("Confidence: %.2f\n", result.Confidence)

	if len(result.Angles) > 0 {
		names := make([]string, 0, len(result.Angles))
		for name := range result.Angles {
			names = append(names, string(name))
		}
		sort.Strings(names)

		fmt.Println("Angles:")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, name := range names {
			fmt.Fprintf(w, "  %s\t%.1f°\n", name, result.Angles[catalog.AngleName(name)])
		}
		w.Flush()
	}

	if len(result.Feedback) > 0 {
		fmt.Println("Feedback:")
		for _, fb := range result.Feedback {
			fmt.Printf("  - %s\n", fb)
		}
	}
}
