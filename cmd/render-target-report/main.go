package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joelkehle/lp-outreach/internal/reportrender"
)

func main() {
	inputPath := flag.String("input", "", "Path to a markdown daily target report")
	outputPath := flag.String("output", "", "Path to write the rendered PDF")
	flag.Parse()

	if *inputPath == "" || *outputPath == "" {
		log.Fatal("missing required -input and -output")
	}

	markdown, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	renderer := reportrender.NewChromiumPDFRenderer()
	pdf, err := renderer.Render(context.Background(), string(markdown))
	if err != nil {
		log.Fatalf("render pdf: %v", err)
	}
	if err := os.WriteFile(*outputPath, pdf, 0o644); err != nil {
		log.Fatalf("write output: %v", err)
	}
	log.Printf("wrote %s (%d bytes)", *outputPath, len(pdf))
}
