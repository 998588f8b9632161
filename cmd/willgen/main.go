// willgen exports a sample will to a file, for quick inspection of the
// rendered output without running the server.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"will-engine/internal/export"
	"will-engine/internal/model"
	"will-engine/internal/render"
	"will-engine/internal/sample"
	"will-engine/internal/template"
)

func main() {
	format := flag.String("format", "markdown", "output format: markdown, pdf or docx")
	language := flag.String("language", "sk", "document language: sk, cs, en or de")
	jurisdiction := flag.String("jurisdiction", "SK", "governing jurisdiction: SK or CZ")
	which := flag.String("sample", "sk", "sample data set: sk or cz")
	outDir := flag.String("out", ".", "output directory")
	instructions := flag.Bool("instructions", true, "include execution instructions appendix")
	jurisdictionInfo := flag.Bool("jurisdiction-info", true, "include jurisdiction info appendix")
	flag.Parse()

	will := sample.WillDataSK()
	if *which == "cz" {
		will = sample.WillDataCZ()
	}

	opts := model.ExportOptions{
		Format:                       model.Format(*format),
		Language:                     model.Language(*language),
		Jurisdiction:                 model.Jurisdiction(*jurisdiction),
		IncludeExecutionInstructions: *instructions,
		IncludeJurisdictionInfo:      *jurisdictionInfo,
	}

	templates, err := template.NewRegistry()
	if err != nil {
		log.Fatalf("Template registry failed: %v", err)
	}

	doc, err := export.New(templates, render.Default()).Export(will, opts)
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}

	path := filepath.Join(*outDir, doc.Filename)
	if err := os.WriteFile(path, doc.Content, 0o644); err != nil {
		log.Fatalf("Write %s: %v", path, err)
	}
	log.Printf("Wrote %s (%d bytes)", path, len(doc.Content))
}
