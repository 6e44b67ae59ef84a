// Command openpen-export converts a saved annotation document to PDF
// without starting the overlay UI.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"openpen/internal/document"
	"openpen/internal/export"
)

func main() {
	inPath := flag.String("in", "", "Path to annotation document (.openpen or .json)")
	outPath := flag.String("out", "", "Output PDF path (default: input name with .pdf)")
	flag.Parse()

	if *inPath == "" {
		fmt.Println("Usage: openpen-export -in <document> [-out <pdf>]")
		os.Exit(1)
	}

	objects, err := document.Load(*inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load document: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d annotation(s) from %s\n", len(objects), *inPath)

	target := *outPath
	if target == "" {
		base := strings.TrimSuffix(*inPath, filepath.Ext(*inPath))
		target = base + ".pdf"
	}

	if err := export.ToPDF(target, objects); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to export PDF: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", target)
}
