package main

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"petro-catalog/internal/catalog"
)

// Writes the built-in demo catalogue to data/catalog.json so the file
// source has a dataset to serve out of the box.
func main() {
	outPath := "data/catalog.json"
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	snapshot := catalog.DemoSnapshot()

	f, err := os.Create(outPath)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", outPath, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snapshot); err != nil {
		log.Fatalf("Failed to write catalogue: %v", err)
	}

	log.Printf("Wrote %d categories, %d subcategories, %d products to %s",
		len(snapshot.Categories), len(snapshot.Subcategories), len(snapshot.Products), outPath)
}
