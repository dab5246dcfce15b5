package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/formsight/formsight-server/pkg/catalog"
)

func main() {
	outputFile := flag.String("output", "", "Path to output JSON file (default stdout)")
	flag.Parse()

	cat, err := catalog.New()
	if err != nil {
		log.Fatalf("Catalog failed validation: %v", err)
	}

	dump := make(map[string]catalog.Instructions)
	for _, key := range cat.Keys() {
		instr, _ := cat.Instructions(key)
		dump[key] = instr
	}

	data, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal catalog: %v", err)
	}
	data = append(data, '\n')

	if *outputFile == "" {
		os.Stdout.Write(data)
		return
	}

	if err := os.WriteFile(*outputFile, data, 0644); err != nil {
		log.Fatalf("Failed to write output file: %v", err)
	}
	fmt.Printf("Successfully wrote catalog to %s (%d exercises)\n", *outputFile, len(dump))
}
