package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pstuifzand/foliate/internal/export"
	import_parser "github.com/pstuifzand/foliate/internal/import"
	"github.com/pstuifzand/foliate/internal/storage"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: foliate-convert [options] <input> <output>

Converts between foliate JSON documents and text formats.

Options:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Directions:
  input.md or input.txt  -> output.json   import text into a document
  input.json             -> output.md     export a document as markdown

Examples:
  foliate-convert notes.md notes.json
  foliate-convert notes.json notes.md
`)
	}

	format := flag.String("format", "auto", "import format: markdown, text, or auto")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		flag.Usage()
		os.Exit(1)
	}

	inputPath, outputPath := args[0], args[1]

	var err error
	if strings.HasSuffix(inputPath, ".json") {
		err = exportDocument(inputPath, outputPath)
	} else {
		err = importDocument(inputPath, outputPath, *format)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func importDocument(inputPath, outputPath, format string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	importFormat := import_parser.ImportFormat(format)
	if importFormat == import_parser.FormatAuto {
		importFormat = import_parser.DetectFormat(inputPath)
	}

	doc, err := import_parser.ImportFile(string(data), importFormat)
	if err != nil {
		return err
	}

	store := storage.NewJSONStore(outputPath)
	if err := store.Save(doc); err != nil {
		return err
	}

	fmt.Printf("Imported %d blocks into %s\n", len(doc.Children()), outputPath)
	return nil
}

func exportDocument(inputPath, outputPath string) error {
	store := storage.NewJSONStore(inputPath)
	doc, err := store.Load()
	if err != nil {
		return err
	}

	if err := export.ExportToMarkdown(doc, outputPath); err != nil {
		return err
	}

	fmt.Printf("Exported %d blocks to %s\n", len(doc.Children()), outputPath)
	return nil
}
