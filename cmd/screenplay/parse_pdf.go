package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/screenplay/export"
	"github.com/tsawler/screenplay/extract"
	"github.com/tsawler/screenplay/langdetect"
	"github.com/tsawler/screenplay/screenplay"
)

var parsePDFFormat string

var parsePDFCmd = &cobra.Command{
	Use:   "parse_pdf <input.pdf> <output>",
	Short: "Classify a screenplay PDF and write the result to a file",
	Args:  cobra.ExactArgs(2),
	RunE:  runParsePDF,
}

func init() {
	parsePDFCmd.Flags().StringVarP(
		&parsePDFFormat, "format", "f", string(export.Text),
		"output format: text, json, json-pretty, structured",
	)
}

func runParsePDF(cmd *cobra.Command, args []string) error {
	log := newLogger()
	input, output := args[0], args[1]

	log.Info("opening PDF", "path", input)
	ex, err := extract.Open(input)
	if err != nil {
		return fmt.Errorf("open %s: %w", input, err)
	}
	defer ex.Close()

	doc, err := ex.Document()
	if err != nil {
		return fmt.Errorf("extract text: %w", err)
	}
	doc.Language = detectLanguage(doc)

	log.Info("classifying", "pages", len(doc.Pages), "language", doc.Language)
	script, err := screenplay.NewClassifier().Classify(doc)
	if err != nil {
		return fmt.Errorf("classify: %w", err)
	}

	rendered, err := export.Render(script, export.Format(parsePDFFormat))
	if err != nil {
		return fmt.Errorf("render %s: %w", parsePDFFormat, err)
	}

	if err := os.WriteFile(output, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	log.Info("wrote output", "path", output, "format", parsePDFFormat)
	return nil
}

// detectLanguage samples the first few pages' text for langdetect, rather
// than the whole document, since a single dominant script is established
// quickly and most screenplays run hundreds of pages.
func detectLanguage(doc screenplay.Document) string {
	var sb strings.Builder
	sampled := 0
	for _, p := range doc.Pages {
		for _, s := range p.Spans {
			sb.WriteString(s.Text)
			sb.WriteString(" ")
		}
		sampled++
		if sampled >= 5 {
			break
		}
	}
	return langdetect.Detect(sb.String())
}
