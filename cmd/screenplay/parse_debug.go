package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/screenplay/extract"
	"github.com/tsawler/screenplay/screenplay"
)

var parseDebugCmd = &cobra.Command{
	Use:   "parse_debug <input.pdf> <output.txt>",
	Short: "Dump one line per classified element for diagnosing misclassification",
	Args:  cobra.ExactArgs(2),
	RunE:  runParseDebug,
}

func runParseDebug(cmd *cobra.Command, args []string) error {
	log := newLogger()
	input, output := args[0], args[1]

	ex, err := extract.Open(input)
	if err != nil {
		return fmt.Errorf("open %s: %w", input, err)
	}
	defer ex.Close()

	doc, err := ex.Document()
	if err != nil {
		return fmt.Errorf("extract text: %w", err)
	}

	script, err := screenplay.NewClassifier().Classify(doc)
	if err != nil {
		return fmt.Errorf("classify: %w", err)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	for _, page := range script.Pages {
		for gIdx, g := range page.Groups {
			for eIdx, e := range g {
				kind := string(e.Type)
				if kind == "" {
					kind = "unclassified"
				}
				fmt.Fprintf(w, "page=%d group=%d elem=%d type=%-14s x=%.1f y=%.1f text=%q\n",
					page.PageNumber, gIdx, eIdx, kind, e.X, e.Y, e.Text)
			}
		}
	}

	log.Info("wrote debug dump", "path", output, "pages", len(script.Pages))
	return nil
}
