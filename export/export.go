// Package export serializes a classified screenplay.Script into one of
// several output formats. The text variant assembles output with a
// strings.Builder; the JSON variants lean on encoding/json directly.
package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tsawler/screenplay/screenplay"
)

// Format names an output serialization.
type Format string

const (
	Text         Format = "text"
	JSON         Format = "json"
	JSONPretty   Format = "json-pretty"
	Structured   Format = "structured"
	defaultLabel        = "(untitled)"
)

// Render serializes script in the requested format, returning an error for
// any unrecognized Format value.
func Render(script *screenplay.Script, format Format) (string, error) {
	switch format {
	case Text:
		return RenderText(script), nil
	case JSON:
		return RenderJSON(script, false)
	case JSONPretty:
		return RenderJSON(script, true)
	case Structured:
		return RenderStructured(script), nil
	default:
		return "", fmt.Errorf("export: unknown format %q", format)
	}
}

// RenderText flattens the script to its plain, classification-free prose:
// the title (if any) followed by every element's text in document order.
func RenderText(script *screenplay.Script) string {
	var sb strings.Builder
	if script.Title != nil {
		sb.WriteString(*script.Title)
		sb.WriteString("\n\n")
	}
	sb.WriteString(script.FullText)
	return sb.String()
}

// RenderJSON marshals the script as-is. pretty requests indented output.
func RenderJSON(script *screenplay.Script, pretty bool) (string, error) {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(script, "", "  ")
	} else {
		data, err = json.Marshal(script)
	}
	if err != nil {
		return "", fmt.Errorf("export: marshal json: %w", err)
	}
	return string(data), nil
}

// RenderStructured writes one line per classified element, grouped by
// page and scene: a title/metadata header followed by a walk of every
// page's groups. It is meant for humans skimming classification results,
// not round-tripping.
func RenderStructured(script *screenplay.Script) string {
	var sb strings.Builder

	title := defaultLabel
	if script.Title != nil {
		title = *script.Title
	}
	fmt.Fprintf(&sb, "Title: %s\n", title)
	fmt.Fprintf(&sb, "Language: %s\n", label(script.Language))
	fmt.Fprintf(&sb, "Pages: %d\n\n", script.TotalPages)

	sceneCount := 0
	for _, page := range script.Pages {
		fmt.Fprintf(&sb, "--- Page %d ---\n", page.PageNumber+1)
		for _, g := range page.Groups {
			for _, e := range g {
				if e.Type == screenplay.SceneHeading {
					sceneCount++
					fmt.Fprintf(&sb, "\n[%d] %s\n", sceneCount, e.Text)
					continue
				}
				sb.WriteString(structuredLine(e))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func structuredLine(e *screenplay.TextElement) string {
	kind := string(e.Type)
	if kind == "" {
		kind = "unclassified"
	}
	return fmt.Sprintf("  %-14s %s\n", kind, e.Text)
}

func label(s string) string {
	if s == "" {
		return "und"
	}
	return s
}
