package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"drawfetch/internal/draw"
)

// OutputFormat specifies the output format.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// WriteReport writes a report in the specified format.
func WriteReport(w io.Writer, rep *draw.Report, format OutputFormat) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case FormatText:
		return writeText(w, rep)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeText(w io.Writer, rep *draw.Report) error {
	fmt.Fprintf(w, "%s results for %s\n", rep.State, rep.Date)
	writeSlot(w, "Midday", rep.Midday)
	writeSlot(w, "Evening", rep.Evening)
	if rep.Night != nil {
		writeSlot(w, "Night", rep.Night)
	}
	return nil
}

func writeSlot(w io.Writer, name string, combined *string) {
	if combined == nil {
		fmt.Fprintf(w, "  %-8s (not available)\n", name+":")
		return
	}
	fmt.Fprintf(w, "  %-8s %s\n", name+":", *combined)
}
