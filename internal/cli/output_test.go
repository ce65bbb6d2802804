package cli

import (
	"bytes"
	"strings"
	"testing"

	"drawfetch/internal/draw"
)

func strPtr(s string) *string { return &s }

func TestWriteReportText(t *testing.T) {
	rep := &draw.Report{
		State:   "ny",
		Date:    "2025-09-12",
		Midday:  strPtr("417-9021"),
		Evening: nil,
	}

	var buf bytes.Buffer
	if err := WriteReport(&buf, rep, FormatText); err != nil {
		t.Fatalf("WriteReport() error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "417-9021") {
		t.Errorf("output missing midday result: %s", out)
	}
	if !strings.Contains(out, "not available") {
		t.Errorf("output should mark the missing evening slot: %s", out)
	}
	if strings.Contains(out, "Night") {
		t.Errorf("two-slot report should not print a night line: %s", out)
	}
}

func TestWriteReportTextWithNight(t *testing.T) {
	rep := &draw.Report{
		State: "ga",
		Date:  "2025-09-12",
		Night: strPtr("003-5566"),
	}

	var buf bytes.Buffer
	if err := WriteReport(&buf, rep, FormatText); err != nil {
		t.Fatalf("WriteReport() error: %v", err)
	}
	if !strings.Contains(buf.String(), "003-5566") {
		t.Errorf("output missing night result: %s", buf.String())
	}
}

func TestWriteReportJSON(t *testing.T) {
	rep := &draw.Report{State: "ny", Date: "2025-09-12"}

	var buf bytes.Buffer
	if err := WriteReport(&buf, rep, FormatJSON); err != nil {
		t.Fatalf("WriteReport() error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"state": "ny"`) {
		t.Errorf("JSON output missing state: %s", out)
	}
	if !strings.Contains(out, `"midday": null`) {
		t.Errorf("JSON output should carry explicit nulls: %s", out)
	}
}

func TestWriteReportUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReport(&buf, &draw.Report{}, OutputFormat("xml")); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestNewRootCmdHasSubcommands(t *testing.T) {
	root := NewRootCmd()

	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	if !names["check"] {
		t.Error("root command should have a check subcommand")
	}
	if !names["serve"] {
		t.Error("root command should have a serve subcommand")
	}
}
