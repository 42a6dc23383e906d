// Package export renders a user's selected subjects into downloadable
// artifacts. Four formats are supported; each one includes every entry
// of every selected subject exactly once.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/qanda/pkg/core"
)

// Format identifies an export serialization target.
type Format string

const (
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatPDF      Format = "pdf"
	FormatMarkdown Format = "md"
)

// ParseFormat resolves a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "pdf":
		return FormatPDF, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown export format: %q", s)
	}
}

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string {
	return string(f)
}

// MIME returns the content type of the produced artifact.
func (f Format) MIME() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatJSON:
		return "application/json"
	case FormatPDF:
		return "application/pdf"
	case FormatMarkdown:
		return "text/markdown"
	default:
		return "application/octet-stream"
	}
}

// Filename derives the artifact name from the acting username and format.
func Filename(username string, f Format) string {
	return fmt.Sprintf("my_qna_export_%s.%s", username, f.Ext())
}

// Artifact is a rendered export ready to be written out.
type Artifact struct {
	Name string
	MIME string
	Data []byte
}

// SelectSubjects filters the view down to subjects whose name matches
// any of the given doublestar patterns. Subject order is preserved.
func SelectSubjects(view []core.SubjectEntries, patterns []string) []core.SubjectEntries {
	var selected []core.SubjectEntries
	for _, subject := range view {
		for _, pattern := range patterns {
			if match, err := doublestar.Match(pattern, subject.Name); err == nil && match {
				selected = append(selected, subject)
				break
			}
		}
	}
	return selected
}

// Build selects subjects by pattern and renders them in the requested
// format. Returns core.ErrNothingToExport when no subject matches.
func Build(username string, view []core.SubjectEntries, patterns []string, f Format) (Artifact, error) {
	selected := SelectSubjects(view, patterns)
	if len(selected) == 0 {
		return Artifact{}, core.ErrNothingToExport
	}

	var buf bytes.Buffer
	var err error
	switch f {
	case FormatCSV:
		err = writeCSV(&buf, selected)
	case FormatJSON:
		err = writeJSON(&buf, selected)
	case FormatPDF:
		err = writePDF(&buf, username, selected)
	case FormatMarkdown:
		err = writeMarkdown(&buf, username, selected)
	default:
		err = fmt.Errorf("unknown export format: %q", f)
	}
	if err != nil {
		return Artifact{}, fmt.Errorf("failed to render %s export: %w", f, err)
	}

	return Artifact{
		Name: Filename(username, f),
		MIME: f.MIME(),
		Data: buf.Bytes(),
	}, nil
}
