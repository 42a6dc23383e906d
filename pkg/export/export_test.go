package export_test

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/qanda/pkg/core"
	"github.com/aretw0/qanda/pkg/export"
)

func sampleView() []core.SubjectEntries {
	return []core.SubjectEntries{
		{Name: "Go", Entries: []core.Entry{
			{ID: "e1", Question: "What is a closure?", Answer: "A function value.", Timestamp: "2024-01-02 03:04:05", CreatedBy: "alice"},
		}},
		{Name: "Unix", Entries: []core.Entry{
			{ID: "e2", Question: "What does fork do?", Answer: "Clones the process.", Timestamp: "2024-01-03 04:05:06", CreatedBy: "alice"},
		}},
	}
}

func TestParseFormat(t *testing.T) {
	cases := []struct {
		in      string
		want    export.Format
		wantErr bool
	}{
		{"csv", export.FormatCSV, false},
		{"JSON", export.FormatJSON, false},
		{" pdf ", export.FormatPDF, false},
		{"md", export.FormatMarkdown, false},
		{"markdown", export.FormatMarkdown, false},
		{"xlsx", "", true},
		{"", "", true},
	}
	for _, tc := range cases {
		got, err := export.ParseFormat(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestFilenameAndMIME(t *testing.T) {
	assert.Equal(t, "my_qna_export_alice.csv", export.Filename("alice", export.FormatCSV))
	assert.Equal(t, "my_qna_export_alice.md", export.Filename("alice", export.FormatMarkdown))

	assert.Equal(t, "text/csv", export.FormatCSV.MIME())
	assert.Equal(t, "application/json", export.FormatJSON.MIME())
	assert.Equal(t, "application/pdf", export.FormatPDF.MIME())
	assert.Equal(t, "text/markdown", export.FormatMarkdown.MIME())
}

func TestSelectSubjects(t *testing.T) {
	view := sampleView()

	all := export.SelectSubjects(view, []string{"*"})
	require.Len(t, all, 2)
	assert.Equal(t, "Go", all[0].Name, "selection must preserve order")

	one := export.SelectSubjects(view, []string{"Go"})
	require.Len(t, one, 1)
	assert.Equal(t, "Go", one[0].Name)

	// Overlapping patterns must not duplicate a subject.
	overlap := export.SelectSubjects(view, []string{"G*", "*o"})
	assert.Len(t, overlap, 1)

	none := export.SelectSubjects(view, []string{"Rust"})
	assert.Empty(t, none)
}

func TestBuild_JSONRoundTrip(t *testing.T) {
	artifact, err := export.Build("alice", sampleView(), []string{"*"}, export.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "my_qna_export_alice.json", artifact.Name)
	assert.Equal(t, "application/json", artifact.MIME)

	var parsed core.Collection
	require.NoError(t, json.Unmarshal(artifact.Data, &parsed))
	require.Len(t, parsed, 2)
	require.Len(t, parsed["Go"], 1)
	assert.Equal(t, "What is a closure?", parsed["Go"][0].Question)
	assert.Equal(t, "alice", parsed["Go"][0].CreatedBy)
}

func TestBuild_CSV(t *testing.T) {
	artifact, err := export.Build("alice", sampleView(), []string{"*"}, export.FormatCSV)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(artifact.Data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header plus one row per entry")
	assert.Equal(t, []string{"Subject", "Question", "Answer", "Date"}, records[0])
	assert.Equal(t, []string{"Go", "What is a closure?", "A function value.", "2024-01-02 03:04:05"}, records[1])
	assert.Equal(t, "Unix", records[2][0])
}

func TestBuild_Markdown(t *testing.T) {
	artifact, err := export.Build("alice", sampleView(), []string{"Go"}, export.FormatMarkdown)
	require.NoError(t, err)

	body := string(artifact.Data)
	assert.True(t, strings.HasPrefix(body, "# Q&A Export for alice\n"))
	assert.Contains(t, body, "## Go\n")
	assert.Contains(t, body, "### What is a closure?\n")
	assert.Contains(t, body, "A function value.\n")
	assert.Contains(t, body, "Date: 2024-01-02 03:04:05\n")
	assert.Contains(t, body, "\n---\n")
	assert.NotContains(t, body, "Unix")
}

func TestBuild_PDF(t *testing.T) {
	artifact, err := export.Build("alice", sampleView(), []string{"*"}, export.FormatPDF)
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", artifact.MIME)
	require.Greater(t, len(artifact.Data), 4)
	assert.Equal(t, "%PDF", string(artifact.Data[:4]))
}

func TestBuild_NothingToExport(t *testing.T) {
	_, err := export.Build("alice", sampleView(), []string{"Rust"}, export.FormatJSON)
	assert.ErrorIs(t, err, core.ErrNothingToExport)

	_, err = export.Build("alice", nil, []string{"*"}, export.FormatJSON)
	assert.ErrorIs(t, err, core.ErrNothingToExport)
}
