package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/qanda/pkg/core"
)

// writeMarkdown renders a heading per subject, a sub-heading per
// question, the answer as body, a trailing date line and a separator
// per entry.
func writeMarkdown(w io.Writer, username string, view []core.SubjectEntries) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# Q&A Export for %s\n\n", username)
	for _, subject := range view {
		fmt.Fprintf(&b, "## %s\n\n", subject.Name)
		for _, e := range subject.Entries {
			fmt.Fprintf(&b, "### %s\n\n", e.Question)
			fmt.Fprintf(&b, "%s\n\n", e.Answer)
			fmt.Fprintf(&b, "Date: %s\n\n---\n\n", e.Timestamp)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
