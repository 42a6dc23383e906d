package export

import (
	"encoding/csv"
	"io"

	"github.com/aretw0/qanda/pkg/core"
)

// writeCSV flattens subject grouping into a Subject column, one row per
// entry.
func writeCSV(w io.Writer, view []core.SubjectEntries) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Subject", "Question", "Answer", "Date"}); err != nil {
		return err
	}
	for _, subject := range view {
		for _, e := range subject.Entries {
			if err := cw.Write([]string{subject.Name, e.Question, e.Answer, e.Timestamp}); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
