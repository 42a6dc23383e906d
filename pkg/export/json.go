package export

import (
	"encoding/json"
	"io"

	"github.com/aretw0/qanda/pkg/core"
)

// writeJSON serializes the subject -> entries mapping losslessly; the
// output re-parses to an equivalent Collection.
func writeJSON(w io.Writer, view []core.SubjectEntries) error {
	payload := make(core.Collection, len(view))
	for _, subject := range view {
		payload[subject.Name] = subject.Entries
	}

	data, err := json.MarshalIndent(payload, "", "    ")
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
