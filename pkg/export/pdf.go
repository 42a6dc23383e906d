package export

import (
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/aretw0/qanda/pkg/core"
)

// writePDF renders a paginated document: one section per subject, one
// block per entry. Page breaks are inserted automatically when content
// overflows the page height.
func writePDF(w io.Writer, username string, view []core.SubjectEntries) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(200, 10, "Q&A Export for "+username, "", 1, "C", false, 0, "")
	pdf.Ln(10)

	for _, subject := range view {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(200, 10, subject.Name, "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)

		for _, e := range subject.Entries {
			pdf.MultiCell(0, 10, "Q: "+e.Question, "", "L", false)
			pdf.MultiCell(0, 10, "A: "+e.Answer, "", "L", false)
			pdf.CellFormat(0, 10, "Date: "+e.Timestamp, "", 1, "L", false, 0, "")
			pdf.Ln(5)
		}
	}

	return pdf.Output(w)
}
