package document

import (
	"fmt"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"
	"github.com/shramsetu/rozgar-backend-go/internal/domain/report"
)

const (
	pdfRowHeight    = 8.0
	pdfBottomMargin = 15.0
)

// Column widths in mm, A4 portrait with 10mm margins.
var pdfColumns = []struct {
	title string
	width float64
}{
	{"Worker Name", 52},
	{"Job Card ID", 38},
	{"Date", 22},
	{"Attendance", 24},
	{"Marked By", 34},
	{"Time", 20},
}

// PDFWriter renders the muster roll as a paginated A4 document.
type PDFWriter struct {
	pdf  *gofpdf.Fpdf
	data report.MusterRollData
}

func NewPDFWriter(data report.MusterRollData) *PDFWriter {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(false, pdfBottomMargin)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-pdfBottomMargin)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	return &PDFWriter{pdf: pdf, data: data}
}

// NewPage implements DocumentWriter.
func (p *PDFWriter) NewPage() {
	p.pdf.AddPage()

	p.pdf.SetFont("Arial", "B", 16)
	p.pdf.Cell(0, 10, "Muster Roll - Attendance Report")
	p.pdf.Ln(12)

	p.pdf.SetFont("Arial", "", 11)
	p.pdf.Cell(0, 7, fmt.Sprintf("Project: %s", p.data.ProjectName))
	p.pdf.Ln(6)
	p.pdf.Cell(0, 7, fmt.Sprintf("Location: %s", p.data.Location))
	p.pdf.Ln(6)
	p.pdf.Cell(0, 7, fmt.Sprintf("Date: %s", p.data.Date))
	p.pdf.Ln(10)

	p.pdf.SetFont("Arial", "B", 9)
	p.pdf.SetFillColor(68, 114, 196)
	p.pdf.SetTextColor(255, 255, 255)
	for _, col := range pdfColumns {
		p.pdf.CellFormat(col.width, pdfRowHeight, col.title, "1", 0, "C", true, 0, "")
	}
	p.pdf.Ln(-1)
	p.pdf.SetTextColor(0, 0, 0)
}

// AppendRow implements DocumentWriter.
func (p *PDFWriter) AppendRow(cells []string, shaded bool) {
	p.pdf.SetFont("Arial", "", 9)
	p.pdf.SetFillColor(240, 244, 250)
	for i, col := range pdfColumns {
		value := ""
		if i < len(cells) {
			value = cells[i]
		}
		p.pdf.CellFormat(col.width, pdfRowHeight, value, "1", 0, "L", shaded, 0, "")
	}
	p.pdf.Ln(-1)
}

// AppendSummary implements DocumentWriter.
func (p *PDFWriter) AppendSummary(summary report.Summary, generatedAt string) {
	p.pdf.Ln(6)
	p.pdf.SetFont("Arial", "B", 11)
	p.pdf.Cell(0, 8, "Summary")
	p.pdf.Ln(8)

	p.pdf.SetFont("Arial", "", 10)
	rows := []struct {
		label string
		value string
	}{
		{"Total Workers", fmt.Sprintf("%d", summary.TotalWorkers)},
		{"Present", fmt.Sprintf("%d", summary.Present)},
		{"Absent", fmt.Sprintf("%d", summary.Absent)},
		{"Attendance Rate", fmt.Sprintf("%d%%", summary.AttendanceRate)},
	}
	for _, r := range rows {
		p.pdf.Cell(60, 6, r.label)
		p.pdf.Cell(60, 6, r.value)
		p.pdf.Ln(6)
	}

	p.pdf.Ln(4)
	p.pdf.SetFont("Arial", "I", 8)
	p.pdf.Cell(0, 6, fmt.Sprintf("Generated at: %s", generatedAt))
	p.pdf.Ln(6)
}

// SignatureStamp implements DocumentWriter. When the signature asset is
// missing or unreadable a plain line is drawn instead, so export never
// fails on a cosmetic element.
func (p *PDFWriter) SignatureStamp(path string) {
	p.pdf.Ln(8)
	x := p.pdf.GetX()
	y := p.pdf.GetY()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			p.pdf.ImageOptions(path, x, y, 40, 15, false, gofpdf.ImageOptions{}, 0, "")
			p.pdf.SetY(y + 17)
			p.pdf.SetFont("Arial", "", 9)
			p.pdf.Cell(0, 6, "Authorised Signatory")
			return
		}
	}

	p.pdf.Line(x, y+12, x+50, y+12)
	p.pdf.SetY(y + 14)
	p.pdf.SetFont("Arial", "", 9)
	p.pdf.Cell(0, 6, "Authorised Signatory")
}

// RemainingHeight implements DocumentWriter.
func (p *PDFWriter) RemainingHeight() float64 {
	_, pageHeight := p.pdf.GetPageSize()
	return pageHeight - pdfBottomMargin - p.pdf.GetY()
}

// Save implements DocumentWriter.
func (p *PDFWriter) Save(w io.Writer) error {
	if err := p.pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}
