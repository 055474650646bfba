package services

import (
	"bytes"
	"strconv"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
)

const (
	pdfMargin       = 14.0
	pdfBottomMargin = 20.0
	pdfRowHeight    = 8.0
)

var (
	brandColor  = [3]int{18, 78, 102}
	accentColor = [3]int{41, 128, 185}
)

// pdfDoc wraps gofpdf with a UTF-8 to cp1252 translator for the core fonts.
type pdfDoc struct {
	*gofpdf.Fpdf
	tr func(string) string
}

func newPDF(title string, created time.Time) *pdfDoc {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfBottomMargin)
	pdf.SetTitle(title, true)
	pdf.SetCreator("Modern Band", true)
	pdf.SetCreationDate(created)
	pdf.AliasNbPages("")
	return &pdfDoc{Fpdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

func (d *pdfDoc) text(s string) string {
	return d.tr(s)
}

func (d *pdfDoc) title(s string) {
	d.SetFont("Helvetica", "B", 20)
	d.SetTextColor(brandColor[0], brandColor[1], brandColor[2])
	d.CellFormat(0, 12, d.text(s), "", 1, "C", false, 0, "")
	d.SetTextColor(0, 0, 0)
}

func (d *pdfDoc) section(s string) {
	d.Ln(4)
	d.SetFont("Helvetica", "B", 13)
	d.SetTextColor(brandColor[0], brandColor[1], brandColor[2])
	d.CellFormat(0, 8, d.text(s), "", 1, "L", false, 0, "")
	d.SetTextColor(0, 0, 0)
}

func (d *pdfDoc) line(s string) {
	d.SetFont("Helvetica", "", 10)
	d.CellFormat(0, 6, d.text(s), "", 1, "L", false, 0, "")
}

type pdfTable struct {
	Header []string
	Widths []float64
	Align  []string
	Fill   [3]int
}

func (d *pdfDoc) tableHeader(t pdfTable) {
	d.SetFont("Helvetica", "B", 10)
	d.SetFillColor(t.Fill[0], t.Fill[1], t.Fill[2])
	d.SetTextColor(255, 255, 255)
	for i, h := range t.Header {
		d.CellFormat(t.Widths[i], pdfRowHeight, d.text(h), "1", 0, "C", true, 0, "")
	}
	d.Ln(-1)
	d.SetTextColor(0, 0, 0)
}

// table draws rows with striped fill, repeating the header after each page break.
func (d *pdfDoc) table(t pdfTable, rows [][]string) {
	_, pageH := d.GetPageSize()
	d.tableHeader(t)
	d.SetFont("Helvetica", "", 9)
	for r, row := range rows {
		if d.GetY()+pdfRowHeight > pageH-pdfBottomMargin {
			d.AddPage()
			d.tableHeader(t)
			d.SetFont("Helvetica", "", 9)
		}
		fill := r%2 == 1
		if fill {
			d.SetFillColor(240, 240, 240)
		}
		for i, cell := range row {
			align := "L"
			if i < len(t.Align) && t.Align[i] != "" {
				align = t.Align[i]
			}
			d.CellFormat(t.Widths[i], pdfRowHeight, d.fit(cell, t.Widths[i]-2), "1", 0, align, fill, 0, "")
		}
		d.Ln(-1)
	}
}

// keyValues draws a two-column Field/Details table.
func (d *pdfDoc) keyValues(fill [3]int, rows [][2]string) {
	t := pdfTable{Header: []string{"Field", "Details"}, Widths: []float64{60, 122}, Fill: fill}
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{r[0], r[1]})
	}
	d.table(t, out)
}

// fit translates s and shortens it with "..." until it fits width.
func (d *pdfDoc) fit(s string, width float64) string {
	s = d.text(strings.TrimSpace(s))
	if d.GetStringWidth(s) <= width {
		return s
	}
	for len(s) > 0 && d.GetStringWidth(s+"...") > width {
		s = s[:len(s)-1]
	}
	return s + "..."
}

func (d *pdfDoc) footer(label string) {
	d.SetFooterFunc(func() {
		d.SetY(-15)
		d.SetFont("Helvetica", "I", 8)
		d.SetTextColor(128, 128, 128)
		d.CellFormat(0, 10, d.text(label), "", 0, "L", false, 0, "")
		d.SetY(-15)
		d.CellFormat(0, 10, "Page "+strconv.Itoa(d.PageNo())+" of {nb}", "", 0, "R", false, 0, "")
		d.SetTextColor(0, 0, 0)
	})
}

func (d *pdfDoc) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
