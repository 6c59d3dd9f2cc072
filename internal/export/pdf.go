package export

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"
)

// FileName is the name the exported document is saved under.
const FileName = "logs.pdf"

// ErrNoLogs is returned when there is nothing to export.
var ErrNoLogs = errors.New("no logs to export")

// Page geometry in millimetres (A4 portrait).
const (
	marginX      = 10.0
	marginTop    = 20.0
	marginBottom = 15.0
	indexWidth   = 14.0
	textWidth    = 176.0
	cellPadding  = 1.5
	fontFamily   = "Helvetica"
	fontSize     = 10.0
	lineSpacing  = 1.15
)

type table struct {
	pdf        *fpdf.Fpdf
	tr         func(string) string
	lineHeight float64
	pageHeight float64
	rowsOnPage int
}

// Build lays out logs as a two-column table: the 1-based line number and
// the line text wrapped to the text column. The header row is repeated on
// every page and rows too tall for the remaining space continue on the
// next one.
func Build(logs string) (*fpdf.Fpdf, error) {
	rows := Rows(logs)
	if len(rows) == 0 {
		return nil, ErrNoLogs
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Logs", true)
	pdf.SetCreator("bidcraft", true)
	pdf.SetMargins(marginX, marginTop, marginX)
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.SetCellMargin(cellPadding)
	pdf.SetFont(fontFamily, "", fontSize)
	_, unitSize := pdf.GetFontSize()
	_, pageHeight := pdf.GetPageSize()

	t := &table{
		pdf:        pdf,
		tr:         pdf.UnicodeTranslatorFromDescriptor(""),
		lineHeight: unitSize * lineSpacing,
		pageHeight: pageHeight,
	}
	t.newPage()

	for _, row := range rows {
		lines := wrap(pdf, row.Text)
		label := strconv.Itoa(row.Index)
		for len(lines) > 0 {
			n := t.linesThatFit()
			// Start a fresh page rather than split a row that would fit on one.
			if n < len(lines) && t.rowsOnPage > 0 && len(lines) <= t.linesPerPage() {
				n = 0
			}
			if n < 1 {
				t.newPage()
				continue
			}
			if n > len(lines) {
				n = len(lines)
			}
			t.row(label, lines[:n])
			label = ""
			lines = lines[n:]
		}
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}
	return pdf, nil
}

// Write renders logs and writes the PDF to w.
func Write(w io.Writer, logs string) error {
	pdf, err := Build(logs)
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

// WriteFile renders logs into the file at path, creating parent directories.
func WriteFile(path, logs string) error {
	pdf, err := Build(logs)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// wrap splits text into lines that fit the text column at the current font.
// It never returns an empty slice.
func wrap(pdf *fpdf.Fpdf, text string) []string {
	lines := pdf.SplitText(latin1(text), textWidth)
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

// latin1 keeps text within what the core PDF fonts can measure and draw.
func latin1(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t':
			return ' '
		case r < 0x20, r >= 0x7f && r < 0xa0, r > 0xff:
			return '?'
		}
		return r
	}, s)
}

func (t *table) headerHeight() float64 {
	return t.lineHeight + 2*cellPadding
}

func (t *table) newPage() {
	t.pdf.AddPage()
	t.header()
	t.rowsOnPage = 0
}

func (t *table) header() {
	pdf := t.pdf
	pdf.SetFillColor(41, 128, 185)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont(fontFamily, "B", fontSize)
	pdf.CellFormat(indexWidth, t.headerHeight(), "#", "1", 0, "C", true, 0, "")
	pdf.CellFormat(textWidth, t.headerHeight(), "Log Entry", "1", 1, "L", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont(fontFamily, "", fontSize)
}

func (t *table) linesThatFit() int {
	avail := t.pageHeight - marginBottom - t.pdf.GetY() - 2*cellPadding
	return int(math.Floor(avail / t.lineHeight))
}

func (t *table) linesPerPage() int {
	avail := t.pageHeight - marginBottom - marginTop - t.headerHeight() - 2*cellPadding
	return int(math.Floor(avail / t.lineHeight))
}

func (t *table) row(label string, lines []string) {
	pdf := t.pdf
	x, y := marginX, pdf.GetY()
	h := float64(len(lines))*t.lineHeight + 2*cellPadding

	pdf.Rect(x, y, indexWidth, h, "D")
	pdf.Rect(x+indexWidth, y, textWidth, h, "D")

	pdf.SetXY(x, y+cellPadding)
	pdf.CellFormat(indexWidth, t.lineHeight, label, "", 0, "C", false, 0, "")
	for i, line := range lines {
		pdf.SetXY(x+indexWidth, y+cellPadding+float64(i)*t.lineHeight)
		pdf.CellFormat(textWidth, t.lineHeight, t.tr(line), "", 0, "L", false, 0, "")
	}
	pdf.SetXY(x, y+h)
	t.rowsOnPage++
}
