package export

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"

	"calmcollective/internal/content"
	"calmcollective/internal/db"
)

const appName = "CalmCollective"

// PDFFilter describes the filters a PDF export was produced with, for the
// subtitle and the download filename.
type PDFFilter struct {
	Flavor string
	Start  string
	End    string
}

func (f PDFFilter) subtitle() string {
	parts := []string{}
	if f.Flavor != "" {
		parts = append(parts, "Flavor: "+content.FlavorLabel(f.Flavor))
	}
	if f.Start != "" {
		parts = append(parts, "Start: "+f.Start)
	}
	if f.End != "" {
		parts = append(parts, "End: "+f.End)
	}
	if len(parts) == 0 {
		return "All entries"
	}
	return strings.Join(parts, " | ")
}

// Filename builds the attachment name, e.g. entries-islam-2026-08-01.pdf.
func (f PDFFilter) Filename() string {
	parts := []string{"entries"}
	for _, p := range []string{f.Flavor, f.Start, f.End} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "-") + ".pdf"
}

// WritePDF renders the entries chronologically as an A4 document.
func WritePDF(w io.Writer, entries []db.Entry, filter PDFFilter) error {
	sorted := make([]db.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time().Before(sorted[j].Time())
	})

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(appName+" Export", true)
	pdf.SetAuthor(appName, true)
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(true, 20)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	header := func() {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 7, tr(appName+" — Entries Export"), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 5, tr(filter.subtitle()), "", 1, "L", false, 0, "")
		pdf.SetLineWidth(0.2)
		x, y := pdf.GetX(), pdf.GetY()
		pageW, _ := pdf.GetPageSize()
		pdf.Line(x, y, pageW-18, y)
		pdf.Ln(4)
	}
	pdf.SetHeaderFunc(header)
	pdf.AddPage()

	if len(sorted) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(0, 5, "No entries available for the selected filters.", "", 1, "L", false, 0, "")
		return output(pdf, w)
	}

	block := func(label, text string, quoted bool) {
		if text == "" {
			return
		}
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(0, 5, tr(label+":"), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		if quoted {
			text = "“" + text + "”"
		}
		pdf.MultiCell(0, 5, tr(text), "", "L", false)
	}

	for _, e := range sorted {
		pdf.SetFont("Helvetica", "B", 11)
		head := fmt.Sprintf("%s   •   %s   •   Mood: %s",
			e.DisplayTime(),
			content.FlavorLabel(e.Flavor),
			strconv.FormatFloat(e.MoodSlider, 'f', -1, 64))
		pdf.CellFormat(0, 6, tr(head), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		score := fmt.Sprintf("Mood score: %s   (+%d / -%d)",
			e.Analysis.MoodScore.String(), e.Analysis.Positive, e.Analysis.Negative)
		pdf.CellFormat(0, 5, tr(score), "", 1, "L", false, 0, "")

		if text := strings.TrimSpace(e.Text); text != "" {
			block("Your words", text, false)
		}
		if e.Quote != nil {
			block("Supportive note", *e.Quote, false)
		}
		if e.Spiritual != nil {
			block("Spiritual note", *e.Spiritual, false)
		}
		if e.Wisdom != nil && e.Wisdom.Text != "" {
			block("Wisdom", e.Wisdom.Text, true)
			if e.Wisdom.Author != "" {
				pdf.SetFont("Helvetica", "I", 10)
				pdf.CellFormat(0, 5, tr("— "+e.Wisdom.Author), "", 1, "L", false, 0, "")
			}
		}

		pdf.Ln(2)
		pdf.SetLineWidth(0.1)
		pdf.SetDashPattern([]float64{1, 2}, 0)
		x, y := pdf.GetX(), pdf.GetY()
		pageW, _ := pdf.GetPageSize()
		pdf.Line(x, y, pageW-18, y)
		pdf.SetDashPattern([]float64{}, 0)
		pdf.Ln(4)
	}

	return output(pdf, w)
}

func output(pdf *fpdf.Fpdf, w io.Writer) error {
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}
