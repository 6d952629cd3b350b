package certificate

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// GoFPDFRenderer draws certificates natively. It needs no browser, at the
// cost of a simpler layout than the HTML rendition.
type GoFPDFRenderer struct{}

// NewGoFPDFRenderer constructs the native renderer.
func NewGoFPDFRenderer() *GoFPDFRenderer {
	return &GoFPDFRenderer{}
}

var (
	columnTitles = []string{"Date", "Area", "Venue", "Activity", "Hours"}
	columnShares = []float64{0.16, 0.16, 0.18, 0.40, 0.10}
)

const (
	pageMargin   = 16.0
	innerPadding = 12.0
	rowHeight    = 7.0
)

// Render implements Renderer.
func (r *GoFPDFRenderer) Render(ctx context.Context, doc Document, layout Layout) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, pageMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, page := range doc.Pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		drawPage(pdf, tr, page, layout)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// Close implements Renderer.
func (r *GoFPDFRenderer) Close() error { return nil }

func drawPage(pdf *gofpdf.Fpdf, tr func(string) string, page Page, layout Layout) {
	pdf.AddPage()
	pageW, pageH := pdf.GetPageSize()
	boxW := pageW - 2*pageMargin
	boxH := pageH - 2*pageMargin

	pdf.SetLineWidth(0.6)
	pdf.Rect(pageMargin, pageMargin, boxW, boxH, "D")

	left := pageMargin + innerPadding
	contentW := boxW - 2*innerPadding
	y := pageMargin + innerPadding

	if !drawLogo(pdf, layout.LogoPath, pageW, y) {
		pdf.SetFont("Arial", "B", 18)
		pdf.SetXY(left, y)
		pdf.CellFormat(contentW, 10, tr(layout.SchoolName), "", 0, "C", false, 0, "")
	}
	y += 26

	pdf.SetFont("Arial", "", 12)
	pdf.SetXY(left, y)
	pdf.CellFormat(contentW, 7, tr(layout.Title), "", 2, "C", false, 0, "")
	pdf.Ln(4)
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(contentW, 7, "This is to certify that", "", 2, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(contentW, 10, tr(page.StaffName), "", 2, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(contentW, 7, "has attended the following Professional Development activities", "", 2, "C", false, 0, "")
	pdf.Ln(4)

	widths := make([]float64, len(columnShares))
	for i, share := range columnShares {
		widths[i] = contentW * share
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetX(left)
	for i, title := range columnTitles {
		pdf.CellFormat(widths[i], rowHeight+1, title, "", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	if len(page.Items) == 0 {
		pdf.SetX(left)
		pdf.CellFormat(contentW, rowHeight*3, "No PD records found for this staff member.", "", 1, "C", false, 0, "")
	}
	for _, item := range page.Items {
		cells := []string{
			item.StartDate.DMY(),
			deref(item.AreaName),
			deref(item.VenueDisplay),
			item.Title,
			FormatHours(item.Hours),
		}
		pdf.SetX(left)
		for i, value := range cells {
			pdf.CellFormat(widths[i], rowHeight, fit(pdf, tr(value), widths[i]-2), "", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if page.ShowContinued {
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(85, 85, 85)
		pdf.SetX(left)
		pdf.CellFormat(contentW, 5, "(continued)", "", 1, "C", false, 0, "")
		pdf.SetTextColor(17, 17, 17)
	}

	bottom := pageMargin + boxH - innerPadding
	if page.ShowSignature && len(layout.Signatories) > 0 {
		drawSignatures(pdf, tr, layout.Signatories, left, contentW, bottom-22)
	}

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(85, 85, 85)
	pdf.SetXY(left, bottom-5)
	pdf.CellFormat(contentW, 5, "Generated "+layout.GeneratedOn, "", 0, "R", false, 0, "")
	pdf.SetTextColor(17, 17, 17)
}

func drawSignatures(pdf *gofpdf.Fpdf, tr func(string) string, labels []string, left, width, y float64) {
	slot := width / float64(len(labels))
	lineW := slot * 0.8
	pdf.SetLineWidth(0.3)
	pdf.SetFont("Arial", "", 10)
	for i, label := range labels {
		x := left + float64(i)*slot + (slot-lineW)/2
		pdf.Line(x, y, x+lineW, y)
		pdf.SetXY(left+float64(i)*slot, y+1)
		pdf.CellFormat(slot, 5, tr(label), "", 0, "C", false, 0, "")
	}
}

// drawLogo places the logo centred at y. It reports false when the file is
// missing or not an image gofpdf understands.
func drawLogo(pdf *gofpdf.Fpdf, path string, pageW, y float64) bool {
	if strings.TrimSpace(path) == "" {
		return false
	}
	if _, err := os.Stat(path); err != nil {
		return false
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".gif":
	default:
		return false
	}

	opts := gofpdf.ImageOptions{ReadDpi: true}
	info := pdf.RegisterImageOptions(path, opts)
	if !pdf.Ok() || info == nil || info.Height() == 0 {
		pdf.ClearError()
		return false
	}
	h := 22.0
	w := h * info.Width() / info.Height()
	if maxW := pageW - 2*(pageMargin+innerPadding); w > maxW {
		w = maxW
		h = w * info.Height() / info.Width()
	}
	pdf.ImageOptions(path, (pageW-w)/2, y, w, h, false, opts, 0, "")
	return true
}

// fit truncates s with an ellipsis so it renders within width. s is already
// translated to the single-byte core font encoding.
func fit(pdf *gofpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > width {
		s = s[:len(s)-1]
	}
	return s + "..."
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
