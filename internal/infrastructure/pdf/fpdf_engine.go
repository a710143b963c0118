package pdf

import (
	"bytes"
	"fmt"
	"image/png"
	"log"

	"github.com/go-pdf/fpdf"

	"pgw_comprovantes/internal/domain/document"
)

// Page geometry in points: Letter with the 30pt margins used by the
// historical receipt layout.
const (
	pageMargin = 30.0
	logoWidth  = 108.0 // 1.5in
	labelWidth = 108.0
	rowHeight  = 12.0
)

// Engine lays the composer's block sequence out into a paginated PDF.
//
// The logo bytes are optional; nil simply skips every logo block, the
// remainder of the document is unaffected.
type Engine struct {
	logoPNG    []byte
	logoAspect float64 // height/width
}

func NewEngine(logoPNG []byte) *Engine {
	e := &Engine{}
	if len(logoPNG) == 0 {
		return e
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(logoPNG))
	if err != nil || cfg.Width <= 0 {
		log.Printf("[receipt][pdf] discarding undecodable logo err=%v", err)
		return e
	}
	e.logoPNG = logoPNG
	e.logoAspect = float64(cfg.Height) / float64(cfg.Width)
	return e
}

func (e *Engine) Render(blocks []document.Block) ([]byte, error) {
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(true, pageMargin)
	doc.AddPage()
	doc.SetTextColor(74, 71, 70)
	doc.SetDrawColor(74, 71, 70)
	doc.SetLineWidth(1)

	// Core fonts are cp1252; translate the Portuguese accents.
	tr := doc.UnicodeTranslatorFromDescriptor("")

	for _, blk := range blocks {
		switch blk.Kind {
		case document.BlockLogo:
			e.drawLogo(doc)
		case document.BlockTitle:
			doc.SetFont("Helvetica", "B", 16)
			doc.CellFormat(0, 24, tr(blk.Text), "", 1, "C", false, 0, "")
		case document.BlockSentence:
			doc.SetFont("Helvetica", "I", 10)
			doc.CellFormat(0, 14, tr(blk.Text), "", 1, "L", false, 0, "")
			doc.Ln(4)
		case document.BlockSectionHeader:
			doc.SetFont("Helvetica", "B", 10)
			doc.CellFormat(0, 16, tr(blk.Text), "", 1, "L", false, 0, "")
		case document.BlockRow:
			doc.SetFont("Helvetica", "B", 9)
			doc.CellFormat(labelWidth, rowHeight, tr(blk.Label), "", 0, "L", false, 0, "")
			doc.SetFont("Helvetica", "", 9)
			doc.MultiCell(0, rowHeight, tr(blk.Value), "", "L", false)
		case document.BlockSeparator:
			e.drawRule(doc)
		case document.BlockDisclosure:
			e.drawDisclosure(doc, tr(blk.Text))
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: build document: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *Engine) drawLogo(doc *fpdf.Fpdf) {
	if len(e.logoPNG) == 0 {
		return
	}
	height := logoWidth * e.logoAspect
	pageWidth, _ := doc.GetPageSize()

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader("pgw-logo", opts, bytes.NewReader(e.logoPNG))

	y := doc.GetY()
	doc.ImageOptions("pgw-logo", (pageWidth-logoWidth)/2, y, logoWidth, height, false, opts, 0, "")
	doc.SetY(y + height + 22)
}

func (e *Engine) drawRule(doc *fpdf.Fpdf) {
	pageWidth, _ := doc.GetPageSize()
	y := doc.GetY() + 5
	doc.Line(pageMargin, y, pageWidth-pageMargin, y)
	doc.SetY(y + 8)
}

func (e *Engine) drawDisclosure(doc *fpdf.Fpdf, text string) {
	pageWidth, _ := doc.GetPageSize()

	y := doc.GetY() + 20
	doc.Line(pageMargin, y, pageWidth-pageMargin, y)
	doc.SetY(y + 12)

	doc.SetFont("Helvetica", "I", 11)
	doc.MultiCell(0, 14, text, "", "C", false)

	y = doc.GetY() + 12
	doc.Line(pageMargin, y, pageWidth-pageMargin, y)
	doc.SetY(y + 6)
}
