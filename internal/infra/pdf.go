package infra

// pdf.go — printable rendition of a lista using go-pdf/fpdf. One A4 page
// per lista (overflowing to more pages if needed): items grouped by
// category in category order, check state, quantities, and the purchased
// totals at the bottom. This is what gets mailed or downloaded to take to
// a market with no signal.

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/chars222/lista-compras/internal/model"
)

// GenerarListaPDF renders the lista and returns the PDF bytes.
func GenerarListaPDF(l *model.Lista) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, tr("Lista de Mercado"), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentW, 6, tr(l.Nombre), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, l.CreadaEn.Format("02/01/2006"), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	colChk := contentW * 0.08
	colNom := contentW * 0.44
	colCant := contentW * 0.20
	colPrec := contentW * 0.14
	colSub := contentW * 0.14

	ordenados := make([]model.Item, len(l.Items))
	copy(ordenados, l.Items)
	model.OrdenarItems(ordenados)

	var ultima model.Categoria
	primera := true
	for _, it := range ordenados {
		if primera || it.Categoria != ultima {
			pdf.Ln(2)
			pdf.SetFont("Helvetica", "B", 11)
			pdf.SetFillColor(235, 235, 235)
			pdf.CellFormat(contentW, 7, tr(string(it.Categoria)), "", 1, "L", true, 0, "")
			ultima = it.Categoria
			primera = false
		}

		marca := "[  ]"
		if it.Comprado {
			marca = "[X]"
		}
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(colChk, 6, marca, "", 0, "L", false, 0, "")
		pdf.CellFormat(colNom, 6, tr(it.Nombre), "", 0, "L", false, 0, "")
		pdf.CellFormat(colCant, 6, tr(it.Cantidad.String()+" "+it.Unidad), "", 0, "L", false, 0, "")
		if it.Comprado {
			pdf.CellFormat(colPrec, 6, "$"+it.PrecioUnitario.StringFixed(2), "", 0, "R", false, 0, "")
			pdf.CellFormat(colSub, 6, "$"+it.Subtotal().StringFixed(2), "", 1, "R", false, 0, "")
		} else {
			pdf.CellFormat(colPrec+colSub, 6, "", "", 1, "R", false, 0, "")
		}
	}

	if len(ordenados) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(contentW, 8, tr("(lista vacía)"), "", 1, "C", false, 0, "")
	}

	// ── Totals ────────────────────────────────────────────────────────────────
	total := decimal.Zero
	comprados := 0
	for _, it := range ordenados {
		if it.Comprado {
			comprados++
			total = total.Add(it.Subtotal())
		}
	}
	if comprados > 0 {
		pdf.Ln(4)
		pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(colChk+colNom+colCant, 6,
			tr(fmt.Sprintf("Comprados: %d de %d", comprados, len(ordenados))), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(colPrec+colSub, 6, "TOTAL: $"+total.StringFixed(2), "", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render lista: %w", err)
	}
	return buf.Bytes(), nil
}
