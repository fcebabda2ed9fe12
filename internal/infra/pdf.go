package infra

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// ReporteLinea is one detail row of a purchase or sale report.
type ReporteLinea struct {
	CodigoBarras string
	Cantidad     int
	Precio       decimal.Decimal
}

// Reporte carries everything the PDF needs, already formatted: the caller
// owns date formatting and the "Proveedor:"/"Cliente:" label.
type Reporte struct {
	Titulo  string
	Folio   string
	Fecha   string
	Tercero string
	Total   decimal.Decimal
	Lineas  []ReporteLinea
}

// GenerateReportePDF writes an A4 report for one header with its line items
// and returns the path of the generated file. The stored total is printed
// next to the sum of the rows so a drift is visible at a glance.
func GenerateReportePDF(rep Reporte, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	slug := strings.ToLower(strings.ReplaceAll(rep.Titulo, " ", "_"))
	filePath := filepath.Join(storagePath, fmt.Sprintf("%s_%s.pdf", slug, rep.Folio))

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 10, rep.Titulo, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Folio: "+rep.Folio, "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 6, "Fecha: "+rep.Fecha, "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 6, rep.Tercero, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	col1 := contentW * 0.40 // codigo de barras
	col2 := contentW * 0.15 // cantidad
	col3 := contentW * 0.20 // precio unitario
	col4 := contentW * 0.25 // subtotal

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(col1, 7, "Código de barras", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 7, "Cantidad", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 7, "Precio", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 7, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	suma := decimal.Zero
	for _, l := range rep.Lineas {
		subtotal := l.Precio.Mul(decimal.NewFromInt(int64(l.Cantidad)))
		suma = suma.Add(subtotal)
		pdf.CellFormat(col1, 6, l.CodigoBarras, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, fmt.Sprintf("%d", l.Cantidad), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 6, "$"+l.Precio.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 6, "$"+subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(col1+col2+col3, 6, "Suma de partidas:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col4, 6, "$"+suma.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(col1+col2+col3, 8, "TOTAL REGISTRADO:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col4, 8, "$"+rep.Total.StringFixed(2), "", 1, "R", false, 0, "")

	if !suma.Equal(rep.Total) {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(contentW, 5, "El total registrado no coincide con la suma de las partidas.", "", 1, "L", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}
