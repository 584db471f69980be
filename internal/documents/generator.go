package documents

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
	"github.com/rs/zerolog/log"

	"hotelpos/config"
	"hotelpos/infras/otel"
	"hotelpos/infras/s3"
	"hotelpos/shared/constant"
)

const (
	ticketWidthMM  = 80
	ticketHeightMM = 260
	ticketMarginMM = 4

	kotDirectory     = "kot"
	billDirectory    = "bills"
	invoiceDirectory = "invoices"

	timestampLayout = "02-01-2006 15:04"
)

type fpdfGenerator struct {
	cfg  *config.Config
	s3   s3.S3
	otel otel.Otel
}

func New(cfg *config.Config, s3 s3.S3, otel otel.Otel) Generator {
	return &fpdfGenerator{
		cfg:  cfg,
		s3:   s3,
		otel: otel,
	}
}

func newTicketPDF() *fpdf.Fpdf {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "mm",
		Size:    fpdf.SizeType{Wd: ticketWidthMM, Ht: ticketHeightMM},
	})
	pdf.SetMargins(ticketMarginMM, ticketMarginMM, ticketMarginMM)
	pdf.SetAutoPageBreak(true, ticketMarginMM)
	pdf.AddPage()

	return pdf
}

func (g *fpdfGenerator) ticketSeparator(pdf *fpdf.Fpdf) {
	pdf.SetFont("Courier", "", 8)
	pdf.CellFormat(0, 3, "--------------------------------", "", 1, "C", false, 0, "")
}

func (g *fpdfGenerator) KitchenTicket(ctx context.Context, data KOTData) (ref DocumentRef, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelDocumentScopeName, constant.OtelDocumentScopeName+".KitchenTicket")
	defer scope.End()
	defer scope.TraceIfError(err)

	pdf := newTicketPDF()

	pdf.SetFont("Courier", "B", 11)
	pdf.CellFormat(0, 5, "KITCHEN ORDER TICKET", "", 1, "C", false, 0, "")

	g.ticketSeparator(pdf)

	pdf.SetFont("Courier", "B", 9)
	pdf.CellFormat(0, 4, data.Reference, "", 1, "L", false, 0, "")
	pdf.SetFont("Courier", "", 8)
	pdf.CellFormat(0, 4, data.PrintedAt.Format(timestampLayout), "", 1, "L", false, 0, "")

	g.ticketSeparator(pdf)

	pdf.SetFont("Courier", "", 9)

	for _, line := range data.Lines {
		pdf.CellFormat(0, 4, fmt.Sprintf("%dx %s", line.Quantity, line.ItemName), "", 1, "L", false, 0, "")

		if line.Note != "" {
			pdf.SetFont("Courier", "I", 8)
			pdf.MultiCell(0, 4, "   >> "+line.Note, "", "L", false)
			pdf.SetFont("Courier", "", 9)
		}
	}

	g.ticketSeparator(pdf)

	fileName := fmt.Sprintf("kot_%s_%s.pdf", data.OrderID, data.PrintedAt.Format("20060102_150405"))

	return g.persist(ctx, pdf, kotDirectory, fileName)
}

func (g *fpdfGenerator) Bill(ctx context.Context, data BillData) (ref DocumentRef, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelDocumentScopeName, constant.OtelDocumentScopeName+".Bill")
	defer scope.End()
	defer scope.TraceIfError(err)

	pdf := newTicketPDF()

	pdf.SetFont("Courier", "B", 11)
	pdf.CellFormat(0, 5, data.Profile.Name, "", 1, "C", false, 0, "")
	pdf.SetFont("Courier", "", 7)
	pdf.MultiCell(0, 3, data.Profile.Address, "", "C", false)

	if data.Profile.GSTIN != "" {
		pdf.CellFormat(0, 3, "GSTIN: "+data.Profile.GSTIN, "", 1, "C", false, 0, "")
	}

	if data.Profile.Phone != "" {
		pdf.CellFormat(0, 3, "Ph: "+data.Profile.Phone, "", 1, "C", false, 0, "")
	}

	g.ticketSeparator(pdf)

	pdf.SetFont("Courier", "", 8)
	pdf.CellFormat(0, 4, data.Reference, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 4, data.CreatedAt.Format(timestampLayout), "", 1, "L", false, 0, "")

	g.ticketSeparator(pdf)

	pdf.SetFont("Courier", "B", 8)
	pdf.CellFormat(34, 4, "Item", "", 0, "L", false, 0, "")
	pdf.CellFormat(8, 4, "Qty", "", 0, "R", false, 0, "")
	pdf.CellFormat(14, 4, "Rate", "", 0, "R", false, 0, "")
	pdf.CellFormat(16, 4, "Amount", "", 1, "R", false, 0, "")
	pdf.SetFont("Courier", "", 8)

	for _, line := range data.Lines {
		pdf.CellFormat(34, 4, truncateName(line.Name, 16), "", 0, "L", false, 0, "")
		pdf.CellFormat(8, 4, fmt.Sprintf("%d", line.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(14, 4, fmt.Sprintf("%.2f", line.UnitPrice), "", 0, "R", false, 0, "")
		pdf.CellFormat(16, 4, fmt.Sprintf("%.2f", line.Total), "", 1, "R", false, 0, "")
	}

	g.ticketSeparator(pdf)

	g.billTotalRow(pdf, "Subtotal", data.Totals.Subtotal, false)
	g.billTotalRow(pdf, "Tax", data.Totals.Tax, false)

	if data.Totals.Discount > 0 {
		g.billTotalRow(pdf, "Discount", -data.Totals.Discount, false)
	}

	g.billTotalRow(pdf, "TOTAL", data.Totals.Total, true)

	g.ticketSeparator(pdf)

	pdf.SetFont("Courier", "", 8)
	pdf.CellFormat(0, 4, "Thank you, visit again!", "", 1, "C", false, 0, "")

	fileName := fmt.Sprintf("bill_%s.pdf", data.OrderID)

	return g.persist(ctx, pdf, billDirectory, fileName)
}

func (g *fpdfGenerator) billTotalRow(pdf *fpdf.Fpdf, label string, amount float64, bold bool) {
	style := ""
	if bold {
		style = "B"
	}

	pdf.SetFont("Courier", style, 9)
	pdf.CellFormat(40, 4, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(32, 4, fmt.Sprintf("%.2f", amount), "", 1, "R", false, 0, "")
}

// truncateName shortens an item name to fit the ticket column without
// splitting a multi-byte character.
func truncateName(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	return string(runes[:max])
}

func (g *fpdfGenerator) RoomInvoice(ctx context.Context, data RoomInvoiceData) (ref DocumentRef, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelDocumentScopeName, constant.OtelDocumentScopeName+".RoomInvoice")
	defer scope.End()
	defer scope.TraceIfError(err)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 9, data.Profile.Name, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, data.Profile.Address, "", "C", false)

	if data.Profile.GSTIN != "" {
		pdf.CellFormat(0, 5, "GSTIN: "+data.Profile.GSTIN, "", 1, "C", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 7, "TAX INVOICE", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(95, 6, "Invoice No: "+data.InvoiceNumber, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Date: "+data.CheckOut.Format("02-01-2006"), "", 1, "R", false, 0, "")
	pdf.CellFormat(95, 6, "Guest: "+data.GuestName, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Room: %d", data.RoomNumber), "", 1, "R", false, 0, "")

	if data.GuestPhone != "" {
		pdf.CellFormat(95, 6, "Phone: "+data.GuestPhone, "", 1, "L", false, 0, "")
	}

	pdf.CellFormat(95, 6, "Check-in: "+data.CheckIn.Format("02-01-2006"), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Check-out: "+data.CheckOut.Format("02-01-2006"), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(100, 7, "Description", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 7, "Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(0, 7, "Amount", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(100, 7, fmt.Sprintf("Room charges (%.2f / night)", data.NightlyRate), "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 7, fmt.Sprintf("%d", data.Nights), "1", 0, "R", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("%.2f", data.RoomCharge), "1", 1, "R", false, 0, "")

	for _, line := range data.ServiceLines {
		pdf.CellFormat(100, 7, line.ItemName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("%d", line.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(0, 7, fmt.Sprintf("%.2f", line.TotalPrice), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(2)

	g.invoiceTotalRow(pdf, fmt.Sprintf("CGST @ %.1f%%", data.GSTPercent), data.CGST, false)
	g.invoiceTotalRow(pdf, fmt.Sprintf("SGST @ %.1f%%", data.GSTPercent), data.SGST, false)
	g.invoiceTotalRow(pdf, "Grand Total", data.GrandTotal, true)

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 5, "Amount in words: "+amountInWords(data.GrandTotal), "", "L", false)

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Authorized Signatory", "", 1, "R", false, 0, "")

	fileName := fmt.Sprintf("invoice_%s.pdf", data.InvoiceNumber)

	return g.persist(ctx, pdf, invoiceDirectory, fileName)
}

func (g *fpdfGenerator) invoiceTotalRow(pdf *fpdf.Fpdf, label string, amount float64, bold bool) {
	style := ""
	if bold {
		style = "B"
	}

	pdf.SetFont("Helvetica", style, 10)
	pdf.CellFormat(125, 7, label, "", 0, "R", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("%.2f", amount), "1", 1, "R", false, 0, "")
}

// persist writes the rendered PDF to the output directory and, when object
// storage is enabled, archives a copy there.
func (g *fpdfGenerator) persist(ctx context.Context, pdf *fpdf.Fpdf, directory, fileName string) (ref DocumentRef, err error) {
	var buf bytes.Buffer

	if err = pdf.Output(&buf); err != nil {
		log.Error().Err(err).Str("file", fileName).Msg("failed to render document")

		return ref, fmt.Errorf("failed to render document: %w", err)
	}

	outDir := filepath.Join(g.cfg.Documents.OutputDir, directory)
	if err = os.MkdirAll(outDir, 0o755); err != nil {
		return ref, fmt.Errorf("failed to create document directory: %w", err)
	}

	ref.Path = filepath.Join(outDir, fileName)

	if err = os.WriteFile(ref.Path, buf.Bytes(), 0o644); err != nil {
		log.Error().Err(err).Str("file", fileName).Msg("failed to write document")

		return DocumentRef{}, fmt.Errorf("failed to write document: %w", err)
	}

	if g.cfg.External.S3.Enable {
		url, err := g.s3.UploadFileBytes(ctx, g.cfg.External.S3.BucketName, directory, fileName, constant.ContentTypePDF, buf.Bytes())
		if err != nil {
			log.Warn().Err(err).Str("file", fileName).Msg("failed to archive document")
		} else {
			ref.URL = url
		}
	}

	return ref, nil
}
