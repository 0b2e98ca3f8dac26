package billing

import (
	"fmt"
	"io"
	"strings"

	"hotelier/models"

	"github.com/jung-kurt/gofpdf"
)

const dateLayout = "2006-01-02"

// WriteReceipt renders a one-page PDF receipt for the bill.
func WriteReceipt(w io.Writer, bill *models.Bill) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Bill "+bill.ID, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(190, 10, "Guest Bill")
	pdf.Ln(12)

	currency := strings.ToUpper(bill.Currency)
	nights := int(bill.CheckOut.Sub(bill.CheckIn).Hours() / 24)

	pdf.SetFont("Arial", "", 12)
	rows := [][2]string{
		{"Bill", bill.ID},
		{"Booking", bill.BookingID},
		{"Guest", bill.GuestName},
		{"National ID", bill.NationalID},
		{"Room", strings.TrimSpace(bill.RoomID + " " + bill.RoomType)},
		{"Check-in", bill.CheckIn.Format(dateLayout)},
		{"Check-out", bill.CheckOut.Format(dateLayout)},
		{"Nights", fmt.Sprintf("%d", nights)},
		{"Price per night", fmt.Sprintf("%.2f %s", bill.PricePerNight, currency)},
		{"Status", string(bill.Status)},
	}
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		pdf.CellFormat(50, 8, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(140, 8, row[1], "", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(50, 10, "Total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(140, 10, fmt.Sprintf("%.2f %s", bill.TotalAmount, currency), "T", 1, "L", false, 0, "")

	return pdf.Output(w)
}
