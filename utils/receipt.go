package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"frontdesk-backend/models"
)

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// ReceiptText renders the denormalized booking record as a plain-text
// receipt. The record is passed through unchanged; only formatting
// happens here.
func ReceiptText(b models.Booking) string {
	lines := []string{
		"MyHotel - Booking Receipt",
		"",
		fmt.Sprintf("Receipt ID: %d (%s)", b.ID, b.Ref),
		fmt.Sprintf("Guest: %s", b.GuestName),
		fmt.Sprintf("Phone: %s", orDash(b.Phone)),
		fmt.Sprintf("Email: %s", orDash(b.Email)),
		fmt.Sprintf("Room: %d (%s)", b.RoomNumber, b.RoomType),
		fmt.Sprintf("Check-in: %s", b.CheckIn),
		fmt.Sprintf("Check-out: %s", b.CheckOut),
		fmt.Sprintf("Nights: %d", b.Nights),
		fmt.Sprintf("Rate/Night: ₹%.0f", b.Rate),
		fmt.Sprintf("Extras: ₹%.0f", b.Extras),
		fmt.Sprintf("Tax (12%%): ₹%.0f", b.Tax),
		"----------",
		fmt.Sprintf("Total Paid: ₹%.0f", b.Total),
		"",
		"Thank you for choosing MyHotel!",
	}
	return strings.Join(lines, "\n")
}

// ExportReceipt writes the receipt into dir, named by the booking
// reference code, and returns the written path.
func ExportReceipt(b models.Booking, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir %s: %w", dir, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("receipt_%s.txt", b.Ref))
	if err := os.WriteFile(path, []byte(ReceiptText(b)), 0o644); err != nil {
		return "", fmt.Errorf("write receipt: %w", err)
	}
	return path, nil
}
