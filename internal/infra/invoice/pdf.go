package invoice

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"parqueo-pagos/internal/domain/billing"

	"github.com/phpdave11/gofpdf"
)

const writeTimeout = 5 * time.Second

// Generate renders the single-page invoice PDF for a payment and returns its
// path under dir. The file is stat-polled before returning so callers never
// hand out a path that is not durably on disk yet.
func Generate(dir string, payment *billing.Payment) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create invoice dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("invoice-%d.pdf", payment.ID))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 12, "Factura - Parqueo Arquitectura", "", 1, "C", false, 0, "")
	pdf.Ln(6)
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Ticket: %s", payment.TicketIDOrigen), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Fecha: %s", time.Now().Format("02/01/2006 15:04:05")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Monto: Q%s", payment.Amount), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Transaccion: %s", payment.ProviderResponse.TransactionID), "", 1, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write invoice pdf: %w", err)
	}

	if err := waitForFile(path, writeTimeout); err != nil {
		return "", err
	}
	return path, nil
}

func waitForFile(path string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		if fi, err := os.Stat(path); err == nil && fi.Size() > 0 {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("invoice %s not written within %s", path, timeout)
		}
		time.Sleep(50 * time.Millisecond)
	}
}
