package invoices

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"parqueo-pagos/config"

	"github.com/gin-gonic/gin"
)

// Download streams a generated invoice PDF by filename. Unauthenticated so
// that emailed links work without a token.
func Download(c *gin.Context) {
	name := c.Param("name")
	if name != filepath.Base(name) || !strings.HasSuffix(name, ".pdf") {
		c.JSON(http.StatusNotFound, gin.H{"message": "Invoice not found"})
		return
	}

	path := filepath.Join(config.INVOICE_DIR, name)
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Invoice not found"})
		return
	}

	c.File(path)
}
