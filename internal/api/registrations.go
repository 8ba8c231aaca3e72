package api

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zechsoft/new-trust-sub003/internal/export"
	lr "github.com/zechsoft/new-trust-sub003/internal/listresource"
	"github.com/zechsoft/new-trust-sub003/internal/models"
)

type RegistrationHandler struct {
	res *lr.Resource[models.Registration]
}

func NewRegistrationHandler(res *lr.Resource[models.Registration]) *RegistrationHandler {
	return &RegistrationHandler{res: res}
}

// Export downloads the currently filtered registrations as CSV, or XLSX
// with format=xlsx.
func (h *RegistrationHandler) Export(c *gin.Context) {
	if err := h.res.EnsureLoaded(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	regs := h.res.View(parseQuery(c)).Items

	var (
		buf         bytes.Buffer
		contentType string
		ext         string
		err         error
	)
	switch c.DefaultQuery("format", "csv") {
	case "csv":
		contentType, ext = "text/csv; charset=utf-8", "csv"
		err = export.WriteCSV(&buf, regs)
	case "xlsx":
		contentType, ext = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "xlsx"
		err = export.WriteXLSX(&buf, regs)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be csv or xlsx"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+export.Filename(time.Now(), ext))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
