package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ZidanKhofifi/hutang/internal/services/exporter"
)

// ExportUtang streams the whole register as an XLSX attachment.
func (h *Handlers) ExportUtang(w http.ResponseWriter, r *http.Request) {
	records, err := h.Debts.List(r.Context(), "")
	if err != nil {
		h.Logger.Printf("[EXPORT][ERR] list: %v", err)
		h.JSON(w, http.StatusInternalServerError, map[string]any{
			"pesan": "Gagal mengekspor data",
			"error": err.Error(),
		})
		return
	}

	f, err := exporter.BuildWorkbook(records)
	if err != nil {
		h.Logger.Printf("[EXPORT][ERR] build workbook: %v", err)
		h.JSON(w, http.StatusInternalServerError, map[string]any{
			"pesan": "Gagal mengekspor data",
			"error": err.Error(),
		})
		return
	}
	defer f.Close()

	name := fmt.Sprintf("daftar-utang-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)

	if err := f.Write(w); err != nil {
		h.Logger.Printf("[EXPORT][ERR] write workbook: %v", err)
	}
}
