package handlers

import (
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/ZidanKhofifi/hutang/internal/models"
	"github.com/ZidanKhofifi/hutang/internal/services/utang"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type homeData struct {
	DaftarUtang []models.Debt
	TotalUtang  float64
	Cari        string
	Error       string
}

func (h *Handlers) renderHome(w http.ResponseWriter, data homeData) {
	if err := pageTmpl.Execute(w, data); err != nil {
		h.Logger.Printf("[PAGE][ERR] execute template: %v", err)
	}
}

// HomePage renders the register, optionally filtered by ?cari=<name>.
func (h *Handlers) HomePage(w http.ResponseWriter, r *http.Request) {
	cari := r.URL.Query().Get("cari")

	records, err := h.Debts.List(r.Context(), cari)
	if err != nil {
		h.Logger.Printf("[PAGE][ERR] list: %v", err)
		http.Error(w, "Gagal mengambil data", http.StatusInternalServerError)
		return
	}

	h.renderHome(w, homeData{
		DaftarUtang: records,
		TotalUtang:  utang.OutstandingTotal(records),
		Cari:        cari,
	})
}

// AddUtangForm creates a record from the form. A failed create re-renders
// the page with the message inline instead of failing the request.
func (h *Handlers) AddUtangForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Form tidak valid", http.StatusBadRequest)
		return
	}

	in := utang.CreateInput{
		NamaPeminjam: r.FormValue("namaPeminjam"),
		Keterangan:   r.FormValue("keterangan"),
	}

	jumlah, err := utang.ParseJumlah(r.FormValue("jumlah"))
	if err == nil {
		in.Jumlah = jumlah
		in.TanggalJatuhTempo, err = utang.ParseTanggal(r.FormValue("tanggalJatuhTempo"))
	}
	if err == nil {
		_, err = h.Debts.Create(r.Context(), in)
	}
	if err == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	h.Logger.Printf("[PAGE][ERR] add: %v", err)

	msg := err.Error()
	var verr *utang.ValidationError
	if errors.As(err, &verr) {
		msg = verr.Message
	}

	records, listErr := h.Debts.List(r.Context(), "")
	if listErr != nil {
		h.Logger.Printf("[PAGE][ERR] list after failed add: %v", listErr)
	}

	h.renderHome(w, homeData{
		DaftarUtang: records,
		TotalUtang:  utang.OutstandingTotal(records),
		Error:       msg,
	})
}

// UpdateUtangForm marks the record paid and sends the browser back home.
func (h *Handlers) UpdateUtangForm(w http.ResponseWriter, r *http.Request) {
	if _, err := h.Debts.MarkPaid(r.Context(), r.PathValue("id")); err != nil {
		h.Logger.Printf("[PAGE][ERR] update id=%s: %v", r.PathValue("id"), err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handlers) DeleteUtangForm(w http.ResponseWriter, r *http.Request) {
	if err := h.Debts.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.Logger.Printf("[PAGE][ERR] delete id=%s: %v", r.PathValue("id"), err)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Gagal menghapus data"))
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
