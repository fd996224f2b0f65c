package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ZidanKhofifi/hutang/internal/ports"
	"github.com/ZidanKhofifi/hutang/internal/services/utang"
)

type createRequest struct {
	NamaPeminjam      string   `json:"namaPeminjam"`
	Jumlah            *float64 `json:"jumlah"`
	Keterangan        string   `json:"keterangan"`
	Status            string   `json:"status"`
	TanggalJatuhTempo string   `json:"tanggalJatuhTempo"`
}

func (h *Handlers) CreateUtang(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(&req); err != nil {
		h.Logger.Printf("[API][ERR] create: bad JSON: %v", err)
		h.JSON(w, http.StatusBadRequest, map[string]any{
			"pesan": "Gagal menambah utang",
			"error": "bad JSON: " + err.Error(),
		})
		return
	}

	tempo, err := utang.ParseTanggal(req.TanggalJatuhTempo)
	if err != nil {
		h.JSON(w, http.StatusBadRequest, map[string]any{
			"pesan": "Gagal menambah utang",
			"error": err.Error(),
		})
		return
	}

	d, err := h.Debts.Create(r.Context(), utang.CreateInput{
		NamaPeminjam:      req.NamaPeminjam,
		Jumlah:            req.Jumlah,
		Keterangan:        req.Keterangan,
		Status:            req.Status,
		TanggalJatuhTempo: tempo,
	})
	if err != nil {
		h.Logger.Printf("[API][ERR] create: %v", err)
		h.JSON(w, http.StatusBadRequest, map[string]any{
			"pesan": "Gagal menambah utang",
			"error": err.Error(),
		})
		return
	}

	h.JSON(w, http.StatusCreated, map[string]any{
		"pesan": "Catatan utang berhasil ditambahkan!",
		"data":  d,
	})
}

func (h *Handlers) ListUtang(w http.ResponseWriter, r *http.Request) {
	records, err := h.Debts.List(r.Context(), "")
	if err != nil {
		h.Logger.Printf("[API][ERR] list: %v", err)
		h.JSON(w, http.StatusInternalServerError, map[string]any{
			"pesan": "Gagal mengambil data",
			"error": err.Error(),
		})
		return
	}

	h.JSON(w, http.StatusOK, map[string]any{
		"pesan":      "Daftar utang berhasil diambil",
		"jumlahData": len(records),
		"data":       records,
	})
}

func (h *Handlers) UpdateStatusUtang(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	d, err := h.Debts.MarkPaid(r.Context(), id)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			h.JSON(w, http.StatusNotFound, map[string]any{"pesan": "Data tidak ditemukan"})
			return
		}
		h.Logger.Printf("[API][ERR] update id=%s: %v", id, err)
		h.JSON(w, http.StatusBadRequest, map[string]any{
			"pesan": "Gagal memperbarui data",
			"error": err.Error(),
		})
		return
	}

	h.JSON(w, http.StatusOK, map[string]any{
		"pesan": "Status utang berhasil diperbarui!",
		"data":  d,
	})
}

func (h *Handlers) DeleteUtang(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.Debts.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			h.JSON(w, http.StatusNotFound, map[string]any{"pesan": "Data tidak ditemukan"})
			return
		}
		h.Logger.Printf("[API][ERR] delete id=%s: %v", id, err)
		h.JSON(w, http.StatusBadRequest, map[string]any{
			"pesan": "Gagal menghapus data",
			"error": err.Error(),
		})
		return
	}

	h.JSON(w, http.StatusOK, map[string]any{"pesan": "Catatan utang telah dihapus"})
}
