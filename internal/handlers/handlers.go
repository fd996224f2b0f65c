package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/ZidanKhofifi/hutang/internal/config/connections/mongo"
	"github.com/ZidanKhofifi/hutang/internal/config/connections/s3"
	"github.com/ZidanKhofifi/hutang/internal/repository/debts"
	"github.com/ZidanKhofifi/hutang/internal/services/importer"
	"github.com/ZidanKhofifi/hutang/internal/services/utang"
)

type Handlers struct {
	Mongo    *mongo.Mongo
	S3       *s3.S3
	Debts    *utang.Service
	Importer *importer.Service

	Logger *log.Logger
}

func New(mg *mongo.Mongo, s3c *s3.S3) *Handlers {
	svc := utang.NewService(debts.NewRepo(mg))

	return &Handlers{
		Mongo:    mg,
		S3:       s3c,
		Debts:    svc,
		Importer: importer.NewService(svc),
		Logger:   log.Default(),
	}
}

// Routes wires every API and page endpoint onto one mux.
func (h *Handlers) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health)

	mux.HandleFunc("POST /api/utang", h.CreateUtang)
	mux.HandleFunc("GET /api/utang", h.ListUtang)
	mux.HandleFunc("PATCH /api/utang/{id}", h.UpdateStatusUtang)
	mux.HandleFunc("DELETE /api/utang/{id}", h.DeleteUtang)
	mux.HandleFunc("POST /api/utang/import", h.ImportUtang)
	mux.HandleFunc("GET /api/utang/import/{id}", h.ImportStatus)
	mux.HandleFunc("GET /api/utang/export", h.ExportUtang)

	mux.HandleFunc("GET /{$}", h.HomePage)
	mux.HandleFunc("POST /add", h.AddUtangForm)
	mux.HandleFunc("POST /update/{id}", h.UpdateUtangForm)
	mux.HandleFunc("POST /delete/{id}", h.DeleteUtangForm)

	return mux
}

func (h *Handlers) JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
