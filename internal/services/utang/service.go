package utang

import (
	"context"
	"errors"
	"strings"

	"github.com/ZidanKhofifi/hutang/internal/models"
	"github.com/ZidanKhofifi/hutang/internal/ports"
)

// Service orchestrates debt record operations over a DebtStore. It never
// recovers from an error, it surfaces ValidationError, ports.ErrNotFound
// or StoreError to the caller unchanged.
type Service struct {
	Store ports.DebtStore
}

func NewService(store ports.DebtStore) *Service {
	return &Service{Store: store}
}

// Create validates the input, applies defaults and persists the record.
func (s *Service) Create(ctx context.Context, in CreateInput) (models.Debt, error) {
	if verr := validate(in); verr != nil {
		return models.Debt{}, verr
	}

	d := models.Debt{
		NamaPeminjam:      strings.TrimSpace(in.NamaPeminjam),
		Jumlah:            *in.Jumlah,
		Keterangan:        in.Keterangan,
		Status:            in.Status,
		TanggalJatuhTempo: in.TanggalJatuhTempo,
	}
	if strings.TrimSpace(d.Keterangan) == "" {
		d.Keterangan = "-"
	}
	if d.Status == "" {
		d.Status = models.StatusBelumLunas
	}

	stored, err := s.Store.Insert(ctx, d)
	if err != nil {
		return models.Debt{}, &StoreError{Op: "insert", Err: err}
	}
	return stored, nil
}

// List returns records newest first, optionally filtered by a
// case-insensitive borrower-name substring.
func (s *Service) List(ctx context.Context, search string) ([]models.Debt, error) {
	recs, err := s.Store.List(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}
	return recs, nil
}

// MarkPaid flips the record's status to Lunas. Calling it on an already
// paid record is a no-op that still returns the record.
func (s *Service) MarkPaid(ctx context.Context, id string) (models.Debt, error) {
	d, err := s.Store.MarkPaid(ctx, id)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return models.Debt{}, err
		}
		return models.Debt{}, &StoreError{Op: "update", Err: err}
	}
	return d, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.Store.Delete(ctx, id); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return err
		}
		return &StoreError{Op: "delete", Err: err}
	}
	return nil
}

// OutstandingTotal sums jumlah over the records that are still unpaid.
func OutstandingTotal(records []models.Debt) float64 {
	var total float64
	for _, d := range records {
		if d.Status == models.StatusBelumLunas {
			total += d.Jumlah
		}
	}
	return total
}
