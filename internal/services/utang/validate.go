package utang

import (
	"strconv"
	"strings"
	"time"

	"github.com/ZidanKhofifi/hutang/internal/models"
)

// CreateInput is one candidate debt record before validation. Jumlah is a
// pointer so a missing amount is distinguishable from zero.
type CreateInput struct {
	NamaPeminjam      string
	Jumlah            *float64
	Keterangan        string
	Status            string
	TanggalJatuhTempo *time.Time
}

func validate(in CreateInput) *ValidationError {
	if strings.TrimSpace(in.NamaPeminjam) == "" {
		return &ValidationError{Field: "namaPeminjam", Message: "Nama peminjam harus diisi"}
	}
	if in.Jumlah == nil {
		return &ValidationError{Field: "jumlah", Message: "Jumlah utang harus diisi"}
	}
	if *in.Jumlah < 0 {
		return &ValidationError{Field: "jumlah", Message: "Jumlah utang tidak boleh negatif"}
	}
	if in.Status != "" && !models.ValidStatus(in.Status) {
		return &ValidationError{Field: "status", Message: "Status utang tidak valid"}
	}
	return nil
}

// ParseJumlah coerces a form/import field to an amount. Empty input means
// the field is absent, not zero.
func ParseJumlah(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, &ValidationError{Field: "jumlah", Message: "Jumlah utang harus berupa angka"}
	}
	return &v, nil
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02.01.2006",
}

// ParseTanggal coerces a date field; empty input yields nil.
func ParseTanggal(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, l := range dateLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return &t, nil
		}
	}
	return nil, &ValidationError{Field: "tanggalJatuhTempo", Message: "Tanggal jatuh tempo tidak valid"}
}
