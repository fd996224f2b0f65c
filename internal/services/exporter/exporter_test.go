package exporter

import (
	"testing"
	"time"

	"github.com/ZidanKhofifi/hutang/internal/models"
)

func TestBuildWorkbook(t *testing.T) {
	tempo := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	records := []models.Debt{
		{
			NamaPeminjam:      "Andi",
			Jumlah:            50000,
			Keterangan:        "pinjam warung",
			Status:            models.StatusBelumLunas,
			TanggalJatuhTempo: &tempo,
			CreatedAt:         time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC),
		},
		{
			NamaPeminjam: "Budi",
			Jumlah:       20000,
			Keterangan:   "-",
			Status:       models.StatusLunas,
			CreatedAt:    time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
		},
	}

	f, err := BuildWorkbook(records)
	if err != nil {
		t.Fatalf("build workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][1] != "Nama Peminjam" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][1] != "Andi" || rows[1][4] != models.StatusBelumLunas {
		t.Fatalf("unexpected first row: %v", rows[1])
	}
	if rows[1][5] != "2025-12-31" {
		t.Fatalf("unexpected due date cell: %v", rows[1][5])
	}
	if rows[2][1] != "Budi" || rows[2][5] != "-" {
		t.Fatalf("unexpected second row: %v", rows[2])
	}
}

func TestBuildWorkbookEmpty(t *testing.T) {
	f, err := BuildWorkbook(nil)
	if err != nil {
		t.Fatalf("build workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header only, got %d rows", len(rows))
	}
}
