package exporter

import (
	"fmt"

	"github.com/ZidanKhofifi/hutang/internal/models"

	"github.com/xuri/excelize/v2"
)

const SheetName = "Daftar Utang"

var header = []string{"No", "Nama Peminjam", "Jumlah", "Keterangan", "Status", "Tanggal Jatuh Tempo", "Dibuat"}

// BuildWorkbook renders the debt register as a single-sheet XLSX file.
// The caller owns the returned file and must Close it.
func BuildWorkbook(records []models.Debt) (*excelize.File, error) {
	f := excelize.NewFile()

	idx, err := f.NewSheet(SheetName)
	if err != nil {
		f.Close()
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, err
	}

	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		f.Close()
		return nil, err
	}

	for i, d := range records {
		tempo := "-"
		if d.TanggalJatuhTempo != nil {
			tempo = d.TanggalJatuhTempo.Format("2006-01-02")
		}
		row := []any{
			i + 1,
			d.NamaPeminjam,
			d.Jumlah,
			d.Keterangan,
			d.Status,
			tempo,
			d.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			f.Close()
			return nil, err
		}
	}

	if err := f.SetColWidth(SheetName, "B", "G", 22); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}
