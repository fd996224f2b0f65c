package importer

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/ZidanKhofifi/hutang/internal/services/utang"

	"github.com/xuri/excelize/v2"
)

// Result summarizes one processed upload.
type Result struct {
	Format  string
	Diimpor int
	Gagal   int
	Errors  []string
}

const maxRowErrors = 20

// Service turns uploaded CSV/XLSX files into debt records. Rows that fail
// validation or persistence are skipped and counted with their messages.
type Service struct {
	Debts *utang.Service
}

func NewService(debts *utang.Service) *Service {
	return &Service{Debts: debts}
}

// Import reads the whole upload, detects its format from the filename and
// content type, and creates one debt record per data row. The first row
// must be a header naming the debt columns.
func (s *Service) Import(ctx context.Context, r io.Reader, filename, contentType string) (Result, error) {
	t0 := time.Now()

	data, err := io.ReadAll(r)
	if err != nil {
		return Result{}, err
	}

	format := detectFormat(filename, contentType)
	log.Printf("[IMP][START] file=%q content_type=%q size=%d detected_format=%s", filename, contentType, len(data), format)

	var res Result
	switch format {
	case "xlsx":
		res, err = s.importXLSX(ctx, data)
		if err != nil {
			log.Printf("[IMP][XLSX][ERR] %v — fallback to CSV", err)
			res, err = s.importCSV(ctx, data)
			format = "csv"
		}
	default:
		res, err = s.importCSV(ctx, data)
		if err != nil {
			log.Printf("[IMP][CSV][ERR] %v — fallback to XLSX", err)
			res, err = s.importXLSX(ctx, data)
			format = "xlsx"
		}
	}
	if err != nil {
		log.Printf("[IMP][ERR] read pipeline: %v", err)
		return Result{}, err
	}

	res.Format = format
	log.Printf("[IMP][DONE] file=%q fmt=%s diimpor=%d gagal=%d duration=%s", filename, format, res.Diimpor, res.Gagal, time.Since(t0))
	return res, nil
}

func (s *Service) importCSV(ctx context.Context, data []byte) (Result, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return Result{}, err
	}

	var res Result
	rowNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("[IMP][CSV][WARN] read row err: %v", err)
			continue
		}
		rowNum++
		s.processRow(ctx, toMap(header, record), rowNum, &res)
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
	}
	return res, nil
}

func (s *Service) importXLSX(ctx context.Context, data []byte) (Result, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return Result{}, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Result{}, errors.New("xlsx has no sheets")
	}

	rows, err := f.Rows(sheets[0])
	if err != nil {
		return Result{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if rows.Error() != nil {
			return Result{}, rows.Error()
		}
		return Result{}, errors.New("xlsx first sheet is empty")
	}
	header, err := rows.Columns()
	if err != nil {
		return Result{}, err
	}

	var res Result
	rowNum := 1
	for rows.Next() {
		record, err := rows.Columns()
		if err != nil {
			log.Printf("[IMP][XLSX][WARN] read row err: %v", err)
			continue
		}
		rowNum++
		s.processRow(ctx, toMap(header, record), rowNum, &res)
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
	}
	return res, rows.Error()
}

// processRow coerces one header-keyed row and hands it to the debt
// service. Validation failures are counted, anything else aborts via res.
func (s *Service) processRow(ctx context.Context, row map[string]string, rowNum int, res *Result) {
	in, err := rowToInput(row)
	if err == nil {
		_, err = s.Debts.Create(ctx, in)
	}
	if err == nil {
		res.Diimpor++
		return
	}

	var verr *utang.ValidationError
	if errors.As(err, &verr) {
		res.Gagal++
		if len(res.Errors) < maxRowErrors {
			res.Errors = append(res.Errors, fmt.Sprintf("baris %d: %s", rowNum, verr.Message))
		}
		return
	}

	res.Gagal++
	if len(res.Errors) < maxRowErrors {
		res.Errors = append(res.Errors, fmt.Sprintf("baris %d: %v", rowNum, err))
	}
	log.Printf("[IMP][ROW][ERR] row=%d err=%v", rowNum, err)
}

func rowToInput(row map[string]string) (utang.CreateInput, error) {
	jumlah, err := utang.ParseJumlah(row["jumlah"])
	if err != nil {
		return utang.CreateInput{}, err
	}
	tempo, err := utang.ParseTanggal(row["tanggaljatuhtempo"])
	if err != nil {
		return utang.CreateInput{}, err
	}
	return utang.CreateInput{
		NamaPeminjam:      row["namapeminjam"],
		Jumlah:            jumlah,
		Keterangan:        row["keterangan"],
		Status:            row["status"],
		TanggalJatuhTempo: tempo,
	}, nil
}

// toMap keys a record by its lowercased, trimmed header names.
func toMap(header, record []string) map[string]string {
	m := make(map[string]string, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if key == "" {
			continue
		}
		if i < len(record) {
			m[key] = strings.TrimSpace(record[i])
		} else {
			m[key] = ""
		}
	}
	return m
}

func detectFormat(filename, contentType string) string {
	switch strings.ToLower(path.Ext(filename)) {
	case ".xlsx":
		return "xlsx"
	case ".csv":
		return "csv"
	}

	if mt, _, err := mime.ParseMediaType(contentType); err == nil {
		switch mt {
		case "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":
			return "xlsx"
		case "text/csv":
			return "csv"
		}
	}
	return "csv"
}
