package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"path"

	"github.com/ZidanKhofifi/hutang/internal/repository/imports"
	"github.com/ZidanKhofifi/hutang/internal/services/importer"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// ImportUtang accepts multipart/form-data with a `file` field holding a
// CSV or XLSX register, archives the raw file to S3, creates one debt
// record per valid row and keeps an audit document in import_records.
func (h *Handlers) ImportUtang(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		h.Logger.Printf("[IMPORT][ERR] parse multipart: %v", err)
		h.JSON(w, http.StatusBadRequest, map[string]any{
			"pesan": "Gagal mengimpor data",
			"error": "bad multipart: " + err.Error(),
		})
		return
	}

	f, fh, err := r.FormFile("file")
	if err != nil {
		h.Logger.Printf("[IMPORT][ERR] missing file: %v", err)
		h.JSON(w, http.StatusBadRequest, map[string]any{
			"pesan": "Gagal mengimpor data",
			"error": "file is required",
		})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		h.Logger.Printf("[IMPORT][ERR] read upload: %v", err)
		h.JSON(w, http.StatusBadRequest, map[string]any{
			"pesan": "Gagal mengimpor data",
			"error": err.Error(),
		})
		return
	}

	fname := path.Base(fh.Filename)

	var s3path, key string
	if h.S3 != nil && h.S3.Client != nil {
		key = fmt.Sprintf("imports/%s-%s", uuid.NewString(), fname)
		_, err := h.S3.Client.PutObject(r.Context(), h.S3.Bucket, key,
			bytes.NewReader(data), int64(len(data)),
			minio.PutObjectOptions{ContentType: fh.Header.Get("Content-Type")})
		if err != nil {
			h.Logger.Printf("[IMPORT][ERR] s3 put: %v", err)
			h.JSON(w, http.StatusInternalServerError, map[string]any{
				"pesan": "Gagal mengimpor data",
				"error": "failed to store file: " + err.Error(),
			})
			return
		}
		s3path = fmt.Sprintf("s3://%s/%s", h.S3.Bucket, key)
	}

	var recID any
	if h.Mongo != nil && h.Mongo.Database != nil {
		ins, err := imports.Insert(r.Context(), h.Mongo, imports.Record{
			FileName:  fname,
			Path:      s3path,
			Bucket:    bucketOf(h),
			Key:       key,
			SizeBytes: int64(len(data)),
		})
		if err != nil {
			h.Logger.Printf("[IMPORT][ERR] audit insert: %v", err)
			h.JSON(w, http.StatusInternalServerError, map[string]any{
				"pesan": "Gagal mengimpor data",
				"error": err.Error(),
			})
			return
		}
		recID = ins.InsertedID
	}

	res, err := h.Importer.Import(r.Context(), bytes.NewReader(data), fname, fh.Header.Get("Content-Type"))
	if err != nil {
		h.finishAudit(r, recID, imports.StatusGagal, res)
		h.Logger.Printf("[IMPORT][ERR] import: %v", err)
		h.JSON(w, http.StatusBadRequest, map[string]any{
			"pesan": "Gagal mengimpor data",
			"error": err.Error(),
		})
		return
	}

	h.finishAudit(r, recID, imports.StatusSelesai, res)

	body := map[string]any{
		"pesan":   "Berkas impor berhasil diproses",
		"diimpor": res.Diimpor,
		"gagal":   res.Gagal,
	}
	if recID != nil {
		body["id"] = recID
	}
	if s3path != "" {
		body["path"] = s3path
	}
	if len(res.Errors) > 0 {
		body["errors"] = res.Errors
	}
	h.JSON(w, http.StatusCreated, body)
}

// ImportStatus reports the audit record of one processed upload.
func (h *Handlers) ImportStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	rec, err := imports.FindByID(r.Context(), h.Mongo, id)
	if err != nil {
		h.Logger.Printf("[IMPORT][ERR] status id=%s: %v", id, err)
		h.JSON(w, http.StatusNotFound, map[string]any{"pesan": "Data tidak ditemukan"})
		return
	}

	h.JSON(w, http.StatusOK, map[string]any{
		"pesan": "Riwayat impor berhasil diambil",
		"data":  rec,
	})
}

func (h *Handlers) finishAudit(r *http.Request, recID any, status string, res importer.Result) {
	if recID == nil {
		return
	}
	if err := imports.Finish(r.Context(), h.Mongo, recID, status, res.Diimpor, res.Gagal, res.Errors); err != nil {
		h.Logger.Printf("[IMPORT][ERR] audit finish: %v", err)
	}
}

func bucketOf(h *Handlers) string {
	if h.S3 == nil {
		return ""
	}
	return h.S3.Bucket
}
