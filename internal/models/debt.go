package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusBelumLunas = "Belum Lunas"
	StatusLunas      = "Lunas"
)

// Debt is one borrower/amount/status entry. Field keys match the
// original document layout in the debts collection.
type Debt struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	NamaPeminjam      string             `bson:"namaPeminjam" json:"namaPeminjam"`
	Jumlah            float64            `bson:"jumlah" json:"jumlah"`
	Keterangan        string             `bson:"keterangan" json:"keterangan"`
	Status            string             `bson:"status" json:"status"`
	TanggalJatuhTempo *time.Time         `bson:"tanggalJatuhTempo,omitempty" json:"tanggalJatuhTempo,omitempty"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
}

func ValidStatus(s string) bool {
	return s == StatusBelumLunas || s == StatusLunas
}
