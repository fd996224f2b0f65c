package ports

import (
	"context"
	"errors"

	"github.com/ZidanKhofifi/hutang/internal/models"
)

// ErrNotFound is returned by a DebtStore when no record has the given id.
var ErrNotFound = errors.New("data tidak ditemukan")

// DebtStore is the persistent collection of debt records. The store owns
// identity assignment and creation timestamps.
type DebtStore interface {
	// Insert persists the record and returns it with its assigned id
	// and createdAt set.
	Insert(ctx context.Context, d models.Debt) (models.Debt, error)

	// List returns records ordered by createdAt descending. A non-empty
	// nameFilter keeps only records whose namaPeminjam contains it,
	// case-insensitively.
	List(ctx context.Context, nameFilter string) ([]models.Debt, error)

	// MarkPaid sets status to Lunas and returns the updated record.
	MarkPaid(ctx context.Context, id string) (models.Debt, error)

	// Delete removes the record with the given id.
	Delete(ctx context.Context, id string) error
}
