package imports

import (
	"context"
	"fmt"
	"time"

	mg "github.com/ZidanKhofifi/hutang/internal/config/connections/mongo"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const Collection = "import_records"

const (
	StatusDiproses = "diproses"
	StatusSelesai  = "selesai"
	StatusGagal    = "gagal"
)

// Record is the audit trail of one bulk upload: where the raw file went
// and how many rows made it into the debts collection.
type Record struct {
	ID        any       `bson:"_id,omitempty" json:"id"`
	FileName  string    `bson:"fileName" json:"fileName"`
	Path      string    `bson:"path" json:"path"`
	Bucket    string    `bson:"bucket" json:"bucket"`
	Key       string    `bson:"key" json:"key"`
	SizeBytes int64     `bson:"sizeBytes" json:"sizeBytes"`
	Status    string    `bson:"status" json:"status"`
	Diimpor   int       `bson:"diimpor" json:"diimpor"`
	Gagal     int       `bson:"gagal" json:"gagal"`
	Errors    []string  `bson:"errors,omitempty" json:"errors,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func Insert(ctx context.Context, m *mg.Mongo, rec Record) (*mongo.InsertOneResult, error) {
	if m == nil || m.Client == nil || m.Database == nil {
		return nil, mongo.ErrClientDisconnected
	}

	now := time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now
	if rec.Status == "" {
		rec.Status = StatusDiproses
	}

	doc := bson.D{
		{Key: "fileName", Value: rec.FileName},
		{Key: "path", Value: rec.Path},
		{Key: "bucket", Value: rec.Bucket},
		{Key: "key", Value: rec.Key},
		{Key: "sizeBytes", Value: rec.SizeBytes},
		{Key: "status", Value: rec.Status},
		{Key: "diimpor", Value: rec.Diimpor},
		{Key: "gagal", Value: rec.Gagal},
		{Key: "errors", Value: rec.Errors},
		{Key: "createdAt", Value: rec.CreatedAt},
		{Key: "updatedAt", Value: rec.UpdatedAt},
	}

	return m.Database.Collection(Collection).InsertOne(ctx, doc, options.InsertOne())
}

// Finish records the outcome of a processed upload.
func Finish(ctx context.Context, m *mg.Mongo, id any, status string, diimpor, gagal int, errs []string) error {
	if m == nil || m.Database == nil {
		return mongo.ErrClientDisconnected
	}
	if status == "" {
		return fmt.Errorf("empty status")
	}

	update := bson.M{
		"$set": bson.M{
			"status":    status,
			"diimpor":   diimpor,
			"gagal":     gagal,
			"errors":    errs,
			"updatedAt": time.Now().UTC(),
		},
	}

	res, err := m.Database.Collection(Collection).UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("no import record with id %v", id)
	}
	return nil
}

func FindByID(ctx context.Context, m *mg.Mongo, id string) (Record, error) {
	var out Record
	if m == nil || m.Database == nil {
		return out, mongo.ErrClientDisconnected
	}
	coll := m.Database.Collection(Collection)

	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&out); err == nil {
			out.ID = oid
			return out, nil
		}
	}

	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&out); err != nil {
		return out, fmt.Errorf("not found: %w", err)
	}
	out.ID = id
	return out, nil
}
