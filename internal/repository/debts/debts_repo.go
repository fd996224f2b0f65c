package debts

import (
	"context"
	"errors"
	"regexp"
	"time"

	mg "github.com/ZidanKhofifi/hutang/internal/config/connections/mongo"
	"github.com/ZidanKhofifi/hutang/internal/models"
	"github.com/ZidanKhofifi/hutang/internal/ports"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const Collection = "debts"

// Repo implements ports.DebtStore over the debts collection.
type Repo struct {
	m *mg.Mongo
}

func NewRepo(m *mg.Mongo) *Repo {
	return &Repo{m: m}
}

func (r *Repo) coll() *mongo.Collection {
	return r.m.Database.Collection(Collection)
}

func (r *Repo) Insert(ctx context.Context, d models.Debt) (models.Debt, error) {
	if r.m == nil || r.m.Database == nil {
		return models.Debt{}, mongo.ErrClientDisconnected
	}

	d.ID = primitive.NewObjectID()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}

	if _, err := r.coll().InsertOne(ctx, d, options.InsertOne()); err != nil {
		return models.Debt{}, err
	}
	return d, nil
}

func (r *Repo) List(ctx context.Context, nameFilter string) ([]models.Debt, error) {
	if r.m == nil || r.m.Database == nil {
		return nil, mongo.ErrClientDisconnected
	}

	filter := bson.M{}
	if nameFilter != "" {
		// substring match, metacharacters in the query are literal
		filter["namaPeminjam"] = primitive.Regex{
			Pattern: regexp.QuoteMeta(nameFilter),
			Options: "i",
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.coll().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	recs := make([]models.Debt, 0)
	for cur.Next(ctx) {
		var d models.Debt
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		recs = append(recs, d)
	}
	return recs, cur.Err()
}

func (r *Repo) MarkPaid(ctx context.Context, id string) (models.Debt, error) {
	if r.m == nil || r.m.Database == nil {
		return models.Debt{}, mongo.ErrClientDisconnected
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Debt{}, ports.ErrNotFound
	}

	update := bson.M{"$set": bson.M{"status": models.StatusLunas}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var out models.Debt
	err = r.coll().FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Debt{}, ports.ErrNotFound
	}
	if err != nil {
		return models.Debt{}, err
	}
	return out, nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	if r.m == nil || r.m.Database == nil {
		return mongo.ErrClientDisconnected
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ports.ErrNotFound
	}

	res, err := r.coll().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ports.ErrNotFound
	}
	return nil
}
