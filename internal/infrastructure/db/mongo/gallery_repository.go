package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/amanj01/catalog-admin/internal/core/domain"
	"github.com/amanj01/catalog-admin/internal/core/ports"
)

const galleriesCollection = "galleries"

// GalleryRepository implements ports.GalleryRepository using MongoDB.
type GalleryRepository struct {
	coll *mongo.Collection
}

func NewGalleryRepository(db *mongo.Database) *GalleryRepository {
	return &GalleryRepository{coll: db.Collection(galleriesCollection)}
}

func (r *GalleryRepository) Insert(ctx context.Context, g *domain.Gallery) (*domain.Gallery, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("insert gallery: %w", err)
	}

	created := *g
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *GalleryRepository) FindByID(ctx context.Context, id string) (*domain.Gallery, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrGalleryNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var g domain.Gallery
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&g); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGalleryNotFound
		}
		return nil, fmt.Errorf("find gallery: %w", err)
	}
	return &g, nil
}

func (r *GalleryRepository) Update(ctx context.Context, id string, in ports.UpdateGalleryInput) (*domain.Gallery, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrGalleryNotFound
	}

	set := bson.M{}
	if in.ProductID != nil {
		set["product_id"] = *in.ProductID
	}
	if in.Images != nil {
		set["images"] = in.Images
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var g domain.Gallery
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&g)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGalleryNotFound
		}
		return nil, fmt.Errorf("update gallery: %w", err)
	}
	return &g, nil
}

func (r *GalleryRepository) Delete(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return domain.ErrGalleryNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete gallery: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrGalleryNotFound
	}
	return nil
}

func (r *GalleryRepository) List(ctx context.Context) ([]*domain.Gallery, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list galleries: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Gallery
	for cur.Next(ctx) {
		var g domain.Gallery
		if err := cur.Decode(&g); err != nil {
			return nil, fmt.Errorf("decode gallery: %w", err)
		}
		out = append(out, &g)
	}
	return out, cur.Err()
}
