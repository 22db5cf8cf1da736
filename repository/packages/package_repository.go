package packages

import (
	"context"
	"errors"
	"fmt"

	"github.com/muhammadheryan/package-crud/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "packages"

type Mongo struct {
	coll *mongo.Collection
}

type PackageRepository interface {
	Save(ctx context.Context, pkg *model.Package) (*model.Package, error)
	FindByID(ctx context.Context, id int64) (*model.Package, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
}

func NewPackageRepository(db *mongo.Database) PackageRepository {
	return &Mongo{coll: db.Collection(collectionName)}
}

// Save inserts the package or replaces the stored document with the same id
func (m *Mongo) Save(ctx context.Context, pkg *model.Package) (*model.Package, error) {
	_, err := m.coll.ReplaceOne(ctx, bson.M{"_id": pkg.ID}, pkg, options.Replace().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("save package %d: %w", pkg.ID, err)
	}
	return pkg, nil
}

// FindByID returns nil, nil when the package does not exist
func (m *Mongo) FindByID(ctx context.Context, id int64) (*model.Package, error) {
	var pkg model.Package
	if err := m.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&pkg); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find package %d: %w", id, err)
	}
	return &pkg, nil
}

// DeleteByID physically removes the package and reports whether a document was removed
func (m *Mongo) DeleteByID(ctx context.Context, id int64) (bool, error) {
	res, err := m.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete package %d: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}
