package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/muhammadheryan/package-crud/constant"
	"github.com/muhammadheryan/package-crud/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "users"

type Mongo struct {
	coll *mongo.Collection
}

type UserRepository interface {
	Save(ctx context.Context, user *model.UserEntity) (*model.UserEntity, error)
	FindByIDAndIsDeleted(ctx context.Context, id int64, isDeleted constant.DeletedFlag) (*model.UserEntity, error)
	FindByEmailAndIsDeleted(ctx context.Context, email string, isDeleted constant.DeletedFlag) (*model.UserEntity, error)
	FindByIsDeleted(ctx context.Context, isDeleted constant.DeletedFlag) ([]model.UserEntity, error)
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &Mongo{coll: db.Collection(collectionName)}
}

// Save inserts the user or replaces the stored document with the same id
func (m *Mongo) Save(ctx context.Context, user *model.UserEntity) (*model.UserEntity, error) {
	_, err := m.coll.ReplaceOne(ctx, bson.M{"_id": user.ID}, user, options.Replace().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("save user %d: %w", user.ID, err)
	}
	return user, nil
}

func (m *Mongo) FindByIDAndIsDeleted(ctx context.Context, id int64, isDeleted constant.DeletedFlag) (*model.UserEntity, error) {
	return m.findOne(ctx, bson.M{"_id": id, "isDeleted": isDeleted})
}

func (m *Mongo) FindByEmailAndIsDeleted(ctx context.Context, email string, isDeleted constant.DeletedFlag) (*model.UserEntity, error) {
	return m.findOne(ctx, bson.M{"email": email, "isDeleted": isDeleted})
}

func (m *Mongo) FindByIsDeleted(ctx context.Context, isDeleted constant.DeletedFlag) ([]model.UserEntity, error) {
	cur, err := m.coll.Find(ctx, bson.M{"isDeleted": isDeleted}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer cur.Close(ctx)

	users := make([]model.UserEntity, 0)
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

// findOne returns nil, nil when no document matches
func (m *Mongo) findOne(ctx context.Context, filter bson.M) (*model.UserEntity, error) {
	var entity model.UserEntity
	if err := m.coll.FindOne(ctx, filter).Decode(&entity); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &entity, nil
}
