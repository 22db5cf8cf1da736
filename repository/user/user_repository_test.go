package user_test

import (
	"context"
	"testing"

	"github.com/muhammadheryan/package-crud/constant"
	"github.com/muhammadheryan/package-crud/model"
	userrepo "github.com/muhammadheryan/package-crud/repository/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func userDoc(id int64, name, email string, deleted constant.DeletedFlag) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: name},
		{Key: "email", Value: email},
		{Key: "phoneNumber", Value: "0811"},
		{Key: "password", Value: "hash"},
		{Key: "roleId", Value: 1},
		{Key: "isDeleted", Value: int(deleted)},
	}
}

func TestMongo_Save(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		repo := userrepo.NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
			bson.E{Key: "upserted", Value: bson.A{bson.D{{Key: "index", Value: 0}, {Key: "_id", Value: int64(1)}}}},
		))

		in := &model.UserEntity{ID: 1, Name: "Albert", Email: "albert@gmail.com", IsDeleted: constant.Active}
		got, err := repo.Save(context.Background(), in)
		require.NoError(mt, err)
		assert.Equal(mt, in, got)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "update", started.CommandName)
	})

	mt.Run("write error", func(mt *mtest.T) {
		repo := userrepo.NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		got, err := repo.Save(context.Background(), &model.UserEntity{ID: 1})
		assert.Error(mt, err)
		assert.Nil(mt, got)
	})
}

func TestMongo_FindByIDAndIsDeleted(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		repo := userrepo.NewUserRepository(mt.DB)
		ns := mt.DB.Name() + ".users"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, userDoc(3, "Albert", "albert@gmail.com", constant.Active)))

		got, err := repo.FindByIDAndIsDeleted(context.Background(), 3, constant.Active)
		require.NoError(mt, err)
		assert.Equal(mt, &model.UserEntity{
			ID:          3,
			Name:        "Albert",
			Email:       "albert@gmail.com",
			PhoneNumber: "0811",
			Password:    "hash",
			RoleID:      1,
			IsDeleted:   constant.Active,
		}, got)
	})

	mt.Run("soft deleted user is found by deleted flag", func(mt *mtest.T) {
		repo := userrepo.NewUserRepository(mt.DB)
		ns := mt.DB.Name() + ".users"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, userDoc(4, "Gone", "gone@gmail.com", constant.Deleted)))

		got, err := repo.FindByIDAndIsDeleted(context.Background(), 4, constant.Deleted)
		require.NoError(mt, err)
		require.NotNil(mt, got)
		assert.Equal(mt, constant.Deleted, got.IsDeleted)
	})

	mt.Run("not found", func(mt *mtest.T) {
		repo := userrepo.NewUserRepository(mt.DB)
		ns := mt.DB.Name() + ".users"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		got, err := repo.FindByIDAndIsDeleted(context.Background(), 3, constant.Active)
		assert.NoError(mt, err)
		assert.Nil(mt, got)
	})

	mt.Run("command error", func(mt *mtest.T) {
		repo := userrepo.NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "bad query"}))

		got, err := repo.FindByIDAndIsDeleted(context.Background(), 3, constant.Active)
		assert.Error(mt, err)
		assert.Nil(mt, got)
	})
}

func TestMongo_FindByEmailAndIsDeleted(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		repo := userrepo.NewUserRepository(mt.DB)
		ns := mt.DB.Name() + ".users"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, userDoc(5, "Albert", "albert@gmail.com", constant.Active)))

		got, err := repo.FindByEmailAndIsDeleted(context.Background(), "albert@gmail.com", constant.Active)
		require.NoError(mt, err)
		require.NotNil(mt, got)
		assert.Equal(mt, int64(5), got.ID)
	})

	mt.Run("not found", func(mt *mtest.T) {
		repo := userrepo.NewUserRepository(mt.DB)
		ns := mt.DB.Name() + ".users"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		got, err := repo.FindByEmailAndIsDeleted(context.Background(), "ghost@gmail.com", constant.Active)
		assert.NoError(mt, err)
		assert.Nil(mt, got)
	})
}

func TestMongo_FindByIsDeleted(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("multiple batches", func(mt *mtest.T) {
		repo := userrepo.NewUserRepository(mt.DB)
		ns := mt.DB.Name() + ".users"
		first := mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, userDoc(1, "Albert", "albert@gmail.com", constant.Active))
		second := mtest.CreateCursorResponse(0, ns, mtest.NextBatch, userDoc(2, "Bella", "bella@gmail.com", constant.Active))
		mt.AddMockResponses(first, second)

		got, err := repo.FindByIsDeleted(context.Background(), constant.Active)
		require.NoError(mt, err)
		require.Len(mt, got, 2)
		assert.Equal(mt, "Albert", got[0].Name)
		assert.Equal(mt, "Bella", got[1].Name)
	})

	mt.Run("empty", func(mt *mtest.T) {
		repo := userrepo.NewUserRepository(mt.DB)
		ns := mt.DB.Name() + ".users"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		got, err := repo.FindByIsDeleted(context.Background(), constant.Active)
		require.NoError(mt, err)
		assert.NotNil(mt, got)
		assert.Empty(mt, got)
	})

	mt.Run("command error", func(mt *mtest.T) {
		repo := userrepo.NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "bad query"}))

		got, err := repo.FindByIsDeleted(context.Background(), constant.Active)
		assert.Error(mt, err)
		assert.Nil(mt, got)
	})
}
