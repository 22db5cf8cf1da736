package packages_test

import (
	"context"
	"testing"

	"github.com/muhammadheryan/package-crud/model"
	packagerepo "github.com/muhammadheryan/package-crud/repository/packages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongo_Save(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		repo := packagerepo.NewPackageRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		in := &model.Package{ID: 2, Name: "Gold", Price: 100}
		got, err := repo.Save(context.Background(), in)
		require.NoError(mt, err)
		assert.Equal(mt, in, got)
	})

	mt.Run("command error", func(mt *mtest.T) {
		repo := packagerepo.NewPackageRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 91, Message: "shutdown in progress"}))

		got, err := repo.Save(context.Background(), &model.Package{ID: 2})
		assert.Error(mt, err)
		assert.Nil(mt, got)
	})
}

func TestMongo_FindByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		repo := packagerepo.NewPackageRepository(mt.DB)
		ns := mt.DB.Name() + ".packages"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: int64(2)},
			{Key: "name", Value: "Gold"},
			{Key: "price", Value: 100},
		}))

		got, err := repo.FindByID(context.Background(), 2)
		require.NoError(mt, err)
		assert.Equal(mt, &model.Package{ID: 2, Name: "Gold", Price: 100}, got)
	})

	mt.Run("not found", func(mt *mtest.T) {
		repo := packagerepo.NewPackageRepository(mt.DB)
		ns := mt.DB.Name() + ".packages"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		got, err := repo.FindByID(context.Background(), 2)
		assert.NoError(mt, err)
		assert.Nil(mt, got)
	})
}

func TestMongo_DeleteByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	tests := []struct {
		name    string
		resp    bson.D
		want    bool
		wantErr bool
	}{
		{name: "removed", resp: mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}), want: true},
		{name: "missing id", resp: mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}), want: false},
		{name: "command error", resp: mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "bad"}), wantErr: true},
	}

	for _, tt := range tests {
		mt.Run(tt.name, func(mt *mtest.T) {
			repo := packagerepo.NewPackageRepository(mt.DB)
			mt.AddMockResponses(tt.resp)

			got, err := repo.DeleteByID(context.Background(), 2)
			if tt.wantErr {
				assert.Error(mt, err)
				return
			}
			require.NoError(mt, err)
			assert.Equal(mt, tt.want, got)
		})
	}
}
