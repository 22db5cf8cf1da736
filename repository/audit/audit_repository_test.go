package audit_test

import (
	"context"
	"testing"
	"time"

	"github.com/muhammadheryan/package-crud/constant"
	"github.com/muhammadheryan/package-crud/model"
	auditrepo "github.com/muhammadheryan/package-crud/repository/audit"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongo_Insert(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	event := &model.EntityEvent{
		Entity:     constant.EntityPackage,
		Action:     constant.ActionCreated,
		EntityID:   1,
		OccurredAt: time.Now().UTC(),
	}

	mt.Run("success", func(mt *mtest.T) {
		repo := auditrepo.NewAuditRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		assert.NoError(mt, repo.Insert(context.Background(), event))

		started := mt.GetStartedEvent()
		if assert.NotNil(mt, started) {
			assert.Equal(mt, "insert", started.CommandName)
			assert.Equal(mt, "audit_events", started.Command.Lookup("insert").StringValue())
		}
	})

	mt.Run("write error", func(mt *mtest.T) {
		repo := auditrepo.NewAuditRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 121, Message: "validation failed"}))

		assert.Error(mt, repo.Insert(context.Background(), event))
	})
}
