package audit

import (
	"context"
	"fmt"

	"github.com/muhammadheryan/package-crud/model"
	"go.mongodb.org/mongo-driver/mongo"
)

const collectionName = "audit_events"

type Mongo struct {
	coll *mongo.Collection
}

type AuditRepository interface {
	Insert(ctx context.Context, event *model.EntityEvent) error
}

func NewAuditRepository(db *mongo.Database) AuditRepository {
	return &Mongo{coll: db.Collection(collectionName)}
}

func (m *Mongo) Insert(ctx context.Context, event *model.EntityEvent) error {
	if _, err := m.coll.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("insert audit event %s: %w", event.RoutingKey(), err)
	}
	return nil
}
