package audit

import (
	"context"
	"fmt"

	"github.com/muhammadheryan/package-crud/constant"
	"github.com/muhammadheryan/package-crud/model"
	auditrepo "github.com/muhammadheryan/package-crud/repository/audit"
	"github.com/muhammadheryan/package-crud/utils/logger"
	"go.uber.org/zap"
)

// AuditApp stores entity events consumed from the broker
type AuditApp interface {
	Record(ctx context.Context, event model.EntityEvent) error
}

type AuditAppImpl struct {
	auditRepo auditrepo.AuditRepository
}

func NewAuditApp(auditRepo auditrepo.AuditRepository) AuditApp {
	return &AuditAppImpl{auditRepo: auditRepo}
}

// Record persists the event. Events for unknown entities are skipped without error
// so the broker does not redeliver them.
func (s *AuditAppImpl) Record(ctx context.Context, event model.EntityEvent) error {
	if event.Entity != constant.EntityUser && event.Entity != constant.EntityPackage {
		logger.Warn("[Record] skip unknown entity", zap.String("entity", event.Entity))
		return nil
	}

	if err := s.auditRepo.Insert(ctx, &event); err != nil {
		logger.Error("[Record] err auditRepo.Insert", zap.String("error", err.Error()))
		return fmt.Errorf("record %s: %w", event.RoutingKey(), err)
	}

	logger.Info("[Record] event stored",
		zap.String("routing_key", event.RoutingKey()),
		zap.Int64("entity_id", event.EntityID),
	)
	return nil
}
