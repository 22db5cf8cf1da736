package packages

import (
	"context"
	"time"

	"github.com/muhammadheryan/package-crud/constant"
	"github.com/muhammadheryan/package-crud/model"
	packagerepo "github.com/muhammadheryan/package-crud/repository/packages"
	redisrepo "github.com/muhammadheryan/package-crud/repository/redis"
	"github.com/muhammadheryan/package-crud/thirdparty/rabbitmq"
	"github.com/muhammadheryan/package-crud/utils/errors"
	"github.com/muhammadheryan/package-crud/utils/logger"
	"go.uber.org/zap"
)

type PackageApp interface {
	SavePackage(ctx context.Context, name string, price int) (*model.Package, error)
	UpdatePackage(ctx context.Context, id int64, name string, price int) (*model.Package, error)
	DeletePackage(ctx context.Context, id int64) (bool, error)
	FindByID(ctx context.Context, id int64) (*model.Package, error)
}

type PackageAppImpl struct {
	packageRepo packagerepo.PackageRepository
	redisRepo   redisrepo.Repository
	publisher   rabbitmq.EventPublisher
}

func NewPackageApp(packageRepo packagerepo.PackageRepository, redisRepo redisrepo.Repository, publisher rabbitmq.EventPublisher) PackageApp {
	return &PackageAppImpl{
		packageRepo: packageRepo,
		redisRepo:   redisRepo,
		publisher:   publisher,
	}
}

func (s *PackageAppImpl) SavePackage(ctx context.Context, name string, price int) (*model.Package, error) {
	id, err := s.redisRepo.NextSequence(ctx, constant.SequencePackage)
	if err != nil {
		logger.Error("[SavePackage] err redisRepo.NextSequence", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	pkg, err := s.packageRepo.Save(ctx, &model.Package{ID: id, Name: name, Price: price})
	if err != nil {
		logger.Error("[SavePackage] err packageRepo.Save", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.publish(ctx, constant.ActionCreated, pkg.ID)
	return pkg, nil
}

// UpdatePackage writes the package under the given id, inserting it when absent
func (s *PackageAppImpl) UpdatePackage(ctx context.Context, id int64, name string, price int) (*model.Package, error) {
	pkg, err := s.packageRepo.Save(ctx, &model.Package{ID: id, Name: name, Price: price})
	if err != nil {
		logger.Error("[UpdatePackage] err packageRepo.Save", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.publish(ctx, constant.ActionUpdated, pkg.ID)
	return pkg, nil
}

// DeletePackage removes the document. It reports false when the id did not exist.
func (s *PackageAppImpl) DeletePackage(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.packageRepo.DeleteByID(ctx, id)
	if err != nil {
		logger.Error("[DeletePackage] err packageRepo.DeleteByID", zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}

	if deleted {
		s.publish(ctx, constant.ActionDeleted, id)
	}
	return deleted, nil
}

func (s *PackageAppImpl) FindByID(ctx context.Context, id int64) (*model.Package, error) {
	pkg, err := s.packageRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("[FindByID] err packageRepo.FindByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return pkg, nil
}

func (s *PackageAppImpl) publish(ctx context.Context, action string, id int64) {
	if s.publisher == nil {
		return
	}
	event := model.EntityEvent{
		Entity:     constant.EntityPackage,
		Action:     action,
		EntityID:   id,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.Error("[Package] err publish event", zap.String("routing_key", event.RoutingKey()), zap.String("error", err.Error()))
	}
}
