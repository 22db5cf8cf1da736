package audit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appaudit "github.com/muhammadheryan/package-crud/application/audit"
	"github.com/muhammadheryan/package-crud/constant"
	auditmocks "github.com/muhammadheryan/package-crud/mocks/repository/audit"
	"github.com/muhammadheryan/package-crud/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuditApp_Record(t *testing.T) {
	occurred := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		event    model.EntityEvent
		mockCall func(repo *auditmocks.AuditRepository)
		wantErr  bool
	}{
		{
			name:  "success: user event stored",
			event: model.EntityEvent{Entity: constant.EntityUser, Action: constant.ActionCreated, EntityID: 1, OccurredAt: occurred},
			mockCall: func(repo *auditmocks.AuditRepository) {
				repo.On("Insert", mock.Anything, &model.EntityEvent{
					Entity: constant.EntityUser, Action: constant.ActionCreated, EntityID: 1, OccurredAt: occurred,
				}).Return(nil).Once()
			},
		},
		{
			name:  "success: package event stored",
			event: model.EntityEvent{Entity: constant.EntityPackage, Action: constant.ActionDeleted, EntityID: 2, OccurredAt: occurred},
			mockCall: func(repo *auditmocks.AuditRepository) {
				repo.On("Insert", mock.Anything, mock.AnythingOfType("*model.EntityEvent")).Return(nil).Once()
			},
		},
		{
			name:  "skipped: unknown entity",
			event: model.EntityEvent{Entity: "order", Action: constant.ActionCreated, EntityID: 3},
		},
		{
			name:  "error: insert failed",
			event: model.EntityEvent{Entity: constant.EntityUser, Action: constant.ActionUpdated, EntityID: 4},
			mockCall: func(repo *auditmocks.AuditRepository) {
				repo.On("Insert", mock.Anything, mock.Anything).Return(errors.New("write error")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := auditmocks.NewAuditRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(repo)
			}

			err := appaudit.NewAuditApp(repo).Record(context.Background(), tt.event)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
