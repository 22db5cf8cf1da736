package context

import (
	"context"

	"github.com/muhammadheryan/package-crud/constant"
)

func GetUserID(ctx context.Context) (int64, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, constant.UserIDKey, userID)
}
