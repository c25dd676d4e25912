package requestdata

import (
	"context"

	"github.com/google/uuid"

	"github.com/growthpilot/backend/internal/domain/topics"
)

type ctxKey struct{}

// RequestData is the authenticated identity attached to the request
// context by the auth middleware.
type RequestData struct {
	UserID   uuid.UUID
	TenantID uuid.UUID
	Tier     topics.Tier
	IsAdmin  bool
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, ctxKey{}, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	rd, _ := ctx.Value(ctxKey{}).(*RequestData)
	return rd
}
