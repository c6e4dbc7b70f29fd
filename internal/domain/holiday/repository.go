package holiday

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, h *Holiday) error
	GetByID(ctx context.Context, companyID string, id string) (*Holiday, error)
	ListByRange(ctx context.Context, companyID string, from, to time.Time) ([]*Holiday, error)
	Delete(ctx context.Context, companyID string, id string) error
}
