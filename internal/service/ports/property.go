package ports

import (
	"context"

	"github.com/AlexaBaqueroCoder/HouseLy/internal/domain"
)

type PropertyRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Property, error)
	List(ctx context.Context) ([]*domain.Property, error)
}
