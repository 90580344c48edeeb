package repository

import (
	"context"

	"github.com/AlexaBaqueroCoder/HouseLy/internal/domain"
)

// PropertyStore holds the property catalog for the session. The catalog
// is read-only after construction, so lookups need no locking.
type PropertyStore struct {
	byID  map[string]*domain.Property
	order []*domain.Property
}

func NewPropertyStore(properties []domain.Property) *PropertyStore {
	s := &PropertyStore{
		byID:  make(map[string]*domain.Property, len(properties)),
		order: make([]*domain.Property, 0, len(properties)),
	}
	for i := range properties {
		p := properties[i]
		s.byID[p.ID] = &p
		s.order = append(s.order, &p)
	}
	return s
}

func (s *PropertyStore) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	return p, nil
}

func (s *PropertyStore) List(ctx context.Context) ([]*domain.Property, error) {
	res := make([]*domain.Property, len(s.order))
	copy(res, s.order)
	return res, nil
}
