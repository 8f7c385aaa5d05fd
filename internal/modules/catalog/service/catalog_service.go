package service

import (
	"context"
	"sync"

	"instalike/internal/modules/catalog/domain"
	catalogout "instalike/internal/modules/catalog/port/out"
)

// CatalogService loads the catalog once; it is read-only afterwards.
type CatalogService struct {
	source catalogout.CatalogSource

	once    sync.Once
	catalog domain.Catalog
	err     error
}

func NewCatalogService(source catalogout.CatalogSource) *CatalogService {
	return &CatalogService{source: source}
}

func (s *CatalogService) Catalog(ctx context.Context) (domain.Catalog, error) {
	s.once.Do(func() {
		s.catalog, s.err = s.source.Load(ctx)
	})
	return s.catalog, s.err
}
