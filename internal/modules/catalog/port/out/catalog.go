package out

import (
	"context"

	"instalike/internal/modules/catalog/domain"
)

type CatalogSource interface {
	Load(ctx context.Context) (domain.Catalog, error)
}
