package out

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"instalike/internal/modules/catalog/domain"
	catalogout "instalike/internal/modules/catalog/port/out"
)

//go:embed fixtures/catalog.yaml
var defaultCatalog []byte

// YAMLCatalogSource reads the catalog from path, or from the embedded fixture
// when path is empty.
type YAMLCatalogSource struct {
	path string
}

func NewYAMLCatalogSource(path string) catalogout.CatalogSource {
	return &YAMLCatalogSource{path: path}
}

func (s *YAMLCatalogSource) Load(_ context.Context) (domain.Catalog, error) {
	raw := defaultCatalog
	if s.path != "" {
		b, err := os.ReadFile(s.path)
		if err != nil {
			return domain.Catalog{}, fmt.Errorf("read catalog: %w", err)
		}
		raw = b
	}
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	catalog := domain.Catalog{}
	if err := decoder.Decode(&catalog); err != nil {
		return domain.Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	if err := catalog.Validate(); err != nil {
		return domain.Catalog{}, fmt.Errorf("validate catalog: %w", err)
	}
	return catalog, nil
}
