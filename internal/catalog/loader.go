package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/korvess/DeepMine_Go/internal/domain"
	"github.com/korvess/DeepMine_Go/internal/validation"
)

// Sentinel errors for catalog loading
var (
	ErrDuplicateResourceID = errors.New("duplicate resource id")
	ErrDuplicateWorld      = errors.New("duplicate world id")
	ErrMissingFallback     = errors.New("fallback resource not in catalog")
	ErrDepthOutOfRange     = errors.New("first_depth must be below terminal_depth")
	ErrTierOrder           = errors.New("tiers must be unique and ascending")
)

// Loader reads and validates world catalog files.
type Loader interface {
	Load(path string) (*Catalog, error)
	LoadDir(dir string) (*Registry, error)
}

type loader struct {
	schema validation.SchemaValidator
}

// NewLoader creates a catalog loader.
func NewLoader() Loader {
	return &loader{
		schema: validation.NewSchemaValidator(map[string]string{
			catalogSchemaName: catalogSchema,
		}),
	}
}

// Load reads, schema-checks, and semantically validates one catalog file.
func (l *loader) Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	if err := l.schema.ValidateBytes(data, catalogSchemaName); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", domain.ErrInvalidCatalog, path, err)
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	if err := validateCatalog(&c); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", domain.ErrInvalidCatalog, path, err)
	}

	c.index()
	return &c, nil
}

// LoadDir loads every *.json catalog in a directory into a registry.
// Schema files are skipped by suffix, not by content.
func (l *loader) LoadDir(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog dir: %w", err)
	}

	var catalogs []*Catalog
	seen := make(map[string]bool)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") || strings.HasSuffix(e.Name(), ".schema.json") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		c, err := l.Load(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		if seen[c.World] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateWorld, c.World)
		}
		seen[c.World] = true
		catalogs = append(catalogs, c)
	}

	if len(catalogs) == 0 {
		return nil, fmt.Errorf("%w: no catalog files in %s", domain.ErrInvalidCatalog, dir)
	}

	return NewRegistry(catalogs), nil
}

// validateCatalog enforces the invariants the schema cannot express.
func validateCatalog(c *Catalog) error {
	ids := make(map[domain.ResourceID]bool, len(c.Resources))
	for _, res := range c.Resources {
		if ids[res.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateResourceID, res.ID)
		}
		ids[res.ID] = true

		if res.FirstDepth >= c.TerminalDepth {
			return fmt.Errorf("%w: %s first_depth %d, terminal %d",
				ErrDepthOutOfRange, res.ID, res.FirstDepth, c.TerminalDepth)
		}
	}

	if !ids[c.FallbackResource] {
		return fmt.Errorf("%w: %s", ErrMissingFallback, c.FallbackResource)
	}

	if err := checkTierOrder(len(c.PickaxeTiers), func(i int) int { return c.PickaxeTiers[i].Tier }); err != nil {
		return fmt.Errorf("pickaxe_tiers: %w", err)
	}
	if err := checkTierOrder(len(c.TrainingTiers), func(i int) int { return c.TrainingTiers[i].Tier }); err != nil {
		return fmt.Errorf("training_tiers: %w", err)
	}

	return nil
}

func checkTierOrder(n int, tierAt func(int) int) error {
	for i := 1; i < n; i++ {
		if tierAt(i) <= tierAt(i-1) {
			return ErrTierOrder
		}
	}
	return nil
}
