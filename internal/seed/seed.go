// Package seed loads the starter product and ingredient catalog.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/pageza/skinroutine/backend/internal/apperrors"
	"github.com/pageza/skinroutine/backend/internal/models"
	"github.com/pageza/skinroutine/backend/internal/store"
	"github.com/sirupsen/logrus"
)

//go:embed catalog.json
var defaultCatalog []byte

// Catalog is the seed file layout
type Catalog struct {
	Ingredients []models.Ingredient `json:"ingredients"`
	Products    []models.Product    `json:"products"`
}

// Result counts what LoadCatalog inserted and skipped
type Result struct {
	Ingredients int
	Products    int
	Skipped     int
}

// CatalogWriter is the part of the catalog service the loader needs
type CatalogWriter interface {
	QueryProducts(ctx context.Context, filter store.ProductFilter) ([]models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	CreateIngredient(ctx context.Context, ingredient *models.Ingredient) error
}

// Parse decodes a catalog document
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return &c, nil
}

// Default returns the embedded starter catalog
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// LoadCatalog inserts the catalog. Ingredients that already exist and
// products whose name is already present are skipped, so loading twice is safe.
func LoadCatalog(ctx context.Context, w CatalogWriter, c *Catalog, log *logrus.Logger) (Result, error) {
	var res Result

	for i := range c.Ingredients {
		ing := c.Ingredients[i].Clone()
		err := w.CreateIngredient(ctx, &ing)
		switch {
		case apperrors.IsConflict(err):
			res.Skipped++
		case err != nil:
			return res, fmt.Errorf("failed to seed ingredient %q: %w", ing.Name, err)
		default:
			res.Ingredients++
		}
	}

	existing, err := w.QueryProducts(ctx, store.ProductFilter{})
	if err != nil {
		return res, fmt.Errorf("failed to list products: %w", err)
	}
	names := make(map[string]bool, len(existing))
	for _, p := range existing {
		names[p.Name] = true
	}

	for i := range c.Products {
		p := c.Products[i].Clone()
		if names[p.Name] {
			res.Skipped++
			continue
		}
		if err := w.CreateProduct(ctx, &p); err != nil {
			return res, fmt.Errorf("failed to seed product %q: %w", p.Name, err)
		}
		names[p.Name] = true
		res.Products++
	}

	log.WithFields(logrus.Fields{
		"ingredients": res.Ingredients,
		"products":    res.Products,
		"skipped":     res.Skipped,
	}).Info("Catalog seeded")
	return res, nil
}
