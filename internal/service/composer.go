package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pageza/skinroutine/backend/internal/metrics"
	"github.com/pageza/skinroutine/backend/internal/models"
	"github.com/pageza/skinroutine/backend/internal/store"
	"github.com/pageza/skinroutine/backend/internal/types"
	"github.com/pageza/skinroutine/backend/internal/validation"
)

// productsPerStep caps how many catalog products a step suggests
const productsPerStep = 2

type stepTemplate struct {
	title       string
	description string
	category    string
}

var morningTemplate = []stepTemplate{
	{"Gentle Cleanser", "Remove overnight buildup with a hydrating cleanser", models.CategoryCleanser},
	{"Treatment Serum", "Target specific concerns with active ingredients", models.CategorySerum},
	{"Moisturizer", "Lock in hydration and create protective barrier", models.CategoryMoisturizer},
	{"Sunscreen (SPF 30+)", "Essential UV protection - never skip!", models.CategorySunscreen},
}

var eveningTemplate = []stepTemplate{
	{"Double Cleanse", "Remove makeup and sunscreen thoroughly", models.CategoryCleanser},
	{"Treatment Serum", "Target specific concerns with active ingredients", models.CategorySerum},
	{"Night Moisturizer", "Rich hydration for overnight repair", models.CategoryNightMoisturizer},
}

// Only these categories are filled from the catalog; other steps keep an empty product list
var catalogDrivenCategories = map[string]bool{
	models.CategoryCleanser: true,
	models.CategorySerum:    true,
}

// RoutineComposer turns a skin profile into morning and evening steps
type RoutineComposer struct {
	catalog store.CatalogStore
	metrics *metrics.Metrics
}

func NewRoutineComposer(catalog store.CatalogStore, m *metrics.Metrics) *RoutineComposer {
	return &RoutineComposer{catalog: catalog, metrics: m}
}

// Generate builds a routine for the request. Identical inputs against an
// unchanged catalog always produce the same routine.
func (c *RoutineComposer) Generate(ctx context.Context, req types.GenerateRequest) (*types.GeneratedRoutine, error) {
	req, err := normalizeGenerateRequest(req)
	if err != nil {
		return nil, err
	}
	skinType := models.SkinType(req.Assessment.SkinType)
	pref := models.PreferenceType(req.PreferenceType)
	season := models.Season(req.Season)

	isHomeRemedy := pref == models.PreferenceHomeRemedies
	products, err := c.catalog.QueryProducts(ctx, store.ProductFilter{
		SkinTypes:    []string{string(skinType)},
		Concerns:     append([]string{}, req.Assessment.Concerns...),
		IsHomeRemedy: &isHomeRemedy,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}
	SortProducts(products)

	routine := &types.GeneratedRoutine{
		MorningSteps:        buildSteps(morningTemplate, products),
		EveningSteps:        buildSteps(eveningTemplate, products),
		SeasonalAdjustments: SeasonalAdjustments(season),
	}
	c.metrics.RoutineGenerated(string(season), string(pref))
	return routine, nil
}

// normalizeGenerateRequest trims the profile, checks it and fills in the
// default preference and season
func normalizeGenerateRequest(req types.GenerateRequest) (types.GenerateRequest, error) {
	req.Assessment.SkinType = strings.TrimSpace(req.Assessment.SkinType)
	req.Assessment.Concerns = nonBlank(req.Assessment.Concerns)

	verr, err := validation.Struct(&req)
	if err != nil {
		return req, err
	}
	if err := verr.OrNil(); err != nil {
		return req, err
	}

	if req.PreferenceType == "" {
		req.PreferenceType = string(models.PreferenceProducts)
	}
	if req.Season == "" {
		req.Season = string(DefaultSeason)
	}
	return req, nil
}

func buildSteps(template []stepTemplate, products []models.Product) []models.RoutineStep {
	steps := make([]models.RoutineStep, 0, len(template))
	for i, t := range template {
		step := models.RoutineStep{
			StepNumber:  i + 1,
			Title:       t.title,
			Description: t.description,
			Products:    []models.StepProduct{},
		}
		if catalogDrivenCategories[t.category] {
			for _, p := range products {
				if p.Category != t.category {
					continue
				}
				step.Products = append(step.Products, toStepProduct(p))
				if len(step.Products) == productsPerStep {
					break
				}
			}
		}
		steps = append(steps, step)
	}
	return steps
}

func toStepProduct(p models.Product) models.StepProduct {
	sp := models.StepProduct{
		ID:   p.ID,
		Name: p.Name,
		Type: models.ProductTypeCommercial,
	}
	if p.IsHomeRemedy {
		sp.Type = models.ProductTypeHomeRemedy
	}
	if p.Instructions != nil {
		ins := *p.Instructions
		sp.Instructions = &ins
	}
	return sp
}

// nonBlank trims values and drops empty ones. A nil slice stays nil.
func nonBlank(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
