package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pageza/skinroutine/backend/internal/middleware"
	"github.com/pageza/skinroutine/backend/internal/service"
	"github.com/pageza/skinroutine/backend/internal/store"
	"github.com/sirupsen/logrus"
)

// CatalogHandler serves products, ingredients and their safety annotations
type CatalogHandler struct {
	catalog   service.ICatalogService
	safety    service.ISafetyService
	profiles  service.IProfileService
	validator middleware.TokenValidator
	log       *logrus.Logger
}

func NewCatalogHandler(catalog service.ICatalogService, safety service.ISafetyService, profiles service.IProfileService, validator middleware.TokenValidator, log *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog:   catalog,
		safety:    safety,
		profiles:  profiles,
		validator: validator,
		log:       log,
	}
}

func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := middleware.AuthMiddleware(h.validator)

	products := router.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProduct)
		products.GET("/:id/safety", auth, h.GetProductSafety)
	}

	ingredients := router.Group("/ingredients")
	{
		ingredients.GET("", h.ListIngredients)
		ingredients.GET("/analysis", auth, h.AnalyzeIngredients)
		ingredients.GET("/:name", h.GetIngredient)
	}
}

// ParseProductFilter reads skinTypes, concerns, category and isHomeRemedy
// from the query string. List parameters accept repeated keys and comma
// separated values; a parameter without any values imposes no constraint.
func ParseProductFilter(c *gin.Context) (store.ProductFilter, error) {
	filter := store.ProductFilter{
		SkinTypes: queryList(c, "skinTypes"),
		Concerns:  queryList(c, "concerns"),
	}
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		filter.Category = &category
	}
	if raw := strings.TrimSpace(c.Query("isHomeRemedy")); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, err
		}
		filter.IsHomeRemedy = &v
	}
	return filter, nil
}

func queryList(c *gin.Context, key string) []string {
	var out []string
	for _, raw := range c.QueryArray(key) {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	filter, err := ParseProductFilter(c)
	if err != nil {
		badRequest(c, "isHomeRemedy must be true or false")
		return
	}

	products, err := h.catalog.QueryProducts(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	product, err := h.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) GetProductSafety(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	allergies, ok := h.callerAllergies(c)
	if !ok {
		return
	}

	result, err := h.safety.AnalyzeProduct(c.Request.Context(), id, allergies)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CatalogHandler) ListIngredients(c *gin.Context) {
	ingredients, err := h.catalog.ListIngredients(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, ingredients)
}

func (h *CatalogHandler) GetIngredient(c *gin.Context) {
	ingredient, err := h.catalog.GetIngredientByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, ingredient)
}

// AnalyzeIngredients annotates every catalog ingredient for the caller's allergies
func (h *CatalogHandler) AnalyzeIngredients(c *gin.Context) {
	allergies, ok := h.callerAllergies(c)
	if !ok {
		return
	}

	analyses, err := h.safety.AnalyzeIngredients(c.Request.Context(), allergies)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, analyses)
}

func (h *CatalogHandler) callerAllergies(c *gin.Context) ([]string, bool) {
	userID, ok := currentUser(c)
	if !ok {
		return nil, false
	}
	user, err := h.profiles.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err)
		return nil, false
	}
	return user.Allergies, true
}
