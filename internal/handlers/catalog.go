package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/pharmasite/internal/catalog"
	"github.com/example/pharmasite/internal/i18n"
	"github.com/example/pharmasite/internal/middleware"
)

// CatalogHandler serves products, categories and testimonials.
type CatalogHandler struct {
	loader *catalog.Loader
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(loader *catalog.Loader) *CatalogHandler {
	return &CatalogHandler{loader: loader}
}

// ListProducts returns the catalog rendered for the request language.
// Optional filters: featured=true, category=<canonical key>.
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.loader.Products(c.UserContext())
	if err != nil {
		return fmt.Errorf("list products: %w", err)
	}

	lang := middleware.Lang(c)
	featuredOnly := c.QueryBool("featured", false)
	category := strings.TrimSpace(c.Query("category"))

	items := make([]catalog.Localized, 0, len(products))
	for _, p := range products {
		if featuredOnly && !p.Featured {
			continue
		}
		if category != "" && !strings.EqualFold(p.Category[i18n.EN], category) {
			continue
		}
		items = append(items, p.Localize(lang))
	}

	return c.JSON(fiber.Map{"success": true, "lang": lang, "data": items})
}

// GetProduct returns one product, localized, together with every translation.
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	product, ok, err := h.loader.Product(c.UserContext(), c.Params("id"))
	if err != nil {
		return fmt.Errorf("get product: %w", err)
	}
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"lang":         middleware.Lang(c),
		"data":         product.Localize(middleware.Lang(c)),
		"translations": product,
	})
}

type categoryView struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// ListCategories returns the canonical categories with their labels.
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	lang := middleware.Lang(c)
	keys := i18n.Categories()
	items := make([]categoryView, 0, len(keys))
	for _, key := range keys {
		items = append(items, categoryView{Key: key, Label: i18n.TranslateCategory(key, lang)})
	}
	return c.JSON(fiber.Map{"success": true, "lang": lang, "data": items})
}

// ListTestimonials returns the static testimonials.
func (h *CatalogHandler) ListTestimonials(c *fiber.Ctx) error {
	lang := middleware.Lang(c)
	source := catalog.Testimonials()
	items := make([]catalog.LocalizedTestimonial, 0, len(source))
	for _, t := range source {
		items = append(items, t.Localize(lang))
	}
	return c.JSON(fiber.Map{"success": true, "lang": lang, "data": items})
}
