package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/pharmasite/internal/i18n"
	"github.com/example/pharmasite/internal/models"
	"github.com/example/pharmasite/internal/repository"
	"github.com/example/pharmasite/internal/utils"
)

const (
	postsPageSize   = 9
	newsPageSize    = 10
	sidebarPostsMax = 5
)

// ContentStore reads published blog posts and news.
type ContentStore interface {
	ListPublishedPosts(ctx context.Context, f repository.PostFilter) ([]models.Post, int64, error)
	PopularPosts(ctx context.Context, limit int) ([]models.Post, error)
	MostCitedPosts(ctx context.Context, limit int) ([]models.Post, error)
	PostCategories(ctx context.Context) ([]models.PostCategoryCount, error)
	GetPublishedPost(ctx context.Context, slug string) (*models.Post, error)
	ListPublishedNews(ctx context.Context, limit, offset int) ([]models.CompanyNews, int64, error)
	GetPublishedNews(ctx context.Context, slug string) (*models.CompanyNews, error)
}

// ContentHandler serves the blog and news sections.
type ContentHandler struct {
	store ContentStore
}

// NewContentHandler constructs ContentHandler.
func NewContentHandler(store ContentStore) *ContentHandler {
	return &ContentHandler{store: store}
}

type blogCategory struct {
	Category string    `json:"category"`
	Count    int64     `json:"count"`
	Labels   i18n.Text `json:"labels"`
}

func (h *ContentHandler) ready() error {
	if h.store == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database is not configured")
	}
	return nil
}

// ListPosts returns a page of posts plus the sidebar collections.
func (h *ContentHandler) ListPosts(c *fiber.Ctx) error {
	if err := h.ready(); err != nil {
		return err
	}
	ctx := c.UserContext()
	pg := utils.ParsePagination(c, postsPageSize)

	posts, total, err := h.store.ListPublishedPosts(ctx, repository.PostFilter{
		Category: strings.TrimSpace(c.Query("category")),
		Limit:    pg.Limit,
		Offset:   pg.Offset,
	})
	if err != nil {
		return fmt.Errorf("list posts: %w", err)
	}

	popular, err := h.store.PopularPosts(ctx, sidebarPostsMax)
	if err != nil {
		return fmt.Errorf("popular posts: %w", err)
	}

	cited, err := h.store.MostCitedPosts(ctx, sidebarPostsMax)
	if err != nil {
		return fmt.Errorf("most cited posts: %w", err)
	}

	counts, err := h.store.PostCategories(ctx)
	if err != nil {
		return fmt.Errorf("post categories: %w", err)
	}
	categories := make([]blogCategory, 0, len(counts))
	for _, cc := range counts {
		labels := i18n.Text{}
		for _, l := range i18n.Supported() {
			labels[l] = i18n.TranslateCategory(cc.Category, l)
		}
		categories = append(categories, blogCategory{Category: cc.Category, Count: cc.Count, Labels: labels})
	}

	return c.JSON(fiber.Map{
		"posts":          nonNil(posts),
		"popularPosts":   nonNil(popular),
		"mostCitedPosts": nonNil(cited),
		"categories":     categories,
		"pagination":     pg.Meta(total),
	})
}

// GetPost returns a published post by slug.
func (h *ContentHandler) GetPost(c *fiber.Ctx) error {
	if err := h.ready(); err != nil {
		return err
	}
	post, err := h.store.GetPublishedPost(c.UserContext(), c.Params("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "post not found")
		}
		return fmt.Errorf("get post: %w", err)
	}
	return c.JSON(fiber.Map{"success": true, "data": post})
}

// ListNews returns a page of company news.
func (h *ContentHandler) ListNews(c *fiber.Ctx) error {
	if err := h.ready(); err != nil {
		return err
	}
	pg := utils.ParsePagination(c, newsPageSize)
	items, total, err := h.store.ListPublishedNews(c.UserContext(), pg.Limit, pg.Offset)
	if err != nil {
		return fmt.Errorf("list news: %w", err)
	}
	return c.JSON(fiber.Map{"success": true, "data": nonNil(items), "pagination": pg.Meta(total)})
}

// GetNews returns a published news item by slug.
func (h *ContentHandler) GetNews(c *fiber.Ctx) error {
	if err := h.ready(); err != nil {
		return err
	}
	item, err := h.store.GetPublishedNews(c.UserContext(), c.Params("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "news not found")
		}
		return fmt.Errorf("get news: %w", err)
	}
	return c.JSON(fiber.Map{"success": true, "data": item})
}

// nonNil keeps empty collections rendering as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
