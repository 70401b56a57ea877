package handlers

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/example/pharmasite/internal/config"
	"github.com/example/pharmasite/internal/middleware"
	"github.com/example/pharmasite/internal/models"
	"github.com/example/pharmasite/internal/services"
	"github.com/example/pharmasite/internal/utils"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// AdminStore is everything the admin surface reads and writes.
type AdminStore interface {
	ListContactMessages(ctx context.Context, source string, limit, offset int) ([]models.ContactMessage, int64, error)
	CountContactMessagesBySource(ctx context.Context) (map[string]int64, error)
	CountDoctorConfirmations(ctx context.Context) (int64, error)

	GetPost(ctx context.Context, id string) (*models.Post, error)
	CreatePost(ctx context.Context, post *models.Post) error
	SavePost(ctx context.Context, post *models.Post) error
	DeletePost(ctx context.Context, id string) error
	CountPosts(ctx context.Context) (int64, error)

	GetNews(ctx context.Context, id string) (*models.CompanyNews, error)
	CreateNews(ctx context.Context, item *models.CompanyNews) error
	SaveNews(ctx context.Context, item *models.CompanyNews) error
	DeleteNews(ctx context.Context, id string) error
	CountNews(ctx context.Context) (int64, error)
}

// AdminHandler manages admin-only endpoints.
type AdminHandler struct {
	store AdminStore
	cfg   *config.Config
	log   *zap.Logger
	now   func() time.Time
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(store AdminStore, cfg *config.Config, log *zap.Logger) *AdminHandler {
	return &AdminHandler{store: store, cfg: cfg, log: log, now: time.Now}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges the configured admin credentials for a JWT.
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	if !h.cfg.AdminEnabled() {
		return fiber.NewError(fiber.StatusServiceUnavailable, "admin access is not configured")
	}

	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	email := strings.TrimSpace(req.Email)
	if !strings.EqualFold(email, h.cfg.AdminEmail) || !utils.CheckPassword(h.cfg.AdminPasswordHash, req.Password) {
		h.log.Warn("admin login rejected", zap.String("email", email), zap.String("ip", utils.ClientIP(c)))
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, h.cfg.AdminEmail, h.cfg.TokenExpires)
	if err != nil {
		return fmt.Errorf("generate token: %w", err)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"token":      token,
		"expires_in": int64(h.cfg.TokenExpires.Seconds()),
	})
}

func (h *AdminHandler) ready() error {
	if h.store == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database is not configured")
	}
	return nil
}

// Stats returns counters for the dashboard.
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	if err := h.ready(); err != nil {
		return err
	}
	ctx := c.UserContext()

	bySource, err := h.store.CountContactMessagesBySource(ctx)
	if err != nil {
		return err
	}
	confirmations, err := h.store.CountDoctorConfirmations(ctx)
	if err != nil {
		return err
	}
	posts, err := h.store.CountPosts(ctx)
	if err != nil {
		return err
	}
	news, err := h.store.CountNews(ctx)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"contact_messages":     bySource[models.SourceContact],
			"regulatory_inquiries": bySource[models.SourceRegulatoryInquiry],
			"doctor_confirmations": confirmations,
			"posts":                posts,
			"news":                 news,
		},
	})
}

func messageSource(c *fiber.Ctx) (string, error) {
	source := strings.TrimSpace(c.Query("source"))
	switch source {
	case "", models.SourceContact, models.SourceRegulatoryInquiry:
		return source, nil
	}
	return "", fiber.NewError(fiber.StatusBadRequest, "invalid source")
}

// ListContactMessages pages through stored submissions.
func (h *AdminHandler) ListContactMessages(c *fiber.Ctx) error {
	if err := h.ready(); err != nil {
		return err
	}
	source, err := messageSource(c)
	if err != nil {
		return err
	}
	pg := utils.ParsePagination(c, 20)

	items, total, err := h.store.ListContactMessages(c.UserContext(), source, pg.Limit, pg.Offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": nonNil(items), "pagination": pg.Meta(total)})
}

// ExportContactMessages downloads every matching submission as XLSX.
func (h *AdminHandler) ExportContactMessages(c *fiber.Ctx) error {
	if err := h.ready(); err != nil {
		return err
	}
	source, err := messageSource(c)
	if err != nil {
		return err
	}

	items, _, err := h.store.ListContactMessages(c.UserContext(), source, 0, 0)
	if err != nil {
		return err
	}

	buf, err := services.ContactMessagesWorkbook(items)
	if err != nil {
		return err
	}

	name := fmt.Sprintf("contact-messages-%s.xlsx", h.now().UTC().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, name))
	return c.Send(buf.Bytes())
}

type postRequest struct {
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"`
	Category    string     `json:"category"`
	Author      string     `json:"author"`
	CoverImage  string     `json:"cover_image"`
	Citations   int64      `json:"citations"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at"`
}

func (h *AdminHandler) applyPost(post *models.Post, req postRequest) error {
	req.Slug = strings.TrimSpace(req.Slug)
	req.Title = strings.TrimSpace(req.Title)
	if req.Slug == "" || req.Title == "" {
		return fiber.NewError(fiber.StatusBadRequest, "slug and title are required")
	}
	if !slugPattern.MatchString(req.Slug) {
		return fiber.NewError(fiber.StatusBadRequest, "slug must be lowercase words separated by dashes")
	}
	if req.Citations < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "citations must not be negative")
	}

	post.Slug = req.Slug
	post.Title = req.Title
	post.Excerpt = strings.TrimSpace(req.Excerpt)
	post.Content = req.Content
	post.Category = strings.TrimSpace(req.Category)
	post.Author = strings.TrimSpace(req.Author)
	post.CoverImage = strings.TrimSpace(req.CoverImage)
	post.Citations = req.Citations
	post.Published = req.Published
	post.PublishedAt = h.publishedAt(req.Published, req.PublishedAt, post.PublishedAt)
	return nil
}

// publishedAt keeps an explicit date, then the stored one, and stamps now
// the first time an item is published.
func (h *AdminHandler) publishedAt(published bool, requested, current *time.Time) *time.Time {
	if requested != nil {
		return requested
	}
	if current != nil {
		return current
	}
	if published {
		now := h.now().UTC()
		return &now
	}
	return nil
}

func parseID(c *fiber.Ctx) (string, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return id.String(), nil
}

// CreatePost stores a new blog post.
func (h *AdminHandler) CreatePost(c *fiber.Ctx) error {
	if err := h.ready(); err != nil {
		return err
	}
	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	var post models.Post
	if err := h.applyPost(&post, req); err != nil {
		return err
	}
	post.EnsureID()

	if err := h.store.CreatePost(c.UserContext(), &post); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, "slug already exists")
		}
		return err
	}

	h.audit(c, "post created", post.ID)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": post})
}

// UpdatePost replaces the editable fields of a post.
func (h *AdminHandler) UpdatePost(c *fiber.Ctx) error {
	if err := h.ready(); err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	post, err := h.store.GetPost(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "post not found")
		}
		return err
	}

	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.applyPost(post, req); err != nil {
		return err
	}

	if err := h.store.SavePost(c.UserContext(), post); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, "slug already exists")
		}
		return err
	}

	h.audit(c, "post updated", post.ID)
	return c.JSON(fiber.Map{"success": true, "data": post})
}

// DeletePost removes a post.
func (h *AdminHandler) DeletePost(c *fiber.Ctx) error {
	if err := h.ready(); err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.store.DeletePost(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type newsRequest struct {
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary"`
	Content     string     `json:"content"`
	Image       string     `json:"image"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at"`
}

func (h *AdminHandler) applyNews(item *models.CompanyNews, req newsRequest) error {
	req.Slug = strings.TrimSpace(req.Slug)
	req.Title = strings.TrimSpace(req.Title)
	if req.Slug == "" || req.Title == "" {
		return fiber.NewError(fiber.StatusBadRequest, "slug and title are required")
	}
	if !slugPattern.MatchString(req.Slug) {
		return fiber.NewError(fiber.StatusBadRequest, "slug must be lowercase words separated by dashes")
	}

	item.Slug = req.Slug
	item.Title = req.Title
	item.Summary = strings.TrimSpace(req.Summary)
	item.Content = req.Content
	item.Image = strings.TrimSpace(req.Image)
	item.Published = req.Published
	item.PublishedAt = h.publishedAt(req.Published, req.PublishedAt, item.PublishedAt)
	return nil
}

// CreateNews stores a news item.
func (h *AdminHandler) CreateNews(c *fiber.Ctx) error {
	if err := h.ready(); err != nil {
		return err
	}
	var req newsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	var item models.CompanyNews
	if err := h.applyNews(&item, req); err != nil {
		return err
	}
	item.EnsureID()

	if err := h.store.CreateNews(c.UserContext(), &item); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, "slug already exists")
		}
		return err
	}

	h.audit(c, "news created", item.ID)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": item})
}

// UpdateNews replaces the editable fields of a news item.
func (h *AdminHandler) UpdateNews(c *fiber.Ctx) error {
	if err := h.ready(); err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	item, err := h.store.GetNews(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "news not found")
		}
		return err
	}

	var req newsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.applyNews(item, req); err != nil {
		return err
	}

	if err := h.store.SaveNews(c.UserContext(), item); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, "slug already exists")
		}
		return err
	}

	h.audit(c, "news updated", item.ID)
	return c.JSON(fiber.Map{"success": true, "data": item})
}

// DeleteNews removes a news item.
func (h *AdminHandler) DeleteNews(c *fiber.Ctx) error {
	if err := h.ready(); err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.store.DeleteNews(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AdminHandler) audit(c *fiber.Ctx, action string, id uuid.UUID) {
	admin, _ := middleware.CurrentAdmin(c)
	h.log.Info(action, zap.String("admin", admin), zap.String("id", id.String()))
}
