package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/example/pharmasite/internal/catalog"
	"github.com/example/pharmasite/internal/config"
	"github.com/example/pharmasite/internal/handlers"
	"github.com/example/pharmasite/internal/middleware"
	"github.com/example/pharmasite/internal/repository"
	"github.com/example/pharmasite/internal/services"
)

// Register wires up all HTTP routes. db may be nil when no database is
// configured; data endpoints then answer 500.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config, log *zap.Logger) {
	var (
		productStore    catalog.Store
		submissionStore handlers.SubmissionStore
		contentStore    handlers.ContentStore
		slugSource      handlers.PostSlugSource
		adminStore      handlers.AdminStore
	)
	if db != nil {
		submissions := repository.NewSubmissionRepository(db)
		content := repository.NewContentRepository(db)

		productStore = repository.NewProductRepository(db)
		submissionStore = submissions
		contentStore = content
		slugSource = content
		adminStore = adminRepository{submissions, content}
	}

	mailer := services.NewMailer(cfg.ResendAPIKey, cfg.ResendBaseURL, log.Named("mailer"))
	telegram := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat, log.Named("telegram"))
	notifications := services.NewNotificationService(mailer, telegram, cfg.MailFrom, cfg.MailRecipients(), log.Named("notify"))

	loader := catalog.NewLoader(productStore)

	submissionHandler := handlers.NewSubmissionHandler(submissionStore, notifications, log.Named("submissions"))
	catalogHandler := handlers.NewCatalogHandler(loader)
	contentHandler := handlers.NewContentHandler(contentStore)
	seoHandler := handlers.NewSEOHandler(cfg.SiteURL, loader, slugSource)
	adminHandler := handlers.NewAdminHandler(adminStore, cfg, log.Named("admin"))

	app.Get("/sitemap.xml", seoHandler.Sitemap)
	app.Get("/robots.txt", seoHandler.Robots)

	api := app.Group("/api", middleware.Language())

	// Form submissions
	api.Post("/contact", submissionHandler.Contact)
	api.Post("/regulatory-inquiry", submissionHandler.RegulatoryInquiry)
	api.Post("/confirm-medical-professional", submissionHandler.ConfirmMedicalProfessional)

	// Catalog
	api.Get("/products", catalogHandler.ListProducts)
	api.Get("/products/:id", catalogHandler.GetProduct)
	api.Get("/categories", catalogHandler.ListCategories)
	api.Get("/testimonials", catalogHandler.ListTestimonials)

	// Content
	blog := api.Group("/blog")
	blog.Get("/posts", contentHandler.ListPosts)
	blog.Get("/posts/:slug", contentHandler.GetPost)
	api.Get("/news", contentHandler.ListNews)
	api.Get("/news/:slug", contentHandler.GetNews)

	// Admin. Login stays registered ahead of the guarded group.
	api.Post("/admin/login", adminHandler.Login)

	admin := api.Group("/admin", middleware.AdminAuth(cfg.JWTSecret))
	admin.Get("/stats", adminHandler.Stats)
	admin.Get("/contact-messages", adminHandler.ListContactMessages)
	admin.Get("/contact-messages/export", adminHandler.ExportContactMessages)
	admin.Post("/posts", adminHandler.CreatePost)
	admin.Put("/posts/:id", adminHandler.UpdatePost)
	admin.Delete("/posts/:id", adminHandler.DeletePost)
	admin.Post("/news", adminHandler.CreateNews)
	admin.Put("/news/:id", adminHandler.UpdateNews)
	admin.Delete("/news/:id", adminHandler.DeleteNews)
}

type adminRepository struct {
	*repository.SubmissionRepository
	*repository.ContentRepository
}
