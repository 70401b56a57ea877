package handlers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/example/pharmasite/internal/models"
	"github.com/example/pharmasite/internal/utils"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SubmissionStore persists form submissions.
type SubmissionStore interface {
	CreateContactMessage(ctx context.Context, msg *models.ContactMessage) error
	CreateDoctorConfirmation(ctx context.Context, c *models.DoctorConfirmation) error
}

// SubmissionNotifier tells staff about a stored submission.
type SubmissionNotifier interface {
	NotifySubmission(ctx context.Context, msg models.ContactMessage) error
}

// SubmissionHandler serves the public form endpoints.
type SubmissionHandler struct {
	store    SubmissionStore
	notifier SubmissionNotifier
	log      *zap.Logger
	now      func() time.Time
}

// NewSubmissionHandler constructs SubmissionHandler. A nil store answers 500
// on every submission; a nil notifier skips notifications.
func NewSubmissionHandler(store SubmissionStore, notifier SubmissionNotifier, log *zap.Logger) *SubmissionHandler {
	return &SubmissionHandler{store: store, notifier: notifier, log: log, now: time.Now}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Contact stores a contact-form message.
func (h *SubmissionHandler) Contact(c *fiber.Ctx) error {
	var req contactRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" || req.Email == "" || req.Message == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name, email and message are required")
	}
	if !emailPattern.MatchString(req.Email) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid email address")
	}

	msg := models.ContactMessage{
		Source:    models.SourceContact,
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		IPAddress: utils.ClientIP(c),
		UserAgent: utils.UserAgent(c),
	}
	if err := h.saveMessage(c.UserContext(), &msg); err != nil {
		return err
	}

	h.notify(c.UserContext(), msg)

	return c.JSON(fiber.Map{
		"ok":      true,
		"id":      msg.ID,
		"message": "Message sent successfully",
	})
}

type regulatoryInquiryRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Company     string `json:"company"`
	Country     string `json:"country"`
	ProductType string `json:"productType"`
	Message     string `json:"message"`
}

// RegulatoryInquiry stores a regulatory-services inquiry.
func (h *SubmissionHandler) RegulatoryInquiry(c *fiber.Ctx) error {
	var req regulatoryInquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Company = strings.TrimSpace(req.Company)
	req.Country = strings.TrimSpace(req.Country)
	req.ProductType = strings.TrimSpace(req.ProductType)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" || req.Email == "" || req.Company == "" || req.Country == "" || req.ProductType == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name, email, company, country and productType are required")
	}
	if !emailPattern.MatchString(req.Email) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid email address")
	}

	msg := models.ContactMessage{
		Source:      models.SourceRegulatoryInquiry,
		Name:        req.Name,
		Email:       req.Email,
		Company:     req.Company,
		Country:     req.Country,
		ProductType: req.ProductType,
		Message:     req.Message,
		IPAddress:   utils.ClientIP(c),
		UserAgent:   utils.UserAgent(c),
	}
	if err := h.saveMessage(c.UserContext(), &msg); err != nil {
		return err
	}

	h.notify(c.UserContext(), msg)

	return c.JSON(fiber.Map{"ok": true, "id": msg.ID})
}

type confirmationRequest struct {
	DisclaimerText string `json:"disclaimerText"`
}

// ConfirmMedicalProfessional records acknowledgement of the disclaimer. The
// SHA-256 of the exact text shown identifies which version was accepted.
func (h *SubmissionHandler) ConfirmMedicalProfessional(c *fiber.Ctx) error {
	var req confirmationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.DisclaimerText) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "disclaimerText is required")
	}

	confirmation := models.DoctorConfirmation{
		DisclaimerHash: DisclaimerHash(req.DisclaimerText),
		IPAddress:      utils.ClientIP(c),
		UserAgent:      utils.UserAgent(c),
		ConfirmedAt:    h.now().UTC(),
	}
	confirmation.EnsureID()

	if h.store == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database is not configured")
	}
	if err := h.store.CreateDoctorConfirmation(c.UserContext(), &confirmation); err != nil {
		h.log.Error("save doctor confirmation", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "failed to save confirmation")
	}

	return c.JSON(fiber.Map{"ok": true, "id": confirmation.ID})
}

// DisclaimerHash returns the hex SHA-256 of text.
func DisclaimerHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

func (h *SubmissionHandler) saveMessage(ctx context.Context, msg *models.ContactMessage) error {
	msg.EnsureID()
	if h.store == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database is not configured")
	}
	if err := h.store.CreateContactMessage(ctx, msg); err != nil {
		h.log.Error("save contact message", zap.String("source", msg.Source), zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "failed to save message")
	}
	return nil
}

// notify is best effort: the row is already stored.
func (h *SubmissionHandler) notify(ctx context.Context, msg models.ContactMessage) {
	if h.notifier == nil {
		return
	}
	if err := h.notifier.NotifySubmission(ctx, msg); err != nil {
		h.log.Warn("submission notification failed",
			zap.String("source", msg.Source),
			zap.String("id", msg.ID.String()),
			zap.Error(err),
		)
	}
}
