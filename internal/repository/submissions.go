package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/example/pharmasite/internal/models"
)

// SubmissionRepository persists form submissions.
type SubmissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository constructs SubmissionRepository.
func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) CreateContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *SubmissionRepository) CreateDoctorConfirmation(ctx context.Context, c *models.DoctorConfirmation) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// ListContactMessages pages through messages, newest first. An empty source
// lists every kind.
func (r *SubmissionRepository) ListContactMessages(ctx context.Context, source string, limit, offset int) ([]models.ContactMessage, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ContactMessage{})
	if source != "" {
		query = query.Where("source = ?", source)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.ContactMessage
	q := query.Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// CountContactMessagesBySource groups message counts by source.
func (r *SubmissionRepository) CountContactMessagesBySource(ctx context.Context) (map[string]int64, error) {
	type sourceCount struct {
		Source string
		Count  int64
	}
	var rows []sourceCount
	if err := r.db.WithContext(ctx).Model(&models.ContactMessage{}).
		Select("source, count(*) as count").
		Group("source").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Source] = row.Count
	}
	return out, nil
}

func (r *SubmissionRepository) CountDoctorConfirmations(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.DoctorConfirmation{}).Count(&total).Error
	return total, err
}
