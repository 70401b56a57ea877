package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/example/pharmasite/internal/models"
)

// ProductRepository reads the hosted products table.
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository constructs ProductRepository.
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// ListPublishedProducts returns published rows ordered by id.
func (r *ProductRepository) ListPublishedProducts(ctx context.Context) ([]models.Product, error) {
	var rows []models.Product
	if err := r.db.WithContext(ctx).
		Where("published = ?", true).
		Order("id asc").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// CountPublishedProducts is used by the admin dashboard.
func (r *ProductRepository) CountPublishedProducts(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).Where("published = ?", true).Count(&total).Error
	return total, err
}
