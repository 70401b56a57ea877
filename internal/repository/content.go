package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/example/pharmasite/internal/models"
)

// ContentRepository serves blog posts and company news.
type ContentRepository struct {
	db *gorm.DB
}

// NewContentRepository constructs ContentRepository.
func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// PostFilter narrows ListPublishedPosts.
type PostFilter struct {
	Category string
	Limit    int
	Offset   int
}

func (r *ContentRepository) published(ctx context.Context, model interface{}) *gorm.DB {
	return r.db.WithContext(ctx).Model(model).Where("published = ?", true)
}

// ListPublishedPosts returns a page of published posts, newest first.
func (r *ContentRepository) ListPublishedPosts(ctx context.Context, f PostFilter) ([]models.Post, int64, error) {
	query := r.published(ctx, &models.Post{})
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	// Count and Find each get their own statement.
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	if err := query.Order("published_at desc nulls last").Order("created_at desc").
		Limit(f.Limit).Offset(f.Offset).
		Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// PopularPosts returns the most viewed published posts.
func (r *ContentRepository) PopularPosts(ctx context.Context, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.published(ctx, &models.Post{}).Order("views desc").Limit(limit).Find(&posts).Error
	return posts, err
}

// MostCitedPosts returns the most cited published posts.
func (r *ContentRepository) MostCitedPosts(ctx context.Context, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.published(ctx, &models.Post{}).Order("citations desc").Limit(limit).Find(&posts).Error
	return posts, err
}

// PostCategories counts published posts per category.
func (r *ContentRepository) PostCategories(ctx context.Context) ([]models.PostCategoryCount, error) {
	var rows []models.PostCategoryCount
	err := r.published(ctx, &models.Post{}).
		Select("category, count(*) as count").
		Where("category <> ''").
		Group("category").
		Order("category asc").
		Scan(&rows).Error
	return rows, err
}

// GetPublishedPost loads a published post by slug and bumps its view counter.
// The returned Views already includes this read.
func (r *ContentRepository) GetPublishedPost(ctx context.Context, slug string) (*models.Post, error) {
	var post models.Post
	if err := r.published(ctx, &models.Post{}).Where("slug = ?", slug).First(&post).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", post.ID).
		UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		return nil, err
	}
	post.Views++
	return &post, nil
}

// PublishedPostSlugs feeds the sitemap.
func (r *ContentRepository) PublishedPostSlugs(ctx context.Context) ([]string, error) {
	var slugs []string
	err := r.published(ctx, &models.Post{}).Order("slug asc").Pluck("slug", &slugs).Error
	return slugs, err
}

func (r *ContentRepository) GetPost(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *ContentRepository) CreatePost(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *ContentRepository) SavePost(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *ContentRepository) DeletePost(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Post{}, "id = ?", id).Error
}

func (r *ContentRepository) CountPosts(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Post{}).Count(&total).Error
	return total, err
}

// ListPublishedNews returns a page of company news, newest first.
func (r *ContentRepository) ListPublishedNews(ctx context.Context, limit, offset int) ([]models.CompanyNews, int64, error) {
	query := r.published(ctx, &models.CompanyNews{}).Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.CompanyNews
	if err := query.Order("published_at desc nulls last").Order("created_at desc").
		Limit(limit).Offset(offset).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *ContentRepository) GetPublishedNews(ctx context.Context, slug string) (*models.CompanyNews, error) {
	var item models.CompanyNews
	if err := r.published(ctx, &models.CompanyNews{}).Where("slug = ?", slug).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ContentRepository) GetNews(ctx context.Context, id string) (*models.CompanyNews, error) {
	var item models.CompanyNews
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ContentRepository) CreateNews(ctx context.Context, item *models.CompanyNews) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *ContentRepository) SaveNews(ctx context.Context, item *models.CompanyNews) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *ContentRepository) DeleteNews(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.CompanyNews{}, "id = ?", id).Error
}

func (r *ContentRepository) CountNews(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.CompanyNews{}).Count(&total).Error
	return total, err
}
