package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/example/pharmasite/internal/models"
	"github.com/example/pharmasite/internal/repository"
)

func newApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: ErrorHandler(zap.NewNop())})
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}, headers map[string]string) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := map[string]interface{}{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp, out
}

type fakeSubmissionStore struct {
	messages      []models.ContactMessage
	confirmations []models.DoctorConfirmation
	err           error
}

func (s *fakeSubmissionStore) CreateContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	if s.err != nil {
		return s.err
	}
	s.messages = append(s.messages, *msg)
	return nil
}

func (s *fakeSubmissionStore) CreateDoctorConfirmation(ctx context.Context, c *models.DoctorConfirmation) error {
	if s.err != nil {
		return s.err
	}
	s.confirmations = append(s.confirmations, *c)
	return nil
}

type fakeNotifier struct {
	sent []models.ContactMessage
	err  error
}

func (n *fakeNotifier) NotifySubmission(ctx context.Context, msg models.ContactMessage) error {
	n.sent = append(n.sent, msg)
	return n.err
}

type fakeProductStore struct {
	rows  []models.Product
	err   error
	calls int
}

func (s *fakeProductStore) ListPublishedProducts(ctx context.Context) ([]models.Product, error) {
	s.calls++
	return s.rows, s.err
}

// fakeContentStore keeps posts and news in memory and backs ContentStore,
// AdminStore and PostSlugSource.
type fakeContentStore struct {
	posts    map[string]*models.Post
	news     map[string]*models.CompanyNews
	messages []models.ContactMessage
	err      error
}

func newFakeContentStore() *fakeContentStore {
	return &fakeContentStore{
		posts: map[string]*models.Post{},
		news:  map[string]*models.CompanyNews{},
	}
}

func (s *fakeContentStore) sortedPosts(published bool) []models.Post {
	var out []models.Post
	for _, p := range s.posts {
		if !published || p.Published {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}

func (s *fakeContentStore) ListPublishedPosts(ctx context.Context, f repository.PostFilter) ([]models.Post, int64, error) {
	if s.err != nil {
		return nil, 0, s.err
	}
	var out []models.Post
	for _, p := range s.sortedPosts(true) {
		if f.Category == "" || p.Category == f.Category {
			out = append(out, p)
		}
	}
	total := int64(len(out))
	if f.Offset >= len(out) {
		return nil, total, nil
	}
	end := f.Offset + f.Limit
	if end > len(out) {
		end = len(out)
	}
	return out[f.Offset:end], total, nil
}

func (s *fakeContentStore) topPosts(limit int, key func(models.Post) int64) []models.Post {
	posts := s.sortedPosts(true)
	sort.SliceStable(posts, func(i, j int) bool { return key(posts[i]) > key(posts[j]) })
	if len(posts) > limit {
		posts = posts[:limit]
	}
	return posts
}

func (s *fakeContentStore) PopularPosts(ctx context.Context, limit int) ([]models.Post, error) {
	return s.topPosts(limit, func(p models.Post) int64 { return p.Views }), s.err
}

func (s *fakeContentStore) MostCitedPosts(ctx context.Context, limit int) ([]models.Post, error) {
	return s.topPosts(limit, func(p models.Post) int64 { return p.Citations }), s.err
}

func (s *fakeContentStore) PostCategories(ctx context.Context) ([]models.PostCategoryCount, error) {
	counts := map[string]int64{}
	for _, p := range s.sortedPosts(true) {
		if p.Category != "" {
			counts[p.Category]++
		}
	}
	var out []models.PostCategoryCount
	for c, n := range counts {
		out = append(out, models.PostCategoryCount{Category: c, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out, s.err
}

func (s *fakeContentStore) GetPublishedPost(ctx context.Context, slug string) (*models.Post, error) {
	for _, p := range s.posts {
		if p.Slug == slug && p.Published {
			p.Views++
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeContentStore) PublishedPostSlugs(ctx context.Context) ([]string, error) {
	var slugs []string
	for _, p := range s.sortedPosts(true) {
		slugs = append(slugs, p.Slug)
	}
	return slugs, s.err
}

func (s *fakeContentStore) ListPublishedNews(ctx context.Context, limit, offset int) ([]models.CompanyNews, int64, error) {
	var out []models.CompanyNews
	for _, n := range s.news {
		if n.Published {
			out = append(out, *n)
		}
	}
	return out, int64(len(out)), s.err
}

func (s *fakeContentStore) GetPublishedNews(ctx context.Context, slug string) (*models.CompanyNews, error) {
	for _, n := range s.news {
		if n.Slug == slug && n.Published {
			cp := *n
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeContentStore) ListContactMessages(ctx context.Context, source string, limit, offset int) ([]models.ContactMessage, int64, error) {
	var out []models.ContactMessage
	for _, m := range s.messages {
		if source == "" || m.Source == source {
			out = append(out, m)
		}
	}
	total := int64(len(out))
	if limit > 0 {
		if offset >= len(out) {
			return nil, total, s.err
		}
		if offset+limit < len(out) {
			out = out[offset : offset+limit]
		} else {
			out = out[offset:]
		}
	}
	return out, total, s.err
}

func (s *fakeContentStore) CountContactMessagesBySource(ctx context.Context) (map[string]int64, error) {
	out := map[string]int64{}
	for _, m := range s.messages {
		out[m.Source]++
	}
	return out, s.err
}

func (s *fakeContentStore) CountDoctorConfirmations(ctx context.Context) (int64, error) {
	return 3, s.err
}

func (s *fakeContentStore) slugTaken(slug, id string) bool {
	for k, p := range s.posts {
		if p.Slug == slug && k != id {
			return true
		}
	}
	return false
}

func (s *fakeContentStore) GetPost(ctx context.Context, id string) (*models.Post, error) {
	p, ok := s.posts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *fakeContentStore) CreatePost(ctx context.Context, post *models.Post) error {
	if s.slugTaken(post.Slug, post.ID.String()) {
		return gorm.ErrDuplicatedKey
	}
	cp := *post
	s.posts[post.ID.String()] = &cp
	return nil
}

func (s *fakeContentStore) SavePost(ctx context.Context, post *models.Post) error {
	return s.CreatePost(ctx, post)
}

func (s *fakeContentStore) DeletePost(ctx context.Context, id string) error {
	delete(s.posts, id)
	return nil
}

func (s *fakeContentStore) CountPosts(ctx context.Context) (int64, error) {
	return int64(len(s.posts)), s.err
}

func (s *fakeContentStore) GetNews(ctx context.Context, id string) (*models.CompanyNews, error) {
	n, ok := s.news[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *n
	return &cp, nil
}

func (s *fakeContentStore) CreateNews(ctx context.Context, item *models.CompanyNews) error {
	cp := *item
	s.news[item.ID.String()] = &cp
	return nil
}

func (s *fakeContentStore) SaveNews(ctx context.Context, item *models.CompanyNews) error {
	return s.CreateNews(ctx, item)
}

func (s *fakeContentStore) DeleteNews(ctx context.Context, id string) error {
	delete(s.news, id)
	return nil
}

func (s *fakeContentStore) CountNews(ctx context.Context) (int64, error) {
	return int64(len(s.news)), s.err
}

var errStoreDown = errors.New("connection refused")
