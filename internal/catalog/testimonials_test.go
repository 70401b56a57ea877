package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/pharmasite/internal/i18n"
)

func TestTestimonialsComplete(t *testing.T) {
	items := Testimonials()
	require.NotEmpty(t, items)

	seen := map[int]bool{}
	for _, item := range items {
		assert.False(t, seen[item.ID], "duplicate id %d", item.ID)
		seen[item.ID] = true
		assert.NotEmpty(t, item.Name)
		assert.GreaterOrEqual(t, item.Rating, 1)
		assert.LessOrEqual(t, item.Rating, 5)
		for _, l := range i18n.Supported() {
			assert.NotEmpty(t, item.Title[l], "title %d/%s", item.ID, l)
			assert.NotEmpty(t, item.Company[l], "company %d/%s", item.ID, l)
			assert.NotEmpty(t, item.Content[l], "content %d/%s", item.ID, l)
		}
	}
}

func TestParseTestimonialsRejectsBadRating(t *testing.T) {
	_, err := parseTestimonials([]byte("- id: 9\n  name: X\n  rating: 6\n"))
	assert.Error(t, err)
}

func TestTestimonialLocalize(t *testing.T) {
	item := Testimonials()[0]
	ru := item.Localize(i18n.RU)
	assert.Equal(t, item.Content[i18n.RU], ru.Content)
	assert.Equal(t, item.Rating, ru.Rating)
}
