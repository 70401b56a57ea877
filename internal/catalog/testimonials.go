package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/example/pharmasite/internal/i18n"
)

//go:embed testimonials.yaml
var testimonialsYAML []byte

// Testimonial is a customer quote shown on the home page.
type Testimonial struct {
	ID      int       `yaml:"id" json:"id"`
	Name    string    `yaml:"name" json:"name"`
	Title   i18n.Text `yaml:"title" json:"title"`
	Company i18n.Text `yaml:"company" json:"company"`
	Content i18n.Text `yaml:"content" json:"content"`
	Rating  int       `yaml:"rating" json:"rating"`
}

// LocalizedTestimonial is a Testimonial rendered for one language.
type LocalizedTestimonial struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Title   string `json:"title"`
	Company string `json:"company"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

var testimonials = mustParseTestimonials(testimonialsYAML)

func mustParseTestimonials(raw []byte) []Testimonial {
	items, err := parseTestimonials(raw)
	if err != nil {
		panic(err)
	}
	return items
}

func parseTestimonials(raw []byte) ([]Testimonial, error) {
	var items []Testimonial
	if err := yaml.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("parse testimonials: %w", err)
	}
	for _, t := range items {
		if t.Rating < 1 || t.Rating > 5 {
			return nil, fmt.Errorf("testimonial %d: rating %d out of range", t.ID, t.Rating)
		}
	}
	return items, nil
}

// Testimonials returns the compiled-in testimonial list.
func Testimonials() []Testimonial {
	out := make([]Testimonial, len(testimonials))
	copy(out, testimonials)
	return out
}

// Localize renders t for lang.
func (t Testimonial) Localize(lang i18n.Lang) LocalizedTestimonial {
	return LocalizedTestimonial{
		ID:      t.ID,
		Name:    t.Name,
		Title:   i18n.Localize(t.Title, lang),
		Company: i18n.Localize(t.Company, lang),
		Content: i18n.Localize(t.Content, lang),
		Rating:  t.Rating,
	}
}
