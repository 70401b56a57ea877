package handlers

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/pharmasite/internal/catalog"
)

type staticPage struct {
	Path       string
	ChangeFreq string
	Priority   float64
}

var staticPages = []staticPage{
	{Path: "", ChangeFreq: "weekly", Priority: 1.0},
	{Path: "about", ChangeFreq: "monthly", Priority: 0.8},
	{Path: "products", ChangeFreq: "weekly", Priority: 0.9},
	{Path: "careers", ChangeFreq: "monthly", Priority: 0.6},
	{Path: "regulatory-services", ChangeFreq: "monthly", Priority: 0.8},
	{Path: "contact", ChangeFreq: "yearly", Priority: 0.7},
	{Path: "blog", ChangeFreq: "daily", Priority: 0.7},
	{Path: "news", ChangeFreq: "weekly", Priority: 0.6},
}

// PostSlugSource lists published post slugs.
type PostSlugSource interface {
	PublishedPostSlugs(ctx context.Context) ([]string, error)
}

// SEOHandler serves sitemap.xml and robots.txt.
type SEOHandler struct {
	siteURL string
	loader  *catalog.Loader
	posts   PostSlugSource
}

// NewSEOHandler constructs SEOHandler. posts may be nil.
func NewSEOHandler(siteURL string, loader *catalog.Loader, posts PostSlugSource) *SEOHandler {
	return &SEOHandler{siteURL: strings.TrimRight(siteURL, "/"), loader: loader, posts: posts}
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

func (h *SEOHandler) abs(path string) string {
	if path == "" {
		return h.siteURL + "/"
	}
	return h.siteURL + "/" + path
}

// Sitemap lists static pages, every catalog product and published posts.
func (h *SEOHandler) Sitemap(c *fiber.Ctx) error {
	products, err := h.loader.Products(c.UserContext())
	if err != nil {
		return fmt.Errorf("sitemap products: %w", err)
	}

	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, p := range staticPages {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        h.abs(p.Path),
			ChangeFreq: p.ChangeFreq,
			Priority:   fmt.Sprintf("%.1f", p.Priority),
		})
	}
	for _, p := range products {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        h.abs("products/" + url.PathEscape(p.ID)),
			ChangeFreq: "monthly",
			Priority:   "0.7",
		})
	}

	if h.posts != nil {
		slugs, err := h.posts.PublishedPostSlugs(c.UserContext())
		if err != nil {
			return fmt.Errorf("sitemap posts: %w", err)
		}
		for _, slug := range slugs {
			set.URLs = append(set.URLs, sitemapURL{
				Loc:        h.abs("blog/" + url.PathEscape(slug)),
				ChangeFreq: "monthly",
				Priority:   "0.5",
			})
		}
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("encode sitemap: %w", err)
	}

	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	return c.Send(append([]byte(xml.Header), out...))
}

// Robots allows crawling of public pages and points at the sitemap.
func (h *SEOHandler) Robots(c *fiber.Ctx) error {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /api/\n")
	b.WriteString("Disallow: /admin/\n")
	fmt.Fprintf(&b, "\nSitemap: %s/sitemap.xml\n", h.siteURL)

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(b.String())
}
