package catalog

import (
	"sort"
	"strings"

	"github.com/example/pharmasite/internal/i18n"
	"github.com/example/pharmasite/internal/models"
)

// Product is a catalog entry with every localized field keyed by language.
type Product struct {
	ID          string                 `json:"id"`
	Name        i18n.Text              `json:"name"`
	Category    i18n.Text              `json:"category"`
	Description i18n.Text              `json:"description"`
	Features    map[i18n.Lang][]string `json:"features"`
	MedicalInfo i18n.Text              `json:"medicalInfo"`
	Image       string                 `json:"image"`
	Featured    bool                   `json:"featured"`
}

// Localized is a Product rendered for a single language.
type Localized struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	CategoryKey string   `json:"categoryKey"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	MedicalInfo string   `json:"medicalInfo,omitempty"`
	Image       string   `json:"image"`
	Featured    bool     `json:"featured"`
}

// ParseFeatures splits a comma-separated list, trimming entries and dropping
// empty ones. The result is never nil.
func ParseFeatures(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// FromRecord reshapes a products row. A blank localized category falls back
// to the translation of the English key.
func FromRecord(row models.Product) Product {
	p := Product{
		ID: row.ID,
		Name: i18n.Text{
			i18n.EN: row.NameEn, i18n.UZ: row.NameUz, i18n.RU: row.NameRu, i18n.DE: row.NameDe,
		},
		Category: i18n.Text{
			i18n.EN: row.CategoryEn, i18n.UZ: row.CategoryUz, i18n.RU: row.CategoryRu, i18n.DE: row.CategoryDe,
		},
		Description: i18n.Text{
			i18n.EN: row.DescriptionEn, i18n.UZ: row.DescriptionUz, i18n.RU: row.DescriptionRu, i18n.DE: row.DescriptionDe,
		},
		Features: map[i18n.Lang][]string{
			i18n.EN: ParseFeatures(row.FeaturesEn),
			i18n.UZ: ParseFeatures(row.FeaturesUz),
			i18n.RU: ParseFeatures(row.FeaturesRu),
			i18n.DE: ParseFeatures(row.FeaturesDe),
		},
		MedicalInfo: i18n.Text{
			i18n.EN: deref(row.MedicalInfoEn),
			i18n.UZ: deref(row.MedicalInfoUz),
			i18n.RU: deref(row.MedicalInfoRu),
			i18n.DE: deref(row.MedicalInfoDe),
		},
		Image:    row.Image,
		Featured: row.Featured,
	}

	if key := row.CategoryEn; key != "" {
		for _, l := range i18n.Supported() {
			if p.Category[l] == "" {
				p.Category[l] = i18n.TranslateCategory(key, l)
			}
		}
	}
	return p
}

// Localize renders p for lang, falling back per field.
func (p Product) Localize(lang i18n.Lang) Localized {
	return Localized{
		ID:          p.ID,
		Name:        i18n.Localize(p.Name, lang),
		Category:    i18n.Localize(p.Category, lang),
		CategoryKey: p.Category[i18n.EN],
		Description: i18n.Localize(p.Description, lang),
		Features:    localizeList(p.Features, lang),
		MedicalInfo: i18n.Localize(p.MedicalInfo, lang),
		Image:       p.Image,
		Featured:    p.Featured,
	}
}

// localizeList picks a feature list with the same order as i18n.Localize:
// lang, the default language, then the first non-empty list.
func localizeList(lists map[i18n.Lang][]string, lang i18n.Lang) []string {
	if len(lists[lang]) > 0 {
		return lists[lang]
	}
	if len(lists[i18n.DefaultLang]) > 0 {
		return lists[i18n.DefaultLang]
	}
	for _, l := range i18n.Supported() {
		if len(lists[l]) > 0 {
			return lists[l]
		}
	}

	var extra []string
	for l, list := range lists {
		if len(list) > 0 {
			extra = append(extra, string(l))
		}
	}
	if len(extra) == 0 {
		return []string{}
	}
	sort.Strings(extra)
	return lists[i18n.Lang(extra[0])]
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
