package models

import "time"

// Product mirrors a row of the hosted products table: one column per
// language for every localized field.
type Product struct {
	ID string `gorm:"primaryKey" json:"id"`

	NameEn string `json:"name_en"`
	NameUz string `json:"name_uz"`
	NameRu string `json:"name_ru"`
	NameDe string `json:"name_de"`

	CategoryEn string `gorm:"index" json:"category_en"`
	CategoryUz string `json:"category_uz"`
	CategoryRu string `json:"category_ru"`
	CategoryDe string `json:"category_de"`

	DescriptionEn string `gorm:"type:text" json:"description_en"`
	DescriptionUz string `gorm:"type:text" json:"description_uz"`
	DescriptionRu string `gorm:"type:text" json:"description_ru"`
	DescriptionDe string `gorm:"type:text" json:"description_de"`

	// Comma-separated lists.
	FeaturesEn string `gorm:"type:text" json:"features_en"`
	FeaturesUz string `gorm:"type:text" json:"features_uz"`
	FeaturesRu string `gorm:"type:text" json:"features_ru"`
	FeaturesDe string `gorm:"type:text" json:"features_de"`

	MedicalInfoEn *string `gorm:"type:text" json:"medical_info_en"`
	MedicalInfoUz *string `gorm:"type:text" json:"medical_info_uz"`
	MedicalInfoRu *string `gorm:"type:text" json:"medical_info_ru"`
	MedicalInfoDe *string `gorm:"type:text" json:"medical_info_de"`

	Image     string    `json:"image"`
	Featured  bool      `json:"featured"`
	Published bool      `gorm:"index" json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Product) TableName() string { return "products" }
