package models

import "time"

// Contact message sources.
const (
	SourceContact           = "contact"
	SourceRegulatoryInquiry = "regulatory_inquiry"
)

// ContactMessage is one row of contact_messages. Regulatory inquiries share
// the table and fill the company fields.
type ContactMessage struct {
	Record
	Source      string `gorm:"index;not null;default:contact" json:"source"`
	Name        string `gorm:"not null" json:"name"`
	Email       string `gorm:"not null" json:"email"`
	Message     string `gorm:"type:text" json:"message"`
	Company     string `json:"company,omitempty"`
	Country     string `json:"country,omitempty"`
	ProductType string `json:"product_type,omitempty"`
	IPAddress   string `json:"ip_address"`
	UserAgent   string `gorm:"type:text" json:"user_agent"`
}

// TableName pins the hosted table name.
func (ContactMessage) TableName() string { return "contact_messages" }

// DoctorConfirmation records that a visitor acknowledged the
// medical-professional disclaimer. DisclaimerHash identifies the text version.
type DoctorConfirmation struct {
	Record
	DisclaimerHash string    `gorm:"index;size:64;not null" json:"disclaimer_hash"`
	IPAddress      string    `json:"ip_address"`
	UserAgent      string    `gorm:"type:text" json:"user_agent"`
	ConfirmedAt    time.Time `json:"confirmed_at"`
}

func (DoctorConfirmation) TableName() string { return "doctor_confirmations" }
