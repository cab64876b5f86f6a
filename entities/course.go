package entities

import (
	"strings"
	"time"
)

// Course belongs to the User that created it.
type Course struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"not null" json:"title"`
	Description     string    `gorm:"not null" json:"description"`
	EstimatedTime   string    `json:"estimatedTime,omitempty"`
	MaterialsNeeded string    `json:"materialsNeeded,omitempty"`
	UserID          uint      `gorm:"index;not null" json:"userId"`
	User            *User     `json:"user,omitempty"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
}

// Validate checks every field rule and returns one message per violation.
func (c *Course) Validate() ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, "Title value is required")
	}
	if strings.TrimSpace(c.Description) == "" {
		errs = append(errs, "Description value is required")
	}

	return errs
}
