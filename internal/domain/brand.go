package domain

import "time"

type Brand struct {
	ID          int        `json:"id"`
	BrandName   string     `json:"brandName"`
	Description string     `json:"description"`
	Active      bool       `json:"active"`
	Country     string     `json:"country"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

func (b Brand) GetID() int { return b.ID }

// Implement Timestamped interface for Brand
func (b *Brand) SetCreatedAt(t time.Time) { b.CreatedAt = t }
func (b *Brand) SetUpdatedAt(t time.Time) { b.UpdatedAt = &t }
func (b Brand) GetCreatedAt() time.Time   { return b.CreatedAt }
