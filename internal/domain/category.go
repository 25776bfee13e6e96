package domain

import "time"

type Category struct {
	ID           int        `json:"id"`
	CategoryName string     `json:"categoryName"`
	Description  string     `json:"description"`
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

func (c Category) GetID() int { return c.ID }

// Implement Timestamped interface for Category
func (c *Category) SetCreatedAt(t time.Time) { c.CreatedAt = t }
func (c *Category) SetUpdatedAt(t time.Time) { c.UpdatedAt = &t }
func (c Category) GetCreatedAt() time.Time   { return c.CreatedAt }
