package domain

import "time"

type Product struct {
	ID          int        `json:"id"`
	ProductName string     `json:"productName"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Stock       int        `json:"stock"`
	CategoryID  int        `json:"categoryId"`
	BrandID     int        `json:"brandId"`
	Image       string     `json:"image"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

func (p Product) GetID() int { return p.ID }

// Implement Timestamped interface for Product
func (p *Product) SetCreatedAt(t time.Time) { p.CreatedAt = t }
func (p *Product) SetUpdatedAt(t time.Time) { p.UpdatedAt = &t }
func (p Product) GetCreatedAt() time.Time   { return p.CreatedAt }
