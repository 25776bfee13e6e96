package domain

import "time"

// Entity is implemented by every record kept in a catalog store.
type Entity interface {
	GetID() int
}

// Timestamped is implemented by entities carrying creation/update stamps.
type Timestamped interface {
	GetCreatedAt() time.Time
	SetCreatedAt(t time.Time)
	SetUpdatedAt(t time.Time)
}
