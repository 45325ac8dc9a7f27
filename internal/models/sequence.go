package models

// Sequence backs the per-entity id counters. One row per counter name,
// incremented atomically by the sequence service.
type Sequence struct {
	Name  string `gorm:"primaryKey"`
	Value int64  `gorm:"not null;default:0"`
}
