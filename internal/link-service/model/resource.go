package model

import "time"

// Resource is the local mirror of a catalog resource row.
type Resource struct {
	ID           string `gorm:"primaryKey"`
	DatasetID    string
	URL          string
	CreatedAt    time.Time `gorm:"index"`
	LastModified *time.Time
}

func (Resource) TableName() string {
	return "resources"
}
