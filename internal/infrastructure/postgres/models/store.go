package models

import (
	"time"

	"gorm.io/gorm"
)

type StoreModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	Name        string `gorm:"not null"`
	Phone       string
	Description string
	Category    string `gorm:"index:idx_store_category"`
	Open        bool   `gorm:"default:true"`
	Blocked     bool   `gorm:"default:false;index:idx_store_blocked"`
	Schedule    string `gorm:"type:jsonb"` // weekly operating hours payload
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (StoreModel) TableName() string {
	return "stores"
}
