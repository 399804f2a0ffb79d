package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Logistics struct {
	ID          uint    `gorm:"primaryKey"`
	Description string  `gorm:"not null"`
	Reserve     bool    `gorm:"not null;default:false"`
	PrixUnit    float64 `gorm:"not null"`
	Quantite    int     `gorm:"not null"`
	EventID     *uint   `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Logistics) TableName() string {
	return "logistics"
}

type LogisticsDAO struct {
	db *gorm.DB
}

func NewLogisticsDAO(db *gorm.DB) *LogisticsDAO {
	return &LogisticsDAO{
		db: db,
	}
}

func (d *LogisticsDAO) Save(ctx context.Context, logistics Logistics) (Logistics, error) {
	result := save(d.db.WithContext(ctx), logistics.ID, &logistics)
	if result.Error != nil {
		return Logistics{}, result.Error
	}

	return logistics, nil
}
