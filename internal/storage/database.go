package storage

import (
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SaveRecord - именованное сохранение партии. Снимок хранится как JSON.
type SaveRecord struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;not null"`
	AreaName  string
	Seed      int64
	Round     int
	Data      []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SaveRecord) TableName() string { return "saves" }

// OpenAndMigrate открывает sqlite-базу и обновляет схему
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&SaveRecord{}); err != nil {
		return nil, err
	}
	return db, nil
}
