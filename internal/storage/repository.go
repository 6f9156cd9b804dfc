package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Peritract/meld/internal/engine"
	"github.com/Peritract/meld/pkg/logger"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrSaveNotFound = errors.New("save not found")

// Repository хранит именованные сохранения
type Repository interface {
	Save(name string, snap *engine.Snapshot) error
	Load(name string) (*engine.Snapshot, error)
	List() ([]SaveRecord, error)
	Delete(name string) error
}

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

// Save создает или перезаписывает сохранение с этим именем
func (r *sqliteRepository) Save(name string, snap *engine.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	rec := SaveRecord{
		Name:     name,
		AreaName: snap.Area.Name,
		Seed:     snap.Area.Seed,
		Round:    snap.Round,
		Data:     data,
	}
	err = r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"area_name", "seed", "round", "data", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("save %q: %w", name, err)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "storage",
		"save":      name,
		"round":     snap.Round,
	}).Info("Game saved")
	return nil
}

func (r *sqliteRepository) Load(name string) (*engine.Snapshot, error) {
	var rec SaveRecord
	err := r.db.Where("name = ?", name).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrSaveNotFound, name)
	}
	if err != nil {
		return nil, err
	}

	var snap engine.Snapshot
	if err := json.Unmarshal(rec.Data, &snap); err != nil {
		return nil, fmt.Errorf("decode save %q: %w", name, err)
	}
	return &snap, nil
}

// List возвращает сохранения без данных снимка, новые первыми
func (r *sqliteRepository) List() ([]SaveRecord, error) {
	var recs []SaveRecord
	err := r.db.Omit("data").Order("updated_at desc, id desc").Find(&recs).Error
	return recs, err
}

func (r *sqliteRepository) Delete(name string) error {
	res := r.db.Where("name = ?", name).Delete(&SaveRecord{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrSaveNotFound, name)
	}
	return nil
}
