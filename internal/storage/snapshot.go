package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Peritract/meld/internal/engine"
	"github.com/Peritract/meld/pkg/logger"
	"github.com/sirupsen/logrus"
)

// WriteSnapshotFile сохраняет снимок в JSON. Запись идет во временный файл,
// который затем переименовывается.
func WriteSnapshotFile(path string, snap *engine.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create snapshot dir: %w", err)
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "storage",
		"path":      path,
		"round":     snap.Round,
		"bytes":     len(data),
	}).Info("Snapshot saved")
	return nil
}

func ReadSnapshotFile(path string) (*engine.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap engine.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	return &snap, nil
}
