package storage

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Peritract/meld/internal/engine"
)

const (
	MagicHeader string = `MLRP` // 4 байта
	Version1    uint32 = 1
)

// ReplayFileHeader - точное представление заголовка файла в памяти.
// binary.Write умеет писать это целиком, так как тут нет слайсов и строк, только массивы и числа.
type ReplayFileHeader struct {
	Magic       [4]byte // 4 байта
	Version     uint32  // 4 байта
	Seed        int64   // 8 байт
	Timestamp   int64   // 8 байт
	LevelID     uint16  // 2 байта
	_           uint16  // выравнивание
	ActionCount int32   // 4 байта
}

// ActionHeader - заголовок каждой записи действия.
type ActionHeader struct {
	Round      int32  // 4
	ActionType uint8  // 1
	TokenLen   uint8  // 1
	PayloadLen uint16 // 2
}

type ReplayService struct {
	SaveDir string
}

func NewReplayService(dir string) (*ReplayService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create replay dir: %w", err)
	}
	return &ReplayService{SaveDir: dir}, nil
}

// Save пишет реплей в файл и возвращает путь
func (s *ReplayService) Save(r *engine.Replay) (string, error) {
	filename := fmt.Sprintf("replay_%d_area%d_%d.mlrp", r.Seed, r.LevelID, r.Timestamp)
	path := filepath.Join(s.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := WriteReplay(w, r); err != nil {
		return "", err
	}
	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("flush replay: %w", err)
	}
	return path, nil
}

func WriteReplay(w io.Writer, r *engine.Replay) error {
	// 1. Глобальный заголовок
	header := ReplayFileHeader{
		Version:     Version1,
		Seed:        r.Seed,
		Timestamp:   r.Timestamp,
		LevelID:     r.LevelID,
		ActionCount: int32(len(r.Actions)),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	// 2. Действия
	for i, act := range r.Actions {
		tokenBytes := []byte(act.Token)
		if len(tokenBytes) > 255 {
			return fmt.Errorf("action %d: token too long: %d", i, len(tokenBytes))
		}

		payloadLen := len(act.Payload)
		if payloadLen > 65535 {
			return fmt.Errorf("action %d: payload too long: %d", i, payloadLen)
		}

		actHeader := ActionHeader{
			Round:      int32(act.Round),
			ActionType: uint8(act.Action),
			TokenLen:   uint8(len(tokenBytes)),
			PayloadLen: uint16(payloadLen),
		}
		if err := binary.Write(w, binary.LittleEndian, &actHeader); err != nil {
			return err
		}

		// Тело: токен и payload
		if _, err := w.Write(tokenBytes); err != nil {
			return err
		}
		if payloadLen > 0 {
			if _, err := w.Write(act.Payload); err != nil {
				return err
			}
		}
	}

	return nil
}
