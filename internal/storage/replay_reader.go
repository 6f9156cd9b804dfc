package storage

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Peritract/meld/internal/domain"
	"github.com/Peritract/meld/internal/engine"
)

var ErrBadMagic = errors.New("invalid magic")

func (s *ReplayService) Load(path string) (*engine.Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadReplay(bufio.NewReader(f))
}

func ReadReplay(r io.Reader) (*engine.Replay, error) {
	// 1. Заголовок целиком
	var header ReplayFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	if string(header.Magic[:]) != MagicHeader {
		return nil, ErrBadMagic
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("unsupported version: %d (expected %d)", header.Version, Version1)
	}
	if header.ActionCount < 0 {
		return nil, fmt.Errorf("negative action count: %d", header.ActionCount)
	}

	replay := &engine.Replay{
		Seed:      header.Seed,
		Timestamp: header.Timestamp,
		LevelID:   header.LevelID,
		Actions:   make([]engine.ReplayAction, 0, header.ActionCount),
	}

	// 2. Действия
	for i := 0; i < int(header.ActionCount); i++ {
		var ah ActionHeader
		if err := binary.Read(r, binary.LittleEndian, &ah); err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}

		act := engine.ReplayAction{
			Round:  int(ah.Round),
			Action: domain.ActionType(ah.ActionType),
		}

		tokenBuf := make([]byte, ah.TokenLen)
		if _, err := io.ReadFull(r, tokenBuf); err != nil {
			return nil, fmt.Errorf("action %d token: %w", i, err)
		}
		act.Token = string(tokenBuf)

		if ah.PayloadLen > 0 {
			act.Payload = make([]byte, ah.PayloadLen)
			if _, err := io.ReadFull(r, act.Payload); err != nil {
				return nil, fmt.Errorf("action %d payload: %w", i, err)
			}
		}

		replay.Actions = append(replay.Actions, act)
	}

	return replay, nil
}
