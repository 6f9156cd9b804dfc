package utils

import (
	"crypto/rand"
	"encoding/hex"
	"hash/fnv"
	mrand "math/rand"
)

// GenerateID создает простой уникальный ID (токен сессии)
func GenerateID() string {
	b := make([]byte, 8) // 16 символов hex
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// StringToSeed превращает строку в детерминированный сид
func StringToSeed(s string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return int64(h.Sum64() >> 1)
}

// WeightedIndex выбирает индекс пропорционально весу.
// Веса должны быть положительными; пустой срез дает -1.
func WeightedIndex(rng *mrand.Rand, weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return -1
	}
	roll := rng.Intn(total)
	cumulative := 0
	for i, w := range weights {
		cumulative += w
		if roll < cumulative {
			return i
		}
	}
	return len(weights) - 1
}

// TrackedSource считает вызовы генератора, чтобы состояние можно было
// восстановить по паре (seed, position).
type TrackedSource struct {
	seed int64
	src  mrand.Source64
	pos  int64
}

// NewTrackedRand создает детерминированный генератор с учетом позиции
func NewTrackedRand(seed int64) (*mrand.Rand, *TrackedSource) {
	ts := &TrackedSource{
		seed: seed,
		src:  mrand.NewSource(seed).(mrand.Source64),
	}
	return mrand.New(ts), ts
}

// RestoreTrackedRand прокручивает генератор до сохраненной позиции
func RestoreTrackedRand(seed, position int64) (*mrand.Rand, *TrackedSource) {
	rng, ts := NewTrackedRand(seed)
	for i := int64(0); i < position; i++ {
		ts.src.Int63()
	}
	ts.pos = position
	return rng, ts
}

func (t *TrackedSource) Int63() int64 {
	t.pos++
	return t.src.Int63()
}

func (t *TrackedSource) Uint64() uint64 {
	t.pos++
	return t.src.Uint64()
}

func (t *TrackedSource) Seed(seed int64) {
	t.seed = seed
	t.pos = 0
	t.src.Seed(seed)
}

// Position - сколько значений выдано с момента создания
func (t *TrackedSource) Position() int64 {
	return t.pos
}

func (t *TrackedSource) SeedValue() int64 {
	return t.seed
}
