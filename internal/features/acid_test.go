package features

import (
	"testing"

	"github.com/Peritract/meld/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcidBlob_LandingOnCreatureBurnsOnce(t *testing.T) {
	l := newLevel(t)
	crab := spawn(l, "crab", 2)
	blob := NewAcidBlob(l.NewID(domain.KindFeature), AcidDamage, AcidDuration)

	blob.Land(crab.Pos, l)

	assert.Equal(t, crab.Body.MaxHealth()-AcidDamage, crab.Body.Health)
	assert.True(t, blob.Expired())
	require.Len(t, l.Log().Messages(), 1)
	assert.Equal(t, "Acid burns the crab!", l.Log().Messages()[0].Text)

	l.UpdateFeatures()
	assert.Empty(t, l.Features())
}

func TestAcidBlob_DissolvesAfterDuration(t *testing.T) {
	l := newLevel(t)
	blob := NewAcidBlob(l.NewID(domain.KindFeature), AcidDamage, AcidDuration)
	blob.Land(domain.Position{X: 4}, l)

	for i := 0; i < AcidDuration-1; i++ {
		l.UpdateFeatures()
		require.Len(t, l.FeaturesAt(domain.Position{X: 4}), 1)
	}

	l.UpdateFeatures()
	assert.Empty(t, l.FeaturesAt(domain.Position{X: 4}))
}

func TestAcidBlob_BurnsWhoeverStepsIn(t *testing.T) {
	l := newLevel(t)
	blob := NewAcidBlob(l.NewID(domain.KindFeature), AcidDamage, AcidDuration)
	blob.Land(domain.Position{X: 4}, l)

	snail := spawn(l, "snail", 4)
	l.UpdateFeatures()

	assert.Equal(t, snail.Body.MaxHealth()-AcidDamage, snail.Body.Health)
	assert.Empty(t, l.Features())
}

func TestAcidBlob_NotInteractable(t *testing.T) {
	l := newLevel(t)
	blob := NewAcidBlob(1, AcidDamage, AcidDuration)

	err := blob.Interact(spawn(l, "hero", 0), l)

	_, ok := domain.AsActionError(err)
	assert.True(t, ok)
	assert.False(t, blob.Interactable())
}
