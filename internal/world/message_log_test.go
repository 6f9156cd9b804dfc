package world

import (
	"testing"

	"github.com/Peritract/meld/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageLog_MergesDuplicates(t *testing.T) {
	log := NewMessageLog(1, 10)

	log.Post(domain.NewMessage(domain.CategoryAlert, "you are damaged by poison."))
	log.Post(domain.NewMessage(domain.CategoryAlert, "you are damaged by poison."))
	log.Post(domain.NewMessage(domain.CategoryCombat, "you punch at the crab!"))

	msgs := log.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "You are damaged by poison. (x2)", msgs[0].FullText())
	assert.Equal(t, 1, msgs[1].Count)
}

func TestMessageLog_DrainResets(t *testing.T) {
	log := NewMessageLog(1, 10)
	log.Post(domain.NewMessage(domain.CategoryWorld, "a"))

	assert.Len(t, log.Drain(), 1)
	assert.Empty(t, log.Drain())
	assert.Len(t, log.Messages(), 1)
}

func TestMessageLog_Limit(t *testing.T) {
	log := NewMessageLog(1, 2)
	for _, s := range []string{"a", "b", "c"} {
		log.Post(domain.NewMessage(domain.CategoryWorld, s))
	}

	msgs := log.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "B", msgs[0].Text)
}
