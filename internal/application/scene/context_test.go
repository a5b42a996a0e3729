package scene

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/motogame/internal/domain/entity"
)

func TestSession_Select(t *testing.T) {
	s := NewSession()
	assert.Equal(t, entity.CharacterOne, s.Character)

	assert.True(t, s.Select(entity.CharacterTwo))
	assert.Equal(t, entity.CharacterTwo, s.Character)

	assert.False(t, s.Select(entity.Character(5)))
	assert.Equal(t, entity.CharacterTwo, s.Character, "unknown characters leave the selection alone")
}

func TestSession_Runs(t *testing.T) {
	s := NewSession()
	first := s.StartRun()
	second := s.StartRun()

	assert.NotEqual(t, uuid.Nil, first)
	assert.NotEqual(t, first, second)
	assert.Equal(t, second, s.RunID)
	assert.Equal(t, 2, s.Runs)

	s.EndRun(true, 12)
	assert.True(t, s.LastWon)
	assert.Equal(t, 12, s.LastCoins)
}
