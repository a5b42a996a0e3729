package scene

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/younwookim/motogame/internal/application/asset"
	"github.com/younwookim/motogame/internal/domain/entity"
	"github.com/younwookim/motogame/internal/infrastructure/config"
)

// Context is what every scene shares: config, assets, audio and the session.
type Context struct {
	Config    *config.GameConfig
	Resources *asset.ResourceSet
	Audio     asset.Audio
	Session   *Session
	Logger    *log.Logger
}

// Session is per-process state that outlives a single run.
// The selected character persists until the process exits.
type Session struct {
	Character entity.Character
	RunID     uuid.UUID // current or last run
	Runs      int
	LastCoins int
	LastWon   bool
}

// NewSession returns a session with the first character selected
func NewSession() *Session {
	return &Session{Character: entity.CharacterOne}
}

// StartRun assigns a fresh run id
func (s *Session) StartRun() uuid.UUID {
	s.RunID = uuid.New()
	s.Runs++
	return s.RunID
}

// Select makes ch the session character. Unknown characters are refused.
func (s *Session) Select(ch entity.Character) bool {
	if !ch.Valid() {
		return false
	}
	s.Character = ch
	return true
}

// EndRun records the result of the current run
func (s *Session) EndRun(won bool, coins int) {
	s.LastWon = won
	s.LastCoins = coins
}
