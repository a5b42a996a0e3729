package asset

import "github.com/charmbracelet/log"

// PlaySound plays s and logs playback failures instead of returning them.
// An absent sound returns NoChannel.
func PlaySound(a Audio, s *Sound, loops int, logger *log.Logger) Channel {
	if s == nil {
		return NoChannel
	}
	ch, err := a.PlaySound(s, loops)
	if err != nil {
		logger.Warn("sound playback failed", "sound", s.Path(), "err", err)
		return NoChannel
	}
	return ch
}

// PlayMusic starts m looping forever. An absent track stops the music.
func PlayMusic(a Audio, m *Music, logger *log.Logger) {
	if m == nil {
		a.StopMusic()
		return
	}
	if err := a.PlayMusic(m, LoopForever); err != nil {
		logger.Warn("music playback failed", "music", m.Path(), "err", err)
	}
}
