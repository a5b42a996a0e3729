package replay

import (
	"errors"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/motogame/internal/application/system"
)

type stepRecorder struct {
	inputs []system.InputState
	dts    []float64
	stopAt int
	err    error
}

func (s *stepRecorder) Step(in system.InputState, dt float64) error {
	s.inputs = append(s.inputs, in)
	s.dts = append(s.dts, dt)
	if s.stopAt > 0 && len(s.inputs) == s.stopAt {
		return s.err
	}
	return nil
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	rec := NewRecorder(42)
	rec.RecordFrame(system.InputState{Events: []system.Event{system.Click(60, 210)}}, 0.016)
	rec.RecordFrame(system.InputState{Held: system.Held{Down: true, Right: true}}, 0.017)
	rec.Stop()
	rec.RecordFrame(system.InputState{}, 0.1)
	assert.False(t, rec.IsRecording())
	assert.Equal(t, 2, rec.FrameCount())

	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, rec.Save(path))

	data, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, FormatVersion, data.Version)
	assert.Equal(t, int64(42), data.Seed)
	assert.Equal(t, rec.Data().RunID, data.RunID)
	assert.NotEmpty(t, data.RunID)

	r := NewReplayer(*data)
	in, dt, ok := r.Next()
	require.True(t, ok)
	assert.Equal(t, 0.016, dt)
	assert.Equal(t, []system.Event{system.Click(60, 210)}, in.Events)

	in, dt, ok = r.Next()
	require.True(t, ok)
	assert.Equal(t, 0.017, dt)
	assert.Equal(t, system.Held{Down: true, Right: true}, in.Held)
	assert.Empty(t, in.Events)

	_, _, ok = r.Next()
	assert.False(t, ok)
	assert.Equal(t, 2, r.CurrentFrame())

	r.Reset()
	assert.Equal(t, 0, r.CurrentFrame())
}

func TestRecorder_SaveEmpty(t *testing.T) {
	rec := NewRecorder(1)
	assert.Error(t, rec.Save(filepath.Join(t.TempDir(), "empty.json")))
}

func TestRecorder_CopiesEvents(t *testing.T) {
	rec := NewRecorder(1)
	events := []system.Event{system.Press(system.KeyEnter)}
	rec.RecordFrame(system.InputState{Events: events}, 0.01)

	events[0] = system.Press(system.KeyEscape)
	assert.Equal(t, system.KeyEnter, rec.Data().Frames[0].Events[0].Key)
}

func TestLoadReplay_Errors(t *testing.T) {
	_, err := LoadReplay(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestReplayer_Play(t *testing.T) {
	r := NewReplayer(CreateTestReplayData(10, 0.02))
	s := &stepRecorder{}

	n, err := r.Play(s)
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Len(t, s.dts, 10)
	assert.Equal(t, 0.02, s.dts[9])
	assert.Equal(t, int64(12345), r.Seed())
	assert.Equal(t, 10, r.TotalFrames())
}

func TestReplayer_PlayStopsOnTermination(t *testing.T) {
	r := NewReplayer(CreateTestReplayData(10, 0.02))
	s := &stepRecorder{stopAt: 4, err: ebiten.Termination}

	n, err := r.Play(s)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestReplayer_PlayError(t *testing.T) {
	r := NewReplayer(CreateTestReplayData(10, 0.02))
	boom := errors.New("boom")
	s := &stepRecorder{stopAt: 3, err: boom}

	n, err := r.Play(s)
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "frame 2")
	assert.Equal(t, 3, n)
}

func TestGenerateFilename(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^replay_\d{8}_\d{6}\.json$`), GenerateFilename())
}
