// Package audio plays named sound effects and looping music tracks.
package audio

//go:generate mockgen -destination=../mocks/audio_player_mock.go -package=mocks . Player

import (
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/rng"
)

// Sound names used by the games.
const (
	SoundShoot      = "shoot"
	SoundHit        = "hit"
	SoundExplosion  = "explosion"
	SoundLevelClear = "level_clear"
	SoundGameOver   = "game_over"
	SoundMenuSelect = "menu_select"
	SoundEat        = "eat"
)

// Player plays sounds by name. Unknown names are silently ignored.
type Player interface {
	PlayOneShot(name string, volume float64)
	PlayLoopingTrack(name string, volume float64)
	StopLoopingTrack()
}

// Silent is a Player that does nothing. Used for SSH sessions and tests.
type Silent struct{}

func (Silent) PlayOneShot(string, float64)       {}
func (Silent) PlayLoopingTrack(string, float64) {}
func (Silent) StopLoopingTrack()                {}

const sampleRate = beep.SampleRate(44100)

// BeepPlayer synthesizes sounds from a tone bank and plays them through the
// system speaker. Until Start succeeds every call is a no-op apart from the
// missing-name warning.
type BeepPlayer struct {
	mu      sync.Mutex
	bank    map[string]config.SoundSpec
	synth   synth
	mixer   *beep.Mixer
	track   *beep.Ctrl
	current string
	started bool
	logger  *log.Logger
	warned  map[string]struct{}
}

// NewBeepPlayer creates a player for the given tone bank.
func NewBeepPlayer(bank map[string]config.SoundSpec, seed uint64, logger *log.Logger) *BeepPlayer {
	if logger == nil {
		logger = log.Default()
	}
	b := make(map[string]config.SoundSpec, len(bank))
	for name, spec := range bank {
		b[strings.ToLower(name)] = spec
	}
	return &BeepPlayer{
		bank:   b,
		synth:  synth{rate: sampleRate, noise: rng.New(seed)},
		mixer:  &beep.Mixer{},
		logger: logger,
		warned: make(map[string]struct{}),
	}
}

// Start opens the speaker. It is safe to call more than once.
func (p *BeepPlayer) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.started = true
	return nil
}

// Close stops all sounds and releases the speaker.
func (p *BeepPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.track = nil
	p.current = ""
	p.started = false
}

func (p *BeepPlayer) lookup(name string) (config.SoundSpec, bool) {
	spec, ok := p.bank[strings.ToLower(name)]
	if !ok {
		if _, seen := p.warned[name]; !seen {
			p.warned[name] = struct{}{}
			p.logger.Warn("missing sound", "sound", name)
		}
	}
	return spec, ok
}

// PlayOneShot mixes a single instance of the named sound.
func (p *BeepPlayer) PlayOneShot(name string, volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	spec, ok := p.lookup(name)
	if !ok || !p.started {
		return
	}
	s := withVolume(p.synth.build(spec), volume)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// PlayLoopingTrack replaces the current track with the named one, looping
// until StopLoopingTrack. Requesting the track already playing is a no-op.
func (p *BeepPlayer) PlayLoopingTrack(name string, volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	spec, ok := p.lookup(name)
	if !ok || !p.started {
		return
	}
	if p.track != nil && p.current == name {
		return
	}
	p.stopTrackLocked()

	sy := p.synth
	loop := beep.Iterate(func() beep.Streamer {
		return sy.build(spec)
	})
	p.track = &beep.Ctrl{Streamer: withVolume(loop, volume)}
	p.current = name
	speaker.Lock()
	p.mixer.Add(p.track)
	speaker.Unlock()
}

// StopLoopingTrack silences the current track, if any.
func (p *BeepPlayer) StopLoopingTrack() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopTrackLocked()
}

func (p *BeepPlayer) stopTrackLocked() {
	if p.track == nil {
		return
	}
	speaker.Lock()
	p.track.Paused = true
	p.track.Streamer = nil
	speaker.Unlock()
	p.track = nil
	p.current = ""
}

var (
	_ Player = Silent{}
	_ Player = (*BeepPlayer)(nil)
)
