package audio

import (
	"math"
	"strings"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/rng"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// ParseWave maps a config name to a Wave. Unknown names fall back to sine.
func ParseWave(name string) Wave {
	switch strings.ToLower(name) {
	case "square":
		return WaveSquare
	case "saw":
		return WaveSaw
	case "noise":
		return WaveNoise
	}
	return WaveSine
}

// oscillator produces a fixed number of samples while sliding linearly
// from one frequency to another.
type oscillator struct {
	from, to float64
	phase    float64
	total    int
	pos      int
	wave     Wave
	rate     beep.SampleRate
	noise    *rng.Rand
}

func newOscillator(wave Wave, from, to float64, samples int, rate beep.SampleRate, noise *rng.Rand) *oscillator {
	if to == 0 {
		to = from
	}
	return &oscillator{from: from, to: to, total: samples, wave: wave, rate: rate, noise: noise}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.total {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.pos) / float64(o.total)
		freq := o.from + (o.to-o.from)*t
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack samples and out over the last
// release samples of total.
type envelope struct {
	s       beep.Streamer
	pos     int
	attack  int
	release int
	total   int
}

func newEnvelope(s beep.Streamer, total, attack, release int) *envelope {
	if attack+release > total {
		attack, release = total/2, total-total/2
	}
	return &envelope{s: s, attack: attack, release: release, total: total}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.pos >= e.total {
		return 0, false
	}
	if rem := e.total - e.pos; len(samples) > rem {
		samples = samples[:rem]
	}
	n, ok = e.s.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; left < e.release {
			vol = float64(left) / float64(e.release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// withVolume scales s linearly by vol. math.Log2(0) is -Inf, so zero is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

const attackTime = 5 * time.Millisecond

// synth renders sound specs into streamers.
type synth struct {
	rate  beep.SampleRate
	noise *rng.Rand
}

// build returns a finite streamer for spec. Specs with notes become a
// sequence of equal-length tones.
func (s synth) build(spec config.SoundSpec) beep.Streamer {
	d := config.Seconds(spec.Duration)
	wave := ParseWave(spec.Wave)

	var out beep.Streamer
	if len(spec.Notes) > 0 {
		notes := make([]beep.Streamer, 0, len(spec.Notes))
		for _, f := range spec.Notes {
			notes = append(notes, s.tone(wave, f, f, d))
		}
		out = beep.Seq(notes...)
	} else {
		out = s.tone(wave, spec.Freq, spec.EndFreq, d)
	}

	vol := spec.Volume
	if vol == 0 {
		vol = 1
	}
	return withVolume(out, vol)
}

func (s synth) tone(wave Wave, from, to float64, d time.Duration) beep.Streamer {
	n := s.rate.N(d)
	var src beep.Streamer
	if wave == WaveSine && (to == 0 || to == from) {
		if st, err := generators.SineTone(s.rate, from); err == nil {
			src = beep.Take(n, st)
		}
	}
	if src == nil {
		src = newOscillator(wave, from, to, n, s.rate, s.noise)
	}
	return newEnvelope(src, n, s.rate.N(attackTime), n/3)
}
