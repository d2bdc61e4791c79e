package audio

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/rng"
)

func drain(t *testing.T, s beep.Streamer) (count int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		count += n
		if !ok {
			return count, peak
		}
	}
	t.Fatal("streamer never ended")
	return 0, 0
}

func TestSynthLengths(t *testing.T) {
	sy := synth{rate: sampleRate, noise: rng.New(1)}
	step := sampleRate.N(100 * time.Millisecond)

	tests := []struct {
		name string
		spec config.SoundSpec
		want int
	}{
		{"sine tone", config.SoundSpec{Wave: "sine", Freq: 440, Duration: 0.1}, step},
		{"slide", config.SoundSpec{Wave: "square", Freq: 880, EndFreq: 440, Duration: 0.1}, step},
		{"noise", config.SoundSpec{Wave: "noise", Duration: 0.1}, step},
		{"notes", config.SoundSpec{Wave: "saw", Duration: 0.1, Notes: []float64{220, 330, 440}}, 3 * step},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, peak := drain(t, sy.build(tt.spec))
			if n != tt.want {
				t.Errorf("samples = %d, want %d", n, tt.want)
			}
			if peak == 0 || peak > 1.0001 {
				t.Errorf("peak = %v", peak)
			}
		})
	}
}

func TestEnvelopeEdges(t *testing.T) {
	sy := synth{rate: sampleRate, noise: rng.New(1)}
	s := sy.tone(WaveSquare, 440, 440, 50*time.Millisecond)
	buf := make([][2]float64, 1)
	s.Stream(buf)
	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, want 0 during attack", buf[0][0])
	}
}

func TestParseWave(t *testing.T) {
	for name, want := range map[string]Wave{"Square": WaveSquare, "saw": WaveSaw, "noise": WaveNoise, "": WaveSine, "bogus": WaveSine} {
		if got := ParseWave(name); got != want {
			t.Errorf("ParseWave(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestMissingSoundWarnsOnce(t *testing.T) {
	var buf bytes.Buffer
	p := NewBeepPlayer(map[string]config.SoundSpec{"shoot": {Freq: 440, Duration: 0.05}}, 1, log.New(&buf))

	p.PlayOneShot("nope", 1)
	p.PlayOneShot("nope", 1)
	p.PlayLoopingTrack("nope", 1)
	p.PlayOneShot(SoundShoot, 1)
	p.StopLoopingTrack()

	if n := strings.Count(buf.String(), "nope"); n != 1 {
		t.Errorf("warned %d times, want 1", n)
	}
	if strings.Contains(buf.String(), SoundShoot) {
		t.Error("warned about a sound that exists")
	}
}
