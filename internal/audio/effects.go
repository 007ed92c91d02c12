// internal/audio/effects.go
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const (
	sampleRate = beep.SampleRate(44100)

	popDuration = 450 * time.Millisecond
	popDecay    = 9.0  // скорость затухания огибающей, 1/с
	thumpFreq   = 70.0 // Гц
)

// pop — хлопок разрыва: шум с низким ударом и экспоненциальной огибающей.
type pop struct {
	rng      *rand.Rand
	rate     beep.SampleRate
	position int
	total    int
	phase    float64
	lowpass  float64
}

// NewPop создаёт хлопок длиной popDuration. rng задаёт шум, чтобы хлопки различались.
func NewPop(rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	return &pop{
		rng:   rng,
		rate:  rate,
		total: rate.N(popDuration),
	}
}

func (p *pop) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if p.position >= p.total {
			return i, i > 0
		}
		t := float64(p.position) / float64(p.rate)
		env := math.Exp(-t * popDecay)

		// Однополюсный фильтр смягчает белый шум до треска
		noise := p.rng.Float64()*2 - 1
		p.lowpass += 0.35 * (noise - p.lowpass)

		thump := math.Sin(2 * math.Pi * p.phase)
		p.phase += thumpFreq * (1 + 2*env) / float64(p.rate)
		p.phase -= math.Floor(p.phase)

		val := env * (0.6*p.lowpass + 0.4*thump)
		samples[i][0] = val
		samples[i][1] = val
		p.position++
	}
	return len(samples), true
}

func (p *pop) Err() error { return nil }

// newVolume оборачивает поток в линейную громкость; 0 означает тишину.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateBurstSound собирает хлопок с панорамой pan в [-1, 1] и громкостью vol.
func CreateBurstSound(rng *rand.Rand, pan, vol float64) beep.Streamer {
	pan = math.Max(-1, math.Min(1, pan))
	return &effects.Pan{
		Streamer: newVolume(NewPop(sampleRate, rng), vol),
		Pan:      pan,
	}
}
