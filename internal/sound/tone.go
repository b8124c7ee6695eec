package sound

import (
	"fmt"
	"math"
	"time"

	"git.lost.host/meutraa/flashcards/internal/game"
	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

const (
	SampleRate = beep.SampleRate(44100)
	Length     = 600 * time.Millisecond
	fade       = 20 * time.Millisecond
)

// Tone is a sine wave at freq with short fades at both ends so it does
// not click. It ends after length.
func Tone(sr beep.SampleRate, freq float64, length time.Duration) beep.Streamer {
	total := sr.N(length)
	ramp := sr.N(fade)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if pos >= total {
				return i, i > 0
			}
			gain := 1.0
			if pos < ramp {
				gain = float64(pos) / float64(ramp)
			} else if total-pos < ramp {
				gain = float64(total-pos) / float64(ramp)
			}
			v := gain * math.Sin(2*math.Pi*freq*float64(pos)/float64(sr))
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	})
}

type Player struct {
	sr     beep.SampleRate
	volume float64
}

// NewPlayer opens the speaker. Volume is in halvings, 0 is full scale.
func NewPlayer(volume float64) (*Player, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/30)); nil != err {
		return nil, fmt.Errorf("unable to open speaker: %w", err)
	}
	return &Player{sr: SampleRate, volume: volume}, nil
}

func (p *Player) Play(n game.Note) {
	speaker.Play(&effects.Volume{
		Streamer: Tone(p.sr, n.Frequency(), Length),
		Base:     2,
		Volume:   p.volume,
	})
}
