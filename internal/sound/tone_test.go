package sound

import (
	"math"
	"testing"
	"time"
)

func TestToneLength(t *testing.T) {
	s := Tone(SampleRate, 440, 100*time.Millisecond)
	expected := SampleRate.N(100 * time.Millisecond)
	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if total != expected {
		t.Fatal("streamed", total, "samples, expected", expected)
	}
}

func TestToneRange(t *testing.T) {
	s := Tone(SampleRate, 261.63, 50*time.Millisecond)
	buf := make([][2]float64, SampleRate.N(50*time.Millisecond))
	n, _ := s.Stream(buf)
	if buf[0][0] != 0 {
		t.Fatal("tone does not start at silence", buf[0][0])
	}
	peak := 0.0
	for _, sample := range buf[:n] {
		if sample[0] != sample[1] {
			t.Fatal("channels differ", sample)
		}
		if math.Abs(sample[0]) > 1 {
			t.Fatal("sample out of range", sample[0])
		}
		peak = math.Max(peak, math.Abs(sample[0]))
	}
	if peak < 0.9 {
		t.Fatal("tone too quiet, peak", peak)
	}
}
