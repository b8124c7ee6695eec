package game

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Letter is a note name without its octave
type Letter string

const (
	C Letter = "C"
	D Letter = "D"
	E Letter = "E"
	F Letter = "F"
	G Letter = "G"
	A Letter = "A"
	B Letter = "B"
)

// Letters in button order
var Letters = [...]Letter{C, D, E, F, G, A, B}

var ErrNoteNotFound = errors.New("no note at position")

type Note struct {
	Name     Letter
	Octave   int
	Position int // Vertical center of the notehead, lower is higher pitch
}

// Offsets from C within an octave, for the natural notes only
var semitones = map[Letter]int{C: 0, D: 2, E: 4, F: 5, G: 7, A: 9, B: 11}

// The playable range, C4 up to G5. Each step up the staff is 10 higher.
var notes = [...]Note{
	{Name: C, Octave: 4, Position: 160},
	{Name: D, Octave: 4, Position: 150},
	{Name: E, Octave: 4, Position: 140},
	{Name: F, Octave: 4, Position: 130},
	{Name: G, Octave: 4, Position: 120},
	{Name: A, Octave: 4, Position: 110},
	{Name: B, Octave: 4, Position: 100},
	{Name: C, Octave: 5, Position: 90},
	{Name: D, Octave: 5, Position: 80},
	{Name: E, Octave: 5, Position: 70},
	{Name: F, Octave: 5, Position: 60},
	{Name: G, Octave: 5, Position: 50},
}

var byPosition = func() map[int]Note {
	m := make(map[int]Note, len(notes))
	for _, n := range notes {
		m[n.Position] = n
	}
	return m
}()

const (
	TopPosition    = 50
	BottomPosition = 160
	PositionStep   = 10
)

// Notes returns a copy of the note table, lowest first
func Notes() []Note {
	ns := make([]Note, len(notes))
	copy(ns, notes[:])
	return ns
}

func NoteAt(position int) (Note, error) {
	n, ok := byPosition[position]
	if !ok {
		return Note{}, fmt.Errorf("%w: %v", ErrNoteNotFound, position)
	}
	return n, nil
}

func (l Letter) Valid() bool {
	_, ok := semitones[l]
	return ok
}

func (n Note) String() string {
	return fmt.Sprintf("%v%v", n.Name, n.Octave)
}

// MIDI note number, C4 = 60
func (n Note) MIDI() int {
	return (n.Octave+1)*12 + semitones[n.Name]
}

// Frequency in Hz, equal temperament with A4 = 440
func (n Note) Frequency() float64 {
	return 440 * math.Pow(2, float64(n.MIDI()-69)/12)
}

type Picker struct {
	rng *rand.Rand
}

// NewPicker seeds from the clock when seed is 0
func NewPicker(seed int64) *Picker {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Picker{rng: rand.New(rand.NewSource(seed))}
}

// Pick may return the same note twice in a row
func (p *Picker) Pick() Note {
	return notes[p.rng.Intn(len(notes))]
}
