// Package random provides the injectable random sources behind summon rolls
package random

import (
	"math/rand/v2"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// diceFaces is the die size used to build a uniform float from toolkit rolls
const diceFaces = 1 << 30

// Source produces uniform draws in [0, 1)
type Source interface {
	Float64() float64
}

// DiceSource draws through rpg-toolkit dice, which uses the toolkit's
// crypto-backed default roller. It is the production source.
type DiceSource struct{}

// NewDiceSource returns the production source
func NewDiceSource() *DiceSource {
	return &DiceSource{}
}

// Float64 rolls a single die with 2^30 faces and scales the face to [0, 1)
func (DiceSource) Float64() float64 {
	roll, err := dice.NewRoll(1, diceFaces)
	if err != nil {
		return rand.Float64()
	}
	face := roll.GetValue()
	if face < 1 || face > diceFaces {
		// the toolkit reports a failed roll as 0
		return rand.Float64()
	}
	return float64(face-1) / diceFaces
}

// seeded is a reproducible PCG source. Not safe for concurrent use.
type seeded struct {
	r *rand.Rand
}

// NewSeeded returns a reproducible source for tests, replays and simulations
func NewSeeded(seed uint64) Source {
	return &seeded{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seeded) Float64() float64 { return s.r.Float64() }

// Fixed replays a scripted sequence of draws, wrapping around when exhausted
type Fixed struct {
	values []float64
	next   int
}

// NewFixed returns a source that yields values in order
func NewFixed(values ...float64) *Fixed {
	return &Fixed{values: values}
}

// Float64 returns the next scripted value, or 0 when none were scripted
func (f *Fixed) Float64() float64 {
	if len(f.values) == 0 {
		return 0
	}
	v := f.values[f.next%len(f.values)]
	f.next++
	return v
}
