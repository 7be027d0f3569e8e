package simulation

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"evolution-sim/internal/common"
	"evolution-sim/internal/config"
)

// StimulusClass tags a stimulus as beneficial or harmful.
type StimulusClass int

const (
	// Food is a beneficial stimulus.
	Food StimulusClass = iota
	// Poison is a harmful stimulus.
	Poison
)

// String returns the lowercase class name.
func (c StimulusClass) String() string {
	switch c {
	case Food:
		return "food"
	case Poison:
		return "poison"
	}
	return fmt.Sprintf("class(%d)", int(c))
}

// Stimulus is a static point in the world that vehicles perceive and
// consume. It has no behavior of its own; removal from the owning
// collection is the consumer's responsibility. Two stimuli are equal only
// if they are the same object, so each carries a unique id.
type Stimulus struct {
	id       string
	class    StimulusClass
	size     float64
	position common.Vec
}

// NewStimulus creates a stimulus of the given class at a fixed position.
func NewStimulus(class StimulusClass, size float64, pos common.Vec) *Stimulus {
	return &Stimulus{
		id:       fmt.Sprintf("%s-%s", class, uuid.NewString()[:8]),
		class:    class,
		size:     size,
		position: pos,
	}
}

// NewRandomStimulus creates a stimulus with size sampled uniformly from the
// configured range and a position uniform over the world bounds.
func NewRandomStimulus(rng *rand.Rand, class StimulusClass, cfg config.StimulusConfig, bounds [2]float64) *Stimulus {
	return NewStimulus(
		class,
		common.RandomInRange(rng, cfg.SizeRange),
		common.NewRandomVec(rng, bounds[0], bounds[1]),
	)
}

// ID returns the unique identifier of the stimulus.
func (s *Stimulus) ID() string {
	return s.id
}

// Class returns the class tag of the stimulus.
func (s *Stimulus) Class() StimulusClass {
	return s.class
}

// Size returns the visual and consumption radius of the stimulus.
func (s *Stimulus) Size() float64 {
	return s.size
}

// Position returns the fixed world position of the stimulus.
func (s *Stimulus) Position() common.Vec {
	return s.position
}

// String representation for logging.
func (s *Stimulus) String() string {
	return fmt.Sprintf("Stimulus[%s] Pos: %s Size: %.2f", s.id, s.position, s.size)
}
