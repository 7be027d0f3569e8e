// Package simulation implements the evolutionary steering core: a
// population of gene-driven vehicles wandering a bounded plane scattered
// with food and poison stimuli. The World drives every vehicle through
// perception, steering and consumption once per tick; everything runs on
// the caller's goroutine with no synchronization.
package simulation

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"evolution-sim/internal/config"
)

// World owns the vehicle population and the two stimulus collections and
// advances them one tick at a time.
type World struct {
	bounds   [2]float64
	vehicles []*Vehicle
	food     []*Stimulus
	poison   []*Stimulus

	tick   uint64
	logger *log.Logger
	rng    *rand.Rand
}

// NewWorld validates the configuration and spawns the initial populations.
// All randomized state is drawn from rng, so a fixed seed reproduces a run.
func NewWorld(cfg *config.Config, rng *rand.Rand, logger *log.Logger) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w := &World{
		bounds: cfg.WindowSize,
		logger: logger,
		rng:    rng,
	}

	w.vehicles = make([]*Vehicle, 0, cfg.Vehicle.Quantity)
	for i := 0; i < cfg.Vehicle.Quantity; i++ {
		w.vehicles = append(w.vehicles, NewRandomVehicle(rng, cfg.Vehicle, w.bounds))
	}
	w.food = make([]*Stimulus, 0, cfg.Food.Quantity)
	for i := 0; i < cfg.Food.Quantity; i++ {
		w.food = append(w.food, NewRandomStimulus(rng, Food, cfg.Food, w.bounds))
	}
	w.poison = make([]*Stimulus, 0, cfg.Poison.Quantity)
	for i := 0; i < cfg.Poison.Quantity; i++ {
		w.poison = append(w.poison, NewRandomStimulus(rng, Poison, cfg.Poison, w.bounds))
	}

	logger.Info("world created",
		"bounds", w.bounds,
		"vehicles", len(w.vehicles),
		"food", len(w.food),
		"poison", len(w.poison),
	)
	return w, nil
}

// Tick advances the simulation by one step. Vehicles are processed in
// stable slice order; each one steers and consumes against the collections
// as left by its predecessors, so contention for a stimulus is resolved by
// vehicle order within the tick.
func (w *World) Tick() {
	w.tick++
	for _, v := range w.vehicles {
		for _, s := range v.Behaviors(&w.food, &w.poison) {
			w.logger.Debug("stimulus consumed",
				"tick", w.tick,
				"vehicle", v.ID(),
				"stimulus", s.ID(),
				"class", s.Class().String(),
			)
		}
		v.Update()
	}
}

// TickCount returns the number of completed ticks.
func (w *World) TickCount() uint64 {
	return w.tick
}

// Bounds returns the world dimensions used for initial placement. Vehicles
// are free to drift outside them.
func (w *World) Bounds() [2]float64 {
	return w.bounds
}

// Vehicles returns the vehicle population for the renderer. The slice must
// not be mutated.
func (w *World) Vehicles() []*Vehicle {
	return w.vehicles
}

// Food returns the remaining food stimuli for the renderer.
func (w *World) Food() []*Stimulus {
	return w.food
}

// Poison returns the remaining poison stimuli for the renderer.
func (w *World) Poison() []*Stimulus {
	return w.poison
}
