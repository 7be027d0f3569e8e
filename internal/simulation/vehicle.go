package simulation

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"

	"evolution-sim/internal/common"
	"evolution-sim/internal/config"
)

// DNA is the gene vector of a vehicle: one scalar weight per stimulus
// class. A positive weight attracts the vehicle to the class, a negative
// one repels it.
type DNA struct {
	Food   float64
	Poison float64
}

// Vehicle is a mobile agent steered by its genes. Its kinematic state
// advances one Euler step per tick under bounded acceleration and
// velocity; the steering limits are derived from the vehicle's size at
// construction and never change.
type Vehicle struct {
	id string

	Size     float64
	Position common.Vec
	Velocity common.Vec
	// Acceleration accumulates steering forces within a tick and is
	// zeroed at the end of every Update.
	Acceleration common.Vec
	// Heading is the facing angle in radians. It tracks the velocity
	// while the vehicle moves and keeps its last value when it stops.
	Heading float64

	MaxSpeed         float64
	MaxSteeringForce float64
	DNA              DNA

	FoodPerception   float64
	PoisonPerception float64
}

// NewVehicle creates a vehicle with explicit state. Steering limits are
// derived from size by mapping it from sizeRange onto the respective
// limit ranges.
func NewVehicle(size float64, pos common.Vec, heading float64, dna DNA, cfg config.VehicleConfig) *Vehicle {
	return &Vehicle{
		id:               fmt.Sprintf("vehicle-%s", uuid.NewString()[:8]),
		Size:             size,
		Position:         pos,
		Heading:          heading,
		MaxSpeed:         common.MapRange(size, cfg.SizeRange, cfg.MaxSpeedRange),
		MaxSteeringForce: common.MapRange(size, cfg.SizeRange, cfg.MaxSteeringForceRange),
		DNA:              dna,
		FoodPerception:   cfg.Perception.Food,
		PoisonPerception: cfg.Perception.Poison,
	}
}

// NewRandomVehicle creates a vehicle with randomized size, position, facing
// angle and genes. Gene weights are sampled uniformly from [-5, 5).
func NewRandomVehicle(rng *rand.Rand, cfg config.VehicleConfig, bounds [2]float64) *Vehicle {
	return NewVehicle(
		common.RandomInRange(rng, cfg.SizeRange),
		common.NewRandomVec(rng, bounds[0], bounds[1]),
		rng.Float64()*2*math.Pi,
		DNA{
			Food:   common.RandomInRange(rng, geneRange),
			Poison: common.RandomInRange(rng, geneRange),
		},
		cfg,
	)
}

var geneRange = [2]float64{-5, 5}

// ID returns the unique identifier of the vehicle.
func (v *Vehicle) ID() string {
	return v.id
}

// Behaviors applies one steering force per stimulus class, scaled by the
// corresponding gene, and consumes any stimulus the vehicle is in contact
// with. Food is processed before poison; both collections may shrink by at
// most one element each. The returned slice holds the stimuli consumed
// this call, in processing order.
func (v *Vehicle) Behaviors(food, poison *[]*Stimulus) []*Stimulus {
	var eaten []*Stimulus
	if s := v.applyClass(food, v.DNA.Food, v.FoodPerception); s != nil {
		eaten = append(eaten, s)
	}
	if s := v.applyClass(poison, v.DNA.Poison, v.PoisonPerception); s != nil {
		eaten = append(eaten, s)
	}
	return eaten
}

// applyClass finds the nearest stimulus in list. Within contact distance
// the stimulus is swap-removed and returned, contributing no steering.
// Within the perception radius a seek force toward it, scaled by weight,
// is added to the acceleration. The scan completes before any removal so
// the collection is never mutated mid-iteration.
func (v *Vehicle) applyClass(list *[]*Stimulus, weight, perception float64) *Stimulus {
	items := *list
	if len(items) == 0 {
		return nil
	}

	nearest := 0
	nearestDist := v.Position.Distance(items[0].Position())
	for i := 1; i < len(items); i++ {
		if d := v.Position.Distance(items[i].Position()); d < nearestDist {
			nearest = i
			nearestDist = d
		}
	}

	target := items[nearest]
	if nearestDist <= v.Size/2+target.Size()/2 {
		// Contact: consume. Order within the collection is irrelevant,
		// so swap-remove is fine.
		items[nearest] = items[len(items)-1]
		items[len(items)-1] = nil
		*list = items[:len(items)-1]
		return target
	}

	if nearestDist <= perception {
		v.Acceleration = v.Acceleration.Add(v.seek(target.Position()).Scale(weight))
	}
	return nil
}

// seek computes the clamped steering force toward a point: the difference
// between the desired velocity (full speed toward the target) and the
// current velocity, limited to the maximum steering force.
func (v *Vehicle) seek(target common.Vec) common.Vec {
	desired := target.Sub(v.Position).Normalize().Scale(v.MaxSpeed)
	return desired.Sub(v.Velocity).Limit(v.MaxSteeringForce)
}

// Update advances the kinematic state by one tick: Euler integration at
// unit dt with the velocity clamped to the maximum speed.
func (v *Vehicle) Update() {
	v.Velocity = v.Velocity.Add(v.Acceleration).Limit(v.MaxSpeed)
	v.Position = v.Position.Add(v.Velocity)
	if v.Velocity.NormSq() > 0 {
		v.Heading = v.Velocity.Heading()
	}
	v.Acceleration = common.Vec{}
}

// String representation for logging.
func (v *Vehicle) String() string {
	return fmt.Sprintf("Vehicle[%s] Pos: %s Vel: %s DNA: (%.2f, %.2f)",
		v.id, v.Position, v.Velocity, v.DNA.Food, v.DNA.Poison)
}
