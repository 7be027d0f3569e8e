package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evolution-sim/internal/common"
	"evolution-sim/internal/config"
)

// pointVehicle builds a size-zero vehicle with explicit limits, the setup
// most steering scenarios use.
func pointVehicle(pos common.Vec, dna DNA) *Vehicle {
	return &Vehicle{
		id:               "vehicle-test",
		Position:         pos,
		MaxSpeed:         1,
		MaxSteeringForce: 0.5,
		DNA:              dna,
		FoodPerception:   1000,
		PoisonPerception: 1000,
	}
}

func TestSeekClampsSteeringForce(t *testing.T) {
	v := pointVehicle(common.NewVec(50, 50), DNA{Food: 1})
	food := []*Stimulus{NewStimulus(Food, 2, common.NewVec(60, 50))}
	var poison []*Stimulus

	v.Behaviors(&food, &poison)
	assert.LessOrEqual(t, v.Acceleration.Norm(), v.MaxSteeringForce+1e-9)

	v.Update()
	assert.InDelta(t, 0.5, v.Velocity.X, 1e-9)
	assert.InDelta(t, 0, v.Velocity.Y, 1e-9)
}

func TestVehicleEventuallyConsumesFood(t *testing.T) {
	v := pointVehicle(common.NewVec(50, 50), DNA{Food: 1})
	food := []*Stimulus{NewStimulus(Food, 2, common.NewVec(60, 50))}
	var poison []*Stimulus

	for i := 0; i < 20 && len(food) > 0; i++ {
		v.Behaviors(&food, &poison)
		v.Update()
	}
	assert.Empty(t, food, "food should be consumed within 20 ticks")
}

func TestNegativeGeneRepels(t *testing.T) {
	v := pointVehicle(common.NewVec(50, 50), DNA{Food: -1})
	food := []*Stimulus{NewStimulus(Food, 2, common.NewVec(60, 50))}
	var poison []*Stimulus

	v.Behaviors(&food, &poison)
	v.Update()
	assert.Less(t, v.Velocity.X, 0.0)
}

func TestNearestTieBreaksOnEarlierIndex(t *testing.T) {
	v := pointVehicle(common.NewVec(50, 50), DNA{Food: 1})
	food := []*Stimulus{
		NewStimulus(Food, 2, common.NewVec(60, 50)),
		NewStimulus(Food, 2, common.NewVec(40, 50)),
	}
	var poison []*Stimulus

	v.Behaviors(&food, &poison)
	assert.Greater(t, v.Acceleration.X, 0.0, "equidistant targets resolve to the first one")
}

func TestOutOfPerceptionQuiescence(t *testing.T) {
	v := pointVehicle(common.NewVec(50, 50), DNA{Food: 1})
	v.FoodPerception = 5
	food := []*Stimulus{NewStimulus(Food, 0, common.NewVec(70, 50))}
	var poison []*Stimulus

	for i := 0; i < 1000; i++ {
		v.Behaviors(&food, &poison)
		v.Update()
	}
	assert.Equal(t, common.NewVec(50, 50), v.Position)
	assert.Len(t, food, 1)
}

func TestZeroDNAContributesNothing(t *testing.T) {
	v := pointVehicle(common.NewVec(50, 50), DNA{})
	v.Velocity = common.NewVec(0.3, 0.4)
	food := []*Stimulus{NewStimulus(Food, 2, common.NewVec(60, 50))}
	poison := []*Stimulus{NewStimulus(Poison, 2, common.NewVec(50, 60))}

	v.Behaviors(&food, &poison)
	assert.Equal(t, common.Vec{}, v.Acceleration)

	before := v.Velocity
	v.Update()
	assert.Equal(t, before, v.Velocity)
}

func TestDominantGeneSetsAccelerationSign(t *testing.T) {
	target := common.NewVec(50, 60) // straight down the +y axis

	attract := pointVehicle(common.NewVec(50, 50), DNA{Food: 1, Poison: 1})
	food := []*Stimulus{NewStimulus(Food, 2, target)}
	poison := []*Stimulus{NewStimulus(Poison, 2, target)}
	attract.Behaviors(&food, &poison)
	assert.Greater(t, attract.Acceleration.Y, 0.0)

	avoid := pointVehicle(common.NewVec(50, 50), DNA{Food: 1, Poison: -2})
	food = []*Stimulus{NewStimulus(Food, 2, target)}
	poison = []*Stimulus{NewStimulus(Poison, 2, target)}
	avoid.Behaviors(&food, &poison)
	assert.Less(t, avoid.Acceleration.Y, 0.0)
}

func TestFoodAndPoisonConsumedInOneTick(t *testing.T) {
	v := pointVehicle(common.NewVec(50, 50), DNA{Food: 1, Poison: 1})
	v.Size = 4
	food := []*Stimulus{NewStimulus(Food, 2, common.NewVec(51, 50))}
	poison := []*Stimulus{NewStimulus(Poison, 2, common.NewVec(49, 50))}

	eaten := v.Behaviors(&food, &poison)
	require.Len(t, eaten, 2)
	assert.Equal(t, Food, eaten[0].Class())
	assert.Equal(t, Poison, eaten[1].Class())
	assert.Empty(t, food)
	assert.Empty(t, poison)
	// Consumption emits no steering.
	assert.Equal(t, common.Vec{}, v.Acceleration)
}

func TestUpdateClampsSpeed(t *testing.T) {
	v := pointVehicle(common.NewVec(0, 0), DNA{})
	v.MaxSpeed = 2
	v.Acceleration = common.NewVec(100, -40)

	v.Update()
	assert.InDelta(t, 2, v.Velocity.Norm(), 1e-9)
	assert.Equal(t, common.Vec{}, v.Acceleration, "acceleration resets after update")
}

func TestHeadingTracksVelocity(t *testing.T) {
	v := pointVehicle(common.NewVec(0, 0), DNA{})
	v.Heading = 1.25
	v.Update()
	assert.Equal(t, 1.25, v.Heading, "heading unchanged while stationary")

	v.Velocity = common.NewVec(0, 0.5)
	v.Update()
	assert.InDelta(t, v.Velocity.Heading(), v.Heading, 1e-12)
}

func TestEmptyCollectionsContributeNothing(t *testing.T) {
	v := pointVehicle(common.NewVec(50, 50), DNA{Food: 3, Poison: -3})
	var food, poison []*Stimulus

	eaten := v.Behaviors(&food, &poison)
	assert.Empty(t, eaten)
	assert.Equal(t, common.Vec{}, v.Acceleration)
}

func TestDerivedLimitsFollowSizeMapping(t *testing.T) {
	cfg := config.VehicleConfig{
		SizeRange:             config.Range{10, 30},
		MaxSpeedRange:         config.Range{5, 2},
		MaxSteeringForceRange: config.Range{0.6, 0.2},
		Perception:            config.PerceptionConfig{Food: 100, Poison: 80},
	}

	small := NewVehicle(10, common.Vec{}, 0, DNA{}, cfg)
	assert.InDelta(t, 5, small.MaxSpeed, 1e-12)
	assert.InDelta(t, 0.6, small.MaxSteeringForce, 1e-12)

	big := NewVehicle(30, common.Vec{}, 0, DNA{}, cfg)
	assert.InDelta(t, 2, big.MaxSpeed, 1e-12)
	assert.InDelta(t, 0.2, big.MaxSteeringForce, 1e-12)

	mid := NewVehicle(20, common.Vec{}, 0, DNA{}, cfg)
	assert.InDelta(t, 3.5, mid.MaxSpeed, 1e-12)
	assert.Equal(t, 100.0, mid.FoodPerception)
	assert.Equal(t, 80.0, mid.PoisonPerception)
}
