package simulation

import (
	"gonum.org/v1/gonum/stat"
)

// PopulationStats is a per-tick summary of the population, used by the
// overlay and for periodic logging.
type PopulationStats struct {
	Vehicles int
	Food     int
	Poison   int

	MeanFoodGene   float64
	StdFoodGene    float64
	MeanPoisonGene float64
	StdPoisonGene  float64
	MeanSpeed      float64
}

// Stats computes summary statistics over the current population. Standard
// deviations are zero for populations smaller than two.
func (w *World) Stats() PopulationStats {
	s := PopulationStats{
		Vehicles: len(w.vehicles),
		Food:     len(w.food),
		Poison:   len(w.poison),
	}
	if len(w.vehicles) == 0 {
		return s
	}

	foodGenes := make([]float64, len(w.vehicles))
	poisonGenes := make([]float64, len(w.vehicles))
	speeds := make([]float64, len(w.vehicles))
	for i, v := range w.vehicles {
		foodGenes[i] = v.DNA.Food
		poisonGenes[i] = v.DNA.Poison
		speeds[i] = v.Velocity.Norm()
	}

	s.MeanFoodGene = stat.Mean(foodGenes, nil)
	s.MeanPoisonGene = stat.Mean(poisonGenes, nil)
	s.MeanSpeed = stat.Mean(speeds, nil)
	if len(w.vehicles) > 1 {
		s.StdFoodGene = stat.StdDev(foodGenes, nil)
		s.StdPoisonGene = stat.StdDev(poisonGenes, nil)
	}
	return s
}
