// Package visualization renders the simulation with ebiten. The renderer
// owns nothing: it reads the world's collections each frame and advances
// the simulation from ebiten's update callback, which the host clocks at
// the configured tick rate.
package visualization

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"evolution-sim/internal/simulation"
)

var (
	backgroundColor = color.RGBA{R: 26, G: 51, B: 77, A: 255}
	foodColor       = color.RGBA{G: 255, A: 204}
	poisonColor     = color.RGBA{R: 255, A: 204}
	vehicleColor    = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	overlayColor    = color.White
)

// Renderer implements ebiten.Game on top of a simulation World.
type Renderer struct {
	world *simulation.World

	screenWidth  int
	screenHeight int
	showFPS      bool
}

// NewRenderer creates an ebiten renderer for the given world.
func NewRenderer(world *simulation.World, showFPS bool) *Renderer {
	bounds := world.Bounds()
	return &Renderer{
		world:        world,
		screenWidth:  int(bounds[0]),
		screenHeight: int(bounds[1]),
		showFPS:      showFPS,
	}
}

// Update advances the simulation by one tick. Ebiten calls it at the
// configured ticks-per-second rate, so the tick rate is decoupled from the
// rendering frame rate.
func (r *Renderer) Update() error {
	r.world.Tick()
	return nil
}

// Draw renders poison, then food, then vehicles, so vehicles end up on top.
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	for _, s := range r.world.Poison() {
		r.drawStimulus(screen, s, poisonColor)
	}
	for _, s := range r.world.Food() {
		r.drawStimulus(screen, s, foodColor)
	}
	for _, v := range r.world.Vehicles() {
		r.drawVehicle(screen, v)
	}

	r.drawOverlay(screen)
}

// Layout reports the fixed logical screen size matching the world bounds.
func (r *Renderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return r.screenWidth, r.screenHeight
}

func (r *Renderer) drawStimulus(screen *ebiten.Image, s *simulation.Stimulus, clr color.RGBA) {
	pos := s.Position()
	vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(s.Size()), clr, true)
}

// drawVehicle draws the body as a circle and the heading as a line of the
// vehicle's size, so attraction and repulsion are visible at a glance.
func (r *Renderer) drawVehicle(screen *ebiten.Image, v *simulation.Vehicle) {
	cx := float32(v.Position.X)
	cy := float32(v.Position.Y)
	vector.DrawFilledCircle(screen, cx, cy, float32(v.Size/2), vehicleColor, true)

	tipX := cx + float32(math.Cos(v.Heading)*v.Size)
	tipY := cy + float32(math.Sin(v.Heading)*v.Size)
	vector.StrokeLine(screen, cx, cy, tipX, tipY, 1, vehicleColor, true)
}

func (r *Renderer) drawOverlay(screen *ebiten.Image) {
	stats := r.world.Stats()
	line := fmt.Sprintf("vehicles: %d  food: %d  poison: %d  gene(food): %.2f±%.2f  gene(poison): %.2f±%.2f",
		stats.Vehicles, stats.Food, stats.Poison,
		stats.MeanFoodGene, stats.StdFoodGene,
		stats.MeanPoisonGene, stats.StdPoisonGene,
	)
	text.Draw(screen, line, basicfont.Face7x13, 5, r.screenHeight-8, overlayColor)

	if r.showFPS {
		fps := fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
		text.Draw(screen, fps, basicfont.Face7x13, 5, 15, overlayColor)
	}
}
