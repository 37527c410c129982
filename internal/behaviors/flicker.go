package behaviors

import (
	"math/rand"

	"SceneFusion/shared/util"
)

// Flicker faz a intensidade de uma luz oscilar em volta do valor base com
// um passeio aleatório amortecido. Semeável para os testes.
type Flicker struct {
	Base      float32
	Amplitude float32
	Speed     float32 // Velocidade de retorno ao valor base

	rng     *rand.Rand
	current float32
}

// NewFlicker cria um cintilador com a semente informada.
func NewFlicker(base, amplitude float32, seed int64) *Flicker {
	return &Flicker{
		Base:      base,
		Amplitude: amplitude,
		Speed:     8.0,
		rng:       rand.New(rand.NewSource(seed)),
		current:   base,
	}
}

// Update avança a simulação e retorna a intensidade do frame, sempre
// dentro de [Base-Amplitude, Base+Amplitude].
func (f *Flicker) Update(dt float32) float32 {
	// Perturbação aleatória + mola de volta ao valor base
	jitter := (f.rng.Float32()*2 - 1) * f.Amplitude * 4 * dt
	f.current += jitter
	f.current = util.Lerp(f.current, f.Base, util.Clamp(f.Speed*dt, 0, 1))
	f.current = util.Clamp(f.current, f.Base-f.Amplitude, f.Base+f.Amplitude)
	return f.current
}
