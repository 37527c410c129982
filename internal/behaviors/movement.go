// Package behaviors reúne os comportamentos de cena finos: integradores por
// frame e ligações de sinal simples, sem invariantes cruzadas com o núcleo
// de merge.
package behaviors

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// MoveInput é a entrada de movimento de um frame, já coletada do teclado
// pelo chamador (mantém o integrador puro e testável).
type MoveInput struct {
	Forward float32 // -1..1
	Strafe  float32 // -1..1
	Jump    bool
}

// Mover é o integrador de movimento e pulo do jogador sobre um plano de
// chão. Nada além de Euler semi-implícito por frame.
type Mover struct {
	Speed     float32
	JumpSpeed float32
	Gravity   float32
	GroundY   float32

	VelocityY float32
	Grounded  bool
}

// Step integra um frame de movimento. forward e right são os eixos da
// câmera projetados no chão; retorna a nova posição.
func (m *Mover) Step(pos rl.Vector3, in MoveInput, forward, right mgl32.Vec3, dt float32) rl.Vector3 {
	move := forward.Mul(in.Forward).Add(right.Mul(in.Strafe))
	if move.Len() > 0 {
		move = move.Normalize().Mul(m.Speed * dt)
	}
	pos.X += move.X()
	pos.Z += move.Z()

	if in.Jump && m.Grounded {
		m.VelocityY = m.JumpSpeed
		m.Grounded = false
	}

	m.VelocityY -= m.Gravity * dt
	pos.Y += m.VelocityY * dt

	if pos.Y <= m.GroundY {
		pos.Y = m.GroundY
		m.VelocityY = 0
		m.Grounded = true
	}

	return pos
}
