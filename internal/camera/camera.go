package camera

import (
	"math"

	"SceneFusion/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Controller gerencia a visão em primeira pessoa: yaw/pitch pelo mouse e
// posição ditada pelo integrador de movimento do jogador.
type Controller struct {
	RLCamera rl.Camera3D

	Sensitivity float32
	EyeHeight   float32

	// Yaw/Pitch em radianos. Pitch limitado para a câmera não capotar.
	Yaw   float32
	Pitch float32

	Position rl.Vector3 // Posição dos pés do jogador
}

// New cria um controlador de câmera em primeira pessoa.
func New(sensitivity float32) *Controller {
	c := &Controller{
		Sensitivity: sensitivity,
		EyeHeight:   1.7,
		Yaw:         -90.0 * rl.Deg2rad,
	}
	c.RLCamera = rl.Camera3D{
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       60.0,
		Projection: rl.CameraPerspective,
	}
	c.Refresh()
	return c
}

// HandleMouse aplica o delta do mouse ao yaw/pitch.
func (c *Controller) HandleMouse() {
	delta := rl.GetMouseDelta()
	c.Yaw += delta.X * c.Sensitivity * 0.005
	c.Pitch -= delta.Y * c.Sensitivity * 0.005

	// Clamp na elevação: -89 a +89 graus
	limit := float32(89.0 * rl.Deg2rad)
	c.Pitch = util.Clamp(c.Pitch, -limit, limit)
}

// Forward retorna a direção de visão normalizada.
func (c *Controller) Forward() rl.Vector3 {
	cosP := float32(math.Cos(float64(c.Pitch)))
	return rl.Vector3{
		X: float32(math.Cos(float64(c.Yaw))) * cosP,
		Y: float32(math.Sin(float64(c.Pitch))),
		Z: float32(math.Sin(float64(c.Yaw))) * cosP,
	}
}

// MoveAxes retorna os eixos de movimento projetados no plano do chão
// (frente e direita), para o integrador de movimento.
func (c *Controller) MoveAxes() (forward, right mgl32.Vec3) {
	f := c.Forward()
	forward = mgl32.Vec3{f.X, 0, f.Z}
	if forward.Len() > 0 {
		forward = forward.Normalize()
	}
	right = forward.Cross(mgl32.Vec3{0, 1, 0})
	if right.Len() > 0 {
		right = right.Normalize()
	}
	return
}

// Refresh recalcula a câmera do raylib a partir da posição e dos ângulos.
func (c *Controller) Refresh() {
	eye := rl.Vector3{X: c.Position.X, Y: c.Position.Y + c.EyeHeight, Z: c.Position.Z}
	dir := c.Forward()
	c.RLCamera.Position = eye
	c.RLCamera.Target = rl.Vector3{X: eye.X + dir.X, Y: eye.Y + dir.Y, Z: eye.Z + dir.Z}
}
