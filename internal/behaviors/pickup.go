package behaviors

import (
	"math"

	"SceneFusion/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Carrier segura um nó da cena à frente da câmera, suavizando posição e
// rotação a cada frame enquanto o objeto está carregado.
type Carrier struct {
	HoldDistance float32
	Smooth       float32 // 0..1, fração por frame normalizada a 60 FPS

	held     *scene.Node
	heldQuat mgl32.Quat
}

// NewCarrier cria um carregador com os parâmetros padrão.
func NewCarrier() *Carrier {
	return &Carrier{HoldDistance: 2.0, Smooth: 0.25}
}

// Held retorna o nó atualmente carregado (nil se nenhum).
func (c *Carrier) Held() *scene.Node { return c.held }

// Grab começa a carregar um nó.
func (c *Carrier) Grab(node *scene.Node) {
	c.held = node
	r := node.Local.Rotation
	c.heldQuat = mgl32.AnglesToQuat(r.X*rl.Deg2rad, r.Y*rl.Deg2rad, r.Z*rl.Deg2rad, mgl32.XYZ)
}

// Drop solta o nó carregado.
func (c *Carrier) Drop() {
	c.held = nil
}

// Update puxa o objeto carregado para o ponto de segurar, com lerp na
// posição e slerp na rotação (alinhando ao yaw da câmera).
func (c *Carrier) Update(eye, dir rl.Vector3, yawDeg float32, dt float32) {
	if c.held == nil {
		return
	}

	factor := c.Smooth * 60.0 * dt
	if factor > 1.0 {
		factor = 1.0
	}

	target := mgl32.Vec3{
		eye.X + dir.X*c.HoldDistance,
		eye.Y + dir.Y*c.HoldDistance,
		eye.Z + dir.Z*c.HoldDistance,
	}
	cur := mgl32.Vec3{c.held.Local.Position.X, c.held.Local.Position.Y, c.held.Local.Position.Z}
	lerped := cur.Add(target.Sub(cur).Mul(factor))
	c.held.Local.Position = rl.Vector3{X: lerped.X(), Y: lerped.Y(), Z: lerped.Z()}

	want := mgl32.AnglesToQuat(0, yawDeg*rl.Deg2rad, 0, mgl32.XYZ)
	c.heldQuat = mgl32.QuatSlerp(c.heldQuat, want, factor)
	// De volta para Euler só no eixo Y; objetos carregados ficam em pé
	c.held.Local.Rotation = rl.Vector3{Y: yawFromQuat(c.heldQuat) * rl.Rad2deg}
}

// yawFromQuat extrai a rotação Y de um quaternion de yaw puro.
func yawFromQuat(q mgl32.Quat) float32 {
	dir := q.Rotate(mgl32.Vec3{0, 0, 1})
	return float32(math.Atan2(float64(dir.X()), float64(dir.Z())))
}
