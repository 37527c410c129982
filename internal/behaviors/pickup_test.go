package behaviors

import (
	"math"
	"testing"

	"SceneFusion/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestCarrierPullsTowardHoldPoint(t *testing.T) {
	c := NewCarrier()
	obj := scene.NewNode("caixa", scene.KindGroup)
	obj.Local = scene.At(10, 0, 10)
	c.Grab(obj)

	eye := rl.Vector3{Y: 1.7}
	dir := rl.Vector3{Z: -1}

	// Depois de alguns segundos de suavização o objeto assenta no ponto
	// de segurar: eye + dir * HoldDistance
	for i := 0; i < 300; i++ {
		c.Update(eye, dir, 0, 1.0/60.0)
	}

	pos := obj.Local.Position
	if math.Abs(float64(pos.X)) > 0.01 ||
		math.Abs(float64(pos.Y-1.7)) > 0.01 ||
		math.Abs(float64(pos.Z+2.0)) > 0.01 {
		t.Errorf("objeto não assentou no ponto de segurar: %+v", pos)
	}
}

func TestCarrierDropStopsFollowing(t *testing.T) {
	c := NewCarrier()
	obj := scene.NewNode("caixa", scene.KindGroup)
	obj.Local = scene.At(5, 0, 5)
	c.Grab(obj)
	c.Drop()

	if c.Held() != nil {
		t.Fatalf("Drop não soltou o objeto")
	}

	before := obj.Local.Position
	c.Update(rl.Vector3{}, rl.Vector3{Z: -1}, 0, 1.0/60.0)
	if obj.Local.Position != before {
		t.Errorf("objeto solto continuou seguindo a câmera")
	}
}

func TestCarrierKeepsObjectUpright(t *testing.T) {
	c := NewCarrier()
	obj := scene.NewNode("caixa", scene.KindGroup)
	obj.Local.Rotation = rl.Vector3{X: 45, Y: 10, Z: 30}
	c.Grab(obj)

	for i := 0; i < 300; i++ {
		c.Update(rl.Vector3{}, rl.Vector3{Z: -1}, 90, 1.0/60.0)
	}

	rot := obj.Local.Rotation
	if rot.X != 0 || rot.Z != 0 {
		t.Errorf("objeto carregado tombou: %+v", rot)
	}
	if math.Abs(float64(rot.Y-90)) > 1.0 {
		t.Errorf("yaw do objeto = %f, want ~90", rot.Y)
	}
}
