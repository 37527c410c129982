package app

import (
	"SceneFusion/internal/behaviors"
	"SceneFusion/internal/scene"
	"SceneFusion/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// updateInput processa a entrada do frame: mouse-look, movimento, pegar e
// soltar objetos, foto e controles do merge.
func (a *App) updateInput(dt float32) {
	a.Cam.HandleMouse()

	in := behaviors.MoveInput{Jump: rl.IsKeyPressed(rl.KeySpace)}
	if rl.IsKeyDown(rl.KeyW) {
		in.Forward += 1
	}
	if rl.IsKeyDown(rl.KeyS) {
		in.Forward -= 1
	}
	if rl.IsKeyDown(rl.KeyD) {
		in.Strafe += 1
	}
	if rl.IsKeyDown(rl.KeyA) {
		in.Strafe -= 1
	}

	forward, right := a.Cam.MoveAxes()
	a.Cam.Position = a.mover.Step(a.Cam.Position, in, forward, right, dt)
	a.Cam.Refresh()

	// Pegar/soltar o objeto mais próximo da mira
	if rl.IsKeyPressed(rl.KeyE) {
		if a.carrier.Held() != nil {
			a.carrier.Drop()
		} else if target := a.nearestProp(); target != nil {
			a.carrier.Grab(target)
		}
	}

	// Foto única; Backspace permite tirar outra
	if rl.IsKeyPressed(rl.KeyP) {
		a.photo.Capture(a.Cam.RLCamera, a.drawWorld)
	}
	if rl.IsKeyPressed(rl.KeyBackspace) {
		a.photo.Reset()
	}

	// M dispara o merge; R zera o marcador de conclusão
	if rl.IsKeyPressed(rl.KeyM) {
		a.runMerge()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.record.Reset()
	}

	// N instancia uma caixa à frente do jogador
	if rl.IsKeyPressed(rl.KeyN) {
		dir := a.Cam.Forward()
		at := scene.At(
			a.Cam.Position.X+dir.X*3,
			1.0,
			a.Cam.Position.Z+dir.Z*3,
		)
		a.spawner.Spawn("caixa_avulsa", at, a.root, a.sink)
	}
}

// nearestProp acha o nó de geometria avulso mais próximo do jogador,
// dentro do alcance de pegar.
func (a *App) nearestProp() *scene.Node {
	const reach = 3.0
	var best *scene.Node
	bestDist := float32(reach * reach)

	a.root.Walk(func(n *scene.Node) bool {
		if n.Kind != scene.KindGeometry || n.Mesh == nil || n.Parent() == nil {
			return true
		}
		d := util.DistSq(n.Local.Position, a.Cam.Position)
		if d < bestDist {
			bestDist = d
			best = n
		}
		return true
	})
	return best
}
