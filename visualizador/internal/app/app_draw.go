package app

import (
	"fmt"

	"SceneFusion/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// draw renderiza a cena e o HUD.
func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(25, 28, 36, 255))

	rl.BeginMode3D(a.Cam.RLCamera)

	if a.Config.ShowGrid {
		rl.DrawGrid(40, 1.0)
	}

	a.drawWorld()

	// Tela com a foto capturada
	if tela := a.root.FindPath("Cenario/Tela"); tela != nil {
		a.photo.DrawScreen(tela.Local.Position, 4, 3)
	}

	rl.EndMode3D()

	a.drawHUD()
	rl.EndDrawing()
}

// drawWorld desenha os lotes unificados e os nós de geometria avulsos
// ainda presentes na cena. Também serve de passe de cena para a captura
// da câmera fotográfica.
func (a *App) drawWorld() {
	a.batches.DrawAll()

	a.root.Walk(func(n *scene.Node) bool {
		if n.Kind == scene.KindGeometry && n.Mesh != nil {
			if mesh, ok := a.looseMeshes[n.Mesh.ID]; ok {
				rl.DrawMesh(mesh, a.defaultMat, n.WorldMatrix())
			}
		}
		return true
	})
}

// drawHUD desenha a interface sobreposta.
func (a *App) drawHUD() {
	if !a.Config.ShowDebugInfo {
		return
	}

	rl.DrawRectangle(10, 10, 330, 130, rl.NewColor(0, 0, 0, 180))
	rl.DrawRectangleLines(10, 10, 330, 130, rl.NewColor(50, 50, 50, 255))

	fps := rl.GetFPS()
	fpsColor := rl.Green
	if fps < 30 {
		fpsColor = rl.Red
	} else if fps < 50 {
		fpsColor = rl.Yellow
	}
	rl.DrawText(fmt.Sprintf("FPS: %d", fps), 20, 20, 20, fpsColor)
	rl.DrawText(fmt.Sprintf("Lotes: %d", a.batches.Count()), 20, 45, 20, rl.White)

	status := "merge pendente"
	if a.record.Completed {
		status = fmt.Sprintf("merge ok: %d instancias, %d formas", a.record.Instances, a.record.Shapes)
	}
	rl.DrawText(status, 20, 70, 20, rl.White)

	if len(a.synthRuns) > 0 {
		rl.DrawText(fmt.Sprintf("sintese: %d corpos (%d lotes na fila)...",
			a.synthRuns[0].Generated(), len(a.synthRuns)), 20, 95, 20, rl.Yellow)
	}
	rl.DrawText(fmt.Sprintf("luz: %.2f", a.lightIntensity), 20, 115, 20, rl.White)
}
