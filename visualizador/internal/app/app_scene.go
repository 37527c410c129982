package app

import (
	"fmt"
	"log"
	"math"

	"SceneFusion/internal/behaviors"
	"SceneFusion/internal/meshing"
	"SceneFusion/internal/physics"
	"SceneFusion/internal/render"
	"SceneFusion/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// buildScene monta a cena de demonstração: um chão, um grupo de props
// individuais (entrada do merge), uma luz com cintilação e uma tela de
// exibição para a câmera fotográfica.
func (a *App) buildScene() {
	a.root = scene.NewNode("Raiz", scene.KindGroup)

	cenario := scene.NewNode("Cenario", scene.KindGroup)
	a.root.AddChild(cenario)

	// Chão com colisão autoral
	chao := scene.NewNode("Chao", scene.KindStaticBody)
	chao.Layer = a.Config.CollisionLayer
	chao.Mask = a.Config.CollisionMask
	chaoForma := scene.NewNode("forma", scene.KindShape)
	chaoForma.Shape = &physics.BoxShape{HalfExtents: mgl32.Vec3{40, 0.05, 40}}
	chao.AddChild(chaoForma)
	chaoVisual := scene.NewNode("visual", scene.KindGeometry)
	chaoVisual.Mesh = &scene.MeshResource{ID: "malhas/chao", Geometry: meshing.PlaneGeometry(80, 80)}
	chao.AddChild(chaoVisual)
	cenario.AddChild(chao)

	// Grupo alvo do merge
	props := scene.NewNode("Props", scene.KindGroup)
	cenario.AddChild(props)

	caixa := &scene.MeshResource{ID: "malhas/caixa", Geometry: meshing.BoxGeometry(1, 1, 1)}
	barril := &scene.MeshResource{ID: "malhas/barril", Geometry: meshing.BoxGeometry(0.8, 1.2, 0.8)}
	madeira := &scene.MaterialResource{Name: "madeira", TexturePath: "assets/texturas/madeira.png", Tint: rl.White}

	// Um anel de caixas e barris individuais; o merge os colapsa em dois
	// lotes (um por malha)
	for i := 0; i < 24; i++ {
		angle := float32(i) * 15.0
		radius := float32(6 + i%3)
		obj := scene.NewNode(fmt.Sprintf("prop_%02d", i), scene.KindGeometry)
		if i%2 == 0 {
			obj.Mesh = caixa
			obj.Material = madeira
		} else {
			obj.Mesh = barril
		}
		obj.Local = scene.Transform{
			Position: rl.Vector3{
				X: radius * cosDeg(angle),
				Y: 0.6,
				Z: radius * sinDeg(angle),
			},
			Rotation: rl.Vector3{Y: angle},
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		}
		props.AddChild(obj)
	}

	// Luz com cintilação
	luz := scene.NewNode("Tocha", scene.KindLight)
	luz.Local = scene.At(0, 3, 0)
	cenario.AddChild(luz)

	// Tela que exibe a captura da câmera fotográfica
	tela := scene.NewNode("Tela", scene.KindScreen)
	tela.Local = scene.At(0, 2, -12)
	cenario.AddChild(tela)

	// Spawner com um template construído em código
	a.spawner = behaviors.NewSpawner()
	a.spawner.RegisterMesh(caixa)
	a.spawner.Register(&behaviors.Template{
		Name: "caixa_avulsa",
		Root: behaviors.TemplateNode{
			Name: "caixa_avulsa",
			Kind: "geometry",
			Mesh: "malhas/caixa",
			Scale: [3]float32{1, 1, 1},
		},
	})
	a.spawner.OnSpawn = func(template string, node *scene.Node, err error) {
		if err == nil {
			log.Printf("[App] Instanciado %q em %v", template, node.Local.Position)
		}
	}

	log.Printf("[App] Cena montada: %d props no grupo alvo", props.ChildCount())
}

// uploadLooseMeshes sobe para a GPU as malhas dos nós de geometria ainda
// presentes na cena (antes do merge, ou com RetainSources ativo).
func (a *App) uploadLooseMeshes() {
	if !rl.IsWindowReady() {
		return
	}
	a.defaultMat = rl.LoadMaterialDefault()
	a.root.Walk(func(n *scene.Node) bool {
		if n.Kind == scene.KindGeometry && n.Mesh != nil {
			if _, ok := a.looseMeshes[n.Mesh.ID]; !ok {
				a.looseMeshes[n.Mesh.ID] = render.UploadGeometry(n.Mesh.Geometry)
			}
		}
		return true
	})
}

func cosDeg(deg float32) float32 {
	return float32(math.Cos(float64(deg) * float64(rl.Deg2rad)))
}

func sinDeg(deg float32) float32 {
	return float32(math.Sin(float64(deg) * float64(rl.Deg2rad)))
}
