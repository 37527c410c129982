package scene

import (
	"SceneFusion/internal/meshing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MeshResource representa uma malha compartilhada entre instâncias.
// A identidade (ID) é o que agrupa instâncias: duas referências com o mesmo
// ID apontam para o mesmo recurso de geometria, mesmo sendo ponteiros
// distintos.
type MeshResource struct {
	ID       string // Caminho/identidade estável do recurso
	Geometry meshing.GeometryData
}

// MaterialResource descreve um material de forma declarativa.
// A conversão para material de GPU acontece na camada de render.
type MaterialResource struct {
	Name        string
	TexturePath string
	Tint        rl.Color
	Unlit       bool // Material mínimo sem iluminação (usado pelo override de textura)
}
