package meshing

import rl "github.com/gen2brain/raylib-go/raylib"

// GeometryData contém os buffers de vértices para uma malha.
// É a representação pura (CPU) da geometria; o upload para GPU é
// responsabilidade da camada de render.
type GeometryData struct {
	Vertices []float32
	Normals  []float32
	Colors   []uint8
	UVs      []float32
	Indices  []uint16
}

// Clone cria uma cópia profunda dos dados para evitar corrupção de memória.
func (g GeometryData) Clone() GeometryData {
	clone := GeometryData{}
	if len(g.Vertices) > 0 {
		clone.Vertices = make([]float32, len(g.Vertices))
		copy(clone.Vertices, g.Vertices)
	}
	if len(g.Normals) > 0 {
		clone.Normals = make([]float32, len(g.Normals))
		copy(clone.Normals, g.Normals)
	}
	if len(g.Colors) > 0 {
		clone.Colors = make([]uint8, len(g.Colors))
		copy(clone.Colors, g.Colors)
	}
	if len(g.UVs) > 0 {
		clone.UVs = make([]float32, len(g.UVs))
		copy(clone.UVs, g.UVs)
	}
	if len(g.Indices) > 0 {
		clone.Indices = make([]uint16, len(g.Indices))
		copy(clone.Indices, g.Indices)
	}
	return clone
}

// VertexCount retorna o número de vértices armazenados.
func (g GeometryData) VertexCount() int {
	return len(g.Vertices) / 3
}

// TriangleCount retorna o número de triângulos (indexados ou sequenciais).
func (g GeometryData) TriangleCount() int {
	if len(g.Indices) > 0 {
		return len(g.Indices) / 3
	}
	return g.VertexCount() / 3
}

// IsEmpty informa se a geometria não possui nenhum vértice.
func (g GeometryData) IsEmpty() bool {
	return len(g.Vertices) == 0
}

// AABB calcula a caixa envolvente alinhada aos eixos da geometria.
// Retorna vetores zerados para geometria vazia.
func (g GeometryData) AABB() (min, max rl.Vector3) {
	if g.IsEmpty() {
		return
	}
	min = rl.Vector3{X: g.Vertices[0], Y: g.Vertices[1], Z: g.Vertices[2]}
	max = min
	for i := 3; i+2 < len(g.Vertices); i += 3 {
		x, y, z := g.Vertices[i], g.Vertices[i+1], g.Vertices[i+2]
		if x < min.X {
			min.X = x
		}
		if y < min.Y {
			min.Y = y
		}
		if z < min.Z {
			min.Z = z
		}
		if x > max.X {
			max.X = x
		}
		if y > max.Y {
			max.Y = y
		}
		if z > max.Z {
			max.Z = z
		}
	}
	return
}
