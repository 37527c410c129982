// Package merge implementa o pipeline de unificação de instâncias:
// agrupamento de objetos por malha compartilhada, montagem de proxies de
// render em lote, fusão de colisões pré-autorais e síntese de colisão por
// instância para proxies sem colisão própria.
package merge

import (
	"SceneFusion/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MeshKey é a identidade de agrupamento: o ID do recurso de geometria.
// Igualdade por valor — duas referências ao mesmo recurso colapsam num
// único grupo mesmo que os objetos que as embrulham sejam diferentes.
type MeshKey string

// MeshGroup reúne todas as instâncias que compartilham uma MeshKey.
// A ordem de inserção das transformações define o índice da instância e é
// estável por toda a vida do proxy derivado.
type MeshGroup struct {
	Key        MeshKey
	Mesh       *scene.MeshResource
	Transforms []rl.Matrix
	// Material é o primeiro override não-vazio visto no grupo.
	// Overrides posteriores são ignorados: um lote só tem um material.
	Material *scene.MaterialResource
}

// GroupSet é o resultado do agrupamento: grupos indexados por chave e a
// ordem determinística em que as chaves apareceram na entrada.
type GroupSet struct {
	Order  []MeshKey
	Groups map[MeshKey]*MeshGroup
	// Skipped conta objetos sem malha resolvível (diagnóstico, não erro).
	Skipped int
}

// InstanceCount soma as instâncias de todos os grupos.
func (s *GroupSet) InstanceCount() int {
	total := 0
	for _, key := range s.Order {
		total += len(s.Groups[key].Transforms)
	}
	return total
}

// BatchedProxy é a saída de render do merge: uma malha compartilhada e a
// lista imutável de transformações das instâncias.
type BatchedProxy struct {
	Key        MeshKey
	Mesh       *scene.MeshResource
	Transforms []rl.Matrix
	Material   *scene.MaterialResource // nil: o lote herda o material padrão
	// Node é o nó colocado na cena para este lote; corpos de colisão
	// sintetizados são anexados como filhos dele.
	Node *scene.Node
}
