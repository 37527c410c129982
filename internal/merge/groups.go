package merge

import (
	"fmt"
	"log"

	"SceneFusion/internal/scene"
)

// BuildGroups varre os objetos de origem e agrupa suas transformações de
// mundo por identidade de malha. A malha de cada objeto é resolvida no
// próprio nó e, recursivamente, nos descendentes (primeira encontrada, em
// profundidade). Objetos sem malha resolvível são pulados e contados.
//
// Para uma mesma ordem de entrada a saída é determinística: a ordem das
// chaves segue a primeira aparição e, dentro de um grupo, as transformações
// seguem a ordem de entrada.
func BuildGroups(objects []*scene.Node) (*GroupSet, error) {
	set := &GroupSet{
		Groups: make(map[MeshKey]*MeshGroup),
	}

	for _, obj := range objects {
		meshNode := scene.FindMeshNode(obj)
		if meshNode == nil {
			set.Skipped++
			continue
		}

		key := MeshKey(meshNode.Mesh.ID)
		group, ok := set.Groups[key]
		if !ok {
			group = &MeshGroup{Key: key, Mesh: meshNode.Mesh}
			set.Groups[key] = group
			set.Order = append(set.Order, key)
		}

		// A transformação capturada é a de mundo do nó visual, congelada
		// neste momento; mutação posterior do objeto não é suportada.
		group.Transforms = append(group.Transforms, meshNode.WorldMatrix())

		// Primeiro override de material vence; os demais são ignorados
		if group.Material == nil && meshNode.Material != nil {
			group.Material = meshNode.Material
		}
	}

	if set.Skipped > 0 {
		log.Printf("[Merge] %d objetos sem malha resolvível foram ignorados", set.Skipped)
	}

	if len(set.Order) == 0 {
		return nil, fmt.Errorf("nenhum objeto de origem expõe malha resolvível")
	}

	return set, nil
}
