package merge

import (
	"fmt"
	"log"
	"strings"

	"SceneFusion/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// AssemblerOptions configura a montagem dos proxies em lote.
type AssemblerOptions struct {
	// MaterialOverride global: quando definido, vale para todos os lotes.
	MaterialOverride *scene.MaterialResource
	// TextureOverride global: caminho de textura embrulhado num material
	// opaco mínimo sem iluminação. Precedência abaixo do MaterialOverride.
	TextureOverride string
	// Persist grava cada proxy no Store para reconstrução posterior.
	Persist bool
	Store   *Store
}

// AssembleProxies produz um BatchedProxy por grupo, na ordem determinística
// do GroupSet. A ordem das transformações de instância é exatamente a ordem
// de inserção do grupo: sistemas posteriores (síntese de colisão) indexam
// instâncias por posição, então essa ordem é contrato durável.
//
// Precedência de material, avaliada uma vez por proxy:
// override global de material > override global de textura > primeiro
// material visto no grupo > nenhum (o lote herda o material padrão).
func AssembleProxies(set *GroupSet, opts AssemblerOptions) []*BatchedProxy {
	var textureMaterial *scene.MaterialResource
	if opts.TextureOverride != "" {
		textureMaterial = &scene.MaterialResource{
			Name:        "override_textura",
			TexturePath: opts.TextureOverride,
			Tint:        rl.White,
			Unlit:       true,
		}
	}

	proxies := make([]*BatchedProxy, 0, len(set.Order))
	for i, key := range set.Order {
		group := set.Groups[key]

		// Cópia própria: a lista do proxy é imutável depois de montada
		transforms := make([]rl.Matrix, len(group.Transforms))
		copy(transforms, group.Transforms)

		material := group.Material
		if textureMaterial != nil {
			material = textureMaterial
		}
		if opts.MaterialOverride != nil {
			material = opts.MaterialOverride
		}

		proxy := &BatchedProxy{
			Key:        key,
			Mesh:       group.Mesh,
			Transforms: transforms,
			Material:   material,
		}

		node := scene.NewNode(proxyNodeName(key, i), scene.KindProxy)
		node.Mesh = group.Mesh
		node.Material = material
		node.InstanceTransforms = proxy.Transforms
		proxy.Node = node

		if opts.Persist && opts.Store != nil {
			// Falha de gravação é aviso, não erro: o proxy em memória
			// permanece válido independente do resultado em disco.
			if err := opts.Store.SaveProxy(proxy, i); err != nil {
				log.Printf("[Merge] AVISO: falha ao persistir proxy %s: %v", key, err)
			}
		}

		proxies = append(proxies, proxy)
	}

	return proxies
}

// proxyNodeName nomeia o nó do lote pela identidade da malha de origem, ou
// por índice ordinal quando o recurso não tem identidade. Barras viram
// sublinhado para o nome não colidir com caminhos de nó.
func proxyNodeName(key MeshKey, ordinal int) string {
	if key != "" {
		return "lote_" + strings.ReplaceAll(string(key), "/", "_")
	}
	return fmt.Sprintf("lote_%03d", ordinal)
}
