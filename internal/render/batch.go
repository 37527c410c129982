package render

import (
	"log"

	"SceneFusion/internal/merge"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ProxyBatch desenha um lote unificado: uma malha na GPU, um material e as
// matrizes de todas as instâncias em 1 draw call.
type ProxyBatch struct {
	Key        string
	Mesh       rl.Mesh
	Material   rl.Material
	Transforms []rl.Matrix
}

// Draw renderiza todas as instâncias do lote.
func (b *ProxyBatch) Draw() {
	count := len(b.Transforms)
	if count == 0 {
		return
	}
	rl.DrawMeshInstanced(b.Mesh, b.Material, b.Transforms, count)
}

// BatchSet gerencia os lotes de proxies e os recursos de GPU associados.
type BatchSet struct {
	batches  []*ProxyBatch
	meshes   map[string]rl.Mesh      // Cache de malhas na GPU por identidade
	textures map[string]rl.Texture2D // Cache de texturas por caminho
}

// NewBatchSet cria um conjunto vazio de lotes.
func NewBatchSet() *BatchSet {
	return &BatchSet{
		meshes:   make(map[string]rl.Mesh),
		textures: make(map[string]rl.Texture2D),
	}
}

// Upload converte os proxies do merge em lotes de GPU. Requer janela ativa.
func (bs *BatchSet) Upload(proxies []*merge.BatchedProxy) {
	if !rl.IsWindowReady() {
		return
	}

	for _, proxy := range proxies {
		mesh, ok := bs.meshes[string(proxy.Key)]
		if !ok {
			mesh = geometryToMesh(proxy.Mesh.Geometry)
			rl.UploadMesh(&mesh, false)
			bs.meshes[string(proxy.Key)] = mesh
		}

		material := bs.resolveMaterial(proxy)

		bs.batches = append(bs.batches, &ProxyBatch{
			Key:        string(proxy.Key),
			Mesh:       mesh,
			Material:   material,
			Transforms: proxy.Transforms,
		})
		log.Printf("[Render] Lote %s: %d instâncias enviadas para a GPU", proxy.Key, len(proxy.Transforms))
	}
}

// resolveMaterial materializa o MaterialResource declarativo do proxy.
// Proxy sem material herda o material padrão do raylib.
func (bs *BatchSet) resolveMaterial(proxy *merge.BatchedProxy) rl.Material {
	material := rl.LoadMaterialDefault()
	res := proxy.Material
	if res == nil {
		return material
	}

	if res.TexturePath != "" {
		tex, ok := bs.textures[res.TexturePath]
		if !ok {
			tex = rl.LoadTexture(res.TexturePath)
			bs.textures[res.TexturePath] = tex
		}
		if tex.ID != 0 {
			rl.SetMaterialTexture(&material, rl.MapDiffuse, tex)
		} else {
			log.Printf("[Render] AVISO: textura %s não carregou; lote %s fica com o material padrão",
				res.TexturePath, proxy.Key)
		}
	}

	return material
}

// DrawAll desenha todos os lotes.
func (bs *BatchSet) DrawAll() {
	for _, b := range bs.batches {
		b.Draw()
	}
}

// Count retorna o número de lotes ativos.
func (bs *BatchSet) Count() int { return len(bs.batches) }

// Unload libera os recursos de GPU e esvazia o conjunto.
func (bs *BatchSet) Unload() {
	for _, mesh := range bs.meshes {
		rl.UnloadMesh(&mesh)
	}
	for _, tex := range bs.textures {
		rl.UnloadTexture(tex)
	}
	bs.batches = nil
	bs.meshes = make(map[string]rl.Mesh)
	bs.textures = make(map[string]rl.Texture2D)
}
