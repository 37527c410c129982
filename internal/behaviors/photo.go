package behaviors

import (
	"log"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PhotoCamera implementa a captura única de viewport: um disparo renderiza
// a cena para uma textura e essa textura passa a ser exibida na superfície
// de tela associada. Contrato "captura → textura → exibição"; o resto da
// cena não sabe nem precisa saber como a foto foi tirada.
type PhotoCamera struct {
	Width, Height int32

	rt    rl.RenderTexture2D
	ready bool
	taken bool

	screen rl.Model
	hasScr bool
}

// NewPhotoCamera cria a câmera fotográfica com a resolução de captura dada.
func NewPhotoCamera(width, height int32) *PhotoCamera {
	return &PhotoCamera{Width: width, Height: height}
}

// Capture tira a foto, uma única vez. draw renderiza a cena do ponto de
// vista da foto; chamadas repetidas são ignoradas até Reset.
func (p *PhotoCamera) Capture(cam rl.Camera3D, draw func()) {
	if p.taken {
		return
	}
	if !p.ready {
		p.rt = rl.LoadRenderTexture(p.Width, p.Height)
		p.ready = true
	}

	rl.BeginTextureMode(p.rt)
	rl.ClearBackground(rl.Black)
	rl.BeginMode3D(cam)
	draw()
	rl.EndMode3D()
	rl.EndTextureMode()

	p.taken = true
	log.Printf("[Foto] Captura realizada (%dx%d)", p.Width, p.Height)
}

// Taken informa se a foto já foi tirada.
func (p *PhotoCamera) Taken() bool { return p.taken }

// Reset permite uma nova captura.
func (p *PhotoCamera) Reset() { p.taken = false }

// DrawScreen desenha o painel de exibição com a textura capturada na
// posição indicada. Sem captura, nada é desenhado.
func (p *PhotoCamera) DrawScreen(pos rl.Vector3, width, height float32) {
	if !p.taken {
		return
	}
	if !p.hasScr {
		mesh := rl.GenMeshCube(width, height, 0.05)
		p.screen = rl.LoadModelFromMesh(mesh)
		p.hasScr = true
	}
	if p.screen.MaterialCount > 0 {
		materials := unsafe.Slice(p.screen.Materials, p.screen.MaterialCount)
		rl.SetMaterialTexture(&materials[0], rl.MapDiffuse, p.rt.Texture)
	}
	rl.DrawModel(p.screen, pos, 1.0, rl.White)
}

// Unload libera os recursos de GPU.
func (p *PhotoCamera) Unload() {
	if p.ready {
		rl.UnloadRenderTexture(p.rt)
		p.ready = false
	}
	if p.hasScr {
		rl.UnloadModel(p.screen)
		p.hasScr = false
	}
}
