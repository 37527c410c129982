package app

import (
	"log"

	"SceneFusion/internal/behaviors"
	"SceneFusion/internal/camera"
	"SceneFusion/internal/merge"
	"SceneFusion/internal/render"
	"SceneFusion/internal/scene"
	"SceneFusion/shared/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// App é o visualizador do SceneFusion: monta uma cena de demonstração,
// executa o pipeline de merge e exibe o resultado.
type App struct {
	Config *config.Config
	Cam    *camera.Controller

	root    *scene.Node
	sink    scene.Sink
	record  *merge.Record
	store   *merge.Store
	batches *render.BatchSet

	// Malhas avulsas na GPU (objetos de origem antes do merge)
	looseMeshes map[string]rl.Mesh
	defaultMat  rl.Material

	mover   *behaviors.Mover
	carrier *behaviors.Carrier
	flicker *behaviors.Flicker
	photo   *behaviors.PhotoCamera
	spawner *behaviors.Spawner

	// Gerações de colisão em andamento, uma por lote sem colisão autoral;
	// a da frente avança um passo por frame até a fila esvaziar
	synthRuns []*merge.SynthesisRun

	lightIntensity float32
	frameCount     int
}

// New cria a aplicação.
func New(cfg *config.Config) *App {
	return &App{
		Config:      cfg,
		sink:        scene.ImmediateSink{}, // Runtime: mutação imediata
		record:      &merge.Record{},
		looseMeshes: make(map[string]rl.Mesh),
	}
}

// Run inicia o loop principal da aplicação.
func (a *App) Run() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro fatal recuperado: %v", r)
			panic(r)
		}
	}()

	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(a.Config.WindowWidth, a.Config.WindowHeight, a.Config.WindowTitle)
	rl.SetTraceLogLevel(rl.LogWarning)

	if a.Config.Fullscreen {
		rl.ToggleFullscreen()
	}

	rl.SetTargetFPS(a.Config.TargetFPS)
	rl.DisableCursor() // Mouse-look em primeira pessoa

	a.Cam = camera.New(a.Config.MouseSensitivity)
	a.Cam.Position = rl.Vector3{X: 0, Y: 0, Z: 8}

	a.mover = &behaviors.Mover{
		Speed:     a.Config.MoveSpeed,
		JumpSpeed: a.Config.JumpSpeed,
		Gravity:   a.Config.Gravity,
	}
	a.carrier = behaviors.NewCarrier()
	a.flicker = behaviors.NewFlicker(1.0, 0.25, int64(rl.GetRandomValue(1, 1<<30)))
	a.photo = behaviors.NewPhotoCamera(512, 512)
	a.batches = render.NewBatchSet()

	if a.Config.Persist {
		store, err := merge.OpenStore(a.Config.OutputFolder)
		if err != nil {
			log.Printf("[App] AVISO: persistência desabilitada: %v", err)
		} else {
			a.store = store
			// O marcador de conclusão sobrevive entre execuções
			if rec, err := store.LoadRecord(a.Config.GroupPath); err == nil {
				a.record = rec
			}
		}
	}

	a.buildScene()
	a.uploadLooseMeshes()

	if a.Config.AutoMerge {
		a.runMerge()
	}

	log.Printf("[App] Janela inicializada (%dx%d)", a.Config.WindowWidth, a.Config.WindowHeight)

	for !rl.WindowShouldClose() {
		a.update()
		a.draw()
	}

	a.shutdown()
	rl.CloseWindow()
}

// runMerge executa o pipeline de merge sobre a cena corrente.
func (a *App) runMerge() {
	var materialOverride *scene.MaterialResource
	if a.Config.MaterialOverride != "" {
		materialOverride = &scene.MaterialResource{Name: a.Config.MaterialOverride, Tint: rl.White}
	}

	orch := merge.New(merge.Options{
		GroupPath:        a.Config.GroupPath,
		MaterialOverride: materialOverride,
		TextureOverride:  a.Config.TextureOverride,
		Persist:          a.Config.Persist,
		RetainSources:    a.Config.RetainSources,
		Layer:            a.Config.CollisionLayer,
		Mask:             a.Config.CollisionMask,
	}, a.sink, a.store, a.record)

	result, err := orch.Merge(a.root)
	if err != nil {
		log.Printf("[App] Merge não executado: %v", err)
		return
	}

	a.batches.Unload()
	a.batches.Upload(result.Proxies)

	// Proxies sem colisão pré-autoral recebem corpos por instância,
	// gerados em passos para não travar o loop de frames.
	if result.Collision == nil {
		a.queueSynthesis(result.Proxies)
	}
}

// queueSynthesis enfileira uma geração de colisão para cada lote. A falha
// de um lote é local: os demais entram na fila normalmente.
func (a *App) queueSynthesis(proxies []*merge.BatchedProxy) {
	synth := &merge.Synthesizer{
		Policy:        merge.ParseShapePolicy(a.Config.ShapePolicy),
		Layer:         a.Config.CollisionLayer,
		Mask:          a.Config.CollisionMask,
		YieldInterval: a.Config.YieldInterval,
	}
	for _, proxy := range proxies {
		run, err := synth.Begin(proxy, a.sink)
		if err != nil {
			log.Printf("[App] Síntese de colisão indisponível para %s: %v", proxy.Key, err)
			continue
		}
		a.synthRuns = append(a.synthRuns, run)
	}
}

// stepSynthesis avança a geração da frente da fila em um passo.
func (a *App) stepSynthesis() {
	if len(a.synthRuns) == 0 {
		return
	}
	if a.synthRuns[0].Step() {
		a.synthRuns = a.synthRuns[1:]
	}
}

// update atualiza a lógica a cada frame.
func (a *App) update() {
	a.frameCount++
	dt := rl.GetFrameTime()

	// Um passo de síntese por frame, até a fila esvaziar
	a.stepSynthesis()

	a.updateInput(dt)
	a.lightIntensity = a.flicker.Update(dt)

	eye := a.Cam.RLCamera.Position
	dir := a.Cam.Forward()
	a.carrier.Update(eye, dir, a.Cam.Yaw*rl.Rad2deg, dt)
}

// shutdown realiza a limpeza de recursos.
func (a *App) shutdown() {
	log.Println("[App] Finalizando aplicação...")

	a.batches.Unload()
	for _, mesh := range a.looseMeshes {
		rl.UnloadMesh(&mesh)
	}
	a.photo.Unload()

	if a.store != nil {
		if err := a.store.Close(); err != nil {
			log.Printf("[App] Erro ao fechar o banco: %v", err)
		}
	}
	if err := a.Config.Save(); err != nil {
		log.Printf("[App] Erro ao salvar configurações: %v", err)
	}
}
