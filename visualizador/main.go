package main

import (
	"flag"
	"log"
	"runtime"

	"SceneFusion/shared/config"
	"SceneFusion/visualizador/internal/app"
)

func main() {
	// Raylib/OpenGL exige rodar na thread principal do SO
	runtime.LockOSThread()

	// Flags de linha de comando
	fullscreen := flag.Bool("fullscreen", false, "Iniciar em tela cheia")
	debug := flag.Bool("debug", false, "Mostrar informações de debug")
	retain := flag.Bool("retain", false, "Manter os objetos originais após o merge")
	noMerge := flag.Bool("no-merge", false, "Não executar o merge ao carregar")
	persist := flag.Bool("persist", false, "Persistir os proxies montados")
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Println("--- INICIANDO SCENEFUSION ---")

	// Carregar configurações
	cfg := config.Load()

	// Flags sobrescrevem o config salvo
	if *fullscreen {
		cfg.Fullscreen = true
	}
	if *debug {
		cfg.ShowDebugInfo = true
	}
	if *retain {
		cfg.RetainSources = true
	}
	if *noMerge {
		cfg.AutoMerge = false
	}
	if *persist {
		cfg.Persist = true
	}

	application := app.New(cfg)
	application.Run()
}
