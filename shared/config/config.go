package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config armazena as configurações do SceneFusion.
type Config struct {
	// Janela
	WindowWidth  int32  `json:"window_width"`
	WindowHeight int32  `json:"window_height"`
	WindowTitle  string `json:"window_title"`
	Fullscreen   bool   `json:"fullscreen"`
	TargetFPS    int32  `json:"target_fps"`

	// Unificação de instâncias (merge)
	GroupPath        string `json:"group_path"`        // Caminho do grupo de objetos alvo na cena
	MaterialOverride string `json:"material_override"` // Nome de material global (sobrepõe tudo)
	TextureOverride  string `json:"texture_override"`  // Caminho de textura global (vira material opaco mínimo)
	OutputFolder     string `json:"output_folder"`     // Pasta dos proxies persistidos (banco SQLite)
	Persist          bool   `json:"persist"`           // Habilita persistência dos proxies
	AutoMerge        bool   `json:"auto_merge"`        // Executa a unificação automaticamente ao carregar
	RetainSources    bool   `json:"retain_sources"`    // Mantém os objetos originais para inspeção

	// Colisão sintetizada
	CollisionLayer uint32 `json:"collision_layer"`
	CollisionMask  uint32 `json:"collision_mask"`
	ShapePolicy    string `json:"shape_policy"`   // "convex" (casco aproximado) ou "concave" (malha exata)
	YieldInterval  int    `json:"yield_interval"` // Corpos gerados por passo antes de devolver o controle

	// Câmera / Jogador
	MouseSensitivity float32 `json:"mouse_sensitivity"`
	MoveSpeed        float32 `json:"move_speed"`
	JumpSpeed        float32 `json:"jump_speed"`
	Gravity          float32 `json:"gravity"`

	// Debug
	ShowDebugInfo bool `json:"show_debug_info"`
	ShowGrid      bool `json:"show_grid"`
}

// DefaultConfig retorna a configuração padrão.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  1280,
		WindowHeight: 720,
		WindowTitle:  "SceneFusion",
		Fullscreen:   false,
		TargetFPS:    60,

		GroupPath:     "Cenario/Props",
		OutputFolder:  "saves",
		Persist:       false,
		AutoMerge:     true,
		RetainSources: false,

		CollisionLayer: 1,
		CollisionMask:  1,
		ShapePolicy:    "convex",
		YieldInterval:  64,

		MouseSensitivity: 0.3,
		MoveSpeed:        8.0,
		JumpSpeed:        5.0,
		Gravity:          14.0,

		ShowDebugInfo: true,
		ShowGrid:      false,
	}
}

// configPath retorna o caminho do arquivo de configuração.
func configPath() string {
	execDir, err := os.Executable()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(filepath.Dir(execDir), "config.json")
}

// Load carrega as configurações de um arquivo JSON.
// Se o arquivo não existir, retorna as configurações padrão.
func Load() *Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath())
	if err != nil {
		return cfg
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return DefaultConfig()
	}

	return cfg
}

// Save salva as configurações em um arquivo JSON.
func (c *Config) Save() error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(configPath(), data, 0644)
}
