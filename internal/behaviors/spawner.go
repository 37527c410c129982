package behaviors

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"SceneFusion/internal/physics"
	"SceneFusion/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// --- Estruturas JSON ---

// TemplateNode descreve um nó de um modelo de cena em JSON.
type TemplateNode struct {
	Name     string     `json:"name"`
	Kind     string     `json:"kind"` // "group", "geometry", "static_body", "shape", "light", "screen"
	Position [3]float32 `json:"position,omitempty"`
	Rotation [3]float32 `json:"rotation,omitempty"` // Graus
	Scale    [3]float32 `json:"scale,omitempty"`

	Mesh     string `json:"mesh,omitempty"`     // Identidade na biblioteca de malhas
	Material string `json:"material,omitempty"` // Nome de material registrado

	Shape       string     `json:"shape,omitempty"` // "box" ou "sphere"
	HalfExtents [3]float32 `json:"half_extents,omitempty"`
	Radius      float32    `json:"radius,omitempty"`

	Children []TemplateNode `json:"children,omitempty"`
}

// Template é um modelo de cena instanciável.
type Template struct {
	Name string       `json:"name"`
	Root TemplateNode `json:"root"`
}

// Spawner instancia modelos de cena: carrega o template, monta a árvore de
// nós, posiciona e reporta sucesso ou falha. Operação de fábrica, sem
// complexidade algorítmica.
type Spawner struct {
	templates map[string]*Template
	meshes    map[string]*scene.MeshResource
	materials map[string]*scene.MaterialResource

	// OnSpawn, quando definido, é chamado com o desfecho de cada spawn.
	OnSpawn func(template string, node *scene.Node, err error)
}

// NewSpawner cria um spawner vazio.
func NewSpawner() *Spawner {
	return &Spawner{
		templates: make(map[string]*Template),
		meshes:    make(map[string]*scene.MeshResource),
		materials: make(map[string]*scene.MaterialResource),
	}
}

// RegisterMesh disponibiliza um recurso de malha para os templates.
func (s *Spawner) RegisterMesh(mesh *scene.MeshResource) {
	s.meshes[mesh.ID] = mesh
}

// RegisterMaterial disponibiliza um material nomeado para os templates.
func (s *Spawner) RegisterMaterial(mat *scene.MaterialResource) {
	s.materials[mat.Name] = mat
}

// LoadTemplates carrega todos os arquivos .json da pasta de templates.
func (s *Spawner) LoadTemplates(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("falha ao ler pasta de templates: %w", err)
	}

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return fmt.Errorf("falha ao ler %s: %w", entry.Name(), err)
		}
		var tpl Template
		if err := json.Unmarshal(data, &tpl); err != nil {
			return fmt.Errorf("falha ao parsear %s: %w", entry.Name(), err)
		}
		if tpl.Name == "" {
			tpl.Name = strings.TrimSuffix(entry.Name(), ".json")
		}
		s.templates[tpl.Name] = &tpl
		loaded++
	}

	log.Printf("[Spawner] %d templates carregados de %s", loaded, dir)
	return nil
}

// Register adiciona um template construído em código.
func (s *Spawner) Register(tpl *Template) {
	s.templates[tpl.Name] = tpl
}

// Spawn instancia um template, posiciona a raiz em at e anexa sob parent
// através do sink. O desfecho é reportado no retorno e no OnSpawn.
func (s *Spawner) Spawn(name string, at scene.Transform, parent *scene.Node, sink scene.Sink) (*scene.Node, error) {
	node, err := s.spawn(name, at, parent, sink)
	if s.OnSpawn != nil {
		s.OnSpawn(name, node, err)
	}
	if err != nil {
		log.Printf("[Spawner] Falha ao instanciar %q: %v", name, err)
	}
	return node, err
}

func (s *Spawner) spawn(name string, at scene.Transform, parent *scene.Node, sink scene.Sink) (*scene.Node, error) {
	tpl, ok := s.templates[name]
	if !ok {
		return nil, fmt.Errorf("template %q não encontrado", name)
	}

	node, err := s.buildNode(tpl.Root)
	if err != nil {
		return nil, err
	}

	node.Local = at
	sink.AddChild(parent, node)
	return node, nil
}

// buildNode monta recursivamente a árvore de um template.
func (s *Spawner) buildNode(t TemplateNode) (*scene.Node, error) {
	kind, err := parseKind(t.Kind)
	if err != nil {
		return nil, err
	}

	node := scene.NewNode(t.Name, kind)
	node.Local = scene.Transform{
		Position: rl.Vector3{X: t.Position[0], Y: t.Position[1], Z: t.Position[2]},
		Rotation: rl.Vector3{X: t.Rotation[0], Y: t.Rotation[1], Z: t.Rotation[2]},
		Scale:    rl.Vector3{X: t.Scale[0], Y: t.Scale[1], Z: t.Scale[2]},
	}

	switch kind {
	case scene.KindGeometry:
		mesh, ok := s.meshes[t.Mesh]
		if !ok {
			return nil, fmt.Errorf("malha %q não registrada", t.Mesh)
		}
		node.Mesh = mesh
		if t.Material != "" {
			mat, ok := s.materials[t.Material]
			if !ok {
				return nil, fmt.Errorf("material %q não registrado", t.Material)
			}
			node.Material = mat
		}
	case scene.KindShape:
		shape, err := parseShape(t)
		if err != nil {
			return nil, err
		}
		node.Shape = shape
	}

	for _, child := range t.Children {
		childNode, err := s.buildNode(child)
		if err != nil {
			return nil, err
		}
		node.AddChild(childNode)
	}

	return node, nil
}

func parseKind(kind string) (scene.Kind, error) {
	switch kind {
	case "", "group":
		return scene.KindGroup, nil
	case "geometry":
		return scene.KindGeometry, nil
	case "static_body":
		return scene.KindStaticBody, nil
	case "shape":
		return scene.KindShape, nil
	case "light":
		return scene.KindLight, nil
	case "screen":
		return scene.KindScreen, nil
	}
	return 0, fmt.Errorf("kind %q desconhecido", kind)
}

func parseShape(t TemplateNode) (physics.Shape, error) {
	switch t.Shape {
	case "box":
		return &physics.BoxShape{
			HalfExtents: mgl32.Vec3{t.HalfExtents[0], t.HalfExtents[1], t.HalfExtents[2]},
		}, nil
	case "sphere":
		if t.Radius <= 0 {
			return nil, fmt.Errorf("esfera com raio inválido: %v", t.Radius)
		}
		return &physics.SphereShape{Radius: t.Radius}, nil
	}
	return nil, fmt.Errorf("forma %q desconhecida", t.Shape)
}
