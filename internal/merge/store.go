package merge

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"SceneFusion/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ProxyModel representa o esquema do banco para um proxy persistido.
// A chave é a identidade da malha de origem (ou um índice ordinal quando o
// recurso não tem identidade), para que um processo posterior reconstrua um
// proxy idêntico sem repetir o passe de agrupamento.
type ProxyModel struct {
	ID        string `gorm:"primaryKey"`
	MeshID    string `gorm:"index"`
	Data      []byte // Transformações e material serializados em GOB
	UpdatedAt time.Time
}

// RecordModel persiste o marcador de conclusão de um merge por grupo alvo.
type RecordModel struct {
	Key       string `gorm:"primaryKey"` // Caminho do grupo alvo
	Completed bool
	Instances int
	Shapes    int
	UpdatedAt time.Time
}

// proxyBlob é o payload GOB de um ProxyModel.
type proxyBlob struct {
	Transforms   []rl.Matrix
	MaterialName string
	TexturePath  string
	Tint         [4]uint8
	Unlit        bool
	HasMaterial  bool
}

// Store persiste proxies montados e marcadores de conclusão em SQLite.
type Store struct {
	db *gorm.DB
}

// OpenStore abre (ou cria) o banco na pasta de saída e roda migrações.
func OpenStore(outputFolder string) (*Store, error) {
	if err := os.MkdirAll(outputFolder, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(outputFolder, "proxies.sf")

	// Logger silencioso em produção
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no SQLite: %w", err)
	}

	if err := db.AutoMigrate(&ProxyModel{}, &RecordModel{}); err != nil {
		return nil, fmt.Errorf("falha na migração do banco: %w", err)
	}

	log.Printf("[Store] Banco de proxies aberto: %s", dbPath)
	return &Store{db: db}, nil
}

// Close fecha a conexão com o banco.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// proxyKey resolve a chave de endereçamento de um proxy.
func proxyKey(p *BatchedProxy, ordinal int) string {
	if p.Key != "" {
		return string(p.Key)
	}
	return fmt.Sprintf("proxy_%03d", ordinal)
}

// SaveProxy grava um proxy no banco (upsert). A falha aqui nunca invalida
// o proxy em memória; o chamador trata o retorno como aviso.
func (s *Store) SaveProxy(p *BatchedProxy, ordinal int) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("banco de dados não inicializado")
	}

	blob := proxyBlob{Transforms: p.Transforms}
	if p.Material != nil {
		blob.HasMaterial = true
		blob.MaterialName = p.Material.Name
		blob.TexturePath = p.Material.TexturePath
		blob.Tint = [4]uint8{p.Material.Tint.R, p.Material.Tint.G, p.Material.Tint.B, p.Material.Tint.A}
		blob.Unlit = p.Material.Unlit
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(blob); err != nil {
		return err
	}

	model := ProxyModel{
		ID:     proxyKey(p, ordinal),
		MeshID: string(p.Key),
		Data:   buf.Bytes(),
	}
	return s.db.Save(&model).Error
}

// LoadProxy reconstrói um proxy persistido. O recurso de malha é resolvido
// pelo chamador (o banco guarda só a identidade, não a geometria).
func (s *Store) LoadProxy(id string, mesh *scene.MeshResource) (*BatchedProxy, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("banco de dados não inicializado")
	}

	var model ProxyModel
	if err := s.db.First(&model, "id = ?", id).Error; err != nil {
		return nil, err
	}

	var blob proxyBlob
	if err := gob.NewDecoder(bytes.NewReader(model.Data)).Decode(&blob); err != nil {
		return nil, err
	}

	proxy := &BatchedProxy{
		Key:        MeshKey(model.MeshID),
		Mesh:       mesh,
		Transforms: blob.Transforms,
	}
	if blob.HasMaterial {
		proxy.Material = &scene.MaterialResource{
			Name:        blob.MaterialName,
			TexturePath: blob.TexturePath,
			Tint:        rl.NewColor(blob.Tint[0], blob.Tint[1], blob.Tint[2], blob.Tint[3]),
			Unlit:       blob.Unlit,
		}
	}

	node := scene.NewNode(proxyNodeName(proxy.Key, 0), scene.KindProxy)
	node.Mesh = mesh
	node.Material = proxy.Material
	node.InstanceTransforms = proxy.Transforms
	proxy.Node = node

	return proxy, nil
}

// SaveRecord persiste o marcador de conclusão do grupo alvo (upsert).
func (s *Store) SaveRecord(key string, r *Record) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("banco de dados não inicializado")
	}
	model := RecordModel{
		Key:       key,
		Completed: r.Completed,
		Instances: r.Instances,
		Shapes:    r.Shapes,
	}
	return s.db.Save(&model).Error
}

// LoadRecord carrega o marcador de um grupo alvo. Ausência de registro não
// é erro: retorna um marcador zerado.
func (s *Store) LoadRecord(key string) (*Record, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("banco de dados não inicializado")
	}
	var model RecordModel
	if err := s.db.First(&model, "key = ?", key).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return &Record{}, nil
		}
		return nil, err
	}
	return &Record{
		Completed: model.Completed,
		Instances: model.Instances,
		Shapes:    model.Shapes,
	}, nil
}
