package merge

import (
	"testing"

	"SceneFusion/internal/scene"
)

func TestAssembleProxiesScenarioTwoGroups(t *testing.T) {
	g1 := testMesh("g1")
	g2 := testMesh("g2")
	m1 := &scene.MaterialResource{Name: "m1"}

	// 4 objetos: 2 em g1 (o primeiro com material m1), 2 em g2 sem material
	objects := []*scene.Node{
		geomObject("a", g1, m1, 0),
		geomObject("b", g2, nil, 1),
		geomObject("c", g1, nil, 2),
		geomObject("d", g2, nil, 3),
	}

	set, err := BuildGroups(objects)
	if err != nil {
		t.Fatalf("BuildGroups: %v", err)
	}

	proxies := AssembleProxies(set, AssemblerOptions{})
	if len(proxies) != 2 {
		t.Fatalf("proxies = %d, want 2", len(proxies))
	}

	p1, p2 := proxies[0], proxies[1]
	if p1.Key != "g1" || p2.Key != "g2" {
		t.Fatalf("chaves = {%s, %s}, want {g1, g2}", p1.Key, p2.Key)
	}
	if len(p1.Transforms) != 2 || len(p2.Transforms) != 2 {
		t.Errorf("instâncias = {%d, %d}, want {2, 2}", len(p1.Transforms), len(p2.Transforms))
	}
	if p1.Material != m1 {
		t.Errorf("proxy g1 deveria reter o material m1")
	}
	if p2.Material != nil {
		t.Errorf("proxy g2 deveria herdar o material padrão (nil)")
	}
}

func TestAssembleProxiesInstanceOrderMatchesGroup(t *testing.T) {
	g1 := testMesh("g1")
	objects := []*scene.Node{
		geomObject("a", g1, nil, 1),
		geomObject("b", g1, nil, 2),
		geomObject("c", g1, nil, 3),
	}

	set, _ := BuildGroups(objects)
	proxies := AssembleProxies(set, AssemblerOptions{})

	group := set.Groups["g1"]
	for i := range group.Transforms {
		if proxies[0].Transforms[i] != group.Transforms[i] {
			t.Errorf("transform %d do proxy diverge da ordem do grupo", i)
		}
	}

	// A lista do proxy é cópia própria: mutar o grupo depois não afeta
	before := proxies[0].Transforms[0]
	group.Transforms[0] = group.Transforms[2]
	if proxies[0].Transforms[0] != before {
		t.Errorf("proxy compartilha o slice de transformações do grupo")
	}
}

func TestAssembleProxiesMaterialPrecedence(t *testing.T) {
	grupoMat := &scene.MaterialResource{Name: "do_grupo"}
	globalMat := &scene.MaterialResource{Name: "global"}

	tests := []struct {
		name     string
		opts     AssemblerOptions
		groupMat *scene.MaterialResource
		want     string
	}{
		{"override de material vence tudo", AssemblerOptions{MaterialOverride: globalMat, TextureOverride: "tex.png"}, grupoMat, "global"},
		{"override de textura vence o do grupo", AssemblerOptions{TextureOverride: "tex.png"}, grupoMat, "override_textura"},
		{"material do grupo", AssemblerOptions{}, grupoMat, "do_grupo"},
		{"sem material", AssemblerOptions{}, nil, ""},
	}

	for _, tt := range tests {
		g1 := testMesh("g1")
		objects := []*scene.Node{geomObject("a", g1, tt.groupMat, 0)}
		set, _ := BuildGroups(objects)

		proxies := AssembleProxies(set, tt.opts)
		got := ""
		if proxies[0].Material != nil {
			got = proxies[0].Material.Name
		}
		if got != tt.want {
			t.Errorf("%s: material = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestAssembleProxiesTextureOverrideIsUnlit(t *testing.T) {
	g1 := testMesh("g1")
	set, _ := BuildGroups([]*scene.Node{geomObject("a", g1, nil, 0)})

	proxies := AssembleProxies(set, AssemblerOptions{TextureOverride: "assets/tex.png"})
	mat := proxies[0].Material
	if mat == nil || !mat.Unlit || mat.TexturePath != "assets/tex.png" {
		t.Errorf("override de textura deveria virar material opaco mínimo, got %+v", mat)
	}
}

func TestAssembleProxiesNodeMirrorsProxy(t *testing.T) {
	g1 := testMesh("g1")
	set, _ := BuildGroups([]*scene.Node{geomObject("a", g1, nil, 0)})

	proxy := AssembleProxies(set, AssemblerOptions{})[0]
	if proxy.Node == nil {
		t.Fatalf("proxy sem nó de cena")
	}
	if proxy.Node.Kind != scene.KindProxy || proxy.Node.Mesh != g1 {
		t.Errorf("nó do proxy não espelha a malha do lote")
	}
	if len(proxy.Node.InstanceTransforms) != len(proxy.Transforms) {
		t.Errorf("nó do proxy não espelha as transformações do lote")
	}
}
