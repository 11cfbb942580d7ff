package structure

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/forgelab/repoforge/internal/domain"
	apperrors "github.com/forgelab/repoforge/internal/errors"
)

// serviceRotation is the fixed domain-name rotation for microservice
// meshes; services beyond the rotation get numeric suffixes
var serviceRotation = []string{
	"auth", "user", "product", "order", "payment", "inventory",
	"notification", "analytics", "search", "recommendation",
}

// Generator emits the directory skeleton and file manifest for one
// repository. It creates directories on disk but writes no content.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a structure generator backed by the given rng
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate builds the archetype-specific directory tree under repoPath and
// returns the manifest of source files to synthesize. The tree includes the
// archetype's fixed skeleton directories, some of which never receive
// generated files. Manifest paths are relative to repoPath and unique.
func (g *Generator) Generate(repoPath string, spec *domain.RepoSpec) ([]domain.FileEntry, error) {
	var entries []domain.FileEntry
	var skeleton []string

	switch Classify(spec) {
	case domain.ArchetypeWeb:
		entries, skeleton = g.webManifest(spec)
	case domain.ArchetypeMicroservice:
		entries, skeleton = g.microserviceManifest(spec)
	case domain.ArchetypeCLI:
		entries, skeleton = g.cliManifest(spec)
	case domain.ArchetypeLibrary:
		entries, skeleton = g.libraryManifest(spec)
	case domain.ArchetypeMobileIOS:
		entries, skeleton = g.iosManifest()
	case domain.ArchetypeMobileAndroid:
		entries, skeleton = g.androidManifest()
	case domain.ArchetypeGame:
		entries, skeleton = g.gameManifest()
	case domain.ArchetypeData:
		entries, skeleton = g.dataManifest(spec)
	default:
		entries, skeleton = g.enterpriseManifest(spec)
	}

	if err := g.createDirs(repoPath, entries, skeleton); err != nil {
		return nil, err
	}
	return entries, nil
}

// createDirs materializes the fixed skeleton plus every directory the
// manifest mentions, using fully qualified paths so no working-directory
// state is involved
func (g *Generator) createDirs(repoPath string, entries []domain.FileEntry, skeleton []string) error {
	seen := map[string]bool{}
	create := func(dir string) error {
		full := filepath.Join(repoPath, dir)
		if seen[full] {
			return nil
		}
		seen[full] = true
		if err := os.MkdirAll(full, 0o755); err != nil {
			return apperrors.NewFSError(fmt.Sprintf("create directory %s", dir), err)
		}
		return nil
	}

	for _, dir := range skeleton {
		if err := create(dir); err != nil {
			return err
		}
	}
	for _, e := range entries {
		if err := create(filepath.Dir(e.Path)); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) between(min, max int) int {
	return min + g.rng.Intn(max-min+1)
}

// webSkeleton holds the fixed web-application tree; several directories
// stay empty of generated files
var webSkeleton = []string{
	"src/components", "src/pages", "src/utils", "src/api",
	"src/models", "src/services",
	"tests/unit", "tests/integration", "tests/e2e",
	"config", "public", "static",
}

func (g *Generator) webManifest(spec *domain.RepoSpec) ([]domain.FileEntry, []string) {
	ext := spec.Extension
	entries := []domain.FileEntry{
		{Path: "src/app" + ext, Role: domain.RoleAppEntry, Lines: 500},
		{Path: "src/index" + ext, Role: domain.RoleIndex, Lines: 50},
	}

	for i := 0; i < g.between(10, 30); i++ {
		entries = append(entries, domain.FileEntry{
			Path: fmt.Sprintf("src/components/Component%d%s", i, ext), Role: domain.RoleComponent, Lines: g.between(50, 300),
		})
	}
	for i := 0; i < g.between(5, 15); i++ {
		entries = append(entries, domain.FileEntry{
			Path: fmt.Sprintf("src/pages/Page%d%s", i, ext), Role: domain.RolePage, Lines: g.between(100, 500),
		})
	}
	for i := 0; i < g.between(5, 15); i++ {
		entries = append(entries, domain.FileEntry{
			Path: fmt.Sprintf("src/utils/util%d%s", i, ext), Role: domain.RoleUtil, Lines: g.between(50, 200),
		})
	}
	for i := 0; i < g.between(5, 15); i++ {
		entries = append(entries, domain.FileEntry{
			Path: fmt.Sprintf("src/api/api%d%s", i, ext), Role: domain.RoleAPI, Lines: g.between(100, 300),
		})
	}
	for i := 0; i < g.between(20, 60); i++ {
		entries = append(entries, domain.FileEntry{
			Path: fmt.Sprintf("tests/unit/test%d%s", i, ext), Role: domain.RoleTest, Lines: g.between(50, 200),
		})
	}
	return entries, webSkeleton
}

func (g *Generator) microserviceManifest(spec *domain.RepoSpec) ([]domain.FileEntry, []string) {
	entries := g.serviceFiles("api-gateway", spec.Extension)
	skeleton := []string{
		"api-gateway/config",
		"shared/models", "shared/utils",
		"infrastructure",
	}

	count := ServiceCount(spec.Category)
	for i := 0; i < count; i++ {
		name := serviceRotation[i%len(serviceRotation)]
		if i >= len(serviceRotation) {
			name = fmt.Sprintf("%s-%d", name, i/len(serviceRotation))
		}
		base := filepath.Join("services", name)
		entries = append(entries, g.serviceFiles(base, spec.Extension)...)
		skeleton = append(skeleton, filepath.Join(base, "config"))
	}
	return entries, skeleton
}

func (g *Generator) serviceFiles(base, ext string) []domain.FileEntry {
	entries := []domain.FileEntry{
		{Path: filepath.Join(base, "src", "main"+ext), Role: domain.RoleServiceMain, Lines: 200},
		{Path: filepath.Join(base, "src", "handlers"+ext), Role: domain.RoleHandler, Lines: 300},
		{Path: filepath.Join(base, "src", "models"+ext), Role: domain.RoleModel, Lines: 150},
		{Path: filepath.Join(base, "src", "repository"+ext), Role: domain.RoleRepository, Lines: 200},
	}
	for i := 0; i < g.between(5, 15); i++ {
		entries = append(entries, domain.FileEntry{
			Path: filepath.Join(base, "tests", fmt.Sprintf("test%d%s", i, ext)), Role: domain.RoleTest, Lines: g.between(50, 150),
		})
	}
	return entries
}

func (g *Generator) cliManifest(spec *domain.RepoSpec) ([]domain.FileEntry, []string) {
	ext := spec.Extension
	entries := []domain.FileEntry{
		{Path: "cmd/main" + ext, Role: domain.RoleCLIMain, Lines: 300},
		{Path: "internal/commands" + ext, Role: domain.RoleCommand, Lines: 500},
		{Path: "internal/config" + ext, Role: domain.RoleConfig, Lines: 150},
		{Path: "pkg/utils" + ext, Role: domain.RoleUtil, Lines: 200},
	}
	for i := 0; i < g.between(10, 30); i++ {
		entries = append(entries, domain.FileEntry{
			Path: fmt.Sprintf("tests/test%d%s", i, ext), Role: domain.RoleTest, Lines: g.between(50, 150),
		})
	}
	return entries, []string{"cmd", "internal", "pkg", "tests"}
}

func (g *Generator) libraryManifest(spec *domain.RepoSpec) ([]domain.FileEntry, []string) {
	ext := spec.Extension
	entries := []domain.FileEntry{
		{Path: "src/core" + ext, Role: domain.RoleLibraryCore, Lines: 1000},
	}
	for i := 0; i < g.between(10, 30); i++ {
		entries = append(entries, domain.FileEntry{
			Path: fmt.Sprintf("src/module%d%s", i, ext), Role: domain.RoleModule, Lines: g.between(100, 500),
		})
	}
	for i := 0; i < g.between(20, 60); i++ {
		entries = append(entries, domain.FileEntry{
			Path: fmt.Sprintf("tests/test%d%s", i, ext), Role: domain.RoleTest, Lines: g.between(50, 200),
		})
	}
	for i := 0; i < g.between(5, 10); i++ {
		entries = append(entries, domain.FileEntry{
			Path: fmt.Sprintf("examples/example%d%s", i, ext), Role: domain.RoleExample, Lines: g.between(50, 150),
		})
	}
	return entries, []string{"src", "tests", "examples", "docs", "benchmarks"}
}

func (g *Generator) iosManifest() ([]domain.FileEntry, []string) {
	var entries []domain.FileEntry
	for i := 0; i < g.between(10, 30); i++ {
		entries = append(entries, domain.FileEntry{
			Path: fmt.Sprintf("Sources/View%d.swift", i), Role: domain.RoleView, Lines: g.between(50, 200),
		})
	}
	for i := 0; i < g.between(10, 20); i++ {
		entries = append(entries, domain.FileEntry{
			Path: fmt.Sprintf("Tests/Test%d.swift", i), Role: domain.RoleTest, Lines: g.between(50, 150),
		})
	}
	return entries, []string{"Sources", "Tests", "Resources"}
}

func (g *Generator) androidManifest() ([]domain.FileEntry, []string) {
	var entries []domain.FileEntry
	for i := 0; i < g.between(10, 30); i++ {
		entries = append(entries, domain.FileEntry{
			Path: fmt.Sprintf("app/src/main/java/com/example/app/Activity%d.kt", i), Role: domain.RoleActivity, Lines: g.between(50, 200),
		})
	}
	for i := 0; i < g.between(10, 20); i++ {
		entries = append(entries, domain.FileEntry{
			Path: fmt.Sprintf("app/src/test/java/com/example/app/Test%d.kt", i), Role: domain.RoleTest, Lines: g.between(50, 150),
		})
	}
	return entries, []string{"app/src/main/java", "app/src/test/java", "app/src/main/res"}
}

func (g *Generator) gameManifest() ([]domain.FileEntry, []string) {
	var entries []domain.FileEntry
	for i := 0; i < g.between(20, 50); i++ {
		entries = append(entries, domain.FileEntry{
			Path: fmt.Sprintf("Assets/Scripts/Script%d.cs", i), Role: domain.RoleScript, Lines: g.between(50, 300),
		})
	}
	return entries, []string{
		"Assets/Scripts", "Assets/Scenes", "Assets/Prefabs", "Assets/Materials",
		"Tests",
	}
}

func (g *Generator) dataManifest(spec *domain.RepoSpec) ([]domain.FileEntry, []string) {
	ext := spec.Extension
	var entries []domain.FileEntry
	for i := 0; i < g.between(5, 15); i++ {
		entries = append(entries, domain.FileEntry{
			Path: fmt.Sprintf("pipelines/pipeline%d%s", i, ext), Role: domain.RolePipeline, Lines: g.between(200, 600),
		})
	}
	for i := 0; i < g.between(10, 20); i++ {
		entries = append(entries, domain.FileEntry{
			Path: fmt.Sprintf("transformations/transform%d%s", i, ext), Role: domain.RoleTransform, Lines: g.between(100, 300),
		})
	}
	return entries, []string{
		"pipelines", "transformations", "models", "schemas", "tests", "config",
	}
}

func (g *Generator) enterpriseManifest(spec *domain.RepoSpec) ([]domain.FileEntry, []string) {
	ext := spec.Extension
	var entries []domain.FileEntry
	for i := 0; i < g.between(20, 50); i++ {
		entries = append(entries, domain.FileEntry{
			Path: fmt.Sprintf("backend/src/module%d%s", i, ext), Role: domain.RoleBackend, Lines: g.between(100, 500),
		})
	}
	for i := 0; i < g.between(20, 50); i++ {
		entries = append(entries, domain.FileEntry{
			Path: fmt.Sprintf("frontend/src/component%d%s", i, ext), Role: domain.RoleFrontend, Lines: g.between(100, 400),
		})
	}
	return entries, []string{
		"backend/src", "backend/tests",
		"frontend/src", "frontend/tests",
		"database/migrations", "docs", "infrastructure",
	}
}
