// Package boiler writes the static, non-generated artifacts every valid
// repository carries: ignore rules, readme, license, CI descriptor,
// dependency manifest, and infrastructure descriptors for archetypes that
// need them. Content is fixed boilerplate; nothing here is synthesized.
package boiler

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/forgelab/repoforge/internal/domain"
	apperrors "github.com/forgelab/repoforge/internal/errors"
)

type artifact struct {
	Path    string
	Content string
}

// WriteBaseline writes the artifacts common to all archetypes and returns
// their repository-relative paths in write order
func WriteBaseline(repoPath string, spec *domain.RepoSpec) ([]string, error) {
	name := spec.Name()

	files := []artifact{
		{".gitignore", gitignoreText},
		{"README.md", fmt.Sprintf(readmeTemplate, name, spec.Template)},
		{"LICENSE", licenseText},
		{".github/workflows/ci.yml", ciWorkflowText},
	}
	files = append(files, manifestFiles(name, spec)...)

	return writeAll(repoPath, files)
}

// manifestFiles returns the language-appropriate dependency manifest
func manifestFiles(name string, spec *domain.RepoSpec) []artifact {
	switch spec.Language {
	case "javascript", "typescript":
		return []artifact{{"package.json", fmt.Sprintf(packageJSONTemplate, name, spec.Template)}}
	case "python":
		return []artifact{
			{"setup.py", fmt.Sprintf(setupPyTemplate, name, spec.Template)},
			{"requirements.txt", requirementsText},
		}
	case "go":
		return []artifact{{"go.mod", fmt.Sprintf(goModTemplate, name)}}
	case "rust":
		return []artifact{{"Cargo.toml", fmt.Sprintf(cargoTomlTemplate, name)}}
	case "ruby":
		return []artifact{{"Gemfile", gemfileText}}
	case "java":
		return []artifact{{"pom.xml", fmt.Sprintf(pomXMLTemplate, name)}}
	default:
		return nil
	}
}

// WriteInfrastructure writes container and orchestration descriptors for
// infrastructure-bearing archetypes
func WriteInfrastructure(repoPath string, spec *domain.RepoSpec) ([]string, error) {
	name := spec.Name()

	dockerfile := dockerfileNode
	if spec.Language == "python" {
		dockerfile = dockerfilePython
	}

	return writeAll(repoPath, []artifact{
		{"docker-compose.yml", dockerComposeText},
		{"Dockerfile", dockerfile},
		{"infrastructure/k8s/deployment.yaml", fmt.Sprintf(k8sDeploymentTemplate, name, name, name, name)},
		{"infrastructure/k8s/service.yaml", fmt.Sprintf(k8sServiceTemplate, name, name)},
		{"infrastructure/terraform/main.tf", terraformText},
	})
}

// WriteMigrations writes numbered SQL migrations for enterprise modules
func WriteMigrations(repoPath string, rng *rand.Rand) ([]string, error) {
	count := 10 + rng.Intn(21)

	files := make([]artifact, 0, count)
	for i := 0; i < count; i++ {
		files = append(files, artifact{
			Path:    fmt.Sprintf("database/migrations/migration%03d.sql", i),
			Content: sqlMigrationText,
		})
	}
	return writeAll(repoPath, files)
}

func writeAll(repoPath string, files []artifact) ([]string, error) {
	var written []string
	for _, f := range files {
		full := filepath.Join(repoPath, f.Path)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			return nil, apperrors.NewFSError(fmt.Sprintf("create directory for %s", f.Path), err)
		}
		if err := os.WriteFile(full, []byte(f.Content), 0o644); err != nil {
			return nil, apperrors.NewFSError(fmt.Sprintf("write %s", f.Path), err)
		}
		written = append(written, f.Path)
	}
	return written, nil
}
