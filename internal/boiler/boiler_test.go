package boiler

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgelab/repoforge/internal/domain"
)

func boilerSpec(language string) *domain.RepoSpec {
	return &domain.RepoSpec{
		ID:       5001,
		Category: "open_source_clones",
		Template: "web-framework",
		Language: language,
	}
}

func TestWriteBaseline_CommonArtifacts(t *testing.T) {
	dir := t.TempDir()

	paths, err := WriteBaseline(dir, boilerSpec("python"))
	require.NoError(t, err)

	for _, want := range []string{".gitignore", "README.md", "LICENSE", ".github/workflows/ci.yml"} {
		assert.Contains(t, paths, want)
		_, err := os.Stat(filepath.Join(dir, want))
		assert.NoError(t, err, want)
	}

	readme, err := os.ReadFile(filepath.Join(dir, "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(readme), "repo-05001-web-framework")
}

func TestWriteBaseline_LanguageManifests(t *testing.T) {
	cases := []struct {
		language string
		want     []string
	}{
		{"javascript", []string{"package.json"}},
		{"typescript", []string{"package.json"}},
		{"python", []string{"setup.py", "requirements.txt"}},
		{"go", []string{"go.mod"}},
		{"rust", []string{"Cargo.toml"}},
		{"ruby", []string{"Gemfile"}},
		{"java", []string{"pom.xml"}},
		{"swift", nil},
	}

	for _, tc := range cases {
		t.Run(tc.language, func(t *testing.T) {
			dir := t.TempDir()
			paths, err := WriteBaseline(dir, boilerSpec(tc.language))
			require.NoError(t, err)

			for _, want := range tc.want {
				assert.Contains(t, paths, want)
			}
		})
	}
}

func TestWriteInfrastructure(t *testing.T) {
	dir := t.TempDir()
	spec := boilerSpec("python")
	spec.Category = "microservices_medium"
	spec.Template = "50-service-banking"

	paths, err := WriteInfrastructure(dir, spec)
	require.NoError(t, err)

	assert.Contains(t, paths, "docker-compose.yml")
	assert.Contains(t, paths, "Dockerfile")
	assert.Contains(t, paths, "infrastructure/k8s/deployment.yaml")
	assert.Contains(t, paths, "infrastructure/k8s/service.yaml")
	assert.Contains(t, paths, "infrastructure/terraform/main.tf")

	dockerfile, err := os.ReadFile(filepath.Join(dir, "Dockerfile"))
	require.NoError(t, err)
	assert.Contains(t, string(dockerfile), "FROM python")

	deployment, err := os.ReadFile(filepath.Join(dir, "infrastructure/k8s/deployment.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(deployment), spec.Name())
}

func TestWriteMigrations(t *testing.T) {
	dir := t.TempDir()

	paths, err := WriteMigrations(dir, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(paths), 10)
	assert.LessOrEqual(t, len(paths), 30)
	for _, p := range paths {
		assert.True(t, strings.HasPrefix(p, "database/migrations/migration"), p)
		assert.True(t, strings.HasSuffix(p, ".sql"), p)
	}
	assert.Equal(t, "database/migrations/migration000.sql", paths[0])
}
