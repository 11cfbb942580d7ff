package structure

import (
	"strings"

	"github.com/forgelab/repoforge/internal/domain"
)

// Classify maps a RepoSpec onto its structural archetype. The dispatch is a
// pure function over category and template names so the rule stays
// auditable and exhaustively testable.
func Classify(spec *domain.RepoSpec) domain.Archetype {
	category := strings.ToLower(spec.Category)
	template := strings.ToLower(spec.Template)

	switch {
	case strings.Contains(template, "web") || strings.Contains(template, "framework"):
		return domain.ArchetypeWeb
	case strings.Contains(category, "microservice"):
		return domain.ArchetypeMicroservice
	case strings.Contains(category, "cli"):
		return domain.ArchetypeCLI
	case strings.Contains(category, "lib") || strings.Contains(template, "lib"):
		return domain.ArchetypeLibrary
	case strings.Contains(category, "mobile"):
		if strings.Contains(category, "ios") {
			return domain.ArchetypeMobileIOS
		}
		return domain.ArchetypeMobileAndroid
	case strings.Contains(category, "game"):
		return domain.ArchetypeGame
	case strings.Contains(category, "data"):
		return domain.ArchetypeData
	default:
		return domain.ArchetypeEnterprise
	}
}

// ServiceCount returns how many services a microservice-mesh repository
// carries, keyed by category size
func ServiceCount(category string) int {
	switch {
	case strings.Contains(category, "small"):
		return 10
	case strings.Contains(category, "medium"):
		return 50
	default:
		return 100
	}
}
