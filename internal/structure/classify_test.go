package structure

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/forgelab/repoforge/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		category string
		template string
		want     domain.Archetype
	}{
		{"web template", "open_source_clones", "web-framework", domain.ArchetypeWeb},
		{"framework template", "libraries_web", "test-framework", domain.ArchetypeWeb},
		{"microservice small", "microservices_small", "10-service-ecommerce", domain.ArchetypeMicroservice},
		{"microservice large", "microservices_large", "100-service-uber-clone", domain.ArchetypeMicroservice},
		{"cli", "cli_tools", "build-tool", domain.ArchetypeCLI},
		{"library category", "libraries_orm", "orm-lib", domain.ArchetypeLibrary},
		{"library template", "open_source_clones", "logging-lib", domain.ArchetypeLibrary},
		{"ios", "mobile_ios", "swiftui-app", domain.ArchetypeMobileIOS},
		{"android", "mobile_android", "kotlin-app", domain.ArchetypeMobileAndroid},
		{"game", "games", "unity-game", domain.ArchetypeGame},
		{"data", "data_engineering", "etl-pipeline", domain.ArchetypeData},
		{"enterprise fallback", "enterprise_crm", "salesforce-clone", domain.ArchetypeEnterprise},
		{"erp fallback", "enterprise_erp", "sap-clone", domain.ArchetypeEnterprise},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := &domain.RepoSpec{Category: tt.category, Template: tt.template}
			assert.Equal(t, tt.want, Classify(spec))
		})
	}
}

func TestClassify_WebBeatsCategory(t *testing.T) {
	// Template substring dispatch wins over category dispatch.
	spec := &domain.RepoSpec{Category: "microservices_small", Template: "web-framework"}
	assert.Equal(t, domain.ArchetypeWeb, Classify(spec))
}

func TestServiceCount(t *testing.T) {
	assert.Equal(t, 10, ServiceCount("microservices_small"))
	assert.Equal(t, 50, ServiceCount("microservices_medium"))
	assert.Equal(t, 100, ServiceCount("microservices_large"))
}
