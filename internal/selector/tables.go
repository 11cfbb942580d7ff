package selector

import "github.com/forgelab/repoforge/internal/domain"

// Categories is the generation plan in declaration order. Quotas are
// consumed front to back; templates cycle round-robin within a category.
var Categories = []domain.Category{
	{Name: "open_source_clones", Quota: 100, Templates: []string{
		"react-clone", "vue-clone", "angular-clone", "django-clone",
		"flask-clone", "rails-clone", "spring-boot-clone", "express-clone",
		"laravel-clone", "symfony-clone", "fastapi-clone", "nextjs-clone",
		"gatsby-clone", "nuxt-clone", "nest-clone", "koa-clone",
		"gin-clone", "echo-clone", "actix-clone", "rocket-clone",
	}},
	{Name: "enterprise_ecommerce", Quota: 50, Templates: []string{
		"shopify-clone", "woocommerce-clone", "magento-clone", "bigcommerce-clone",
	}},
	{Name: "enterprise_crm", Quota: 50, Templates: []string{
		"salesforce-clone", "hubspot-clone", "zoho-clone", "pipedrive-clone",
	}},
	{Name: "enterprise_erp", Quota: 50, Templates: []string{
		"sap-clone", "odoo-clone", "netsuite-clone", "oracle-erp-clone",
	}},
	{Name: "enterprise_cms", Quota: 50, Templates: []string{
		"wordpress-clone", "drupal-clone", "joomla-clone", "strapi-clone",
	}},
	{Name: "enterprise_analytics", Quota: 50, Templates: []string{
		"google-analytics-clone", "mixpanel-clone", "amplitude-clone", "segment-clone",
	}},
	{Name: "enterprise_bi", Quota: 50, Templates: []string{
		"tableau-clone", "powerbi-clone", "looker-clone", "metabase-clone",
	}},
	{Name: "enterprise_hr", Quota: 50, Templates: []string{
		"workday-clone", "bamboo-clone", "namely-clone", "gusto-clone",
	}},
	{Name: "enterprise_pm", Quota: 50, Templates: []string{
		"jira-clone", "asana-clone", "monday-clone", "clickup-clone",
	}},
	{Name: "microservices_small", Quota: 100, Templates: []string{
		"10-service-ecommerce", "10-service-social", "10-service-booking",
	}},
	{Name: "microservices_medium", Quota: 100, Templates: []string{
		"50-service-banking", "50-service-healthcare", "50-service-logistics",
	}},
	{Name: "microservices_large", Quota: 50, Templates: []string{
		"100-service-uber-clone", "100-service-netflix-clone",
	}},
	{Name: "libraries_web", Quota: 100, Templates: []string{
		"web-framework", "http-client", "websocket-lib", "graphql-lib",
	}},
	{Name: "libraries_testing", Quota: 50, Templates: []string{
		"test-framework", "mock-lib", "assertion-lib", "e2e-framework",
	}},
	{Name: "libraries_orm", Quota: 50, Templates: []string{
		"orm-lib", "query-builder", "migration-tool", "schema-validator",
	}},
	{Name: "cli_tools", Quota: 100, Templates: []string{
		"build-tool", "package-manager", "deploy-tool", "monitor-tool",
	}},
	{Name: "mobile_ios", Quota: 50, Templates: []string{
		"swiftui-app", "uikit-app", "combine-app",
	}},
	{Name: "mobile_android", Quota: 50, Templates: []string{
		"kotlin-app", "compose-app", "coroutines-app",
	}},
	{Name: "games", Quota: 50, Templates: []string{
		"unity-game", "godot-game", "phaser-game",
	}},
	{Name: "data_engineering", Quota: 50, Templates: []string{
		"etl-pipeline", "data-warehouse", "stream-processor", "ml-pipeline",
	}},
}

// Languages is the target-language distribution for generated sources
var Languages = []domain.LanguageProfile{
	{Name: "python", Weight: 0.30, Extensions: []string{".py"}},
	{Name: "javascript", Weight: 0.25, Extensions: []string{".js", ".jsx"}},
	{Name: "typescript", Weight: 0.20, Extensions: []string{".ts", ".tsx"}},
	{Name: "java", Weight: 0.10, Extensions: []string{".java"}},
	{Name: "go", Weight: 0.05, Extensions: []string{".go"}},
	{Name: "rust", Weight: 0.03, Extensions: []string{".rs"}},
	{Name: "ruby", Weight: 0.03, Extensions: []string{".rb"}},
	{Name: "php", Weight: 0.02, Extensions: []string{".php"}},
	{Name: "csharp", Weight: 0.02, Extensions: []string{".cs"}},
}

// Contributors is the fixed identity pool sampled per repository
var Contributors = []domain.Contributor{
	{Name: "John Smith", Email: "john.smith@example.com"},
	{Name: "Sarah Johnson", Email: "sarah.j@example.com"},
	{Name: "Michael Chen", Email: "mchen@example.com"},
	{Name: "Emily Davis", Email: "emily.d@example.com"},
	{Name: "David Wilson", Email: "dwilson@example.com"},
	{Name: "Maria Garcia", Email: "mgarcia@example.com"},
	{Name: "James Brown", Email: "jbrown@example.com"},
	{Name: "Lisa Anderson", Email: "landerson@example.com"},
	{Name: "Robert Taylor", Email: "rtaylor@example.com"},
	{Name: "Jennifer Martinez", Email: "jmartinez@example.com"},
	{Name: "William Lee", Email: "wlee@example.com"},
	{Name: "Jessica White", Email: "jwhite@example.com"},
	{Name: "Daniel Thomas", Email: "dthomas@example.com"},
	{Name: "Ashley Moore", Email: "amoore@example.com"},
	{Name: "Christopher Jackson", Email: "cjackson@example.com"},
}
