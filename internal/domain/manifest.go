package domain

// Archetype is the structural family a repository belongs to. It decides
// the directory skeleton and the role vocabulary of generated files.
type Archetype string

const (
	ArchetypeWeb           Archetype = "web"
	ArchetypeMicroservice  Archetype = "microservice"
	ArchetypeCLI           Archetype = "cli"
	ArchetypeLibrary       Archetype = "library"
	ArchetypeMobileIOS     Archetype = "mobile_ios"
	ArchetypeMobileAndroid Archetype = "mobile_android"
	ArchetypeGame          Archetype = "game"
	ArchetypeData          Archetype = "data"
	ArchetypeEnterprise    Archetype = "enterprise"
)

// Role tags generated files by structural purpose; the synthesizer keys its
// skeleton choice off the role, the scheduler only carries it through.
type Role string

const (
	RoleAppEntry    Role = "app_entry"
	RoleIndex       Role = "index"
	RoleComponent   Role = "component"
	RolePage        Role = "page"
	RoleUtil        Role = "util"
	RoleAPI         Role = "api"
	RoleTest        Role = "test"
	RoleServiceMain Role = "service_main"
	RoleHandler     Role = "handler"
	RoleModel       Role = "model"
	RoleRepository  Role = "repository"
	RoleCLIMain     Role = "cli_main"
	RoleCommand     Role = "command"
	RoleConfig      Role = "config"
	RoleLibraryCore Role = "library_core"
	RoleModule      Role = "module"
	RoleExample     Role = "example"
	RoleView        Role = "view"
	RoleActivity    Role = "activity"
	RoleScript      Role = "script"
	RolePipeline    Role = "pipeline"
	RoleTransform   Role = "transform"
	RoleBackend     Role = "backend"
	RoleFrontend    Role = "frontend"
)

// FileEntry is one planned source file: where it goes, what it is for, and
// how large it should come out
type FileEntry struct {
	Path  string
	Role  Role
	Lines int
}
