package project

// Kind is the project archetype driving scaffolding and selection decisions.
type Kind string

// Known archetypes.
const (
	KindWebService     Kind = "web-service"
	KindAPIService     Kind = "api-service"
	KindCLITool        Kind = "cli-tool"
	KindLibrary        Kind = "library"
	KindDataPipeline   Kind = "data-pipeline"
	KindEmbeddedDevice Kind = "embedded-device"
)

// Kinds lists every valid archetype value.
var Kinds = []Kind{
	KindWebService,
	KindAPIService,
	KindCLITool,
	KindLibrary,
	KindDataPipeline,
	KindEmbeddedDevice,
}

// ValidKind reports whether s names a known archetype.
func ValidKind(s string) bool {
	for _, k := range Kinds {
		if string(k) == s {
			return true
		}
	}
	return false
}

// StackVocabulary maps each stack attribute to its controlled vocabulary.
// The embedded schema mirrors these values; catalog rule validation checks
// attribute names against the same table.
var StackVocabulary = map[string][]string{
	"backend":    {"go", "python", "node", "java", "rust"},
	"frontend":   {"react", "vue", "svelte", "angular", "none"},
	"datastore":  {"postgres", "mysql", "sqlite", "mongodb", "dynamodb"},
	"cache":      {"redis", "memcached", "none"},
	"deployment": {"docker", "kubernetes", "serverless", "bare-metal"},
	"platform":   {"aws", "gcp", "azure", "on-prem"},
}

// FeatureNames lists the boolean feature flags usable in selection rules.
var FeatureNames = []string{"auth", "docker", "ci", "monitoring", "docs"}

// KnownAttribute reports whether name is a stack attribute or feature flag
// that selection rules may reference.
func KnownAttribute(name string) bool {
	if _, ok := StackVocabulary[name]; ok {
		return true
	}
	for _, f := range FeatureNames {
		if f == name {
			return true
		}
	}
	return false
}

// Stack holds the optional technology attributes of a project. Empty string
// means the attribute is unset.
type Stack struct {
	Backend    string `json:"backend,omitempty"`
	Frontend   string `json:"frontend,omitempty"`
	Datastore  string `json:"datastore,omitempty"`
	Cache      string `json:"cache,omitempty"`
	Deployment string `json:"deployment,omitempty"`
	Platform   string `json:"platform,omitempty"`
}

// Config is a fully validated project configuration. Build is the only
// constructor; a Config is read-only once returned.
type Config struct {
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Kind        Kind            `json:"kind"`
	Description string          `json:"description"`
	Stack       Stack           `json:"stack,omitempty"`
	Features    map[string]bool `json:"features,omitempty"`
}

// Attribute resolves a named attribute for rule matching. Stack attributes
// return their configured value; feature flags return "true" when enabled.
// The second return is false when the attribute is unset or unknown.
func (c *Config) Attribute(name string) (string, bool) {
	var v string
	switch name {
	case "backend":
		v = c.Stack.Backend
	case "frontend":
		v = c.Stack.Frontend
	case "datastore":
		v = c.Stack.Datastore
	case "cache":
		v = c.Stack.Cache
	case "deployment":
		v = c.Stack.Deployment
	case "platform":
		v = c.Stack.Platform
	default:
		if c.Features[name] {
			return "true", true
		}
		return "", false
	}
	if v == "" {
		return "", false
	}
	return v, true
}
