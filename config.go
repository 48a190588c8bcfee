package trellodoc

// Fixed top-level values of the generated descriptor.
const (
	APIName    = "Trello"
	APIVersion = "1"
	APIBaseURL = "https://api.trello.com/1/"
)

// Regions are the documentation pages scraped, in processing order. Each name
// doubles as the identifier of the region's wrapper node within its page.
var Regions = []string{
	"actions",
	"boards",
	"cards",
	"checklists",
	"lists",
	"members",
	"notifications",
	"organizations",
	"search",
	"tokens",
	"types",
}

// Config is the top-level descriptor document. It is created once, grows by
// Assembler appends, and is immutable after the last region is processed.
// Field order matches the fixed serialization order of top-level keys.
type Config struct {
	Name    string             `json:"name"`
	Version string             `json:"version"`
	BaseURL string             `json:"base_url"`
	Formats []string           `json:"formats"`
	Methods map[string]*Method `json:"methods"`

	// order holds canonical names by ascending rank; it drives the key
	// ordering of the methods object during serialization.
	order []string
}

// NewConfig returns a descriptor document with the fixed fields populated and
// an empty methods mapping.
func NewConfig() *Config {
	return &Config{
		Name:    APIName,
		Version: APIVersion,
		BaseURL: APIBaseURL,
		Formats: []string{"json"},
		Methods: make(map[string]*Method),
	}
}
