package trellodoc

import "context"

// Method represents one API method in the output descriptor. Field order
// matches the fixed serialization order of record keys.
type Method struct {
	Path           string                `json:"path"`
	Method         string                `json:"method"`
	RequiredParams []string              `json:"required_params"`
	OptionalParams []string              `json:"optional_params"`
	ParamInfos     map[string]*ParamInfo `json:"_params_infos,omitempty"`
}

// ParamInfo holds auxiliary metadata for a single parameter. It is attached
// to a method only when at least one field is set; an all-empty ParamInfo is
// never emitted.
type ParamInfo struct {
	DefaultValue string   `json:"default_value,omitempty"`
	ValidValues  []string `json:"valid_values,omitempty"`

	// AllowMultiple is only ever set to true (a comma-separated list of the
	// valid values is accepted); absence renders the same as false.
	AllowMultiple bool `json:"allow_multiple,omitempty"`
}

// IsZero reports whether no metadata field is set.
func (pi *ParamInfo) IsZero() bool {
	return pi == nil || (pi.DefaultValue == "" && len(pi.ValidValues) == 0 && !pi.AllowMultiple)
}

// Param is a documentation-derived argument as extracted from a single
// arguments-list item, before merging with path-derived parameters.
type Param struct {
	Name     string
	Required bool
	Info     *ParamInfo
}

// RawMethod is the pre-canonicalization extraction result for one method
// subsection: the heading verb and path exactly as found in the document,
// plus the documented arguments in document order.
type RawMethod struct {
	Verb   string
	Path   string
	Params []Param
}

// RegionExtractor enumerates the method subsections within a named region of
// an HTML documentation page. Subsections lacking an extractable verb or path
// are skipped; a missing arguments list yields zero params. Returns ENOTFOUND
// if no node with the region's identifier exists in the document.
type RegionExtractor interface {
	ExtractMethods(html string, region string) ([]*RawMethod, error)
}

// Fetcher retrieves HTML documents from URLs.
type Fetcher interface {
	// Fetch retrieves the page at url. The context controls timeout and
	// cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// ConfigWriter persists a finished descriptor document.
type ConfigWriter interface {
	WriteConfig(ctx context.Context, cfg *Config) error
}
