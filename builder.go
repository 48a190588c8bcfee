package trellodoc

import (
	"slices"
	"strings"
)

// rawName builds the pre-transformation name for a method: the lower-cased
// verb concatenated with the path, with an initial /1/ path prefix collapsed
// to a single underscore, brackets stripped from placeholders, and all
// remaining slashes and spaces turned into underscores.
func rawName(verb, path string) string {
	if strings.HasPrefix(path, "/1/") {
		path = path[2:]
	}
	s := strings.ToLower(verb) + path
	s = strings.NewReplacer("[", "", "]", "").Replace(s)
	s = strings.NewReplacer("/", "_", " ", "_").Replace(s)
	return strings.ToLower(s)
}

// BuildMethod converts one extracted subsection into its canonical name and
// method record, applying the parameter merge rules:
//
//   - documentation-derived required/optional params come first, in document
//     order
//   - path placeholders are appended to required_params unless already listed
//     there, so a placeholder the documentation never mentions still ends up
//     required
//   - key is always appended to required_params, even when the documentation
//     already listed it
//   - token is appended to optional_params only when absent from both lists
func BuildMethod(raw *RawMethod) (string, *Method) {
	m := &Method{
		Path:           PathTemplate(raw.Path),
		Method:         strings.ToUpper(raw.Verb),
		RequiredParams: []string{},
		OptionalParams: []string{},
	}

	for _, p := range raw.Params {
		if p.Required {
			m.RequiredParams = append(m.RequiredParams, p.Name)
		} else {
			m.OptionalParams = append(m.OptionalParams, p.Name)
		}
	}

	for _, name := range PathParams(raw.Path) {
		if !slices.Contains(m.RequiredParams, name) {
			m.RequiredParams = append(m.RequiredParams, name)
		}
	}

	m.RequiredParams = append(m.RequiredParams, "key")
	if !slices.Contains(m.RequiredParams, "token") && !slices.Contains(m.OptionalParams, "token") {
		m.OptionalParams = append(m.OptionalParams, "token")
	}

	for _, p := range raw.Params {
		if p.Info.IsZero() {
			continue
		}
		if m.ParamInfos == nil {
			m.ParamInfos = make(map[string]*ParamInfo)
		}
		m.ParamInfos[p.Name] = p.Info
	}

	return CanonicalName(rawName(raw.Verb, raw.Path)), m
}
