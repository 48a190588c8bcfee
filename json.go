package trellodoc

import (
	"bytes"
	"encoding/json"
	"sort"
)

// MarshalJSON serializes the document with its keys in rank order: the fixed
// top-level keys first, then the methods object with one entry per method in
// discovery order. encoding/json would otherwise sort the methods map
// alphabetically, which loses the rank-based ordering the descriptor
// guarantees to consumers.
func (c *Config) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if err := writeField(&buf, "name", c.Name, false); err != nil {
		return nil, err
	}
	if err := writeField(&buf, "version", c.Version, true); err != nil {
		return nil, err
	}
	if err := writeField(&buf, "base_url", c.BaseURL, true); err != nil {
		return nil, err
	}
	if err := writeField(&buf, "formats", c.Formats, true); err != nil {
		return nil, err
	}

	buf.WriteString(`,"methods":{`)
	for i, name := range c.methodOrder() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(c.Methods[name])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteString("}}")

	return buf.Bytes(), nil
}

func writeField(buf *bytes.Buffer, key string, v any, comma bool) error {
	if comma {
		buf.WriteByte(',')
	}
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(b)
	return nil
}

// methodOrder returns canonical names in rank order. Names present in the
// methods mapping but never ranked (a document rebuilt from JSON, or built by
// hand in tests) sort alphabetically after the ranked ones.
func (c *Config) methodOrder() []string {
	names := make([]string, 0, len(c.Methods))
	seen := make(map[string]bool, len(c.Methods))
	for _, name := range c.order {
		if _, ok := c.Methods[name]; ok && !seen[name] {
			names = append(names, name)
			seen[name] = true
		}
	}
	var rest []string
	for name := range c.Methods {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}
