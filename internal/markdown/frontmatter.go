package markdown

import (
	"gopkg.in/yaml.v3"
)

// FrontMatter represents the Front Matter
type FrontMatter string

// Decode unmarshalls the Front Matter into the given value.
func (f FrontMatter) Decode(v any) error {
	return yaml.Unmarshal([]byte(f), v)
}
