package fragment

import (
	"encoding/json"
	"strings"
)

// Discriminator values recognized on structured references.
const (
	TypeSpecificResource = "SpecificResource"
	TypeFragmentSelector = "FragmentSelector"
)

// Source is the target of a structured reference. The wire form is either a
// bare string or an object carrying an id.
type Source struct {
	ID string
}

func (s *Source) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		s.ID = plain
		return nil
	}
	var obj struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	s.ID = obj.ID
	return nil
}

func (s Source) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.ID)
}

// Selector narrows a reference to a sub-part of its source. Only
// FragmentSelector values are understood.
type Selector struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Reference is an object-shaped target: an explicit source plus an optional
// selector describing a sub-part of it.
type Reference struct {
	Type     string    `json:"type"`
	Source   Source    `json:"source"`
	Selector *Selector `json:"selector,omitempty"`
}

// ParseTarget dispatches on input shape: a plain URI string is parsed for an
// embedded fragment, a SpecificResource reference is parsed via its selector
// value. Empty or unrecognized input yields nil.
func ParseTarget(input any) *Target {
	switch v := input.(type) {
	case string:
		if v == "" {
			return nil
		}
		parsed := ParseFragmentURI(v)
		return &parsed
	case Reference:
		return parseReference(v)
	case *Reference:
		if v == nil {
			return nil
		}
		return parseReference(*v)
	default:
		return nil
	}
}

func parseReference(ref Reference) *Target {
	if ref.Type != TypeSpecificResource {
		return nil
	}
	target := Target{Source: ref.Source.ID}
	sel := ref.Selector
	if sel == nil || sel.Type != TypeFragmentSelector || strings.TrimSpace(sel.Value) == "" {
		return &target
	}
	target.Temporal = ParseTemporal(sel.Value)
	target.Spatial = ParseSpatial(sel.Value)
	return &target
}
