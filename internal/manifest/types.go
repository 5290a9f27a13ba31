package manifest

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Discriminator values on manifest items.
const (
	TypeCanvas = "Canvas"
	TypeRange  = "Range"
)

// Label is a language-tagged label map, e.g. {"en": ["Introduction"]}.
type Label map[string][]string

// Manifest is the subset of a presentation manifest the resolver needs:
// canvases for duration lookup and the range tree.
type Manifest struct {
	ID         string   `json:"id" yaml:"id"`
	Items      []Canvas `json:"items" yaml:"items"`
	Structures []Range  `json:"structures" yaml:"structures"`
}

// Canvas is an addressable span of continuous media with an optional total
// duration in seconds.
type Canvas struct {
	ID       string  `json:"id" yaml:"id"`
	Type     string  `json:"type" yaml:"type"`
	Duration float64 `json:"duration" yaml:"duration"`
}

// Thumbnail is a image resource reference attached to a range.
type Thumbnail struct {
	ID string `json:"id" yaml:"id"`
}

// MetadataEntry is one label/value pair on a range, each side a language map.
type MetadataEntry struct {
	Label Label `json:"label" yaml:"label"`
	Value Label `json:"value" yaml:"value"`
}

// Range is a hierarchical grouping construct: it may reference canvases
// directly and may nest further ranges.
type Range struct {
	ID        string          `json:"id" yaml:"id"`
	Type      string          `json:"type" yaml:"type"`
	Label     Label           `json:"label,omitempty" yaml:"label,omitempty"`
	Thumbnail []Thumbnail     `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	Metadata  []MetadataEntry `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Items     []RangeItem     `json:"items,omitempty" yaml:"items,omitempty"`
}

// CanvasRef is a canvas reference inside a range, its identifier possibly
// decorated with a media fragment.
type CanvasRef struct {
	ID   string `json:"id" yaml:"id"`
	Type string `json:"type" yaml:"type"`
}

// RangeItem is a child entry of a range: either a canvas reference or a
// nested range, discriminated by the wire type field. Entries with an
// unrecognized type leave both sides nil and are skipped by the resolver.
type RangeItem struct {
	Canvas *CanvasRef
	Range  *Range
}

func (ri *RangeItem) UnmarshalJSON(data []byte) error {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	switch probe.Type {
	case TypeCanvas:
		var ref CanvasRef
		if err := json.Unmarshal(data, &ref); err != nil {
			return err
		}
		ri.Canvas = &ref
	case TypeRange:
		var r Range
		if err := json.Unmarshal(data, &r); err != nil {
			return err
		}
		ri.Range = &r
	}
	return nil
}

func (ri RangeItem) MarshalJSON() ([]byte, error) {
	switch {
	case ri.Canvas != nil:
		return json.Marshal(ri.Canvas)
	case ri.Range != nil:
		return json.Marshal(ri.Range)
	default:
		return []byte("null"), nil
	}
}

func (ri *RangeItem) UnmarshalYAML(node *yaml.Node) error {
	var probe struct {
		Type string `yaml:"type"`
	}
	if err := node.Decode(&probe); err != nil {
		return err
	}
	switch probe.Type {
	case TypeCanvas:
		var ref CanvasRef
		if err := node.Decode(&ref); err != nil {
			return err
		}
		ri.Canvas = &ref
	case TypeRange:
		var r Range
		if err := node.Decode(&r); err != nil {
			return err
		}
		ri.Range = &r
	}
	return nil
}

// DecodeJSON reads a JSON manifest document.
func DecodeJSON(r io.Reader) (*Manifest, error) {
	var m Manifest
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode manifest json: %w", err)
	}
	return &m, nil
}

// DecodeYAML reads a YAML manifest document.
func DecodeYAML(r io.Reader) (*Manifest, error) {
	var m Manifest
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode manifest yaml: %w", err)
	}
	return &m, nil
}
