package fragment

import (
	"encoding/json"
	"testing"
)

func TestParseTemporal(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		start float64
		end   float64 // -1 means open-ended
		valid bool
	}{
		{"start and end", "t=0,30", 0, 30, true},
		{"open ended", "t=3971.24", 3971.24, -1, true},
		{"empty start defaults to zero", "t=,20", 0, 20, true},
		{"bare token", "t=", 0, 0, false},
		{"end not after start", "t=20,10", 0, 0, false},
		{"end equals start", "t=10,10", 0, 0, false},
		{"negative start", "t=-5,20", 0, 0, false},
		{"negative end degrades to open form", "t=5,-20", 5, -1, true},
		{"token inside larger body", "xywh=0,0,10,10&t=12,24", 12, 24, true},
		{"bare numeric body", "10,20", 10, 20, true},
		{"spatial only body", "xywh=percent:10,20,30,40", 0, 0, false},
		{"double dot start", "t=1.2.3,30", 0, 0, false},
		{"double dot end", "t=5,1.2.3", 0, 0, false},
		{"empty body", "", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTemporal(tt.body)
			if !tt.valid {
				if got != nil {
					t.Fatalf("ParseTemporal(%q) = %+v, want nil", tt.body, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ParseTemporal(%q) = nil, want start %v", tt.body, tt.start)
			}
			if got.Start != tt.start {
				t.Errorf("start = %v, want %v", got.Start, tt.start)
			}
			if tt.end < 0 {
				if got.End != nil {
					t.Errorf("end = %v, want open-ended", *got.End)
				}
			} else if got.End == nil || *got.End != tt.end {
				t.Errorf("end = %v, want %v", got.End, tt.end)
			}
		})
	}
}

func TestParseSpatial(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		want  *Spatial
	}{
		{"pixel default", "xywh=160,120,320,240", &Spatial{160, 120, 320, 240, UnitPixel}},
		{"explicit pixel", "xywh=pixel:0,0,640,480", &Spatial{0, 0, 640, 480, UnitPixel}},
		{"percent in bounds", "xywh=percent:10,20,30,40", &Spatial{10, 20, 30, 40, UnitPercent}},
		{"percent at the edge", "xywh=percent:60,60,40,40", &Spatial{60, 60, 40, 40, UnitPercent}},
		{"percent sum exceeds canvas", "xywh=percent:80,80,30,30", nil},
		{"percent value exceeds 100", "xywh=percent:120,0,10,10", nil},
		{"missing coordinate", "xywh=10,20,30", nil},
		{"negative coordinate", "xywh=-10,20,30,40", nil},
		{"no token", "t=10,20", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSpatial(tt.body)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("ParseSpatial(%q) = %+v, want nil", tt.body, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ParseSpatial(%q) = nil, want %+v", tt.body, tt.want)
			}
			if *got != *tt.want {
				t.Errorf("ParseSpatial(%q) = %+v, want %+v", tt.body, got, tt.want)
			}
		})
	}
}

func TestParseFragmentURI(t *testing.T) {
	t.Run("no fragment", func(t *testing.T) {
		got := ParseFragmentURI("https://example.org/canvas/1")
		if got.Source != "https://example.org/canvas/1" {
			t.Errorf("source = %q", got.Source)
		}
		if got.Temporal != nil || got.Spatial != nil {
			t.Errorf("expected source-only target, got %+v", got)
		}
	})

	t.Run("temporal and spatial co-occur", func(t *testing.T) {
		got := ParseFragmentURI("https://example.org/canvas/1#t=10,20&xywh=percent:0,0,50,50")
		if got.Source != "https://example.org/canvas/1" {
			t.Errorf("source = %q", got.Source)
		}
		if got.Temporal == nil || got.Temporal.Start != 10 || got.Temporal.End == nil || *got.Temporal.End != 20 {
			t.Errorf("temporal = %+v", got.Temporal)
		}
		if got.Spatial == nil || got.Spatial.Unit != UnitPercent || got.Spatial.W != 50 {
			t.Errorf("spatial = %+v", got.Spatial)
		}
	})

	t.Run("reversed order", func(t *testing.T) {
		got := ParseFragmentURI("id#xywh=0,0,10,10&t=5")
		if got.Temporal == nil || got.Temporal.Start != 5 || got.Temporal.End != nil {
			t.Errorf("temporal = %+v", got.Temporal)
		}
		if got.Spatial == nil || got.Spatial.H != 10 {
			t.Errorf("spatial = %+v", got.Spatial)
		}
	})

	t.Run("empty source kept", func(t *testing.T) {
		got := ParseFragmentURI("#t=1,2")
		if got.Source != "" || got.Temporal == nil {
			t.Errorf("got %+v", got)
		}
	})
}

func TestParseTarget(t *testing.T) {
	t.Run("empty string", func(t *testing.T) {
		if got := ParseTarget(""); got != nil {
			t.Fatalf("got %+v, want nil", got)
		}
	})

	t.Run("nil input", func(t *testing.T) {
		if got := ParseTarget(nil); got != nil {
			t.Fatalf("got %+v, want nil", got)
		}
	})

	t.Run("plain string delegates to fragment parsing", func(t *testing.T) {
		got := ParseTarget("source#t=10,20")
		if got == nil || got.Source != "source" {
			t.Fatalf("got %+v", got)
		}
		if got.Temporal == nil || got.Temporal.Start != 10 {
			t.Errorf("temporal = %+v", got.Temporal)
		}
	})

	t.Run("fragment-only string still yields a target", func(t *testing.T) {
		got := ParseTarget("#t=5")
		if got == nil || got.Source != "" || got.Temporal == nil {
			t.Fatalf("got %+v", got)
		}
	})

	t.Run("wrong discriminator", func(t *testing.T) {
		got := ParseTarget(Reference{Type: "TextualBody", Source: Source{ID: "x"}})
		if got != nil {
			t.Fatalf("got %+v, want nil", got)
		}
	})

	t.Run("reference without selector", func(t *testing.T) {
		got := ParseTarget(Reference{Type: TypeSpecificResource, Source: Source{ID: "canvas-9"}})
		if got == nil || got.Source != "canvas-9" || got.Temporal != nil || got.Spatial != nil {
			t.Fatalf("got %+v", got)
		}
	})

	t.Run("unsupported selector type", func(t *testing.T) {
		got := ParseTarget(Reference{
			Type:     TypeSpecificResource,
			Source:   Source{ID: "canvas-9"},
			Selector: &Selector{Type: "SvgSelector", Value: "t=10,20"},
		})
		if got == nil || got.Temporal != nil {
			t.Fatalf("got %+v", got)
		}
	})

	t.Run("selector value matches uri fragment parse", func(t *testing.T) {
		viaRef := ParseTarget(Reference{
			Type:     TypeSpecificResource,
			Source:   Source{ID: "source"},
			Selector: &Selector{Type: TypeFragmentSelector, Value: "t=10,20"},
		})
		viaURI := ParseTarget("source#t=10,20")
		if viaRef == nil || viaURI == nil {
			t.Fatal("expected both parses to succeed")
		}
		if viaRef.Source != viaURI.Source {
			t.Errorf("source mismatch: %q vs %q", viaRef.Source, viaURI.Source)
		}
		if viaRef.Temporal == nil || viaURI.Temporal == nil ||
			viaRef.Temporal.Start != viaURI.Temporal.Start ||
			*viaRef.Temporal.End != *viaURI.Temporal.End {
			t.Errorf("temporal mismatch: %+v vs %+v", viaRef.Temporal, viaURI.Temporal)
		}
	})

	t.Run("pointer reference", func(t *testing.T) {
		got := ParseTarget(&Reference{Type: TypeSpecificResource, Source: Source{ID: "c"}})
		if got == nil || got.Source != "c" {
			t.Fatalf("got %+v", got)
		}
		if got := ParseTarget((*Reference)(nil)); got != nil {
			t.Fatalf("nil pointer: got %+v, want nil", got)
		}
	})
}

func TestSourceUnmarshal(t *testing.T) {
	var ref Reference
	raw := `{"type":"SpecificResource","source":{"id":"https://example.org/video"},"selector":{"type":"FragmentSelector","value":"t=1,2"}}`
	if err := json.Unmarshal([]byte(raw), &ref); err != nil {
		t.Fatalf("unmarshal object source: %v", err)
	}
	if ref.Source.ID != "https://example.org/video" {
		t.Errorf("source = %q", ref.Source.ID)
	}

	ref = Reference{}
	raw = `{"type":"SpecificResource","source":"https://example.org/video"}`
	if err := json.Unmarshal([]byte(raw), &ref); err != nil {
		t.Fatalf("unmarshal string source: %v", err)
	}
	if ref.Source.ID != "https://example.org/video" {
		t.Errorf("source = %q", ref.Source.ID)
	}
}
