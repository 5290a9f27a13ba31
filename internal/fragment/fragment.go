package fragment

import (
	"regexp"
	"strconv"
	"strings"
)

// Unit identifies the coordinate space of a spatial fragment.
type Unit string

const (
	UnitPixel   Unit = "pixel"
	UnitPercent Unit = "percent"
)

// Temporal is a t=start[,end] locator. End is nil for the open-ended
// single-value form.
type Temporal struct {
	Start float64  `json:"start"`
	End   *float64 `json:"end,omitempty"`
}

// Spatial is an xywh= locator describing a rectangular sub-region.
type Spatial struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	W    float64 `json:"w"`
	H    float64 `json:"h"`
	Unit Unit    `json:"unit"`
}

// Target is the result of parsing a URI or structured reference: the
// fragment-free source plus whatever locators the fragment carried.
type Target struct {
	Source   string    `json:"source"`
	Temporal *Temporal `json:"temporal,omitempty"`
	Spatial  *Spatial  `json:"spatial,omitempty"`
}

// The numeric run class is digits and dot only. A literal minus never
// matches, so a negative value degrades to an empty run for that side
// rather than failing the whole fragment: t=5,-20 reads as the
// open-ended t=5. Callers rely on that quirk; keep it.
var (
	temporalTagged = regexp.MustCompile(`t=([0-9.]*),?([0-9.]*)`)
	temporalBare   = regexp.MustCompile(`^([0-9.]*),?([0-9.]*)$`)
	spatialPattern = regexp.MustCompile(`xywh=(?:(pixel|percent):)?([0-9.]+),([0-9.]+),([0-9.]+),([0-9.]+)`)
)

// ParseTemporal extracts a temporal locator from a fragment body. The t=
// token may appear anywhere in the body; a body with no t= token is tried
// as a bare start[,end] form. Nil when no valid locator is present.
func ParseTemporal(body string) *Temporal {
	m := temporalTagged.FindStringSubmatch(body)
	if m == nil {
		m = temporalBare.FindStringSubmatch(body)
	}
	if m == nil {
		return nil
	}

	rawStart, rawEnd := m[1], m[2]
	if rawStart == "" && rawEnd == "" {
		return nil
	}

	start := 0.0
	if rawStart != "" {
		parsed, err := strconv.ParseFloat(rawStart, 64)
		if err != nil || parsed < 0 {
			return nil
		}
		start = parsed
	}

	result := Temporal{Start: start}
	if rawEnd != "" {
		end, err := strconv.ParseFloat(rawEnd, 64)
		if err != nil || end <= start {
			return nil
		}
		result.End = &end
	}
	return &result
}

// ParseSpatial extracts a spatial locator from a fragment body. All four
// coordinates are required; a percent-unit region must fit inside the
// normalized 100x100 canvas or the whole locator is dropped.
func ParseSpatial(body string) *Spatial {
	m := spatialPattern.FindStringSubmatch(body)
	if m == nil {
		return nil
	}

	unit := UnitPixel
	if m[1] == string(UnitPercent) {
		unit = UnitPercent
	}

	values := make([]float64, 4)
	for i, raw := range m[2:6] {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil
		}
		values[i] = parsed
	}

	region := Spatial{X: values[0], Y: values[1], W: values[2], H: values[3], Unit: unit}
	if unit == UnitPercent {
		for _, v := range values {
			if v > 100 {
				return nil
			}
		}
		if region.X+region.W > 100 || region.Y+region.H > 100 {
			return nil
		}
	}
	return &region
}

// ParseFragmentURI splits a URI at its fragment delimiter and parses the
// fragment body. A URI with no delimiter yields a source-only target.
func ParseFragmentURI(uri string) Target {
	idx := strings.Index(uri, "#")
	if idx < 0 {
		return Target{Source: uri}
	}
	body := uri[idx+1:]
	return Target{
		Source:   uri[:idx],
		Temporal: ParseTemporal(body),
		Spatial:  ParseSpatial(body),
	}
}
