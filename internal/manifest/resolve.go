package manifest

import (
	"sort"
	"strings"

	"golang.org/x/text/language"

	"avmark/internal/fragment"
)

// Chapter is a resolved, playable time segment flattened out of the range
// tree. Times are seconds; EndTime is always strictly after StartTime.
type Chapter struct {
	ID        string         `json:"id"`
	Label     string         `json:"label"`
	StartTime float64        `json:"startTime"`
	EndTime   float64        `json:"endTime"`
	Thumbnail string         `json:"thumbnail,omitempty"`
	Metadata  []MetadataPair `json:"metadata,omitempty"`
}

// MetadataPair is one resolved metadata mapping. Pairs keep their first-seen
// order; a repeated key overwrites the value in place.
type MetadataPair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Options adjusts chapter resolution. The zero value matches the default
// behavior of preferring English labels.
type Options struct {
	// Language is the preferred label language tag, e.g. "en" or "fr".
	Language string
}

// ResolveChapters flattens a manifest's range tree into a chapter list
// sorted by start time. A manifest without ranges yields an empty list,
// never an error.
func ResolveChapters(m *Manifest) []Chapter {
	return ResolveChaptersOptions(m, Options{})
}

// ResolveChaptersOptions is ResolveChapters with an explicit label language
// preference.
func ResolveChaptersOptions(m *Manifest, opts Options) []Chapter {
	if m == nil || len(m.Structures) == 0 {
		return nil
	}

	durations := make(map[string]float64, len(m.Items))
	for _, canvas := range m.Items {
		if canvas.Duration > 0 {
			durations[canvas.ID] = canvas.Duration
		}
	}

	pref := language.English
	if trimmed := strings.TrimSpace(opts.Language); trimmed != "" {
		if tag, err := language.Parse(trimmed); err == nil {
			pref = tag
		}
	}

	var chapters []Chapter
	for i := range m.Structures {
		chapters = append(chapters, resolveRange(&m.Structures[i], durations, pref)...)
	}

	sort.SliceStable(chapters, func(i, j int) bool {
		return chapters[i].StartTime < chapters[j].StartTime
	})
	return chapters
}

// resolveRange collects the chapter synthesized from this range, if any,
// followed by the chapters of its nested ranges in document order.
func resolveRange(r *Range, durations map[string]float64, pref language.Tag) []Chapter {
	var out []Chapter
	if chapter, ok := chapterFromRange(r, durations, pref); ok {
		out = append(out, chapter)
	}
	for _, item := range r.Items {
		if item.Range != nil {
			out = append(out, resolveRange(item.Range, durations, pref)...)
		}
	}
	return out
}

// chapterFromRange synthesizes at most one chapter from the range's first
// direct canvas child carrying a temporal fragment. Any malformed or
// unresolvable piece abandons synthesis for this range.
func chapterFromRange(r *Range, durations map[string]float64, pref language.Tag) (Chapter, bool) {
	ref := firstTemporalChild(r)
	if ref == nil {
		return Chapter{}, false
	}

	hash := strings.Index(ref.ID, "#")
	temporal := fragment.ParseTemporal(ref.ID[hash+1:])
	if temporal == nil {
		return Chapter{}, false
	}

	var end float64
	if temporal.End != nil {
		end = *temporal.End
	} else {
		// Open-ended span: the canvas's declared duration supplies the end.
		duration, ok := durations[ref.ID[:hash]]
		if !ok {
			return Chapter{}, false
		}
		end = duration
	}
	if end <= temporal.Start {
		return Chapter{}, false
	}

	label := pickLabel(r.Label, pref)
	if label == "" {
		label = PlaceholderLabel
	}

	chapter := Chapter{
		ID:        r.ID,
		Label:     label,
		StartTime: temporal.Start,
		EndTime:   end,
		Metadata:  resolveMetadata(r.Metadata, pref),
	}
	if len(r.Thumbnail) > 0 {
		chapter.Thumbnail = r.Thumbnail[0].ID
	}
	return chapter, true
}

// firstTemporalChild returns the first direct canvas child whose identifier
// carries a t= fragment. Later matching children are ignored; a range yields
// at most one chapter of its own.
func firstTemporalChild(r *Range) *CanvasRef {
	for _, item := range r.Items {
		if item.Canvas == nil {
			continue
		}
		hash := strings.Index(item.Canvas.ID, "#")
		if hash < 0 {
			continue
		}
		if !strings.Contains(item.Canvas.ID[hash+1:], "t=") {
			continue
		}
		return item.Canvas
	}
	return nil
}

func resolveMetadata(entries []MetadataEntry, pref language.Tag) []MetadataPair {
	var pairs []MetadataPair
	for _, entry := range entries {
		key := pickLabel(entry.Label, pref)
		if key == "" {
			continue
		}
		value := pickLabel(entry.Value, pref)
		overwritten := false
		for i := range pairs {
			if pairs[i].Key == key {
				pairs[i].Value = value
				overwritten = true
				break
			}
		}
		if !overwritten {
			pairs = append(pairs, MetadataPair{Key: key, Value: value})
		}
	}
	return pairs
}
