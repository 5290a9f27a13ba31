package captions

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// SpeakerSegment is a merged run of captions attributed to one speaker.
// Times are seconds; EndTime equals StartTime only for a zero-length cue.
type SpeakerSegment struct {
	Speaker   string  `json:"speaker"`
	StartTime float64 `json:"startTime"`
	EndTime   float64 `json:"endTime"`
}

// cue is one timed caption entry before merging.
type cue struct {
	start   float64
	end     float64
	speaker string
}

var (
	timingPattern = regexp.MustCompile(`^\s*((?:\d+:)?\d+:\d+\.\d+)\s*-->\s*((?:\d+:)?\d+:\d+\.\d+)`)
	notePattern   = regexp.MustCompile(`^(?i:NOTE)\s`)
	voicePattern  = regexp.MustCompile(`^<[vV]\s+([^>]+)>`)
)

// ExtractSpeakerSegments tokenizes caption text into cues, keeps the ones
// carrying a voice tag, and merges exact-boundary runs of the same speaker.
// Empty or all-whitespace input yields an empty list.
func ExtractSpeakerSegments(text string) []SpeakerSegment {
	cues := scanCues(text)

	var segments []SpeakerSegment
	for _, c := range cues {
		if c.speaker == "" {
			continue
		}
		// Zero tolerance on the boundary: any gap, however small, starts a
		// new segment.
		if n := len(segments); n > 0 && segments[n-1].Speaker == c.speaker && segments[n-1].EndTime == c.start {
			segments[n-1].EndTime = c.end
			continue
		}
		segments = append(segments, SpeakerSegment{Speaker: c.speaker, StartTime: c.start, EndTime: c.end})
	}

	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].StartTime < segments[j].StartTime
	})
	return segments
}

// scanCues is a single forward pass over the document's lines. Lines that do
// not look like timing lines are skipped until one is found; the cue's
// payload then runs until a blank line or the next timing line.
func scanCues(text string) []cue {
	lines := strings.Split(text, "\n")
	var cues []cue

	i := 0
	for i < len(lines) {
		line := lines[i]
		if !strings.Contains(line, "-->") {
			i++
			continue
		}
		start, end, ok := parseTimingLine(line)
		i++
		if !ok {
			// Malformed timestamps drop the cue; scanning resumes on the
			// next line.
			continue
		}

		var payload []string
		for i < len(lines) {
			next := lines[i]
			if strings.TrimSpace(next) == "" {
				i++
				break
			}
			if strings.Contains(next, "-->") {
				break
			}
			i++
			if notePattern.MatchString(next) {
				continue
			}
			payload = append(payload, strings.TrimSpace(next))
		}

		cueText := strings.Join(payload, " ")
		cues = append(cues, cue{start: start, end: end, speaker: speakerOf(cueText)})
	}
	return cues
}

func parseTimingLine(line string) (float64, float64, bool) {
	m := timingPattern.FindStringSubmatch(line)
	if m == nil {
		return 0, 0, false
	}
	start, err := parseTimestamp(m[1])
	if err != nil {
		return 0, 0, false
	}
	end, err := parseTimestamp(m[2])
	if err != nil {
		return 0, 0, false
	}
	return start, end, true
}

// parseTimestamp accepts HH:MM:SS.mmm or MM:SS.mmm. The fractional part is
// read as part of the seconds value regardless of digit count.
func parseTimestamp(value string) (float64, error) {
	parts := strings.Split(value, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, strconv.ErrSyntax
	}

	seconds, err := strconv.ParseFloat(parts[len(parts)-1], 64)
	if err != nil {
		return 0, err
	}
	total := seconds
	scale := 60.0
	for i := len(parts) - 2; i >= 0; i-- {
		unit, err := strconv.Atoi(parts[i])
		if err != nil {
			return 0, err
		}
		total += float64(unit) * scale
		scale *= 60
	}
	return total, nil
}

// speakerOf extracts the voice tag speaker from the start of a cue's text.
// Only the <v marker is case-insensitive; the name itself is preserved
// verbatim apart from surrounding whitespace.
func speakerOf(text string) string {
	m := voicePattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
