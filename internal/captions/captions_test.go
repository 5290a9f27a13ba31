package captions

import (
	"testing"
)

func TestExtractSpeakerSegmentsEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   \n\t\n", "WEBVTT\n"} {
		if got := ExtractSpeakerSegments(input); len(got) != 0 {
			t.Errorf("ExtractSpeakerSegments(%q) = %+v, want empty", input, got)
		}
	}
}

func TestExtractSpeakerSegmentsMergesContiguousSameSpeaker(t *testing.T) {
	doc := `WEBVTT

00:00.000 --> 00:05.000
<v John>A

00:05.000 --> 00:10.000
<v John>B

00:10.000 --> 00:15.000
<v Jane>C
`
	got := ExtractSpeakerSegments(doc)
	if len(got) != 2 {
		t.Fatalf("got %d segments, want 2: %+v", len(got), got)
	}
	if got[0].Speaker != "John" || got[0].StartTime != 0 || got[0].EndTime != 10 {
		t.Errorf("segment 0 = %+v, want John [0, 10]", got[0])
	}
	if got[1].Speaker != "Jane" || got[1].StartTime != 10 || got[1].EndTime != 15 {
		t.Errorf("segment 1 = %+v, want Jane [10, 15]", got[1])
	}
}

func TestExtractSpeakerSegmentsGapBreaksMerge(t *testing.T) {
	doc := `00:00.000 --> 00:05.000
<v John>First

00:10.000 --> 00:15.000
<v John>Second
`
	got := ExtractSpeakerSegments(doc)
	if len(got) != 2 {
		t.Fatalf("got %d segments, want 2: %+v", len(got), got)
	}
}

func TestExtractSpeakerSegmentsTinyGapBreaksMerge(t *testing.T) {
	doc := `00:00.000 --> 00:05.000
<v John>First

00:05.001 --> 00:10.000
<v John>Second
`
	got := ExtractSpeakerSegments(doc)
	if len(got) != 2 {
		t.Fatalf("got %d segments, want 2: %+v", len(got), got)
	}
}

func TestExtractSpeakerSegmentsDifferentSpeakerBreaksMerge(t *testing.T) {
	doc := `00:00.000 --> 00:05.000
<v John>A

00:05.000 --> 00:10.000
<v john>B
`
	// Speaker comparison is exact; John and john do not merge.
	got := ExtractSpeakerSegments(doc)
	if len(got) != 2 {
		t.Fatalf("got %d segments, want 2: %+v", len(got), got)
	}
}

func TestExtractSpeakerSegmentsDropsUntaggedCues(t *testing.T) {
	doc := `00:00.000 --> 00:05.000
<v John>Tagged

00:05.000 --> 00:10.000
Narration without a voice tag

00:10.000 --> 00:15.000
<v John>Tagged again
`
	got := ExtractSpeakerSegments(doc)
	if len(got) != 2 {
		t.Fatalf("got %d segments, want 2: %+v", len(got), got)
	}
	// The untagged middle cue still leaves the neighbors contiguous-looking
	// only if their boundaries touch; here 5 != 10, so no merge.
	if got[0].EndTime != 5 || got[1].StartTime != 10 {
		t.Errorf("segments = %+v", got)
	}
}

func TestExtractSpeakerSegmentsVoiceTagForms(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"uppercase marker", "<V Ada>Hello", "Ada"},
		{"extra whitespace trimmed", "<v   Ada Lovelace  >Hello", "Ada Lovelace"},
		{"multi word preserved", "<v Dr. Strange Love>Hi", "Dr. Strange Love"},
		{"tag not at start ignored", "Hello <v Ada>there", ""},
		{"missing name", "<v >oops", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := speakerOf(tt.text); got != tt.want {
				t.Errorf("speakerOf(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestScanCuesTimestampForms(t *testing.T) {
	doc := `01:02:03.500 --> 01:02:04.250
<v A>long form

02:03.5 --> 02:04.25
<v A>short form
`
	cues := scanCues(doc)
	if len(cues) != 2 {
		t.Fatalf("got %d cues, want 2", len(cues))
	}
	if cues[0].start != 3723.5 || cues[0].end != 3724.25 {
		t.Errorf("cue 0 = [%v, %v], want [3723.5, 3724.25]", cues[0].start, cues[0].end)
	}
	if cues[1].start != 123.5 || cues[1].end != 124.25 {
		t.Errorf("cue 1 = [%v, %v], want [123.5, 124.25]", cues[1].start, cues[1].end)
	}
}

func TestScanCuesMalformedTimingDroppedEntirely(t *testing.T) {
	doc := `00:00,000 --> 00:05,000
<v John>SRT-style commas do not parse

00:05.000 --> 00:10.000
<v John>Good cue
`
	cues := scanCues(doc)
	if len(cues) != 1 {
		t.Fatalf("got %d cues, want 1: %+v", len(cues), cues)
	}
	if cues[0].start != 5 {
		t.Errorf("surviving cue start = %v, want 5", cues[0].start)
	}
}

func TestScanCuesNoteLinesExcludedFromPayload(t *testing.T) {
	doc := `00:00.000 --> 00:05.000
NOTE this is a comment
<v John>Actual text
note lowercase also skipped
`
	cues := scanCues(doc)
	if len(cues) != 1 {
		t.Fatalf("got %d cues, want 1", len(cues))
	}
	if cues[0].speaker != "John" {
		t.Errorf("speaker = %q, want John", cues[0].speaker)
	}
}

func TestScanCuesPayloadEndsAtNextTimingLine(t *testing.T) {
	doc := `00:00.000 --> 00:05.000
<v John>First cue text
00:05.000 --> 00:10.000
<v Jane>Back to back cue
`
	cues := scanCues(doc)
	if len(cues) != 2 {
		t.Fatalf("got %d cues, want 2", len(cues))
	}
	if cues[0].speaker != "John" || cues[1].speaker != "Jane" {
		t.Errorf("cues = %+v", cues)
	}
}

func TestScanCuesMultilinePayloadJoined(t *testing.T) {
	doc := `00:00.000 --> 00:05.000
<v John>line one
line two
`
	cues := scanCues(doc)
	if len(cues) != 1 {
		t.Fatalf("got %d cues, want 1", len(cues))
	}
	if cues[0].speaker != "John" {
		t.Errorf("speaker = %q", cues[0].speaker)
	}
}

func TestExtractSpeakerSegmentsSortedByStart(t *testing.T) {
	// Out-of-order cues still come back sorted.
	doc := `00:20.000 --> 00:25.000
<v Jane>Later

00:00.000 --> 00:05.000
<v John>Earlier
`
	got := ExtractSpeakerSegments(doc)
	if len(got) != 2 {
		t.Fatalf("got %d segments, want 2", len(got))
	}
	if got[0].Speaker != "John" || got[1].Speaker != "Jane" {
		t.Errorf("segments out of order: %+v", got)
	}
}
