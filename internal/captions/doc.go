// Package captions extracts speaker attribution from caption track text.
//
// A forward scan tokenizes the document into timed cues, a leading voice tag
// supplies each cue's speaker, and consecutive same-speaker cues that touch
// exactly on the timeline merge into continuous segments. Cues without a
// voice tag and cues with malformed timing lines are dropped silently.
package captions
