// Package manifest models hierarchical media presentation manifests and
// resolves their nested range structures into flat chapter lists.
//
// The resolver walks every range tree in document order, synthesizes at most
// one chapter per range from its first temporally-fragmented canvas child,
// back-fills open-ended spans from the canvas's declared duration, and sorts
// the result by start time. Anything malformed is skipped silently; the only
// failure shape is an empty list.
//
// Manifests decode from JSON or, for hand-written fixtures, YAML.
package manifest
