package manifest

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// PlaceholderLabel is used when a range carries no usable label at all.
const PlaceholderLabel = "Untitled Chapter"

// pickLabel resolves a language map to a single display string: the first
// non-empty string under the preferred language if one matches, otherwise the
// first non-empty string found scanning keys in sorted order. Empty string
// when nothing usable exists.
func pickLabel(label Label, pref language.Tag) string {
	if len(label) == 0 {
		return ""
	}

	keys := make([]string, 0, len(label))
	for k := range label {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// Tag matching lets an en-US label satisfy an en preference. Keys that
	// are not valid language tags (e.g. "none") only participate in the
	// fallback scan.
	var tagged []string
	var tags []language.Tag
	for _, k := range keys {
		tag, err := language.Parse(k)
		if err != nil || tag == language.Und {
			continue
		}
		tagged = append(tagged, k)
		tags = append(tags, tag)
	}
	if len(tags) > 0 {
		_, idx, conf := language.NewMatcher(tags).Match(pref)
		if conf >= language.High {
			if s := firstEntry(label[tagged[idx]]); s != "" {
				return s
			}
		}
	}

	for _, k := range keys {
		if s := firstEntry(label[k]); s != "" {
			return s
		}
	}
	return ""
}

// firstEntry returns the leading entry of a label list, or "" when the list
// is empty or leads with blank text. Only the first entry counts; a list
// whose first string is blank does not fall through to later entries.
func firstEntry(values []string) string {
	if len(values) == 0 || strings.TrimSpace(values[0]) == "" {
		return ""
	}
	return values[0]
}
