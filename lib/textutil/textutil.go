package textutil

import (
	"regexp"
	"strings"

	"github.com/antzucaro/matchr"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// NormalizeLabel turns a portal field label like "Registration Number:"
// into a stable key like "registration_number".
func NormalizeLabel(label string) string {
	label = strings.ToLower(label)
	label = strings.Trim(label, " \n\t")
	label = strings.TrimSuffix(label, ":")
	label = strings.Trim(label, " \n\t")
	return whitespaceRegex.ReplaceAllString(label, "_")
}

// similarity below which two labels are considered unrelated
const labelMatchThreshold = 0.88

// CanonicalLabel matches a normalized label against a set of canonical
// keys, tolerating the minor spelling drift the portal exhibits between
// terms ("program" vs "programme" and the like). Returns "" when nothing
// comes close enough.
func CanonicalLabel(label string, canonical []string) string {
	for _, c := range canonical {
		if label == c {
			return c
		}
	}

	best := ""
	var bestScore float64
	for _, c := range canonical {
		score := matchr.JaroWinkler(label, c, false)
		if score > bestScore {
			bestScore = score
			best = c
		}
	}
	if bestScore < labelMatchThreshold {
		return ""
	}
	return best
}
