package hymnal

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// apostrophes and commas are the only punctuation the slug rule removes;
// everything else, accents included, passes through.
var slugStripper = strings.NewReplacer("'", "", "’", "", ",", "")

// Slug derives the link path segment for a hymn title: lowercase, strip
// apostrophes and commas, collapse whitespace runs to single hyphens, NFC
// normalization. Downstream link resolution depends on this exact rule, so
// it must not be "improved" — e.g. "Alleluia, Cristo è risorto!" becomes
// "alleluia-cristo-è-risorto!".
func Slug(title string) string {
	s := strings.ToLower(title)
	s = slugStripper.Replace(s)
	s = strings.Join(strings.Fields(s), "-")
	return norm.NFC.String(s)
}

// LinkPath returns the relative link to a hymn's lyrics page.
func LinkPath(title string) string {
	return "/../../canti/testo/" + Slug(title)
}
