// Package slug derives URL slugs from Ukrainian cake names.
package slug

import (
	"fmt"
	"regexp"
	"strings"
)

// FallbackSlug is used when a name yields no usable characters.
const FallbackSlug = "cake"

// ukrToLatin maps lowercase Ukrainian letters to their Latin transliteration.
// Multi-letter outputs follow the national romanization conventions.
var ukrToLatin = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "h", 'ґ': "g",
	'д': "d", 'е': "e", 'є': "ye", 'ж': "zh", 'з': "z",
	'и': "y", 'і': "i", 'ї': "yi", 'й': "y", 'к': "k",
	'л': "l", 'м': "m", 'н': "n", 'о': "o", 'п': "p",
	'р': "r", 'с': "s", 'т': "t", 'у': "u", 'ф': "f",
	'х': "kh", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "shch",
	'ь': "", 'ю': "yu", 'я': "ya", '\'': "",
}

var (
	nonAlnum     = regexp.MustCompile(`[^a-z0-9]+`)
	multiHyphen  = regexp.MustCompile(`-{2,}`)
	cakeStopword = []string{"торт", "tort"}
)

// Transliterate converts a Ukrainian string to Latin, lowercasing first.
// Characters without a mapping pass through unchanged.
func Transliterate(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if latin, ok := ukrToLatin[r]; ok {
			b.WriteString(latin)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Generate builds a base slug from a cake name: transliterate, drop the
// generic word for cake, keep [a-z0-9] runs joined by single hyphens. An
// empty result falls back to "cake".
func Generate(name string) string {
	s := Transliterate(name)
	for _, word := range cakeStopword {
		s = strings.ReplaceAll(s, word, "")
	}
	s = nonAlnum.ReplaceAllString(s, "-")
	s = multiHyphen.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return FallbackSlug
	}
	return s
}

// AssignUnique returns the base slug if free, otherwise probes base-1,
// base-2 and so on. taken reports whether a candidate is already used by
// another record.
func AssignUnique(name string, taken func(candidate string) (bool, error)) (string, error) {
	base := Generate(name)
	candidate := base
	for i := 1; ; i++ {
		inUse, err := taken(candidate)
		if err != nil {
			return "", err
		}
		if !inUse {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
