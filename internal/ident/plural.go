package ident

import "strings"

// PluralRule identifies which pluralization rule produced a result.
// Callers can surface RuleDefault hits on names that already look plural
// instead of guessing silently.
type PluralRule int

const (
	// RuleDefault appends "s".
	RuleDefault PluralRule = iota
	// RuleIrregular matched the irregular-noun table.
	RuleIrregular
	// RuleConsonantY rewrote a consonant+"y" ending to "ies".
	RuleConsonantY
	// RuleSibilant appended "es" to a sibilant ending (s, x, z, ch, sh).
	RuleSibilant
)

// irregulars is the fixed irregular-noun table. Nouns outside this table
// follow the suffix rules; already-plural-looking nouns are not detected.
var irregulars = map[string]string{
	"person": "people",
	"child":  "children",
	"man":    "men",
	"woman":  "women",
	"tooth":  "teeth",
	"foot":   "feet",
	"mouse":  "mice",
	"goose":  "geese",
}

// sibilantSuffixes take "es" rather than "s".
var sibilantSuffixes = []string{"s", "x", "z", "ch", "sh"}

// Pluralize returns the plural of a lowercase noun and the rule that
// produced it. For multi-word snake_case names only the final word is
// pluralized ("order_item" -> "order_items").
func Pluralize(word string) (string, PluralRule) {
	if i := strings.LastIndex(word, "_"); i >= 0 {
		last, rule := Pluralize(word[i+1:])
		return word[:i+1] + last, rule
	}

	if p, ok := irregulars[word]; ok {
		return p, RuleIrregular
	}

	if len(word) > 1 && strings.HasSuffix(word, "y") && !isVowel(word[len(word)-2]) {
		return word[:len(word)-1] + "ies", RuleConsonantY
	}

	for _, suf := range sibilantSuffixes {
		if strings.HasSuffix(word, suf) {
			return word + "es", RuleSibilant
		}
	}

	return word + "s", RuleDefault
}

// LooksPlural reports whether a name already ends in "s". It is a heuristic
// used to warn when the default rule would double a plural-looking name;
// such names hit RuleSibilant, so the check is about intent, not rules.
func LooksPlural(word string) bool {
	return strings.HasSuffix(word, "s")
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
