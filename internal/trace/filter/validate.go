package filter

import (
	"fmt"
	"strings"
	"unicode"
)

// allowedCalls are the expr builtins a step predicate may use.
var allowedCalls = map[string]struct{}{
	"len":        {},
	"lower":      {},
	"upper":      {},
	"hasPrefix":  {},
	"hasSuffix":  {},
	"trim":       {},
	"abs":        {},
	"string":     {},
	"int":        {},
	"float":      {},
	"any":        {},
	"all":        {},
	"none":       {},
	"indexOf":    {},
	"startsWith": {},
}

// Validate rejects predicates outside the read-only subset used for step
// filtering. Quoted string literals are ignored by the scan.
func Validate(src string) error {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil
	}

	code := stripStrings(src)

	illegalChars := []rune{'{', '}', ';', '@', '#', '$', '\\', '`'}
	for _, ch := range illegalChars {
		if strings.ContainsRune(code, ch) {
			return fmt.Errorf("illegal character %q", ch)
		}
	}

	for i := 0; i < len(code); i++ {
		if code[i] != '(' {
			continue
		}
		j := i - 1
		for j >= 0 && unicode.IsSpace(rune(code[j])) {
			j--
		}
		if j < 0 || !(unicode.IsLetter(rune(code[j])) || unicode.IsDigit(rune(code[j])) || code[j] == '_') {
			continue
		}
		k := j
		for k >= 0 && (unicode.IsLetter(rune(code[k])) || unicode.IsDigit(rune(code[k])) || code[k] == '_') {
			k--
		}
		if k >= 0 && code[k] == '.' {
			return fmt.Errorf("method calls are not allowed (found .%s(...))", code[k+1:j+1])
		}
		ident := code[k+1 : j+1]
		if _, ok := allowedCalls[ident]; !ok {
			return fmt.Errorf("function %q is not allowed", ident)
		}
	}

	return nil
}

// stripStrings blanks out the contents of "..." and '...' literals so the
// character scan only sees code.
func stripStrings(src string) string {
	var b strings.Builder
	var quote rune
	escape := false

	for _, r := range src {
		switch {
		case quote == 0 && (r == '"' || r == '\''):
			quote = r
			b.WriteRune(r)
		case quote != 0 && escape:
			escape = false
			b.WriteRune(' ')
		case quote != 0 && r == '\\':
			escape = true
			b.WriteRune(' ')
		case quote != 0 && r == quote:
			quote = 0
			b.WriteRune(r)
		case quote != 0:
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
