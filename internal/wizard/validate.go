package wizard

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// Characters that cannot appear in a page or component name. Full-width
// variants of the ASCII set are caught by folding to narrow form first.
const (
	forbiddenASCII = "`" + `~!@#$%^&*()+=<>?:"{},./\;'[]|`
	forbiddenCJK   = "·！＃￥¥（）\u2014：；“”‘’、，《。》？【】「」『』〈〉…"
)

// ValidateName checks a page or component name. Surrounding whitespace is
// ignored; '_' and '-' are allowed.
func ValidateName(name string) error {
	n := strings.TrimSpace(name)
	if n == "" {
		return ErrEmptyName
	}
	for _, r := range n {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return fmt.Errorf("%w: %q contains whitespace", ErrInvalidName, n)
		}
		if strings.ContainsRune(forbiddenCJK, r) || strings.ContainsRune(forbiddenASCII, narrow(r)) {
			return fmt.Errorf("%w: %q in %q", ErrInvalidName, r, n)
		}
	}
	return nil
}

func narrow(r rune) rune {
	folded, _ := utf8.DecodeRuneInString(width.Narrow.String(string(r)))
	return folded
}
