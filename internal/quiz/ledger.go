package quiz

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// Placeholders are delimited by runes from the Unicode private use area.
// They never contain a bracket, a parenthesis or a backtick.
const (
	sentinelOpen  = '\uE000'
	sentinelClose = '\uE001'
)

// Ledger maps the placeholders inserted by a guard to the substrings they replaced.
// A ledger lives for a single transformation.
type Ledger struct {
	prefix       string
	placeholders []string
	originals    map[string]string
	kinds        map[string]string
	formats      map[string]func(original string) string
}

// NewLedger creates a ledger whose placeholders cannot collide with the given input.
func NewLedger(input string) *Ledger {
	return &Ledger{
		prefix:    strings.Repeat(string(sentinelOpen), longestSentinelRun(input)+1),
		originals: make(map[string]string),
		kinds:     make(map[string]string),
		formats:   make(map[string]func(string) string),
	}
}

// longestSentinelRun returns the length of the longest run of opening sentinels.
// A prefix one rune longer never matches user text.
func longestSentinelRun(input string) int {
	longest, current := 0, 0
	for _, r := range input {
		if r == sentinelOpen {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 0
		}
	}
	return longest
}

// Protect records the original text and returns the placeholder replacing it.
func (l *Ledger) Protect(kind, original string) string {
	placeholder := fmt.Sprintf("%s%s_%d%c", l.prefix, kind, len(l.placeholders), sentinelClose)
	l.placeholders = append(l.placeholders, placeholder)
	l.originals[placeholder] = original
	l.kinds[placeholder] = kind
	return placeholder
}

// Format registers how originals of the given kind are rendered by Restore.
func (l *Ledger) Format(kind string, fn func(original string) string) *Ledger {
	l.formats[kind] = fn
	return l
}

// Lookup returns the original text of a placeholder, or the placeholder itself when unknown.
func (l *Ledger) Lookup(placeholder string) string {
	if original, ok := l.originals[placeholder]; ok {
		return original
	}
	return placeholder
}

// Len returns the number of protected substrings.
func (l *Ledger) Len() int {
	return len(l.placeholders)
}

// Restore replaces every placeholder by its original text, formatted when a format is registered.
// Replacement is a single substitution pass: restored text is never scanned again.
func (l *Ledger) Restore(s string) string {
	return l.replace(s, true)
}

// Expand is similar to Restore but ignores formats.
func (l *Ledger) Expand(s string) string {
	return l.replace(s, false)
}

func (l *Ledger) replace(s string, formatted bool) string {
	return l.Substitute(s, func(kind, original string) string {
		if fn, ok := l.formats[kind]; ok && formatted {
			return fn(original)
		}
		return original
	})
}

// Substitute replaces every placeholder by the text returned by fn, in a single pass.
func (l *Ledger) Substitute(s string, fn func(kind, original string) string) string {
	if l == nil || len(l.placeholders) == 0 {
		return s
	}
	var oldnew []string
	for _, placeholder := range l.placeholders {
		oldnew = append(oldnew, placeholder, fn(l.kinds[placeholder], l.originals[placeholder]))
	}
	return strings.NewReplacer(oldnew...).Replace(s)
}

// pattern returns a regexp2 expression matching the placeholders of the given kind.
func (l *Ledger) pattern(kind string) string {
	return regexp2.Escape(l.prefix+kind+"_") + `\d+` + regexp2.Escape(string(sentinelClose))
}

// RestoreChain restores ledgers in the reverse order of their protection.
// Ledgers must be passed in protection order.
func RestoreChain(s string, ledgers ...*Ledger) string {
	for i := len(ledgers) - 1; i >= 0; i-- {
		s = ledgers[i].Restore(s)
	}
	return s
}

// expandChain is the RestoreChain counterpart of Expand.
func expandChain(s string, ledgers ...*Ledger) string {
	for i := len(ledgers) - 1; i >= 0; i-- {
		s = ledgers[i].Expand(s)
	}
	return s
}
