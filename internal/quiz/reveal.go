package quiz

import (
	"fmt"
	"strconv"
	"unicode/utf16"
)

// Mode controls how blanks are meant to be displayed.
type Mode string

const (
	// ModeInput renders blanks as fill-in inputs validated against the answer.
	ModeInput Mode = "input"
	// ModeRead renders blanks as underlines. Answers are not leaked in the output.
	ModeRead Mode = "read"
)

// ParseMode converts a mode name.
func ParseMode(value string) (Mode, error) {
	switch Mode(value) {
	case ModeInput, ModeRead:
		return Mode(value), nil
	case "":
		return ModeInput, nil
	}
	return "", fmt.Errorf("unknown mode %q", value)
}

// RevealPolicy decides how many tokens are hidden.
type RevealPolicy struct {
	Mode Mode
	// Probability in percentage points that a non-empty token is hidden.
	HiddenPercent int
}

// DefaultPolicy hides half of tokens.
var DefaultPolicy = RevealPolicy{
	Mode:          ModeInput,
	HiddenPercent: 50,
}

func (p RevealPolicy) String() string {
	return fmt.Sprintf("%s:%d", p.Mode, p.HiddenPercent)
}

// Hidden reports if the token with the given answer at the given position must be hidden.
//
// The decision is a pure function of its arguments so that the same note always renders
// the same blanks. The hash is computed on UTF-16 code units: h = h*31 + unit (uint32).
func Hidden(answer string, ordinal int, hiddenPercent int) bool {
	if hiddenPercent <= 0 {
		return false
	}
	if hiddenPercent >= 100 {
		return true
	}
	return int(revealHash(answer+"::"+strconv.Itoa(ordinal))%100) < hiddenPercent
}

func revealHash(key string) uint32 {
	var h uint32
	for _, unit := range utf16.Encode([]rune(key)) {
		h = h*31 + uint32(unit)
	}
	return h
}
