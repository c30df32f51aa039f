package rules

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Rule is a life-like transition rule expressed as birth and survival neighbor counts
type Rule struct {
	Birth    [9]bool
	Survival [9]bool
}

// Conway is the classic B3/S23 rule
var Conway = Rule{
	Birth:    [9]bool{3: true},
	Survival: [9]bool{2: true, 3: true},
}

// Apply returns the next state of a cell with the given live neighbor count
func (r Rule) Apply(neighbors int, alive bool) bool {
	if neighbors < 0 || neighbors > 8 {
		return false
	}
	if alive {
		return r.Survival[neighbors]
	}
	return r.Birth[neighbors]
}

// String renders the rule in B/S notation, e.g. "B3/S23"
func (r Rule) String() string {
	var sb strings.Builder
	sb.WriteByte('B')
	for n, ok := range r.Birth {
		if ok {
			sb.WriteString(strconv.Itoa(n))
		}
	}
	sb.WriteString("/S")
	for n, ok := range r.Survival {
		if ok {
			sb.WriteString(strconv.Itoa(n))
		}
	}
	return sb.String()
}

// ParseRule parses B/S notation such as "B3/S23". An empty string yields Conway.
func ParseRule(s string) (Rule, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return Conway, nil
	}

	birth, survival, ok := strings.Cut(s, "/")
	if !ok || !strings.HasPrefix(birth, "B") || !strings.HasPrefix(survival, "S") {
		return Rule{}, errors.Errorf("[ParseRule] expected B<digits>/S<digits>, got %q", s)
	}

	var r Rule
	if err := parseCounts(birth[1:], &r.Birth); err != nil {
		return Rule{}, errors.Wrapf(err, "[ParseRule] birth counts in %q", s)
	}
	if err := parseCounts(survival[1:], &r.Survival); err != nil {
		return Rule{}, errors.Wrapf(err, "[ParseRule] survival counts in %q", s)
	}
	return r, nil
}

func parseCounts(digits string, into *[9]bool) error {
	for _, c := range digits {
		if c < '0' || c > '8' {
			return errors.Errorf("invalid neighbor count %q", c)
		}
		into[c-'0'] = true
	}
	return nil
}
