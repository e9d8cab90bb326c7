package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyRuleSet is returned when a machine is run against a rule set with
// no states or no suffixes.
var ErrEmptyRuleSet = errors.New("empty rule set")

// UnknownStateError reports a transition that references a state id absent
// from the loaded graph. It is a fatal configuration error, never retried.
type UnknownStateError struct {
	Category Category
	StateID  string
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("%s machine: unknown state %q", e.Category, e.StateID)
}

// UnknownSuffixError reports a transition that references a suffix id absent
// from the loaded suffix table.
type UnknownSuffixError struct {
	Category Category
	SuffixID string
}

func (e *UnknownSuffixError) Error() string {
	return fmt.Sprintf("%s machine: unknown suffix %q", e.Category, e.SuffixID)
}
