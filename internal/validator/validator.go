// Package validator checks loaded rule sets for configuration faults before
// the engine ever runs, so a broken table aborts startup instead of a
// stemming call.
package validator

import (
	"fmt"
	"strings"

	"github.com/skroutz/turkish-stemmer/pkg/domain"
)

// ValidateRuleSet checks the structural integrity of one rule set: the
// initial state must exist, every transition must reference a known state
// and suffix, every suffix needs at least one non-empty pattern, and every
// state must be reachable from the initial state.
func ValidateRuleSet(rs *domain.RuleSet) error {
	if rs.Empty() {
		return fmt.Errorf("%s machine: %w", rs.Category, domain.ErrEmptyRuleSet)
	}

	var errs []string

	if _, ok := rs.States[rs.InitialStateID]; !ok {
		errs = append(errs, fmt.Sprintf("initial state %q not defined", rs.InitialStateID))
	}

	for id, sf := range rs.Suffixes {
		if id != sf.ID && sf.ID != "" {
			errs = append(errs, fmt.Sprintf("suffix %q declares mismatched id %q", id, sf.ID))
		}
		if !hasPattern(sf) {
			errs = append(errs, fmt.Sprintf("suffix %q has no pattern", id))
		}
	}

	// Crawl from the initial state; transitions to unknown states or over
	// unknown suffixes are collected rather than failing fast, so one run
	// reports every fault in the table.
	visited := make(map[string]bool)
	queue := []string{rs.InitialStateID}

	for len(queue) > 0 {
		currentID := queue[0]
		queue = queue[1:]

		if visited[currentID] {
			continue
		}
		visited[currentID] = true

		state, ok := rs.States[currentID]
		if !ok {
			// Already reported via the transition that led here.
			continue
		}

		for _, t := range state.Transitions {
			if _, ok := rs.Suffixes[t.SuffixID]; !ok {
				errs = append(errs, fmt.Sprintf("state %q: transition over unknown suffix %q", currentID, t.SuffixID))
			}
			if _, ok := rs.States[t.ToStateID]; !ok {
				errs = append(errs, fmt.Sprintf("state %q: transition to unknown state %q", currentID, t.ToStateID))
				continue
			}
			if !visited[t.ToStateID] {
				queue = append(queue, t.ToStateID)
			}
		}
	}

	for id := range rs.States {
		if !visited[id] {
			errs = append(errs, fmt.Sprintf("state %q is unreachable from %q", id, rs.InitialStateID))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s machine: found %d errors:\n- %s", rs.Category, len(errs), strings.Join(errs, "\n- "))
	}
	return nil
}

// ValidateAll validates every loaded rule set and requires the three
// pipeline categories to be present.
func ValidateAll(rules map[domain.Category]*domain.RuleSet) error {
	for _, cat := range domain.Categories() {
		rs, ok := rules[cat]
		if !ok {
			return fmt.Errorf("missing rule set for %s machine", cat)
		}
		if err := ValidateRuleSet(rs); err != nil {
			return err
		}
	}
	return nil
}

func hasPattern(sf domain.Suffix) bool {
	for _, p := range sf.Patterns {
		if p != "" {
			return true
		}
	}
	return false
}
