package runtime

import (
	"log/slog"

	"github.com/skroutz/turkish-stemmer/pkg/domain"
)

// pending is one speculative transition awaiting evaluation. Items live only
// inside a single Strip call; nothing here survives between calls.
type pending struct {
	suffixID  string
	fromState string
	toState   string
	// word is the input the transition will be evaluated against.
	word string
	// rollback is the most recent terminal stem on this path, recorded as a
	// candidate if the path later dead-ends with no live siblings.
	rollback string
	// marked flags items superseded by a deeper path; they are dropped in
	// bulk once that path confirms a stem.
	marked bool
}

// samePair reports whether two pendings represent alternative suffix choices
// over the same graph edge.
func (p pending) samePair(o pending) bool {
	return p.fromState == o.fromState && p.toState == o.toState
}

// Stripper explores one category's state graph, stripping recognized
// suffixes off a word and collecting every stem the graph accepts.
//
// The traversal is an explicit worklist, not recursion: deeper continuations
// are inserted at the front so a path is driven to its end before shallower
// siblings are considered. Termination is guaranteed because every accepted
// transition strictly shortens the word.
type Stripper struct {
	rules  *domain.RuleSet
	eval   *Evaluator
	logger *slog.Logger
}

// NewStripper creates a Stripper over the given rule set.
func NewStripper(rules *domain.RuleSet, eval *Evaluator, logger *slog.Logger) *Stripper {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Stripper{rules: rules, eval: eval, logger: logger}
}

// Strip returns the de-duplicated stem candidates for word, or [word] when
// the graph accepts nothing. An error means the rule set references a state
// or suffix that does not exist: a configuration fault, not an input fault.
func (s *Stripper) Strip(word string) ([]string, error) {
	if s.rules.Empty() {
		return []string{word}, nil
	}

	initial, err := s.rules.Initial()
	if err != nil {
		return nil, err
	}

	work := expand(initial, word, "", false)
	stems := newStemSet()

	for len(work) > 0 {
		p := work[0]
		work = work[1:]

		suffix, err := s.rules.Suffix(p.suffixID)
		if err != nil {
			return nil, err
		}
		target, err := s.rules.State(p.toState)
		if err != nil {
			return nil, err
		}

		ev := s.eval.Evaluate(p.word, suffix)
		s.logger.Debug("transition evaluated",
			"machine", s.rules.Category,
			"suffix", p.suffixID,
			"from", p.fromState,
			"to", p.toState,
			"word", p.word,
			"matched", ev.Matched,
		)

		if !ev.Matched {
			// Dead end. If this path had already passed a terminal state
			// and no sibling over the same edge is still pending, recover
			// the last known-good stem.
			if p.rollback != "" && !hasSibling(work, p) {
				unmarkAll(work)
				stems.add(p.rollback)
			}
			continue
		}

		if target.IsTerminal() {
			work = discardSiblings(work, p)
			work = discardMarked(work)
			stems.add(ev.Word)
			s.logger.Debug("stem confirmed", "machine", s.rules.Category, "stem", ev.Word)
			if len(target.Transitions) > 0 {
				work = append(expand(target, ev.Word, ev.Word, false), work...)
			}
		} else {
			// Speculative: the stem only counts if a deeper terminal is
			// reached. Siblings over the same edge are kept but marked, and
			// the inherited rollback is carried forward unchanged.
			markSiblings(work, p)
			work = append(expand(target, ev.Word, p.rollback, true), work...)
		}
	}

	if stems.empty() {
		return []string{word}, nil
	}
	return stems.items(), nil
}

// expand creates the pending transitions leaving state for word.
func expand(state domain.State, word, rollback string, marked bool) []pending {
	out := make([]pending, 0, len(state.Transitions))
	for _, t := range state.Transitions {
		out = append(out, pending{
			suffixID:  t.SuffixID,
			fromState: state.ID,
			toState:   t.ToStateID,
			word:      word,
			rollback:  rollback,
			marked:    marked,
		})
	}
	return out
}

func hasSibling(work []pending, p pending) bool {
	for _, o := range work {
		if o.samePair(p) {
			return true
		}
	}
	return false
}

func discardSiblings(work []pending, p pending) []pending {
	out := work[:0]
	for _, o := range work {
		if !o.samePair(p) {
			out = append(out, o)
		}
	}
	return out
}

func discardMarked(work []pending) []pending {
	out := work[:0]
	for _, o := range work {
		if !o.marked {
			out = append(out, o)
		}
	}
	return out
}

func markSiblings(work []pending, p pending) {
	for i := range work {
		if work[i].samePair(p) {
			work[i].marked = true
		}
	}
}

func unmarkAll(work []pending) {
	for i := range work {
		work[i].marked = false
	}
}

// stemSet is an insertion-ordered string set, so candidate order stays
// deterministic for a given rule set.
type stemSet struct {
	seen  map[string]struct{}
	order []string
}

func newStemSet() *stemSet {
	return &stemSet{seen: make(map[string]struct{})}
}

func (s *stemSet) add(w string) {
	if _, ok := s.seen[w]; ok {
		return
	}
	s.seen[w] = struct{}{}
	s.order = append(s.order, w)
}

func (s *stemSet) empty() bool {
	return len(s.order) == 0
}

func (s *stemSet) items() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
