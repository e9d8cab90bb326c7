package domain

// Category identifies one of the three suffix machines the pipeline runs.
type Category string

const (
	// CategoryNominalVerb covers suffixes a noun takes when used as a verb
	// (e.g. "çocuğuymuşum": çocuğu + ymuş + um).
	CategoryNominalVerb Category = "nominal_verb"
	// CategoryNoun covers the nominal inflection suffixes (plural,
	// possessive, case).
	CategoryNoun Category = "noun"
	// CategoryDerivational covers the small set of derivational suffixes.
	CategoryDerivational Category = "derivational"
)

// Categories lists the pipeline stages in execution order.
func Categories() []Category {
	return []Category{CategoryNominalVerb, CategoryNoun, CategoryDerivational}
}

// Transition is an edge of a suffix state graph: stripping SuffixID moves
// the traversal to ToStateID. Targets are referenced by id only; the graph
// may contain cycles across different suffix paths.
type Transition struct {
	SuffixID  string `json:"suffix" yaml:"suffix"`
	ToStateID string `json:"to" yaml:"to"`
}

// State is a node of a suffix state graph.
type State struct {
	ID string `json:"id" yaml:"id"`

	// Terminal marks states at which the current word is a valid stem
	// candidate. A state with no outgoing transitions is implicitly
	// terminal.
	Terminal bool `json:"terminal" yaml:"terminal"`

	Transitions []Transition `json:"transitions,omitempty" yaml:"transitions,omitempty"`
}

// IsTerminal reports whether a traversal may stop at s.
func (s State) IsTerminal() bool {
	return s.Terminal || len(s.Transitions) == 0
}

// RuleSet bundles one category's suffix table and state graph.
// A RuleSet is loaded once and never mutated afterwards; concurrent readers
// need no locking.
type RuleSet struct {
	Category       Category          `json:"category" yaml:"category"`
	InitialStateID string            `json:"initial" yaml:"initial"`
	States         map[string]State  `json:"states" yaml:"states"`
	Suffixes       map[string]Suffix `json:"suffixes" yaml:"suffixes"`
}

// Empty reports whether rs carries no states or no suffixes.
func (rs *RuleSet) Empty() bool {
	return rs == nil || len(rs.States) == 0 || len(rs.Suffixes) == 0
}

// State resolves a state id. A missing id is a configuration error.
func (rs *RuleSet) State(id string) (State, error) {
	st, ok := rs.States[id]
	if !ok {
		return State{}, &UnknownStateError{Category: rs.Category, StateID: id}
	}
	return st, nil
}

// Suffix resolves a suffix id. A missing id is a configuration error.
func (rs *RuleSet) Suffix(id string) (Suffix, error) {
	sf, ok := rs.Suffixes[id]
	if !ok {
		return Suffix{}, &UnknownSuffixError{Category: rs.Category, SuffixID: id}
	}
	return sf, nil
}

// Initial resolves the graph's initial state.
func (rs *RuleSet) Initial() (State, error) {
	return rs.State(rs.InitialStateID)
}
