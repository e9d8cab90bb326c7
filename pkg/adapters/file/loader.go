// Package file loads rule sets and word lists from YAML documents on any
// fs.FS: one <category>.yaml per suffix machine plus a wordlists.yaml.
package file

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/skroutz/turkish-stemmer/pkg/domain"
)

// Loader implements ports.TableLoader over a filesystem.
type Loader struct {
	fsys fs.FS
}

// New creates a Loader reading from fsys. Works with embedded filesystems
// as well as os.DirFS.
func New(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// NewDir creates a Loader reading from a directory on the host filesystem.
func NewDir(dir string) *Loader {
	return New(os.DirFS(dir))
}

// -- YAML document shapes --
//
// Patterns and optional letters are written as compact alternations
// ("lar|ler", "ı|i|u|ü") and split during conversion. YAML is first
// unmarshalled into generic maps and then decoded with mapstructure, so
// unknown keys surface as errors instead of being dropped silently.

type ruleSetDoc struct {
	Category string      `mapstructure:"category"`
	Initial  string      `mapstructure:"initial"`
	Suffixes []suffixDoc `mapstructure:"suffixes"`
	States   []stateDoc  `mapstructure:"states"`
}

type suffixDoc struct {
	ID             string `mapstructure:"id"`
	Name           string `mapstructure:"name"`
	Pattern        string `mapstructure:"pattern"`
	CheckHarmony   bool   `mapstructure:"check_harmony"`
	OptionalLetter string `mapstructure:"optional_letter"`
}

type stateDoc struct {
	ID          string          `mapstructure:"id"`
	Terminal    bool            `mapstructure:"terminal"`
	Transitions []transitionDoc `mapstructure:"transitions"`
}

type transitionDoc struct {
	Suffix string `mapstructure:"suffix"`
	To     string `mapstructure:"to"`
}

type wordListsDoc struct {
	Protected           []string `mapstructure:"protected"`
	HarmonyExceptions   []string `mapstructure:"harmony_exceptions"`
	DevoicingExceptions []string `mapstructure:"devoicing_exceptions"`
	Overrides           []string `mapstructure:"overrides"`
}

// LoadRuleSet reads <category>.yaml and converts it to a domain rule set.
func (l *Loader) LoadRuleSet(category domain.Category) (*domain.RuleSet, error) {
	name := string(category) + ".yaml"

	var doc ruleSetDoc
	if err := l.decode(name, &doc); err != nil {
		return nil, err
	}

	if doc.Category != "" && doc.Category != string(category) {
		return nil, fmt.Errorf("%s: declares category %q, expected %q", name, doc.Category, category)
	}

	rs := &domain.RuleSet{
		Category:       category,
		InitialStateID: doc.Initial,
		States:         make(map[string]domain.State, len(doc.States)),
		Suffixes:       make(map[string]domain.Suffix, len(doc.Suffixes)),
	}

	for _, sd := range doc.Suffixes {
		if sd.ID == "" {
			return nil, fmt.Errorf("%s: suffix missing id", name)
		}
		if _, dup := rs.Suffixes[sd.ID]; dup {
			return nil, fmt.Errorf("%s: duplicate suffix id %q", name, sd.ID)
		}
		rs.Suffixes[sd.ID] = domain.Suffix{
			ID:              sd.ID,
			Name:            sd.Name,
			Patterns:        splitAlternation(sd.Pattern),
			CheckHarmony:    sd.CheckHarmony,
			OptionalLetters: splitAlternation(sd.OptionalLetter),
		}
	}

	for _, st := range doc.States {
		if st.ID == "" {
			return nil, fmt.Errorf("%s: state missing id", name)
		}
		if _, dup := rs.States[st.ID]; dup {
			return nil, fmt.Errorf("%s: duplicate state id %q", name, st.ID)
		}
		transitions := make([]domain.Transition, 0, len(st.Transitions))
		for _, t := range st.Transitions {
			transitions = append(transitions, domain.Transition{
				SuffixID:  t.Suffix,
				ToStateID: t.To,
			})
		}
		rs.States[st.ID] = domain.State{
			ID:          st.ID,
			Terminal:    st.Terminal,
			Transitions: transitions,
		}
	}

	return rs, nil
}

// LoadWordLists reads wordlists.yaml.
func (l *Loader) LoadWordLists() (*domain.WordLists, error) {
	var doc wordListsDoc
	if err := l.decode("wordlists.yaml", &doc); err != nil {
		return nil, err
	}
	return &domain.WordLists{
		Protected:           domain.NewWordSet(doc.Protected...),
		HarmonyExceptions:   domain.NewWordSet(doc.HarmonyExceptions...),
		DevoicingExceptions: domain.NewWordSet(doc.DevoicingExceptions...),
		Overrides:           domain.NewWordSet(doc.Overrides...),
	}, nil
}

// decode unmarshals one YAML file into out via a generic map, rejecting
// unused keys.
func (l *Loader) decode(name string, out any) error {
	raw, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	var generic map[string]any
	if err := yaml.Unmarshal(raw, &generic); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: true,
	})
	if err != nil {
		return fmt.Errorf("failed to build decoder for %s: %w", name, err)
	}
	if err := dec.Decode(generic); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return nil
}

func splitAlternation(pattern string) []string {
	if pattern == "" {
		return nil
	}
	parts := strings.Split(pattern, "|")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
