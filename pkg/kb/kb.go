package kb

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	ErrBehaviorNotFound = errors.New("behavior not found")
	ErrInvalidEntries   = errors.New("invalid knowledge base")
)

//go:embed entries.yaml
var defaultEntries []byte

type Entry struct {
	Behavior  string   `yaml:"behavior" validate:"required"`
	ErrorType string   `yaml:"error_type" validate:"required"`
	Causes    []string `yaml:"causes" validate:"dive,required"`
	Solutions []string `yaml:"solutions" validate:"dive,required"`
}

// Text the query words are matched against
func (e Entry) searchText() string {
	return strings.ToLower(e.Behavior + " " + e.ErrorType)
}

type file struct {
	Entries []Entry `yaml:"entries" validate:"required,min=1,dive"`
}

var validate = validator.New()

// Decode a YAML document with a top level 'entries' list
func Load(r io.Reader) ([]Entry, error) {
	var f file
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEntries, err)
	}
	if err := Validate(f.Entries); err != nil {
		return nil, err
	}
	return f.Entries, nil
}

func Validate(entries []Entry) error {
	if err := validate.Struct(file{Entries: entries}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEntries, err)
	}
	return nil
}

// Built-in entries about C compile and run time errors
func Default() []Entry {
	entries, err := Load(strings.NewReader(string(defaultEntries)))
	if err != nil {
		panic(err)
	}
	return entries
}

type Match struct {
	Entry Entry
	// Query words found in the entry, repeated words count each time
	Words []string
}

func (m Match) Count() int {
	return len(m.Words)
}

// Keyword matching agent over a fixed list of entries, no inference
type Agent struct {
	entries []Entry
	logger  *zap.Logger
}

func NewAgent(entries []Entry) *Agent {
	return &Agent{entries: slices.Clone(entries), logger: zap.NewNop()}
}

func (a *Agent) SetLogger(logger *zap.Logger) *Agent {
	if logger == nil {
		logger = zap.NewNop()
	}
	a.logger = logger
	return a
}

func (a *Agent) Entries() []Entry {
	return slices.Clone(a.entries)
}

// Tell the agent a new entry, it is matched after the existing ones
func (a *Agent) Tell(e Entry) error {
	if err := validate.Struct(e); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEntries, err)
	}
	a.entries = append(a.entries, e)
	return nil
}

// Entries with at least one matching word, best first, ties in knowledge base order
func (a *Agent) Rank(behavior string) []Match {
	words := strings.Fields(strings.ToLower(behavior))
	var matches []Match
	for _, e := range a.entries {
		text := e.searchText()
		var found []string
		for _, w := range words {
			if strings.Contains(text, w) {
				found = append(found, w)
			}
		}
		if len(found) > 0 {
			matches = append(matches, Match{Entry: e, Words: found})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Count() > matches[j].Count()
	})
	return matches
}

// Entry matching most of the query words
func (a *Agent) Ask(behavior string) (Entry, error) {
	matches := a.Rank(behavior)
	if len(matches) == 0 {
		a.logger.Debug("no entry matched", zap.String("behavior", behavior))
		return Entry{}, fmt.Errorf("%w: %q", ErrBehaviorNotFound, behavior)
	}
	best := matches[0]
	a.logger.Debug("entry matched",
		zap.String("behavior", behavior),
		zap.String("error_type", best.Entry.ErrorType),
		zap.Strings("words", best.Words),
	)
	return best.Entry, nil
}
