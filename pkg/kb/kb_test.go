package kb

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultEntries(t *testing.T) {
	entries := Default()
	require.Len(t, entries, 4)
	assert.Equal(t, "Syntax Error", entries[0].ErrorType)
	assert.Equal(t, "Runtime Error: Division by Zero", entries[1].ErrorType)
	assert.Equal(t, "Segmentation Fault", entries[2].ErrorType)
	assert.Equal(t, "Logic Error", entries[3].ErrorType)
	assert.Equal(t, []string{"missing semicolon", "mismatched parentheses", "incorrect use of keywords"}, entries[0].Causes)
	assert.Len(t, entries[1].Solutions, 2)
}

func TestAsk(t *testing.T) {
	agent := NewAgent(Default())
	cases := map[string]string{
		"compilation fails":                        "Syntax Error",
		"Program crashes unexpectedly":             "Segmentation Fault",
		"program crashes when dividing by zero":    "Runtime Error: Division by Zero",
		"PRODUCES INCORRECT RESULTS":               "Logic Error",
		"segmentation fault":                       "Segmentation Fault",
		"the program runs but the output is wrong": "Logic Error",
	}
	for query, want := range cases {
		e, err := agent.Ask(query)
		require.NoError(t, err, query)
		assert.Equal(t, want, e.ErrorType, query)
	}
}

func TestAskTiesKeepOrder(t *testing.T) {
	// 'program' occurs in three entries once each, the first one wins
	e, err := NewAgent(Default()).Ask("program")
	require.NoError(t, err)
	assert.Equal(t, "Runtime Error: Division by Zero", e.ErrorType)

	ranked := NewAgent(Default()).Rank("program crashes")
	require.Len(t, ranked, 3)
	assert.Equal(t, 2, ranked[0].Count())
	assert.Equal(t, "Runtime Error: Division by Zero", ranked[0].Entry.ErrorType)
	assert.Equal(t, "Segmentation Fault", ranked[1].Entry.ErrorType)
	assert.Equal(t, 1, ranked[2].Count())
}

func TestAskSubstringAndDuplicates(t *testing.T) {
	agent := NewAgent(Default())
	// 'zero zero' counts twice, 'div' is a substring of 'division'
	ranked := agent.Rank("zero zero div")
	require.NotEmpty(t, ranked)
	assert.Equal(t, []string{"zero", "zero", "div"}, ranked[0].Words)
}

func TestAskNotFound(t *testing.T) {
	agent := NewAgent(Default())
	for _, q := range []string{"", "   ", "xyzzy quux"} {
		_, err := agent.Ask(q)
		assert.True(t, errors.Is(err, ErrBehaviorNotFound), "%q", q)
	}
}

func TestLoadAndTell(t *testing.T) {
	doc := `
entries:
  - behavior: Linker cannot resolve a symbol
    error_type: Linker Error
    causes: [missing library]
    solutions: [Add the library to the link line]
`
	entries, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	agent := NewAgent(entries)
	e, err := agent.Ask("undefined symbol at link time")
	require.NoError(t, err)
	assert.Equal(t, "Linker Error", e.ErrorType)

	require.NoError(t, agent.Tell(Entry{Behavior: "Program leaks memory", ErrorType: "Memory Leak"}))
	e, err = agent.Ask("memory leak")
	require.NoError(t, err)
	assert.Equal(t, "Memory Leak", e.ErrorType)

	assert.True(t, errors.Is(agent.Tell(Entry{Behavior: "no type"}), ErrInvalidEntries))

	_, err = Load(strings.NewReader("entries: []"))
	assert.True(t, errors.Is(err, ErrInvalidEntries))
	_, err = Load(strings.NewReader("entries: [{behavior: x}]"))
	assert.True(t, errors.Is(err, ErrInvalidEntries))
	_, err = Load(strings.NewReader("entries: {"))
	assert.True(t, errors.Is(err, ErrInvalidEntries))
}

func TestTellKeepsCallerSlice(t *testing.T) {
	entries := make([]Entry, 1, 4)
	entries[0] = Default()[0]
	agent := NewAgent(entries)

	require.NoError(t, agent.Tell(Entry{Behavior: "Program leaks memory", ErrorType: "Memory Leak"}))
	assert.Len(t, agent.Entries(), 2)
	assert.Equal(t, Entry{}, entries[:2][1], "spare capacity of the caller's slice is untouched")

	got := agent.Entries()
	got[0].ErrorType = "changed"
	assert.Equal(t, Default()[0].ErrorType, agent.Entries()[0].ErrorType)
}
