package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/IlikeChooros/go-aima/pkg/graph"
	"github.com/IlikeChooros/go-aima/pkg/hillclimb"
	"github.com/IlikeChooros/go-aima/pkg/kb"
	"github.com/IlikeChooros/go-aima/pkg/minimax"
	"github.com/IlikeChooros/go-aima/pkg/search"
	"github.com/IlikeChooros/go-aima/pkg/wumpus"
)

var ErrInvalidConfig = errors.New("invalid configuration")

//go:embed default.yaml
var defaultYAML []byte

type Config struct {
	Vacuum    VacuumConfig    `yaml:"vacuum"`
	TicTacToe TicTacToeConfig `yaml:"tictactoe"`
	Graph     GraphConfig     `yaml:"graph"`
	Puzzle    PuzzleConfig    `yaml:"puzzle"`
	AlphaBeta AlphaBetaConfig `yaml:"alphabeta"`
	HillClimb HillClimbConfig `yaml:"hillclimb"`
	KB        KBConfig        `yaml:"kb"`
	Wumpus    WumpusConfig    `yaml:"wumpus"`
}

type VacuumConfig struct {
	Steps int               `yaml:"steps" validate:"gte=0"`
	Start string            `yaml:"start" validate:"oneof=A B"`
	Rooms map[string]string `yaml:"rooms" validate:"len=2,dive,keys,oneof=A B,endkeys,oneof=Dirty Clean"`
}

type ArenaConfig struct {
	Games   uint  `yaml:"games"`
	Workers uint  `yaml:"workers" validate:"gte=1"`
	Seed    int64 `yaml:"seed"`
}

type TicTacToeConfig struct {
	Games [][]int     `yaml:"games"`
	Arena ArenaConfig `yaml:"arena"`
}

type GraphConfig struct {
	Nodes     []graph.Adjacency `yaml:"nodes" validate:"required,dive"`
	BFSStarts []string          `yaml:"bfs_starts" validate:"dive,required"`
	DFSStarts []string          `yaml:"dfs_starts" validate:"dive,required"`
}

type PuzzleProblem struct {
	Name    string `yaml:"name" validate:"required"`
	Initial []int  `yaml:"initial" validate:"required,min=4"`
	Goal    []int  `yaml:"goal" validate:"required,min=4"`
}

type PuzzleConfig struct {
	Problems        []PuzzleProblem `yaml:"problems" validate:"dive"`
	Algorithms      []string        `yaml:"algorithms" validate:"dive,oneof=bfs dfs astar"`
	DepthLimit      int             `yaml:"depth_limit" validate:"gte=0"`
	MaxPrintedSteps int             `yaml:"max_printed_steps" validate:"gte=1"`
	// Node budget per search, 0 means unlimited
	NodeLimit  uint32 `yaml:"node_limit"`
	MovetimeMs int    `yaml:"movetime_ms"`
	// Run the algorithms of a problem concurrently
	Parallel bool `yaml:"parallel"`
}

// Search budget of a single solver run
func (p PuzzleConfig) Limits() *search.Limits {
	limits := search.DefaultLimits()
	if p.NodeLimit > 0 {
		limits.SetNodes(p.NodeLimit)
	}
	if p.MovetimeMs > 0 {
		limits.SetMovetime(p.MovetimeMs)
	}
	return limits
}

type Tree struct {
	Name  string        `yaml:"name" validate:"required"`
	Depth int           `yaml:"depth" validate:"gte=0"`
	Root  *minimax.Node `yaml:"root" validate:"required"`
}

type AlphaBetaConfig struct {
	Trees []Tree `yaml:"trees" validate:"dive"`
}

type ClimbRun struct {
	Objective         string `yaml:"objective" validate:"oneof=inverted-parabola two-peaks parabola"`
	Mode              string `yaml:"mode" validate:"oneof=maximize minimize"`
	hillclimb.Options `yaml:",inline"`
}

type HillClimbConfig struct {
	Seed int64      `yaml:"seed"`
	Runs []ClimbRun `yaml:"runs" validate:"dive"`
}

type KBConfig struct {
	Queries []string   `yaml:"queries"`
	Entries []kb.Entry `yaml:"entries" validate:"dive"`
}

type WumpusConfig struct {
	SafeSearch []bool        `yaml:"safe_search"`
	Layout     wumpus.Layout `yaml:"layout"`
}

var validate = validator.New()

// Built-in scenario
func Default() *Config {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Decode a YAML document on top of the defaults
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultYAML, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode the default config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode the config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load the scenario file, an empty path gives the defaults
func Load(path string) (*Config, error) {
	if path == "" {
		return Parse(nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read the config file: %w", err)
	}
	return Parse(data)
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Wumpus.Layout.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := graph.FromAdjacency(c.Graph.Nodes); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) String() string {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err.Error()
	}
	return string(data)
}
