package demo

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/IlikeChooros/go-aima/internal/config"
	"github.com/IlikeChooros/go-aima/internal/render"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// Default scenario trimmed to what runs fast
func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Puzzle.Problems = cfg.Puzzle.Problems[1:]
	cfg.TicTacToe.Arena.Games = 4
	cfg.TicTacToe.Arena.Workers = 2
	return cfg
}

func run(t *testing.T, cfg *config.Config, f Func) string {
	t.Helper()
	var buf bytes.Buffer
	env := Env{Config: cfg, Out: render.Plain(&buf), Logger: zap.NewNop()}
	require.NoError(t, f(context.Background(), env))
	return buf.String()
}

func TestVacuum(t *testing.T) {
	out := run(t, testConfig(), Vacuum)

	assert.Contains(t, out, " Room A , state Dirty\n Room B , state Dirty\n")
	assert.Contains(t, out, " Placed in room A\n")
	assert.Contains(t, out, " Agent at A , room A is Dirty\n Agent cleans\n")
	assert.Contains(t, out, " Agent at B , room B is Clean\n Agent moves from B to A\n")
	assert.Equal(t, 2, strings.Count(out, "Agent cleans"))
	assert.True(t, strings.HasSuffix(out, " Agent at A , room A is Clean\n Agent moves from A to B\n"))
}

func TestTraversals(t *testing.T) {
	cfg := testConfig()
	out := run(t, cfg, BFS)
	assert.Contains(t, out, "BFS traversal starting from 'Belagavi': \n"+
		"['Belagavi', 'Khanapur', 'Hattargi', 'Kittur', 'Alnavar', 'Sankeshwar', 'Hukkeri', 'Dharwad']\n")
	assert.Contains(t, out, "BFS traversal starting from 'Dharwad': \n"+
		"['Dharwad', 'Alnavar', 'Kittur', 'Khanapur', 'Belagavi', 'Hattargi', 'Sankeshwar', 'Hukkeri']\n")

	out = run(t, cfg, DFS)
	assert.Contains(t, out, "DFS traversal starting from 'Belagavi': \n"+
		"['Belagavi', 'Khanapur', 'Alnavar', 'Dharwad', 'Kittur', 'Hattargi', 'Sankeshwar', 'Hukkeri']\n")

	cfg.Graph.DFSStarts = []string{"Mysuru"}
	var buf bytes.Buffer
	err := DFS(context.Background(), Env{Config: cfg, Out: render.Plain(&buf)})
	assert.Error(t, err)
}

func TestTicTacToe(t *testing.T) {
	out := run(t, testConfig(), TicTacToe)

	assert.Contains(t, out, "Player X, enter your move (1-9): 7\n"+
		" -------------\n | X | O | X |\n -------------\n | O | X | O |\n -------------\n | X |   |   |\n -------------\n"+
		"Player X wins!\n")
	assert.Contains(t, out, "It's a draw!\n")
	assert.Contains(t, out, " alpha-beta wins: ")
	assert.Contains(t, out, " random wins: 0\n")
}

func TestTicTacToeInvalidInput(t *testing.T) {
	cfg := testConfig()
	cfg.TicTacToe.Games = [][]int{{5, 5, 12, 1}}
	cfg.TicTacToe.Arena.Games = 0
	out := run(t, cfg, TicTacToe)

	assert.Equal(t, 2, strings.Count(out, "Invalid move. Please choose an empty cell between 1 and 9."))
	assert.Contains(t, out, "Player O, enter your move (1-9): 1\n")
	assert.Contains(t, out, "Out of moves, the game is unfinished")
	assert.NotContains(t, out, "versus")
}

func TestPuzzle(t *testing.T) {
	out := run(t, testConfig(), Puzzle)

	assert.Contains(t, out, "Number of states in 3-Puzzle problem = 4! = 24\n")
	assert.Contains(t, out, "Number of states explored by BFS = 11\n")
	assert.Contains(t, out, "Number of states explored by DFS = 6\n")
	assert.Equal(t, 3, strings.Count(out, "Number of steps in solution: 7\n"))
	assert.Contains(t, out, " Step: 0 , Move: None , g_cost: 0 + h: 6\n")
	assert.Contains(t, out, " Step: 1 , Move: up\n")
	assert.Equal(t, 3, strings.Count(out, " Solution found"))
}

func TestPuzzleParallelMatchesSequential(t *testing.T) {
	cfg := testConfig()
	sequential := run(t, cfg, Puzzle)
	cfg.Puzzle.Parallel = true
	assert.Equal(t, sequential, run(t, cfg, Puzzle))
}

func TestPuzzleFailures(t *testing.T) {
	cfg := testConfig()
	cfg.Puzzle.Algorithms = []string{"dfs"}
	cfg.Puzzle.DepthLimit = 3
	out := run(t, cfg, Puzzle)
	assert.Contains(t, out, "Solution could not be found")
	assert.Contains(t, out, "Number of DFS calls: ")

	cfg.Puzzle.DepthLimit = 0
	cfg.Puzzle.Problems[0].Initial = []int{2, 3, 1, 0}
	out = run(t, cfg, Puzzle)
	assert.Contains(t, out, "goal is not reachable")

	cfg = testConfig()
	cfg.Puzzle.Algorithms = []string{"bfs"}
	cfg.Puzzle.NodeLimit = 2
	out = run(t, cfg, Puzzle)
	assert.Contains(t, out, "Search stopped")
}

func TestAlphaBeta(t *testing.T) {
	out := run(t, testConfig(), AlphaBeta)

	assert.Contains(t, out, "\n leaf_b1, value = 3\n")
	assert.Contains(t, out, "\n Alpha-beta pruning, beta 2 <= alpha 3\n")
	assert.Contains(t, out, "\n child_b, min player, min_eval = 3\n "+rule(42)+"\n")
	assert.Contains(t, out, "The optimal value is: 3\n")
	assert.Contains(t, out, "\n child_c, min player, min_eval = 9\n")
	assert.Contains(t, out, "The optimal value is: 11\n")
	assert.Contains(t, out, "Run of another example")
	assert.NotContains(t, out, "leaf_c2")
}

func TestHillClimb(t *testing.T) {
	out := run(t, testConfig(), HillClimb)

	assert.Equal(t, 3, strings.Count(out, " Initial, x = "))
	assert.Equal(t, 3, strings.Count(out, "Best solution found, x = "))
	assert.Contains(t, out, "objective_function = -x**2 + 5\n")
	assert.Contains(t, out, "Minimization , finding valley, objective_function = x**2 - 5\n")
	assert.Contains(t, out, "-1*x**2 + 0*x + 5 = ")
	assert.Contains(t, out, "1*x**2 + 0*x + -5 = ")

	// Same seed, same narration
	assert.Equal(t, out, run(t, testConfig(), HillClimb))
}

func TestKB(t *testing.T) {
	out := run(t, testConfig(), KB)

	assert.Contains(t, out, "\n Behavior: Compilation fails with error messages indicating syntax issues\n")
	assert.Contains(t, out, "\n Error Type: Syntax Error\n")
	assert.Contains(t, out, "\n Likely causes: \n\t missing semicolon,\n\t mismatched parentheses,\n\t incorrect use of keywords\n")
	assert.Contains(t, out, "\n xyzzy: Behavior not found in Knowledge Base\n")
}

func TestWumpus(t *testing.T) {
	out := run(t, testConfig(), Wumpus)

	assert.Contains(t, out, " Run of Agent that takes no risk\n")
	assert.Contains(t, out, " Agent moves to (3, 0) , and percieves: []\n")
	assert.Contains(t, out, " Agent moves to (2, 0) , and percieves: [stench]\n")
	assert.Contains(t, out, " Agent moves to (3, 1) , and percieves: [breeze]\n")
	assert.Contains(t, out, "Agent cannot find a safe path. Climbing out.")
	assert.Contains(t, out, " Run of Agent that takes risk\n")
	assert.Contains(t, out, " Agent moves to (1, 1) , and percieves: [glitter]\n")
	assert.Contains(t, out, "Agent found gold. Climbing out.")
	assert.Contains(t, out, "Initial kb: {(3, 0): {safe}}")
}

func TestWumpusDeath(t *testing.T) {
	cfg := testConfig()
	cfg.Wumpus.SafeSearch = []bool{false}
	cfg.Wumpus.Layout.Gold.Row, cfg.Wumpus.Layout.Gold.Col = 0, 0
	out := run(t, cfg, Wumpus)
	assert.Contains(t, out, "Agent fell into a pit")
	assert.NotContains(t, out, "Climbing out")
}

func TestRegistry(t *testing.T) {
	names := make([]string, 0)
	for _, d := range All() {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"vacuum", "tictactoe", "bfs", "dfs", "puzzle", "alphabeta", "hillclimb", "kb", "wumpus"}, names)

	d, err := Lookup("kb")
	require.NoError(t, err)
	assert.Equal(t, "kb", d.Name)
	_, err = Lookup("chess")
	assert.ErrorIs(t, err, ErrUnknownDemo)
}

func TestRunAll(t *testing.T) {
	out := run(t, testConfig(), RunAll)
	for _, title := range []string{"Tic-Tac-Toe", "Alpha-beta pruning", "Wumpus world"} {
		assert.Contains(t, out, title)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	err := RunAll(ctx, Env{Config: testConfig(), Out: render.Plain(&buf)})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}
