package engine_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/engine"
	"github.com/katalvlaran/pathviz/gridgraph"
	"github.com/katalvlaran/pathviz/search"
)

func mustGrid(t *testing.T, rows ...string) *gridgraph.GridGraph {
	t.Helper()
	gg, err := gridgraph.From2D(rows, gridgraph.Conn8)
	require.NoError(t, err)
	return gg
}

func endpoints(t *testing.T, gg *gridgraph.GridGraph) (gridgraph.Cell, gridgraph.Cell) {
	t.Helper()
	s, ok := gg.StartCell()
	require.True(t, ok)
	tg, ok := gg.TargetCell()
	require.True(t, ok)
	return s, tg
}

var open5 = []string{
	"S....",
	".....",
	".....",
	".....",
	"....T",
}

//----------------------------------------------------------------------------//
// Start Validation
//----------------------------------------------------------------------------//

// TestStart_Errors checks every rejected Start leaves the engine Idle.
func TestStart_Errors(t *testing.T) {
	gg := mustGrid(t,
		"S.#",
		".X.",
		"..T",
	)
	s, tg := endpoints(t, gg)

	cases := []struct {
		name   string
		v      search.Variant
		grid   engine.Grid
		start  gridgraph.Cell
		target gridgraph.Cell
		opts   []engine.Option
		want   error
	}{
		{"NilGrid", search.BFS, nil, s, tg, nil, engine.ErrNilGrid},
		{"StartOutOfBounds", search.BFS, gg, gridgraph.Cell{Row: -1}, tg, nil, engine.ErrInvalidEndpoints},
		{"TargetOutOfBounds", search.BFS, gg, s, gridgraph.Cell{Row: 3, Col: 3}, nil, engine.ErrInvalidEndpoints},
		{"StartOnWall", search.BFS, gg, gridgraph.Cell{Row: 0, Col: 2}, tg, nil, engine.ErrInvalidEndpoints},
		{"TargetOnObstacle", search.BFS, gg, s, gridgraph.Cell{Row: 1, Col: 1}, nil, engine.ErrInvalidEndpoints},
		{"SameCell", search.BFS, gg, s, s, nil, engine.ErrInvalidEndpoints},
		{"UnknownVariant", search.Variant(99), gg, s, tg, nil, search.ErrUnknownVariant},
		{"BadSearchOption", search.DLS, gg, s, tg,
			[]engine.Option{engine.WithSearchOptions(search.WithDepthLimit(-2))}, search.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := engine.New(tc.opts...)
			err := e.Start(tc.v, tc.grid, tc.start, tc.target)
			require.ErrorIs(t, err, tc.want)
			require.Equal(t, engine.Idle, e.State())
		})
	}
}

// TestStep_NotRunning rejects Step in Idle, Succeeded and Failed.
func TestStep_NotRunning(t *testing.T) {
	e := engine.New()
	require.ErrorIs(t, e.Step(), engine.ErrNotRunning)

	gg := mustGrid(t, "S.T")
	s, tg := endpoints(t, gg)
	require.NoError(t, e.Start(search.BFS, gg, s, tg))
	require.NoError(t, e.Run())
	require.Equal(t, engine.Succeeded, e.State())
	require.ErrorIs(t, e.Step(), engine.ErrNotRunning)

	walled := mustGrid(t, "S#T")
	s, tg = endpoints(t, walled)
	require.NoError(t, e.Start(search.BFS, walled, s, tg))
	require.NoError(t, e.Run())
	require.Equal(t, engine.Failed, e.State())
	require.ErrorIs(t, e.Step(), engine.ErrNotRunning)
}

//----------------------------------------------------------------------------//
// Lifecycle
//----------------------------------------------------------------------------//

// TestLifecycle_Transitions records the hook sequence across two runs.
func TestLifecycle_Transitions(t *testing.T) {
	var seen []string
	e := engine.New(engine.WithOnTransition(func(from, to engine.State) {
		seen = append(seen, from.String()+"→"+to.String())
	}))
	gg := mustGrid(t, open5...)
	s, tg := endpoints(t, gg)

	require.NoError(t, e.Start(search.BFS, gg, s, tg))
	require.NoError(t, e.Run())
	require.NoError(t, e.Restart())
	e.Reset()

	require.Equal(t, []string{
		"idle→running",
		"running→succeeded",
		"succeeded→idle",
		"idle→running",
		"running→idle",
	}, seen)
}

// TestRun_OpenGrid checks path and stats on the 5×5 open grid.
func TestRun_OpenGrid(t *testing.T) {
	gg := mustGrid(t, open5...)
	s, tg := endpoints(t, gg)

	for _, tc := range []struct {
		v    search.Variant
		cost float64
	}{
		{search.BFS, 4 * math.Sqrt2},
		{search.UCS, 4 * math.Sqrt2},
		{search.IDDFS, 4 * math.Sqrt2},
		{search.Bidirectional, 4 * math.Sqrt2},
	} {
		t.Run(tc.v.String(), func(t *testing.T) {
			e := engine.New()
			require.NoError(t, e.Start(tc.v, gg, s, tg))
			require.NoError(t, e.Run())
			require.Equal(t, engine.Succeeded, e.State())

			p, ok := e.Path()
			require.True(t, ok)
			require.Equal(t, 4, p.Len())
			require.True(t, e.OnPath(gridgraph.Cell{Row: 2, Col: 2}))

			snap := e.Snapshot()
			assert.Equal(t, p.Cells, snap.Path)
			assert.Equal(t, 4, snap.Stats.PathLength)
			assert.InDelta(t, tc.cost, snap.Stats.PathCost, 1e-9)
			assert.Positive(t, snap.Stats.Steps)
			assert.GreaterOrEqual(t, snap.Stats.Steps, snap.Stats.Expanded-1)
		})
	}
}

// TestReset_ClearsView returns to an empty Idle view and allows Restart.
func TestReset_ClearsView(t *testing.T) {
	gg := mustGrid(t, open5...)
	s, tg := endpoints(t, gg)
	e := engine.New()
	require.NoError(t, e.Start(search.DFS, gg, s, tg))
	require.NoError(t, e.Run())

	e.Reset()
	snap := e.Snapshot()
	require.Equal(t, engine.Idle, snap.State)
	require.Empty(t, snap.Frontier)
	require.Empty(t, snap.Visited)
	require.Nil(t, snap.Path)
	require.False(t, snap.HasCurrent)
	require.Equal(t, engine.Stats{DepthLimit: -1}, snap.Stats)
	_, ok := e.Path()
	require.False(t, ok)

	require.NoError(t, e.Restart())
	require.Equal(t, engine.Running, e.State())
}

//----------------------------------------------------------------------------//
// Snapshot
//----------------------------------------------------------------------------//

// TestSnapshot_Idempotent takes repeated snapshots between steps.
func TestSnapshot_Idempotent(t *testing.T) {
	gg := mustGrid(t, open5...)
	s, tg := endpoints(t, gg)
	e := engine.New()
	require.NoError(t, e.Start(search.UCS, gg, s, tg))

	for e.State() == engine.Running {
		a := e.Snapshot()
		b := e.Snapshot()
		require.Equal(t, a, b)

		// A caller mutating its copy must not leak into the engine.
		if len(a.Frontier) > 0 {
			a.Frontier[0] = gridgraph.Cell{Row: 99, Col: 99}
			require.Equal(t, b, e.Snapshot())
		}
		require.NoError(t, e.Step())
	}
	require.Equal(t, e.Snapshot(), e.Snapshot())
}

// TestSnapshot_InitialFrontier seeds the frontier with Start only.
func TestSnapshot_InitialFrontier(t *testing.T) {
	gg := mustGrid(t, open5...)
	s, tg := endpoints(t, gg)
	e := engine.New()
	require.NoError(t, e.Start(search.BFS, gg, s, tg))

	snap := e.Snapshot()
	require.Equal(t, []gridgraph.Cell{s}, snap.Frontier)
	require.Empty(t, snap.Visited)
	require.Empty(t, snap.BackFrontier)

	require.NoError(t, e.Step())
	snap = e.Snapshot()
	require.Equal(t, []gridgraph.Cell{s}, snap.Visited)
	require.Equal(t, []gridgraph.Cell{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}, snap.Frontier)
	require.True(t, snap.HasCurrent)
	require.Equal(t, s, snap.Current)
	require.Equal(t, 1, snap.Stats.Expanded)
}

// TestSnapshot_BidirectionalSides keeps Start-side and Target-side sets apart.
func TestSnapshot_BidirectionalSides(t *testing.T) {
	gg := mustGrid(t, open5...)
	s, tg := endpoints(t, gg)
	e := engine.New()
	require.NoError(t, e.Start(search.Bidirectional, gg, s, tg))

	snap := e.Snapshot()
	require.Equal(t, []gridgraph.Cell{s}, snap.Frontier)
	require.Equal(t, []gridgraph.Cell{tg}, snap.BackFrontier)

	require.NoError(t, e.Step()) // forward layer 0
	require.NoError(t, e.Step()) // backward layer 0
	snap = e.Snapshot()
	require.Equal(t, []gridgraph.Cell{s}, snap.Visited)
	require.Equal(t, []gridgraph.Cell{tg}, snap.BackVisited)
	require.Len(t, snap.BackFrontier, 3)
	require.Equal(t, 2, snap.Stats.Expanded)
}

// TestSnapshot_IDDFSDeepening empties the sets on every new iteration.
func TestSnapshot_IDDFSDeepening(t *testing.T) {
	gg := mustGrid(t, open5...)
	s, tg := endpoints(t, gg)
	e := engine.New()
	require.NoError(t, e.Start(search.IDDFS, gg, s, tg))
	require.Equal(t, 0, e.Snapshot().Stats.DepthLimit)

	require.NoError(t, e.Step()) // limit 0: expand Start, cut off
	snap := e.Snapshot()
	require.Equal(t, []gridgraph.Cell{s}, snap.Visited)
	require.Empty(t, snap.Frontier)

	require.NoError(t, e.Step()) // deepen to 1
	snap = e.Snapshot()
	require.Empty(t, snap.Visited)
	require.Equal(t, []gridgraph.Cell{s}, snap.Frontier)
	require.False(t, snap.HasCurrent)
	require.Equal(t, 1, snap.Stats.DepthLimit)
}

// TestOnStep fires once per Step with that step's events.
func TestOnStep(t *testing.T) {
	calls, expanded := 0, 0
	e := engine.New(engine.WithOnStep(func(evs []search.Event) {
		calls++
		for _, ev := range evs {
			if ev.Kind == search.Expanded {
				expanded++
			}
		}
	}))
	gg := mustGrid(t, open5...)
	s, tg := endpoints(t, gg)
	require.NoError(t, e.Start(search.BFS, gg, s, tg))
	require.NoError(t, e.Run())

	snap := e.Snapshot()
	require.Equal(t, snap.Stats.Steps, calls)
	require.Equal(t, snap.Stats.Expanded, expanded)
}

// TestStep_ObstacleDuringRun leaves a newly blocked cell out of the view.
func TestStep_ObstacleDuringRun(t *testing.T) {
	gg := mustGrid(t, open5...)
	s, tg := endpoints(t, gg)
	e := engine.New()
	require.NoError(t, e.Start(search.BFS, gg, s, tg))
	require.NoError(t, e.Step())

	blocked := gridgraph.Cell{Row: 1, Col: 1}
	spawned, err := gg.SpawnObstacle(blocked)
	require.NoError(t, err)
	require.True(t, spawned)

	require.NoError(t, e.Run())
	snap := e.Snapshot()
	require.Equal(t, engine.Succeeded, snap.State)
	require.NotContains(t, snap.Visited, blocked)
	require.NotContains(t, snap.Frontier, blocked)
	require.NotContains(t, snap.Path, blocked)
}
