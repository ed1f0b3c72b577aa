package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coinpilot/bfs"
	"github.com/katalvlaran/coinpilot/grid"
	"github.com/katalvlaran/coinpilot/level"
)

// board parses a level and returns its grid and start.
func board(t *testing.T, src string) (*grid.Grid, grid.Cell) {
	t.Helper()
	l, err := level.ParseString(src)
	require.NoError(t, err)

	return l.Grid, l.Position
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, grid.Cell{})
	assert.ErrorIs(t, err, bfs.ErrGridNil)

	g, _ := board(t, "P.\n..\n")
	_, err = bfs.BFS(g, grid.Cell{X: 5})
	assert.ErrorIs(t, err, bfs.ErrStartOutOfBounds)

	_, err = bfs.BFS(g, grid.Cell{}, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_OrderAndDepth(t *testing.T) {
	g, start := board(t, "P..\n...\n")
	res, err := bfs.BFS(g, start)
	require.NoError(t, err)

	assert.Equal(t, []grid.Cell{
		{X: 0, Y: 0},
		{X: 1, Y: 0}, {X: 0, Y: 1},
		{X: 2, Y: 0}, {X: 1, Y: 1},
		{X: 2, Y: 1},
	}, res.Order)
	assert.Equal(t, 3, res.Depth[grid.Cell{X: 2, Y: 1}])
}

func TestBFS_WallsAndBlocked(t *testing.T) {
	g, start := board(t, "P#G\n..#\n")
	res, err := bfs.BFS(g, start)
	require.NoError(t, err)
	assert.False(t, res.Reached(grid.Cell{X: 2, Y: 0}), "goal is walled off")
	assert.Len(t, res.Order, 3)

	res, err = bfs.BFS(g, start, bfs.WithBlocked([]grid.Cell{{X: 0, Y: 1}}))
	require.NoError(t, err)
	assert.Equal(t, []grid.Cell{start}, res.Order)
}

func TestBFS_MaxDepth(t *testing.T) {
	g, start := board(t, "P....\n")
	res, err := bfs.BFS(g, start, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Len(t, res.Order, 3)
	assert.False(t, res.Reached(grid.Cell{X: 3}))
}

func TestBFS_PathTo(t *testing.T) {
	g, start := board(t, "P#.\n...\n")
	res, err := bfs.BFS(g, start)
	require.NoError(t, err)

	path, err := res.PathTo(grid.Cell{X: 2, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, []grid.Cell{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 0}}, path)

	_, err = res.PathTo(grid.Cell{X: 1, Y: 0})
	assert.ErrorIs(t, err, bfs.ErrUnreached)
}

func TestBFS_HookAndCancel(t *testing.T) {
	g, start := board(t, "P...\n....\n")
	stop := errors.New("stop")
	visits := 0
	_, err := bfs.BFS(g, start, bfs.WithOnVisit(func(grid.Cell, int) error {
		visits++
		if visits == 3 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 3, visits)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, start, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
