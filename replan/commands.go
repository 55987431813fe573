package replan

import (
	"fmt"

	"github.com/katalvlaran/pathviz/gridgraph"
	"github.com/katalvlaran/pathviz/search"
)

// CommandKind enumerates the driver's input commands.
type CommandKind int

const (
	// CmdSetStart moves the Start role to Command.Cell.
	CmdSetStart CommandKind = iota
	// CmdSetTarget moves the Target role to Command.Cell.
	CmdSetTarget
	// CmdToggleWall flips Command.Cell between Wall and Empty.
	CmdToggleWall
	// CmdSelectStrategy selects Command.Variant for the next run.
	CmdSelectStrategy
	// CmdRun starts a search between the grid's Start and Target.
	CmdRun
	// CmdReset clears walls, obstacles and the search.
	CmdReset
	// CmdClear discards the search and keeps the grid.
	CmdClear
	// CmdQuit closes the controller.
	CmdQuit
)

// String returns the command name.
func (k CommandKind) String() string {
	switch k {
	case CmdSetStart:
		return "set-start"
	case CmdSetTarget:
		return "set-target"
	case CmdToggleWall:
		return "toggle-wall"
	case CmdSelectStrategy:
		return "select-strategy"
	case CmdRun:
		return "run"
	case CmdReset:
		return "reset"
	case CmdClear:
		return "clear"
	case CmdQuit:
		return "quit"
	default:
		return fmt.Sprintf("CommandKind(%d)", int(k))
	}
}

// Command is one driver input. Cell is used by SetStart, SetTarget and
// ToggleWall; Variant by SelectStrategy.
type Command struct {
	Kind    CommandKind
	Cell    gridgraph.Cell
	Variant search.Variant
}

// SetStart returns a CmdSetStart command.
func SetStart(pos gridgraph.Cell) Command { return Command{Kind: CmdSetStart, Cell: pos} }

// SetTarget returns a CmdSetTarget command.
func SetTarget(pos gridgraph.Cell) Command { return Command{Kind: CmdSetTarget, Cell: pos} }

// ToggleWall returns a CmdToggleWall command.
func ToggleWall(pos gridgraph.Cell) Command { return Command{Kind: CmdToggleWall, Cell: pos} }

// SelectStrategy returns a CmdSelectStrategy command.
func SelectStrategy(v search.Variant) Command { return Command{Kind: CmdSelectStrategy, Variant: v} }

// Run returns a CmdRun command.
func Run() Command { return Command{Kind: CmdRun} }

// Reset returns a CmdReset command.
func Reset() Command { return Command{Kind: CmdReset} }

// Clear returns a CmdClear command.
func Clear() Command { return Command{Kind: CmdClear} }

// Quit returns a CmdQuit command.
func Quit() Command { return Command{Kind: CmdQuit} }

// Dispatch applies cmd. Grid errors (gridgraph.ErrOutOfBounds,
// gridgraph.ErrRoleConflict) and engine errors are returned unchanged so
// the driver can ignore or surface them. Returns ErrClosed after Quit.
func (c *Controller) Dispatch(cmd Command) error {
	if c.closed {
		return ErrClosed
	}
	switch cmd.Kind {
	case CmdSetStart:
		// A role move emits EventStartMoved, which clears the search.
		return c.grid.SetStart(cmd.Cell)
	case CmdSetTarget:
		return c.grid.SetTarget(cmd.Cell)
	case CmdToggleWall:
		return c.grid.ToggleWall(cmd.Cell)
	case CmdSelectStrategy:
		if !cmd.Variant.Valid() {
			return fmt.Errorf("%w: %v", search.ErrUnknownVariant, cmd.Variant)
		}
		c.variant = cmd.Variant
		c.clearSearch()
		return nil
	case CmdRun:
		return c.run()
	case CmdReset:
		c.grid.Reset()
		c.clearSearch()
		return nil
	case CmdClear:
		c.clearSearch()
		return nil
	case CmdQuit:
		c.Close()
		return nil
	default:
		return fmt.Errorf("%w: %v", ErrUnknownCommand, cmd.Kind)
	}
}

func (c *Controller) run() error {
	start, okS := c.grid.StartCell()
	target, okT := c.grid.TargetCell()
	if !okS || !okT {
		return ErrNoEndpoints
	}
	if err := c.engine.Start(c.variant, c.grid, start, target); err != nil {
		return err
	}
	c.agent, c.pathIdx, c.hasAgent = start, 0, true
	return nil
}

func (c *Controller) clearSearch() {
	c.engine.Reset()
	c.hasAgent = false
}
