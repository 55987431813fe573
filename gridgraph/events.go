package gridgraph

// EventKind classifies a grid mutation.
type EventKind int

const (
	// EventCellChanged covers mutations with no more specific kind.
	EventCellChanged EventKind = iota
	// EventObstacleSpawned fires when a cell becomes DynamicObstacle.
	EventObstacleSpawned
	// EventObstacleCleared fires when a DynamicObstacle is removed.
	EventObstacleCleared
	// EventWallSet fires when a cell becomes Wall.
	EventWallSet
	// EventWallCleared fires when a Wall is removed.
	EventWallCleared
	// EventStartMoved fires when a cell takes the Start role.
	EventStartMoved
	// EventTargetMoved fires when a cell takes the Target role.
	EventTargetMoved
	// EventReset fires once after Reset or ClearAll; Cell is unset.
	EventReset
)

// Event describes one grid mutation. Prev and State are the cell's state
// before and after the change.
type Event struct {
	Kind  EventKind
	Cell  Cell
	Prev  CellState
	State CellState
}

// Subscribe registers fn to receive every subsequent mutation event,
// synchronously and in mutation order. The returned cancel func removes
// the subscription; calling it more than once is harmless.
func (gg *GridGraph) Subscribe(fn func(Event)) (cancel func()) {
	id := gg.nextSubscriber
	gg.nextSubscriber++
	gg.subscribers[id] = fn

	return func() { delete(gg.subscribers, id) }
}

// emit delivers ev to subscribers in registration order.
func (gg *GridGraph) emit(ev Event) {
	for id := 0; id < gg.nextSubscriber; id++ {
		if fn, ok := gg.subscribers[id]; ok {
			fn(ev)
		}
	}
}

func kindFor(prev, next CellState) EventKind {
	switch {
	case next == DynamicObstacle:
		return EventObstacleSpawned
	case prev == DynamicObstacle:
		return EventObstacleCleared
	case next == Wall:
		return EventWallSet
	case prev == Wall:
		return EventWallCleared
	case next == Start:
		return EventStartMoved
	case next == Target:
		return EventTargetMoved
	default:
		return EventCellChanged
	}
}
