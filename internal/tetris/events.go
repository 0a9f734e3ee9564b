package tetris

// EventType classifies a game notification.
type EventType int

const (
	EventMove EventType = iota
	EventRotate
	EventHardDrop
	EventLock
	EventLinesCompleted
	EventLinesCleared
	EventLevelUp
	EventSpawn
	EventGameOver
	EventPause
	EventReset
)

func (t EventType) String() string {
	switch t {
	case EventMove:
		return "move"
	case EventRotate:
		return "rotate"
	case EventHardDrop:
		return "hard_drop"
	case EventLock:
		return "lock"
	case EventLinesCompleted:
		return "lines_completed"
	case EventLinesCleared:
		return "lines_cleared"
	case EventLevelUp:
		return "level_up"
	case EventSpawn:
		return "spawn"
	case EventGameOver:
		return "game_over"
	case EventPause:
		return "pause"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Direction of a successful EventMove.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirDown
)

// Event is emitted synchronously after the state change it describes.
// Only the fields relevant to Type are set.
type Event struct {
	Type EventType

	Dir      Direction // EventMove
	Distance int       // EventHardDrop: rows descended
	Kind     Kind      // EventSpawn, EventLock
	Rows     []int     // EventLinesCompleted
	Lines    int       // EventLinesCleared: rows removed
	Points   int       // EventLinesCleared: score awarded
	Level    int       // EventLinesCleared, EventLevelUp
	Paused   bool      // EventPause
}

// Listener receives game events. Listeners run on the caller's goroutine and
// must not call back into the game.
type Listener func(Event)
