package pathtui

// GetErrorMessage is an exported alias of [getErrorMessage] for testing.
var GetErrorMessage = getErrorMessage

// TeaMsgWriteLog is an alias for [teaMsgWriteLog] exported for testing.
type TeaMsgWriteLog = teaMsgWriteLog

// NewTestResolveModel creates a [ResolveModel] in a specific state for testing.
func NewTestResolveModel(
	startedPaths, completedPaths []string,
	resolvedPaths map[string]string,
	totalPaths, width int,
	state modelState,
	err error,
) *ResolveModel {
	m := NewResolveModel()
	m.startedPaths = startedPaths
	m.completedPaths = completedPaths
	if resolvedPaths != nil {
		m.resolvedPaths = resolvedPaths
	}
	m.totalPaths = totalPaths
	m.width = width
	m.state = state
	m.err = err

	return m
}

// Exported state constants for testing.
const (
	StateIdle    = stateIdle
	StateWorking = stateWorking
	StateDone    = stateDone
	StateError   = stateError
)
