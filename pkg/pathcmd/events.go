package pathcmd

type (
	// Sent to update the total path count.
	EventSetTotal int

	// Sent when resolution of a path has started.
	EventResolving string

	// Sent when a path has been resolved, or when a fatal error occurs during
	// resolution.
	EventResolved struct {
		Err      error
		Path     string
		Resolved string
	}

	// Sent when all work has completed.
	EventDone struct {
		Err error
	}
)
