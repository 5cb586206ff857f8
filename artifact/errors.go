package artifact

import "fmt"

var (
	// ErrDuplicate is returned when a (role, round) key is already occupied.
	// Artifacts are immutable once written; there is no overwrite path.
	ErrDuplicate = fmt.Errorf("artifact already exists for role/round")
)
