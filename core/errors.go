package core

import "errors"

var (
	// ErrAbstractScreen reports an attempt to use a screen base directly
	// instead of embedding it in a concrete screen.
	ErrAbstractScreen = errors.New("core: screen base is abstract and cannot be used directly")

	// ErrHubPlacement reports a standalone screen declaring itself both a
	// pre and a post action for a hub.
	ErrHubPlacement = errors.New("core: standalone screen may not declare both a pre and a post hub")
)
