package hub

import "github.com/slateos/slate/core"

// Hub variants shipped with the installer. Screens reference these as their
// category; standalone screens sequence around them.
const (
	// Summary is the pre-install configuration dashboard.
	Summary core.HubID = "summary"
	// Progress hosts personalization screens while the payload installs.
	Progress core.HubID = "progress"
)
