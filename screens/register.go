package screens

import "github.com/slateos/slate/core"

// RegisterAll adds every shipped screen provider to the registry. Each
// provider builds independently; one failing does not hide the others.
func RegisterAll(reg *core.Registry) {
	reg.Register("keyboard", func(deps core.Deps) (core.Screen, error) {
		return NewKeyboard(deps)
	})
	reg.Register("storage", func(deps core.Deps) (core.Screen, error) {
		return NewStorage(deps)
	})
	reg.Register("software", func(deps core.Deps) (core.Screen, error) {
		return NewSoftware(deps)
	})
	reg.Register("user-account", func(deps core.Deps) (core.Screen, error) {
		return NewUserAccount(deps)
	})
}
