// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface and is registered on a
// Manager before the server starts:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// LoadAll mounts every enabled feature in registration order. Disabled
// features are skipped and a name registered twice aborts loading.
// Every HTTP feature of the gateway is loaded this way.
package loader
