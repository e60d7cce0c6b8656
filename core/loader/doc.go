// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface, which defines its enablement
// and route registration logic.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager struct holds the registry of available features. It handles:
//   - Registration of features via Register()
//   - Loading of enabled features via LoadAll(), in registration order
//
// The emulated device routes and the landing page are separate features, so either
// can be tested against a bare fiber app without the other.
package loader
