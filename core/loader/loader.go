package loader

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature is a self-contained module that registers its own routes.
type Feature interface {
	// Name returns the unique feature name.
	Name() string
	// IsEnabled reports whether the feature should be loaded.
	IsEnabled() bool
	// Load registers the feature's routes on the router.
	Load(app fiber.Router) error
}

// Manager keeps the registered features in registration order.
type Manager struct {
	features []Feature
	logger   *zap.Logger
}

// NewManager creates an empty feature manager.
func NewManager(logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{logger: logger}
}

// Register adds a feature to the manager.
func (m *Manager) Register(f Feature) {
	m.features = append(m.features, f)
}

// Features returns the registered features.
func (m *Manager) Features() []Feature {
	return m.features
}

// LoadAll loads every enabled feature onto the router.
// Loading stops at the first feature that fails.
func (m *Manager) LoadAll(app fiber.Router) error {
	for _, f := range m.features {
		if !f.IsEnabled() {
			m.logger.Info("Feature disabled, skipping", zap.String("feature", f.Name()))
			continue
		}
		if err := f.Load(app); err != nil {
			return fmt.Errorf("failed to load feature %q: %w", f.Name(), err)
		}
		m.logger.Debug("Feature loaded", zap.String("feature", f.Name()))
	}
	return nil
}
