package module

import (
	statsdom "natalchart/internal/services/api/stats/domain"
)

// Ports exposes the reading recorder to other modules
type Ports struct {
	Recorder statsdom.RecorderPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
