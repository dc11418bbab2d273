package module

import (
	interpdom "natalchart/internal/services/api/interpretations/domain"
)

// Ports exposes the interpretation reader to other modules
type Ports struct {
	Reader interpdom.ReaderPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
