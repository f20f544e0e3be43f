package entity

import "time"

// State representa un estado (primer nivel del catálogo geográfico).
// Name se persiste normalizado (minúsculas, sin acentos).
type State struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StatePatch campos opcionales para actualizar un estado (nil = no presente).
type StatePatch struct {
	Name *string
}

// Apply aplica los campos presentes sobre el estado.
func (p StatePatch) Apply(s *State) {
	if p.Name != nil {
		s.Name = *p.Name
	}
}
