package entity

import "time"

// Municipality representa un municipio perteneciente a un estado.
// El nombre se guarda tal como se registró; la unicidad se valida sin distinguir mayúsculas.
type Municipality struct {
	ID        int64
	StateID   int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MunicipalityPatch campos opcionales para actualizar un municipio.
type MunicipalityPatch struct {
	Name    *string
	StateID *int64
}

// Apply aplica los campos presentes sobre el municipio.
func (p MunicipalityPatch) Apply(m *Municipality) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.StateID != nil {
		m.StateID = *p.StateID
	}
}
