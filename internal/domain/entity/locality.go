package entity

import "time"

// Locality representa una localidad dentro de un municipio. Name se persiste normalizado.
type Locality struct {
	ID             int64
	MunicipalityID int64
	Name           string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// LocalityPatch campos opcionales para actualizar una localidad.
type LocalityPatch struct {
	Name           *string
	MunicipalityID *int64
}

// Apply aplica los campos presentes sobre la localidad.
func (p LocalityPatch) Apply(l *Locality) {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.MunicipalityID != nil {
		l.MunicipalityID = *p.MunicipalityID
	}
}

// LocalityAncestry cadena completa Localidad → Municipio → Estado, resultado de una sola consulta.
type LocalityAncestry struct {
	Locality     Locality
	Municipality Municipality
	State        State
}
