package entity

import "time"

// Address dirección postal. Siempre referencia una localidad; CustomerID es nil
// cuando la dirección no pertenece a un cliente.
type Address struct {
	ID             int64
	Street         string
	ExteriorNumber string
	InteriorNumber *string
	PostalCode     string
	LocalityID     int64
	CustomerID     *int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AddressPatch campos escalares opcionales de una dirección.
// El cliente propietario no forma parte del patch: una dirección no se reasigna.
// InteriorNumber con cadena vacía borra el número interior.
type AddressPatch struct {
	Street         *string
	ExteriorNumber *string
	InteriorNumber *string
	PostalCode     *string
	LocalityID     *int64
}

// IsEmpty indica si el patch no trae ningún campo.
func (p AddressPatch) IsEmpty() bool {
	return p.Street == nil && p.ExteriorNumber == nil && p.InteriorNumber == nil &&
		p.PostalCode == nil && p.LocalityID == nil
}

// Apply aplica los campos presentes sobre la dirección.
func (p AddressPatch) Apply(a *Address) {
	if p.Street != nil {
		a.Street = *p.Street
	}
	if p.ExteriorNumber != nil {
		a.ExteriorNumber = *p.ExteriorNumber
	}
	if p.InteriorNumber != nil {
		if v := *p.InteriorNumber; v == "" {
			a.InteriorNumber = nil
		} else {
			a.InteriorNumber = &v
		}
	}
	if p.PostalCode != nil {
		a.PostalCode = *p.PostalCode
	}
	if p.LocalityID != nil {
		a.LocalityID = *p.LocalityID
	}
}
