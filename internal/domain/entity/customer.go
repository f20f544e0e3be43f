package entity

import "time"

// Customer representa un cliente. Es dueño exclusivo de una única dirección:
// la dirección se crea, actualiza y elimina junto con el cliente.
type Customer struct {
	ID        int64
	Name      string
	FirstName string
	LastName  string
	RFC       string // Registro Federal de Contribuyentes (México)
	Email     string
	Phone     string
	Status    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CustomerPatch campos escalares opcionales del cliente.
type CustomerPatch struct {
	Name      *string
	FirstName *string
	LastName  *string
	RFC       *string
	Email     *string
	Phone     *string
	Status    *bool
}

// IsEmpty indica si el patch no trae ningún campo.
func (p CustomerPatch) IsEmpty() bool {
	return p.Name == nil && p.FirstName == nil && p.LastName == nil && p.RFC == nil &&
		p.Email == nil && p.Phone == nil && p.Status == nil
}

// Apply aplica los campos presentes sobre el cliente.
func (p CustomerPatch) Apply(c *Customer) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.FirstName != nil {
		c.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		c.LastName = *p.LastName
	}
	if p.RFC != nil {
		c.RFC = *p.RFC
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
}
