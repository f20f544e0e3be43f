package dto

import "time"

// CreateAddressRequest body para POST /api/address.
type CreateAddressRequest struct {
	Street         string  `json:"street" validate:"required,max=200"`
	ExteriorNumber string  `json:"exterior_number" validate:"required,max=20"`
	InteriorNumber *string `json:"interior_number,omitempty" validate:"omitempty,max=20"`
	PostalCode     string  `json:"postal_code" validate:"required,max=10"`
	LocalityID     int64   `json:"locality_id" validate:"required,gt=0"`
}

// UpdateAddressRequest body para PUT /api/address/:id (campos opcionales).
// interior_number "" borra el número interior.
type UpdateAddressRequest struct {
	Street         *string `json:"street" validate:"omitempty,max=200"`
	ExteriorNumber *string `json:"exterior_number" validate:"omitempty,max=20"`
	InteriorNumber *string `json:"interior_number" validate:"omitempty,max=20"`
	PostalCode     *string `json:"postal_code" validate:"omitempty,max=10"`
	LocalityID     *int64  `json:"locality_id" validate:"omitempty,gt=0"`
}

// AddressView dirección con su cadena Localidad → Municipio → Estado.
type AddressView struct {
	ID             int64        `json:"id"`
	Street         string       `json:"street"`
	ExteriorNumber string       `json:"exterior_number"`
	InteriorNumber *string      `json:"interior_number,omitempty"`
	PostalCode     string       `json:"postal_code"`
	LocalityID     int64        `json:"locality_id"`
	CustomerID     *int64       `json:"customer_id,omitempty"`
	Locality       LocalityView `json:"locality"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// LocalityView localidad anidada con su municipio.
type LocalityView struct {
	ID             int64            `json:"id"`
	Name           string           `json:"name"`
	MunicipalityID int64            `json:"municipality_id"`
	Municipality   MunicipalityView `json:"municipality"`
}

// MunicipalityView municipio anidado con su estado.
type MunicipalityView struct {
	ID      int64     `json:"id"`
	Name    string    `json:"name"`
	StateID int64     `json:"state_id"`
	State   StateView `json:"state"`
}

// StateView estado anidado (hoja de la proyección).
type StateView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// AddressResponse dirección sin proyección (respuesta de DELETE).
type AddressResponse struct {
	ID             int64     `json:"id"`
	Street         string    `json:"street"`
	ExteriorNumber string    `json:"exterior_number"`
	InteriorNumber *string   `json:"interior_number,omitempty"`
	PostalCode     string    `json:"postal_code"`
	LocalityID     int64     `json:"locality_id"`
	CustomerID     *int64    `json:"customer_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
