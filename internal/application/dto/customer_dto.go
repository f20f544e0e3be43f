package dto

import "time"

// CreateCustomerRequest body para POST /api/customers: datos del cliente y de su dirección.
type CreateCustomerRequest struct {
	Name      string `json:"name" validate:"required,max=120"`
	FirstName string `json:"first_name" validate:"required,max=120"`
	LastName  string `json:"last_name" validate:"required,max=120"`
	RFC       string `json:"rfc" validate:"required,rfc"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,max=20"`
	Status    bool   `json:"status"`

	Street         string  `json:"street" validate:"required,max=200"`
	ExteriorNumber string  `json:"exterior_number" validate:"required,max=20"`
	InteriorNumber *string `json:"interior_number,omitempty" validate:"omitempty,max=20"`
	PostalCode     string  `json:"postal_code" validate:"required,max=10"`
	LocalityID     int64   `json:"locality_id" validate:"required,gt=0"`
}

// UpdateCustomerRequest body para PUT /api/customers/:id. Todos los campos son opcionales;
// los de dirección pueden venir en la raíz o dentro de "address".
type UpdateCustomerRequest struct {
	Name      *string `json:"name" validate:"omitempty,max=120"`
	FirstName *string `json:"first_name" validate:"omitempty,max=120"`
	LastName  *string `json:"last_name" validate:"omitempty,max=120"`
	RFC       *string `json:"rfc" validate:"omitempty,rfc"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone" validate:"omitempty,max=20"`
	Status    *bool   `json:"status"`

	Street         *string `json:"street" validate:"omitempty,max=200"`
	ExteriorNumber *string `json:"exterior_number" validate:"omitempty,max=20"`
	InteriorNumber *string `json:"interior_number" validate:"omitempty,max=20"`
	PostalCode     *string `json:"postal_code" validate:"omitempty,max=10"`
	LocalityID     *int64  `json:"locality_id" validate:"omitempty,gt=0"`

	Address *UpdateAddressRequest `json:"address,omitempty"`
}

// CustomerResponse cliente sin dirección (respuesta de DELETE).
type CustomerResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	RFC       string    `json:"rfc"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Status    bool      `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerView cliente con su dirección proyectada hasta el estado.
type CustomerView struct {
	CustomerResponse
	Address *AddressView `json:"address"`
}
