package dto

import "time"

// CreateStateRequest body para POST /api/states.
type CreateStateRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

// UpdateStateRequest body para PUT /api/states/:id (campos opcionales).
type UpdateStateRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=120"`
}

// StateResponse estado en respuestas. Name es el valor persistido (normalizado).
type StateResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StateDetailResponse estado con sus municipios (un solo nivel).
type StateDetailResponse struct {
	StateResponse
	Municipalities []MunicipalityResponse `json:"municipalities"`
}

// CreateMunicipalityRequest body para POST /api/municipalities.
type CreateMunicipalityRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=120"`
	StateID int64  `json:"state_id" validate:"required,gt=0"`
}

// UpdateMunicipalityRequest body para PUT /api/municipalities/:id.
type UpdateMunicipalityRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=120"`
	StateID *int64  `json:"state_id" validate:"omitempty,gt=0"`
}

// MunicipalityResponse municipio en respuestas.
type MunicipalityResponse struct {
	ID        int64     `json:"id"`
	StateID   int64     `json:"state_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MunicipalityDetailResponse municipio con sus localidades (un solo nivel).
type MunicipalityDetailResponse struct {
	MunicipalityResponse
	Localities []LocalityResponse `json:"localities"`
}

// CreateLocalityRequest body para POST /api/localities.
type CreateLocalityRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=120"`
	MunicipalityID int64  `json:"municipality_id" validate:"required,gt=0"`
}

// UpdateLocalityRequest body para PUT /api/localities/:id.
type UpdateLocalityRequest struct {
	Name           *string `json:"name" validate:"omitempty,min=1,max=120"`
	MunicipalityID *int64  `json:"municipality_id" validate:"omitempty,gt=0"`
}

// LocalityResponse localidad en respuestas. Name es el valor persistido (normalizado).
type LocalityResponse struct {
	ID             int64     `json:"id"`
	MunicipalityID int64     `json:"municipality_id"`
	Name           string    `json:"name"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
