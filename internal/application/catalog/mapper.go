package catalog

import (
	"github.com/jhoicas/geocatalog-api/internal/application/dto"
	"github.com/jhoicas/geocatalog-api/internal/domain/entity"
)

func toStateResponse(s *entity.State) *dto.StateResponse {
	return &dto.StateResponse{
		ID:        s.ID,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toMunicipalityResponse(m *entity.Municipality) *dto.MunicipalityResponse {
	return &dto.MunicipalityResponse{
		ID:        m.ID,
		StateID:   m.StateID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toLocalityResponse(l *entity.Locality) *dto.LocalityResponse {
	return &dto.LocalityResponse{
		ID:             l.ID,
		MunicipalityID: l.MunicipalityID,
		Name:           l.Name,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

// ToAddressResponse convierte una dirección sin su proyección.
func ToAddressResponse(a *entity.Address) *dto.AddressResponse {
	return &dto.AddressResponse{
		ID:             a.ID,
		Street:         a.Street,
		ExteriorNumber: a.ExteriorNumber,
		InteriorNumber: a.InteriorNumber,
		PostalCode:     a.PostalCode,
		LocalityID:     a.LocalityID,
		CustomerID:     a.CustomerID,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
