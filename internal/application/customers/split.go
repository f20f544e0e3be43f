package customers

import (
	"github.com/jhoicas/geocatalog-api/internal/application/dto"
	"github.com/jhoicas/geocatalog-api/internal/domain/entity"
)

// SplitUpdate reparte el body de actualización entre el cliente y su dirección.
// street, exterior_number, interior_number, postal_code y locality_id van a la dirección;
// el resto al cliente. Los campos de dirección en la raíz tienen prioridad sobre los
// que vengan dentro de "address".
func SplitUpdate(in dto.UpdateCustomerRequest) (entity.CustomerPatch, entity.AddressPatch) {
	customer := entity.CustomerPatch{
		Name:      in.Name,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		RFC:       in.RFC,
		Email:     in.Email,
		Phone:     in.Phone,
		Status:    in.Status,
	}

	var address entity.AddressPatch
	if in.Address != nil {
		address = entity.AddressPatch{
			Street:         in.Address.Street,
			ExteriorNumber: in.Address.ExteriorNumber,
			InteriorNumber: in.Address.InteriorNumber,
			PostalCode:     in.Address.PostalCode,
			LocalityID:     in.Address.LocalityID,
		}
	}
	if in.Street != nil {
		address.Street = in.Street
	}
	if in.ExteriorNumber != nil {
		address.ExteriorNumber = in.ExteriorNumber
	}
	if in.InteriorNumber != nil {
		address.InteriorNumber = in.InteriorNumber
	}
	if in.PostalCode != nil {
		address.PostalCode = in.PostalCode
	}
	if in.LocalityID != nil {
		address.LocalityID = in.LocalityID
	}
	return customer, address
}
