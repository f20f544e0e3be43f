package customers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/geocatalog-api/internal/application/dto"
)

func TestSplitUpdate(t *testing.T) {
	s := func(v string) *string { return &v }
	loc := int64(7)

	customer, address := SplitUpdate(dto.UpdateCustomerRequest{
		Name:       s("Acme"),
		Email:      s("a@b.mx"),
		Street:     s("Calle"),
		LocalityID: &loc,
		Address: &dto.UpdateAddressRequest{
			Street:     s("ignorada"),
			PostalCode: s("45000"),
		},
	})

	assert.Equal(t, "Acme", *customer.Name)
	assert.Equal(t, "a@b.mx", *customer.Email)
	assert.Nil(t, customer.Phone)

	assert.Equal(t, "Calle", *address.Street, "la raíz gana sobre address")
	assert.Equal(t, "45000", *address.PostalCode)
	assert.Equal(t, loc, *address.LocalityID)
	assert.Nil(t, address.ExteriorNumber)
}

func TestSplitUpdate_Vacio(t *testing.T) {
	customer, address := SplitUpdate(dto.UpdateCustomerRequest{})
	assert.True(t, customer.IsEmpty())
	assert.True(t, address.IsEmpty())
}
