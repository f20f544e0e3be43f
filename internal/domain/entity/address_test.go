package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressPatch_NumeroInterior(t *testing.T) {
	s := func(v string) *string { return &v }
	a := &Address{Street: "Calle", InteriorNumber: s("4B")}

	AddressPatch{Street: s("Otra")}.Apply(a)
	require.NotNil(t, a.InteriorNumber)
	assert.Equal(t, "4B", *a.InteriorNumber)

	in := s("7")
	AddressPatch{InteriorNumber: in}.Apply(a)
	*in = "X"
	assert.Equal(t, "7", *a.InteriorNumber, "el patch no comparte el puntero")

	AddressPatch{InteriorNumber: s("")}.Apply(a)
	assert.Nil(t, a.InteriorNumber)
	assert.Equal(t, "Otra", a.Street)
}
