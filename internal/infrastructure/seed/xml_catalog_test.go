package seed

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

const sampleCatalog = `<?xml version="1.0" encoding="UTF-8"?>
<catalogo>
  <estado nombre="Jalisco">
    <municipio nombre="Zapopan">
      <localidad nombre="Tesistán"/>
      <localidad nombre="  Nextipac  "/>
      <localidad nombre=""/>
    </municipio>
    <municipio nombre="Tlaquepaque"/>
  </estado>
  <estado nombre="">
    <municipio nombre="Huérfano"/>
  </estado>
  <estado nombre="Colima"/>
</catalogo>`

func TestReadCatalog(t *testing.T) {
	seeds, err := ReadCatalog(strings.NewReader(sampleCatalog))
	require.NoError(t, err)
	require.Len(t, seeds, 2, "el estado sin nombre se ignora")

	assert.Equal(t, "Jalisco", seeds[0].Name)
	require.Len(t, seeds[0].Municipalities, 2)
	assert.Equal(t, "Zapopan", seeds[0].Municipalities[0].Name)
	assert.Equal(t, []string{"Tesistán", "Nextipac"}, seeds[0].Municipalities[0].Localities)
	assert.Empty(t, seeds[0].Municipalities[1].Localities)

	assert.Equal(t, "Colima", seeds[1].Name)
	assert.Empty(t, seeds[1].Municipalities)
}

func TestReadCatalog_ISO88591(t *testing.T) {
	src := `<?xml version="1.0" encoding="ISO-8859-1"?>
<catalogo><estado nombre="Michoacán"><municipio nombre="Pátzcuaro"/></estado></catalogo>`
	encoded, err := charmap.ISO8859_1.NewEncoder().String(src)
	require.NoError(t, err)

	seeds, err := ReadCatalog(bytes.NewReader([]byte(encoded)))
	require.NoError(t, err)
	require.Len(t, seeds, 1)
	assert.Equal(t, "Michoacán", seeds[0].Name)
	assert.Equal(t, "Pátzcuaro", seeds[0].Municipalities[0].Name)
}

func TestReadCatalog_RaizIncorrecta(t *testing.T) {
	_, err := ReadCatalog(strings.NewReader(`<parametros/>`))
	assert.Error(t, err)
}

func TestReadCatalog_CodificacionNoSoportada(t *testing.T) {
	_, err := ReadCatalog(strings.NewReader(`<?xml version="1.0" encoding="EBCDIC"?><catalogo/>`))
	assert.Error(t, err)
}
