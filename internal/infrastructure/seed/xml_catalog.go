// Package seed lee catálogos geográficos desde archivos XML para el importador.
package seed

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"
	"github.com/jhoicas/geocatalog-api/internal/application/catalog"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Formato esperado:
//
//	<catalogo>
//	  <estado nombre="Jalisco">
//	    <municipio nombre="Zapopan">
//	      <localidad nombre="Tesistán"/>
//	    </municipio>
//	  </estado>
//	</catalogo>
const (
	tagRoot         = "catalogo"
	tagState        = "estado"
	tagMunicipality = "municipio"
	tagLocality     = "localidad"
	attrName        = "nombre"
)

// ReadCatalogFile abre path y delega en ReadCatalog.
func ReadCatalogFile(path string) ([]catalog.StateSeed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abrir catálogo: %w", err)
	}
	defer f.Close()
	return ReadCatalog(f)
}

// ReadCatalog parsea el XML. Acepta UTF-8 e ISO-8859-1 (declarado en el prólogo).
// Los elementos sin nombre se ignoran.
func ReadCatalog(r io.Reader) ([]catalog.StateSeed, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charsetReader
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("leer XML: %w", err)
	}
	root := doc.Root()
	if root == nil || root.Tag != tagRoot {
		return nil, fmt.Errorf("raíz <%s> no encontrada", tagRoot)
	}

	var seeds []catalog.StateSeed
	for _, st := range root.SelectElements(tagState) {
		name := nameOf(st)
		if name == "" {
			continue
		}
		seed := catalog.StateSeed{Name: name}
		for _, mun := range st.SelectElements(tagMunicipality) {
			munName := nameOf(mun)
			if munName == "" {
				continue
			}
			ms := catalog.MunicipalitySeed{Name: munName}
			for _, loc := range mun.SelectElements(tagLocality) {
				if locName := nameOf(loc); locName != "" {
					ms.Localities = append(ms.Localities, locName)
				}
			}
			seed.Municipalities = append(seed.Municipalities, ms)
		}
		seeds = append(seeds, seed)
	}
	return seeds, nil
}

func nameOf(el *etree.Element) string {
	return strings.TrimSpace(el.SelectAttrValue(attrName, ""))
}

func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToUpper(charset) {
	case "ISO-8859-1", "ISO8859-1", "LATIN1":
		return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
	case "WINDOWS-1252", "CP1252":
		return transform.NewReader(input, charmap.Windows1252.NewDecoder()), nil
	case "", "UTF-8", "UTF8":
		return input, nil
	}
	return nil, fmt.Errorf("codificación no soportada: %s", charset)
}
