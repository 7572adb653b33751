package main

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlug(t *testing.T) {
	assert.Equal(t, "set_flow_landing_page_module", slug("Set Flow -  Landing Page Module"))
	assert.Equal(t, "analisis_de_piel", slug("Análisis de Piel"))
	assert.Equal(t, "contact_info_basic", slug("Contact Info (Basic)"))
}

func TestParseCatalog_CatalogoIncluido(t *testing.T) {
	raw, err := os.ReadFile("catalog.yaml")
	require.NoError(t, err)

	cat, err := parseCatalog(raw)
	require.NoError(t, err)
	require.NotEmpty(t, cat.Plans)
	assert.Equal(t, int64(0), cat.Plans[0].ID, "la prueba gratuita es el plan 0")
	assert.True(t, cat.Plans[0].Price.IsZero())
}

func TestParseCatalog_ModuloInexistente(t *testing.T) {
	raw := []byte(`
modules:
  - id: 1
    name: Flows
plans:
  - id: 0
    name: Trial
    modules: [1, 2]
`)
	_, err := parseCatalog(raw)
	assert.ErrorContains(t, err, "módulo 2 no existe")
}

func TestParseCatalog_CodigoDuplicado(t *testing.T) {
	raw := []byte(`
modules:
  - id: 1
    name: Flows
  - id: 2
    name: flows
`)
	_, err := parseCatalog(raw)
	assert.Error(t, err)
}

func TestWriteSQL(t *testing.T) {
	cat, err := parseCatalog([]byte(`
modules:
  - id: 2
    name: L'Oréal Module
  - id: 1
    name: Flows
plans:
  - id: 0
    name: Trial
    price: "0"
    modules: [1]
  - id: 1
    name: Pro
    price: "99.5"
    modules: [1, 2]
`))
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, writeSQL(&b, cat))
	sql := b.String()

	assert.Contains(t, sql, "(1, 'flows', 'Flows', '')")
	assert.Contains(t, sql, "(2, 'l_oreal_module', 'L''Oréal Module', '')")
	assert.Contains(t, sql, "(0, 'Trial', '[1]'::jsonb, 0.00)")
	assert.Contains(t, sql, "(1, 'Pro', '[1,2]'::jsonb, 99.50)")
	assert.Less(t, strings.Index(sql, "(1, 'flows'"), strings.Index(sql, "(2, 'l_oreal"), "módulos ordenados por id")
}
