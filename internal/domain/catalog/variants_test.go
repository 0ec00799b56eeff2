package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/negocio-api/internal/domain/catalog"
)

func TestCombinations_ProductoCartesiano(t *testing.T) {
	groups := []catalog.OptionGroup{
		{Name: "Size", Values: []string{"S", "M"}},
		{Name: "Color", Values: []string{"Red", "Blue", "Green"}},
	}

	got := catalog.Combinations(groups)
	require.Len(t, got, 6, "2 tallas x 3 colores = 6 combinaciones")

	// Orden lexicográfico sobre el orden de declaración: Size varía más lento.
	want := []catalog.Combination{
		{"Size": "S", "Color": "Red"},
		{"Size": "S", "Color": "Blue"},
		{"Size": "S", "Color": "Green"},
		{"Size": "M", "Color": "Red"},
		{"Size": "M", "Color": "Blue"},
		{"Size": "M", "Color": "Green"},
	}
	assert.Equal(t, want, got)
}

func TestCombinations_UnSoloGrupo(t *testing.T) {
	got := catalog.Combinations([]catalog.OptionGroup{
		{Name: "Size", Values: []string{"S", "M", "L"}},
	})
	require.Len(t, got, 3)
	assert.Equal(t, "S", got[0]["Size"])
	assert.Equal(t, "L", got[2]["Size"])
}

func TestCombinations_Deterministico(t *testing.T) {
	groups := []catalog.OptionGroup{
		{Name: "A", Values: []string{"1", "2"}},
		{Name: "B", Values: []string{"x", "y"}},
		{Name: "C", Values: []string{"p", "q"}},
	}
	first := catalog.Combinations(groups)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, catalog.Combinations(groups), "el orden no puede depender de la iteración")
	}
}

func TestCombinations_GrupoVacioAnulaElProducto(t *testing.T) {
	got := catalog.Combinations([]catalog.OptionGroup{
		{Name: "Size", Values: []string{"S"}},
		{Name: "Color", Values: nil},
	})
	assert.Nil(t, got)
}

func TestCombinations_SinGrupos(t *testing.T) {
	assert.Nil(t, catalog.Combinations(nil))
}
