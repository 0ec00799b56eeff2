package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/negocio-api/pkg/money"
)

// La conversión decimal -> centavos debe ser exacta para entradas de 2 decimales
// (24.99 nunca puede convertirse en 2498 por redondeo flotante).
func TestToCents_Exacto(t *testing.T) {
	cases := map[string]int64{
		"24.99":  2499,
		"0.01":   1,
		"0.10":   10,
		"999":    99900,
		"9.9":    990,
		"123.45": 12345,
		"0":      0,
	}
	for in, want := range cases {
		got, err := money.ToCents(in)
		require.NoError(t, err, "entrada %q", in)
		assert.Equal(t, want, got, "entrada %q", in)
	}
}

func TestToCents_RechazaMasDeDosDecimales(t *testing.T) {
	_, err := money.ToCents("24.999")
	assert.Error(t, err, "tres decimales no son representables en centavos")
}

func TestToCents_RechazaNoNumerico(t *testing.T) {
	_, err := money.ToCents("abc")
	assert.Error(t, err)
}

func TestFromCents(t *testing.T) {
	assert.Equal(t, "24.99", money.FromCents(2499))
	assert.Equal(t, "0.05", money.FromCents(5))
	assert.Equal(t, "10.00", money.FromCents(1000))
}

// Round-trip: todo valor en centavos debe sobrevivir el viaje a decimal y de vuelta.
func TestRoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 1, 99, 100, 2499, 999999} {
		got, err := money.ToCents(money.FromCents(cents))
		require.NoError(t, err)
		assert.Equal(t, cents, got)
	}
}
