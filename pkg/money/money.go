package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Paquete money: conversión exacta entre representación decimal (UI) y
// centavos enteros (almacenamiento y API). Todos los montos persistidos son
// int64 en unidades menores; el decimal solo existe en la frontera.

var cien = decimal.NewFromInt(100)

// ToCents convierte un monto decimal en texto ("24.99") a centavos (2499).
// Rechaza montos con más de 2 decimales o no numéricos.
func ToCents(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("monto inválido %q: %w", s, err)
	}
	if d.Exponent() < -2 {
		return 0, fmt.Errorf("monto %q tiene más de 2 decimales", s)
	}
	return d.Mul(cien).IntPart(), nil
}

// FromCents convierte centavos a su representación decimal con 2 posiciones ("2499" -> "24.99").
func FromCents(cents int64) string {
	return decimal.NewFromInt(cents).Div(cien).StringFixed(2)
}
