// Package catalog contiene lógica pura del catálogo, sin dependencias de
// infraestructura ni de estado de UI.
package catalog

// OptionGroup un grupo de opciones de variante declarado por el usuario,
// p. ej. {Name: "Size", Values: ["S", "M", "L"]}.
type OptionGroup struct {
	Name   string
	Values []string
}

// Combination una instanciación concreta: un valor por cada grupo declarado.
type Combination map[string]string

// Combinations expande los grupos al producto cartesiano de sus valores.
//
// El orden es determinista y lexicográfico sobre el orden de declaración: el
// primer grupo varía más lento y el último más rápido, cada uno en el orden
// en que se declararon sus valores. Grupos sin valores anulan el producto.
func Combinations(groups []OptionGroup) []Combination {
	if len(groups) == 0 {
		return nil
	}
	for _, g := range groups {
		if len(g.Values) == 0 {
			return nil
		}
	}

	total := 1
	for _, g := range groups {
		total *= len(g.Values)
	}

	out := make([]Combination, 0, total)
	indices := make([]int, len(groups))
	for {
		combo := make(Combination, len(groups))
		for i, g := range groups {
			combo[g.Name] = g.Values[indices[i]]
		}
		out = append(out, combo)

		// Avanzar como un odómetro: el último grupo es el dígito menos significativo.
		pos := len(groups) - 1
		for pos >= 0 {
			indices[pos]++
			if indices[pos] < len(groups[pos].Values) {
				break
			}
			indices[pos] = 0
			pos--
		}
		if pos < 0 {
			return out
		}
	}
}
