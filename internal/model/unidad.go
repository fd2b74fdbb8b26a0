package model

// Unidades enumerates the measurement units the app offers when adding an
// item. The labels match what the legacy spreadsheet stored, parentheses
// included, so old rows keep rendering as-is.
var Unidades = []string{
	"U (Unidad)",
	"kg",
	"g",
	"lb (Libra)",
	"L (Litro)",
	"ml",
}

// UnidadValida reports whether u is one of the offered units.
func UnidadValida(u string) bool {
	for _, conocida := range Unidades {
		if u == conocida {
			return true
		}
	}
	return false
}
