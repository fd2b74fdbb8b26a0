package model

import (
	"sort"
	"strings"
	"unicode"
)

// Categoria is the closed set of shopping categories. The declaration order
// below is the market-walk order used everywhere a lista is rendered or
// persisted: produce first, cleaning products last.
type Categoria string

const (
	CategoriaVerduras  Categoria = "Verduras"
	CategoriaFrutas    Categoria = "Frutas"
	CategoriaCarnes    Categoria = "Carnes"
	CategoriaAbarrotes Categoria = "Abarrotes"
	CategoriaLimpieza  Categoria = "Limpieza"
	CategoriaOtros     Categoria = "Otros"
)

// Categorias enumerates the closed set in precedence order.
var Categorias = []Categoria{
	CategoriaVerduras,
	CategoriaFrutas,
	CategoriaCarnes,
	CategoriaAbarrotes,
	CategoriaLimpieza,
	CategoriaOtros,
}

var rangoCategoria = func() map[Categoria]int {
	m := make(map[Categoria]int, len(Categorias))
	for i, c := range Categorias {
		m[c] = i
	}
	return m
}()

// etiquetas are the display labels the UI shows; the emoji prefixes match
// the worksheets written by the legacy spreadsheet app.
var etiquetas = map[Categoria]string{
	CategoriaVerduras:  "🥦 Verduras",
	CategoriaFrutas:    "🍓 Frutas",
	CategoriaCarnes:    "🥩 Carnes",
	CategoriaAbarrotes: "🛒 Abarrotes",
	CategoriaLimpieza:  "🧼 Limpieza",
	CategoriaOtros:     "📦 Otros",
}

// Rank returns the sort precedence of c. The order is total and strict for
// the closed set; any unrecognized value ranks after every known category so
// that sorting never fails on foreign data.
func (c Categoria) Rank() int {
	if r, ok := rangoCategoria[c]; ok {
		return r
	}
	return len(Categorias)
}

// Valida reports whether c belongs to the closed set.
func (c Categoria) Valida() bool {
	_, ok := rangoCategoria[c]
	return ok
}

// Etiqueta returns the emoji-prefixed display label, or the raw value for
// categories outside the closed set.
func (c Categoria) Etiqueta() string {
	if e, ok := etiquetas[c]; ok {
		return e
	}
	return string(c)
}

// ParseCategoria normalizes a raw backend cell into a Categoria. Cells
// written by the legacy app carry an emoji prefix ("🥦 Verduras"); those and
// case variants map onto the closed set. Anything else is preserved verbatim
// so it round-trips unchanged and ranks last; unknown categories are not an
// error.
func ParseCategoria(raw string) Categoria {
	s := strings.TrimSpace(raw)
	if s == "" {
		return CategoriaOtros
	}
	if Categoria(s).Valida() {
		return Categoria(s)
	}
	limpio := strings.TrimLeftFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	limpio = strings.TrimSpace(limpio)
	for _, c := range Categorias {
		if strings.EqualFold(limpio, string(c)) {
			return c
		}
	}
	return Categoria(s)
}

// OrdenarItems sorts items in place by category precedence. The sort is
// stable, so within one category the caller's insertion order survives.
func OrdenarItems(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Categoria.Rank() < items[j].Categoria.Rank()
	})
}
