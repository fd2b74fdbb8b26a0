package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankEsOrdenTotal(t *testing.T) {
	vistos := make(map[int]Categoria, len(Categorias))
	for _, c := range Categorias {
		r := c.Rank()
		_, repetido := vistos[r]
		require.False(t, repetido, "rank %d repetido", r)
		vistos[r] = c
	}
	assert.Equal(t, 0, CategoriaVerduras.Rank())
	assert.Equal(t, 5, CategoriaOtros.Rank())
}

func TestRankDesconocidaVaAlFinal(t *testing.T) {
	desconocida := Categoria("Mascotas")
	assert.False(t, desconocida.Valida())
	for _, c := range Categorias {
		assert.Less(t, c.Rank(), desconocida.Rank())
	}
}

func TestParseCategoria(t *testing.T) {
	casos := []struct {
		celda  string
		quiere Categoria
	}{
		{"Verduras", CategoriaVerduras},
		{"🥦 Verduras", CategoriaVerduras},
		{"🧼 Limpieza", CategoriaLimpieza},
		{"frutas", CategoriaFrutas},
		{"  🛒 Abarrotes  ", CategoriaAbarrotes},
		{"", CategoriaOtros},
		{"Mascotas", Categoria("Mascotas")},
	}
	for _, c := range casos {
		assert.Equal(t, c.quiere, ParseCategoria(c.celda), "celda %q", c.celda)
	}
}

func TestEtiqueta(t *testing.T) {
	assert.Equal(t, "🥩 Carnes", CategoriaCarnes.Etiqueta())
	assert.Equal(t, "Mascotas", Categoria("Mascotas").Etiqueta())
}

func TestOrdenarItemsEstable(t *testing.T) {
	items := []Item{
		{Nombre: "Detergente", Categoria: CategoriaLimpieza},
		{Nombre: "Lechuga", Categoria: CategoriaVerduras},
		{Nombre: "Croquetas", Categoria: Categoria("Mascotas")},
		{Nombre: "Arroz", Categoria: CategoriaAbarrotes},
		{Nombre: "Tomate", Categoria: CategoriaVerduras},
		{Nombre: "Fideos", Categoria: CategoriaAbarrotes},
	}
	OrdenarItems(items)

	nombres := make([]string, len(items))
	for i, it := range items {
		nombres[i] = it.Nombre
	}
	// Within Verduras and Abarrotes the insertion order survives; the
	// unknown category lands last.
	assert.Equal(t, []string{"Lechuga", "Tomate", "Arroz", "Fideos", "Detergente", "Croquetas"}, nombres)
}
