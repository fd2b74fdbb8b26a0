package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chars222/lista-compras/internal/model"
	"github.com/chars222/lista-compras/internal/tabular"
)

func nuevaListaDePrueba(nombre string, creada time.Time) *model.Lista {
	return &model.Lista{
		ID:       uuid.New(),
		Nombre:   nombre,
		CreadaEn: creada,
		Items:    []model.Item{},
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestGuardarYCargarRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := tabular.NewMemory()
	repo := NewListaRepository(store)

	l := nuevaListaDePrueba("Lista semanal", time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC))
	l.Items = []model.Item{
		{Nombre: "Detergente", Categoria: model.CategoriaLimpieza, Cantidad: dec("1"), Unidad: "U (Unidad)"},
		{Nombre: "Tomate", Categoria: model.CategoriaVerduras, Cantidad: dec("2.5"), Unidad: "kg"},
		{Nombre: "Queso", Categoria: model.CategoriaAbarrotes, Cantidad: dec("0.5"), Unidad: "kg",
			Comprado: true, PrecioUnitario: dec("8.40")},
	}
	require.NoError(t, repo.Guardar(ctx, l))

	listas, err := repo.CargarTodas(ctx)
	require.NoError(t, err)
	require.Len(t, listas, 1)

	cargada := listas[0]
	assert.Equal(t, l.ID, cargada.ID)
	assert.Equal(t, "Lista semanal", cargada.Nombre)
	assert.True(t, l.CreadaEn.Equal(cargada.CreadaEn))
	require.Len(t, cargada.Items, 3)

	// Category order: Verduras before Abarrotes before Limpieza.
	assert.Equal(t, "Tomate", cargada.Items[0].Nombre)
	assert.Equal(t, "Queso", cargada.Items[1].Nombre)
	assert.Equal(t, "Detergente", cargada.Items[2].Nombre)

	queso := cargada.Items[1]
	assert.True(t, queso.Comprado)
	assert.True(t, queso.Cantidad.Equal(dec("0.5")))
	assert.True(t, queso.PrecioUnitario.Equal(dec("8.40")))
	assert.True(t, queso.Subtotal().Equal(dec("4.20")))
}

func TestGuardarEsIdempotente(t *testing.T) {
	ctx := context.Background()
	store := tabular.NewMemory()
	repo := NewListaRepository(store)

	l := nuevaListaDePrueba("Repetida", time.Now().UTC())
	l.Items = []model.Item{
		{Nombre: "Pan", Categoria: model.CategoriaAbarrotes, Cantidad: dec("1"), Unidad: "U (Unidad)"},
	}
	require.NoError(t, repo.Guardar(ctx, l))

	primera, err := store.ReadAllRows(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.Guardar(ctx, l))
	segunda, err := store.ReadAllRows(ctx)
	require.NoError(t, err)

	assert.Equal(t, primera, segunda, "guardar dos veces no debe cambiar el backend")
}

func TestListaVaciaPersiste(t *testing.T) {
	ctx := context.Background()
	store := tabular.NewMemory()
	repo := NewListaRepository(store)

	l := nuevaListaDePrueba("Sin items", time.Now().UTC())
	require.NoError(t, repo.Guardar(ctx, l))

	filas, err := store.ReadAllRows(ctx)
	require.NoError(t, err)
	require.Len(t, filas, 2, "encabezado más una fila marcadora")
	assert.Equal(t, l.ID.String(), filas[1][0])
	assert.Empty(t, filas[1][3], "la fila marcadora no lleva item")

	cargada, err := repo.ObtenerPorID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sin items", cargada.Nombre)
	assert.Empty(t, cargada.Items)
}

func TestCargarToleraFilasInvalidas(t *testing.T) {
	ctx := context.Background()
	store := tabular.NewMemory()
	repo := NewListaRepository(store)

	l := nuevaListaDePrueba("Buena", time.Now().UTC())
	l.Items = []model.Item{
		{Nombre: "Arroz", Categoria: model.CategoriaAbarrotes, Cantidad: dec("1"), Unidad: "kg"},
	}
	require.NoError(t, repo.Guardar(ctx, l))

	// Garbage rows typed straight into the sheet.
	require.NoError(t, store.AppendRows(ctx, [][]string{
		{"esto-no-es-uuid", "Rota", "ayer", "Cosa", "x", "-", "-", "-", "-"},
		{},
	}))

	listas, err := repo.CargarTodas(ctx)
	require.NoError(t, err)
	require.Len(t, listas, 1)
	assert.Equal(t, "Buena", listas[0].Nombre)
	require.Len(t, listas[0].Items, 1)
}

func TestCargarFormatoHeredado(t *testing.T) {
	// A worksheet written by the old spreadsheet app: comma decimals,
	// Spanish checkbox values, emoji category labels and a ragged last row.
	ctx := context.Background()
	store := tabular.NewMemory()
	repo := NewListaRepository(store)

	id := uuid.New()
	require.NoError(t, store.WriteRows(ctx, [][]string{
		{"list_id", "list_name", "created_at", "item_name", "category", "quantity", "unit", "purchased", "unit_price"},
		{id.String(), "Semana 12", "2024-11-03T09:00:00Z", "Tomate", "🥦 Verduras", "2,5", "kg", "VERDADERO", "1,75"},
		{id.String(), "Semana 12", "2024-11-03T09:00:00Z", "Lavandina", "🧼 Limpieza", "1", "L (Litro)", "FALSO", "3,10"},
		{id.String(), "Semana 12", "2024-11-03T09:00:00Z", "Pan", "🛒 Abarrotes", "", ""},
	}))

	listas, err := repo.CargarTodas(ctx)
	require.NoError(t, err)
	require.Len(t, listas, 1)
	require.Len(t, listas[0].Items, 3)

	tomate := listas[0].Items[0]
	assert.Equal(t, model.CategoriaVerduras, tomate.Categoria)
	assert.True(t, tomate.Cantidad.Equal(dec("2.5")))
	assert.True(t, tomate.Comprado)
	assert.True(t, tomate.PrecioUnitario.Equal(dec("1.75")))

	pan := listas[0].Items[1]
	assert.Equal(t, model.CategoriaAbarrotes, pan.Categoria)
	assert.True(t, pan.Cantidad.IsZero())
	assert.False(t, pan.Comprado)

	lavandina := listas[0].Items[2]
	assert.False(t, lavandina.Comprado)
	assert.True(t, lavandina.PrecioUnitario.IsZero(),
		"un item sin comprar se normaliza a precio cero aunque la celda traiga algo")
}

func TestCargarOrdenaPorCreacion(t *testing.T) {
	ctx := context.Background()
	store := tabular.NewMemory()
	repo := NewListaRepository(store)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	vieja := nuevaListaDePrueba("Vieja", base)
	nueva := nuevaListaDePrueba("Nueva", base.Add(48*time.Hour))
	media := nuevaListaDePrueba("Media", base.Add(24*time.Hour))

	// Saved out of order on purpose.
	require.NoError(t, repo.Guardar(ctx, nueva))
	require.NoError(t, repo.Guardar(ctx, vieja))
	require.NoError(t, repo.Guardar(ctx, media))

	listas, err := repo.CargarTodas(ctx)
	require.NoError(t, err)
	require.Len(t, listas, 3)
	assert.Equal(t, "Vieja", listas[0].Nombre)
	assert.Equal(t, "Media", listas[1].Nombre)
	assert.Equal(t, "Nueva", listas[2].Nombre)
}

func TestCargarDesempataPorID(t *testing.T) {
	ctx := context.Background()
	store := tabular.NewMemory()
	repo := NewListaRepository(store)

	creada := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	a := nuevaListaDePrueba("A", creada)
	b := nuevaListaDePrueba("B", creada)
	require.NoError(t, repo.Guardar(ctx, b))
	require.NoError(t, repo.Guardar(ctx, a))

	listas, err := repo.CargarTodas(ctx)
	require.NoError(t, err)
	require.Len(t, listas, 2)
	assert.Less(t, listas[0].ID.String(), listas[1].ID.String(),
		"con la misma fecha decide el ID lexicográfico")
}

func TestGuardarNoTocaOtrasListas(t *testing.T) {
	ctx := context.Background()
	store := tabular.NewMemory()
	repo := NewListaRepository(store)

	otra := nuevaListaDePrueba("Ajena", time.Now().UTC())
	otra.Items = []model.Item{
		{Nombre: "Leche", Categoria: model.CategoriaAbarrotes, Cantidad: dec("1"), Unidad: "L (Litro)"},
	}
	require.NoError(t, repo.Guardar(ctx, otra))

	// A row no parser of this version understands.
	require.NoError(t, store.AppendRows(ctx, [][]string{
		{"fila-extraña", "de", "otro", "programa"},
	}))

	mia := nuevaListaDePrueba("Mía", time.Now().UTC())
	require.NoError(t, repo.Guardar(ctx, mia))

	filas, err := store.ReadAllRows(ctx)
	require.NoError(t, err)
	assert.Contains(t, filas, []string{"fila-extraña", "de", "otro", "programa"},
		"guardar una lista no destruye filas ajenas aunque no se entiendan")

	listas, err := repo.CargarTodas(ctx)
	require.NoError(t, err)
	assert.Len(t, listas, 2)
}

func TestEliminar(t *testing.T) {
	ctx := context.Background()
	store := tabular.NewMemory()
	repo := NewListaRepository(store)

	a := nuevaListaDePrueba("A", time.Now().UTC())
	a.Items = []model.Item{
		{Nombre: "Pan", Categoria: model.CategoriaAbarrotes, Cantidad: dec("1"), Unidad: "U (Unidad)"},
	}
	b := nuevaListaDePrueba("B", time.Now().UTC())
	require.NoError(t, repo.Guardar(ctx, a))
	require.NoError(t, repo.Guardar(ctx, b))

	require.NoError(t, repo.Eliminar(ctx, a.ID))

	listas, err := repo.CargarTodas(ctx)
	require.NoError(t, err)
	require.Len(t, listas, 1)
	assert.Equal(t, "B", listas[0].Nombre)

	err = repo.Eliminar(ctx, a.ID)
	assert.ErrorIs(t, err, ErrListaNoEncontrada)

	_, err = repo.ObtenerPorID(ctx, a.ID)
	assert.ErrorIs(t, err, ErrListaNoEncontrada)
}
