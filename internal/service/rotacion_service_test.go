package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chars222/lista-compras/internal/dto"
	"github.com/chars222/lista-compras/internal/model"
	"github.com/chars222/lista-compras/internal/repository"
	"github.com/chars222/lista-compras/internal/tabular"
)

// ── Shared test helpers ───────────────────────────────────────────────────

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func repoEnMemoria() (repository.ListaRepository, *tabular.Memory) {
	store := tabular.NewMemory()
	return repository.NewListaRepository(store), store
}

// sembrarLista persists a lista with a fixed creation date, bypassing the
// rotation path.
func sembrarLista(t *testing.T, repo repository.ListaRepository, nombre string, creada time.Time, items ...model.Item) *model.Lista {
	t.Helper()
	l := &model.Lista{ID: uuid.New(), Nombre: nombre, CreadaEn: creada, Items: items}
	require.NoError(t, repo.Guardar(context.Background(), l))
	return l
}

func fecha(dia int) time.Time {
	return time.Date(2025, 6, dia, 12, 0, 0, 0, time.UTC)
}

// ── Crear ─────────────────────────────────────────────────────────────────

func TestCrearListaVacia(t *testing.T) {
	repo, _ := repoEnMemoria()
	svc := NewRotacionService(repo, 10)

	resp, err := svc.Crear(context.Background(), dto.CrearListaRequest{Nombre: "Feria del sábado"})
	require.NoError(t, err)
	assert.Equal(t, "Feria del sábado", resp.Nombre)
	assert.Empty(t, resp.Items)

	lista, err := svc.Listar(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, lista.Total)
	assert.Equal(t, resp.ID, lista.Data[0].ID)
}

func TestCrearSinNombreUsaLaFecha(t *testing.T) {
	repo, _ := repoEnMemoria()
	svc := NewRotacionService(repo, 10)

	resp, err := svc.Crear(context.Background(), dto.CrearListaRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Lista "+time.Now().Format("2006-01-02"), resp.Nombre)
}

func TestCrearRechazaNombreDuplicado(t *testing.T) {
	repo, _ := repoEnMemoria()
	svc := NewRotacionService(repo, 10)

	_, err := svc.Crear(context.Background(), dto.CrearListaRequest{Nombre: "Semana 1"})
	require.NoError(t, err)

	_, err = svc.Crear(context.Background(), dto.CrearListaRequest{Nombre: "Semana 1"})
	assert.ErrorIs(t, err, ErrNombreDuplicado)
}

func TestCrearDesdePlantilla(t *testing.T) {
	repo, _ := repoEnMemoria()
	svc := NewRotacionService(repo, 10)

	resp, err := svc.Crear(context.Background(), dto.CrearListaRequest{Nombre: "Semanal", Base: "plantilla"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Items)

	assert.Equal(t, "Tomates", resp.Items[0].Nombre, "la plantilla arranca por verduras")
	for _, it := range resp.Items {
		assert.False(t, it.Comprado, "%s no debe venir marcado", it.Nombre)
		assert.True(t, it.PrecioUnitario.IsZero(), "%s no debe traer precio", it.Nombre)
	}

	// Category blocks come in precedence order.
	ultimoRango := -1
	for _, it := range resp.Items {
		rango := model.Categoria(it.Categoria).Rank()
		assert.GreaterOrEqual(t, rango, ultimoRango)
		ultimoRango = rango
	}
}

func TestCrearComoCopiaReiniciaPreciosYMarcas(t *testing.T) {
	repo, _ := repoEnMemoria()
	svc := NewRotacionService(repo, 10)

	origen := sembrarLista(t, repo, "Base", fecha(1),
		model.Item{Nombre: "Queso", Categoria: model.CategoriaAbarrotes, Cantidad: dec("0.5"),
			Unidad: "kg", Comprado: true, PrecioUnitario: dec("22")},
		model.Item{Nombre: "Tomates", Categoria: model.CategoriaVerduras, Cantidad: dec("1"), Unidad: "kg"},
	)

	origenID := origen.ID.String()
	resp, err := svc.Crear(context.Background(), dto.CrearListaRequest{
		Nombre: "Semana nueva", Base: "copia", CopiaDe: &origenID,
	})
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	for _, it := range resp.Items {
		assert.False(t, it.Comprado)
		assert.True(t, it.PrecioUnitario.IsZero())
	}
	// Quantities and units do survive the copy.
	assert.Equal(t, "Tomates", resp.Items[0].Nombre)
	assert.True(t, resp.Items[0].Cantidad.Equal(dec("1")))
}

func TestCrearCopiaDeListaInexistente(t *testing.T) {
	repo, _ := repoEnMemoria()
	svc := NewRotacionService(repo, 10)

	ajeno := uuid.NewString()
	_, err := svc.Crear(context.Background(), dto.CrearListaRequest{
		Nombre: "X", Base: "copia", CopiaDe: &ajeno,
	})
	assert.ErrorIs(t, err, repository.ErrListaNoEncontrada)

	_, err = svc.Crear(context.Background(), dto.CrearListaRequest{Nombre: "Y", Base: "copia"})
	assert.ErrorIs(t, err, ErrCopiaSinOrigen)
}

// ── Rotación ──────────────────────────────────────────────────────────────

func TestRotacionEliminaLaMasAntigua(t *testing.T) {
	repo, _ := repoEnMemoria()
	svc := NewRotacionService(repo, 3)

	vieja := sembrarLista(t, repo, "Enero", fecha(1))
	sembrarLista(t, repo, "Febrero", fecha(2))
	sembrarLista(t, repo, "Marzo", fecha(3))

	resp, err := svc.Crear(context.Background(), dto.CrearListaRequest{Nombre: "Abril"})
	require.NoError(t, err)

	lista, err := svc.Listar(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, lista.Total, "crear con el cupo lleno mantiene el máximo")

	nombres := make([]string, 0, 3)
	for _, r := range lista.Data {
		nombres = append(nombres, r.Nombre)
		assert.NotEqual(t, vieja.ID.String(), r.ID, "la más antigua debe desaparecer")
	}
	assert.Equal(t, []string{"Febrero", "Marzo", "Abril"}, nombres)
	assert.Equal(t, "Abril", resp.Nombre)
}

func TestRotacionNoActuaBajoElMaximo(t *testing.T) {
	repo, _ := repoEnMemoria()
	svc := NewRotacionService(repo, 3)

	sembrarLista(t, repo, "Enero", fecha(1))
	sembrarLista(t, repo, "Febrero", fecha(2))

	_, err := svc.Crear(context.Background(), dto.CrearListaRequest{Nombre: "Marzo"})
	require.NoError(t, err)

	lista, err := svc.Listar(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, lista.Total, "con hueco libre no se elimina nada")
}

func TestRotacionDesempataPorID(t *testing.T) {
	repo, _ := repoEnMemoria()
	svc := NewRotacionService(repo, 2)

	misma := fecha(1)
	a := sembrarLista(t, repo, "Gemela A", misma)
	b := sembrarLista(t, repo, "Gemela B", misma)

	victima, superviviente := a, b
	if b.ID.String() < a.ID.String() {
		victima, superviviente = b, a
	}

	_, err := svc.Crear(context.Background(), dto.CrearListaRequest{Nombre: "Nueva"})
	require.NoError(t, err)

	lista, err := svc.Listar(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, lista.Total)
	ids := []string{lista.Data[0].ID, lista.Data[1].ID}
	assert.Contains(t, ids, superviviente.ID.String())
	assert.NotContains(t, ids, victima.ID.String(), "empate de fecha: cae el ID menor")
}

func TestRotacionSaneaExcedentes(t *testing.T) {
	// If someone stuffed the backend past the cap by hand, creating once
	// brings it back under the cap.
	repo, _ := repoEnMemoria()
	svc := NewRotacionService(repo, 2)

	sembrarLista(t, repo, "Uno", fecha(1))
	sembrarLista(t, repo, "Dos", fecha(2))
	sembrarLista(t, repo, "Tres", fecha(3))

	_, err := svc.Crear(context.Background(), dto.CrearListaRequest{Nombre: "Cuatro"})
	require.NoError(t, err)

	lista, err := svc.Listar(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, lista.Total)
	assert.Equal(t, "Tres", lista.Data[0].Nombre)
	assert.Equal(t, "Cuatro", lista.Data[1].Nombre)
}

// ── Eliminar ──────────────────────────────────────────────────────────────

func TestEliminarLista(t *testing.T) {
	repo, _ := repoEnMemoria()
	svc := NewRotacionService(repo, 10)

	l := sembrarLista(t, repo, "Borrable", fecha(1))
	require.NoError(t, svc.Eliminar(context.Background(), l.ID))

	err := svc.Eliminar(context.Background(), l.ID)
	assert.ErrorIs(t, err, repository.ErrListaNoEncontrada)
}
