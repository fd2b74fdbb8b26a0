package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/chars222/lista-compras/internal/codec"
	"github.com/chars222/lista-compras/internal/metrics"
	"github.com/chars222/lista-compras/internal/model"
	"github.com/chars222/lista-compras/internal/tabular"
)

// ErrListaNoEncontrada marks lookups and deletes that reference a lista the
// backend does not hold.
var ErrListaNoEncontrada = errors.New("lista no encontrada")

// Column layout of the flat backend table. One row per item, with the lista
// fields repeated on each row. A lista without items persists as a single
// marker row whose item_name is blank.
const (
	colListaID = iota
	colListaNombre
	colCreadaEn
	colItemNombre
	colCategoria
	colCantidad
	colUnidad
	colComprado
	colPrecioUnitario
	numColumnas
)

var encabezado = []string{
	"list_id", "list_name", "created_at",
	"item_name", "category", "quantity", "unit", "purchased", "unit_price",
}

// ListaRepository persists listas on a tabular.Store. Every operation is a
// full round trip against the backend; nothing is cached in process, so an
// edit made directly on the backing sheet is visible on the next call.
type ListaRepository interface {
	CargarTodas(ctx context.Context) ([]model.Lista, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Lista, error)
	Guardar(ctx context.Context, lista *model.Lista) error
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type tabularListaRepo struct {
	store tabular.Store
}

func NewListaRepository(store tabular.Store) ListaRepository {
	return &tabularListaRepo{store: store}
}

// CargarTodas reads the whole table and reassembles the listas, ordered by
// creation time ascending (lista ID as tie-break). Rows that cannot be
// attributed to a lista are logged, counted and skipped; one bad row never
// takes the rest of the data down with it.
func (r *tabularListaRepo) CargarTodas(ctx context.Context) ([]model.Lista, error) {
	filas, err := r.store.ReadAllRows(ctx)
	metrics.Observar("leer", err)
	if err != nil {
		return nil, fmt.Errorf("leer backend: %w", err)
	}

	porID := make(map[uuid.UUID]*model.Lista)
	var orden []uuid.UUID
	for i, cruda := range filas {
		if i == 0 && esEncabezado(cruda) {
			continue
		}
		fila := rellenar(cruda)
		id, err := uuid.Parse(strings.TrimSpace(fila[colListaID]))
		if err != nil {
			metrics.FilasInvalidas.Inc()
			log.Warn().Int("fila", i+1).Str("list_id", fila[colListaID]).
				Msg("Fila con list_id inválido, se omite")
			continue
		}

		l, ok := porID[id]
		if !ok {
			l = &model.Lista{ID: id, Items: []model.Item{}}
			porID[id] = l
			orden = append(orden, id)
		}
		// The lista fields repeat on every row; the first row that carries a
		// usable value wins.
		if l.Nombre == "" {
			l.Nombre = strings.TrimSpace(fila[colListaNombre])
		}
		if l.CreadaEn.IsZero() {
			l.CreadaEn = codec.DecodeTime(fila[colCreadaEn])
		}

		nombreItem := strings.TrimSpace(fila[colItemNombre])
		if nombreItem == "" {
			// Marker row of an empty lista.
			continue
		}
		item := model.Item{
			Nombre:    nombreItem,
			Categoria: model.ParseCategoria(fila[colCategoria]),
			Cantidad:  codec.DecodeDecimal(fila[colCantidad]),
			Unidad:    strings.TrimSpace(fila[colUnidad]),
			Comprado:  codec.DecodeBool(fila[colComprado]),
		}
		if item.Comprado {
			item.PrecioUnitario = codec.DecodeDecimal(fila[colPrecioUnitario])
		} else {
			item.PrecioUnitario = decimal.Zero
		}
		l.Items = append(l.Items, item)
	}

	listas := make([]model.Lista, 0, len(orden))
	for _, id := range orden {
		l := porID[id]
		l.Ordenar()
		listas = append(listas, *l)
	}
	sort.SliceStable(listas, func(i, j int) bool {
		if !listas[i].CreadaEn.Equal(listas[j].CreadaEn) {
			return listas[i].CreadaEn.Before(listas[j].CreadaEn)
		}
		return listas[i].ID.String() < listas[j].ID.String()
	})
	return listas, nil
}

func (r *tabularListaRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Lista, error) {
	listas, err := r.CargarTodas(ctx)
	if err != nil {
		return nil, err
	}
	for i := range listas {
		if listas[i].ID == id {
			return &listas[i], nil
		}
	}
	return nil, ErrListaNoEncontrada
}

// Guardar writes lista back as a full round trip: read everything, drop the
// lista's previous rows, keep every other row untouched (including rows this
// version cannot parse) and append the lista's fresh block. Saving the same
// lista twice leaves the table byte-identical, so retries are safe.
func (r *tabularListaRepo) Guardar(ctx context.Context, lista *model.Lista) error {
	lista.Ordenar()

	filas, err := r.store.ReadAllRows(ctx)
	metrics.Observar("leer", err)
	if err != nil {
		return fmt.Errorf("leer backend: %w", err)
	}

	id := lista.ID.String()
	nuevas := make([][]string, 0, len(filas)+len(lista.Items)+2)
	nuevas = append(nuevas, encabezado)
	for i, fila := range filas {
		if i == 0 && esEncabezado(fila) {
			continue
		}
		if len(fila) > colListaID && strings.TrimSpace(fila[colListaID]) == id {
			continue
		}
		nuevas = append(nuevas, fila)
	}
	nuevas = append(nuevas, filasDeLista(lista)...)

	err = r.store.WriteRows(ctx, nuevas)
	metrics.Observar("escribir", err)
	if err != nil {
		return fmt.Errorf("escribir backend: %w", err)
	}
	return nil
}

// Eliminar removes every row of the lista. The header is rewritten even if
// only it remains, so a freshly emptied table keeps its schema.
func (r *tabularListaRepo) Eliminar(ctx context.Context, id uuid.UUID) error {
	filas, err := r.store.ReadAllRows(ctx)
	metrics.Observar("leer", err)
	if err != nil {
		return fmt.Errorf("leer backend: %w", err)
	}

	idStr := id.String()
	encontrada := false
	nuevas := make([][]string, 0, len(filas)+1)
	nuevas = append(nuevas, encabezado)
	for i, fila := range filas {
		if i == 0 && esEncabezado(fila) {
			continue
		}
		if len(fila) > colListaID && strings.TrimSpace(fila[colListaID]) == idStr {
			encontrada = true
			continue
		}
		nuevas = append(nuevas, fila)
	}
	if !encontrada {
		return ErrListaNoEncontrada
	}

	err = r.store.WriteRows(ctx, nuevas)
	metrics.Observar("escribir", err)
	if err != nil {
		return fmt.Errorf("escribir backend: %w", err)
	}
	return nil
}

// ── Helpers ───────────────────────────────────────────────────────────────

func esEncabezado(fila []string) bool {
	return len(fila) > 0 && strings.EqualFold(strings.TrimSpace(fila[0]), encabezado[0])
}

// rellenar pads a short row out to the full column count. Sheets trim
// trailing empty cells on read, so ragged rows are routine, not corruption.
func rellenar(fila []string) []string {
	if len(fila) >= numColumnas {
		return fila
	}
	out := make([]string, numColumnas)
	copy(out, fila)
	return out
}

func filasDeLista(l *model.Lista) [][]string {
	if len(l.Items) == 0 {
		fila := make([]string, numColumnas)
		fila[colListaID] = l.ID.String()
		fila[colListaNombre] = l.Nombre
		fila[colCreadaEn] = codec.EncodeTime(l.CreadaEn)
		return [][]string{fila}
	}
	filas := make([][]string, 0, len(l.Items))
	for _, it := range l.Items {
		filas = append(filas, []string{
			l.ID.String(),
			l.Nombre,
			codec.EncodeTime(l.CreadaEn),
			it.Nombre,
			string(it.Categoria),
			codec.EncodeDecimal(it.Cantidad),
			it.Unidad,
			codec.EncodeBool(it.Comprado),
			codec.EncodeDecimal(it.PrecioUnitario),
		})
	}
	return filas
}
