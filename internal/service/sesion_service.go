package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chars222/lista-compras/internal/dto"
	"github.com/chars222/lista-compras/internal/model"
	"github.com/chars222/lista-compras/internal/repository"
)

var (
	ErrModoInvalido         = errors.New("modo desconocido")
	ErrOperacionNoPermitida = errors.New("operación no permitida en este modo")
	ErrItemNoEncontrado     = errors.New("item no encontrado en la lista")
	ErrItemDuplicado        = errors.New("ya existe un item con ese nombre")
	ErrNombreItemVacio      = errors.New("el nombre del item no puede quedar vacío")
	ErrCategoriaInvalida    = errors.New("categoría desconocida")
	ErrUnidadInvalida       = errors.New("unidad desconocida")
	ErrValorNegativo        = errors.New("el valor no puede ser negativo")
)

// SesionLista is a lista opened in a concrete mode. Planificación edits the
// contents; compra only checks items off and records what they cost. The
// pair travels through every operation explicitly instead of living in a
// process-wide global.
type SesionLista struct {
	Lista model.Lista
	Modo  model.Modo
}

// SesionService mutates a lista within its session. Every mutation persists
// before it is visible: on a failed save the session keeps its pre-mutation
// state, so what the caller sees always matches the backend.
type SesionService interface {
	Abrir(ctx context.Context, id uuid.UUID, modo model.Modo) (*SesionLista, error)
	CambiarModo(ses *SesionLista, modo model.Modo) error

	AgregarItem(ctx context.Context, ses *SesionLista, req dto.AgregarItemRequest) error
	EditarItem(ctx context.Context, ses *SesionLista, nombre string, req dto.EditarItemRequest) error
	QuitarItem(ctx context.Context, ses *SesionLista, nombre string) error

	MarcarComprado(ctx context.Context, ses *SesionLista, nombre string, precio decimal.Decimal) error
	DesmarcarComprado(ctx context.Context, ses *SesionLista, nombre string) error

	Totales(ses *SesionLista) dto.TotalesResponse
}

type sesionService struct {
	repo repository.ListaRepository
}

func NewSesionService(repo repository.ListaRepository) SesionService {
	return &sesionService{repo: repo}
}

func (s *sesionService) Abrir(ctx context.Context, id uuid.UUID, modo model.Modo) (*SesionLista, error) {
	if !modo.Valido() {
		return nil, ErrModoInvalido
	}
	lista, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &SesionLista{Lista: *lista, Modo: modo}, nil
}

// CambiarModo switches between planificación and compra. The transition
// touches nothing else: checked flags and recorded prices survive both
// directions.
func (s *sesionService) CambiarModo(ses *SesionLista, modo model.Modo) error {
	if !modo.Valido() {
		return ErrModoInvalido
	}
	ses.Modo = modo
	return nil
}

// ── Planificación ─────────────────────────────────────────────────────────

func (s *sesionService) AgregarItem(ctx context.Context, ses *SesionLista, req dto.AgregarItemRequest) error {
	if err := exigirModo(ses, model.ModoPlanificacion); err != nil {
		return err
	}
	cat := model.ParseCategoria(req.Categoria)
	if !cat.Valida() {
		return ErrCategoriaInvalida
	}
	if !model.UnidadValida(req.Unidad) {
		return ErrUnidadInvalida
	}
	if req.Cantidad.IsNegative() {
		return ErrValorNegativo
	}
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return ErrNombreItemVacio
	}
	if ses.Lista.BuscarItem(nombre) != nil {
		return ErrItemDuplicado
	}

	copia := ses.Lista.Clonar()
	copia.Items = append(copia.Items, model.Item{
		Nombre:         nombre,
		Categoria:      cat,
		Cantidad:       req.Cantidad,
		Unidad:         req.Unidad,
		Comprado:       false,
		PrecioUnitario: decimal.Zero,
	})
	return s.confirmar(ctx, ses, copia)
}

func (s *sesionService) EditarItem(ctx context.Context, ses *SesionLista, nombre string, req dto.EditarItemRequest) error {
	if err := exigirModo(ses, model.ModoPlanificacion); err != nil {
		return err
	}

	copia := ses.Lista.Clonar()
	item := copia.BuscarItem(nombre)
	if item == nil {
		return ErrItemNoEncontrado
	}

	if req.Nombre != nil {
		nuevo := strings.TrimSpace(*req.Nombre)
		if nuevo == "" {
			return ErrNombreItemVacio
		}
		if nuevo != item.Nombre && copia.BuscarItem(nuevo) != nil {
			return ErrItemDuplicado
		}
		item.Nombre = nuevo
	}
	if req.Categoria != nil {
		cat := model.ParseCategoria(*req.Categoria)
		if !cat.Valida() {
			return ErrCategoriaInvalida
		}
		item.Categoria = cat
	}
	if req.Cantidad != nil {
		if req.Cantidad.IsNegative() {
			return ErrValorNegativo
		}
		item.Cantidad = *req.Cantidad
	}
	if req.Unidad != nil {
		if !model.UnidadValida(*req.Unidad) {
			return ErrUnidadInvalida
		}
		item.Unidad = *req.Unidad
	}

	return s.confirmar(ctx, ses, copia)
}

func (s *sesionService) QuitarItem(ctx context.Context, ses *SesionLista, nombre string) error {
	if err := exigirModo(ses, model.ModoPlanificacion); err != nil {
		return err
	}
	copia := ses.Lista.Clonar()
	if !copia.QuitarItem(nombre) {
		return ErrItemNoEncontrado
	}
	return s.confirmar(ctx, ses, copia)
}

// ── Compra ────────────────────────────────────────────────────────────────

func (s *sesionService) MarcarComprado(ctx context.Context, ses *SesionLista, nombre string, precio decimal.Decimal) error {
	if err := exigirModo(ses, model.ModoCompra); err != nil {
		return err
	}
	if precio.IsNegative() {
		return ErrValorNegativo
	}
	copia := ses.Lista.Clonar()
	item := copia.BuscarItem(nombre)
	if item == nil {
		return ErrItemNoEncontrado
	}
	item.Comprado = true
	item.PrecioUnitario = precio
	return s.confirmar(ctx, ses, copia)
}

func (s *sesionService) DesmarcarComprado(ctx context.Context, ses *SesionLista, nombre string) error {
	if err := exigirModo(ses, model.ModoCompra); err != nil {
		return err
	}
	copia := ses.Lista.Clonar()
	item := copia.BuscarItem(nombre)
	if item == nil {
		return ErrItemNoEncontrado
	}
	// Unchecking forgets the price: an unpurchased item has none.
	item.Comprado = false
	item.PrecioUnitario = decimal.Zero
	return s.confirmar(ctx, ses, copia)
}

// Totales aggregates purchased items only, grouped by category in category
// order. Unchecked items count toward ItemsTotales and nothing else.
func (s *sesionService) Totales(ses *SesionLista) dto.TotalesResponse {
	resp := dto.TotalesResponse{
		Total:        decimal.Zero,
		PorCategoria: []dto.TotalCategoriaResponse{},
	}
	indice := make(map[model.Categoria]int)
	for _, it := range ses.Lista.Items {
		resp.ItemsTotales++
		if !it.Comprado {
			continue
		}
		resp.ItemsComprados++
		sub := it.Subtotal()
		resp.Total = resp.Total.Add(sub)

		i, ok := indice[it.Categoria]
		if !ok {
			i = len(resp.PorCategoria)
			indice[it.Categoria] = i
			resp.PorCategoria = append(resp.PorCategoria, dto.TotalCategoriaResponse{
				Categoria: string(it.Categoria),
				Etiqueta:  it.Categoria.Etiqueta(),
				Total:     decimal.Zero,
			})
		}
		resp.PorCategoria[i].Total = resp.PorCategoria[i].Total.Add(sub)
	}
	return resp
}

// ── Helpers ───────────────────────────────────────────────────────────────

// confirmar persists the mutated copy and only then swaps it into the
// session. A failed save leaves ses exactly as it was.
func (s *sesionService) confirmar(ctx context.Context, ses *SesionLista, copia model.Lista) error {
	if err := s.repo.Guardar(ctx, &copia); err != nil {
		return err
	}
	ses.Lista = copia
	return nil
}

func exigirModo(ses *SesionLista, requerido model.Modo) error {
	if ses.Modo != requerido {
		return fmt.Errorf("%w: requiere modo %s", ErrOperacionNoPermitida, requerido)
	}
	return nil
}
