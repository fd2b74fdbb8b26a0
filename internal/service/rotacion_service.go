package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/chars222/lista-compras/internal/dto"
	"github.com/chars222/lista-compras/internal/metrics"
	"github.com/chars222/lista-compras/internal/model"
	"github.com/chars222/lista-compras/internal/repository"
)

// MaxListasPorDefecto caps how many listas persist at once when the config
// does not say otherwise.
const MaxListasPorDefecto = 10

var (
	ErrNombreDuplicado = errors.New("ya existe una lista con ese nombre")
	ErrBaseInvalida    = errors.New("base de lista desconocida")
	ErrCopiaSinOrigen  = errors.New("falta la lista de origen para copiar")
)

// RotacionService creates, lists and deletes listas, enforcing the rolling
// window: when creating would exceed the maximum, the oldest lista is
// evicted first, so the window always keeps the newest ones.
type RotacionService interface {
	Listar(ctx context.Context) (dto.ListaListResponse, error)
	Crear(ctx context.Context, req dto.CrearListaRequest) (dto.ListaResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type rotacionService struct {
	repo      repository.ListaRepository
	maxListas int
}

func NewRotacionService(repo repository.ListaRepository, maxListas int) RotacionService {
	if maxListas <= 0 {
		maxListas = MaxListasPorDefecto
	}
	return &rotacionService{repo: repo, maxListas: maxListas}
}

func (s *rotacionService) Listar(ctx context.Context) (dto.ListaListResponse, error) {
	listas, err := s.repo.CargarTodas(ctx)
	if err != nil {
		return dto.ListaListResponse{}, err
	}
	resumen := make([]dto.ListaResumen, 0, len(listas))
	for i := range listas {
		resumen = append(resumen, dto.ListaToResumen(&listas[i]))
	}
	return dto.ListaListResponse{Data: resumen, Total: len(resumen)}, nil
}

func (s *rotacionService) Crear(ctx context.Context, req dto.CrearListaRequest) (dto.ListaResponse, error) {
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		nombre = "Lista " + time.Now().Format("2006-01-02")
	}

	// Read the backend right before deciding anything: the duplicate check
	// and the eviction choice must see the current state, not a stale one.
	listas, err := s.repo.CargarTodas(ctx)
	if err != nil {
		return dto.ListaResponse{}, err
	}

	for i := range listas {
		if listas[i].Nombre == nombre {
			return dto.ListaResponse{}, ErrNombreDuplicado
		}
	}

	items, err := itemsBase(req, listas)
	if err != nil {
		return dto.ListaResponse{}, err
	}

	// Evict before creating. CargarTodas returns oldest first (lista ID as
	// tie-break), so the head of the slice is always the victim.
	for len(listas) >= s.maxListas {
		victima := listas[0]
		if err := s.repo.Eliminar(ctx, victima.ID); err != nil {
			return dto.ListaResponse{}, fmt.Errorf("rotar lista %q: %w", victima.Nombre, err)
		}
		metrics.ListasRotadas.Inc()
		log.Info().
			Str("lista_id", victima.ID.String()).
			Str("nombre", victima.Nombre).
			Msg("Lista más antigua eliminada por rotación")
		listas = listas[1:]
	}

	nueva := model.NuevaLista(nombre)
	nueva.Items = items
	if err := s.repo.Guardar(ctx, nueva); err != nil {
		return dto.ListaResponse{}, err
	}

	return dto.ListaToResponse(nueva, model.ModoPlanificacion), nil
}

func (s *rotacionService) Eliminar(ctx context.Context, id uuid.UUID) error {
	return s.repo.Eliminar(ctx, id)
}

// itemsBase resolves the starting contents of a new lista. Copies reset
// every price and check: a new week starts with everything pending.
func itemsBase(req dto.CrearListaRequest, listas []model.Lista) ([]model.Item, error) {
	switch req.Base {
	case "", "vacia":
		return []model.Item{}, nil
	case "plantilla":
		return plantillaBase(), nil
	case "copia":
		if req.CopiaDe == nil {
			return nil, ErrCopiaSinOrigen
		}
		origenID, err := uuid.Parse(*req.CopiaDe)
		if err != nil {
			return nil, ErrCopiaSinOrigen
		}
		for i := range listas {
			if listas[i].ID != origenID {
				continue
			}
			items := make([]model.Item, len(listas[i].Items))
			copy(items, listas[i].Items)
			for j := range items {
				items[j].Comprado = false
				items[j].PrecioUnitario = decimal.Zero
			}
			return items, nil
		}
		return nil, repository.ErrListaNoEncontrada
	default:
		return nil, ErrBaseInvalida
	}
}
