package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/chars222/lista-compras/internal/model"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CrearListaRequest creates a lista. Base picks the starting contents:
// "vacia" (default), "plantilla" for the built-in base template, or "copia"
// to clone an existing lista (CopiaDe required, prices and checks reset).
type CrearListaRequest struct {
	Nombre  string  `json:"nombre"   validate:"omitempty,max=100"`
	Base    string  `json:"base"     validate:"omitempty,oneof=vacia plantilla copia"`
	CopiaDe *string `json:"copia_de" validate:"omitempty,uuid"`
}

type AgregarItemRequest struct {
	Nombre    string          `json:"nombre"    validate:"required,min=1,max=100"`
	Categoria string          `json:"categoria" validate:"required"`
	Cantidad  decimal.Decimal `json:"cantidad"  validate:"min=0"`
	Unidad    string          `json:"unidad"    validate:"required"`
}

// EditarItemRequest patches an item; only the fields present change.
type EditarItemRequest struct {
	Nombre    *string          `json:"nombre"    validate:"omitempty,min=1,max=100"`
	Categoria *string          `json:"categoria"`
	Cantidad  *decimal.Decimal `json:"cantidad"`
	Unidad    *string          `json:"unidad"`
}

type MarcarCompradoRequest struct {
	PrecioUnitario decimal.Decimal `json:"precio_unitario" validate:"min=0"`
}

// EnviarListaRequest mails the lista as a PDF attachment.
type EnviarListaRequest struct {
	Email  string `json:"email"  validate:"required,email"`
	Asunto string `json:"asunto" validate:"omitempty,max=150"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemResponse struct {
	Nombre         string          `json:"nombre"`
	Categoria      string          `json:"categoria"`
	Etiqueta       string          `json:"etiqueta"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	Unidad         string          `json:"unidad"`
	Comprado       bool            `json:"comprado"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type ListaResponse struct {
	ID       string         `json:"id"`
	Nombre   string         `json:"nombre"`
	CreadaEn string         `json:"creada_en"`
	Modo     string         `json:"modo,omitempty"`
	Items    []ItemResponse `json:"items"`
}

// ListaResumen is the compact form used by GET /v1/listas.
type ListaResumen struct {
	ID             string `json:"id"`
	Nombre         string `json:"nombre"`
	CreadaEn       string `json:"creada_en"`
	TotalItems     int    `json:"total_items"`
	ItemsComprados int    `json:"items_comprados"`
}

type ListaListResponse struct {
	Data  []ListaResumen `json:"data"`
	Total int            `json:"total"`
}

type TotalCategoriaResponse struct {
	Categoria string          `json:"categoria"`
	Etiqueta  string          `json:"etiqueta"`
	Total     decimal.Decimal `json:"total"`
}

// TotalesResponse aggregates purchased items only: an unchecked item never
// contributes to a total.
type TotalesResponse struct {
	Total          decimal.Decimal          `json:"total"`
	PorCategoria   []TotalCategoriaResponse `json:"por_categoria"`
	ItemsComprados int                      `json:"items_comprados"`
	ItemsTotales   int                      `json:"items_totales"`
}

// CatalogoResponse lists the closed sets the UI offers when adding items.
type CatalogoResponse struct {
	Categorias []CategoriaCatalogo `json:"categorias"`
	Unidades   []string            `json:"unidades"`
}

type CategoriaCatalogo struct {
	Nombre   string `json:"nombre"`
	Etiqueta string `json:"etiqueta"`
}

// ─── Converters ──────────────────────────────────────────────────────────────

func ItemToResponse(it model.Item) ItemResponse {
	return ItemResponse{
		Nombre:         it.Nombre,
		Categoria:      string(it.Categoria),
		Etiqueta:       it.Categoria.Etiqueta(),
		Cantidad:       it.Cantidad,
		Unidad:         it.Unidad,
		Comprado:       it.Comprado,
		PrecioUnitario: it.PrecioUnitario,
		Subtotal:       it.Subtotal(),
	}
}

func ListaToResponse(l *model.Lista, modo model.Modo) ListaResponse {
	items := make([]ItemResponse, 0, len(l.Items))
	for _, it := range l.Items {
		items = append(items, ItemToResponse(it))
	}
	return ListaResponse{
		ID:       l.ID.String(),
		Nombre:   l.Nombre,
		CreadaEn: l.CreadaEn.UTC().Format(time.RFC3339),
		Modo:     string(modo),
		Items:    items,
	}
}

func ListaToResumen(l *model.Lista) ListaResumen {
	comprados := 0
	for _, it := range l.Items {
		if it.Comprado {
			comprados++
		}
	}
	return ListaResumen{
		ID:             l.ID.String(),
		Nombre:         l.Nombre,
		CreadaEn:       l.CreadaEn.UTC().Format(time.RFC3339),
		TotalItems:     len(l.Items),
		ItemsComprados: comprados,
	}
}
