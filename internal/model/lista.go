package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Modo is the UI mode a lista is being worked in. Planning edits the
// contents; purchasing only checks items off and records prices.
type Modo string

const (
	ModoPlanificacion Modo = "planificacion"
	ModoCompra        Modo = "compra"
)

// Valido reports whether m is one of the two known modes.
func (m Modo) Valido() bool {
	return m == ModoPlanificacion || m == ModoCompra
}

// Item is one product entry inside a lista. Nombre is unique within its
// lista and acts as the item's identity. PrecioUnitario is meaningful only
// while Comprado is true; unchecking an item resets it to zero.
type Item struct {
	Nombre         string
	Categoria      Categoria
	Cantidad       decimal.Decimal
	Unidad         string
	Comprado       bool
	PrecioUnitario decimal.Decimal
}

// Subtotal returns Cantidad × PrecioUnitario for a purchased item and zero
// for an unpurchased one.
func (i Item) Subtotal() decimal.Decimal {
	if !i.Comprado {
		return decimal.Zero
	}
	return i.Cantidad.Mul(i.PrecioUnitario)
}

// Lista is a shopping list: a named, dated collection of items. Nombre is
// unique across all persisted listas; CreadaEn drives the rotation order.
type Lista struct {
	ID       uuid.UUID
	Nombre   string
	CreadaEn time.Time
	Items    []Item
}

// NuevaLista builds an empty lista stamped with the current UTC time.
func NuevaLista(nombre string) *Lista {
	return &Lista{
		ID:       uuid.New(),
		Nombre:   nombre,
		CreadaEn: time.Now().UTC(),
		Items:    []Item{},
	}
}

// BuscarItem returns a pointer to the item named nombre, or nil.
func (l *Lista) BuscarItem(nombre string) *Item {
	for i := range l.Items {
		if l.Items[i].Nombre == nombre {
			return &l.Items[i]
		}
	}
	return nil
}

// QuitarItem removes the item named nombre and reports whether it existed.
func (l *Lista) QuitarItem(nombre string) bool {
	for i := range l.Items {
		if l.Items[i].Nombre == nombre {
			l.Items = append(l.Items[:i], l.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Ordenar sorts the items by category precedence, keeping insertion order
// within each category.
func (l *Lista) Ordenar() {
	OrdenarItems(l.Items)
}

// Clonar returns a deep copy of l. Mutating the copy never touches the
// original's item slice.
func (l *Lista) Clonar() Lista {
	c := *l
	c.Items = make([]Item, len(l.Items))
	copy(c.Items, l.Items)
	return c
}
