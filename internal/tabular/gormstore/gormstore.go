// Package gormstore implements tabular.Store on a relational database. A
// row of the table is stored as one record holding the JSON-encoded cells;
// the store stays schema-ignorant on purpose, so it can hold any table
// shape the caller writes, exactly like a worksheet would.
package gormstore

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/chars222/lista-compras/internal/tabular"
)

// Fila is one backend row. Posicion preserves write order across reads;
// Celdas holds the JSON array of cell strings.
type Fila struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	Posicion int    `gorm:"index;not null"`
	Celdas   string `gorm:"type:text;not null"`
}

func (Fila) TableName() string { return "filas" }

// Store persists rows in the filas table through GORM, so it runs unchanged
// on PostgreSQL and SQLite.
type Store struct {
	db *gorm.DB
}

var _ tabular.Store = (*Store)(nil)

// New migrates the filas table and returns the store.
func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&Fila{}); err != nil {
		return nil, fmt.Errorf("migrar filas: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) ReadAllRows(ctx context.Context) ([][]string, error) {
	var filas []Fila
	err := s.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "posicion"}}).
		Find(&filas).Error
	if err != nil {
		return nil, fmt.Errorf("leer filas: %w", err)
	}
	rows := make([][]string, 0, len(filas))
	for _, f := range filas {
		var celdas []string
		if err := json.Unmarshal([]byte(f.Celdas), &celdas); err != nil {
			return nil, fmt.Errorf("decodificar fila %d: %w", f.Posicion, err)
		}
		rows = append(rows, celdas)
	}
	return rows, nil
}

func (s *Store) WriteRows(ctx context.Context, rows [][]string) error {
	registros, err := aRegistros(rows, 0)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM filas").Error; err != nil {
			return fmt.Errorf("vaciar filas: %w", err)
		}
		if len(registros) == 0 {
			return nil
		}
		if err := tx.Create(&registros).Error; err != nil {
			return fmt.Errorf("insertar filas: %w", err)
		}
		return nil
	})
}

func (s *Store) AppendRows(ctx context.Context, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var desde int
		row := tx.Model(&Fila{}).Select("COALESCE(MAX(posicion), -1) + 1")
		if err := row.Scan(&desde).Error; err != nil {
			return fmt.Errorf("posición siguiente: %w", err)
		}
		registros, err := aRegistros(rows, desde)
		if err != nil {
			return err
		}
		if err := tx.Create(&registros).Error; err != nil {
			return fmt.Errorf("insertar filas: %w", err)
		}
		return nil
	})
}

func (s *Store) Clear(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Exec("DELETE FROM filas").Error; err != nil {
		return fmt.Errorf("vaciar filas: %w", err)
	}
	return nil
}

func aRegistros(rows [][]string, desde int) ([]Fila, error) {
	registros := make([]Fila, 0, len(rows))
	for i, celdas := range rows {
		b, err := json.Marshal(celdas)
		if err != nil {
			return nil, fmt.Errorf("codificar fila %d: %w", desde+i, err)
		}
		registros = append(registros, Fila{Posicion: desde + i, Celdas: string(b)})
	}
	return registros, nil
}
