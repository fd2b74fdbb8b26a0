// Package gsheets implements tabular.Store on one worksheet of a Google
// spreadsheet, which is where this data historically lived. Values travel
// with ValueInputOption RAW: letting Sheets "interpret" input is how the
// old app ended up with comma decimals in half its cells.
package gsheets

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"

	"github.com/chars222/lista-compras/internal/tabular"
)

type Store struct {
	svc           *sheets.Service
	spreadsheetID string
	hoja          string
}

var _ tabular.Store = (*Store)(nil)

// New returns a store bound to the worksheet hoja of the given spreadsheet.
// The worksheet must already exist.
func New(svc *sheets.Service, spreadsheetID, hoja string) *Store {
	return &Store{svc: svc, spreadsheetID: spreadsheetID, hoja: hoja}
}

// ReadAllRows fetches the worksheet's used range. Sheets hands cells back as
// interface{} values; everything is flattened to its string form, matching
// the rest of the stores.
func (s *Store) ReadAllRows(ctx context.Context) ([][]string, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, s.rango()).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q: %w", s.hoja, err)
	}
	rows := make([][]string, 0, len(resp.Values))
	for _, cruda := range resp.Values {
		fila := make([]string, len(cruda))
		for i, celda := range cruda {
			fila[i] = fmt.Sprint(celda)
		}
		rows = append(rows, fila)
	}
	return rows, nil
}

func (s *Store) WriteRows(ctx context.Context, rows [][]string) error {
	if err := s.Clear(ctx); err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	_, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, s.hoja+"!A1", valueRange(rows)).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("escribir hoja %q: %w", s.hoja, err)
	}
	return nil
}

func (s *Store) AppendRows(ctx context.Context, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, s.rango(), valueRange(rows)).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("agregar a hoja %q: %w", s.hoja, err)
	}
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	_, err := s.svc.Spreadsheets.Values.Clear(s.spreadsheetID, s.rango(), &sheets.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("vaciar hoja %q: %w", s.hoja, err)
	}
	return nil
}

// rango names the whole worksheet in A1 notation.
func (s *Store) rango() string {
	return s.hoja
}

func valueRange(rows [][]string) *sheets.ValueRange {
	values := make([][]interface{}, len(rows))
	for i, fila := range rows {
		celdas := make([]interface{}, len(fila))
		for j, c := range fila {
			celdas[j] = c
		}
		values[i] = celdas
	}
	return &sheets.ValueRange{Values: values}
}
