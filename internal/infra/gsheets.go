package infra

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// NewSheetsService authenticates against the Sheets API with a service
// account credentials file. The spreadsheet must be shared with the service
// account's email, same as any human collaborator.
func NewSheetsService(ctx context.Context, credencialesPath string) (*sheets.Service, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credencialesPath),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("autenticar sheets: %w", err)
	}
	return svc, nil
}
