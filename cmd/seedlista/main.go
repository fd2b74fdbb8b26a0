// cmd/seedlista/main.go — Crea una lista de demo contra el backend configurado.
// Uso: go run cmd/seedlista/main.go -base plantilla
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/chars222/lista-compras/internal/config"
	"github.com/chars222/lista-compras/internal/dto"
	"github.com/chars222/lista-compras/internal/infra"
	"github.com/chars222/lista-compras/internal/repository"
	"github.com/chars222/lista-compras/internal/service"
)

func main() {
	nombre := flag.String("nombre", "", "nombre de la lista (vacío: Lista AAAA-MM-DD)")
	base := flag.String("base", "plantilla", "contenido inicial: vacia | plantilla")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx := context.Background()
	store, err := infra.NuevoStore(ctx, cfg)
	if err != nil {
		log.Fatalf("backend error: %v", err)
	}

	svc := service.NewRotacionService(repository.NewListaRepository(store), cfg.MaxListas)

	lista, err := svc.Crear(ctx, dto.CrearListaRequest{Nombre: *nombre, Base: *base})
	if err != nil {
		log.Fatalf("create error: %v", err)
	}
	fmt.Printf("✅ Lista '%s' creada con %d items (id %s)\n", lista.Nombre, len(lista.Items), lista.ID)
}
