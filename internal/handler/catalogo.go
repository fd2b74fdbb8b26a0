package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chars222/lista-compras/internal/dto"
	"github.com/chars222/lista-compras/internal/model"
)

// Catalogo GET /v1/catalogo
// Returns the closed category and unit sets so the UI can build its
// selectors without hardcoding them.
func Catalogo(c *gin.Context) {
	categorias := make([]dto.CategoriaCatalogo, 0, len(model.Categorias))
	for _, cat := range model.Categorias {
		categorias = append(categorias, dto.CategoriaCatalogo{
			Nombre:   string(cat),
			Etiqueta: cat.Etiqueta(),
		})
	}
	c.JSON(http.StatusOK, dto.CatalogoResponse{
		Categorias: categorias,
		Unidades:   model.Unidades,
	})
}
