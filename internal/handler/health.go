package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chars222/lista-compras/internal/tabular"
)

// Health returns a JSON health check response. The tabular contract has no
// ping, so the probe is a bounded read; every supported backend answers a
// full read in well under the timeout.
func Health(store tabular.Store, backend string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		estado := "connected"
		if _, err := store.ReadAllRows(ctx); err != nil {
			estado = "error"
		}

		status := http.StatusOK
		if estado != "connected" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":      status == http.StatusOK,
			"backend": backend,
			"estado":  estado,
		})
	}
}
