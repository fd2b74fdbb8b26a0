package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chars222/lista-compras/internal/apierror"
	"github.com/chars222/lista-compras/internal/repository"
	"github.com/chars222/lista-compras/internal/service"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// idParam parses the :id path segment; on failure it writes the 400 itself.
func idParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return uuid.Nil, false
	}
	return id, true
}

// responderError maps service errors onto HTTP statuses. Anything outside
// the known business errors is a failed backend round trip: the caller gets
// a 502 and the detail goes to the log through the gin error list.
func responderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrListaNoEncontrada),
		errors.Is(err, service.ErrItemNoEncontrado):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))

	case errors.Is(err, service.ErrNombreDuplicado),
		errors.Is(err, service.ErrItemDuplicado):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))

	case errors.Is(err, service.ErrOperacionNoPermitida):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))

	case errors.Is(err, service.ErrModoInvalido),
		errors.Is(err, service.ErrBaseInvalida),
		errors.Is(err, service.ErrCopiaSinOrigen),
		errors.Is(err, service.ErrCategoriaInvalida),
		errors.Is(err, service.ErrUnidadInvalida),
		errors.Is(err, service.ErrValorNegativo),
		errors.Is(err, service.ErrNombreItemVacio):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))

	default:
		_ = c.Error(err)
		c.JSON(http.StatusBadGateway, apierror.New("Backend de datos no disponible"))
	}
}
