package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chars222/lista-compras/internal/apierror"
	"github.com/chars222/lista-compras/internal/dto"
	"github.com/chars222/lista-compras/internal/infra"
	"github.com/chars222/lista-compras/internal/model"
	"github.com/chars222/lista-compras/internal/service"
)

type ListasHandler struct {
	rotacion service.RotacionService
	sesiones service.SesionService
	mailer   *infra.Mailer
}

func NewListasHandler(rotacion service.RotacionService, sesiones service.SesionService, mailer *infra.Mailer) *ListasHandler {
	return &ListasHandler{rotacion: rotacion, sesiones: sesiones, mailer: mailer}
}

// ── Listas ────────────────────────────────────────────────────────────────

// Listar godoc
// @Summary      Listar listas
// @Description  Retorna todas las listas persistidas, de la más antigua a la más nueva.
// @Tags         listas
// @Produce      json
// @Success      200 {object} dto.ListaListResponse
// @Router       /v1/listas [get]
func (h *ListasHandler) Listar(c *gin.Context) {
	resp, err := h.rotacion.Listar(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear godoc
// @Summary      Crear lista
// @Description  Crea una lista vacía, desde la plantilla o copiando otra. Si ya hay el máximo de listas, elimina la más antigua antes de crear.
// @Tags         listas
// @Accept       json
// @Produce      json
// @Param        body body dto.CrearListaRequest true "Nombre y contenido inicial"
// @Success      201  {object} dto.ListaResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/listas [post]
func (h *ListasHandler) Crear(c *gin.Context) {
	var req dto.CrearListaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.rotacion.Crear(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Obtener godoc
// @Summary      Obtener una lista
// @Tags         listas
// @Produce      json
// @Param        id path string true "UUID de la lista"
// @Success      200 {object} dto.ListaResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/listas/{id} [get]
func (h *ListasHandler) Obtener(c *gin.Context) {
	ses, ok := h.abrirSesion(c, model.ModoPlanificacion)
	if !ok {
		return
	}
	resp := dto.ListaToResponse(&ses.Lista, "")
	c.JSON(http.StatusOK, resp)
}

// Eliminar godoc
// @Summary      Eliminar lista
// @Tags         listas
// @Param        id path string true "UUID de la lista"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/listas/{id} [delete]
func (h *ListasHandler) Eliminar(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.rotacion.Eliminar(c.Request.Context(), id); err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// ── Planificación ─────────────────────────────────────────────────────────

// AgregarItem godoc
// @Summary      Agregar item (modo planificación)
// @Description  Agrega un item a la lista. El nombre es único dentro de la lista; el item nace sin marcar y sin precio.
// @Tags         planificacion
// @Accept       json
// @Produce      json
// @Param        id   path string                 true "UUID de la lista"
// @Param        body body dto.AgregarItemRequest true "Item a agregar"
// @Success      201  {object} dto.ListaResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/listas/{id}/planificacion/items [post]
func (h *ListasHandler) AgregarItem(c *gin.Context) {
	var req dto.AgregarItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	ses, ok := h.abrirSesion(c, model.ModoPlanificacion)
	if !ok {
		return
	}
	if err := h.sesiones.AgregarItem(c.Request.Context(), ses, req); err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ListaToResponse(&ses.Lista, ses.Modo))
}

// EditarItem godoc
// @Summary      Editar item (modo planificación)
// @Description  Cambia nombre, categoría, cantidad o unidad de un item; sólo los campos presentes en el cuerpo.
// @Tags         planificacion
// @Accept       json
// @Produce      json
// @Param        id     path string                true "UUID de la lista"
// @Param        nombre path string                true "Nombre actual del item"
// @Param        body   body dto.EditarItemRequest true "Campos a cambiar"
// @Success      200    {object} dto.ListaResponse
// @Failure      404    {object} apierror.APIError
// @Router       /v1/listas/{id}/planificacion/items/{nombre} [patch]
func (h *ListasHandler) EditarItem(c *gin.Context) {
	var req dto.EditarItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	ses, ok := h.abrirSesion(c, model.ModoPlanificacion)
	if !ok {
		return
	}
	if err := h.sesiones.EditarItem(c.Request.Context(), ses, c.Param("nombre"), req); err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListaToResponse(&ses.Lista, ses.Modo))
}

// QuitarItem godoc
// @Summary      Quitar item (modo planificación)
// @Tags         planificacion
// @Produce      json
// @Param        id     path string true "UUID de la lista"
// @Param        nombre path string true "Nombre del item"
// @Success      200    {object} dto.ListaResponse
// @Failure      404    {object} apierror.APIError
// @Router       /v1/listas/{id}/planificacion/items/{nombre} [delete]
func (h *ListasHandler) QuitarItem(c *gin.Context) {
	ses, ok := h.abrirSesion(c, model.ModoPlanificacion)
	if !ok {
		return
	}
	if err := h.sesiones.QuitarItem(c.Request.Context(), ses, c.Param("nombre")); err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListaToResponse(&ses.Lista, ses.Modo))
}

// ── Compra ────────────────────────────────────────────────────────────────

// MarcarItem godoc
// @Summary      Marcar item como comprado (modo compra)
// @Description  Marca el item y registra su precio unitario. Precio cero es válido.
// @Tags         compra
// @Accept       json
// @Produce      json
// @Param        id     path string                   true "UUID de la lista"
// @Param        nombre path string                   true "Nombre del item"
// @Param        body   body dto.MarcarCompradoRequest true "Precio unitario pagado"
// @Success      200    {object} dto.ListaResponse
// @Failure      404    {object} apierror.APIError
// @Router       /v1/listas/{id}/compra/items/{nombre}/marcar [post]
func (h *ListasHandler) MarcarItem(c *gin.Context) {
	var req dto.MarcarCompradoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	ses, ok := h.abrirSesion(c, model.ModoCompra)
	if !ok {
		return
	}
	if err := h.sesiones.MarcarComprado(c.Request.Context(), ses, c.Param("nombre"), req.PrecioUnitario); err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListaToResponse(&ses.Lista, ses.Modo))
}

// DesmarcarItem godoc
// @Summary      Desmarcar item (modo compra)
// @Description  Quita la marca de comprado y olvida el precio registrado.
// @Tags         compra
// @Produce      json
// @Param        id     path string true "UUID de la lista"
// @Param        nombre path string true "Nombre del item"
// @Success      200    {object} dto.ListaResponse
// @Failure      404    {object} apierror.APIError
// @Router       /v1/listas/{id}/compra/items/{nombre}/desmarcar [post]
func (h *ListasHandler) DesmarcarItem(c *gin.Context) {
	ses, ok := h.abrirSesion(c, model.ModoCompra)
	if !ok {
		return
	}
	if err := h.sesiones.DesmarcarComprado(c.Request.Context(), ses, c.Param("nombre")); err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListaToResponse(&ses.Lista, ses.Modo))
}

// Totales godoc
// @Summary      Totales de la compra
// @Description  Suma sólo los items comprados: total general y subtotal por categoría en orden de categoría.
// @Tags         compra
// @Produce      json
// @Param        id path string true "UUID de la lista"
// @Success      200 {object} dto.TotalesResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/listas/{id}/totales [get]
func (h *ListasHandler) Totales(c *gin.Context) {
	ses, ok := h.abrirSesion(c, model.ModoCompra)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.sesiones.Totales(ses))
}

// ── Exportar y compartir ──────────────────────────────────────────────────

// DescargarPDF godoc
// @Summary      Descargar la lista en PDF
// @Description  Genera la versión imprimible: items por categoría, casillas de comprado y totales.
// @Tags         listas
// @Produce      application/pdf
// @Param        id path string true "UUID de la lista"
// @Success      200 {file} binary
// @Failure      404 {object} apierror.APIError
// @Router       /v1/listas/{id}/pdf [get]
func (h *ListasHandler) DescargarPDF(c *gin.Context) {
	ses, ok := h.abrirSesion(c, model.ModoCompra)
	if !ok {
		return
	}
	pdf, err := infra.GenerarListaPDF(&ses.Lista)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("No se pudo generar el PDF"))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "lista-"+ses.Lista.ID.String()+".pdf"))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// Enviar godoc
// @Summary      Enviar la lista por correo
// @Description  Manda el PDF adjunto a un destinatario. Responde 503 si el servidor no tiene SMTP configurado.
// @Tags         listas
// @Accept       json
// @Produce      json
// @Param        id   path string                 true "UUID de la lista"
// @Param        body body dto.EnviarListaRequest true "Destinatario y asunto"
// @Success      200  {object} map[string]interface{}
// @Failure      503  {object} apierror.APIError
// @Router       /v1/listas/{id}/enviar [post]
func (h *ListasHandler) Enviar(c *gin.Context) {
	var req dto.EnviarListaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if h.mailer == nil || !h.mailer.Configurado() {
		c.JSON(http.StatusServiceUnavailable, apierror.New("Envío por correo no configurado"))
		return
	}
	ses, ok := h.abrirSesion(c, model.ModoCompra)
	if !ok {
		return
	}
	pdf, err := infra.GenerarListaPDF(&ses.Lista)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("No se pudo generar el PDF"))
		return
	}

	asunto := req.Asunto
	if asunto == "" {
		asunto = "Lista de mercado: " + ses.Lista.Nombre
	}
	cuerpo := fmt.Sprintf("Adjunto la lista %q (%d items).", ses.Lista.Nombre, len(ses.Lista.Items))
	if err := h.mailer.EnviarLista(req.Email, asunto, cuerpo, pdf); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusBadGateway, apierror.New("No se pudo enviar el correo"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"enviado": true, "email": req.Email})
}

// ── Helpers ───────────────────────────────────────────────────────────────

func (h *ListasHandler) abrirSesion(c *gin.Context, modo model.Modo) (*service.SesionLista, bool) {
	id, ok := idParam(c)
	if !ok {
		return nil, false
	}
	ses, err := h.sesiones.Abrir(c.Request.Context(), id, modo)
	if err != nil {
		responderError(c, err)
		return nil, false
	}
	return ses, true
}
