package handlers

import (
	"net/http"

	request "servicescale/internal/adapter/http/dto/request"
	response "servicescale/internal/adapter/http/dto/response"
	"servicescale/internal/usecase"

	"github.com/gin-gonic/gin"
)

type TemplateHandler struct {
	usecase usecase.ITemplateUseCase
}

func NewTemplateHandler(uc usecase.ITemplateUseCase) *TemplateHandler {
	return &TemplateHandler{usecase: uc}
}

func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	templates, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTemplates(templates))
}

// CreateTemplate godoc
// @Summary  Save a quote template
// @Tags     templates
// @Accept   json
// @Produce  json
// @Param    payload body request.CreateTemplateRequest true "template"
// @Success  201 {object} response.TemplateResponse
// @Security Bearer
// @Router   /templates [post]
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var payload request.CreateTemplateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	t, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromTemplate(t))
}

func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	t, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTemplate(t))
}

// SetDefaultTemplate godoc
// @Summary  Make a template the default for new quotes
// @Tags     templates
// @Produce  json
// @Param    id path string true "template id"
// @Success  200 {object} response.TemplateResponse
// @Security Bearer
// @Router   /templates/{id}/default [put]
func (h *TemplateHandler) SetDefaultTemplate(c *gin.Context) {
	t, err := h.usecase.SetDefault(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTemplate(t))
}
