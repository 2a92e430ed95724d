package handlers

import (
	"net/http"

	request "servicescale/internal/adapter/http/dto/request"
	"servicescale/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SettingsHandler exposes the HVAC zone rules.
type SettingsHandler struct {
	rules usecase.IRuleConfigStore
}

func NewSettingsHandler(rules usecase.IRuleConfigStore) *SettingsHandler {
	return &SettingsHandler{rules: rules}
}

// GetZoneRules godoc
// @Summary  Current HVAC zone rules
// @Tags     settings
// @Produce  json
// @Success  200 {object} entities.RuleConfig
// @Security Bearer
// @Router   /settings/hvac-zone-rules [get]
func (h *SettingsHandler) GetZoneRules(c *gin.Context) {
	c.JSON(http.StatusOK, h.rules.Get(c.Request.Context()))
}

// UpdateZoneRules godoc
// @Summary  Override some HVAC zone rules
// @Tags     settings
// @Accept   json
// @Produce  json
// @Param    payload body request.UpdateZoneRulesRequest true "fields to change"
// @Success  200 {object} entities.RuleConfig
// @Security Bearer
// @Router   /settings/hvac-zone-rules [patch]
func (h *SettingsHandler) UpdateZoneRules(c *gin.Context) {
	var payload request.UpdateZoneRulesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	cfg, err := h.rules.Update(c.Request.Context(), payload.ToPatch())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}
