package main

import (
	"errors"
	"net/http"

	"weather-skill/internal/alexa"
	"weather-skill/internal/skill"

	"github.com/gin-gonic/gin"
)

// handleAlexa godoc
// @Summary Handle a voice request
// @Description Answer a LaunchRequest, IntentRequest or SessionEndedRequest sent by the voice platform
// @Tags skill
// @Accept json
// @Produce json
// @Param request body alexa.RequestEnvelope true "Voice request envelope"
// @Success 200 {object} alexa.ResponseEnvelope
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /alexa [post]
func (app *App) handleAlexa(c *gin.Context) {
	var req alexa.RequestEnvelope
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := app.skill.Handle(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, skill.ErrInvalidApplicationID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		app.logger.Error("failed to handle request",
			"request_id", c.GetString("request_id"),
			"request_type", req.Request.Type,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to handle request"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
