package handlers

import (
	"errors"

	"alertmon/internal/engine"
	"alertmon/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AlertHandler struct {
	engine *engine.Engine
}

func NewAlertHandler(eng *engine.Engine) *AlertHandler {
	return &AlertHandler{engine: eng}
}

func (h *AlertHandler) List(ctx *gin.Context) {
	alerts := h.engine.ActiveAlerts()

	// Optional query filters
	status := ctx.Query("status")
	severity := ctx.Query("severity")
	if status != "" || severity != "" {
		filtered := alerts[:0]
		for _, a := range alerts {
			if status != "" && string(a.Status) != status {
				continue
			}
			if severity != "" && string(a.Severity) != severity {
				continue
			}
			filtered = append(filtered, a)
		}
		alerts = filtered
	}

	ctx.JSON(200, models.AlertListResponse{Alerts: alerts, Total: len(alerts)})
}

func (h *AlertHandler) GetByID(ctx *gin.Context) {
	alertID, ok := parseID(ctx)
	if !ok {
		return
	}

	alert, err := h.engine.GetAlert(alertID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(200, alert)
}

func (h *AlertHandler) Acknowledge(ctx *gin.Context) {
	alertID, ok := parseID(ctx)
	if !ok {
		return
	}

	var request models.AcknowledgeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(400, gin.H{"error": "Invalid JSON", "details": err.Error()})
		return
	}

	alert, err := h.engine.Acknowledge(alertID, request.Actor, request.Note)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(200, alert)
}

func (h *AlertHandler) Resolve(ctx *gin.Context) {
	alertID, ok := parseID(ctx)
	if !ok {
		return
	}

	var request models.ResolveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(400, gin.H{"error": "Invalid JSON", "details": err.Error()})
		return
	}

	alert, err := h.engine.Resolve(alertID, request.Actor, request.Note, request.ResolveCorrelated)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(200, alert)
}

func (h *AlertHandler) Escalate(ctx *gin.Context) {
	alertID, ok := parseID(ctx)
	if !ok {
		return
	}

	var request models.EscalateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(400, gin.H{"error": "Invalid JSON", "details": err.Error()})
		return
	}

	alert, err := h.engine.Escalate(alertID, request.Actor, request.BumpSeverity)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(200, alert)
}

func (h *AlertHandler) Suppress(ctx *gin.Context) {
	alertID, ok := parseID(ctx)
	if !ok {
		return
	}

	var request models.SuppressRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(400, gin.H{"error": "Invalid JSON", "details": err.Error()})
		return
	}

	alert, err := h.engine.Suppress(alertID, request.Actor, request.Reason, request.DurationMinutes)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(200, alert)
}

func (h *AlertHandler) Close(ctx *gin.Context) {
	alertID, ok := parseID(ctx)
	if !ok {
		return
	}

	var request models.CloseRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(400, gin.H{"error": "Invalid JSON", "details": err.Error()})
		return
	}

	alert, err := h.engine.Close(alertID, request.Actor)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(200, alert)
}

func (h *AlertHandler) Groups(ctx *gin.Context) {
	groups := h.engine.Groups()
	ctx.JSON(200, gin.H{"groups": groups, "total": len(groups)})
}

func (h *AlertHandler) Statistics(ctx *gin.Context) {
	ctx.JSON(200, h.engine.Statistics())
}

func parseID(ctx *gin.Context) (uuid.UUID, bool) {
	alertID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(400, gin.H{"error": "Invalid alert ID format"})
		return uuid.Nil, false
	}
	return alertID, true
}

func writeError(ctx *gin.Context, err error) {
	var conflict *engine.StateConflictError
	switch {
	case errors.Is(err, engine.ErrNotFound):
		ctx.JSON(404, gin.H{"error": "Alert not found"})
	case errors.As(err, &conflict):
		ctx.JSON(409, gin.H{
			"error":  "Operation not allowed in current state",
			"status": conflict.Status,
			"op":     conflict.Op,
		})
	default:
		ctx.JSON(500, gin.H{"error": "Internal error", "details": err.Error()})
	}
}
