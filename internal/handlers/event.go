package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/studify/studify-api/internal/errors"
	"github.com/studify/studify-api/internal/models"
	"github.com/studify/studify-api/internal/repository"
	"gorm.io/gorm"
)

type EventHandler struct {
	repo repository.EventRepository
}

func NewEventHandler(repo repository.EventRepository) *EventHandler {
	return &EventHandler{repo: repo}
}

// Create registers a new academic event.
func (h *EventHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	type CreateEventRequest struct {
		Titulo       string `json:"titulo" binding:"required"`
		Descripcion  string `json:"descripcion"`
		Tipo         string `json:"tipo" binding:"required"`
		FechaInicio  string `json:"fecha_inicio" binding:"required"`
		FechaFin     string `json:"fecha_fin" binding:"required"`
		Recordatorio bool   `json:"recordatorio"`
	}

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Faltan campos obligatorios")
		return
	}

	event := models.Event{
		UserID:       userID,
		Titulo:       req.Titulo,
		Descripcion:  req.Descripcion,
		Tipo:         req.Tipo,
		FechaInicio:  req.FechaInicio,
		FechaFin:     req.FechaFin,
		Recordatorio: req.Recordatorio,
	}

	if err := h.repo.Create(&event); err != nil {
		log.Printf("failed to create event: %v", err)
		apierrors.InternalError(c, "Error al crear el evento")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Evento creado exitosamente",
		"id_evento": event.ID,
	})
}

// List returns the user's planner events.
func (h *EventHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	events, err := h.repo.ListByUser(userID)
	if err != nil {
		log.Printf("failed to list events: %v", err)
		apierrors.InternalError(c, "Error al obtener los eventos")
		return
	}

	c.JSON(http.StatusOK, events)
}

// Update applies a partial update to an event.
func (h *EventHandler) Update(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	eventID, ok := parseID(c, "id_evento")
	if !ok {
		return
	}

	var rawReq map[string]any
	if err := c.ShouldBindJSON(&rawReq); err != nil {
		apierrors.BadRequest(c, "Cuerpo de la solicitud inválido")
		return
	}

	event, err := h.repo.FindByID(eventID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Evento no encontrado")
			return
		}
		log.Printf("failed to load event %d: %v", eventID, err)
		apierrors.InternalError(c, "Error al actualizar el evento")
		return
	}

	if titulo, ok := rawReq["titulo"].(string); ok {
		event.Titulo = titulo
	}
	if descripcion, ok := rawReq["descripcion"].(string); ok {
		event.Descripcion = descripcion
	}
	if tipo, ok := rawReq["tipo"].(string); ok {
		event.Tipo = tipo
	}
	if inicio, ok := rawReq["fecha_inicio"].(string); ok {
		event.FechaInicio = inicio
	}
	if fin, ok := rawReq["fecha_fin"].(string); ok {
		event.FechaFin = fin
	}
	if recordatorio, ok := rawReq["recordatorio"].(bool); ok {
		event.Recordatorio = recordatorio
	}

	if err := h.repo.Save(event); err != nil {
		log.Printf("failed to update event %d: %v", eventID, err)
		apierrors.InternalError(c, "Error al actualizar el evento")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Evento actualizado exitosamente"})
}

// Delete removes an event.
func (h *EventHandler) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	eventID, ok := parseID(c, "id_evento")
	if !ok {
		return
	}

	if err := h.repo.Delete(eventID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Evento no encontrado")
			return
		}
		log.Printf("failed to delete event %d: %v", eventID, err)
		apierrors.InternalError(c, "Error al eliminar el evento")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Evento eliminado exitosamente"})
}
