package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	apierrors "github.com/studify/studify-api/internal/errors"
	"github.com/studify/studify-api/internal/models"
	"github.com/studify/studify-api/internal/repository"
	"gorm.io/gorm"
)

type PomodoroHandler struct {
	repo repository.PomodoroRepository
}

func NewPomodoroHandler(repo repository.PomodoroRepository) *PomodoroHandler {
	return &PomodoroHandler{repo: repo}
}

// Register persists one completed timer interval. The countdown runs
// entirely on the client; the server only records the outcome, stamped
// with its current date.
func (h *PomodoroHandler) Register(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	type RegisterSessionRequest struct {
		Mode     string `json:"mode" binding:"required"`
		Duration int    `json:"duration" binding:"required"`
	}

	var req RegisterSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Se requieren 'mode' y 'duration'")
		return
	}

	session := models.PomodoroSession{
		UserID:   userID,
		Mode:     req.Mode,
		Duration: req.Duration,
		Date:     time.Now().Format("2006-01-02"),
	}

	if err := h.repo.Create(&session); err != nil {
		log.Printf("failed to register pomodoro session: %v", err)
		apierrors.InternalError(c, "Error al registrar la sesión")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Sesión registrada exitosamente",
		"id_sesion": session.ID,
	})
}

// History returns the user's completed sessions, newest date first.
func (h *PomodoroHandler) History(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	sessions, err := h.repo.ListByUser(userID)
	if err != nil {
		log.Printf("failed to list pomodoro sessions: %v", err)
		apierrors.InternalError(c, "Error al obtener el historial")
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// Delete removes a session from the history.
func (h *PomodoroHandler) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	sessionID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.repo.Delete(sessionID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "No se encontró la sesión con el ID proporcionado")
			return
		}
		log.Printf("failed to delete pomodoro session %d: %v", sessionID, err)
		apierrors.InternalError(c, "Error al eliminar la sesión")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sesión eliminada correctamente"})
}
