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

type NoteHandler struct {
	repo repository.NoteRepository
}

func NewNoteHandler(repo repository.NoteRepository) *NoteHandler {
	return &NoteHandler{repo: repo}
}

// Create registers a new note with the current time as creation date.
func (h *NoteHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	type CreateNoteRequest struct {
		Titulo    string `json:"titulo" binding:"required"`
		Contenido string `json:"contenido" binding:"required"`
	}

	var req CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Faltan datos obligatorios")
		return
	}

	note := models.Note{
		UserID:        userID,
		Titulo:        req.Titulo,
		Contenido:     req.Contenido,
		FechaCreacion: time.Now(),
	}

	if err := h.repo.Create(&note); err != nil {
		log.Printf("failed to create note: %v", err)
		apierrors.InternalError(c, "Error al crear la nota")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Nota creada exitosamente",
		"id_nota": note.ID,
	})
}

// List returns the user's notes, newest first.
func (h *NoteHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	notes, err := h.repo.ListByUser(userID)
	if err != nil {
		log.Printf("failed to list notes: %v", err)
		apierrors.InternalError(c, "Error al obtener las notas")
		return
	}

	c.JSON(http.StatusOK, notes)
}

// Update applies a partial update to a note.
func (h *NoteHandler) Update(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	noteID, ok := parseID(c, "id_nota")
	if !ok {
		return
	}

	var rawReq map[string]any
	if err := c.ShouldBindJSON(&rawReq); err != nil {
		apierrors.BadRequest(c, "Cuerpo de la solicitud inválido")
		return
	}

	note, err := h.repo.FindByID(noteID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Nota no encontrada")
			return
		}
		log.Printf("failed to load note %d: %v", noteID, err)
		apierrors.InternalError(c, "Error al actualizar la nota")
		return
	}

	if titulo, ok := rawReq["titulo"].(string); ok {
		note.Titulo = titulo
	}
	if contenido, ok := rawReq["contenido"].(string); ok {
		note.Contenido = contenido
	}

	if err := h.repo.Save(note); err != nil {
		log.Printf("failed to update note %d: %v", noteID, err)
		apierrors.InternalError(c, "Error al actualizar la nota")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Nota actualizada correctamente"})
}

// Delete removes a note.
func (h *NoteHandler) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	noteID, ok := parseID(c, "id_nota")
	if !ok {
		return
	}

	if err := h.repo.Delete(noteID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Nota no encontrada")
			return
		}
		log.Printf("failed to delete note %d: %v", noteID, err)
		apierrors.InternalError(c, "Error al eliminar la nota")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Nota eliminada correctamente"})
}
