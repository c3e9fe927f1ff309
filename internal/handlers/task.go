package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/studify/studify-api/internal/errors"
	"github.com/studify/studify-api/internal/middleware"
	"github.com/studify/studify-api/internal/models"
	"github.com/studify/studify-api/internal/repository"
	"gorm.io/gorm"
)

type TaskHandler struct {
	repo repository.TaskRepository
}

func NewTaskHandler(repo repository.TaskRepository) *TaskHandler {
	return &TaskHandler{repo: repo}
}

// currentUser pulls the gateway-verified identity out of the context.
// The owning user id is never taken from the request itself.
func currentUser(c *gin.Context) (uint64, bool) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
	}
	return userID, exists
}

func parseID(c *gin.Context, param string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "ID inválido")
		return 0, false
	}
	return id, true
}

// Create registers a new task for the authenticated user.
func (h *TaskHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	type CreateTaskRequest struct {
		Titulo           string  `json:"titulo" binding:"required"`
		Descripcion      string  `json:"descripcion"`
		Prioridad        string  `json:"prioridad" binding:"required"`
		FechaVencimiento *string `json:"fecha_vencimiento"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Faltan campos obligatorios")
		return
	}

	task := models.Task{
		UserID:           userID,
		Titulo:           req.Titulo,
		Descripcion:      req.Descripcion,
		Prioridad:        req.Prioridad,
		FechaVencimiento: req.FechaVencimiento,
		Estado:           models.TaskStatusPendiente,
	}

	if err := h.repo.Create(&task); err != nil {
		log.Printf("failed to create task: %v", err)
		apierrors.InternalError(c, "Error al crear la tarea")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Tarea creada exitosamente",
		"id_tarea": task.ID,
	})
}

// List returns the authenticated user's tasks.
func (h *TaskHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	tasks, err := h.repo.ListByUser(userID)
	if err != nil {
		log.Printf("failed to list tasks: %v", err)
		apierrors.InternalError(c, "Error al obtener las tareas")
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// Update applies a partial update: fields omitted from the request keep
// their stored values.
func (h *TaskHandler) Update(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	taskID, ok := parseID(c, "id_tarea")
	if !ok {
		return
	}

	var rawReq map[string]any
	if err := c.ShouldBindJSON(&rawReq); err != nil {
		apierrors.BadRequest(c, "Cuerpo de la solicitud inválido")
		return
	}

	task, err := h.repo.FindByID(taskID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Tarea no encontrada")
			return
		}
		log.Printf("failed to load task %d: %v", taskID, err)
		apierrors.InternalError(c, "Error al actualizar la tarea")
		return
	}

	if titulo, ok := rawReq["titulo"].(string); ok {
		task.Titulo = titulo
	}
	if descripcion, ok := rawReq["descripcion"].(string); ok {
		task.Descripcion = descripcion
	}
	if prioridad, ok := rawReq["prioridad"].(string); ok {
		task.Prioridad = prioridad
	}
	if fecha, ok := rawReq["fecha_vencimiento"].(string); ok {
		task.FechaVencimiento = &fecha
	}
	if estado, ok := rawReq["estado"].(string); ok {
		task.Estado = models.TaskStatus(estado)
	}

	if err := h.repo.Save(task); err != nil {
		log.Printf("failed to update task %d: %v", taskID, err)
		apierrors.InternalError(c, "Error al actualizar la tarea")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tarea actualizada exitosamente"})
}

// Delete removes a task.
func (h *TaskHandler) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	taskID, ok := parseID(c, "id_tarea")
	if !ok {
		return
	}

	if err := h.repo.Delete(taskID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "No se encontró la tarea con el ID proporcionado")
			return
		}
		log.Printf("failed to delete task %d: %v", taskID, err)
		apierrors.InternalError(c, "Error al eliminar la tarea")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tarea eliminada correctamente"})
}
