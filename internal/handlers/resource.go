package handlers

import (
	"errors"
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	apierrors "github.com/studify/studify-api/internal/errors"
	"github.com/studify/studify-api/internal/models"
	"github.com/studify/studify-api/internal/repository"
	"github.com/studify/studify-api/internal/storage"
	"gorm.io/gorm"
)

type ResourceHandler struct {
	repo  repository.ResourceRepository
	store *storage.Store
}

func NewResourceHandler(repo repository.ResourceRepository, store *storage.Store) *ResourceHandler {
	return &ResourceHandler{repo: repo, store: store}
}

// Upload stores a library file and creates its database row. If the
// insert fails the stored file is removed again.
func (h *ResourceHandler) Upload(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("archivo")
	if err != nil {
		apierrors.BadRequest(c, "Debe adjuntar un archivo")
		return
	}

	servingPath, err := h.store.Save(fh, storage.Resources)
	if err != nil {
		respondUploadError(c, err, "Solo se permiten archivos PDF, DOCX o PPTX")
		return
	}

	resource := models.Resource{
		UserID:        userID,
		NombreArchivo: filepath.Base(fh.Filename),
		RutaArchivo:   servingPath,
	}
	if etiqueta := c.PostForm("etiqueta"); etiqueta != "" {
		resource.Etiqueta = &etiqueta
	}

	if err := h.repo.Create(&resource); err != nil {
		if removeErr := h.store.Remove(servingPath); removeErr != nil {
			log.Printf("failed to clean up resource file %s: %v", servingPath, removeErr)
		}
		log.Printf("failed to create resource: %v", err)
		apierrors.InternalError(c, "Error al subir el recurso")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Recurso subido exitosamente",
		"id_recurso": resource.ID,
	})
}

// List returns the user's library resources.
func (h *ResourceHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	resources, err := h.repo.ListByUser(userID)
	if err != nil {
		log.Printf("failed to list resources: %v", err)
		apierrors.InternalError(c, "Error al obtener los recursos")
		return
	}

	c.JSON(http.StatusOK, resources)
}

// Search returns resources matching the query as a substring of the
// file name or the tag.
func (h *ResourceHandler) Search(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	term := c.Query("query")

	resources, err := h.repo.Search(userID, term)
	if err != nil {
		log.Printf("failed to search resources: %v", err)
		apierrors.InternalError(c, "Error al buscar recursos")
		return
	}

	c.JSON(http.StatusOK, resources)
}

// Delete removes a resource row and attempts to remove its file. The
// row deletion is authoritative.
func (h *ResourceHandler) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	resourceID, ok := parseID(c, "id_recurso")
	if !ok {
		return
	}

	resource, err := h.repo.FindByID(resourceID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Recurso no encontrado")
			return
		}
		log.Printf("failed to load resource %d: %v", resourceID, err)
		apierrors.InternalError(c, "Error al eliminar el recurso")
		return
	}

	if err := h.repo.Delete(resourceID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Recurso no encontrado")
			return
		}
		log.Printf("failed to delete resource %d: %v", resourceID, err)
		apierrors.InternalError(c, "Error al eliminar el recurso")
		return
	}

	if err := h.store.Remove(resource.RutaArchivo); err != nil {
		log.Printf("failed to remove resource file %s: %v", resource.RutaArchivo, err)
		c.JSON(http.StatusOK, gin.H{
			"message": "Recurso eliminado, pero no se pudo eliminar el archivo asociado",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recurso y archivo eliminados correctamente"})
}
