package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/studify/studify-api/internal/errors"
	"github.com/studify/studify-api/internal/models"
	"github.com/studify/studify-api/internal/repository"
	"github.com/studify/studify-api/internal/storage"
	"gorm.io/gorm"
)

type CourseHandler struct {
	repo  repository.CourseRepository
	store *storage.Store
}

func NewCourseHandler(repo repository.CourseRepository, store *storage.Store) *CourseHandler {
	return &CourseHandler{repo: repo, store: store}
}

// Create registers a new course.
func (h *CourseHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	type CreateCourseRequest struct {
		NombreCurso      string `json:"nombre_curso" binding:"required"`
		Progreso         string `json:"progreso" binding:"required"`
		FechaInscripcion string `json:"fecha_inscripcion" binding:"required"`
	}

	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Todos los campos son obligatorios")
		return
	}

	course := models.Course{
		UserID:           userID,
		NombreCurso:      req.NombreCurso,
		Progreso:         req.Progreso,
		FechaInscripcion: req.FechaInscripcion,
	}

	if err := h.repo.Create(&course); err != nil {
		log.Printf("failed to create course: %v", err)
		apierrors.InternalError(c, "Error al crear el curso")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Curso creado exitosamente",
		"id_curso": course.ID,
	})
}

// List returns the user's courses.
func (h *CourseHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	courses, err := h.repo.ListByUser(userID)
	if err != nil {
		log.Printf("failed to list courses: %v", err)
		apierrors.InternalError(c, "Error al obtener los cursos")
		return
	}

	c.JSON(http.StatusOK, courses)
}

// Update applies a partial update to a course.
func (h *CourseHandler) Update(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	courseID, ok := parseID(c, "id_curso")
	if !ok {
		return
	}

	var rawReq map[string]any
	if err := c.ShouldBindJSON(&rawReq); err != nil {
		apierrors.BadRequest(c, "Cuerpo de la solicitud inválido")
		return
	}

	course, err := h.repo.FindByID(courseID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Curso no encontrado")
			return
		}
		log.Printf("failed to load course %d: %v", courseID, err)
		apierrors.InternalError(c, "Error al actualizar el curso")
		return
	}

	if nombre, ok := rawReq["nombre_curso"].(string); ok {
		course.NombreCurso = nombre
	}
	if progreso, ok := rawReq["progreso"].(string); ok {
		course.Progreso = progreso
	}
	if fecha, ok := rawReq["fecha_inscripcion"].(string); ok {
		course.FechaInscripcion = fecha
	}

	if err := h.repo.Save(course); err != nil {
		log.Printf("failed to update course %d: %v", courseID, err)
		apierrors.InternalError(c, "Error al actualizar el curso")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Curso actualizado correctamente"})
}

// UploadCertificate stores a certificate PDF and attaches it to the
// course. When the course row does not exist the just-written file is
// removed again so no orphan is left behind.
func (h *CourseHandler) UploadCertificate(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	courseID, ok := parseID(c, "id_curso")
	if !ok {
		return
	}

	fh, err := c.FormFile("certificado")
	if err != nil {
		apierrors.BadRequest(c, "Debe adjuntar un archivo PDF")
		return
	}

	servingPath, err := h.store.Save(fh, storage.Certificates)
	if err != nil {
		respondUploadError(c, err, "Solo se permiten archivos PDF de hasta 300 KB")
		return
	}

	if err := h.repo.SetCertificate(courseID, userID, servingPath); err != nil {
		// Compensate: the row association failed, drop the file
		if removeErr := h.store.Remove(servingPath); removeErr != nil {
			log.Printf("failed to clean up certificate %s: %v", servingPath, removeErr)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Curso no encontrado")
			return
		}
		log.Printf("failed to attach certificate to course %d: %v", courseID, err)
		apierrors.InternalError(c, "Error al subir el certificado")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Certificado subido exitosamente",
		"path":    servingPath,
	})
}

// Delete removes a course and attempts to remove its certificate file.
// The row deletion is authoritative: a failed file removal still yields
// a success response, with a caveat message.
func (h *CourseHandler) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	courseID, ok := parseID(c, "id_curso")
	if !ok {
		return
	}

	course, err := h.repo.FindByID(courseID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Curso no encontrado")
			return
		}
		log.Printf("failed to load course %d: %v", courseID, err)
		apierrors.InternalError(c, "Error al eliminar el curso")
		return
	}

	if err := h.repo.Delete(courseID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Lost a race against a concurrent delete
			apierrors.NotFound(c, "Curso no encontrado")
			return
		}
		log.Printf("failed to delete course %d: %v", courseID, err)
		apierrors.InternalError(c, "Error al eliminar el curso")
		return
	}

	if course.Certificado == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Curso eliminado correctamente"})
		return
	}

	if err := h.store.Remove(*course.Certificado); err != nil {
		log.Printf("failed to remove certificate %s: %v", *course.Certificado, err)
		c.JSON(http.StatusOK, gin.H{
			"message": "Curso eliminado, pero no se pudo eliminar el archivo asociado",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Curso y certificado eliminados correctamente"})
}

func respondUploadError(c *gin.Context, err error, typeMessage string) {
	switch {
	case errors.Is(err, storage.ErrFileType):
		apierrors.RejectedFile(c, typeMessage)
	case errors.Is(err, storage.ErrFileTooLarge):
		apierrors.RejectedFile(c, "El archivo supera el tamaño máximo permitido")
	default:
		log.Printf("failed to store upload: %v", err)
		apierrors.InternalError(c, "Error al guardar el archivo")
	}
}
