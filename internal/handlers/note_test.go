package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/studify/studify-api/internal/models"
)

// NoteHandlerTestSuite defines the test suite for NoteHandler
type NoteHandlerTestSuite struct {
	HandlerTestSuite
}

// TestCreateNote_Success tests successful note creation
func (suite *NoteHandlerTestSuite) TestCreateNote_Success() {
	user, token := suite.createTestUser("Ana", "ana@example.com")

	w := suite.doJSON(http.MethodPost, "/api/notas/create", map[string]any{
		"titulo":    "Apuntes",
		"contenido": "Derivadas e integrales",
	}, token)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var note models.Note
	suite.Require().NoError(suite.db.First(&note).Error)
	assert.Equal(suite.T(), user.ID, note.UserID)
	assert.False(suite.T(), note.FechaCreacion.IsZero())
}

// TestCreateNote_MissingFields tests note creation with missing fields
func (suite *NoteHandlerTestSuite) TestCreateNote_MissingFields() {
	_, token := suite.createTestUser("Ana", "ana@example.com")

	w := suite.doJSON(http.MethodPost, "/api/notas/create", map[string]any{
		"titulo": "sin contenido",
	}, token)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestListNotes_NewestFirst tests that listing orders by creation date
func (suite *NoteHandlerTestSuite) TestListNotes_NewestFirst() {
	user, token := suite.createTestUser("Ana", "ana@example.com")

	old := models.Note{UserID: user.ID, Titulo: "vieja", Contenido: "x", FechaCreacion: time.Now().Add(-time.Hour)}
	recent := models.Note{UserID: user.ID, Titulo: "nueva", Contenido: "y", FechaCreacion: time.Now()}
	suite.Require().NoError(suite.db.Create(&old).Error)
	suite.Require().NoError(suite.db.Create(&recent).Error)

	w := suite.doJSON(http.MethodGet, "/api/notas/list", nil, token)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var notes []models.Note
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &notes))
	suite.Require().Len(notes, 2)
	assert.Equal(suite.T(), "nueva", notes[0].Titulo)
	assert.Equal(suite.T(), "vieja", notes[1].Titulo)
}

// TestUpdateNote_PartialPreservesOmittedFields tests that omitted
// fields keep their stored values
func (suite *NoteHandlerTestSuite) TestUpdateNote_PartialPreservesOmittedFields() {
	user, token := suite.createTestUser("Ana", "ana@example.com")

	note := models.Note{UserID: user.ID, Titulo: "Original", Contenido: "Contenido", FechaCreacion: time.Now()}
	suite.Require().NoError(suite.db.Create(&note).Error)

	w := suite.doJSON(http.MethodPut, "/api/notas/update/1", map[string]any{
		"contenido": "Contenido nuevo",
	}, token)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var updated models.Note
	suite.Require().NoError(suite.db.First(&updated, note.ID).Error)
	assert.Equal(suite.T(), "Original", updated.Titulo)
	assert.Equal(suite.T(), "Contenido nuevo", updated.Contenido)
}

// TestDeleteNote_NotFound tests deleting a missing note
func (suite *NoteHandlerTestSuite) TestDeleteNote_NotFound() {
	_, token := suite.createTestUser("Ana", "ana@example.com")

	w := suite.doJSON(http.MethodDelete, "/api/notas/delete/42", nil, token)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestSuite runs the test suite
func TestNoteHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(NoteHandlerTestSuite))
}
