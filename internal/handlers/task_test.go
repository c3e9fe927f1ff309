package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/studify/studify-api/internal/models"
)

// TaskHandlerTestSuite defines the test suite for TaskHandler
type TaskHandlerTestSuite struct {
	HandlerTestSuite
}

// TestCreateTask_Success tests successful task creation
func (suite *TaskHandlerTestSuite) TestCreateTask_Success() {
	user, token := suite.createTestUser("Ana", "ana@example.com")

	w := suite.doJSON(http.MethodPost, "/api/tareas/create", map[string]any{
		"titulo":    "Estudiar álgebra",
		"prioridad": "alta",
	}, token)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var task models.Task
	suite.Require().NoError(suite.db.First(&task).Error)
	assert.Equal(suite.T(), user.ID, task.UserID)
	assert.Equal(suite.T(), models.TaskStatusPendiente, task.Estado)
}

// TestCreateTask_MissingFields tests task creation with missing fields
func (suite *TaskHandlerTestSuite) TestCreateTask_MissingFields() {
	_, token := suite.createTestUser("Ana", "ana@example.com")

	w := suite.doJSON(http.MethodPost, "/api/tareas/create", map[string]any{
		"descripcion": "sin título ni prioridad",
	}, token)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestCreateTask_OwnerComesFromToken tests that a client-supplied
// id_usuario is ignored; the token decides
func (suite *TaskHandlerTestSuite) TestCreateTask_OwnerComesFromToken() {
	user, token := suite.createTestUser("Ana", "ana@example.com")
	other, _ := suite.createTestUser("Luis", "luis@example.com")

	w := suite.doJSON(http.MethodPost, "/api/tareas/create", map[string]any{
		"titulo":     "Tarea",
		"prioridad":  "baja",
		"id_usuario": other.ID,
	}, token)
	suite.Require().Equal(http.StatusCreated, w.Code)

	var task models.Task
	suite.Require().NoError(suite.db.First(&task).Error)
	assert.Equal(suite.T(), user.ID, task.UserID)
}

// TestListTasks_ScopedToOwner tests that listing never shows other
// users' tasks
func (suite *TaskHandlerTestSuite) TestListTasks_ScopedToOwner() {
	user, token := suite.createTestUser("Ana", "ana@example.com")
	other, _ := suite.createTestUser("Luis", "luis@example.com")

	suite.Require().NoError(suite.db.Create(&models.Task{UserID: user.ID, Titulo: "mía", Prioridad: "alta", Estado: "pendiente"}).Error)
	suite.Require().NoError(suite.db.Create(&models.Task{UserID: other.ID, Titulo: "ajena", Prioridad: "alta", Estado: "pendiente"}).Error)

	w := suite.doJSON(http.MethodGet, "/api/tareas/list", nil, token)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var tasks []models.Task
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &tasks))
	suite.Require().Len(tasks, 1)
	assert.Equal(suite.T(), "mía", tasks[0].Titulo)
}

// TestUpdateTask_PartialPreservesOmittedFields tests that omitted
// fields keep their stored values
func (suite *TaskHandlerTestSuite) TestUpdateTask_PartialPreservesOmittedFields() {
	user, token := suite.createTestUser("Ana", "ana@example.com")

	task := models.Task{UserID: user.ID, Titulo: "A", Prioridad: "alta", Estado: "pendiente"}
	suite.Require().NoError(suite.db.Create(&task).Error)

	w := suite.doJSON(http.MethodPut, "/api/tareas/update/1", map[string]any{
		"estado": "completada",
	}, token)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var updated models.Task
	suite.Require().NoError(suite.db.First(&updated, task.ID).Error)
	assert.Equal(suite.T(), "A", updated.Titulo)
	assert.Equal(suite.T(), "alta", updated.Prioridad)
	assert.Equal(suite.T(), models.TaskStatusCompletada, updated.Estado)
}

// TestUpdateTask_NotFound tests updating a missing task
func (suite *TaskHandlerTestSuite) TestUpdateTask_NotFound() {
	_, token := suite.createTestUser("Ana", "ana@example.com")

	w := suite.doJSON(http.MethodPut, "/api/tareas/update/999", map[string]any{
		"titulo": "no existe",
	}, token)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestUpdateTask_OtherUsersTaskReadsAsNotFound tests that another
// user's task behaves like a missing row
func (suite *TaskHandlerTestSuite) TestUpdateTask_OtherUsersTaskReadsAsNotFound() {
	_, token := suite.createTestUser("Ana", "ana@example.com")
	other, _ := suite.createTestUser("Luis", "luis@example.com")

	task := models.Task{UserID: other.ID, Titulo: "ajena", Prioridad: "alta", Estado: "pendiente"}
	suite.Require().NoError(suite.db.Create(&task).Error)

	w := suite.doJSON(http.MethodPut, "/api/tareas/update/1", map[string]any{
		"titulo": "robada",
	}, token)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	var unchanged models.Task
	suite.Require().NoError(suite.db.First(&unchanged, task.ID).Error)
	assert.Equal(suite.T(), "ajena", unchanged.Titulo)
}

// TestDeleteTask_Success tests successful task deletion
func (suite *TaskHandlerTestSuite) TestDeleteTask_Success() {
	user, token := suite.createTestUser("Ana", "ana@example.com")

	task := models.Task{UserID: user.ID, Titulo: "borrar", Prioridad: "baja", Estado: "pendiente"}
	suite.Require().NoError(suite.db.Create(&task).Error)

	w := suite.doJSON(http.MethodDelete, "/api/tareas/delete/1", nil, token)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var count int64
	suite.db.Model(&models.Task{}).Count(&count)
	assert.Zero(suite.T(), count)
}

// TestDeleteTask_NotFound tests deleting a missing task
func (suite *TaskHandlerTestSuite) TestDeleteTask_NotFound() {
	_, token := suite.createTestUser("Ana", "ana@example.com")

	w := suite.doJSON(http.MethodDelete, "/api/tareas/delete/999", nil, token)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestTaskRoutes_RequireAuth tests that the feature routes reject
// unauthenticated requests
func (suite *TaskHandlerTestSuite) TestTaskRoutes_RequireAuth() {
	w := suite.doJSON(http.MethodGet, "/api/tareas/list", nil, "")
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)

	w = suite.doJSON(http.MethodPost, "/api/tareas/create", map[string]any{
		"titulo": "x", "prioridad": "alta",
	}, "")
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

// TestSuite runs the test suite
func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
