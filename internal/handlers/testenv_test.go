package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"github.com/studify/studify-api/internal/auth"
	"github.com/studify/studify-api/internal/constants"
	"github.com/studify/studify-api/internal/database"
	"github.com/studify/studify-api/internal/middleware"
	"github.com/studify/studify-api/internal/models"
	"github.com/studify/studify-api/internal/repository"
	"github.com/studify/studify-api/internal/services"
	"github.com/studify/studify-api/internal/storage"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testSecret = []byte("test-secret")

// HandlerTestSuite wires an in-memory database and a router configured
// exactly like the server entrypoint. Feature suites embed it.
type HandlerTestSuite struct {
	suite.Suite
	db         *gorm.DB
	router     *gin.Engine
	uploadRoot string
}

// SetupTest runs before each test
func (suite *HandlerTestSuite) SetupTest() {
	var err error

	// Create in-memory SQLite database
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	// Run migrations
	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.Note{},
		&models.Event{},
		&models.Course{},
		&models.Resource{},
		&models.PomodoroSession{},
	)
	suite.Require().NoError(err)

	// Set the test DB as the default database
	database.SetDB(suite.db)

	suite.uploadRoot = suite.T().TempDir()
	store := storage.NewStore(suite.uploadRoot)

	authHandler := NewAuthHandler(services.NewAuthService(repository.NewUserRepository(suite.db)), testSecret)
	taskHandler := NewTaskHandler(repository.NewTaskRepository(suite.db))
	noteHandler := NewNoteHandler(repository.NewNoteRepository(suite.db))
	eventHandler := NewEventHandler(repository.NewEventRepository(suite.db))
	courseHandler := NewCourseHandler(repository.NewCourseRepository(suite.db), store)
	resourceHandler := NewResourceHandler(repository.NewResourceRepository(suite.db), store)
	pomodoroHandler := NewPomodoroHandler(repository.NewPomodoroRepository(suite.db))

	// Set Gin to test mode
	gin.SetMode(gin.TestMode)

	// Create router with the same route table as the server
	suite.router = gin.New()

	api := suite.router.Group("/api")
	authGroup := api.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/verify", middleware.RequireAuth(testSecret), authHandler.Verify)

	protected := api.Group("", middleware.RequireAuth(testSecret))

	tareas := protected.Group("/tareas")
	tareas.POST("/create", taskHandler.Create)
	tareas.GET("/list", taskHandler.List)
	tareas.PUT("/update/:id_tarea", taskHandler.Update)
	tareas.DELETE("/delete/:id_tarea", taskHandler.Delete)

	notas := protected.Group("/notas")
	notas.POST("/create", noteHandler.Create)
	notas.GET("/list", noteHandler.List)
	notas.PUT("/update/:id_nota", noteHandler.Update)
	notas.DELETE("/delete/:id_nota", noteHandler.Delete)

	planificador := protected.Group("/planificador")
	planificador.POST("/create", eventHandler.Create)
	planificador.GET("/list", eventHandler.List)
	planificador.PUT("/update/:id_evento", eventHandler.Update)
	planificador.DELETE("/delete/:id_evento", eventHandler.Delete)

	cursos := protected.Group("/cursos")
	cursos.POST("/create", courseHandler.Create)
	cursos.GET("/list", courseHandler.List)
	cursos.PUT("/update/:id_curso", courseHandler.Update)
	cursos.POST("/upload/:id_curso", courseHandler.UploadCertificate)
	cursos.DELETE("/delete/:id_curso", courseHandler.Delete)

	recursos := protected.Group("/recursos")
	recursos.POST("/upload", resourceHandler.Upload)
	recursos.GET("/list", resourceHandler.List)
	recursos.GET("/search", resourceHandler.Search)
	recursos.DELETE("/delete/:id_recurso", resourceHandler.Delete)

	pomodoro := protected.Group("/pomodoro")
	pomodoro.POST("/register", pomodoroHandler.Register)
	pomodoro.GET("/history", pomodoroHandler.History)
	pomodoro.DELETE("/delete/:id", pomodoroHandler.Delete)
}

// TearDownTest runs after each test
func (suite *HandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

// Helper function to create test data
func (suite *HandlerTestSuite) createTestUser(nombre, email string) (*models.User, string) {
	user := &models.User{
		Nombre:       nombre,
		Email:        email,
		PasswordHash: "hashedpassword",
	}
	suite.Require().NoError(suite.db.Create(user).Error)

	token, err := auth.GenerateToken(user.ID, user.Email, testSecret)
	suite.Require().NoError(err)

	return user, token
}

// doJSON performs a JSON request against the router.
func (suite *HandlerTestSuite) doJSON(method, url string, payload any, token string) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		suite.Require().NoError(err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// doUpload performs a multipart upload against the router.
func (suite *HandlerTestSuite) doUpload(url, field, filename, contentType string, payload []byte, extraFields map[string]string, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	suite.Require().NoError(err)
	_, err = part.Write(payload)
	suite.Require().NoError(err)

	for k, v := range extraFields {
		suite.Require().NoError(mw.WriteField(k, v))
	}
	suite.Require().NoError(mw.Close())

	req := httptest.NewRequest(http.MethodPost, url, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) decodeBody(w *httptest.ResponseRecorder) map[string]any {
	var parsed map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &parsed))
	return parsed
}

// diskPath maps a serving path back to its location under the test
// upload root.
func (suite *HandlerTestSuite) diskPath(servingPath string) string {
	return filepath.Join(suite.uploadRoot, filepath.FromSlash(strings.TrimPrefix(servingPath, "/")))
}

func (suite *HandlerTestSuite) certificateDirEntries() []os.DirEntry {
	entries, err := os.ReadDir(filepath.Join(suite.uploadRoot, filepath.FromSlash(constants.CertificateDir)))
	if os.IsNotExist(err) {
		return nil
	}
	suite.Require().NoError(err)
	return entries
}
