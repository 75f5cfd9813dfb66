package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sossoukouame/kousossou-bot-be/internal/core/engine"
	"github.com/sossoukouame/kousossou-bot-be/internal/models"
	"github.com/sossoukouame/kousossou-bot-be/internal/repositories"
	"github.com/sossoukouame/kousossou-bot-be/internal/services"
)

const testAdminPassword = "kouame"

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Knowledge{}, &models.UnansweredQuestion{}))

	categoryRepo := repositories.NewCategoryRepo(db)
	knowledgeRepo := repositories.NewKnowledgeRepo(db)
	unansweredRepo := repositories.NewUnansweredRepo(db)

	rnd := rand.New(rand.NewSource(1))
	unansweredService := services.NewUnansweredService(unansweredRepo, knowledgeRepo)
	chatService := services.NewChatService(knowledgeRepo, unansweredService, engine.NewMatcher(rnd), engine.NewComposer(rnd), nil)
	categoryService := services.NewCategoryService(categoryRepo)
	importService := services.NewImportService(knowledgeRepo, unansweredRepo)

	chatHandler := NewChatHandler(chatService)
	adminHandler := NewAdminHandler(testAdminPassword)
	categoryHandler := NewCategoryHandler(categoryService)
	knowledgeHandler := NewKnowledgeHandler(importService)
	unansweredHandler := NewUnansweredHandler(unansweredService)

	app := fiber.New()
	app.Post("/api/chat/ask", chatHandler.Ask)
	app.Post("/api/admin/login", adminHandler.Login)
	app.Get("/api/categories", categoryHandler.List)
	app.Post("/api/categories", categoryHandler.Create)
	app.Delete("/api/categories/:id", categoryHandler.Delete)
	app.Post("/api/knowledge/import", knowledgeHandler.Import)
	app.Get("/api/unanswered", unansweredHandler.List)
	app.Post("/api/unanswered/resolve", unansweredHandler.Resolve)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestAskEndpoint(t *testing.T) {
	app, db := setupApp(t)

	category := &models.Category{Name: "Salutations"}
	require.NoError(t, repositories.NewCategoryRepo(db).Create(category))
	require.NoError(t, repositories.NewKnowledgeRepo(db).Create(&models.Knowledge{
		Question: "bonjour", Answer: "Salut", CategoryID: category.ID,
	}))

	resp := doJSON(t, app, http.MethodPost, "/api/chat/ask", fiber.Map{"question": "Bonjour"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body AskResponse
	decode(t, resp, &body)
	assert.True(t, body.Found)
	assert.Equal(t, 100, body.Confidence)
	assert.Equal(t, "Salut\n\nComment puis-je t'aider davantage ?", body.Answer)
}

func TestAskEndpointMissEndsInUnansweredLog(t *testing.T) {
	app, _ := setupApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/chat/ask", fiber.Map{"question": "pourquoi le ciel est bleu"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body AskResponse
	decode(t, resp, &body)
	assert.False(t, body.Found)

	resp = doJSON(t, app, http.MethodGet, "/api/unanswered", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var questions []models.UnansweredQuestion
	decode(t, resp, &questions)
	require.Len(t, questions, 1)
	assert.Equal(t, "pourquoi le ciel est bleu", questions[0].Question)
}

func TestAskEndpointRejectsEmptyQuestion(t *testing.T) {
	app, _ := setupApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/chat/ask", fiber.Map{"question": "  "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAdminLogin(t *testing.T) {
	app, _ := setupApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/admin/login", fiber.Map{"password": testAdminPassword})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]bool
	decode(t, resp, &body)
	assert.True(t, body["success"])

	resp = doJSON(t, app, http.MethodPost, "/api/admin/login", fiber.Map{"password": "mauvais"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCategoryEndpoints(t *testing.T) {
	app, _ := setupApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/categories", fiber.Map{"name": "Sport"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.Category
	decode(t, resp, &created)
	assert.NotZero(t, created.ID)

	// Duplicate name fails validation.
	resp = doJSON(t, app, http.MethodPost, "/api/categories", fiber.Map{"name": "Sport"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var categories []models.Category
	decode(t, resp, &categories)
	assert.Len(t, categories, 1)

	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/categories/%d", created.ID), nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/categories/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestImportEndpoint(t *testing.T) {
	app, db := setupApp(t)

	category := &models.Category{Name: "General"}
	require.NoError(t, repositories.NewCategoryRepo(db).Create(category))

	payload := fiber.Map{
		"categoryId": category.ID,
		"content":    "quelle heure est il=Je ne sais pas||plus tard||time||neutre",
	}
	resp := doJSON(t, app, http.MethodPost, "/api/knowledge/import", payload)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result services.ImportResult
	decode(t, resp, &result)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 0, result.Duplicates)

	resp = doJSON(t, app, http.MethodPost, "/api/knowledge/import", payload)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &result)
	assert.Equal(t, 0, result.Imported)
	assert.Equal(t, 1, result.Duplicates)
}

func TestResolveEndpoint(t *testing.T) {
	app, db := setupApp(t)

	category := &models.Category{Name: "Geographie"}
	require.NoError(t, repositories.NewCategoryRepo(db).Create(category))
	record := &models.UnansweredQuestion{Question: "Quelle est la capitale du Togo"}
	require.NoError(t, repositories.NewUnansweredRepo(db).Create(record))

	payload := fiber.Map{"id": record.ID, "answer": "Lomé.", "categoryId": category.ID}
	resp := doJSON(t, app, http.MethodPost, "/api/unanswered/resolve", payload)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var entry models.Knowledge
	decode(t, resp, &entry)
	assert.Equal(t, "Quelle est la capitale du Togo", entry.Question)
	assert.Equal(t, "Lomé.", entry.Answer)

	// The record is gone, a second resolution is a 404.
	resp = doJSON(t, app, http.MethodPost, "/api/unanswered/resolve", payload)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
