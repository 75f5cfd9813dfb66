package services

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sossoukouame/kousossou-bot-be/internal/core/engine"
	"github.com/sossoukouame/kousossou-bot-be/internal/core/search"
	"github.com/sossoukouame/kousossou-bot-be/internal/models"
	"github.com/sossoukouame/kousossou-bot-be/internal/repositories"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Knowledge{}, &models.UnansweredQuestion{}))
	return db
}

// testEnv bundles the repositories and services wired on one test database.
type testEnv struct {
	db             *gorm.DB
	categoryRepo   repositories.CategoryRepo
	knowledgeRepo  repositories.KnowledgeRepo
	unansweredRepo repositories.UnansweredRepo
	unanswered     *UnansweredService
	categories     *CategoryService
	importer       *ImportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	categoryRepo := repositories.NewCategoryRepo(db)
	knowledgeRepo := repositories.NewKnowledgeRepo(db)
	unansweredRepo := repositories.NewUnansweredRepo(db)
	return &testEnv{
		db:             db,
		categoryRepo:   categoryRepo,
		knowledgeRepo:  knowledgeRepo,
		unansweredRepo: unansweredRepo,
		unanswered:     NewUnansweredService(unansweredRepo, knowledgeRepo),
		categories:     NewCategoryService(categoryRepo),
		importer:       NewImportService(knowledgeRepo, unansweredRepo),
	}
}

func (e *testEnv) chat(searcher search.Provider) *ChatService {
	rnd := rand.New(rand.NewSource(1))
	return NewChatService(e.knowledgeRepo, e.unanswered, engine.NewMatcher(rnd), engine.NewComposer(rnd), searcher)
}

func (e *testEnv) mustCategory(t *testing.T, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name}
	require.NoError(t, e.categoryRepo.Create(category))
	return category
}

func (e *testEnv) mustKnowledge(t *testing.T, entry *models.Knowledge) *models.Knowledge {
	t.Helper()
	require.NoError(t, e.knowledgeRepo.Create(entry))
	return entry
}
