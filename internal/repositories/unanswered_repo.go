package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sossoukouame/kousossou-bot-be/internal/models"
)

type UnansweredRepo interface {
	List() ([]models.UnansweredQuestion, error)
	GetByID(id int) (*models.UnansweredQuestion, error)
	FindByQuestionFold(question string) (*models.UnansweredQuestion, error)
	Create(question *models.UnansweredQuestion) error
	Delete(id int) error
	DeleteByQuestionFold(question string) error
	Count() (int64, error)
}

type unansweredRepo struct {
	db *gorm.DB
}

func NewUnansweredRepo(db *gorm.DB) UnansweredRepo {
	return &unansweredRepo{db: db}
}

// List returns unanswered questions newest first.
func (r *unansweredRepo) List() ([]models.UnansweredQuestion, error) {
	var questions []models.UnansweredQuestion
	if err := r.db.Order("asked_at desc").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *unansweredRepo) GetByID(id int) (*models.UnansweredQuestion, error) {
	var question models.UnansweredQuestion
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// FindByQuestionFold looks up a question case-insensitively and returns nil
// without error when none exists.
func (r *unansweredRepo) FindByQuestionFold(question string) (*models.UnansweredQuestion, error) {
	var existing models.UnansweredQuestion
	err := r.db.Where("LOWER(question) = LOWER(?)", question).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &existing, nil
}

func (r *unansweredRepo) Create(question *models.UnansweredQuestion) error {
	return r.db.Create(question).Error
}

func (r *unansweredRepo) Delete(id int) error {
	return r.db.Delete(&models.UnansweredQuestion{}, id).Error
}

// DeleteByQuestionFold removes every record matching the question text
// case-insensitively. Used when an import supplies an answer.
func (r *unansweredRepo) DeleteByQuestionFold(question string) error {
	return r.db.Where("LOWER(question) = LOWER(?)", question).Delete(&models.UnansweredQuestion{}).Error
}

func (r *unansweredRepo) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.UnansweredQuestion{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
