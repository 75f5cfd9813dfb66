package repositories

import (
	"gorm.io/gorm"

	"github.com/sossoukouame/kousossou-bot-be/internal/models"
)

type KnowledgeRepo interface {
	// ListOrdered returns all entries in ascending id order, which the match
	// engine relies on for its lowest-id tie-break.
	ListOrdered() ([]models.Knowledge, error)
	Create(entry *models.Knowledge) error
	ExistsByQuestion(question string) (bool, error)
	Count() (int64, error)
}

type knowledgeRepo struct {
	db *gorm.DB
}

func NewKnowledgeRepo(db *gorm.DB) KnowledgeRepo {
	return &knowledgeRepo{db: db}
}

func (r *knowledgeRepo) ListOrdered() ([]models.Knowledge, error) {
	var entries []models.Knowledge
	if err := r.db.Order("id asc").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *knowledgeRepo) Create(entry *models.Knowledge) error {
	if entry.Confidence == 0 {
		entry.Confidence = models.DefaultConfidence
	}
	return r.db.Create(entry).Error
}

// ExistsByQuestion checks the raw question text globally across categories.
func (r *knowledgeRepo) ExistsByQuestion(question string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Knowledge{}).Where("question = ?", question).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *knowledgeRepo) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Knowledge{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
