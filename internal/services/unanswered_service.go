package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/sossoukouame/kousossou-bot-be/internal/apperrors"
	"github.com/sossoukouame/kousossou-bot-be/internal/models"
	"github.com/sossoukouame/kousossou-bot-be/internal/repositories"
)

// UnansweredService manages the log of questions the bot could not answer.
type UnansweredService struct {
	unansweredRepo repositories.UnansweredRepo
	knowledgeRepo  repositories.KnowledgeRepo
}

func NewUnansweredService(unansweredRepo repositories.UnansweredRepo, knowledgeRepo repositories.KnowledgeRepo) *UnansweredService {
	return &UnansweredService{
		unansweredRepo: unansweredRepo,
		knowledgeRepo:  knowledgeRepo,
	}
}

// Record stores the question unless an open record already exists for the
// same text (case-insensitive), in which case that record is returned.
func (s *UnansweredService) Record(question string) (*models.UnansweredQuestion, error) {
	existing, err := s.unansweredRepo.FindByQuestionFold(question)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	record := &models.UnansweredQuestion{Question: question}
	if err := s.unansweredRepo.Create(record); err != nil {
		return nil, err
	}
	return record, nil
}

// List returns unanswered questions newest first.
func (s *UnansweredService) List() ([]models.UnansweredQuestion, error) {
	return s.unansweredRepo.List()
}

// Resolve turns an unanswered question into a knowledge entry. The knowledge
// entry is created before the record is deleted so a failed creation never
// loses the question.
func (s *UnansweredService) Resolve(id int, answer string, categoryID int) (*models.Knowledge, error) {
	record, err := s.unansweredRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	entry := &models.Knowledge{
		Question:   record.Question,
		Answer:     answer,
		CategoryID: categoryID,
	}
	if err := s.knowledgeRepo.Create(entry); err != nil {
		return nil, fmt.Errorf("create knowledge entry: %w", err)
	}
	if err := s.unansweredRepo.Delete(id); err != nil {
		return nil, fmt.Errorf("delete unanswered record: %w", err)
	}
	return entry, nil
}
