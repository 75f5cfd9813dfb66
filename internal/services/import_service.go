package services

import (
	"fmt"
	"strings"

	"github.com/sossoukouame/kousossou-bot-be/internal/models"
	"github.com/sossoukouame/kousossou-bot-be/internal/repositories"
)

// ImportResult reports how many lines were inserted and how many were skipped
// as duplicates.
type ImportResult struct {
	Imported   int `json:"imported"`
	Duplicates int `json:"duplicates"`
}

// ImportService bulk-loads knowledge entries from the line format
// "question=answer||alternative||intention||ton". Malformed lines are
// silently skipped.
type ImportService struct {
	knowledgeRepo  repositories.KnowledgeRepo
	unansweredRepo repositories.UnansweredRepo
}

func NewImportService(knowledgeRepo repositories.KnowledgeRepo, unansweredRepo repositories.UnansweredRepo) *ImportService {
	return &ImportService{
		knowledgeRepo:  knowledgeRepo,
		unansweredRepo: unansweredRepo,
	}
}

func (s *ImportService) Import(categoryID int, content string) (*ImportResult, error) {
	result := &ImportResult{}

	for _, line := range strings.Split(content, "\n") {
		entry, ok := parseLine(line, categoryID)
		if !ok {
			continue
		}

		exists, err := s.knowledgeRepo.ExistsByQuestion(entry.Question)
		if err != nil {
			return nil, fmt.Errorf("check duplicate: %w", err)
		}
		if exists {
			result.Duplicates++
			continue
		}

		if err := s.knowledgeRepo.Create(entry); err != nil {
			return nil, fmt.Errorf("insert knowledge entry: %w", err)
		}

		// The question now has an answer, drop it from the unanswered log.
		if err := s.unansweredRepo.DeleteByQuestionFold(entry.Question); err != nil {
			return nil, fmt.Errorf("clean unanswered log: %w", err)
		}
		result.Imported++
	}

	return result, nil
}

// parseLine splits "question=answer||alternative||intention||ton" into a
// knowledge entry. Lines without "=" or with an empty question or answer are
// rejected.
func parseLine(line string, categoryID int) (*models.Knowledge, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, false
	}

	question, rest, found := strings.Cut(line, "=")
	if !found {
		return nil, false
	}
	question = strings.TrimSpace(question)

	parts := strings.Split(rest, "||")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	answer := parts[0]
	if question == "" || answer == "" {
		return nil, false
	}

	entry := &models.Knowledge{
		Question:   question,
		Answer:     answer,
		CategoryID: categoryID,
	}
	if len(parts) > 1 {
		entry.AlternativeAnswers = parts[1]
	}
	if len(parts) > 2 {
		entry.Intention = parts[2]
	}
	if len(parts) > 3 {
		entry.Ton = parts[3]
	}
	return entry, true
}
