package services

import (
	"github.com/sossoukouame/kousossou-bot-be/internal/repositories"
	"github.com/sossoukouame/kousossou-bot-be/internal/utils"
)

// StatsService logs knowledge base counters, run on a cron schedule for
// operational visibility.
type StatsService struct {
	categoryRepo   repositories.CategoryRepo
	knowledgeRepo  repositories.KnowledgeRepo
	unansweredRepo repositories.UnansweredRepo
}

func NewStatsService(
	categoryRepo repositories.CategoryRepo,
	knowledgeRepo repositories.KnowledgeRepo,
	unansweredRepo repositories.UnansweredRepo,
) *StatsService {
	return &StatsService{
		categoryRepo:   categoryRepo,
		knowledgeRepo:  knowledgeRepo,
		unansweredRepo: unansweredRepo,
	}
}

func (s *StatsService) LogCounts() {
	categories, err := s.categoryRepo.Count()
	if err != nil {
		utils.LogError("stats: count categories failed", err, nil)
		return
	}
	knowledge, err := s.knowledgeRepo.Count()
	if err != nil {
		utils.LogError("stats: count knowledge failed", err, nil)
		return
	}
	unanswered, err := s.unansweredRepo.Count()
	if err != nil {
		utils.LogError("stats: count unanswered failed", err, nil)
		return
	}

	utils.LogInfo("knowledge base stats", map[string]interface{}{
		"categories": categories,
		"knowledge":  knowledge,
		"unanswered": unanswered,
	})
}
