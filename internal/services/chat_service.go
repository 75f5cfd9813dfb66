package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sossoukouame/kousossou-bot-be/internal/core/engine"
	"github.com/sossoukouame/kousossou-bot-be/internal/core/search"
	"github.com/sossoukouame/kousossou-bot-be/internal/repositories"
	"github.com/sossoukouame/kousossou-bot-be/internal/utils"
)

const (
	unknownAnswer       = "Désolé, je ne connais pas encore la réponse à cette question."
	lowConfidencePrefix = "Je ne suis pas totalement sûr, mais voici ce que je peux te dire…\n\n"

	// searchConfidence is reported when the web-search fallback answers.
	searchConfidence = 90
	searchTimeout    = 10 * time.Second
)

// AskResult is the outcome of a chat question.
type AskResult struct {
	Answer     string
	Found      bool
	Confidence int
}

// ChatService orchestrates a chat request: normalize and match against the
// knowledge base, fall back to the search provider, and log the question as
// unanswered when everything misses.
type ChatService struct {
	knowledgeRepo repositories.KnowledgeRepo
	unanswered    *UnansweredService
	matcher       *engine.Matcher
	composer      *engine.Composer
	searcher      search.Provider
}

func NewChatService(
	knowledgeRepo repositories.KnowledgeRepo,
	unanswered *UnansweredService,
	matcher *engine.Matcher,
	composer *engine.Composer,
	searcher search.Provider,
) *ChatService {
	return &ChatService{
		knowledgeRepo: knowledgeRepo,
		unanswered:    unanswered,
		matcher:       matcher,
		composer:      composer,
		searcher:      searcher,
	}
}

func (s *ChatService) Ask(ctx context.Context, question string, conv *engine.Context) (*AskResult, error) {
	entries, err := s.knowledgeRepo.ListOrdered()
	if err != nil {
		return nil, fmt.Errorf("load knowledge base: %w", err)
	}

	if result := s.matcher.Find(entries, question, conv); result != nil {
		if result.Synthetic() {
			return &AskResult{Answer: result.Text, Found: true, Confidence: result.Confidence}, nil
		}

		answer := s.composer.Compose(result.Entry)
		if result.Confidence < 80 {
			answer = lowConfidencePrefix + answer
		}
		return &AskResult{Answer: answer, Found: true, Confidence: result.Confidence}, nil
	}

	if answer := s.trySearch(ctx, question); answer != "" {
		return &AskResult{Answer: answer, Found: true, Confidence: searchConfidence}, nil
	}

	if _, err := s.unanswered.Record(question); err != nil {
		utils.LogError("failed to record unanswered question", err, map[string]interface{}{
			"question": question,
		})
	}
	return &AskResult{Answer: unknownAnswer, Found: false}, nil
}

// trySearch calls the search provider with a bounded timeout. Failures are
// logged and treated as "no result"; they never reach the caller.
func (s *ChatService) trySearch(ctx context.Context, question string) string {
	if s.searcher == nil {
		return ""
	}

	searchCtx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	answer, err := s.searcher.Search(searchCtx, question)
	if err != nil {
		utils.LogError("web search failed", err, map[string]interface{}{
			"question": question,
		})
		return ""
	}
	return answer
}
