package services

import (
	"fmt"

	"github.com/sossoukouame/kousossou-bot-be/internal/models"
	"github.com/sossoukouame/kousossou-bot-be/internal/repositories"
	"github.com/sossoukouame/kousossou-bot-be/internal/utils"
)

var seedCategories = []string{"General", "Identite", "Salutations", "Religion", "Sport", "Sante", "Geographie"}

var seedKnowledge = []struct {
	question string
	answer   string
	category string
}{
	{"bonjour", "Bonjour 😊", "Salutations"},
	{"bonsoir", "Oui bonsoir 👋", "Salutations"},
	{"comment tu t'appelles", "Je suis l'IA Kousossou, développée par Sossou Kouamé Appolinaire, développeur web et créateur des bots Telegram.", "Identite"},
	{"qui est jesus", "Jésus-Christ est le Fils de Dieu selon la Bible.", "Religion"},
	{"combien de livres dans la bible", "La Bible contient 66 livres.", "Religion"},
	{"qui a gagné la coupe du monde 2018", "La France a remporté la Coupe du Monde 2018.", "Sport"},
	{"qu'est ce que le paludisme", "Le paludisme est une maladie parasitaire transmise par les moustiques.", "Sante"},
	{"comment prevenir le diabete", "Une alimentation saine et l'exercice régulier aident à prévenir le diabète.", "Sante"},
	{"qui est le premier président du bénin", "Le premier président du Bénin était Hubert Maga.", "Geographie"},
	{"quel est la capitale de la cote d'ivoire", "La capitale politique de la Côte d’Ivoire est Yamoussoukro.", "Geographie"},
}

// SeedService creates the default categories and knowledge entries on a fresh
// database. It only runs when zero categories exist.
type SeedService struct {
	categoryRepo  repositories.CategoryRepo
	knowledgeRepo repositories.KnowledgeRepo
}

func NewSeedService(categoryRepo repositories.CategoryRepo, knowledgeRepo repositories.KnowledgeRepo) *SeedService {
	return &SeedService{
		categoryRepo:  categoryRepo,
		knowledgeRepo: knowledgeRepo,
	}
}

func (s *SeedService) Run() error {
	count, err := s.categoryRepo.Count()
	if err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	categoryIDs := make(map[string]int, len(seedCategories))
	for _, name := range seedCategories {
		category := &models.Category{Name: name}
		if err := s.categoryRepo.Create(category); err != nil {
			return fmt.Errorf("seed category %s: %w", name, err)
		}
		categoryIDs[name] = category.ID
	}

	for _, item := range seedKnowledge {
		entry := &models.Knowledge{
			Question:   item.question,
			Answer:     item.answer,
			CategoryID: categoryIDs[item.category],
		}
		if err := s.knowledgeRepo.Create(entry); err != nil {
			return fmt.Errorf("seed knowledge %q: %w", item.question, err)
		}
	}

	utils.LogInfo("seeded default knowledge base", map[string]interface{}{
		"categories": len(seedCategories),
		"entries":    len(seedKnowledge),
	})
	return nil
}
