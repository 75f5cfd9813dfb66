package services

import (
	"strings"

	"github.com/sossoukouame/kousossou-bot-be/internal/apperrors"
	"github.com/sossoukouame/kousossou-bot-be/internal/models"
	"github.com/sossoukouame/kousossou-bot-be/internal/repositories"
)

// CategoryService manages the category collection.
type CategoryService struct {
	categoryRepo repositories.CategoryRepo
}

func NewCategoryService(categoryRepo repositories.CategoryRepo) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) List() ([]models.Category, error) {
	return s.categoryRepo.List()
}

// Create validates that the name is non-empty and unique.
func (s *CategoryService) Create(name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidation("name", "ne doit pas être vide")
	}

	existing, err := s.categoryRepo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewValidation("name", "existe déjà")
	}

	category := &models.Category{Name: name}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes the category and all knowledge entries referencing it.
func (s *CategoryService) Delete(id int) error {
	return s.categoryRepo.Delete(id)
}
