package service

import (
	"context"

	"aiready/internal/model"
	"aiready/internal/repository"
)

// TemplateService handles template CRUD operations
type TemplateService struct {
	templateRepo repository.TemplateRepo
}

// NewTemplateService creates a new template service
func NewTemplateService(templateRepo repository.TemplateRepo) *TemplateService {
	return &TemplateService{
		templateRepo: templateRepo,
	}
}

// Create validates and stores a new template
func (s *TemplateService) Create(ctx context.Context, template *model.Template) (string, error) {
	if err := template.Validate(); err != nil {
		return "", err
	}
	return s.templateRepo.Create(ctx, template)
}

// GetByID retrieves a template by ID
func (s *TemplateService) GetByID(ctx context.Context, id string) (*model.Template, error) {
	return s.templateRepo.GetByID(ctx, id)
}

// GetByCompanyID retrieves all templates for a company
func (s *TemplateService) GetByCompanyID(ctx context.Context, companyID string) ([]*model.Template, error) {
	return s.templateRepo.GetByCompanyID(ctx, companyID)
}

// Update validates and updates an existing template
func (s *TemplateService) Update(ctx context.Context, template *model.Template) error {
	if err := template.Validate(); err != nil {
		return err
	}
	return s.templateRepo.Update(ctx, template)
}

// Delete deletes a template
func (s *TemplateService) Delete(ctx context.Context, id string) error {
	return s.templateRepo.Delete(ctx, id)
}
