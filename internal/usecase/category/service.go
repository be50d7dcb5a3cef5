package category

import (
	"context"
	"fmt"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

// CreateInput represents the input parameters for creating a new category.
// Color is optional; an empty value takes the default.
type CreateInput struct {
	Name  string
	Slug  string
	Color string
}

// Service provides category management use cases.
type Service struct {
	Repo repository.CategoryRepository
}

// List retrieves all categories.
func (s *Service) List(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// GetBySlug retrieves a single category by its slug.
// Returns ErrCategoryNotFound if no category has the slug.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	category, err := s.Repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

// Create validates the input and creates a new category, returning the row
// with its assigned identifier. Every violating field is reported in a single
// entity.ValidationErrors value. Name/slug uniqueness is enforced by the
// store and surfaces as entity.ErrConflict.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Category, error) {
	var errs entity.ValidationErrors
	if in.Name == "" {
		errs = append(errs, &entity.ValidationError{Field: "name", Message: "is required"})
	}
	if ve := entity.ValidateSlug("slug", in.Slug); ve != nil {
		errs = append(errs, ve)
	}
	color := in.Color
	if color == "" {
		color = entity.DefaultCategoryColor
	} else if ve := entity.ValidateHexColor("color", color); ve != nil {
		errs = append(errs, ve)
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	category := &entity.Category{
		Name:  in.Name,
		Slug:  in.Slug,
		Color: color,
	}
	if err := s.Repo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}
