package breakingnews

import (
	"context"
	"errors"
	"fmt"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

// CreateInput represents the input parameters for creating a banner item.
// The URL may be site-relative ("/live") or absolute; only presence is
// validated.
type CreateInput struct {
	Title  string
	URL    string
	Active bool
}

// UpdateInput represents a partial update of an existing banner item.
// Fields with nil values are left untouched.
type UpdateInput struct {
	ID     int64
	Title  *string
	URL    *string
	Active *bool
}

// Service provides breaking-news management use cases.
type Service struct {
	Repo repository.BreakingNewsRepository
}

// Active retrieves the item currently surfaced to readers: the most recently
// created row with the active flag set. Returns (nil, nil) when no item is
// active — that is a normal empty result, not an error.
func (s *Service) Active(ctx context.Context) (*entity.BreakingNews, error) {
	news, err := s.Repo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("get active breaking news: %w", err)
	}
	return news, nil
}

// Create validates the input and creates a new banner item.
// Returns entity.ValidationErrors enumerating every invalid field.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.BreakingNews, error) {
	var errs entity.ValidationErrors
	if ve := entity.ValidateTitle("title", in.Title); ve != nil {
		errs = append(errs, ve)
	}
	if in.URL == "" {
		errs = append(errs, &entity.ValidationError{Field: "url", Message: "is required"})
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	news := &entity.BreakingNews{
		Title:  in.Title,
		URL:    in.URL,
		Active: in.Active,
	}
	if err := s.Repo.Create(ctx, news); err != nil {
		return nil, fmt.Errorf("create breaking news: %w", err)
	}
	return news, nil
}

// Update merges the provided fields into the existing item and writes it
// back. Returns ErrInvalidBreakingNewsID, ErrBreakingNewsNotFound, or
// entity.ValidationErrors when an updated field is invalid.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.BreakingNews, error) {
	if in.ID <= 0 {
		return nil, ErrInvalidBreakingNewsID
	}

	current, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get breaking news: %w", err)
	}
	if current == nil {
		return nil, ErrBreakingNewsNotFound
	}

	var errs entity.ValidationErrors
	if in.Title != nil {
		if ve := entity.ValidateTitle("title", *in.Title); ve != nil {
			errs = append(errs, ve)
		}
		current.Title = *in.Title
	}
	if in.URL != nil {
		if *in.URL == "" {
			errs = append(errs, &entity.ValidationError{Field: "url", Message: "cannot be empty"})
		}
		current.URL = *in.URL
	}
	if in.Active != nil {
		current.Active = *in.Active
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	if err := s.Repo.Update(ctx, current); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, ErrBreakingNewsNotFound
		}
		return nil, fmt.Errorf("update breaking news: %w", err)
	}
	return current, nil
}
