package service

import (
	"context"
	"strings"
	"time"

	"fieldbook/internal/apperr"
	"fieldbook/internal/models"
	"fieldbook/internal/repository"
	"fieldbook/internal/utils"
)

type CategoryService struct {
	categories repository.CategoryRepository
}

func NewCategoryService(categories repository.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.categories.List(ctx)
}

func (s *CategoryService) Create(ctx context.Context, actor models.Actor, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Invalid("name is required")
	}
	c := &models.Category{
		ID:          utils.NewID("c_"),
		Name:        name,
		OwnerUserID: actor.ID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) Rename(ctx context.Context, id, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Invalid("name is required")
	}
	return s.categories.UpdateName(ctx, id, name)
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	return s.categories.Delete(ctx, id)
}

type IssueService struct {
	issues repository.IssueRepository
}

func NewIssueService(issues repository.IssueRepository) *IssueService {
	return &IssueService{issues: issues}
}

func (s *IssueService) List(ctx context.Context, categoryID string) ([]models.Issue, error) {
	return s.issues.List(ctx, categoryID)
}

func (s *IssueService) Create(ctx context.Context, categoryID, title, description, stepsText, solution string) (*models.Issue, error) {
	categoryID = strings.TrimSpace(categoryID)
	title = strings.TrimSpace(title)
	if categoryID == "" {
		return nil, apperr.Invalid("category_id is required")
	}
	if title == "" {
		return nil, apperr.Invalid("title is required")
	}
	i := &models.Issue{
		ID:          utils.NewID("i_"),
		CategoryID:  categoryID,
		Title:       title,
		Description: description,
		StepsText:   stepsText,
		Solution:    solution,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.issues.Create(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

// IssuePatch carries partial updates: nil means keep the current value, an
// explicit empty string clears text fields.
type IssuePatch struct {
	CategoryID  *string
	Title       *string
	Description *string
	StepsText   *string
	Solution    *string
}

func (s *IssueService) Update(ctx context.Context, id string, p IssuePatch) (*models.Issue, error) {
	cur, err := s.issues.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return nil, apperr.ErrNotFound
	}

	if p.CategoryID != nil {
		cur.CategoryID = strings.TrimSpace(*p.CategoryID)
	}
	if p.Title != nil {
		cur.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		cur.Description = *p.Description
	}
	if p.StepsText != nil {
		cur.StepsText = *p.StepsText
	}
	if p.Solution != nil {
		cur.Solution = *p.Solution
	}

	// Required fields must survive the merge.
	if cur.CategoryID == "" {
		return nil, apperr.Invalid("category_id is required")
	}
	if cur.Title == "" {
		return nil, apperr.Invalid("title is required")
	}

	if err := s.issues.Update(ctx, cur); err != nil {
		return nil, err
	}
	return s.issues.Get(ctx, id)
}

func (s *IssueService) Delete(ctx context.Context, id string) error {
	return s.issues.Delete(ctx, id)
}
