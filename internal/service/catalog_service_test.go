package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldbook/internal/apperr"
	"fieldbook/internal/models"
)

type stubCategoryRepo struct {
	byID map[string]*models.Category
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{byID: make(map[string]*models.Category)}
}

func (r *stubCategoryRepo) List(_ context.Context) ([]models.Category, error) {
	var out []models.Category
	for _, c := range r.byID {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCategoryRepo) Create(_ context.Context, c *models.Category) error {
	clone := *c
	r.byID[c.ID] = &clone
	return nil
}

func (r *stubCategoryRepo) UpdateName(_ context.Context, id, name string) (*models.Category, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	c.Name = name
	clone := *c
	return &clone, nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func TestCategoryCreate(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo())
	actor := models.Actor{ID: "u_a", Role: models.RoleEngineer}

	_, err := svc.Create(context.Background(), actor, "   ")
	assert.True(t, errors.Is(err, apperr.ErrInvalidArgument))

	c, err := svc.Create(context.Background(), actor, "  Lighting ")
	require.NoError(t, err)
	assert.Equal(t, "Lighting", c.Name)
	assert.Equal(t, "u_a", c.OwnerUserID)
}

func TestCategoryRenameAndDelete(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo)
	actor := models.Actor{ID: "u_a", Role: models.RoleEngineer}

	c, err := svc.Create(context.Background(), actor, "HVAC")
	require.NoError(t, err)

	renamed, err := svc.Rename(context.Background(), c.ID, " Cooling ")
	require.NoError(t, err)
	assert.Equal(t, "Cooling", renamed.Name)

	_, err = svc.Rename(context.Background(), "c_missing", "x")
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	require.NoError(t, svc.Delete(context.Background(), c.ID))
	assert.True(t, errors.Is(svc.Delete(context.Background(), c.ID), apperr.ErrNotFound))
}

func strPtr(s string) *string { return &s }

func TestIssueCreate_Validation(t *testing.T) {
	svc := NewIssueService(newStubIssueRepo())

	_, err := svc.Create(context.Background(), " ", "Lights out", "", "", "")
	assert.True(t, errors.Is(err, apperr.ErrInvalidArgument))

	_, err = svc.Create(context.Background(), "c_1", "  ", "", "", "")
	assert.True(t, errors.Is(err, apperr.ErrInvalidArgument))

	i, err := svc.Create(context.Background(), "c_1", " Lights out ", "desc", "a\nb", "fix it")
	require.NoError(t, err)
	assert.Equal(t, "Lights out", i.Title)
	assert.Equal(t, "a\nb", i.StepsText)
}

func TestIssueUpdate_PartialMerge(t *testing.T) {
	repo := newStubIssueRepo()
	svc := NewIssueService(repo)

	i, err := svc.Create(context.Background(), "c_1", "Lights out", "desc", "a\nb", "fix")
	require.NoError(t, err)

	// nil keeps, explicit value replaces, empty string clears text fields.
	got, err := svc.Update(context.Background(), i.ID, IssuePatch{
		Description: strPtr(""),
		Solution:    strPtr("replace bulb"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Lights out", got.Title)
	assert.Equal(t, "", got.Description)
	assert.Equal(t, "a\nb", got.StepsText)
	assert.Equal(t, "replace bulb", got.Solution)

	// Required fields must survive the merge.
	_, err = svc.Update(context.Background(), i.ID, IssuePatch{Title: strPtr("  ")})
	assert.True(t, errors.Is(err, apperr.ErrInvalidArgument))
	_, err = svc.Update(context.Background(), i.ID, IssuePatch{CategoryID: strPtr("")})
	assert.True(t, errors.Is(err, apperr.ErrInvalidArgument))

	_, err = svc.Update(context.Background(), "i_missing", IssuePatch{})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}
