package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaryampudiMadhav/yugantha-backend/models"
	"github.com/KaryampudiMadhav/yugantha-backend/repositories"
)

func TestApproveAccount(t *testing.T) {
	e := newTestEcho()
	repo := repositories.NewMemoryAccountRepository()
	account := seedAccount(t, repo, "instructor@example.com", models.RoleInstructor)
	ctl := NewAdminController(repo)

	req := httptest.NewRequest(http.MethodPut, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(account.ID.Hex())

	require.NoError(t, ctl.ApproveAccount(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	updated, err := repo.FindByEmail(context.Background(), "instructor@example.com")
	require.NoError(t, err)
	assert.True(t, updated.Approved)
}

func TestApproveUnknownAccount(t *testing.T) {
	e := newTestEcho()
	ctl := NewAdminController(repositories.NewMemoryAccountRepository())

	req := httptest.NewRequest(http.MethodPut, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("64b0c8f2e1a2b3c4d5e6f708")

	require.NoError(t, ctl.ApproveAccount(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeactivateAccount(t *testing.T) {
	e := newTestEcho()
	repo := repositories.NewMemoryAccountRepository()
	account := seedAccount(t, repo, "instructor@example.com", models.RoleInstructor)
	ctl := NewAdminController(repo)

	req := httptest.NewRequest(http.MethodPut, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(account.ID.Hex())

	require.NoError(t, ctl.DeactivateAccount(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	updated, err := repo.FindByEmail(context.Background(), "instructor@example.com")
	require.NoError(t, err)
	assert.False(t, updated.Active)
}

func TestListPendingAccounts(t *testing.T) {
	e := newTestEcho()
	repo := repositories.NewMemoryAccountRepository()
	seedAccount(t, repo, "a@example.com", models.RoleInstructor)
	approved := seedAccount(t, repo, "b@example.com", models.RoleMentor)
	require.NoError(t, repo.SetApproved(context.Background(), approved.ID.Hex(), true))
	ctl := NewAdminController(repo)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, ctl.ListPendingAccounts(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	pending, err := repo.ListPending(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "a@example.com", pending[0].Email)
}
