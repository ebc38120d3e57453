package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyattakorah-github/vehicle-rental-mgt-system/internal/models"
)

func testAccount(id, username string) *models.Account {
	return &models.Account{
		ID:       id,
		Username: username,
		Email:    username + "@rental.local",
		Role:     models.RoleAgent,
		IsActive: true,
	}
}

func TestAccountRepository_Save(t *testing.T) {
	repo := NewAccountRepository()

	require.NoError(t, repo.Save(testAccount("acc-1", "frontdesk")))
	assert.ErrorIs(t, repo.Save(testAccount("acc-1", "other")), ErrDuplicateID)
	// Username uniqueness is case-insensitive
	assert.ErrorIs(t, repo.Save(testAccount("acc-2", "FrontDesk")), ErrDuplicateID)
	assert.ErrorIs(t, repo.Save(nil), ErrNilEntity)
}

func TestAccountRepository_Lookups(t *testing.T) {
	repo := NewAccountRepository()
	require.NoError(t, repo.Save(testAccount("acc-1", "frontdesk")))

	byID, err := repo.FindByID("acc-1")
	require.NoError(t, err)
	assert.Equal(t, "frontdesk", byID.Username)

	_, err = repo.FindByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	byName, err := repo.FindByUsername("FRONTDESK")
	require.NoError(t, err)
	assert.Equal(t, "acc-1", byName.ID)

	_, err = repo.FindByUsername("ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}
