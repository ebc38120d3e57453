package repo

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dyattakorah-github/vehicle-rental-mgt-system/internal/models"
)

// AccountRepository stores staff accounts for the API layer. Like the
// customer repository it is loud about duplicates and absent IDs.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*models.Account
}

// NewAccountRepository creates an empty account repository.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accounts: make(map[string]*models.Account)}
}

// Save registers a new account. Duplicate IDs and duplicate usernames
// are rejected.
func (r *AccountRepository) Save(a *models.Account) error {
	if a == nil {
		return ErrNilEntity
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.accounts[a.ID]; exists {
		return fmt.Errorf("%w: account %s", ErrDuplicateID, a.ID)
	}
	for _, existing := range r.accounts {
		if strings.EqualFold(existing.Username, a.Username) {
			return fmt.Errorf("%w: username %s", ErrDuplicateID, a.Username)
		}
	}
	r.accounts[a.ID] = a
	return nil
}

// FindByID looks up an account by ID.
func (r *AccountRepository) FindByID(id string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accounts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return a, nil
}

// FindByUsername looks up an account by username, case-insensitively.
func (r *AccountRepository) FindByUsername(username string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.accounts {
		if strings.EqualFold(a.Username, username) {
			return a, nil
		}
	}
	return nil, ErrNotFound
}
