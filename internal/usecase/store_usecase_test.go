package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trazai/lojista-service/internal/domain"
	storedto "github.com/trazai/lojista-service/internal/usecase/dto/store"
)

type stubStoreRepo struct {
	stores map[string]*domain.Store
	err    error
	saved  *domain.Store
}

func (s *stubStoreRepo) CreateStore(store *domain.Store) error { s.saved = store; return s.err }
func (s *stubStoreRepo) UpdateStore(store *domain.Store) error { s.saved = store; return s.err }
func (s *stubStoreRepo) DeleteStore(string) error              { return s.err }
func (s *stubStoreRepo) GetStores(int32, int32) ([]*domain.Store, error) {
	return nil, s.err
}
func (s *stubStoreRepo) GetBlockedStores() ([]*domain.Store, error) { return nil, s.err }
func (s *stubStoreRepo) SetBlocked(string, bool) error              { return s.err }

func (s *stubStoreRepo) GetStoreByID(id string) (*domain.Store, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.stores[id], nil
}

func newStoreFixture() (*DefaultStoreUsecase, *stubStoreRepo) {
	repo := &stubStoreRepo{stores: make(map[string]*domain.Store)}
	uc := NewDefaultStoreUsecase(repo)
	return uc, repo
}

func TestCheckStoreAccess_Allowed(t *testing.T) {
	uc, repo := newStoreFixture()
	repo.stores["s1"] = &domain.Store{ID: "s1", Name: "Loja Um", Blocked: false}

	assert.NoError(t, uc.CheckStoreAccess("s1"))
}

func TestCheckStoreAccess_Blocked(t *testing.T) {
	uc, repo := newStoreFixture()
	repo.stores["s1"] = &domain.Store{ID: "s1", Name: "Loja Um", Blocked: true}

	err := uc.CheckStoreAccess("s1")
	assert.ErrorIs(t, err, domain.ErrStoreBlocked)
}

func TestCheckStoreAccess_NotFound(t *testing.T) {
	uc, _ := newStoreFixture()

	err := uc.CheckStoreAccess("missing")
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
}

func TestCheckStoreAccess_MissingID(t *testing.T) {
	uc, _ := newStoreFixture()

	err := uc.CheckStoreAccess("")
	assert.ErrorIs(t, err, domain.ErrStoreIDMissing)
}

func TestCheckStoreAccess_LookupFailure(t *testing.T) {
	uc, repo := newStoreFixture()
	repo.err = errors.New("db unavailable")

	err := uc.CheckStoreAccess("s1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrStoreNotFound)
	assert.NotErrorIs(t, err, domain.ErrStoreBlocked)
}

func TestCreateStore_Defaults(t *testing.T) {
	uc, repo := newStoreFixture()

	store, err := uc.CreateStore(&storedto.CreateStoreInput{Name: "Padaria Central"})
	require.NoError(t, err)
	assert.NotEmpty(t, store.ID)
	assert.True(t, store.Open)
	assert.False(t, store.Blocked)
	assert.Equal(t, store, repo.saved)
}

func TestCreateStore_RequiresName(t *testing.T) {
	uc, _ := newStoreFixture()

	_, err := uc.CreateStore(&storedto.CreateStoreInput{})
	assert.Error(t, err)
}

func TestIsStoreOpen(t *testing.T) {
	uc, repo := newStoreFixture()
	repo.stores["s1"] = &domain.Store{
		ID:   "s1",
		Open: true,
		Schedule: domain.WeeklySchedule{
			"quarta": {Active: true, OpensAt: "08:00", ClosesAt: "18:00"},
		},
	}
	// Wednesday noon.
	uc.now = func() time.Time { return time.Date(2025, time.June, 11, 12, 0, 0, 0, time.UTC) }

	open, err := uc.IsStoreOpen("s1")
	require.NoError(t, err)
	assert.True(t, open)

	uc.now = func() time.Time { return time.Date(2025, time.June, 11, 19, 0, 0, 0, time.UTC) }
	open, err = uc.IsStoreOpen("s1")
	require.NoError(t, err)
	assert.False(t, open)
}

func TestIsStoreOpen_UnknownStore(t *testing.T) {
	uc, _ := newStoreFixture()

	_, err := uc.IsStoreOpen("missing")
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
}
