package service

import (
	"context"
	"sync"
	"time"

	"github.com/storepulse/insight-api/internal/core/domain"
)

// stubAccountRepo is an in-memory AccountRepository with the same
// duplicate-key semantics as the mongo implementation.
type stubAccountRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*domain.Account
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{byID: make(map[int64]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAccountRepo) FindByID(_ context.Context, id int64) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.byID[id]; ok {
		return cloneAccount(a), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.byID {
		if a.Email == email {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAccountRepo) FindByName(_ context.Context, name string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.byID {
		if a.Name == name {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAccountRepo) FindBySocialID(_ context.Context, provider, socialID string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.byID {
		if a.Provider == provider && a.SocialID == socialID {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAccountRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.byID {
		if a.Email == account.Email {
			return nil, domain.ErrUserDuplicate
		}
	}
	return r.insertLocked(account), nil
}

func (r *stubAccountRepo) CreateSocial(_ context.Context, account *domain.Account) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.byID {
		if a.Provider == account.Provider && a.SocialID == account.SocialID {
			return nil, domain.ErrUserDuplicate
		}
	}
	return r.insertLocked(account), nil
}

func (r *stubAccountRepo) insertLocked(account *domain.Account) *domain.Account {
	r.nextID++
	clone := cloneAccount(account)
	clone.ID = r.nextID
	clone.CreatedAt = time.Now().UTC()
	clone.UpdatedAt = clone.CreatedAt
	r.byID[clone.ID] = clone
	return cloneAccount(clone)
}

func (r *stubAccountRepo) UpdateName(_ context.Context, id int64, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	a.Name = name
	return nil
}

func (r *stubAccountRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	a.PasswordHash = hash
	return nil
}

func (r *stubAccountRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
	return nil
}

type stubStoreLinks struct {
	mu    sync.Mutex
	owned map[int64]int64 // store id → account id
}

func newStubStoreLinks() *stubStoreLinks {
	return &stubStoreLinks{owned: make(map[int64]int64)}
}

func (s *stubStoreLinks) StoreIDsByAccount(_ context.Context, accountID int64) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []int64
	for storeID, owner := range s.owned {
		if owner == accountID {
			ids = append(ids, storeID)
		}
	}
	return ids, nil
}

func (s *stubStoreLinks) IsOwner(_ context.Context, storeID, accountID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.owned[storeID] == accountID, nil
}

func (s *stubStoreLinks) Link(_ context.Context, storeID, accountID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.owned[storeID] = accountID
	return nil
}

func (s *stubStoreLinks) Unlink(_ context.Context, storeID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.owned, storeID)
	return nil
}

type stubVerificationStore struct {
	mu      sync.Mutex
	entries map[string]string
}

func newStubVerificationStore() *stubVerificationStore {
	return &stubVerificationStore{entries: make(map[string]string)}
}

func (s *stubVerificationStore) Put(_ context.Context, email, code string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[email] = code
	return nil
}

func (s *stubVerificationStore) Consume(_ context.Context, email, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.entries[email]
	if !ok || stored != code {
		return false, nil
	}
	delete(s.entries, email)
	return true, nil
}

type recordingDispatcher struct {
	mu   sync.Mutex
	jobs []domain.MailJob
}

func (d *recordingDispatcher) Enqueue(job domain.MailJob) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.jobs = append(d.jobs, job)
}

func (d *recordingDispatcher) sent() []domain.MailJob {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]domain.MailJob(nil), d.jobs...)
}

type stubProvider struct {
	profile *domain.SocialProfile
	err     error
}

func (p *stubProvider) Exchange(_ context.Context, _ string) (*domain.SocialProfile, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.profile, nil
}
