package store

import (
	"fmt"
	"sort"
	"sync"

	"dia/internal/models"
)

// memoryStore is the transient in-process Store. All state lives in maps
// guarded by a single RWMutex; nothing survives a restart.
type memoryStore struct {
	mu   sync.RWMutex
	data *memoryData
}

type memoryData struct {
	users        map[string]models.User // keyed by user id
	usernames    map[string]string      // username -> user id
	tokens       map[string]models.AuthToken
	portfolios   map[string]models.Portfolio
	transactions map[string][]models.Transaction // per user, append order
}

// NewMemoryStore creates an empty in-memory Store.
func NewMemoryStore() Store {
	return &memoryStore{
		data: &memoryData{
			users:        make(map[string]models.User),
			usernames:    make(map[string]string),
			tokens:       make(map[string]models.AuthToken),
			portfolios:   make(map[string]models.Portfolio),
			transactions: make(map[string][]models.Transaction),
		},
	}
}

func (s *memoryStore) CreateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.createUser(user)
}

func (s *memoryStore) GetUserByUsername(username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.getUserByUsername(username)
}

func (s *memoryStore) GetUserByID(id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.getUserByID(id)
}

func (s *memoryStore) CreateToken(token *models.AuthToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.createToken(token)
}

func (s *memoryStore) GetToken(token string) (*models.AuthToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.getToken(token)
}

func (s *memoryStore) CreatePortfolio(p *models.Portfolio) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.createPortfolio(p)
}

func (s *memoryStore) GetPortfolio(userID string) (*models.Portfolio, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.getPortfolio(userID)
}

func (s *memoryStore) SavePortfolio(p *models.Portfolio) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.savePortfolio(p)
}

func (s *memoryStore) ListPortfolios() ([]models.Portfolio, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.listPortfolios()
}

func (s *memoryStore) AppendTransaction(t *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.appendTransaction(t)
}

func (s *memoryStore) ListTransactions(userID string, limit, offset int) ([]models.Transaction, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.listTransactions(userID, limit, offset)
}

// Transact holds the write lock for the duration of fn, giving callers
// store-wide mutual exclusion. Unlike the postgres implementation there is no
// rollback: writes made before fn fails remain applied.
func (s *memoryStore) Transact(fn func(Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&unlockedStore{data: s.data})
}

func (s *memoryStore) Ping() error { return nil }

// unlockedStore exposes memoryData as a Store inside Transact, where the
// outer write lock is already held.
type unlockedStore struct {
	data *memoryData
}

func (u *unlockedStore) CreateUser(user *models.User) error    { return u.data.createUser(user) }
func (u *unlockedStore) CreateToken(t *models.AuthToken) error { return u.data.createToken(t) }
func (u *unlockedStore) CreatePortfolio(p *models.Portfolio) error {
	return u.data.createPortfolio(p)
}
func (u *unlockedStore) SavePortfolio(p *models.Portfolio) error { return u.data.savePortfolio(p) }
func (u *unlockedStore) AppendTransaction(t *models.Transaction) error {
	return u.data.appendTransaction(t)
}

func (u *unlockedStore) GetUserByUsername(username string) (*models.User, error) {
	return u.data.getUserByUsername(username)
}
func (u *unlockedStore) GetUserByID(id string) (*models.User, error) {
	return u.data.getUserByID(id)
}
func (u *unlockedStore) GetToken(token string) (*models.AuthToken, error) {
	return u.data.getToken(token)
}
func (u *unlockedStore) GetPortfolio(userID string) (*models.Portfolio, error) {
	return u.data.getPortfolio(userID)
}
func (u *unlockedStore) ListPortfolios() ([]models.Portfolio, error) {
	return u.data.listPortfolios()
}
func (u *unlockedStore) ListTransactions(userID string, limit, offset int) ([]models.Transaction, int64, error) {
	return u.data.listTransactions(userID, limit, offset)
}

// Transact on an already-transacting store just runs fn; the outer lock is held.
func (u *unlockedStore) Transact(fn func(Store) error) error { return fn(u) }

func (u *unlockedStore) Ping() error { return nil }

func (d *memoryData) createUser(user *models.User) error {
	if _, exists := d.usernames[user.Username]; exists {
		return fmt.Errorf("username %q already exists", user.Username)
	}
	d.users[user.ID] = *user
	d.usernames[user.Username] = user.ID
	return nil
}

func (d *memoryData) getUserByUsername(username string) (*models.User, error) {
	id, ok := d.usernames[username]
	if !ok {
		return nil, ErrNotFound
	}
	return d.getUserByID(id)
}

func (d *memoryData) getUserByID(id string) (*models.User, error) {
	user, ok := d.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (d *memoryData) createToken(token *models.AuthToken) error {
	d.tokens[token.Token] = *token
	return nil
}

func (d *memoryData) getToken(token string) (*models.AuthToken, error) {
	t, ok := d.tokens[token]
	if !ok {
		return nil, ErrNotFound
	}
	return &t, nil
}

func (d *memoryData) createPortfolio(p *models.Portfolio) error {
	d.portfolios[p.UserID] = *p
	return nil
}

func (d *memoryData) getPortfolio(userID string) (*models.Portfolio, error) {
	p, ok := d.portfolios[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (d *memoryData) savePortfolio(p *models.Portfolio) error {
	d.portfolios[p.UserID] = *p
	return nil
}

func (d *memoryData) listPortfolios() ([]models.Portfolio, error) {
	out := make([]models.Portfolio, 0, len(d.portfolios))
	for _, p := range d.portfolios {
		out = append(out, p)
	}
	return out, nil
}

func (d *memoryData) appendTransaction(t *models.Transaction) error {
	d.transactions[t.UserID] = append(d.transactions[t.UserID], *t)
	return nil
}

func (d *memoryData) listTransactions(userID string, limit, offset int) ([]models.Transaction, int64, error) {
	all := d.transactions[userID]
	out := make([]models.Transaction, len(all))
	copy(out, all)

	// Newest first; id breaks ties the same way the SQL ordering does.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	total := int64(len(out))
	if offset >= len(out) {
		return []models.Transaction{}, total, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}
