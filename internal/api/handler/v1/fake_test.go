package v1

import (
	"context"
	"sort"
	"sync"

	"github.com/vietanh2810/stockboard-api/internal/domain"
	"github.com/vietanh2810/stockboard-api/internal/repository"
)

// memTradables is an in-memory service.TradableRepository.
type memTradables struct {
	mu     sync.Mutex
	nextID uint
	rows   []domain.Tradable
}

func newMemTradables() *memTradables {
	return &memTradables{nextID: 1}
}

func (m *memTradables) Create(_ context.Context, t domain.Tradable) (domain.Tradable, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.indexByTicker(t.Ticker) >= 0 {
		return domain.Tradable{}, repository.ErrTickerExists
	}

	t.ID = m.nextID
	m.nextID++
	m.rows = append(m.rows, t)

	return t, nil
}

func (m *memTradables) FindByID(_ context.Context, id uint) (domain.Tradable, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexByID(id)
	if i < 0 {
		return domain.Tradable{}, repository.ErrTradableNotFound
	}

	return m.rows[i], nil
}

func (m *memTradables) FindByTicker(_ context.Context, ticker string) (domain.Tradable, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexByTicker(ticker)
	if i < 0 {
		return domain.Tradable{}, repository.ErrTradableNotFound
	}

	return m.rows[i], nil
}

func (m *memTradables) Update(_ context.Context, id uint, patch domain.TradablePatch) (domain.Tradable, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexByID(id)
	if i < 0 {
		return domain.Tradable{}, repository.ErrTradableNotFound
	}

	updated := patch.Apply(m.rows[i])
	if j := m.indexByTicker(updated.Ticker); j >= 0 && j != i {
		return domain.Tradable{}, repository.ErrTickerExists
	}
	m.rows[i] = updated

	return updated, nil
}

func (m *memTradables) DeleteByTicker(_ context.Context, ticker string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexByTicker(ticker)
	if i < 0 {
		return repository.ErrTradableNotFound
	}
	m.rows = append(m.rows[:i], m.rows[i+1:]...)

	return nil
}

func (m *memTradables) List(_ context.Context, q domain.ListQuery) ([]domain.Tradable, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	found := []domain.Tradable{}
rows:
	for _, t := range m.rows {
		for _, f := range q.Filters {
			v, err := f.Field.Parse(f.Value)
			if err != nil {
				return []domain.Tradable{}, nil
			}
			if f.Field.Of(t) != v {
				continue rows
			}
		}
		found = append(found, t)
	}

	if q.Sort != nil {
		sort.SliceStable(found, func(i, j int) bool {
			c := q.Sort.Field.Compare(found[i], found[j])
			if q.Sort.Desc {
				return c > 0
			}
			return c < 0
		})
	}

	return found, nil
}

func (m *memTradables) indexByID(id uint) int {
	for i, t := range m.rows {
		if t.ID == id {
			return i
		}
	}

	return -1
}

func (m *memTradables) indexByTicker(ticker string) int {
	for i, t := range m.rows {
		if t.Ticker == ticker {
			return i
		}
	}

	return -1
}

// memUsers serves both service.AuthUserRepository and service.UserRepository.
type memUsers map[string]domain.User

func (m memUsers) Save(_ context.Context, user domain.User) (domain.User, error) {
	m[user.Username] = user
	return user, nil
}

func (m memUsers) FindByUsername(_ context.Context, username string) (domain.User, error) {
	user, ok := m[username]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}
