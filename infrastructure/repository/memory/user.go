package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/jcarlosamorim/consultoria-api/infrastructure/repository"
	"github.com/jcarlosamorim/consultoria-api/internal/domain"
)

type UserStore struct {
	mu     sync.RWMutex
	users  map[int]*domain.User
	nextID int
}

// NewUserStore cria um repositório de usuários vazio em memória
func NewUserStore() *UserStore {
	return &UserStore{
		users:  make(map[int]*domain.User),
		nextID: 1,
	}
}

var _ repository.UserRepository = (*UserStore)(nil)

func (s *UserStore) CreateUser(user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *user
	copied.ID = s.nextID
	copied.CreatedAt = time.Now()
	copied.UpdatedAt = copied.CreatedAt
	s.nextID++

	s.users[copied.ID] = &copied

	result := copied
	return &result, nil
}

func (s *UserStore) UpdateUser(user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.users[user.ID]
	if !ok {
		return nil
	}

	copied := *user
	copied.CreatedAt = stored.CreatedAt
	copied.UpdatedAt = time.Now()
	s.users[user.ID] = &copied

	return nil
}

func (s *UserStore) GetUserByEmail(email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}

	return nil, nil
}

func (s *UserStore) GetUserByID(userID int) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, nil
	}

	copied := *user
	return &copied, nil
}

func (s *UserStore) ListUsers() ([]*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*domain.User, 0, len(s.users))
	for _, user := range s.users {
		copied := *user
		copied.PasswordHash = ""
		users = append(users, &copied)
	}

	sort.Slice(users, func(i, j int) bool {
		return users[i].Name < users[j].Name
	})

	return users, nil
}
