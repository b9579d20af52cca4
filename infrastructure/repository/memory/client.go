// Package memory fornece implementações em memória das abstrações de
// armazenamento, usadas no modo demonstração (sem banco configurado) e em
// testes. Os dados vivem apenas durante a sessão do processo.
package memory

import (
	"sort"
	"sync"

	"github.com/jcarlosamorim/consultoria-api/infrastructure/repository"
	"github.com/jcarlosamorim/consultoria-api/internal/domain"
)

type ClientStore struct {
	mu      sync.RWMutex
	clients map[string]*domain.Client
}

// NewClientStore cria um repositório de clientes vazio em memória
func NewClientStore() *ClientStore {
	return &ClientStore{
		clients: make(map[string]*domain.Client),
	}
}

var _ repository.ClientRepository = (*ClientStore)(nil)

func (s *ClientStore) SaveClient(client *domain.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *client
	s.clients[client.ID] = &copied
	return nil
}

func (s *ClientStore) GetClientByID(id string) (*domain.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	client, ok := s.clients[id]
	if !ok {
		return nil, nil
	}

	copied := *client
	return &copied, nil
}

func (s *ClientStore) ListClients() ([]*domain.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	clients := make([]*domain.Client, 0, len(s.clients))
	for _, client := range s.clients {
		copied := *client
		clients = append(clients, &copied)
	}

	// Mesma ordenação da implementação em banco
	sort.Slice(clients, func(i, j int) bool {
		return clients[i].ClientNumber < clients[j].ClientNumber
	})

	return clients, nil
}

func (s *ClientStore) UpdateDelinquencyData(clientID string, data domain.DelinquencyData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if client, ok := s.clients[clientID]; ok {
		client.DelinquencyData = data
	}
	return nil
}

func (s *ClientStore) UpdateWeeklyRevenue(clientID string, weeks []domain.WeeklyRevenue) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if client, ok := s.clients[clientID]; ok {
		client.WeeklyRevenue = append([]domain.WeeklyRevenue(nil), weeks...)
	}
	return nil
}
