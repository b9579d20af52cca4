package aggregating

import (
	"time"

	"github.com/pkg/errors"

	"github.com/jcarlosamorim/consultoria-api/infrastructure/repository"
	"github.com/jcarlosamorim/consultoria-api/internal/domain"
	"github.com/jcarlosamorim/consultoria-api/internal/usecases/metrics"
)

// ClientSummary é a visão de listagem de um cliente da carteira, com os
// rótulos de exibição já resolvidos
type ClientSummary struct {
	ID              string                 `json:"id"`
	ClientNumber    int                    `json:"client_number"`
	DisplayName     string                 `json:"display_name"`
	ServiceType     domain.ServiceType     `json:"service_type"`
	ServiceLabel    string                 `json:"service_label"`
	Status          domain.ClientStatus    `json:"status"`
	State           string                 `json:"state"`
	City            string                 `json:"city"`
	Region          string                 `json:"region"`
	WeeklyRevenue   float64                `json:"weekly_revenue"`
	Achieved10kWeek bool                   `json:"achieved_10k_week"`
	RiskLevel       domain.RiskLevel       `json:"risk_level"`
}

// Portfolier expõe as consultas agregadas da carteira para a camada de API
type Portfolier interface {
	ListClients() ([]*ClientSummary, error)
	GetClient(id string) (*domain.Client, error)
	Portfolio() (domain.PortfolioSummary, error)
	States() ([]domain.StateSummary, error)
	Regions() ([]domain.RegionSummary, error)
	Attention() ([]domain.StateSummary, error)
	KPIs() (domain.ConsultingKPIs, error)
	Sectors() []domain.SectorPerformance
}

type Service struct {
	clientRepo repository.ClientRepository
	now        func() time.Time
}

func NewService(clientRepo repository.ClientRepository) *Service {
	return &Service{
		clientRepo: clientRepo,
		now:        time.Now,
	}
}

// WithClock troca a fonte de tempo do serviço, para testes determinísticos
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

var _ Portfolier = (*Service)(nil)

func (s *Service) loadClients() ([]*domain.Client, error) {
	clients, err := s.clientRepo.ListClients()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar clientes da carteira")
	}

	return clients, nil
}

// ListClients devolve a carteira na visão de listagem, ordenada pelo
// número do cliente
func (s *Service) ListClients() ([]*ClientSummary, error) {
	clients, err := s.loadClients()
	if err != nil {
		return nil, err
	}

	reference := s.now()

	summaries := make([]*ClientSummary, 0, len(clients))
	for _, client := range clients {
		summaries = append(summaries, &ClientSummary{
			ID:              client.ID,
			ClientNumber:    client.ClientNumber,
			DisplayName:     metrics.FormatClientDisplayName(client),
			ServiceType:     client.ServiceType,
			ServiceLabel:    metrics.ServiceTypeLabel(client.ServiceType),
			Status:          client.Status,
			State:           client.State,
			City:            client.City,
			Region:          client.Region,
			WeeklyRevenue:   metrics.WeeklyRevenueAt(client, reference),
			Achieved10kWeek: metrics.Achieved10kAt(client, reference),
			RiskLevel:       client.DelinquencyData.RiskLevel,
		})
	}

	return summaries, nil
}

func (s *Service) GetClient(id string) (*domain.Client, error) {
	client, err := s.clientRepo.GetClientByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar cliente")
	}

	return client, nil
}

func (s *Service) Portfolio() (domain.PortfolioSummary, error) {
	clients, err := s.loadClients()
	if err != nil {
		return domain.PortfolioSummary{}, err
	}

	return SummarizePortfolioAt(clients, s.now()), nil
}

func (s *Service) States() ([]domain.StateSummary, error) {
	clients, err := s.loadClients()
	if err != nil {
		return nil, err
	}

	return SummarizeByState(clients), nil
}

func (s *Service) Regions() ([]domain.RegionSummary, error) {
	clients, err := s.loadClients()
	if err != nil {
		return nil, err
	}

	return SummarizeByRegion(clients), nil
}

func (s *Service) Attention() ([]domain.StateSummary, error) {
	states, err := s.States()
	if err != nil {
		return nil, err
	}

	return AttentionStates(states), nil
}

func (s *Service) KPIs() (domain.ConsultingKPIs, error) {
	clients, err := s.loadClients()
	if err != nil {
		return domain.ConsultingKPIs{}, err
	}

	return ComputeConsultingKPIsAt(clients, s.now()), nil
}

func (s *Service) Sectors() []domain.SectorPerformance {
	return SectorPerformanceCatalog()
}
