package memory

import (
	"sort"
	"sync"

	"github.com/jcarlosamorim/consultoria-api/infrastructure/repository"
	"github.com/jcarlosamorim/consultoria-api/internal/domain"
)

type ReportStore struct {
	mu      sync.RWMutex
	reports []*domain.MonthlyReport
}

// NewReportStore cria um repositório de relatórios mensais em memória
func NewReportStore() *ReportStore {
	return &ReportStore{}
}

var _ repository.ReportRepository = (*ReportStore)(nil)

func (s *ReportStore) SaveReport(report *domain.MonthlyReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *report
	s.reports = append(s.reports, &copied)
	return nil
}

func (s *ReportStore) GetReportByPeriod(restaurantID string, month, year int) (*domain.MonthlyReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, report := range s.reports {
		if report.RestaurantID == restaurantID && report.Month == month && report.Year == year {
			copied := *report
			return &copied, nil
		}
	}

	return nil, nil
}

func (s *ReportStore) ListReportsByRestaurant(restaurantID string) ([]*domain.MonthlyReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var reports []*domain.MonthlyReport
	for _, report := range s.reports {
		if report.RestaurantID == restaurantID {
			copied := *report
			reports = append(reports, &copied)
		}
	}

	sort.Slice(reports, func(i, j int) bool {
		if reports[i].Year != reports[j].Year {
			return reports[i].Year > reports[j].Year
		}
		return reports[i].Month > reports[j].Month
	})

	return reports, nil
}
