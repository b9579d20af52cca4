// Package reporting monta o conteúdo do relatório de clientes e delega
// a materialização do documento a um exportador plugável.
package reporting

import (
	"strings"
	"time"

	"github.com/jcarlosamorim/consultoria-api/internal/domain"
	"github.com/jcarlosamorim/consultoria-api/internal/usecases/aggregating"
	"github.com/jcarlosamorim/consultoria-api/internal/usecases/metrics"
)

// ServiceTypeAll desliga o filtro por tipo de serviço
const ServiceTypeAll = "all"

// ReportFilters são os critérios aplicados antes da montagem do relatório
type ReportFilters struct {
	SearchTerm  string `json:"search_term"`
	ServiceType string `json:"service_type"`
}

// ClientReportRow é uma linha já formatada do detalhamento de clientes
type ClientReportRow struct {
	DisplayName  string  `json:"display_name"`
	ServiceLabel string  `json:"service_label"`
	StatusLabel  string  `json:"status_label"`
	TotalLTV     float64 `json:"total_ltv"`
	CurrentDebt  float64 `json:"current_debt"`
	RiskLabel    string  `json:"risk_label"`
}

// ClientsReportContent é o conteúdo completo do relatório de clientes,
// pronto para ser entregue a qualquer exportador de documento
type ClientsReportContent struct {
	Title       string                 `json:"title"`
	GeneratedAt time.Time              `json:"generated_at"`
	Filters     ReportFilters          `json:"filters"`
	Summary     domain.PortfolioSummary `json:"summary"`
	Rows        []ClientReportRow      `json:"rows"`
	States      []domain.StateSummary  `json:"states"`
	Regions     []domain.RegionSummary `json:"regions"`
}

var statusLabels = map[domain.ClientStatus]string{
	domain.StatusActive:     "Ativo",
	domain.StatusInactive:   "Inativo",
	domain.StatusDelinquent: "Inadimplente",
}

var riskLabels = map[domain.RiskLevel]string{
	domain.RiskLow:    "Baixo",
	domain.RiskMedium: "Médio",
	domain.RiskHigh:   "Alto",
}

// StatusLabel traduz o status comercial para exibição
func StatusLabel(status domain.ClientStatus) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}

	return string(status)
}

// RiskLabel traduz o nível de risco para exibição
func RiskLabel(level domain.RiskLevel) string {
	if label, ok := riskLabels[level]; ok {
		return label
	}

	return string(level)
}

// FilterClients aplica os critérios de busca textual e tipo de serviço.
// A busca é insensível a maiúsculas e cobre nome, cidade e estado.
func FilterClients(clients []*domain.Client, filters ReportFilters) []*domain.Client {
	filtered := make([]*domain.Client, 0, len(clients))
	term := strings.ToLower(strings.TrimSpace(filters.SearchTerm))

	for _, client := range clients {
		if filters.ServiceType != "" && filters.ServiceType != ServiceTypeAll &&
			string(client.ServiceType) != filters.ServiceType {
			continue
		}

		if term != "" && !matchesTerm(client, term) {
			continue
		}

		filtered = append(filtered, client)
	}

	return filtered
}

func matchesTerm(client *domain.Client, term string) bool {
	haystack := strings.ToLower(strings.Join([]string{
		client.FirstName,
		client.LastName,
		client.City,
		client.State,
	}, " "))

	return strings.Contains(haystack, term)
}

// BuildClientsReportAt monta o conteúdo do relatório de clientes em uma
// data de referência, sem efeitos colaterais.
func BuildClientsReportAt(clients []*domain.Client, filters ReportFilters, reference time.Time) *ClientsReportContent {
	filtered := FilterClients(clients, filters)

	rows := make([]ClientReportRow, 0, len(filtered))
	for _, client := range filtered {
		rows = append(rows, ClientReportRow{
			DisplayName:  metrics.FormatClientDisplayName(client),
			ServiceLabel: metrics.ServiceTypeLabel(client.ServiceType),
			StatusLabel:  StatusLabel(client.Status),
			TotalLTV:     client.LTVData.TotalValueGenerated,
			CurrentDebt:  client.DelinquencyData.CurrentDebt,
			RiskLabel:    RiskLabel(client.DelinquencyData.RiskLevel),
		})
	}

	return &ClientsReportContent{
		Title:       "Relatório de Clientes",
		GeneratedAt: reference,
		Filters:     filters,
		Summary:     aggregating.SummarizePortfolioAt(filtered, reference),
		Rows:        rows,
		States:      aggregating.SummarizeByState(filtered),
		Regions:     aggregating.SummarizeByRegion(filtered),
	}
}
