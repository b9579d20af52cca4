// Package aggregating agrupa os clientes da carteira por chaves categóricas
// e reduz cada grupo a um resumo estatístico para dashboard e relatórios.
package aggregating

import (
	"time"

	"github.com/jcarlosamorim/consultoria-api/internal/domain"
	"github.com/jcarlosamorim/consultoria-api/internal/usecases/metrics"
)

// SummarizeByRegion agrupa os clientes por região geográfica. A ordem dos
// grupos segue a primeira aparição de cada região na entrada, para que
// documentos exportados sejam reproduzíveis sobre a mesma carteira.
func SummarizeByRegion(clients []*domain.Client) []domain.RegionSummary {
	index := make(map[string]int, len(clients))
	summaries := make([]domain.RegionSummary, 0)

	for _, client := range clients {
		i, ok := index[client.Region]
		if !ok {
			i = len(summaries)
			index[client.Region] = i
			summaries = append(summaries, domain.RegionSummary{Region: client.Region})
		}

		summaries[i].Count++
		summaries[i].TotalLTV += client.LTVData.TotalValueGenerated
	}

	return summaries
}

// SummarizeByState agrupa os clientes por estado. O crescimento médio é a
// média aritmética simples das taxas de expansão de receita do grupo e os
// contadores de status são mutuamente exclusivos, somando o total do grupo.
func SummarizeByState(clients []*domain.Client) []domain.StateSummary {
	index := make(map[string]int, len(clients))
	summaries := make([]domain.StateSummary, 0)

	for _, client := range clients {
		i, ok := index[client.State]
		if !ok {
			i = len(summaries)
			index[client.State] = i
			summaries = append(summaries, domain.StateSummary{State: client.State})
		}

		summaries[i].TotalRevenue += client.LTVData.TotalValueGenerated
		summaries[i].AverageGrowth += client.LTVData.RevenueExpansionRate
		summaries[i].ClientCount++

		switch client.Status {
		case domain.StatusActive:
			summaries[i].ActiveClients++
		case domain.StatusDelinquent:
			summaries[i].DelinquentClients++
		case domain.StatusInactive:
			summaries[i].InactiveClients++
		}
	}

	for i := range summaries {
		if summaries[i].ClientCount > 0 {
			summaries[i].AverageGrowth /= float64(summaries[i].ClientCount)
		}
	}

	return summaries
}

// SummarizePortfolioAt calcula o resumo executivo global da carteira tendo a
// data de referência como semana corrente. Uma carteira vazia produz um
// resumo zerado, nunca divisão por zero.
func SummarizePortfolioAt(clients []*domain.Client, reference time.Time) domain.PortfolioSummary {
	summary := domain.PortfolioSummary{TotalClients: len(clients)}

	for _, client := range clients {
		switch client.Status {
		case domain.StatusActive:
			summary.ActiveClients++
		case domain.StatusInactive:
			summary.InactiveClients++
		}

		if metrics.Achieved10kAt(client, reference) {
			summary.Clients10kWeek++
		}

		summary.TotalDelinquency += client.DelinquencyData.CurrentDebt
		summary.AverageLTV += client.LTVData.TotalValueGenerated
	}

	if summary.TotalClients > 0 {
		summary.AverageLTV /= float64(summary.TotalClients)
	}

	return summary
}

// SummarizePortfolio calcula o resumo executivo usando a data corrente
func SummarizePortfolio(clients []*domain.Client) domain.PortfolioSummary {
	return SummarizePortfolioAt(clients, time.Now())
}

// AttentionGrowthThreshold é o crescimento médio mínimo esperado por estado (%)
const AttentionGrowthThreshold = 5.0

// AttentionStates filtra os estados que precisam de intervenção da
// consultoria: crescimento médio abaixo do limiar ou presença de clientes
// inadimplentes. O limiar é regra de negócio fixa.
func AttentionStates(states []domain.StateSummary) []domain.StateSummary {
	flagged := make([]domain.StateSummary, 0)

	for _, state := range states {
		if state.AverageGrowth < AttentionGrowthThreshold || state.DelinquentClients > 0 {
			flagged = append(flagged, state)
		}
	}

	return flagged
}

// ComputeConsultingKPIsAt monta o bloco de KPIs do dashboard principal a
// partir da carteira, tendo a data de referência como semana corrente.
func ComputeConsultingKPIsAt(clients []*domain.Client, reference time.Time) domain.ConsultingKPIs {
	portfolio := SummarizePortfolioAt(clients, reference)

	kpis := domain.ConsultingKPIs{
		ActiveClients:      portfolio.ActiveClients,
		InactiveClients:    portfolio.InactiveClients,
		ClientsOver10kWeek: portfolio.Clients10kWeek,
		TotalDelinquency:   portfolio.TotalDelinquency,
		AverageLTV:         portfolio.AverageLTV,
	}

	delinquent := 0
	for _, client := range clients {
		kpis.TotalRevenue += client.LTVData.TotalValueGenerated
		kpis.RevenueExpansionRate += client.LTVData.RevenueExpansionRate

		if client.Status == domain.StatusDelinquent {
			delinquent++
		}

		if client.IsActive {
			kpis.MRR += client.LTVData.AverageMonthlyValue
		}

		switch client.ServiceType {
		case domain.ServiceGestaoLoja:
			kpis.GestaoLojaClients++
		case domain.ServiceMentoria:
			kpis.MentoriaClients++
		}
	}

	if len(clients) > 0 {
		kpis.DelinquencyRate = float64(delinquent) / float64(len(clients)) * 100
		kpis.RevenueExpansionRate /= float64(len(clients))
	}

	return kpis
}

// ComputeConsultingKPIs monta o bloco de KPIs usando a data corrente
func ComputeConsultingKPIs(clients []*domain.Client) domain.ConsultingKPIs {
	return ComputeConsultingKPIsAt(clients, time.Now())
}
