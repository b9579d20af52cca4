// Package metrics implementa o motor de métricas derivadas da carteira.
// Todas as funções são puras: mesmo input produz sempre o mesmo output,
// sem I/O e sem estado compartilhado.
package metrics

import (
	"fmt"
	"math"
	"time"

	"github.com/jcarlosamorim/consultoria-api/internal/domain"
	"github.com/jcarlosamorim/consultoria-api/pkg/utils"
)

const (
	// WeeklyRevenueGoal é a meta semanal de faturamento dos restaurantes
	WeeklyRevenueGoal = 10000.0

	// PlatformFeeRate é a taxa fixa da plataforma sobre a receita (28%)
	PlatformFeeRate = 0.28
)

// NextAvailableClientNumber retorna o menor inteiro positivo ainda não
// utilizado como número de cliente. Para uma carteira vazia retorna 1.
func NextAvailableClientNumber(clients []*domain.Client) int {
	used := make(map[int]bool, len(clients))
	for _, client := range clients {
		used[client.ClientNumber] = true
	}

	// No máximo len(clients) números estão ocupados, então algum
	// candidato em 1..len+1 está sempre livre.
	for candidate := 1; candidate <= len(clients)+1; candidate++ {
		if !used[candidate] {
			return candidate
		}
	}

	return 1
}

// FormatClientDisplayName compõe o nome de exibição padrão do cliente
func FormatClientDisplayName(client *domain.Client) string {
	return fmt.Sprintf(
		"Cliente nº %d - %s %s - %s",
		client.ClientNumber,
		client.FirstName,
		client.LastName,
		ServiceTypeLabel(client.ServiceType),
	)
}

// ServiceTypeLabel converte o tipo de serviço para o rótulo de exibição.
// Valores desconhecidos passam adiante sem alteração, para que dados ainda
// não categorizados não quebrem a exibição.
func ServiceTypeLabel(serviceType domain.ServiceType) string {
	switch serviceType {
	case domain.ServiceGestaoLoja:
		return "Gestão de Loja"
	case domain.ServiceMentoria:
		return "Mentoria"
	default:
		return string(serviceType)
	}
}

// PaymentCategoryLabel converte a categoria de pagamento para o rótulo de
// exibição, com o mesmo fallback de identidade para valores desconhecidos.
func PaymentCategoryLabel(category domain.PaymentCategory) string {
	switch category {
	case domain.PaymentGestaoLojaNovos:
		return "Gestão de Loja - Novos Clientes"
	case domain.PaymentGestaoLojaParcelas2000:
		return "Gestão de Loja - Pagamento de parcelas iniciais (total R$ 2.000,00)"
	case domain.PaymentGestaoLojaParcelas1800:
		return "Gestão de Loja - Pagamento de parcelas iniciais (total R$ 1.800,00)"
	case domain.PaymentGestaoLojaParcelas1750:
		return "Gestão de Loja - Pagamento de parcelas iniciais (total R$ 1.750,00)"
	case domain.PaymentGestaoLojaParcelas1500:
		return "Gestão de Loja - Pagamento de parcelas iniciais (total R$ 1.500,00)"
	case domain.PaymentMentoriaNovos:
		return "Mentoria - Novos Clientes"
	default:
		return string(category)
	}
}

// CurrentWeekBoundary retorna a quarta-feira que inicia a semana comercial
// que contém a data de referência, truncada para meia-noite. O resultado
// nunca é posterior à referência e fica no máximo seis dias antes dela.
func CurrentWeekBoundary(reference time.Time) time.Time {
	dow := int(reference.Weekday()) // 0=domingo .. 6=sábado

	offset := 3 - dow
	if dow < 3 {
		offset -= 7
	}

	wednesday := reference.AddDate(0, 0, offset)
	return time.Date(
		wednesday.Year(), wednesday.Month(), wednesday.Day(),
		0, 0, 0, 0, wednesday.Location(),
	)
}

// WeeklyRevenueAt retorna a receita registrada para a semana comercial que
// contém a data de referência, ou zero quando não há registro.
func WeeklyRevenueAt(client *domain.Client, reference time.Time) float64 {
	weekStart := CurrentWeekBoundary(reference)

	for _, week := range client.WeeklyRevenue {
		if week.WeekStart.Equal(weekStart) {
			return week.Revenue
		}
	}

	return 0
}

// WeeklyRevenueForCurrentWeek retorna a receita da semana comercial corrente
func WeeklyRevenueForCurrentWeek(client *domain.Client) float64 {
	return WeeklyRevenueAt(client, time.Now())
}

// Achieved10kAt indica se o cliente bateu a meta semanal na semana comercial
// que contém a data de referência
func Achieved10kAt(client *domain.Client, reference time.Time) bool {
	return WeeklyRevenueAt(client, reference) >= WeeklyRevenueGoal
}

// Achieved10kThisWeek indica se o cliente bateu a meta na semana corrente
func Achieved10kThisWeek(client *domain.Client) bool {
	return Achieved10kAt(client, time.Now())
}

// DelinquencyRiskAt calcula o score de risco de inadimplência (0-100) na
// data de referência. É uma soma ponderada de quatro fatores:
//   - taxa de inadimplência corrente (peso 0.4)
//   - dias em atraso (2 pontos por dia, teto de 30)
//   - baixo valor pago acumulado (+20 quando abaixo de R$ 5.000)
//   - tempo desde o último pagamento (0.5 ponto por dia, teto de 15;
//     ignorado quando não há pagamento registrado)
func DelinquencyRiskAt(client *domain.Client, reference time.Time) int {
	risk := client.DelinquencyData.DelinquencyRate * 0.4

	if client.DelinquencyData.DaysOverdue > 0 {
		risk += math.Min(float64(client.DelinquencyData.DaysOverdue)*2, 30)
	}

	if client.LTVData.TotalValuePaid < 5000 {
		risk += 20
	}

	if client.DelinquencyData.LastPaymentDate != nil {
		daysSincePayment := math.Floor(
			reference.Sub(*client.DelinquencyData.LastPaymentDate).Hours() / 24,
		)
		if daysSincePayment > 0 {
			risk += math.Min(daysSincePayment*0.5, 15)
		}
	}

	score := int(math.Round(risk))
	if score > 100 {
		score = 100
	}

	return score
}

// ComputeDelinquencyRisk calcula o score de risco usando a data corrente
func ComputeDelinquencyRisk(client *domain.Client) int {
	return DelinquencyRiskAt(client, time.Now())
}

// RiskLevelFromScore converte o score numérico para a faixa de risco.
// O motor é a fonte de verdade: o RiskLevel armazenado em DelinquencyData
// é apenas cache e deve ser recalculado por aqui.
func RiskLevelFromScore(score int) domain.RiskLevel {
	if score <= 30 {
		return domain.RiskLow
	}
	if score <= 70 {
		return domain.RiskMedium
	}
	return domain.RiskHigh
}

// ComputeMonthlyReportTotals deriva os totais financeiros de um relatório
// mensal. O lucro líquido pode ser negativo e nunca é truncado.
func ComputeMonthlyReportTotals(report *domain.MonthlyReport) domain.MonthlyReportTotals {
	var averageTicket float64
	if report.OrderCount > 0 {
		averageTicket = utils.RoundWithTwoDecimalPlace(report.TotalRevenue / float64(report.OrderCount))
	}

	platformFee := report.TotalRevenue * PlatformFeeRate

	totalFixed := report.Rent + report.Payroll + report.Accounting + report.OtherFixedCosts
	totalVariable := report.Ingredients + platformFee + report.Packaging + report.GasEnergy

	return domain.MonthlyReportTotals{
		AverageTicket:      averageTicket,
		PlatformFee:        platformFee,
		TotalFixedCosts:    totalFixed,
		TotalVariableCosts: totalVariable,
		NetProfit:          report.TotalRevenue - totalFixed - totalVariable,
	}
}
