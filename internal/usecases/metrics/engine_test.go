package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jcarlosamorim/consultoria-api/internal/domain"
)

func clientWithNumbers(numbers ...int) []*domain.Client {
	clients := make([]*domain.Client, 0, len(numbers))
	for _, n := range numbers {
		clients = append(clients, &domain.Client{ClientNumber: n})
	}
	return clients
}

func TestNextAvailableClientNumber(t *testing.T) {
	tests := []struct {
		name     string
		existing []*domain.Client
		expected int
	}{
		{
			name:     "carteira vazia retorna 1",
			existing: nil,
			expected: 1,
		},
		{
			name:     "sequência contínua retorna o próximo",
			existing: clientWithNumbers(1, 2, 3),
			expected: 4,
		},
		{
			name:     "lacuna no meio é reaproveitada",
			existing: clientWithNumbers(1, 2, 5, 10),
			expected: 3,
		},
		{
			name:     "número 1 livre é sempre o primeiro candidato",
			existing: clientWithNumbers(2, 3, 4),
			expected: 1,
		},
		{
			name:     "ordem de entrada não altera o resultado",
			existing: clientWithNumbers(10, 5, 2, 1),
			expected: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NextAvailableClientNumber(tt.existing))
		})
	}
}

func TestFormatClientDisplayName(t *testing.T) {
	client := &domain.Client{
		ClientNumber: 7,
		FirstName:    "João",
		LastName:     "Silva",
		ServiceType:  domain.ServiceGestaoLoja,
	}

	assert.Equal(t, "Cliente nº 7 - João Silva - Gestão de Loja", FormatClientDisplayName(client))
}

func TestServiceTypeLabel(t *testing.T) {
	assert.Equal(t, "Gestão de Loja", ServiceTypeLabel(domain.ServiceGestaoLoja))
	assert.Equal(t, "Mentoria", ServiceTypeLabel(domain.ServiceMentoria))

	// Valores desconhecidos passam adiante sem alteração
	assert.Equal(t, "franquia", ServiceTypeLabel(domain.ServiceType("franquia")))
}

func TestPaymentCategoryLabel(t *testing.T) {
	assert.Equal(t,
		"Gestão de Loja - Pagamento de parcelas iniciais (total R$ 2.000,00)",
		PaymentCategoryLabel(domain.PaymentGestaoLojaParcelas2000),
	)
	assert.Equal(t, "Mentoria - Novos Clientes", PaymentCategoryLabel(domain.PaymentMentoriaNovos))
	assert.Equal(t, "outra-categoria", PaymentCategoryLabel(domain.PaymentCategory("outra-categoria")))
}

func TestCurrentWeekBoundary(t *testing.T) {
	tests := []struct {
		name      string
		reference time.Time
		expected  time.Time
	}{
		{
			name:      "quarta-feira mantém a própria data",
			reference: time.Date(2024, 1, 17, 15, 30, 0, 0, time.UTC), // quarta
			expected:  time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "sábado volta para a quarta da mesma semana",
			reference: time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC),
			expected:  time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "terça volta para a quarta da semana anterior",
			reference: time.Date(2024, 1, 16, 23, 59, 0, 0, time.UTC),
			expected:  time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "domingo volta para a quarta da semana anterior",
			reference: time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC),
			expected:  time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CurrentWeekBoundary(tt.reference)

			assert.Equal(t, tt.expected, result)
			assert.Equal(t, time.Wednesday, result.Weekday())
			assert.False(t, result.After(tt.reference))
			assert.LessOrEqual(t, tt.reference.Sub(result), 7*24*time.Hour)
		})
	}
}

func TestWeeklyRevenueAt(t *testing.T) {
	reference := time.Date(2024, 1, 19, 12, 0, 0, 0, time.UTC) // sexta
	weekStart := time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC)  // quarta

	client := &domain.Client{
		WeeklyRevenue: []domain.WeeklyRevenue{
			{WeekStart: weekStart.AddDate(0, 0, -7), Revenue: 9000},
			{WeekStart: weekStart, Revenue: 12000},
		},
	}

	assert.Equal(t, 12000.0, WeeklyRevenueAt(client, reference))

	// Sem registro para a semana corrente a receita é zero
	empty := &domain.Client{}
	assert.Equal(t, 0.0, WeeklyRevenueAt(empty, reference))
}

func TestAchieved10kAt(t *testing.T) {
	reference := time.Date(2024, 1, 19, 12, 0, 0, 0, time.UTC)
	weekStart := time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		revenue  float64
		expected bool
	}{
		{name: "acima da meta", revenue: 12000, expected: true},
		{name: "exatamente na meta", revenue: 10000, expected: true},
		{name: "abaixo da meta", revenue: 9999.99, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &domain.Client{
				WeeklyRevenue: []domain.WeeklyRevenue{
					{WeekStart: weekStart, Revenue: tt.revenue},
				},
			}

			assert.Equal(t, tt.expected, Achieved10kAt(client, reference))
		})
	}

	t.Run("semana sem registro nunca atinge a meta", func(t *testing.T) {
		assert.False(t, Achieved10kAt(&domain.Client{}, reference))
	})
}

func TestDelinquencyRiskAt(t *testing.T) {
	reference := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("cliente sem histórico de pagamento e sem débito", func(t *testing.T) {
		client := &domain.Client{
			LTVData: domain.ClientLTV{TotalValuePaid: 10000},
		}

		assert.Equal(t, 0, DelinquencyRiskAt(client, reference))
	})

	t.Run("soma ponderada dos fatores", func(t *testing.T) {
		lastPayment := reference.AddDate(0, 0, -10)
		client := &domain.Client{
			LTVData: domain.ClientLTV{TotalValuePaid: 3000}, // +20
			DelinquencyData: domain.DelinquencyData{
				DelinquencyRate: 50, // 50*0.4 = 20
				DaysOverdue:     5,  // min(10, 30) = 10
				LastPaymentDate: &lastPayment,
			},
		}

		// 20 + 10 + 20 + min(10*0.5, 15) = 55
		assert.Equal(t, 55, DelinquencyRiskAt(client, reference))
	})

	t.Run("valores extremos são limitados a 100", func(t *testing.T) {
		client := &domain.Client{
			DelinquencyData: domain.DelinquencyData{
				DelinquencyRate: 1000,
				DaysOverdue:     1000,
			},
		}

		assert.Equal(t, 100, DelinquencyRiskAt(client, reference))
	})

	t.Run("crescimento monotônico com a taxa de inadimplência", func(t *testing.T) {
		previous := -1
		for rate := 0.0; rate <= 100; rate += 10 {
			client := &domain.Client{
				LTVData:         domain.ClientLTV{TotalValuePaid: 10000},
				DelinquencyData: domain.DelinquencyData{DelinquencyRate: rate},
			}

			score := DelinquencyRiskAt(client, reference)
			assert.GreaterOrEqual(t, score, previous)
			previous = score
		}
	})

	t.Run("crescimento monotônico com os dias em atraso", func(t *testing.T) {
		previous := -1
		for days := 0; days <= 40; days += 5 {
			client := &domain.Client{
				LTVData:         domain.ClientLTV{TotalValuePaid: 10000},
				DelinquencyData: domain.DelinquencyData{DaysOverdue: days},
			}

			score := DelinquencyRiskAt(client, reference)
			assert.GreaterOrEqual(t, score, previous)
			previous = score
		}
	})

	t.Run("determinístico para o mesmo input", func(t *testing.T) {
		lastPayment := reference.AddDate(0, 0, -42)
		client := &domain.Client{
			LTVData: domain.ClientLTV{TotalValuePaid: 4999.99},
			DelinquencyData: domain.DelinquencyData{
				DelinquencyRate: 33.3,
				DaysOverdue:     7,
				LastPaymentDate: &lastPayment,
			},
		}

		assert.Equal(t, DelinquencyRiskAt(client, reference), DelinquencyRiskAt(client, reference))
	})
}

func TestRiskLevelFromScore(t *testing.T) {
	tests := []struct {
		score    int
		expected domain.RiskLevel
	}{
		{score: 0, expected: domain.RiskLow},
		{score: 30, expected: domain.RiskLow},
		{score: 31, expected: domain.RiskMedium},
		{score: 70, expected: domain.RiskMedium},
		{score: 71, expected: domain.RiskHigh},
		{score: 100, expected: domain.RiskHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, RiskLevelFromScore(tt.score), "score %d", tt.score)
	}
}

func TestComputeMonthlyReportTotals(t *testing.T) {
	t.Run("relatório de referência", func(t *testing.T) {
		report := &domain.MonthlyReport{
			TotalRevenue:    32000,
			OrderCount:      1247,
			Rent:            2500,
			Payroll:         26000,
			Accounting:      500,
			OtherFixedCosts: 1200,
			Ingredients:     12000,
			Packaging:       2400,
			GasEnergy:       1500,
		}

		totals := ComputeMonthlyReportTotals(report)

		assert.InDelta(t, 25.66, totals.AverageTicket, 0.01)
		assert.Equal(t, 8960.0, totals.PlatformFee)
		assert.Equal(t, 30200.0, totals.TotalFixedCosts)
		assert.Equal(t, 24860.0, totals.TotalVariableCosts)
		assert.Equal(t, -23060.0, totals.NetProfit) // prejuízo não é truncado
	})

	t.Run("sem pedidos o ticket médio é zero", func(t *testing.T) {
		report := &domain.MonthlyReport{TotalRevenue: 5000, OrderCount: 0}

		totals := ComputeMonthlyReportTotals(report)

		assert.Equal(t, 0.0, totals.AverageTicket)
		assert.Equal(t, 1400.0, totals.PlatformFee)
	})

	t.Run("relatório zerado produz totais zerados", func(t *testing.T) {
		totals := ComputeMonthlyReportTotals(&domain.MonthlyReport{})

		assert.Equal(t, domain.MonthlyReportTotals{}, totals)
	})
}
