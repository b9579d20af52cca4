package registering_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcarlosamorim/consultoria-api/infrastructure/repository/memory"
	"github.com/jcarlosamorim/consultoria-api/internal/domain"
	"github.com/jcarlosamorim/consultoria-api/internal/usecases/registering"
)

var fixedNow = time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*registering.Service, *memory.ClientStore, *memory.ReportStore) {
	t.Helper()

	clients := memory.NewClientStore()
	reports := memory.NewReportStore()
	service := registering.NewService(clients, reports).WithClock(func() time.Time { return fixedNow })

	return service, clients, reports
}

func validClientInput() *registering.NewClientInput {
	return &registering.NewClientInput{
		FirstName:        "Ana",
		LastName:         "Costa",
		ServiceType:      domain.ServiceGestaoLoja,
		PaymentCategory:  domain.PaymentGestaoLojaParcelas2000,
		TotalValue:       12000,
		InstallmentCount: 6,
		InstallmentValue: 2000,
		State:            "SP",
		City:             "Campinas",
		Region:           "Sudeste",
	}
}

func TestRegisterClient(t *testing.T) {
	service, clients, _ := newTestService(t)

	client, err := service.RegisterClient(validClientInput())
	require.NoError(t, err)
	require.NotNil(t, client)

	assert.NotEmpty(t, client.ID)
	assert.Equal(t, 1, client.ClientNumber)
	assert.Equal(t, domain.StatusActive, client.Status)
	assert.True(t, client.IsActive)
	assert.Equal(t, fixedNow, client.RegistrationDate)
	assert.Equal(t, fixedNow, client.LastContact)
	assert.Equal(t, domain.RiskLow, client.DelinquencyData.RiskLevel)
	assert.Zero(t, client.LTVData.TotalValuePaid)
	assert.Empty(t, client.WeeklyRevenue)

	stored, err := clients.GetClientByID(client.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, client.ClientNumber, stored.ClientNumber)
}

func TestRegisterClientInstallmentSchedule(t *testing.T) {
	service, _, _ := newTestService(t)

	client, err := service.RegisterClient(validClientInput())
	require.NoError(t, err)

	require.Len(t, client.PaymentPlan.Installments, 6)
	for i, installment := range client.PaymentPlan.Installments {
		assert.NotEmpty(t, installment.ID)
		assert.Equal(t, 2000.0, installment.Amount)
		assert.Equal(t, domain.InstallmentPending, installment.Status)
		assert.Equal(t, fixedNow.AddDate(0, 0, (i+1)*30), installment.DueDate)
		assert.Nil(t, installment.PaidDate)
	}
}

func TestRegisterClientUsesNextFreeNumber(t *testing.T) {
	service, clients, _ := newTestService(t)

	require.NoError(t, clients.SaveClient(&domain.Client{ID: "aaa111", ClientNumber: 1}))
	require.NoError(t, clients.SaveClient(&domain.Client{ID: "bbb222", ClientNumber: 2}))
	require.NoError(t, clients.SaveClient(&domain.Client{ID: "ccc333", ClientNumber: 5}))

	client, err := service.RegisterClient(validClientInput())
	require.NoError(t, err)

	assert.Equal(t, 3, client.ClientNumber)
}

func TestRegisterClientValidation(t *testing.T) {
	service, _, _ := newTestService(t)

	tests := []struct {
		name    string
		mutate  func(*registering.NewClientInput)
		wantErr error
		field   string
	}{
		{
			name:    "sem primeiro nome",
			mutate:  func(i *registering.NewClientInput) { i.FirstName = "" },
			wantErr: registering.ErrMissingRequiredData,
			field:   "first_name",
		},
		{
			name:    "sem estado",
			mutate:  func(i *registering.NewClientInput) { i.State = "" },
			wantErr: registering.ErrMissingRequiredData,
			field:   "state",
		},
		{
			name:    "valor total zerado",
			mutate:  func(i *registering.NewClientInput) { i.TotalValue = 0 },
			wantErr: registering.ErrInvalidAmount,
			field:   "total_value",
		},
		{
			name:    "parcelas negativas",
			mutate:  func(i *registering.NewClientInput) { i.InstallmentCount = -1 },
			wantErr: registering.ErrInvalidInstallments,
			field:   "installment_count",
		},
		{
			name:    "valor da parcela zerado",
			mutate:  func(i *registering.NewClientInput) { i.InstallmentValue = 0 },
			wantErr: registering.ErrInvalidAmount,
			field:   "installment_value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validClientInput()
			tt.mutate(input)

			client, err := service.RegisterClient(input)
			assert.Nil(t, client)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))

			var validationErr *registering.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func validReportInput(restaurantID string) *registering.NewReportInput {
	return &registering.NewReportInput{
		RestaurantID:    restaurantID,
		Month:           12,
		Year:            2024,
		TotalRevenue:    32000,
		OrderCount:      1247,
		Rent:            4500,
		Payroll:         12000,
		Accounting:      800,
		OtherFixedCosts: 1200,
		Ingredients:     9600,
		Packaging:       1280,
		GasEnergy:       640,
		WorkingDays:     26,
		CancelledOrders: 23,
		TopDishes: []domain.TopDish{
			{Name: "X-Bacon", Quantity: 180},
		},
	}
}

func TestRegisterMonthlyReport(t *testing.T) {
	service, clients, reports := newTestService(t)

	require.NoError(t, clients.SaveClient(&domain.Client{ID: "rest01", ClientNumber: 1}))

	report, err := service.RegisterMonthlyReport(validReportInput("rest01"))
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.NotEmpty(t, report.ID)
	assert.InDelta(t, 25.66, report.AverageTicket, 0.01)
	assert.InDelta(t, 8960.0, report.PlatformFee, 0.001)

	stored, err := reports.GetReportByPeriod("rest01", 12, 2024)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, report.ID, stored.ID)
}

func TestRegisterMonthlyReportRejectsDuplicatePeriod(t *testing.T) {
	service, clients, _ := newTestService(t)

	require.NoError(t, clients.SaveClient(&domain.Client{ID: "rest01", ClientNumber: 1}))

	_, err := service.RegisterMonthlyReport(validReportInput("rest01"))
	require.NoError(t, err)

	report, err := service.RegisterMonthlyReport(validReportInput("rest01"))
	assert.Nil(t, report)
	assert.True(t, errors.Is(err, registering.ErrDuplicateReport))
}

func TestRegisterMonthlyReportUnknownRestaurant(t *testing.T) {
	service, _, _ := newTestService(t)

	report, err := service.RegisterMonthlyReport(validReportInput("ghost1"))
	assert.Nil(t, report)
	assert.True(t, errors.Is(err, registering.ErrRestaurantNotFound))
}

func TestRegisterMonthlyReportValidation(t *testing.T) {
	service, clients, _ := newTestService(t)

	require.NoError(t, clients.SaveClient(&domain.Client{ID: "rest01", ClientNumber: 1}))

	tests := []struct {
		name    string
		mutate  func(*registering.NewReportInput)
		wantErr error
		field   string
	}{
		{
			name:    "mês inválido",
			mutate:  func(i *registering.NewReportInput) { i.Month = 13 },
			wantErr: registering.ErrInvalidPeriod,
			field:   "month",
		},
		{
			name:    "mês zerado",
			mutate:  func(i *registering.NewReportInput) { i.Month = 0 },
			wantErr: registering.ErrInvalidPeriod,
			field:   "month",
		},
		{
			name:    "ano fora da faixa",
			mutate:  func(i *registering.NewReportInput) { i.Year = 1999 },
			wantErr: registering.ErrInvalidPeriod,
			field:   "year",
		},
		{
			name:    "faturamento negativo",
			mutate:  func(i *registering.NewReportInput) { i.TotalRevenue = -1 },
			wantErr: registering.ErrNegativeValue,
			field:   "total_revenue",
		},
		{
			name:    "pedidos negativos",
			mutate:  func(i *registering.NewReportInput) { i.OrderCount = -10 },
			wantErr: registering.ErrNegativeValue,
			field:   "order_count",
		},
		{
			name:    "sem restaurante",
			mutate:  func(i *registering.NewReportInput) { i.RestaurantID = "" },
			wantErr: registering.ErrMissingRequiredData,
			field:   "restaurant_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validReportInput("rest01")
			tt.mutate(input)

			report, err := service.RegisterMonthlyReport(input)
			assert.Nil(t, report)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))

			var validationErr *registering.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}
