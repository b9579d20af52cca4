package memory

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/jcarlosamorim/consultoria-api/internal/domain"
	"github.com/jcarlosamorim/consultoria-api/internal/usecases/metrics"
)

// demoSeed garante que o modo demonstração produza sempre a mesma carteira
const demoSeed = 1042

var demoLocations = []struct {
	State  string
	City   string
	Region string
}{
	{State: "São Paulo", City: "São Paulo", Region: "Sudeste"},
	{State: "São Paulo", City: "Campinas", Region: "Sudeste"},
	{State: "Rio de Janeiro", City: "Rio de Janeiro", Region: "Sudeste"},
	{State: "Minas Gerais", City: "Belo Horizonte", Region: "Sudeste"},
	{State: "Paraná", City: "Curitiba", Region: "Sul"},
	{State: "Santa Catarina", City: "Florianópolis", Region: "Sul"},
	{State: "Bahia", City: "Salvador", Region: "Nordeste"},
	{State: "Pernambuco", City: "Recife", Region: "Nordeste"},
	{State: "Goiás", City: "Goiânia", Region: "Centro-Oeste"},
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

// SeedDemoData popula o repositório com a carteira canônica de demonstração
// mais um conjunto determinístico de clientes gerados, e um relatório mensal
// de exemplo. extraClients controla quantos clientes gerados são adicionados
// além dos três canônicos.
func SeedDemoData(clients *ClientStore, reports *ReportStore, extraClients int) error {
	for _, client := range canonicalClients() {
		if err := clients.SaveClient(client); err != nil {
			return err
		}
	}

	faker := gofakeit.New(demoSeed)
	for i := 0; i < extraClients; i++ {
		existing, err := clients.ListClients()
		if err != nil {
			return err
		}

		if err := clients.SaveClient(generatedClient(faker, existing)); err != nil {
			return err
		}
	}

	return reports.SaveReport(canonicalReport())
}

// canonicalClients devolve os três clientes de referência da carteira:
// um saudável, um recém-chegado e um inadimplente de alto risco.
func canonicalClients() []*domain.Client {
	return []*domain.Client{
		{
			ID:           "client-1",
			ClientNumber: 1,
			FirstName:    "João",
			LastName:     "Silva",
			ServiceType:  domain.ServiceGestaoLoja,
			PaymentPlan: domain.PaymentPlan{
				Category:   domain.PaymentGestaoLojaParcelas2000,
				TotalValue: 2000,
				Installments: []domain.PaymentInstallment{
					{ID: "inst-1", Amount: 500, DueDate: date(2024, 1, 15), PaidDate: datePtr(2024, 1, 15), Status: domain.InstallmentPaid},
					{ID: "inst-2", Amount: 500, DueDate: date(2024, 2, 15), PaidDate: datePtr(2024, 2, 15), Status: domain.InstallmentPaid},
					{ID: "inst-3", Amount: 500, DueDate: date(2024, 3, 15), Status: domain.InstallmentPending},
					{ID: "inst-4", Amount: 500, DueDate: date(2024, 4, 15), Status: domain.InstallmentPending},
				},
			},
			Status:           domain.StatusActive,
			IsActive:         true,
			RegistrationDate: date(2024, 1, 1),
			LastContact:      date(2024, 1, 15),
			WeeklyRevenue: []domain.WeeklyRevenue{
				{WeekStart: date(2024, 1, 17), WeekEnd: date(2024, 1, 23), Revenue: 12000, Achieved10k: true},
				{WeekStart: date(2024, 1, 24), WeekEnd: date(2024, 1, 30), Revenue: 8500, Achieved10k: false},
			},
			LTVData: domain.ClientLTV{
				TotalValueGenerated:  45000,
				TotalValuePaid:       1000,
				ActiveTime:           25,
				RevenueExpansionRate: 15.2,
				AverageMonthlyValue:  1800,
			},
			DelinquencyData: domain.DelinquencyData{
				CurrentDebt:     1000,
				DelinquencyRate: 5.2,
				RiskScore:       25,
				RiskLevel:       domain.RiskLow,
				LastPaymentDate: datePtr(2024, 2, 15),
			},
			State:  "São Paulo",
			City:   "São Paulo",
			Region: "Sudeste",
		},
		{
			ID:           "client-2",
			ClientNumber: 2,
			FirstName:    "Maria",
			LastName:     "Santos",
			ServiceType:  domain.ServiceMentoria,
			PaymentPlan: domain.PaymentPlan{
				Category:   domain.PaymentMentoriaNovos,
				TotalValue: 1500,
				Installments: []domain.PaymentInstallment{
					{ID: "inst-5", Amount: 1500, DueDate: date(2024, 2, 1), PaidDate: datePtr(2024, 2, 1), Status: domain.InstallmentPaid},
				},
			},
			Status:           domain.StatusActive,
			IsActive:         true,
			RegistrationDate: date(2024, 2, 1),
			LastContact:      date(2024, 2, 20),
			WeeklyRevenue: []domain.WeeklyRevenue{
				{WeekStart: date(2024, 2, 21), WeekEnd: date(2024, 2, 27), Revenue: 15000, Achieved10k: true},
			},
			LTVData: domain.ClientLTV{
				TotalValueGenerated:  28000,
				TotalValuePaid:       1500,
				ActiveTime:           20,
				RevenueExpansionRate: 8.5,
				AverageMonthlyValue:  1400,
			},
			DelinquencyData: domain.DelinquencyData{
				RiskScore:       10,
				RiskLevel:       domain.RiskLow,
				LastPaymentDate: datePtr(2024, 2, 1),
			},
			State:  "Rio de Janeiro",
			City:   "Rio de Janeiro",
			Region: "Sudeste",
		},
		{
			ID:           "client-3",
			ClientNumber: 5,
			FirstName:    "Carlos",
			LastName:     "Oliveira",
			ServiceType:  domain.ServiceGestaoLoja,
			PaymentPlan: domain.PaymentPlan{
				Category:   domain.PaymentGestaoLojaParcelas1750,
				TotalValue: 1750,
				Installments: []domain.PaymentInstallment{
					{ID: "inst-6", Amount: 437.50, DueDate: date(2024, 1, 10), PaidDate: datePtr(2024, 1, 10), Status: domain.InstallmentPaid},
					{ID: "inst-7", Amount: 437.50, DueDate: date(2024, 2, 10), Status: domain.InstallmentOverdue},
					{ID: "inst-8", Amount: 437.50, DueDate: date(2024, 3, 10), Status: domain.InstallmentPending},
					{ID: "inst-9", Amount: 437.50, DueDate: date(2024, 4, 10), Status: domain.InstallmentPending},
				},
			},
			Status:           domain.StatusDelinquent,
			IsActive:         true,
			RegistrationDate: date(2024, 1, 1),
			LastContact:      date(2024, 2, 20),
			WeeklyRevenue: []domain.WeeklyRevenue{
				{WeekStart: date(2024, 2, 21), WeekEnd: date(2024, 2, 27), Revenue: 8500, Achieved10k: false},
			},
			LTVData: domain.ClientLTV{
				TotalValueGenerated:  18000,
				TotalValuePaid:       437.50,
				ActiveTime:           58,
				RevenueExpansionRate: -2.1,
				AverageMonthlyValue:  900,
			},
			DelinquencyData: domain.DelinquencyData{
				CurrentDebt:     1312.50,
				DelinquencyRate: 75,
				RiskScore:       85,
				RiskLevel:       domain.RiskHigh,
			},
			State:  "São Paulo",
			City:   "Campinas",
			Region: "Sudeste",
		},
	}
}

func generatedClient(faker *gofakeit.Faker, existing []*domain.Client) *domain.Client {
	number := metrics.NextAvailableClientNumber(existing)
	location := demoLocations[faker.Number(0, len(demoLocations)-1)]

	serviceType := domain.ServiceGestaoLoja
	category := domain.PaymentGestaoLojaNovos
	if faker.Bool() {
		serviceType = domain.ServiceMentoria
		category = domain.PaymentMentoriaNovos
	}

	registration := date(2024, time.Month(faker.Number(1, 6)), faker.Number(1, 28))
	installments := faker.Number(1, 6)
	installmentValue := float64(faker.Number(300, 2000))

	plan := domain.PaymentPlan{
		Category:   category,
		TotalValue: installmentValue * float64(installments),
	}
	for i := 0; i < installments; i++ {
		plan.Installments = append(plan.Installments, domain.PaymentInstallment{
			ID:      fmt.Sprintf("demo-inst-%d-%d", number, i+1),
			Amount:  installmentValue,
			DueDate: registration.AddDate(0, 0, (i+1)*30),
			Status:  domain.InstallmentPending,
		})
	}

	return &domain.Client{
		ID:               fmt.Sprintf("demo-client-%d", number),
		ClientNumber:     number,
		FirstName:        faker.FirstName(),
		LastName:         faker.LastName(),
		ServiceType:      serviceType,
		PaymentPlan:      plan,
		Status:           domain.StatusActive,
		IsActive:         true,
		RegistrationDate: registration,
		LastContact:      registration,
		LTVData: domain.ClientLTV{
			TotalValueGenerated:  float64(faker.Number(5000, 60000)),
			TotalValuePaid:       float64(faker.Number(0, 8000)),
			ActiveTime:           faker.Number(5, 180),
			RevenueExpansionRate: float64(faker.Number(-10, 30)),
			AverageMonthlyValue:  float64(faker.Number(400, 2500)),
		},
		DelinquencyData: domain.DelinquencyData{
			RiskLevel: domain.RiskLow,
		},
		State:  location.State,
		City:   location.City,
		Region: location.Region,
	}
}

func canonicalReport() *domain.MonthlyReport {
	return &domain.MonthlyReport{
		ID:              "report-1",
		RestaurantID:    "client-1",
		Month:           12,
		Year:            2024,
		TotalRevenue:    32000,
		OrderCount:      1247,
		AverageTicket:   25.66,
		Rent:            2500,
		Payroll:         26000,
		Accounting:      500,
		OtherFixedCosts: 1200,
		Ingredients:     12000,
		PlatformFee:     8960,
		Packaging:       2400,
		GasEnergy:       1500,
		WorkingDays:     30,
		CancelledOrders: 24,
		TopDishes: []domain.TopDish{
			{Name: "Burger Clássico", Quantity: 180},
			{Name: "Batata Frita", Quantity: 150},
			{Name: "Milkshake", Quantity: 120},
		},
		MissingIngredients: domain.AttentionFlag{},
		EquipmentFailure:   domain.AttentionFlag{Occurred: true, Details: "Chapinha quebrou por 2 dias"},
		Overtime:           domain.OvertimeFlag{Occurred: true, Hours: 15},
	}
}
