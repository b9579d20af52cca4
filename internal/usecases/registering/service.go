// Package registering implementa a construção e validação das entidades
// criadas pelos formulários de cadastro: clientes e relatórios mensais.
package registering

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jcarlosamorim/consultoria-api/infrastructure/repository"
	"github.com/jcarlosamorim/consultoria-api/internal/domain"
	"github.com/jcarlosamorim/consultoria-api/internal/usecases/metrics"
	"github.com/jcarlosamorim/consultoria-api/pkg/utils"
)

// NewClientInput é a entrada crua do formulário de cadastro de cliente
type NewClientInput struct {
	FirstName        string                 `json:"first_name"`
	LastName         string                 `json:"last_name"`
	ServiceType      domain.ServiceType     `json:"service_type"`
	PaymentCategory  domain.PaymentCategory `json:"payment_category"`
	TotalValue       float64                `json:"total_value"`
	InstallmentCount int                    `json:"installment_count"`
	InstallmentValue float64                `json:"installment_value"`
	State            string                 `json:"state"`
	City             string                 `json:"city"`
	Region           string                 `json:"region"`
}

// NewReportInput é a entrada crua do formulário de relatório mensal
type NewReportInput struct {
	RestaurantID    string  `json:"restaurant_id"`
	Month           int     `json:"month"`
	Year            int     `json:"year"`
	TotalRevenue    float64 `json:"total_revenue"`
	OrderCount      int     `json:"order_count"`
	Rent            float64 `json:"rent"`
	Payroll         float64 `json:"payroll"`
	Accounting      float64 `json:"accounting"`
	OtherFixedCosts float64 `json:"other_fixed_costs"`
	Ingredients     float64 `json:"ingredients"`
	Packaging       float64 `json:"packaging"`
	GasEnergy       float64 `json:"gas_energy"`

	WorkingDays     int                  `json:"working_days"`
	CancelledOrders int                  `json:"cancelled_orders"`
	TopDishes       []domain.TopDish     `json:"top_dishes"`
	MissingIngredients domain.AttentionFlag `json:"missing_ingredients"`
	EquipmentFailure   domain.AttentionFlag `json:"equipment_failure"`
	Overtime           domain.OvertimeFlag  `json:"overtime"`
}

// Registrar define as operações de cadastro expostas à camada de API
type Registrar interface {
	RegisterClient(input *NewClientInput) (*domain.Client, error)
	RegisterMonthlyReport(input *NewReportInput) (*domain.MonthlyReport, error)
}

type Service struct {
	clientRepo repository.ClientRepository
	reportRepo repository.ReportRepository
	now        func() time.Time
}

func NewService(clientRepo repository.ClientRepository, reportRepo repository.ReportRepository) *Service {
	return &Service{
		clientRepo: clientRepo,
		reportRepo: reportRepo,
		now:        time.Now,
	}
}

// WithClock troca a fonte de tempo do serviço, para testes determinísticos
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// RegisterClient valida a entrada do formulário e constrói um novo cliente:
// número sequencial livre, parcelas com vencimento a cada 30 dias a partir
// do cadastro e sub-registros de LTV/inadimplência zerados.
func (s *Service) RegisterClient(input *NewClientInput) (*domain.Client, error) {
	if err := validateClientInput(input); err != nil {
		return nil, err
	}

	existing, err := s.clientRepo.ListClients()
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar clientes para numeração")
		return nil, ErrDatabaseOperation
	}

	now := s.now()

	clientID, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	installments := make([]domain.PaymentInstallment, 0, input.InstallmentCount)
	for i := 0; i < input.InstallmentCount; i++ {
		installmentID, err := utils.GenerateID()
		if err != nil {
			return nil, err
		}

		installments = append(installments, domain.PaymentInstallment{
			ID:      installmentID,
			Amount:  input.InstallmentValue,
			DueDate: now.AddDate(0, 0, (i+1)*30),
			Status:  domain.InstallmentPending,
		})
	}

	client := &domain.Client{
		ID:           clientID,
		ClientNumber: metrics.NextAvailableClientNumber(existing),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		ServiceType:  input.ServiceType,
		PaymentPlan: domain.PaymentPlan{
			Category:     input.PaymentCategory,
			TotalValue:   input.TotalValue,
			Installments: installments,
		},
		Status:           domain.StatusActive,
		IsActive:         true,
		RegistrationDate: now,
		LastContact:      now,
		WeeklyRevenue:    []domain.WeeklyRevenue{},
		LTVData:          domain.ClientLTV{},
		DelinquencyData:  domain.DelinquencyData{RiskLevel: domain.RiskLow},
		State:            input.State,
		City:             input.City,
		Region:           input.Region,
	}

	if err := s.clientRepo.SaveClient(client); err != nil {
		logrus.WithError(err).Error("Erro ao salvar novo cliente")
		return nil, ErrDatabaseOperation
	}

	logrus.WithFields(logrus.Fields{
		"client_number": client.ClientNumber,
		"service_type":  client.ServiceType,
	}).Info("Cliente cadastrado com sucesso")

	return client, nil
}

// RegisterMonthlyReport valida a entrada do formulário, deriva os totais
// pelo motor de métricas e persiste o relatório do período.
func (s *Service) RegisterMonthlyReport(input *NewReportInput) (*domain.MonthlyReport, error) {
	if err := validateReportInput(input); err != nil {
		return nil, err
	}

	restaurant, err := s.clientRepo.GetClientByID(input.RestaurantID)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar restaurante do relatório")
		return nil, ErrDatabaseOperation
	}
	if restaurant == nil {
		return nil, ErrRestaurantNotFound
	}

	existing, err := s.reportRepo.GetReportByPeriod(input.RestaurantID, input.Month, input.Year)
	if err != nil {
		logrus.WithError(err).Error("Erro ao verificar relatório existente")
		return nil, ErrDatabaseOperation
	}
	if existing != nil {
		return nil, ErrDuplicateReport
	}

	reportID, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	report := &domain.MonthlyReport{
		ID:                 reportID,
		RestaurantID:       input.RestaurantID,
		Month:              input.Month,
		Year:               input.Year,
		TotalRevenue:       input.TotalRevenue,
		OrderCount:         input.OrderCount,
		Rent:               input.Rent,
		Payroll:            input.Payroll,
		Accounting:         input.Accounting,
		OtherFixedCosts:    input.OtherFixedCosts,
		Ingredients:        input.Ingredients,
		Packaging:          input.Packaging,
		GasEnergy:          input.GasEnergy,
		WorkingDays:        input.WorkingDays,
		CancelledOrders:    input.CancelledOrders,
		TopDishes:          input.TopDishes,
		MissingIngredients: input.MissingIngredients,
		EquipmentFailure:   input.EquipmentFailure,
		Overtime:           input.Overtime,
	}

	totals := metrics.ComputeMonthlyReportTotals(report)
	report.AverageTicket = totals.AverageTicket
	report.PlatformFee = totals.PlatformFee

	if err := s.reportRepo.SaveReport(report); err != nil {
		logrus.WithError(err).Error("Erro ao salvar relatório mensal")
		return nil, ErrDatabaseOperation
	}

	logrus.WithFields(logrus.Fields{
		"restaurant_id": report.RestaurantID,
		"month":         report.Month,
		"year":          report.Year,
	}).Info("Relatório mensal cadastrado com sucesso")

	return report, nil
}

func validateClientInput(input *NewClientInput) error {
	switch {
	case input.FirstName == "":
		return NewValidationError(ErrMissingRequiredData, "first_name")
	case input.LastName == "":
		return NewValidationError(ErrMissingRequiredData, "last_name")
	case input.ServiceType == "":
		return NewValidationError(ErrMissingRequiredData, "service_type")
	case input.PaymentCategory == "":
		return NewValidationError(ErrMissingRequiredData, "payment_category")
	case input.State == "":
		return NewValidationError(ErrMissingRequiredData, "state")
	case input.City == "":
		return NewValidationError(ErrMissingRequiredData, "city")
	case input.Region == "":
		return NewValidationError(ErrMissingRequiredData, "region")
	}

	if input.TotalValue <= 0 {
		return NewValidationError(ErrInvalidAmount, "total_value")
	}
	if input.InstallmentCount <= 0 {
		return NewValidationError(ErrInvalidInstallments, "installment_count")
	}
	if input.InstallmentValue <= 0 {
		return NewValidationError(ErrInvalidAmount, "installment_value")
	}

	return nil
}

func validateReportInput(input *NewReportInput) error {
	if input.RestaurantID == "" {
		return NewValidationError(ErrMissingRequiredData, "restaurant_id")
	}
	if input.Month < 1 || input.Month > 12 {
		return NewValidationError(ErrInvalidPeriod, "month")
	}
	if input.Year < 2000 {
		return NewValidationError(ErrInvalidPeriod, "year")
	}

	nonNegative := []struct {
		field string
		value float64
	}{
		{"total_revenue", input.TotalRevenue},
		{"rent", input.Rent},
		{"payroll", input.Payroll},
		{"accounting", input.Accounting},
		{"other_fixed_costs", input.OtherFixedCosts},
		{"ingredients", input.Ingredients},
		{"packaging", input.Packaging},
		{"gas_energy", input.GasEnergy},
	}
	for _, check := range nonNegative {
		if check.value < 0 {
			return NewValidationError(ErrNegativeValue, check.field)
		}
	}

	if input.OrderCount < 0 {
		return NewValidationError(ErrNegativeValue, "order_count")
	}
	if input.CancelledOrders < 0 {
		return NewValidationError(ErrNegativeValue, "cancelled_orders")
	}

	return nil
}
