// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// ServiceType identifica o tipo de serviço contratado pelo cliente
type ServiceType string

const (
	ServiceGestaoLoja ServiceType = "gestao-loja"
	ServiceMentoria   ServiceType = "mentoria"
)

// PaymentCategory identifica a categoria do plano de pagamento
type PaymentCategory string

const (
	PaymentGestaoLojaNovos        PaymentCategory = "gestao-loja-novos"
	PaymentGestaoLojaParcelas2000 PaymentCategory = "gestao-loja-parcelas-2000"
	PaymentGestaoLojaParcelas1800 PaymentCategory = "gestao-loja-parcelas-1800"
	PaymentGestaoLojaParcelas1750 PaymentCategory = "gestao-loja-parcelas-1750"
	PaymentGestaoLojaParcelas1500 PaymentCategory = "gestao-loja-parcelas-1500"
	PaymentMentoriaNovos          PaymentCategory = "mentoria-novos"
)

// ClientStatus representa a situação comercial do cliente
type ClientStatus string

const (
	StatusActive     ClientStatus = "active"
	StatusInactive   ClientStatus = "inactive"
	StatusDelinquent ClientStatus = "delinquent"
)

// InstallmentStatus representa a situação de uma parcela do plano
type InstallmentStatus string

const (
	InstallmentPending InstallmentStatus = "pending"
	InstallmentPaid    InstallmentStatus = "paid"
	InstallmentOverdue InstallmentStatus = "overdue"
)

// RiskLevel representa a faixa de risco de inadimplência
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Client representa um restaurante da carteira da consultoria
type Client struct {
	ID               string           `json:"id"`
	ClientNumber     int              `json:"client_number"`
	FirstName        string           `json:"first_name"`
	LastName         string           `json:"last_name"`
	ServiceType      ServiceType      `json:"service_type"`
	PaymentPlan      PaymentPlan      `json:"payment_plan"`
	Status           ClientStatus     `json:"status"`
	IsActive         bool             `json:"is_active"`
	RegistrationDate time.Time        `json:"registration_date"`
	DeactivationDate *time.Time       `json:"deactivation_date,omitempty"`
	LastContact      time.Time        `json:"last_contact"`
	WeeklyRevenue    []WeeklyRevenue  `json:"weekly_revenue"`
	LTVData          ClientLTV        `json:"ltv_data"`
	DelinquencyData  DelinquencyData  `json:"delinquency_data"`
	State            string           `json:"state"`
	City             string           `json:"city"`
	Region           string           `json:"region"`
}

// PaymentPlan agrupa a categoria contratada e as parcelas do cliente
type PaymentPlan struct {
	Category     PaymentCategory      `json:"category"`
	TotalValue   float64              `json:"total_value"`
	Installments []PaymentInstallment `json:"installments"`
}

// PaymentInstallment é uma parcela do plano de pagamento do cliente
type PaymentInstallment struct {
	ID       string            `json:"id"`
	Amount   float64           `json:"amount"`
	DueDate  time.Time         `json:"due_date"`
	PaidDate *time.Time        `json:"paid_date,omitempty"`
	Status   InstallmentStatus `json:"status"`
}

// WeeklyRevenue é o faturamento de uma semana comercial do cliente.
// A semana comercial sempre inicia na quarta-feira.
type WeeklyRevenue struct {
	WeekStart   time.Time `json:"week_start"`
	WeekEnd     time.Time `json:"week_end"`
	Revenue     float64   `json:"revenue"`
	Achieved10k bool      `json:"achieved_10k"`
}

// ClientLTV é o retrato acumulado do valor gerado pelo relacionamento
type ClientLTV struct {
	TotalValueGenerated  float64 `json:"total_value_generated"`
	TotalValuePaid       float64 `json:"total_value_paid"`
	ActiveTime           int     `json:"active_time"` // em dias
	RevenueExpansionRate float64 `json:"revenue_expansion_rate"`
	AverageMonthlyValue  float64 `json:"average_monthly_value"`
}

// DelinquencyData concentra os dados de inadimplência do cliente.
// RiskScore e RiskLevel são caches: o valor de referência é sempre o
// recalculado pelo motor de métricas.
type DelinquencyData struct {
	CurrentDebt     float64    `json:"current_debt"`
	DelinquencyRate float64    `json:"delinquency_rate"` // percentual
	RiskScore       int        `json:"risk_score"`       // 0-100
	RiskLevel       RiskLevel  `json:"risk_level"`
	LastPaymentDate *time.Time `json:"last_payment_date,omitempty"`
	DaysOverdue     int        `json:"days_overdue"`
}
