package domain

// MonthlyReport é o relatório financeiro mensal preenchido por restaurante
type MonthlyReport struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurant_id"`
	Month        int    `json:"month"`
	Year         int    `json:"year"`

	// Receitas e vendas
	TotalRevenue  float64 `json:"total_revenue"`
	OrderCount    int     `json:"order_count"`
	AverageTicket float64 `json:"average_ticket"` // calculado, nunca informado

	// Custos fixos
	Rent            float64 `json:"rent"`
	Payroll         float64 `json:"payroll"`
	Accounting      float64 `json:"accounting"`
	OtherFixedCosts float64 `json:"other_fixed_costs"`

	// Custos variáveis
	Ingredients float64 `json:"ingredients"`
	PlatformFee float64 `json:"platform_fee"` // 28% da receita, calculado
	Packaging   float64 `json:"packaging"`
	GasEnergy   float64 `json:"gas_energy"`

	// Indicadores operacionais
	WorkingDays     int        `json:"working_days"`
	CancelledOrders int        `json:"cancelled_orders"`
	TopDishes       []TopDish  `json:"top_dishes"`

	// Pontos de atenção
	MissingIngredients AttentionFlag `json:"missing_ingredients"`
	EquipmentFailure   AttentionFlag `json:"equipment_failure"`
	Overtime           OvertimeFlag  `json:"overtime"`
}

// TopDish é um prato de destaque do mês com a quantidade vendida
type TopDish struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// AttentionFlag marca a ocorrência de um ponto de atenção com detalhes livres
type AttentionFlag struct {
	Occurred bool   `json:"occurred"`
	Details  string `json:"details"`
}

// OvertimeFlag marca a ocorrência de horas extras no mês
type OvertimeFlag struct {
	Occurred bool    `json:"occurred"`
	Hours    float64 `json:"hours"`
}

// MonthlyReportTotals agrupa os valores derivados de um relatório mensal
type MonthlyReportTotals struct {
	AverageTicket      float64 `json:"average_ticket"`
	PlatformFee        float64 `json:"platform_fee"`
	TotalFixedCosts    float64 `json:"total_fixed_costs"`
	TotalVariableCosts float64 `json:"total_variable_costs"`
	NetProfit          float64 `json:"net_profit"` // pode ser negativo
}
