package domain

// RegionSummary é o resumo da carteira agrupado por região geográfica
type RegionSummary struct {
	Region   string  `json:"region"`
	Count    int     `json:"count"`
	TotalLTV float64 `json:"total_ltv"`
}

// StateSummary é o resumo da carteira agrupado por estado
type StateSummary struct {
	State             string  `json:"state"`
	TotalRevenue      float64 `json:"total_revenue"`
	AverageGrowth     float64 `json:"average_growth"` // média aritmética simples
	ClientCount       int     `json:"client_count"`
	ActiveClients     int     `json:"active_clients"`
	DelinquentClients int     `json:"delinquent_clients"`
	InactiveClients   int     `json:"inactive_clients"`
}

// PortfolioSummary é o resumo executivo global da carteira
type PortfolioSummary struct {
	TotalClients      int     `json:"total_clients"`
	ActiveClients     int     `json:"active_clients"`
	InactiveClients   int     `json:"inactive_clients"`
	Clients10kWeek    int     `json:"clients_10k_this_week"`
	TotalDelinquency  float64 `json:"total_delinquency"`
	AverageLTV        float64 `json:"average_ltv"`
}

// ConsultingKPIs é o bloco de KPIs exibido no dashboard principal
type ConsultingKPIs struct {
	TotalRevenue         float64 `json:"total_revenue"`
	ActiveClients        int     `json:"active_clients"`
	InactiveClients      int     `json:"inactive_clients"`
	ClientsOver10kWeek   int     `json:"clients_over_10k_this_week"`
	TotalDelinquency     float64 `json:"total_delinquency"`
	AverageLTV           float64 `json:"average_ltv"`
	DelinquencyRate      float64 `json:"delinquency_rate"`
	MRR                  float64 `json:"mrr"`
	GestaoLojaClients    int     `json:"gestao_loja_clients"`
	MentoriaClients      int     `json:"mentoria_clients"`
	RevenueExpansionRate float64 `json:"revenue_expansion_rate"`
}

// SectorPerformance é um indicador de desempenho por setor gastronômico
type SectorPerformance struct {
	Sector  string  `json:"sector"`
	Revenue float64 `json:"revenue"`
	Growth  float64 `json:"growth"`
}
