package aggregating

import "github.com/jcarlosamorim/consultoria-api/internal/domain"

// SectorPerformanceCatalog retorna os indicadores de desempenho por setor
// gastronômico exibidos na análise setorial. O catálogo é um snapshot de
// mercado mantido pela consultoria, distinto da geografia da carteira.
func SectorPerformanceCatalog() []domain.SectorPerformance {
	return []domain.SectorPerformance{
		{Sector: "Fast Food", Revenue: 120000, Growth: 18},
		{Sector: "Hambúrgueria", Revenue: 95000, Growth: 12},
		{Sector: "Pizzaria", Revenue: 85000, Growth: 8},
		{Sector: "Asiática", Revenue: 75000, Growth: 22},
		{Sector: "Brasileira", Revenue: 45000, Growth: -2},
		{Sector: "Saudável", Revenue: 30000, Growth: 25},
	}
}
