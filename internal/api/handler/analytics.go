package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/jcarlosamorim/consultoria-api/internal/usecases/aggregating"
	"github.com/jcarlosamorim/consultoria-api/pkg/apiErrors"
)

// GetPortfolioSummary retorna o resumo executivo global da carteira
func GetPortfolioSummary(service aggregating.Portfolier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.Portfolio()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular resumo da carteira", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	}
}

// GetStateSummaries retorna o desempenho agregado por estado
func GetStateSummaries(service aggregating.Portfolier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		states, err := service.States()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular desempenho por estado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(states)
	}
}

// GetRegionSummaries retorna a distribuição da carteira por região
func GetRegionSummaries(service aggregating.Portfolier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		regions, err := service.Regions()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular distribuição por região", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(regions)
	}
}

// GetAttentionStates retorna os estados que precisam de intervenção
func GetAttentionStates(service aggregating.Portfolier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		states, err := service.Attention()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular estados em atenção", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(states)
	}
}

// GetConsultingKPIs retorna os KPIs consolidados da consultoria
func GetConsultingKPIs(service aggregating.Portfolier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kpis, err := service.KPIs()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular KPIs da consultoria", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(kpis)
	}
}

// GetSectorPerformance retorna o catálogo de desempenho por setor
func GetSectorPerformance(service aggregating.Portfolier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(service.Sectors())
	}
}
