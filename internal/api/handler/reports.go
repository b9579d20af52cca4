package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/jcarlosamorim/consultoria-api/infrastructure/repository"
	"github.com/jcarlosamorim/consultoria-api/internal/domain"
	"github.com/jcarlosamorim/consultoria-api/internal/usecases/metrics"
	"github.com/jcarlosamorim/consultoria-api/internal/usecases/registering"
	"github.com/jcarlosamorim/consultoria-api/pkg/apiErrors"
)

// RegisterMonthlyReport cadastra o relatório financeiro mensal de um restaurante
func RegisterMonthlyReport(service registering.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input registering.NewReportInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		report, err := service.RegisterMonthlyReport(&input)
		if err != nil {
			handleRegisterError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(report)
	}
}

// PreviewReportTotals calcula os totais derivados de um relatório sem
// persistir nada, para a pré-visualização do formulário
func PreviewReportTotals() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var report domain.MonthlyReport
		if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		totals := metrics.ComputeMonthlyReportTotals(&report)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(totals)
	}
}

// ListReportsByRestaurant retorna o histórico de relatórios de um restaurante
func ListReportsByRestaurant(reportRepo repository.ReportRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		restaurantID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if restaurantID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do restaurante não fornecido", nil)
			return
		}

		reports, err := reportRepo.ListReportsByRestaurant(restaurantID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar relatórios", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(reports)
	}
}
