package handler

import (
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/jcarlosamorim/consultoria-api/internal/usecases/reporting"
	"github.com/jcarlosamorim/consultoria-api/pkg/apiErrors"
)

// ClientsReportExporter é o recorte do serviço de relatórios usado pelo
// handler de exportação
type ClientsReportExporter interface {
	ExportClientsReport(filters reporting.ReportFilters) (*reporting.ReportDocument, error)
}

// ExportClientsReport gera a planilha da carteira filtrada e a entrega
// como download
func ExportClientsReport(service ClientsReportExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := reporting.ReportFilters{
			SearchTerm:  r.URL.Query().Get("search_term"),
			ServiceType: r.URL.Query().Get("service_type"),
		}

		document, err := service.ExportClientsReport(filters)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gerar relatório de clientes", nil)
			return
		}

		w.Header().Set("Content-Type", document.ContentType)
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", document.Filename))
		w.Write(document.Data)
	}
}
