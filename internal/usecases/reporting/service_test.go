package reporting_test

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcarlosamorim/consultoria-api/infrastructure/repository/memory"
	"github.com/jcarlosamorim/consultoria-api/internal/domain"
	"github.com/jcarlosamorim/consultoria-api/internal/usecases/reporting"
)

var reference = time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)

func reportClients() []*domain.Client {
	return []*domain.Client{
		{
			ID:           "aaa111",
			ClientNumber: 1,
			FirstName:    "João",
			LastName:     "Silva",
			ServiceType:  domain.ServiceGestaoLoja,
			Status:       domain.StatusActive,
			IsActive:     true,
			State:        "SP",
			City:         "São Paulo",
			Region:       "Sudeste",
			LTVData:      domain.ClientLTV{TotalValueGenerated: 45000},
			DelinquencyData: domain.DelinquencyData{
				RiskLevel: domain.RiskLow,
			},
		},
		{
			ID:           "bbb222",
			ClientNumber: 2,
			FirstName:    "Maria",
			LastName:     "Santos",
			ServiceType:  domain.ServiceMentoria,
			Status:       domain.StatusActive,
			IsActive:     true,
			State:        "RJ",
			City:         "Niterói",
			Region:       "Sudeste",
			LTVData:      domain.ClientLTV{TotalValueGenerated: 28000},
			DelinquencyData: domain.DelinquencyData{
				RiskLevel: domain.RiskMedium,
			},
		},
		{
			ID:           "ccc333",
			ClientNumber: 5,
			FirstName:    "Carlos",
			LastName:     "Oliveira",
			ServiceType:  domain.ServiceGestaoLoja,
			Status:       domain.StatusDelinquent,
			IsActive:     true,
			State:        "BA",
			City:         "Salvador",
			Region:       "Nordeste",
			LTVData:      domain.ClientLTV{TotalValueGenerated: 18000},
			DelinquencyData: domain.DelinquencyData{
				CurrentDebt: 2312.50,
				RiskLevel:   domain.RiskHigh,
			},
		},
	}
}

func TestFilterClients(t *testing.T) {
	clients := reportClients()

	tests := []struct {
		name    string
		filters reporting.ReportFilters
		wantIDs []string
	}{
		{
			name:    "sem filtros devolve todos",
			filters: reporting.ReportFilters{},
			wantIDs: []string{"aaa111", "bbb222", "ccc333"},
		},
		{
			name:    "tipo de serviço all devolve todos",
			filters: reporting.ReportFilters{ServiceType: reporting.ServiceTypeAll},
			wantIDs: []string{"aaa111", "bbb222", "ccc333"},
		},
		{
			name:    "filtra por tipo de serviço",
			filters: reporting.ReportFilters{ServiceType: "mentoria"},
			wantIDs: []string{"bbb222"},
		},
		{
			name:    "busca por nome insensível a maiúsculas",
			filters: reporting.ReportFilters{SearchTerm: "SILVA"},
			wantIDs: []string{"aaa111"},
		},
		{
			name:    "busca por cidade",
			filters: reporting.ReportFilters{SearchTerm: "salvador"},
			wantIDs: []string{"ccc333"},
		},
		{
			name:    "busca e tipo combinados",
			filters: reporting.ReportFilters{SearchTerm: "carlos", ServiceType: "gestao-loja"},
			wantIDs: []string{"ccc333"},
		},
		{
			name:    "busca sem resultado",
			filters: reporting.ReportFilters{SearchTerm: "inexistente"},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := reporting.FilterClients(clients, tt.filters)

			gotIDs := make([]string, 0, len(filtered))
			for _, client := range filtered {
				gotIDs = append(gotIDs, client.ID)
			}

			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestBuildClientsReportAt(t *testing.T) {
	content := reporting.BuildClientsReportAt(reportClients(), reporting.ReportFilters{}, reference)

	assert.Equal(t, "Relatório de Clientes", content.Title)
	assert.Equal(t, reference, content.GeneratedAt)

	assert.Equal(t, 3, content.Summary.TotalClients)
	assert.Equal(t, 2, content.Summary.ActiveClients)
	assert.Equal(t, 0, content.Summary.InactiveClients)
	assert.InDelta(t, 2312.50, content.Summary.TotalDelinquency, 0.001)

	require.Len(t, content.Rows, 3)
	first := content.Rows[0]
	assert.Equal(t, "Cliente nº 1 - João Silva - Gestão de Loja", first.DisplayName)
	assert.Equal(t, "Gestão de Loja", first.ServiceLabel)
	assert.Equal(t, "Ativo", first.StatusLabel)
	assert.Equal(t, "Baixo", first.RiskLabel)

	third := content.Rows[2]
	assert.Equal(t, "Inadimplente", third.StatusLabel)
	assert.Equal(t, "Alto", third.RiskLabel)
	assert.InDelta(t, 2312.50, third.CurrentDebt, 0.001)

	require.Len(t, content.States, 3)
	assert.Equal(t, "SP", content.States[0].State)

	require.Len(t, content.Regions, 2)
	assert.Equal(t, "Sudeste", content.Regions[0].Region)
	assert.Equal(t, 2, content.Regions[0].Count)
}

func TestBuildClientsReportAtAppliesFilters(t *testing.T) {
	filters := reporting.ReportFilters{ServiceType: "mentoria"}
	content := reporting.BuildClientsReportAt(reportClients(), filters, reference)

	assert.Equal(t, filters, content.Filters)
	assert.Equal(t, 1, content.Summary.TotalClients)
	require.Len(t, content.Rows, 1)
	assert.Equal(t, "Mentoria", content.Rows[0].ServiceLabel)
}

func TestStatusAndRiskLabels(t *testing.T) {
	assert.Equal(t, "Ativo", reporting.StatusLabel(domain.StatusActive))
	assert.Equal(t, "Inadimplente", reporting.StatusLabel(domain.StatusDelinquent))
	assert.Equal(t, "desconhecido", reporting.StatusLabel(domain.ClientStatus("desconhecido")))

	assert.Equal(t, "Médio", reporting.RiskLabel(domain.RiskMedium))
	assert.Equal(t, "Alto", reporting.RiskLabel(domain.RiskHigh))
	assert.Equal(t, "outro", reporting.RiskLabel(domain.RiskLevel("outro")))
}

type stubExporter struct {
	exported *reporting.ClientsReportContent
	err      error
}

func (e *stubExporter) Export(content *reporting.ClientsReportContent) ([]byte, error) {
	e.exported = content
	if e.err != nil {
		return nil, e.err
	}

	return []byte("documento"), nil
}

func (e *stubExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (e *stubExporter) FileExtension() string {
	return "xlsx"
}

func TestExportClientsReport(t *testing.T) {
	store := memory.NewClientStore()
	for _, client := range reportClients() {
		require.NoError(t, store.SaveClient(client))
	}

	exporter := &stubExporter{}
	service := reporting.NewService(store, exporter).WithClock(func() time.Time { return reference })

	document, err := service.ExportClientsReport(reporting.ReportFilters{})
	require.NoError(t, err)

	assert.Equal(t, "relatorio-clientes-2025-01-15.xlsx", document.Filename)
	assert.Equal(t, exporter.ContentType(), document.ContentType)
	assert.Equal(t, []byte("documento"), document.Data)

	require.NotNil(t, exporter.exported)
	assert.Len(t, exporter.exported.Rows, 3)
}

func TestExportClientsReportExporterFailure(t *testing.T) {
	store := memory.NewClientStore()
	require.NoError(t, store.SaveClient(reportClients()[0]))

	exporter := &stubExporter{err: errors.New("disco cheio")}
	service := reporting.NewService(store, exporter).WithClock(func() time.Time { return reference })

	document, err := service.ExportClientsReport(reporting.ReportFilters{})
	assert.Nil(t, document)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "erro ao exportar relatório de clientes")
}
