package excel_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jcarlosamorim/consultoria-api/infrastructure/exporter/excel"
	"github.com/jcarlosamorim/consultoria-api/internal/domain"
	"github.com/jcarlosamorim/consultoria-api/internal/usecases/reporting"
)

func sampleContent() *reporting.ClientsReportContent {
	return &reporting.ClientsReportContent{
		Title:       "Relatório de Clientes",
		GeneratedAt: time.Date(2025, time.January, 15, 10, 30, 0, 0, time.UTC),
		Filters:     reporting.ReportFilters{SearchTerm: "silva", ServiceType: "gestao-loja"},
		Summary: domain.PortfolioSummary{
			TotalClients:     2,
			ActiveClients:    1,
			Clients10kWeek:   1,
			TotalDelinquency: 2312.50,
			AverageLTV:       31500,
		},
		Rows: []reporting.ClientReportRow{
			{
				DisplayName:  "Cliente nº 1 - João Silva - Gestão de Loja",
				ServiceLabel: "Gestão de Loja",
				StatusLabel:  "Ativo",
				TotalLTV:     45000,
				RiskLabel:    "Baixo",
			},
			{
				DisplayName:  "Cliente nº 5 - Carlos Oliveira - Gestão de Loja",
				ServiceLabel: "Gestão de Loja",
				StatusLabel:  "Inadimplente",
				TotalLTV:     18000,
				CurrentDebt:  2312.50,
				RiskLabel:    "Alto",
			},
		},
		States: []domain.StateSummary{
			{State: "SP", TotalRevenue: 45000, AverageGrowth: 8.2, ClientCount: 1, ActiveClients: 1},
			{State: "BA", TotalRevenue: 18000, AverageGrowth: -1.2, ClientCount: 1, DelinquentClients: 1},
		},
	}
}

func TestExportProducesWorkbook(t *testing.T) {
	exporter := excel.NewExporter()

	data, err := exporter.Export(sampleContent())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	assert.Contains(t, sheets, "Resumo Executivo")
	assert.Contains(t, sheets, "Clientes")
	assert.Contains(t, sheets, "Estados")
	assert.NotContains(t, sheets, "Sheet1")
}

func TestExportSummarySheetContent(t *testing.T) {
	exporter := excel.NewExporter()

	data, err := exporter.Export(sampleContent())
	require.NoError(t, err)

	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer workbook.Close()

	title, err := workbook.GetCellValue("Resumo Executivo", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Relatório de Clientes", title)

	totalLabel, err := workbook.GetCellValue("Resumo Executivo", "A4")
	require.NoError(t, err)
	assert.Equal(t, "Total de Clientes", totalLabel)

	totalValue, err := workbook.GetCellValue("Resumo Executivo", "B4")
	require.NoError(t, err)
	assert.Equal(t, "2", totalValue)
}

func TestExportClientsSheetContent(t *testing.T) {
	exporter := excel.NewExporter()

	data, err := exporter.Export(sampleContent())
	require.NoError(t, err)

	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer workbook.Close()

	header, err := workbook.GetCellValue("Clientes", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Cliente", header)

	firstClient, err := workbook.GetCellValue("Clientes", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Cliente nº 1 - João Silva - Gestão de Loja", firstClient)

	secondStatus, err := workbook.GetCellValue("Clientes", "C3")
	require.NoError(t, err)
	assert.Equal(t, "Inadimplente", secondStatus)

	secondRisk, err := workbook.GetCellValue("Clientes", "F3")
	require.NoError(t, err)
	assert.Equal(t, "Alto", secondRisk)
}

func TestExportStatesSheetContent(t *testing.T) {
	exporter := excel.NewExporter()

	data, err := exporter.Export(sampleContent())
	require.NoError(t, err)

	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer workbook.Close()

	firstState, err := workbook.GetCellValue("Estados", "A2")
	require.NoError(t, err)
	assert.Equal(t, "SP", firstState)

	delinquent, err := workbook.GetCellValue("Estados", "F3")
	require.NoError(t, err)
	assert.Equal(t, "1", delinquent)
}

func TestExporterMetadata(t *testing.T) {
	exporter := excel.NewExporter()

	assert.Equal(t, "xlsx", exporter.FileExtension())
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		exporter.ContentType())
}
