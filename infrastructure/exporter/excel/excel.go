// Package excel materializa o relatório de clientes em planilha XLSX.
package excel

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/jcarlosamorim/consultoria-api/internal/usecases/reporting"
	"github.com/jcarlosamorim/consultoria-api/pkg/utils"
)

const (
	summarySheet = "Resumo Executivo"
	clientsSheet = "Clientes"
	statesSheet  = "Estados"

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Exporter struct{}

func NewExporter() *Exporter {
	return &Exporter{}
}

func (e *Exporter) ContentType() string {
	return xlsxContentType
}

func (e *Exporter) FileExtension() string {
	return "xlsx"
}

// Export gera a planilha com três abas: resumo executivo, detalhamento
// de clientes e desempenho por estado.
func (e *Exporter) Export(content *reporting.ClientsReportContent) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E94560"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar estilo de cabeçalho")
	}

	if err := e.writeSummarySheet(f, content, headerStyle); err != nil {
		return nil, err
	}
	if err := e.writeClientsSheet(f, content, headerStyle); err != nil {
		return nil, err
	}
	if err := e.writeStatesSheet(f, content, headerStyle); err != nil {
		return nil, err
	}

	// A aba padrão Sheet1 sai do arquivo final
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, errors.Wrap(err, "erro ao remover aba padrão")
	}

	index, err := f.GetSheetIndex(summarySheet)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao localizar aba de resumo")
	}
	f.SetActiveSheet(index)

	var buffer bytes.Buffer
	if err := f.Write(&buffer); err != nil {
		return nil, errors.Wrap(err, "erro ao gravar planilha")
	}

	return buffer.Bytes(), nil
}

func (e *Exporter) writeSummarySheet(f *excelize.File, content *reporting.ClientsReportContent, headerStyle int) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return errors.Wrap(err, "erro ao criar aba de resumo")
	}

	f.SetCellValue(summarySheet, "A1", content.Title)
	f.SetCellStyle(summarySheet, "A1", "A1", headerStyle)
	f.SetCellValue(summarySheet, "A2", fmt.Sprintf("Gerado em: %s", content.GeneratedAt.Format("02/01/2006 15:04")))

	items := []struct {
		label string
		value interface{}
	}{
		{"Total de Clientes", content.Summary.TotalClients},
		{"Clientes Ativos", content.Summary.ActiveClients},
		{"Clientes Inativos", content.Summary.InactiveClients},
		{"Clientes que faturaram +10K esta semana", content.Summary.Clients10kWeek},
		{"LTV Médio", utils.FormatCurrencyBRL(content.Summary.AverageLTV)},
		{"Total em Inadimplência", utils.FormatCurrencyBRL(content.Summary.TotalDelinquency)},
	}

	for i, item := range items {
		row := i + 4
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), item.label)
		f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), item.value)
	}

	row := len(items) + 5
	f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), "Filtro de busca")
	f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), content.Filters.SearchTerm)
	f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row+1), "Tipo de serviço")
	f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row+1), content.Filters.ServiceType)

	f.SetColWidth(summarySheet, "A", "A", 42)
	f.SetColWidth(summarySheet, "B", "B", 24)

	return nil
}

func (e *Exporter) writeClientsSheet(f *excelize.File, content *reporting.ClientsReportContent, headerStyle int) error {
	if _, err := f.NewSheet(clientsSheet); err != nil {
		return errors.Wrap(err, "erro ao criar aba de clientes")
	}

	headers := []string{"Cliente", "Serviço", "Status", "LTV Total", "Inadimplência", "Risco"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(clientsSheet, cell, header)
		f.SetCellStyle(clientsSheet, cell, cell, headerStyle)
	}

	for rowIdx, client := range content.Rows {
		row := rowIdx + 2
		f.SetCellValue(clientsSheet, fmt.Sprintf("A%d", row), client.DisplayName)
		f.SetCellValue(clientsSheet, fmt.Sprintf("B%d", row), client.ServiceLabel)
		f.SetCellValue(clientsSheet, fmt.Sprintf("C%d", row), client.StatusLabel)
		f.SetCellValue(clientsSheet, fmt.Sprintf("D%d", row), utils.FormatCurrencyBRL(client.TotalLTV))
		f.SetCellValue(clientsSheet, fmt.Sprintf("E%d", row), utils.FormatCurrencyBRL(client.CurrentDebt))
		f.SetCellValue(clientsSheet, fmt.Sprintf("F%d", row), client.RiskLabel)
	}

	f.SetColWidth(clientsSheet, "A", "A", 48)
	f.SetColWidth(clientsSheet, "B", "F", 18)

	return nil
}

func (e *Exporter) writeStatesSheet(f *excelize.File, content *reporting.ClientsReportContent, headerStyle int) error {
	if _, err := f.NewSheet(statesSheet); err != nil {
		return errors.Wrap(err, "erro ao criar aba de estados")
	}

	headers := []string{"Estado", "Faturamento", "Crescimento Médio", "Clientes", "Ativos", "Inadimplentes", "Inativos"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(statesSheet, cell, header)
		f.SetCellStyle(statesSheet, cell, cell, headerStyle)
	}

	for rowIdx, state := range content.States {
		row := rowIdx + 2
		f.SetCellValue(statesSheet, fmt.Sprintf("A%d", row), state.State)
		f.SetCellValue(statesSheet, fmt.Sprintf("B%d", row), utils.FormatCurrencyBRL(state.TotalRevenue))
		f.SetCellValue(statesSheet, fmt.Sprintf("C%d", row), utils.FormatPercentBR(state.AverageGrowth))
		f.SetCellValue(statesSheet, fmt.Sprintf("D%d", row), state.ClientCount)
		f.SetCellValue(statesSheet, fmt.Sprintf("E%d", row), state.ActiveClients)
		f.SetCellValue(statesSheet, fmt.Sprintf("F%d", row), state.DelinquentClients)
		f.SetCellValue(statesSheet, fmt.Sprintf("G%d", row), state.InactiveClients)
	}

	f.SetColWidth(statesSheet, "A", "G", 18)

	return nil
}
