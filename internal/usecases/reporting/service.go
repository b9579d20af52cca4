package reporting

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/jcarlosamorim/consultoria-api/infrastructure/repository"
)

// DocumentExporter materializa o conteúdo do relatório em um documento
// binário. A implementação concreta define o formato do arquivo.
type DocumentExporter interface {
	Export(content *ClientsReportContent) ([]byte, error)
	ContentType() string
	FileExtension() string
}

// ReportDocument é o documento pronto para download
type ReportDocument struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Service struct {
	clientRepo repository.ClientRepository
	exporter   DocumentExporter
	now        func() time.Time
}

func NewService(clientRepo repository.ClientRepository, exporter DocumentExporter) *Service {
	return &Service{
		clientRepo: clientRepo,
		exporter:   exporter,
		now:        time.Now,
	}
}

// WithClock troca a fonte de tempo do serviço, para testes determinísticos
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// BuildClientsReport monta o conteúdo do relatório com a carteira atual
func (s *Service) BuildClientsReport(filters ReportFilters) (*ClientsReportContent, error) {
	clients, err := s.clientRepo.ListClients()
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar clientes para o relatório")
		return nil, errors.Wrap(err, "erro ao montar relatório de clientes")
	}

	return BuildClientsReportAt(clients, filters, s.now()), nil
}

// ExportClientsReport monta o relatório e o entrega como documento
// nomeado por data, no padrão relatorio-clientes-AAAA-MM-DD.
func (s *Service) ExportClientsReport(filters ReportFilters) (*ReportDocument, error) {
	content, err := s.BuildClientsReport(filters)
	if err != nil {
		return nil, err
	}

	data, err := s.exporter.Export(content)
	if err != nil {
		logrus.WithError(err).Error("Erro ao exportar relatório de clientes")
		return nil, errors.Wrap(err, "erro ao exportar relatório de clientes")
	}

	filename := fmt.Sprintf("relatorio-clientes-%s.%s",
		content.GeneratedAt.Format("2006-01-02"), s.exporter.FileExtension())

	logrus.WithFields(logrus.Fields{
		"filename": filename,
		"clients":  len(content.Rows),
	}).Info("Relatório de clientes exportado")

	return &ReportDocument{
		Filename:    filename,
		ContentType: s.exporter.ContentType(),
		Data:        data,
	}, nil
}
