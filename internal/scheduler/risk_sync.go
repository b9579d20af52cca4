// Package scheduler agrupa os jobs agendados que mantêm os indicadores
// derivados da carteira atualizados.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/jcarlosamorim/consultoria-api/infrastructure/repository"
	"github.com/jcarlosamorim/consultoria-api/internal/config"
	"github.com/jcarlosamorim/consultoria-api/internal/usecases/metrics"
)

// RiskSyncConfig representa a configuração do agendador de risco
type RiskSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// RiskSyncService recomputa periodicamente o risco de inadimplência de
// toda a carteira e persiste o score e o nível atualizados. Os valores
// armazenados são cache de exibição, o motor de métricas é a fonte.
type RiskSyncService struct {
	scheduler           *gocron.Scheduler
	config              RiskSyncConfig
	clientRepo          repository.ClientRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewRiskSyncService cria uma nova instância do serviço de sincronização de risco
func NewRiskSyncService(clientRepo repository.ClientRepository, appConfig *config.Config) *RiskSyncService {
	riskConfig := RiskSyncConfig{
		CronSchedule: appConfig.RiskSync.CronSchedule,
		SyncEnabled:  appConfig.RiskSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": riskConfig.CronSchedule,
		"sync_enabled":  riskConfig.SyncEnabled,
	}).Info("Configuração do agendador de risco de inadimplência carregada")

	return &RiskSyncService{
		scheduler:   scheduler,
		config:      riskConfig,
		clientRepo:  clientRepo,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *RiskSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de risco de inadimplência desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de risco")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllClientRisks()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de risco: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de risco")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllClientRisks recomputa o risco de todos os clientes da carteira
func (s *RiskSyncService) syncAllClientRisks() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de risco já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando recomputação de risco de inadimplência para toda a carteira")

	clients, err := s.clientRepo.ListClients()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar clientes para recomputação de risco")
		return
	}

	if len(clients) == 0 {
		logrus.Info("Nenhum cliente encontrado para recomputação de risco")
		return
	}

	updated := 0
	for _, client := range clients {
		score := metrics.ComputeDelinquencyRisk(client)
		level := metrics.RiskLevelFromScore(score)

		if client.DelinquencyData.RiskScore == score && client.DelinquencyData.RiskLevel == level {
			continue
		}

		data := client.DelinquencyData
		data.RiskScore = score
		data.RiskLevel = level

		if err := s.clientRepo.UpdateDelinquencyData(client.ID, data); err != nil {
			logrus.WithFields(logrus.Fields{
				"client_id":     client.ID,
				"client_number": client.ClientNumber,
				"error":         err.Error(),
			}).Error("Erro ao salvar risco recomputado do cliente")
			continue
		}

		logrus.WithFields(logrus.Fields{
			"client_id":     client.ID,
			"client_number": client.ClientNumber,
			"risk_score":    score,
			"risk_level":    level,
		}).Info("Risco de inadimplência do cliente atualizado")
		updated++
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"clients":  len(clients),
		"updated":  updated,
	}).Info("Recomputação de risco de inadimplência concluída")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma recomputação de risco
func (s *RiskSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de risco já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recomputação manual de risco de inadimplência")
	go s.syncAllClientRisks()
}

// GetStatus retorna o status atual do agendador
func (s *RiskSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
