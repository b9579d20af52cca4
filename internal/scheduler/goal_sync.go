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

// GoalSyncConfig representa a configuração do agendador de metas semanais
type GoalSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// GoalSyncService atualiza periodicamente as flags de meta semanal
// atingida no histórico de faturamento dos clientes. A semana comercial
// vira na quarta-feira, por isso o job roda logo após a virada.
type GoalSyncService struct {
	scheduler           *gocron.Scheduler
	config              GoalSyncConfig
	clientRepo          repository.ClientRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewGoalSyncService cria uma nova instância do serviço de sincronização de metas
func NewGoalSyncService(clientRepo repository.ClientRepository, appConfig *config.Config) *GoalSyncService {
	goalConfig := GoalSyncConfig{
		CronSchedule: appConfig.GoalSync.CronSchedule,
		SyncEnabled:  appConfig.GoalSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": goalConfig.CronSchedule,
		"sync_enabled":  goalConfig.SyncEnabled,
	}).Info("Configuração do agendador de metas semanais carregada")

	return &GoalSyncService{
		scheduler:   scheduler,
		config:      goalConfig,
		clientRepo:  clientRepo,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *GoalSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de metas semanais desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de metas semanais")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllWeeklyGoals()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de metas semanais: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de metas semanais")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllWeeklyGoals revisita o histórico semanal de cada cliente e
// corrige as flags de meta atingida
func (s *GoalSyncService) syncAllWeeklyGoals() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de metas semanais já em andamento, ignorando")
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

	logrus.Info("Iniciando atualização das flags de meta semanal para toda a carteira")

	clients, err := s.clientRepo.ListClients()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar clientes para atualização de metas semanais")
		return
	}

	updated := 0
	for _, client := range clients {
		changed := false
		revenue := client.WeeklyRevenue
		for i := range revenue {
			achieved := revenue[i].Revenue >= metrics.WeeklyRevenueGoal
			if revenue[i].Achieved10k != achieved {
				revenue[i].Achieved10k = achieved
				changed = true
			}
		}

		if !changed {
			continue
		}

		if err := s.clientRepo.UpdateWeeklyRevenue(client.ID, revenue); err != nil {
			logrus.WithFields(logrus.Fields{
				"client_id":     client.ID,
				"client_number": client.ClientNumber,
				"error":         err.Error(),
			}).Error("Erro ao salvar flags de meta semanal do cliente")
			continue
		}

		logrus.WithFields(logrus.Fields{
			"client_id":     client.ID,
			"client_number": client.ClientNumber,
		}).Info("Flags de meta semanal do cliente atualizadas")
		updated++
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"clients":  len(clients),
		"updated":  updated,
	}).Info("Atualização das flags de meta semanal concluída")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente a atualização das metas semanais
func (s *GoalSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de metas semanais já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual das metas semanais")
	go s.syncAllWeeklyGoals()
}

// GetStatus retorna o status atual do agendador
func (s *GoalSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
