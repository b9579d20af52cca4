package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/jcarlosamorim/consultoria-api/infrastructure/database/postgres"
	"github.com/jcarlosamorim/consultoria-api/infrastructure/exporter/excel"
	"github.com/jcarlosamorim/consultoria-api/infrastructure/repository"
	"github.com/jcarlosamorim/consultoria-api/infrastructure/repository/memory"
	"github.com/jcarlosamorim/consultoria-api/internal/api"
	"github.com/jcarlosamorim/consultoria-api/internal/config"
	"github.com/jcarlosamorim/consultoria-api/internal/domain"
	"github.com/jcarlosamorim/consultoria-api/internal/scheduler"
	"github.com/jcarlosamorim/consultoria-api/internal/usecases/aggregating"
	"github.com/jcarlosamorim/consultoria-api/internal/usecases/authenticating"
	"github.com/jcarlosamorim/consultoria-api/internal/usecases/registering"
	"github.com/jcarlosamorim/consultoria-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var clientRepo repository.ClientRepository
	var reportRepo repository.ReportRepository
	var userRepo repository.UserRepository

	if cfg.Demo.Enabled {
		logrus.Info("Modo demonstração habilitado, usando repositórios em memória")

		clientStore := memory.NewClientStore()
		reportStore := memory.NewReportStore()
		userStore := memory.NewUserStore()

		if err := memory.SeedDemoData(clientStore, reportStore, cfg.Demo.ExtraClients); err != nil {
			logrus.WithError(err).Fatal("Erro ao popular dados de demonstração")
		}

		if err := seedDemoAdmin(userStore); err != nil {
			logrus.WithError(err).Fatal("Erro ao criar usuário administrador de demonstração")
		}

		clientRepo = clientStore
		reportRepo = reportStore
		userRepo = userStore
	} else {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		clientRepo = repository.NewClientRepository(pgConn)
		reportRepo = repository.NewReportRepository(pgConn)
		userRepo = repository.NewUserRepository(pgConn)
	}

	authenticator := authenticating.NewService(userRepo, cfg)
	registrar := registering.NewService(clientRepo, reportRepo)
	portfolier := aggregating.NewService(clientRepo)
	reportingService := reporting.NewService(clientRepo, excel.NewExporter())

	// Inicializa os agendadores de sincronização separados
	riskSyncService := scheduler.NewRiskSyncService(clientRepo, cfg)
	goalSyncService := scheduler.NewGoalSyncService(clientRepo, cfg)

	if err := riskSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de risco de inadimplência")
	} else {
		logrus.Info("Agendador de risco de inadimplência iniciado com sucesso")
	}

	if err := goalSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de metas semanais")
	} else {
		logrus.Info("Agendador de metas semanais iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		registrar,
		portfolier,
		reportingService,
		reportRepo,
		riskSyncService,
		goalSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// seedDemoAdmin cria o usuário administrador do modo demonstração
func seedDemoAdmin(store *memory.UserStore) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &domain.User{
		Name:         "Admin",
		Lastname:     "Demo",
		Email:        "admin@demo.local",
		PasswordHash: string(hash),
		Active:       true,
		RoleID:       1,
	}

	if _, err := store.CreateUser(admin); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"email": admin.Email,
	}).Info("Usuário administrador de demonstração criado, senha: demo1234")

	return nil
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
