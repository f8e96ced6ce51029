package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketmate-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketmate-api/infrastructure/repository"
	"github.com/vfg2006/marketmate-api/internal/api"
	"github.com/vfg2006/marketmate-api/internal/config"
	"github.com/vfg2006/marketmate-api/internal/scheduler"
	"github.com/vfg2006/marketmate-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketmate-api/internal/usecases/budgeting"
	"github.com/vfg2006/marketmate-api/internal/usecases/business"
	"github.com/vfg2006/marketmate-api/internal/usecases/leads"
	"github.com/vfg2006/marketmate-api/internal/usecases/tracking"
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

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	eventStore := repository.NewEventStore(pgConn)
	visitorRepo := repository.NewVisitorRepository(pgConn)
	businessRepo := repository.NewBusinessProfileRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	trackingService := tracking.NewService(eventStore, visitorRepo)
	leadService := leads.NewService(eventStore)
	budgetService := budgeting.NewService(campaignRepo)
	businessService := business.NewService(businessRepo)

	// Inicializa o agendador que encerra campanhas expiradas
	campaignStatusSyncService := scheduler.NewCampaignStatusSyncService(campaignRepo, cfg)

	if err := campaignStatusSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de status de campanhas")
	} else {
		logrus.Info("Agendador de status de campanhas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		trackingService,
		leadService,
		budgetService,
		businessService,
		authenticator,
		campaignStatusSyncService,
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
