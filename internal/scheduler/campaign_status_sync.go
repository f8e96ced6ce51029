package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketmate-api/infrastructure/repository"
	"github.com/vfg2006/marketmate-api/internal/config"
	"github.com/vfg2006/marketmate-api/internal/domain"
)

// CampaignStatusSyncConfig representa a configuração do agendador de status de campanhas
type CampaignStatusSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// CampaignStatusSyncService encerra campanhas ativas cujo período de veiculação terminou
type CampaignStatusSyncService struct {
	scheduler           *gocron.Scheduler
	config              CampaignStatusSyncConfig
	campaignRepo        repository.CampaignRepository
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewCampaignStatusSyncService cria uma nova instância do serviço de sincronização de status
func NewCampaignStatusSyncService(
	campaignRepo repository.CampaignRepository,
	appConfig *config.Config,
) *CampaignStatusSyncService {
	syncConfig := CampaignStatusSyncConfig{
		CronSchedule: appConfig.CampaignStatusSync.CronSchedule,
		SyncEnabled:  appConfig.CampaignStatusSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de status de campanhas carregada")

	return &CampaignStatusSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		campaignRepo: campaignRepo,
		now:          time.Now,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *CampaignStatusSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de status de campanhas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de status de campanhas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncCampaignStatuses()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de status de campanhas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de status de campanhas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncCampaignStatuses marca como concluídas as campanhas ativas que já passaram da data de término
func (s *CampaignStatusSyncService) syncCampaignStatuses() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de status de campanhas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := s.now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de status de campanhas")

	activeCampaigns, err := s.campaignRepo.ListByStatus(domain.CampaignStatusActive)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar campanhas ativas para sincronização de status")
		return
	}

	if len(activeCampaigns) == 0 {
		logrus.Info("Nenhuma campanha ativa encontrada para sincronização de status")
		return
	}

	completed := 0
	for _, campaign := range activeCampaigns {
		if campaign.EndsAt().After(startTime) {
			continue
		}

		if err := s.campaignRepo.UpdateStatus(campaign.ID, domain.CampaignStatusCompleted); err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaign.ID,
				"error":       err.Error(),
			}).Error("Erro ao encerrar campanha expirada")
			continue
		}

		logrus.WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"platform":    campaign.Platform,
			"ends_at":     campaign.EndsAt().Format(time.DateOnly),
		}).Info("Campanha expirada encerrada")
		completed++
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"active":    len(activeCampaigns),
		"completed": completed,
	}).Info("Sincronização de status de campanhas concluída")

	s.lastSyncCompletedAt = s.now()
}

// TriggerManualSync inicia manualmente uma sincronização de status de campanhas
func (s *CampaignStatusSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de status de campanhas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de status de campanhas")
	go s.syncCampaignStatuses()
}

// RunOnce executa a sincronização de forma síncrona
func (s *CampaignStatusSyncService) RunOnce() {
	s.syncCampaignStatuses()
}

// GetStatus retorna o status atual do agendador
func (s *CampaignStatusSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
