package scheduler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/pagamentossegurosbr/managerv1-notch/infrastructure/storage"
	"github.com/pagamentossegurosbr/managerv1-notch/internal/config"
)

const backupDirName = "backups"

// BackupConfig representa a configuração do agendador de backup
type BackupConfig struct {
	CronSchedule  string
	RetentionDays int
	Enabled       bool
}

// BackupStatus é o estado exposto pelo endpoint de status
type BackupStatus struct {
	Enabled         bool      `json:"enabled"`
	Running         bool      `json:"running"`
	CronSchedule    string    `json:"cron_schedule"`
	LastStartedAt   time.Time `json:"last_started_at"`
	LastCompletedAt time.Time `json:"last_completed_at"`
}

// BackupService agenda cópias periódicas do arquivo de dados. O arquivo é a
// única fonte de verdade do dashboard, então o backup roda fora do caminho
// das requisições.
type BackupService struct {
	scheduler       *gocron.Scheduler
	config          BackupConfig
	store           *storage.Store
	running         bool
	mu              sync.Mutex
	lastStartedAt   time.Time
	lastCompletedAt time.Time
}

// NewBackupService cria o serviço de backup a partir da configuração global
func NewBackupService(store *storage.Store, appConfig *config.Config) *BackupService {
	backupConfig := BackupConfig{
		CronSchedule:  appConfig.Backup.CronSchedule,
		RetentionDays: appConfig.Backup.RetentionDays,
		Enabled:       appConfig.Backup.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  backupConfig.CronSchedule,
		"retention_days": backupConfig.RetentionDays,
		"enabled":        backupConfig.Enabled,
	}).Info("Configuração do agendador de backup carregada")

	return &BackupService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    backupConfig,
		store:     store,
	}
}

// Start inicia o agendador
func (s *BackupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Backup do arquivo de dados desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de backup")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunNow(); err != nil {
			logrus.WithError(err).Error("Erro ao executar backup agendado")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar backup: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de backup")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow executa um backup imediatamente, ignorando a chamada se outro
// backup já estiver em andamento
func (s *BackupService) RunNow() error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		logrus.Info("Backup já em andamento, ignorando")
		return nil
	}
	s.running = true
	s.lastStartedAt = time.Now()
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.lastCompletedAt = time.Now()
		s.mu.Unlock()
	}()

	return s.backup()
}

// Status retorna o estado atual do agendador
func (s *BackupService) Status() BackupStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	return BackupStatus{
		Enabled:         s.config.Enabled,
		Running:         s.running,
		CronSchedule:    s.config.CronSchedule,
		LastStartedAt:   s.lastStartedAt,
		LastCompletedAt: s.lastCompletedAt,
	}
}

func (s *BackupService) backup() error {
	data, err := os.ReadFile(s.store.Path())
	if err != nil {
		if os.IsNotExist(err) {
			logrus.Info("Arquivo de dados ainda não existe, nada para copiar")
			return nil
		}
		return fmt.Errorf("erro ao ler o arquivo de dados: %w", err)
	}

	backupDir := filepath.Join(filepath.Dir(s.store.Path()), backupDirName)
	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return fmt.Errorf("erro ao criar diretório de backup: %w", err)
	}

	name := fmt.Sprintf("financial_app-%s.json", time.Now().Format("20060102-150405"))
	target := filepath.Join(backupDir, name)

	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("erro ao gravar backup: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"file":  target,
		"bytes": len(data),
	}).Info("Backup do arquivo de dados concluído")

	return s.prune(backupDir)
}

// prune remove backups mais antigos que o período de retenção
func (s *BackupService) prune(backupDir string) error {
	if s.config.RetentionDays <= 0 {
		return nil
	}

	cutoff := time.Now().AddDate(0, 0, -s.config.RetentionDays)

	entries, err := os.ReadDir(backupDir)
	if err != nil {
		return fmt.Errorf("erro ao listar backups: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if info.ModTime().Before(cutoff) {
			path := filepath.Join(backupDir, entry.Name())
			if err := os.Remove(path); err != nil {
				logrus.WithError(err).WithField("file", path).Warn("Erro ao remover backup antigo")
				continue
			}

			logrus.WithField("file", path).Info("Backup antigo removido")
		}
	}

	return nil
}
