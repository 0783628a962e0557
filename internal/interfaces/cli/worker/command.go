// Package worker runs the background reminder pass.
package worker

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	notificationUsecases "github.com/spacebook/spacebook/internal/application/notification/usecases"
	settingApp "github.com/spacebook/spacebook/internal/application/setting"
	"github.com/spacebook/spacebook/internal/infrastructure/cache"
	"github.com/spacebook/spacebook/internal/infrastructure/config"
	"github.com/spacebook/spacebook/internal/infrastructure/database"
	"github.com/spacebook/spacebook/internal/infrastructure/email"
	"github.com/spacebook/spacebook/internal/infrastructure/repository"
	"github.com/spacebook/spacebook/internal/infrastructure/scheduler"
	"github.com/spacebook/spacebook/internal/interfaces/cli/bootstrap"
	"github.com/spacebook/spacebook/internal/shared/logger"
	"github.com/spacebook/spacebook/internal/shared/services/markdown"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Run the event reminder worker",
		Long: `Send reminders for approved reservations that start within the
configured number of days. Runs until interrupted.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, log, err := bootstrap.InitWithDatabase(env)
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("starting reminder worker", "environment", env, "interval", cfg.Worker.ReminderInterval)

	redisClient, err := bootstrap.NewRedisClient(cfg)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	job := newReminderJob(cfg, redisClient, log)

	manager, err := scheduler.NewSchedulerManager(logger.WithComponent("scheduler"))
	if err != nil {
		return err
	}
	if err := manager.RegisterReminderJob(job, cfg.Worker.ReminderInterval); err != nil {
		return err
	}
	manager.Start()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	log.Infow("received signal, shutting down", "signal", sig)
	if err := manager.Stop(); err != nil {
		log.Errorw("failed to stop scheduler", "error", err)
		return err
	}

	log.Infow("reminder worker stopped")
	return nil
}

// newReminderJob uses the redis ledger when redis is configured so that
// several workers never remind twice.
func newReminderJob(cfg *config.Config, redisClient *redis.Client, log logger.Interface) *notificationUsecases.ProcessRemindersUseCase {
	gormDB := database.Get()

	userRepo := repository.NewUserRepository(gormDB, log)
	notificationRepo := repository.NewNotificationRepository(gormDB, log)
	settings := settingApp.NewServiceDDD(repository.NewSettingRepository(gormDB, log), log).Provider()

	var emailSender notificationUsecases.EmailSender
	if cfg.Email.Enabled {
		emailSender = email.NewSMTPEmailService(cfg.Email)
	}
	dispatcher := notificationUsecases.NewDispatcher(notificationRepo, userRepo, emailSender, markdown.NewRenderer(), log.Named("dispatcher"))

	var ledger notificationUsecases.ReminderLedger = cache.NewMemoryReminderLedger()
	if redisClient != nil {
		ledger = cache.NewRedisReminderLedger(redisClient)
	}

	return notificationUsecases.NewProcessRemindersUseCase(
		repository.NewReservationRepository(gormDB, log),
		repository.NewSpaceRepository(gormDB, log),
		dispatcher,
		settings,
		ledger,
		log.Named("reminders"),
	)
}
