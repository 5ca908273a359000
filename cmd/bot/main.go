package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"wohnheimsbot/internal/application"
	"wohnheimsbot/internal/config"
	"wohnheimsbot/internal/infra/filestore"
	"wohnheimsbot/internal/infra/i18n"
	"wohnheimsbot/internal/infra/logging"
	"wohnheimsbot/internal/infra/sched"
	"wohnheimsbot/internal/infra/telegram"
	"wohnheimsbot/internal/infra/web"
	"wohnheimsbot/internal/usecase"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---- CLI flags ----
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	envPath := flag.String("env", "", "optional .env file loaded before the config")
	devMode := flag.Bool("dev", false, "enable developer mode")
	flag.Parse()

	if *envPath != "" {
		if err := godotenv.Load(*envPath); err != nil {
			log.Fatalf("env file: %v", err)
		}
	} else {
		// Best-effort: a .env next to the binary is optional.
		_ = godotenv.Load()
	}

	cfg, err := config.Load(*cfgPath, *devMode)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.ValidateBot(); err != nil {
		log.Fatalf("config: %v", err)
	}

	// ---- Logging ----
	logs, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer logs.Close()
	rootLog := logs.Root()
	if cfg.Runtime.Dev {
		rootLog.Info().Msg("developer mode enabled")
	}

	// ---- Storage ----
	store, err := filestore.New(cfg.Data.Dir)
	if err != nil {
		rootLog.Fatal().Err(err).Msg("open data directory")
	}
	choreRepo := filestore.NewChoreRepo(store)
	roomRepo := filestore.NewRoomRepo(store)
	registrationRepo := filestore.NewRegistrationRepo(store)
	roleRepo := filestore.NewRoleRepo(store)
	shoppingRepo := filestore.NewShoppingRepo(store)
	penaltyLog := filestore.NewPenaltyLog(store)
	locker := filestore.NewDirLocker(store, 5*time.Minute)

	// ---- Use cases ----
	ucLog := logs.Named("usecase")
	choreUC := usecase.NewChoreUseCase(choreRepo, roomRepo, penaltyLog, locker, ucLog)
	roomUC := usecase.NewRoomUseCase(roomRepo, registrationRepo, locker, ucLog)
	shoppingUC := usecase.NewShoppingUseCase(shoppingRepo, locker, ucLog)
	roleUC := usecase.NewRoleUseCase(roleRepo, locker, ucLog)

	// ---- Facade ----
	tr, err := i18n.NewTranslator(i18n.LocalesFS, "de")
	if err != nil {
		rootLog.Fatal().Err(err).Msg("load translations")
	}
	facade := application.NewBotFacade(choreUC, roomUC, shoppingUC, roleUC, tr, logs.Named("facade"))

	// ---- Telegram ----
	bot, err := telegram.NewBot(&cfg.Bot, facade, roleUC, logs.Named("telegram"))
	if err != nil {
		rootLog.Fatal().Err(err).Msg("connect to telegram")
	}
	go func() {
		if err := bot.StartPolling(ctx); err != nil {
			rootLog.Error().Err(err).Msg("telegram polling stopped")
		}
	}()

	// ---- Scheduled jobs ----
	reminderAt, err := sched.ParseTimeOfDay(cfg.Sched.ReminderAt)
	if err != nil {
		rootLog.Fatal().Err(err).Msg("sched.reminder_at")
	}
	rotationAt, err := sched.ParseTimeOfDay(cfg.Sched.RotationAt)
	if err != nil {
		rootLog.Fatal().Err(err).Msg("sched.rotation_at")
	}
	schedLog := logs.Named("sched")
	reminder := sched.NewReminderWorker(reminderAt, choreUC, roomRepo, bot, tr, schedLog)
	rotation := sched.NewRotationWorker(rotationAt, choreUC, bot, tr, schedLog)
	go func() { _ = reminder.Run(ctx) }()
	go func() { _ = rotation.Run(ctx) }()

	// ---- Health and metrics ----
	srv := web.NewServer(cfg.Web.Port, logs.Named("web"))
	go func() {
		if err := srv.Start(ctx); err != nil {
			rootLog.Error().Err(err).Msg("ops server stopped")
		}
	}()

	rootLog.Info().Str("data_dir", cfg.Data.Dir).Msg("wohnheimsbot started")

	// ---- Graceful shutdown ----
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	rootLog.Info().Msg("shutdown requested")
	cancel()
	bot.StopPolling()
}
