// accept-requests is the maintenance task an administrator runs to approve
// pending move-in requests. It drains registration_requests.json into
// room_assignments.json and exits. It needs the data directory but no
// Telegram token, and it is safe to run while the bot is up: both sides
// serialize writes through the data-directory lock.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"wohnheimsbot/internal/config"
	"wohnheimsbot/internal/infra/filestore"
	"wohnheimsbot/internal/infra/logging"
	"wohnheimsbot/internal/usecase"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	envPath := flag.String("env", "", "optional .env file loaded before the config")
	flag.Parse()

	if *envPath != "" {
		if err := godotenv.Load(*envPath); err != nil {
			log.Printf("env file: %v", err)
			return 1
		}
	} else {
		_ = godotenv.Load()
	}

	cfg, err := config.Load(*cfgPath, false)
	if err != nil {
		log.Printf("config: %v", err)
		return 1
	}

	logs, err := logging.New(cfg.Log)
	if err != nil {
		log.Printf("logging: %v", err)
		return 1
	}
	defer logs.Close()
	taskLog := logs.Named("accept-requests")

	store, err := filestore.New(cfg.Data.Dir)
	if err != nil {
		taskLog.Error().Err(err).Msg("open data directory")
		return 1
	}
	locker := filestore.NewDirLocker(store, 5*time.Minute)
	uc := usecase.NewRegistrationUseCase(
		filestore.NewRegistrationRepo(store),
		filestore.NewRoomRepo(store),
		locker,
		taskLog,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	accepted, err := uc.AcceptAll(ctx)
	if err != nil {
		taskLog.Error().Err(err).Msg("accepting registration requests failed")
		return 1
	}
	if accepted == 0 {
		taskLog.Info().Msg("no pending registration requests")
		return 0
	}
	taskLog.Info().Int("accepted", accepted).Msg("registration requests accepted")
	return 0
}
