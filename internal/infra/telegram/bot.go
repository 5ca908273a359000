package telegram

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jpillora/backoff"
	"github.com/rs/zerolog"

	"wohnheimsbot/internal/application"
	"wohnheimsbot/internal/config"
	"wohnheimsbot/internal/infra/metrics"
	"wohnheimsbot/internal/usecase"
)

const sendAttempts = 3

// Bot is the Telegram adapter: it polls for updates concurrently, routes
// commands to the facade and sends the replies. It also implements
// sched.MessageSender for the reminder and rotation workers.
type Bot struct {
	api    *tgbotapi.BotAPI
	cfg    *config.BotConfig
	facade *application.BotFacade
	roles  usecase.RoleUseCase
	log    *zerolog.Logger

	cancelPolling context.CancelFunc
}

func NewBot(cfg *config.BotConfig, facade *application.BotFacade, roles usecase.RoleUseCase, logger *zerolog.Logger) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("bot config is nil")
	}
	if facade == nil {
		return nil, errors.New("bot facade is nil")
	}

	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, err
	}

	blog := logger.With().Str("component", "TelegramBot").Logger()
	return &Bot{
		api:    api,
		cfg:    cfg,
		facade: facade,
		roles:  roles,
		log:    &blog,
	}, nil
}

// StartPolling polls Telegram for updates until ctx is canceled. Updates
// are fanned out to cfg.Workers goroutines.
func (b *Bot) StartPolling(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	ctx, cancel := context.WithCancel(ctx)
	b.cancelPolling = cancel

	var wg sync.WaitGroup
	updateChan := make(chan tgbotapi.Update, 100)

	for i := 0; i < b.cfg.Workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for {
				select {
				case update, ok := <-updateChan:
					if !ok {
						return
					}
					if err := b.handleUpdate(ctx, update); err != nil {
						b.log.Error().Err(err).Int("worker", workerID).Msg("error handling update")
					}
				case <-ctx.Done():
					return
				}
			}
		}(i + 1)
	}

	// Dispatcher: feed updates into updateChan.
	go func() {
		defer close(updateChan)
		for {
			select {
			case update := <-updates:
				select {
				case updateChan <- update:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	b.log.Info().Str("username", b.api.Self.UserName).Int("workers", b.cfg.Workers).Msg("polling for updates")
	<-ctx.Done()
	b.api.StopReceivingUpdates()
	wg.Wait()
	return nil
}

// StopPolling stops the polling loop gracefully.
func (b *Bot) StopPolling() {
	if b.cancelPolling != nil {
		b.cancelPolling()
	}
}

// SendToUser sends a text directly to a user's private chat. The userID is
// the decimal Telegram ID the repositories store.
func (b *Bot) SendToUser(ctx context.Context, userID string, text string) error {
	chatID, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return errors.New("invalid user id: " + userID)
	}
	return b.send(ctx, chatID, text)
}

// send delivers a message, retrying transient Telegram errors with
// exponential backoff.
func (b *Bot) send(ctx context.Context, chatID int64, text string) error {
	bo := &backoff.Backoff{Min: 250 * time.Millisecond, Max: 4 * time.Second, Factor: 2, Jitter: true}

	var err error
	for attempt := 0; attempt < sendAttempts; attempt++ {
		if attempt > 0 {
			metrics.IncSendRetry()
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(bo.Duration()):
			}
		}
		_, err = b.api.Send(tgbotapi.NewMessage(chatID, text))
		if err == nil {
			return nil
		}
		b.log.Warn().Err(err).Int64("chat_id", chatID).Int("attempt", attempt+1).Msg("send failed")
	}
	return err
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) error {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return nil
	}
	userID := strconv.FormatInt(msg.From.ID, 10)

	// Group chats are for residents, not for bot chatter: anything a
	// non-privileged user sends there gets removed and answered privately.
	if msg.Chat != nil && msg.Chat.ID < 0 {
		if censored, err := b.censorGroupMessage(ctx, msg, userID); err != nil || censored {
			return err
		}
	}

	if !msg.IsCommand() {
		if msg.Chat != nil && msg.Chat.ID < 0 {
			return nil
		}
		return b.send(ctx, msg.Chat.ID, b.facade.HandleUnknown(ctx))
	}

	command := msg.Command()
	reply := b.dispatch(ctx, command, userID, msg.CommandArguments())

	outcome := "ok"
	err := b.send(ctx, msg.Chat.ID, reply)
	if err != nil {
		outcome = "send_error"
	}
	metrics.IncUpdateHandled(command, outcome)
	return err
}

// censorGroupMessage deletes a non-privileged user's group message and
// tells them to use the private chat. Returns true when the update is
// fully handled.
func (b *Bot) censorGroupMessage(ctx context.Context, msg *tgbotapi.Message, userID string) (bool, error) {
	privileged, err := b.roles.IsPrivileged(ctx, userID)
	if err != nil {
		return false, err
	}
	if privileged {
		return false, nil
	}

	if _, err := b.api.Request(tgbotapi.NewDeleteMessage(msg.Chat.ID, msg.MessageID)); err != nil {
		b.log.Warn().Err(err).Int64("chat_id", msg.Chat.ID).Msg("could not delete group message")
	}
	if err := b.send(ctx, msg.From.ID, b.facade.TellPrivate(ctx)); err != nil {
		b.log.Warn().Err(err).Str("user_id", userID).Msg("could not reach user privately")
	}
	metrics.IncUpdateHandled("censor", "ok")
	return true, nil
}

func (b *Bot) dispatch(ctx context.Context, command, userID, args string) string {
	switch command {
	case "start":
		return b.facade.HandleStart(ctx)
	case "hilfe", "help":
		return b.facade.HandleHelp(ctx)
	case "aufgaben":
		return b.facade.HandleChores(ctx)
	case "meindienst":
		return b.facade.HandleMyChore(ctx, userID)
	case "erledigt":
		return b.facade.HandleDone(ctx, userID)
	case "movein":
		return b.facade.HandleMoveIn(ctx, userID, args)
	case "moveout":
		return b.facade.HandleMoveOut(ctx, userID)
	case "einkauf":
		return b.facade.HandleShoppingAdd(ctx, userID, args)
	case "einkaufsliste":
		return b.facade.HandleShoppingList(ctx)
	case "einkauf_leeren":
		return b.facade.HandleShoppingClear(ctx, userID)
	default:
		return b.facade.HandleUnknown(ctx)
	}
}
