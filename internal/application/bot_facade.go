package application

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"wohnheimsbot/internal/domain"
	"wohnheimsbot/internal/infra/i18n"
	"wohnheimsbot/internal/usecase"
)

// BotFacade composes the use cases into per-command reply strings. Keeping
// the methods string-valued means the Telegram adapter just forwards them
// to the chat.
type BotFacade struct {
	ChoreUC    usecase.ChoreUseCase
	RoomUC     usecase.RoomUseCase
	ShoppingUC usecase.ShoppingUseCase
	RoleUC     usecase.RoleUseCase

	tr  *i18n.Translator
	log *zerolog.Logger
	now func() time.Time
}

func NewBotFacade(
	choreUC usecase.ChoreUseCase,
	roomUC usecase.RoomUseCase,
	shoppingUC usecase.ShoppingUseCase,
	roleUC usecase.RoleUseCase,
	tr *i18n.Translator,
	logger *zerolog.Logger,
) *BotFacade {
	return &BotFacade{
		ChoreUC:    choreUC,
		RoomUC:     roomUC,
		ShoppingUC: shoppingUC,
		RoleUC:     roleUC,
		tr:         tr,
		log:        logger,
		now:        time.Now,
	}
}

func (b *BotFacade) week() int {
	_, week := b.now().ISOWeek()
	return week
}

// HandleStart returns the welcome message.
func (b *BotFacade) HandleStart(ctx context.Context) string {
	return b.tr.T("start_message")
}

// HandleHelp returns the command overview.
func (b *BotFacade) HandleHelp(ctx context.Context) string {
	return b.tr.T("help_text")
}

// HandleChores lists every room's chore for the current week.
func (b *BotFacade) HandleChores(ctx context.Context) string {
	plan, err := b.ChoreUC.PlanForWeek(ctx, b.week())
	if err != nil {
		b.log.Error().Err(err).Msg("load week plan")
		return b.tr.T("error_generic")
	}
	return b.tr.T("chores_header") + "\n\n" + plan.String()
}

// HandleMyChore shows the user's own chore and its status.
func (b *BotFacade) HandleMyChore(ctx context.Context, userID string) string {
	status, err := b.ChoreUC.ChoreOf(ctx, userID, b.week())
	switch {
	case err == nil:
		return b.tr.T("your_chore", status.String())
	case errors.Is(err, domain.ErrFreeWeek):
		return b.tr.T("free_week_message")
	case errors.Is(err, domain.ErrNoRoom):
		return b.tr.T("error_no_room")
	default:
		b.log.Error().Err(err).Str("user_id", userID).Msg("look up chore")
		return b.tr.T("error_generic")
	}
}

// HandleDone marks the user's chore as completed.
func (b *BotFacade) HandleDone(ctx context.Context, userID string) string {
	chore, err := b.ChoreUC.MarkDone(ctx, userID, b.week())
	switch {
	case err == nil:
		return b.tr.T("task_completed", chore.String())
	case errors.Is(err, domain.ErrNoRoom):
		return b.tr.T("error_no_room")
	case errors.Is(err, domain.ErrNotFound):
		return b.tr.T("error_room_not_found")
	case errors.Is(err, domain.ErrAlreadyCompleted):
		return b.tr.T("error_already_completed")
	case errors.Is(err, domain.ErrFreeWeek):
		return b.tr.T("free_week_message")
	default:
		b.log.Error().Err(err).Str("user_id", userID).Msg("mark chore done")
		return b.tr.T("error_generic")
	}
}

// HandleMoveIn files a registration request for the given room argument.
func (b *BotFacade) HandleMoveIn(ctx context.Context, userID, args string) string {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return b.tr.T("move_in_usage")
	}
	room, err := parseRoom(fields[0])
	if err != nil {
		return b.tr.T("invalid_room")
	}

	err = b.RoomUC.MoveIn(ctx, userID, room)
	switch {
	case err == nil:
		return b.tr.T("move_in_requested", room)
	case errors.Is(err, domain.ErrInvalidRoom):
		return b.tr.T("invalid_room")
	case errors.Is(err, domain.ErrRoomRequested):
		return b.tr.T("move_in_room_occupied")
	default:
		b.log.Error().Err(err).Str("user_id", userID).Int("room", room).Msg("file registration request")
		return b.tr.T("error_generic")
	}
}

// HandleMoveOut removes the user's room assignment.
func (b *BotFacade) HandleMoveOut(ctx context.Context, userID string) string {
	room, err := b.RoomUC.MoveOut(ctx, userID)
	switch {
	case err == nil:
		return b.tr.T("move_out_success", room)
	case errors.Is(err, domain.ErrNoRoom):
		return b.tr.T("move_out_failed")
	default:
		b.log.Error().Err(err).Str("user_id", userID).Msg("move out")
		return b.tr.T("error_generic")
	}
}

// HandleShoppingAdd appends an item to the shared shopping list.
func (b *BotFacade) HandleShoppingAdd(ctx context.Context, userID, args string) string {
	item := strings.TrimSpace(args)
	if item == "" {
		return b.tr.T("shopping_usage")
	}
	if err := b.ShoppingUC.Add(ctx, item); err != nil {
		b.log.Error().Err(err).Str("user_id", userID).Msg("add shopping item")
		return b.tr.T("error_generic")
	}
	return b.tr.T("shopping_added", item)
}

// HandleShoppingList shows the shared shopping list.
func (b *BotFacade) HandleShoppingList(ctx context.Context) string {
	items, err := b.ShoppingUC.List(ctx)
	if err != nil {
		b.log.Error().Err(err).Msg("load shopping list")
		return b.tr.T("error_generic")
	}
	if len(items) == 0 {
		return b.tr.T("shopping_empty")
	}
	sb := strings.Builder{}
	sb.WriteString(b.tr.T("shopping_header"))
	for _, item := range items {
		sb.WriteString("\n- ")
		sb.WriteString(item)
	}
	return sb.String()
}

// HandleShoppingClear empties the shopping list; privileged users only.
func (b *BotFacade) HandleShoppingClear(ctx context.Context, userID string) string {
	if err := b.RoleUC.RequirePrivileged(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return b.tr.T("not_authorized")
		}
		b.log.Error().Err(err).Str("user_id", userID).Msg("check role")
		return b.tr.T("error_generic")
	}
	if err := b.ShoppingUC.Clear(ctx); err != nil {
		b.log.Error().Err(err).Msg("clear shopping list")
		return b.tr.T("error_generic")
	}
	return b.tr.T("shopping_cleared")
}

// HandleUnknown answers anything that is not a known command.
func (b *BotFacade) HandleUnknown(ctx context.Context) string {
	return b.tr.T("unknown_command")
}

// TellPrivate asks a user to move the conversation out of the group chat.
func (b *BotFacade) TellPrivate(ctx context.Context) string {
	return b.tr.T("tell_private")
}

// PenaltyMessage renders the notification for an unfinished chore.
func (b *BotFacade) PenaltyMessage(status string) string {
	return b.tr.T("penalty_notification", status)
}

func parseRoom(s string) (int, error) {
	room, err := strconv.Atoi(s)
	if err != nil {
		return 0, domain.ErrInvalidRoom
	}
	return room, nil
}
