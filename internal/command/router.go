package command

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/allocbot/allocbot-backend/internal/config"
	"github.com/allocbot/allocbot-backend/internal/domain"
	"github.com/allocbot/allocbot-backend/internal/service/admin"
	"github.com/allocbot/allocbot-backend/internal/service/history"
	"github.com/allocbot/allocbot-backend/internal/service/notify"
	"github.com/allocbot/allocbot-backend/internal/service/registry"
	"github.com/allocbot/allocbot-backend/internal/service/reservation"
	"github.com/allocbot/allocbot-backend/pkg/ctxutil"
)

type registryService interface {
	CreateType(ctx context.Context, input registry.CreateTypeInput) (*domain.ItemType, error)
	DeleteType(ctx context.Context, input registry.DeleteTypeInput) error
	CreateGroup(ctx context.Context, input registry.CreateGroupInput) (*domain.Group, error)
	DeleteGroup(ctx context.Context, input registry.DeleteGroupInput) error
	CreateItem(ctx context.Context, input registry.CreateItemInput) (*domain.Item, error)
	DeleteItem(ctx context.Context, input registry.DeleteItemInput) error
	AssignTypeGroup(ctx context.Context, input registry.AssignTypeGroupInput) (*domain.Item, error)
	GetItem(ctx context.Context, input registry.GetItemInput) (*domain.Item, error)
	ListItems(ctx context.Context, input registry.ListItemsInput) (*registry.ItemPage, error)
	ListTypes(ctx context.Context) ([]domain.ItemType, error)
	ListGroups(ctx context.Context) ([]domain.Group, error)
}

type reservationService interface {
	Take(ctx context.Context, input reservation.TakeInput) (*domain.Item, error)
	Free(ctx context.Context, input reservation.FreeInput) (*domain.Item, error)
	Steal(ctx context.Context, input reservation.StealInput) (*reservation.StealResult, error)
	AssignOwner(ctx context.Context, input reservation.AssignOwnerInput) (*reservation.AssignResult, error)
}

type notifyService interface {
	Subscribe(ctx context.Context, input notify.SubscribeInput) error
	Unsubscribe(ctx context.Context, input notify.SubscribeInput) error
	Subscriptions(ctx context.Context) ([]domain.Subscription, error)
	ForItemChange(ctx context.Context, change notify.ItemChange) ([]notify.Message, error)
}

type historyService interface {
	Query(ctx context.Context, input history.QueryInput) ([]domain.HistoryEntry, error)
	MyHistory(ctx context.Context, input history.MyHistoryInput) ([]domain.HistoryEntry, error)
}

type adminService interface {
	AddModerator(ctx context.Context, input admin.ModeratorInput) (bool, error)
	RemoveModerator(ctx context.Context, input admin.ModeratorInput) error
	ListModerators(ctx context.Context) ([]int64, error)
	Export(ctx context.Context, input admin.ExportInput) (*admin.Dump, error)
	Import(ctx context.Context, dump *admin.Dump) error
	Reset(ctx context.Context) error
}

type moderatorLookup interface {
	IsModerator(ctx context.Context, userID int64) (bool, error)
}

// Router is the command-level boundary: it resolves the actor's role,
// dispatches to the right service and renders the result plus the
// notification list. The chat transport and the replay tool both drive it.
type Router struct {
	log         *slog.Logger
	registry    registryService
	reservation reservationService
	notify      notifyService
	history     historyService
	admin       adminService
	moderators  moderatorLookup
	admins      config.AdminConfig
	paging      config.RegistryConfig
}

func NewRouter(
	log *slog.Logger,
	registrySvc registryService,
	reservationSvc reservationService,
	notifySvc notifyService,
	historySvc historyService,
	adminSvc adminService,
	moderators moderatorLookup,
	admins config.AdminConfig,
	paging config.RegistryConfig,
) *Router {
	return &Router{
		log:         log.With(slog.String("component", "command_router")),
		registry:    registrySvc,
		reservation: reservationSvc,
		notify:      notifySvc,
		history:     historySvc,
		admin:       adminSvc,
		moderators:  moderators,
		admins:      admins,
		paging:      paging,
	}
}

// pageLimit resolves the limit for a listing command: absent means the
// configured page size, anything larger than the maximum is cut down.
// Negative values pass through so the services report them as invalid.
func (r *Router) pageLimit(limit int) int {
	if limit == 0 {
		return r.paging.ListPageSize
	}
	if limit > r.paging.ListMaxPageSize {
		return r.paging.ListMaxPageSize
	}
	return limit
}

// Catalog is the payload of a types listing: both halves of the taxonomy.
type Catalog struct {
	Types  []domain.ItemType
	Groups []domain.Group
}

// Execute runs one command under the actor's current role. The role is
// resolved fresh for every command: revoking a moderator takes effect on
// their next command, never later.
func (r *Router) Execute(ctx context.Context, cmd Command) Result {
	if cmd.ActorID <= 0 {
		return errResult(domain.NewValidationError("actor", "required"))
	}

	role, err := r.resolveRole(ctx, cmd.ActorID)
	if err != nil {
		return errResult(err)
	}

	ctx = ctxutil.WithActorID(ctx, cmd.ActorID)
	ctx = ctxutil.WithRole(ctx, role)

	res := r.dispatch(ctx, cmd)
	if res.Err != nil {
		r.log.InfoContext(ctx, "command failed",
			slog.Int64("actor_id", cmd.ActorID),
			slog.String("action", cmd.Action.String()),
			slog.String("error", res.Err.Error()),
		)
	}
	return res
}

func (r *Router) resolveRole(ctx context.Context, actorID int64) (domain.Role, error) {
	if r.admins.IsAdmin(actorID) {
		return domain.RoleAdmin, nil
	}
	isModerator, err := r.moderators.IsModerator(ctx, actorID)
	if err != nil {
		return domain.RoleUser, err
	}
	if isModerator {
		return domain.RoleModerator, nil
	}
	return domain.RoleUser, nil
}

func (r *Router) dispatch(ctx context.Context, cmd Command) Result {
	switch cmd.Action {
	case domain.ActionListItems:
		return r.listItems(ctx, cmd)
	case domain.ActionGetItem:
		return payloadResult(r.registry.GetItem(ctx, registry.GetItemInput{ItemRef: cmd.Target}))
	case domain.ActionListTypes:
		return r.listTypes(ctx)
	case domain.ActionTake:
		return r.take(ctx, cmd)
	case domain.ActionFree:
		return r.free(ctx, cmd)
	case domain.ActionSteal:
		return r.steal(ctx, cmd)
	case domain.ActionAssignOwner:
		return r.assignOwner(ctx, cmd)
	case domain.ActionMyHistory:
		return r.myHistory(ctx, cmd)
	case domain.ActionCreateItem:
		return r.createItem(ctx, cmd)
	case domain.ActionDeleteItem:
		return emptyResult(r.registry.DeleteItem(ctx, registry.DeleteItemInput{ItemRef: cmd.Target}))
	case domain.ActionAssignType:
		return r.assignTypeGroup(ctx, cmd)
	case domain.ActionCreateGroup:
		return payloadResult(r.registry.CreateGroup(ctx, registry.CreateGroupInput{Name: cmd.Target}))
	case domain.ActionDeleteGroup:
		return r.deleteGroup(ctx, cmd)
	case domain.ActionSubscribe:
		return r.subscribe(ctx, cmd, r.notify.Subscribe)
	case domain.ActionUnsubscribe:
		return r.subscribe(ctx, cmd, r.notify.Unsubscribe)
	case domain.ActionCreateType:
		return r.createType(ctx, cmd)
	case domain.ActionDeleteType:
		return r.deleteType(ctx, cmd)
	case domain.ActionAddModerator:
		return r.addModerator(ctx, cmd)
	case domain.ActionRemoveModerator:
		return r.removeModerator(ctx, cmd)
	case domain.ActionViewHistory:
		return r.viewHistory(ctx, cmd)
	case domain.ActionExport:
		return r.export(ctx, cmd)
	case domain.ActionImport:
		return r.importDump(ctx, cmd)
	case domain.ActionReset:
		return emptyResult(r.admin.Reset(ctx))
	default:
		return errResult(domain.NewValidationError("action", "unknown action"))
	}
}

func (r *Router) listItems(ctx context.Context, cmd Command) Result {
	groupID, err := cmd.int64Param("group_id")
	if err != nil {
		return errResult(err)
	}
	typeID, err := cmd.int64Param("type_id")
	if err != nil {
		return errResult(err)
	}
	ownerID, err := cmd.int64Param("owner_id")
	if err != nil {
		return errResult(err)
	}
	onlyFree, err := cmd.boolParam("only_free")
	if err != nil {
		return errResult(err)
	}
	limit, err := cmd.intParam("limit")
	if err != nil {
		return errResult(err)
	}
	offset, err := cmd.intParam("offset")
	if err != nil {
		return errResult(err)
	}

	return payloadResult(r.registry.ListItems(ctx, registry.ListItemsInput{
		GroupID:  groupID,
		TypeID:   typeID,
		OwnerID:  ownerID,
		OnlyFree: onlyFree,
		Limit:    r.pageLimit(limit),
		Offset:   offset,
	}))
}

func (r *Router) listTypes(ctx context.Context) Result {
	types, err := r.registry.ListTypes(ctx)
	if err != nil {
		return errResult(err)
	}
	groups, err := r.registry.ListGroups(ctx)
	if err != nil {
		return errResult(err)
	}
	return Result{Payload: &Catalog{Types: types, Groups: groups}}
}

func (r *Router) take(ctx context.Context, cmd Command) Result {
	item, err := r.reservation.Take(ctx, reservation.TakeInput{
		ItemRef: cmd.Target,
		Purpose: cmd.param("purpose"),
	})
	if err != nil {
		return errResult(err)
	}
	return Result{
		Payload: item,
		Notifications: r.fanout(ctx, notify.ItemChange{
			Item:    item,
			Action:  domain.HistoryActionTake,
			ActorID: cmd.ActorID,
		}),
	}
}

func (r *Router) free(ctx context.Context, cmd Command) Result {
	item, err := r.reservation.Free(ctx, reservation.FreeInput{ItemRef: cmd.Target})
	if err != nil {
		return errResult(err)
	}
	return Result{
		Payload: item,
		Notifications: r.fanout(ctx, notify.ItemChange{
			Item:    item,
			Action:  domain.HistoryActionFree,
			ActorID: cmd.ActorID,
		}),
	}
}

func (r *Router) steal(ctx context.Context, cmd Command) Result {
	res, err := r.reservation.Steal(ctx, reservation.StealInput{
		ItemRef: cmd.Target,
		Purpose: cmd.param("purpose"),
	})
	if err != nil {
		return errResult(err)
	}
	return Result{
		Payload: res,
		Notifications: r.fanout(ctx, notify.ItemChange{
			Item:          res.Item,
			Action:        domain.HistoryActionSteal,
			ActorID:       cmd.ActorID,
			PreviousOwner: &res.PreviousOwner,
		}),
	}
}

func (r *Router) assignOwner(ctx context.Context, cmd Command) Result {
	ownerID, err := cmd.int64Param("owner_id")
	if err != nil {
		return errResult(err)
	}
	if ownerID == nil {
		return errResult(domain.NewValidationError("owner_id", "required"))
	}

	res, err := r.reservation.AssignOwner(ctx, reservation.AssignOwnerInput{
		ItemRef: cmd.Target,
		OwnerID: *ownerID,
		Purpose: cmd.strParamPtr("purpose"),
	})
	if err != nil {
		return errResult(err)
	}
	// The hand-over reads as a take by the new owner, so the fan-out is
	// attributed to them, not to the assigning moderator.
	return Result{
		Payload: res,
		Notifications: r.fanout(ctx, notify.ItemChange{
			Item:          res.Item,
			Action:        domain.HistoryActionTake,
			ActorID:       *ownerID,
			PreviousOwner: res.PreviousOwner,
		}),
	}
}

func (r *Router) myHistory(ctx context.Context, cmd Command) Result {
	limit, err := cmd.intParam("limit")
	if err != nil {
		return errResult(err)
	}
	offset, err := cmd.intParam("offset")
	if err != nil {
		return errResult(err)
	}
	return payloadResult(r.history.MyHistory(ctx, history.MyHistoryInput{Limit: r.pageLimit(limit), Offset: offset}))
}

func (r *Router) createItem(ctx context.Context, cmd Command) Result {
	typeID, err := cmd.int64Param("type_id")
	if err != nil {
		return errResult(err)
	}
	if typeID == nil {
		return errResult(domain.NewValidationError("type_id", "required"))
	}
	groupID, err := cmd.int64Param("group_id")
	if err != nil {
		return errResult(err)
	}

	return payloadResult(r.registry.CreateItem(ctx, registry.CreateItemInput{
		Name:        cmd.Target,
		TypeID:      *typeID,
		GroupID:     groupID,
		Description: cmd.strParamPtr("description"),
	}))
}

func (r *Router) assignTypeGroup(ctx context.Context, cmd Command) Result {
	typeID, err := cmd.int64Param("type_id")
	if err != nil {
		return errResult(err)
	}
	groupID, err := cmd.int64Param("group_id")
	if err != nil {
		return errResult(err)
	}
	// An explicit empty group_id detaches the item from its group.
	_, setGroup := cmd.Params["group_id"]

	return payloadResult(r.registry.AssignTypeGroup(ctx, registry.AssignTypeGroupInput{
		ItemRef:  cmd.Target,
		TypeID:   typeID,
		SetGroup: setGroup,
		GroupID:  groupID,
	}))
}

func (r *Router) deleteGroup(ctx context.Context, cmd Command) Result {
	groupID, err := cmd.targetInt64("group_id")
	if err != nil {
		return errResult(err)
	}
	return emptyResult(r.registry.DeleteGroup(ctx, registry.DeleteGroupInput{GroupID: groupID}))
}

func (r *Router) subscribe(ctx context.Context, cmd Command, call func(context.Context, notify.SubscribeInput) error) Result {
	typeID, err := cmd.targetInt64("type_id")
	if err != nil {
		return errResult(err)
	}
	return emptyResult(call(ctx, notify.SubscribeInput{TypeID: typeID}))
}

func (r *Router) createType(ctx context.Context, cmd Command) Result {
	requiresApproval, err := cmd.boolParam("requires_approval")
	if err != nil {
		return errResult(err)
	}
	return payloadResult(r.registry.CreateType(ctx, registry.CreateTypeInput{
		Name:             cmd.Target,
		RequiresApproval: requiresApproval,
	}))
}

func (r *Router) deleteType(ctx context.Context, cmd Command) Result {
	typeID, err := cmd.targetInt64("type_id")
	if err != nil {
		return errResult(err)
	}
	return emptyResult(r.registry.DeleteType(ctx, registry.DeleteTypeInput{TypeID: typeID}))
}

func (r *Router) addModerator(ctx context.Context, cmd Command) Result {
	userID, err := cmd.targetInt64("user_id")
	if err != nil {
		return errResult(err)
	}
	added, err := r.admin.AddModerator(ctx, admin.ModeratorInput{UserID: userID})
	if err != nil {
		return errResult(err)
	}
	return Result{Payload: added}
}

func (r *Router) removeModerator(ctx context.Context, cmd Command) Result {
	userID, err := cmd.targetInt64("user_id")
	if err != nil {
		return errResult(err)
	}
	return emptyResult(r.admin.RemoveModerator(ctx, admin.ModeratorInput{UserID: userID}))
}

func (r *Router) viewHistory(ctx context.Context, cmd Command) Result {
	actorID, err := cmd.int64Param("actor_id")
	if err != nil {
		return errResult(err)
	}
	itemID, err := cmd.int64Param("item_id")
	if err != nil {
		return errResult(err)
	}
	from, err := cmd.timeParam("from")
	if err != nil {
		return errResult(err)
	}
	to, err := cmd.timeParam("to")
	if err != nil {
		return errResult(err)
	}
	limit, err := cmd.intParam("limit")
	if err != nil {
		return errResult(err)
	}
	offset, err := cmd.intParam("offset")
	if err != nil {
		return errResult(err)
	}

	var action *domain.HistoryAction
	if raw := cmd.param("action"); raw != "" {
		a := domain.HistoryAction(raw)
		action = &a
	}

	return payloadResult(r.history.Query(ctx, history.QueryInput{
		ActorID: actorID,
		Action:  action,
		ItemID:  itemID,
		From:    from,
		To:      to,
		Limit:   r.pageLimit(limit),
		Offset:  offset,
	}))
}

func (r *Router) export(ctx context.Context, cmd Command) Result {
	includeHistory, err := cmd.boolParam("include_history")
	if err != nil {
		return errResult(err)
	}
	return payloadResult(r.admin.Export(ctx, admin.ExportInput{IncludeHistory: includeHistory}))
}

func (r *Router) importDump(ctx context.Context, cmd Command) Result {
	raw := cmd.param("dump")
	if raw == "" {
		return errResult(domain.NewValidationError("dump", "required"))
	}
	var dump admin.Dump
	if err := json.Unmarshal([]byte(raw), &dump); err != nil {
		return errResult(domain.NewValidationError("dump", "malformed JSON"))
	}
	return emptyResult(r.admin.Import(ctx, &dump))
}

// fanout computes the notification list for a committed change. A fan-out
// failure never fails the command: the change is already durable, so the
// error is logged and the notifications are dropped.
func (r *Router) fanout(ctx context.Context, change notify.ItemChange) []notify.Message {
	messages, err := r.notify.ForItemChange(ctx, change)
	if err != nil {
		r.log.WarnContext(ctx, "notification fan-out failed",
			slog.Int64("item_id", change.Item.ID),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return messages
}

func errResult(err error) Result { return Result{Err: err} }

func payloadResult[T any](payload T, err error) Result {
	if err != nil {
		return errResult(err)
	}
	return Result{Payload: payload}
}

func emptyResult(err error) Result {
	if err != nil {
		return errResult(err)
	}
	return Result{}
}
