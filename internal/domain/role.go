package domain

// Role is a capability level, not a stored entity. Admin membership comes
// from configuration, moderator membership from the registry; everyone else
// is a plain user.
type Role string

const (
	RoleUser      Role = "USER"
	RoleModerator Role = "MODERATOR"
	RoleAdmin     Role = "ADMIN"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// level orders roles so that higher roles inherit lower-role capabilities.
func (r Role) level() int {
	switch r {
	case RoleAdmin:
		return 2
	case RoleModerator:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether r grants at least the capabilities of other.
func (r Role) AtLeast(other Role) bool { return r.level() >= other.level() }

// Action identifies a routed command for permission checks.
type Action string

const (
	ActionListItems       Action = "LIST_ITEMS"
	ActionGetItem         Action = "GET_ITEM"
	ActionListTypes       Action = "LIST_TYPES"
	ActionTake            Action = "TAKE"
	ActionFree            Action = "FREE"
	ActionSteal           Action = "STEAL"
	ActionMyHistory       Action = "MY_HISTORY"
	ActionCreateItem      Action = "CREATE_ITEM"
	ActionDeleteItem      Action = "DELETE_ITEM"
	ActionAssignType      Action = "ASSIGN_TYPE"
	ActionAssignOwner     Action = "ASSIGN_OWNER"
	ActionCreateGroup     Action = "CREATE_GROUP"
	ActionDeleteGroup     Action = "DELETE_GROUP"
	ActionSubscribe       Action = "SUBSCRIBE"
	ActionUnsubscribe     Action = "UNSUBSCRIBE"
	ActionCreateType      Action = "CREATE_TYPE"
	ActionDeleteType      Action = "DELETE_TYPE"
	ActionAddModerator    Action = "ADD_MODERATOR"
	ActionRemoveModerator Action = "REMOVE_MODERATOR"
	ActionViewHistory     Action = "VIEW_HISTORY"
	ActionExport          Action = "EXPORT"
	ActionImport          Action = "IMPORT"
	ActionReset           Action = "RESET"
)

func (a Action) String() string { return string(a) }

// minRoleByAction is the explicit permission table: the lowest role allowed
// to perform each action. Higher roles inherit via Role.AtLeast.
var minRoleByAction = map[Action]Role{
	ActionListItems:   RoleUser,
	ActionGetItem:     RoleUser,
	ActionListTypes:   RoleUser,
	ActionTake:        RoleUser,
	ActionFree:        RoleUser,
	ActionSteal:       RoleUser,
	ActionMyHistory:   RoleUser,

	ActionCreateItem:  RoleModerator,
	ActionDeleteItem:  RoleModerator,
	ActionAssignType:  RoleModerator,
	ActionAssignOwner: RoleModerator,
	ActionCreateGroup: RoleModerator,
	ActionDeleteGroup: RoleModerator,
	ActionSubscribe:   RoleModerator,
	ActionUnsubscribe: RoleModerator,

	ActionCreateType:      RoleAdmin,
	ActionDeleteType:      RoleAdmin,
	ActionAddModerator:    RoleAdmin,
	ActionRemoveModerator: RoleAdmin,
	ActionViewHistory:     RoleAdmin,
	ActionExport:          RoleAdmin,
	ActionImport:          RoleAdmin,
	ActionReset:           RoleAdmin,
}

// Allowed reports whether the role may perform the action. Unknown actions
// are denied. Denial is an expected outcome, reported to the actor as
// ErrPermissionDenied by the caller.
func Allowed(role Role, action Action) bool {
	min, ok := minRoleByAction[action]
	if !ok {
		return false
	}
	return role.AtLeast(min)
}
