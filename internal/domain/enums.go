package domain

// ItemState represents the reservation state of an item.
type ItemState string

const (
	ItemStateFree  ItemState = "FREE"
	ItemStateTaken ItemState = "TAKEN"
)

func (s ItemState) String() string { return string(s) }

func (s ItemState) IsValid() bool {
	switch s {
	case ItemStateFree, ItemStateTaken:
		return true
	}
	return false
}

// HistoryAction represents the kind of mutation recorded in the history log.
type HistoryAction string

const (
	HistoryActionCreate          HistoryAction = "CREATE"
	HistoryActionDelete          HistoryAction = "DELETE"
	HistoryActionTake            HistoryAction = "TAKE"
	HistoryActionFree            HistoryAction = "FREE"
	HistoryActionSteal           HistoryAction = "STEAL"
	HistoryActionAssignType      HistoryAction = "ASSIGN_TYPE"
	HistoryActionAddModerator    HistoryAction = "ADD_MODERATOR"
	HistoryActionRemoveModerator HistoryAction = "REMOVE_MODERATOR"
	HistoryActionImport          HistoryAction = "IMPORT"
	HistoryActionExport          HistoryAction = "EXPORT"
	HistoryActionReset           HistoryAction = "RESET"
)

func (a HistoryAction) String() string { return string(a) }

func (a HistoryAction) IsValid() bool {
	switch a {
	case HistoryActionCreate, HistoryActionDelete, HistoryActionTake,
		HistoryActionFree, HistoryActionSteal, HistoryActionAssignType,
		HistoryActionAddModerator, HistoryActionRemoveModerator,
		HistoryActionImport, HistoryActionExport, HistoryActionReset:
		return true
	}
	return false
}
