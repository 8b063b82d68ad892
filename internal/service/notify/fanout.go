package notify

import (
	"context"
	"fmt"
	"slices"

	"github.com/allocbot/allocbot-backend/internal/domain"
)

// Message is one computed notification: who hears about a change and what
// they are told. Delivery is the transport's responsibility.
type Message struct {
	Recipient int64
	Text      string
}

// ItemChange describes a completed reservation transition for fan-out.
type ItemChange struct {
	Item    *domain.Item
	Action  domain.HistoryAction
	ActorID int64
	// PreviousOwner is set for steals and forced hand-overs.
	PreviousOwner *int64
}

// ForItemChange computes the notification list for a change: every
// subscriber of the item's type except the actor, plus the dispossessed
// owner on steals when configured. The computation is deterministic: the
// same subscriptions and change always produce the same ordered list.
func (s *Service) ForItemChange(ctx context.Context, change ItemChange) ([]Message, error) {
	recipients, err := s.subs.RecipientsByType(ctx, change.Item.TypeID)
	if err != nil {
		return nil, fmt.Errorf("recipients by type: %w", err)
	}

	dispossessed := change.PreviousOwner != nil &&
		change.Action == domain.HistoryActionSteal &&
		s.notifyStolenOwner

	if dispossessed && !slices.Contains(recipients, *change.PreviousOwner) {
		recipients = append(recipients, *change.PreviousOwner)
		slices.Sort(recipients)
	}

	messages := []Message{}
	for _, recipient := range recipients {
		if recipient == change.ActorID {
			continue
		}
		text := renderChange(change, recipient)
		messages = append(messages, Message{Recipient: recipient, Text: text})
	}

	return messages, nil
}

// renderChange builds the per-recipient text. The dispossessed owner of a
// steal gets a direct wording, everyone else a neutral one.
func renderChange(change ItemChange, recipient int64) string {
	name := change.Item.Name

	switch change.Action {
	case domain.HistoryActionTake:
		if change.Item.Purpose != nil {
			return fmt.Sprintf("user %d took item %q: %s", change.ActorID, name, *change.Item.Purpose)
		}
		return fmt.Sprintf("user %d took item %q", change.ActorID, name)
	case domain.HistoryActionFree:
		return fmt.Sprintf("user %d freed item %q", change.ActorID, name)
	case domain.HistoryActionSteal:
		if change.PreviousOwner != nil && recipient == *change.PreviousOwner {
			return fmt.Sprintf("your item %q was taken over by user %d", name, change.ActorID)
		}
		if change.PreviousOwner != nil {
			return fmt.Sprintf("user %d took over item %q from user %d", change.ActorID, name, *change.PreviousOwner)
		}
		return fmt.Sprintf("user %d took over item %q", change.ActorID, name)
	default:
		return fmt.Sprintf("item %q changed (%s) by user %d", name, change.Action, change.ActorID)
	}
}
