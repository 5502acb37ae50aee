package reader

import (
	"time"

	"github.com/heartmarshall/lesehilfe/internal/domain"
)

// DefaultNotificationTTL is how long info and success messages stay visible.
const DefaultNotificationTTL = 3 * time.Second

// Notification is a transient message shown to the reader.
type Notification struct {
	ID      int
	Message string
	Kind    domain.NotificationKind
	Created time.Time
}

// Notifications keeps the visible messages in arrival order. Errors stay
// until dismissed; other kinds expire after the TTL.
type Notifications struct {
	ttl    time.Duration
	nextID int
	items  []Notification
}

// NewNotifications creates an empty queue. A non-positive ttl selects
// DefaultNotificationTTL.
func NewNotifications(ttl time.Duration) *Notifications {
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}
	return &Notifications{ttl: ttl}
}

// TTL returns the lifetime of non-error notifications.
func (n *Notifications) TTL() time.Duration { return n.ttl }

// Push adds a notification and returns it.
func (n *Notifications) Push(message string, kind domain.NotificationKind, now time.Time) Notification {
	n.nextID++
	item := Notification{ID: n.nextID, Message: message, Kind: kind, Created: now}
	n.items = append(n.items, item)
	return item
}

// Expire drops every non-sticky notification older than the TTL and
// reports whether anything was removed.
func (n *Notifications) Expire(now time.Time) bool {
	kept := n.items[:0]
	for _, item := range n.items {
		if item.Kind.Sticky() || now.Sub(item.Created) < n.ttl {
			kept = append(kept, item)
		}
	}
	removed := len(kept) != len(n.items)
	n.items = kept
	return removed
}

// Dismiss removes the notification with the given ID.
func (n *Notifications) Dismiss(id int) bool {
	for i, item := range n.items {
		if item.ID == id {
			n.items = append(n.items[:i], n.items[i+1:]...)
			return true
		}
	}
	return false
}

// DismissLatest removes the most recent notification.
func (n *Notifications) DismissLatest() bool {
	if len(n.items) == 0 {
		return false
	}
	n.items = n.items[:len(n.items)-1]
	return true
}

// Active returns a copy of the visible notifications, oldest first.
func (n *Notifications) Active() []Notification {
	out := make([]Notification, len(n.items))
	copy(out, n.items)
	return out
}
