package reader

import (
	"testing"
	"time"

	"github.com/heartmarshall/lesehilfe/internal/domain"
)

func TestNotifications_DefaultTTL(t *testing.T) {
	t.Parallel()

	if got := NewNotifications(0).TTL(); got != DefaultNotificationTTL {
		t.Errorf("TTL() = %v, want %v", got, DefaultNotificationTTL)
	}
}

func TestNotifications_ExpireKeepsErrors(t *testing.T) {
	t.Parallel()

	n := NewNotifications(3 * time.Second)
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	n.Push("saved", domain.NotificationSuccess, start)
	n.Push("failed", domain.NotificationError, start)
	n.Push("hint", domain.NotificationInfo, start.Add(2*time.Second))

	if n.Expire(start.Add(2 * time.Second)) {
		t.Error("Expire before TTL removed something")
	}

	if !n.Expire(start.Add(3 * time.Second)) {
		t.Fatal("Expire at TTL removed nothing")
	}
	active := n.Active()
	if len(active) != 2 || active[0].Message != "failed" || active[1].Message != "hint" {
		t.Fatalf("Active() = %+v", active)
	}

	n.Expire(start.Add(time.Hour))
	active = n.Active()
	if len(active) != 1 || active[0].Kind != domain.NotificationError {
		t.Errorf("error notification should stay until dismissed, got %+v", active)
	}
}

func TestNotifications_Dismiss(t *testing.T) {
	t.Parallel()

	n := NewNotifications(time.Second)
	now := time.Now()
	first := n.Push("one", domain.NotificationError, now)
	n.Push("two", domain.NotificationError, now)

	if !n.Dismiss(first.ID) {
		t.Fatal("Dismiss(first) = false")
	}
	if n.Dismiss(first.ID) {
		t.Error("second Dismiss(first) = true")
	}
	if !n.DismissLatest() {
		t.Fatal("DismissLatest() = false")
	}
	if n.DismissLatest() {
		t.Error("DismissLatest() on empty queue = true")
	}
	if len(n.Active()) != 0 {
		t.Errorf("Active() = %+v, want empty", n.Active())
	}
}

func TestNotifications_IDsAreUnique(t *testing.T) {
	t.Parallel()

	n := NewNotifications(time.Second)
	now := time.Now()
	a := n.Push("a", domain.NotificationInfo, now)
	b := n.Push("b", domain.NotificationInfo, now)
	if a.ID == b.ID {
		t.Errorf("IDs collide: %d", a.ID)
	}
}
