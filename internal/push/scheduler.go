package push

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/savrlabs/savr/internal/codec"
	"github.com/savrlabs/savr/internal/expiry"
	"github.com/savrlabs/savr/internal/model"
	"github.com/savrlabs/savr/internal/store"
)

// Scheduler periodically checks each subscribed user's inventory and sends a
// daily digest of items in the urgent expiry tier.
type Scheduler struct {
	mu       sync.RWMutex
	service  *Service
	push     *store.PushStore
	profiles *store.ProfileStore
	logger   *slog.Logger
	interval time.Duration
	now      func() time.Time
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewScheduler creates an expiry digest scheduler.
func NewScheduler(svc *Service, pushStore *store.PushStore, profileStore *store.ProfileStore, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		service:  svc,
		push:     pushStore,
		profiles: profileStore,
		logger:   logger,
		interval: time.Hour,
		now:      time.Now,
	}
}

// Start begins the scheduler loop.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})
	s.mu.Unlock()

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.tick()
			}
		}
	}()
}

// Stop gracefully stops the scheduler.
func (s *Scheduler) Stop() {
	s.mu.RLock()
	cancel := s.cancel
	done := s.done
	s.mu.RUnlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}

func (s *Scheduler) tick() {
	userIDs, err := s.push.ListUserIDs()
	if err != nil {
		s.logger.Error("list subscribed users", "error", err)
		return
	}

	for _, userID := range userIDs {
		s.sendExpiryDigest(userID)
	}

	// Sent-log records older than a month are useless for dedup.
	if err := s.push.CleanupSent(s.now().UTC().AddDate(0, -1, 0)); err != nil {
		s.logger.Warn("cleanup sent log", "error", err)
	}
}

// sendExpiryDigest sends the daily urgent-items digest to one user, at most
// once per calendar day.
func (s *Scheduler) sendExpiryDigest(userID string) {
	today := s.now()
	refID := today.Format("2006-01-02")

	sent, err := s.push.WasSent(userID, model.NotifTypeExpiryDigest, refID)
	if err != nil {
		s.logger.Error("check sent digest", "user", userID, "error", err)
		return
	}
	if sent {
		return
	}

	profile, err := s.profiles.Get(userID)
	if err != nil {
		s.logger.Error("load profile for digest", "user", userID, "error", err)
		return
	}
	if profile == nil {
		return
	}

	items := codec.DecodeInventoryItems(profile.CurrentInventory, today)
	urgent := urgentNames(items)
	if len(urgent) == 0 {
		return
	}

	payload := Payload{
		Title: "Use it before you lose it",
		Body:  digestBody(urgent),
		URL:   "/inventory",
		Tag:   "expiry-digest",
	}

	subs, err := s.push.ListByUser(userID)
	if err != nil {
		s.logger.Error("list subscriptions for digest", "user", userID, "error", err)
		return
	}

	for _, sub := range subs {
		if err := s.service.Send(&sub, payload); err != nil {
			if errors.Is(err, ErrExpired) {
				s.push.DeleteByEndpoint(sub.Endpoint)
			} else {
				s.logger.Warn("send expiry digest", "user", userID, "error", err)
			}
		}
	}

	if err := s.push.RecordSent(userID, model.NotifTypeExpiryDigest, refID); err != nil {
		s.logger.Error("record sent digest", "user", userID, "error", err)
	}
}

func urgentNames(items []model.InventoryItem) []string {
	var names []string
	for _, it := range items {
		if it.Status == expiry.StatusUrgent {
			names = append(names, it.Name)
		}
	}
	return names
}

func digestBody(urgent []string) string {
	switch len(urgent) {
	case 1:
		return fmt.Sprintf("%s expires within 2 days", urgent[0])
	case 2, 3:
		return fmt.Sprintf("%s expire within 2 days", strings.Join(urgent, ", "))
	default:
		return fmt.Sprintf("%s and %d more items expire within 2 days", strings.Join(urgent[:3], ", "), len(urgent)-3)
	}
}
