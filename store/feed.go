package store

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/leftovermart/client-go/models"
)

// AddEvent inserts a feed entry into the cache, overwriting any cached
// version with the same id. An update whose lastModified is older than the
// cached one is discarded: lastModified never regresses for an id.
func (s *Store) AddEvent(event models.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.events[event.ID]; ok {
		if models.TimestampAfter(existing.LastModified, event.LastModified) {
			s.logger.Debug().Int("event_id", event.ID).Msg("discarding stale event update")
			return
		}
	}
	s.events[event.ID] = event
}

// Event returns the cached feed entry with the given id.
func (s *Store) Event(id int) (models.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	event, ok := s.events[id]
	return event, ok
}

// Events returns every cached feed entry, newest created first.
func (s *Store) Events() []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedEventsLocked(nil)
}

// EventsByTags returns the cached feed entries carrying one of the given
// tags, newest created first. An empty tag set means no filtering.
func (s *Store) EventsByTags(tags []models.EventTag) []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedEventsLocked(tags)
}

func (s *Store) sortedEventsLocked(tags []models.EventTag) []models.Event {
	wanted := make(map[models.EventTag]bool, len(tags))
	for _, tag := range tags {
		wanted[tag] = true
	}

	events := make([]models.Event, 0, len(s.events))
	for _, event := range s.events {
		if len(wanted) > 0 && !wanted[event.Tag] {
			continue
		}
		events = append(events, event)
	}
	sort.Slice(events, func(i, j int) bool {
		if events[i].Created == events[j].Created {
			return events[i].ID > events[j].ID
		}
		return models.TimestampAfter(events[i].Created, events[j].Created)
	})
	return events
}

// Page slices a page (1-indexed) out of an event list.
func Page(events []models.Event, page, resultsPerPage int) []models.Event {
	if page < 1 || resultsPerPage < 1 {
		return nil
	}
	start := (page - 1) * resultsPerPage
	if start >= len(events) {
		return nil
	}
	end := start + resultsPerPage
	if end > len(events) {
		end = len(events)
	}
	return events[start:end]
}

// RefreshEventFeed fetches the events modified since the newest cached
// lastModified timestamp (the whole feed when the cache is empty) and merges
// them into the cache by id. A failed refresh leaves the cache unchanged;
// refreshes are transient and retried on the next cycle.
func (s *Store) RefreshEventFeed(ctx context.Context) error {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return errors.New("no user logged in")
	}
	userID := s.user.ID
	var newest string
	for _, event := range s.events {
		if newest == "" || models.TimestampAfter(event.LastModified, newest) {
			newest = event.LastModified
		}
	}
	s.mu.Unlock()

	events, err := s.api.GetEvents(ctx, userID, newest)
	if err != nil {
		s.logger.Warn().Err(err).Int("user_id", userID).Msg("event feed refresh failed")
		return err
	}

	for _, event := range events {
		s.AddEvent(event)
	}
	return nil
}

// StageEventForDeletion marks a feed entry for removal and starts the grace
// timer. No backend call is made until the grace period elapses or the
// deletion is finalized explicitly; staging an already-staged id is a no-op.
func (s *Store) StageEventForDeletion(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.staged[id]; ok {
		return
	}
	staged := &stagedDeletion{stagedAt: time.Now()}
	staged.timer = time.AfterFunc(s.grace, func() {
		if err := s.DeleteStagedEvent(context.Background(), id); err != nil {
			s.logger.Warn().Err(err).Int("event_id", id).Msg("grace period deletion failed")
		}
	})
	s.staged[id] = staged
}

// UnstageEventForDeletion undoes a staged deletion before the grace period
// elapses. Cancels the timer; no backend call is made.
func (s *Store) UnstageEventForDeletion(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged, ok := s.staged[id]
	if !ok {
		return
	}
	if staged.timer != nil {
		staged.timer.Stop()
	}
	delete(s.staged, id)
}

// StagedEventIDs returns the ids currently staged for deletion, ascending.
func (s *Store) StagedEventIDs() []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int, 0, len(s.staged))
	for id := range s.staged {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// IsStaged reports whether the given event id is staged for deletion.
func (s *Store) IsStaged(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.staged[id]
	return ok
}

// DeleteStagedEvent finalizes a staged deletion: exactly one delete call to
// the backend, and on success (including already-gone on the backend) the
// entry leaves both the staged set and the cache. Finalizing an id that is
// not staged returns ErrNotStaged without any backend call. On a backend
// failure the id stays staged so the user can retry.
func (s *Store) DeleteStagedEvent(ctx context.Context, id int) error {
	s.mu.Lock()
	staged, ok := s.staged[id]
	if !ok {
		s.mu.Unlock()
		return ErrNotStaged
	}
	if staged.timer != nil {
		staged.timer.Stop()
	}
	delete(s.staged, id)
	s.mu.Unlock()

	if err := s.api.DeleteNotification(ctx, id); err != nil {
		s.mu.Lock()
		s.staged[id] = &stagedDeletion{stagedAt: staged.stagedAt}
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	delete(s.events, id)
	s.mu.Unlock()
	return nil
}

// DeleteAllStagedEvents finalizes every staged deletion, one delete call per
// staged id. Failures are collected; successful ids are removed regardless.
func (s *Store) DeleteAllStagedEvents(ctx context.Context) error {
	var errs []error
	for _, id := range s.StagedEventIDs() {
		if err := s.DeleteStagedEvent(ctx, id); err != nil {
			errs = append(errs, err)
		}
	}
	return joinErrors(errs)
}

func joinErrors(errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return errors.Errorf("%d staged deletions failed, first: %v", len(errs), errs[0])
	}
}

// MarkEventAsRead flips a feed entry to read on the backend and mirrors the
// flip locally. Read is one-way: the call is skipped when the cached entry
// is already read.
func (s *Store) MarkEventAsRead(ctx context.Context, id int) error {
	s.mu.Lock()
	if event, ok := s.events[id]; ok && event.Read {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	if err := s.api.MarkEventAsRead(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	if event, ok := s.events[id]; ok {
		event.Read = true
		s.events[id] = event
	}
	s.mu.Unlock()
	return nil
}

// UpdateEventStatus shelves a feed entry (normal, starred, archived) on the
// backend and mirrors the confirmed state locally.
func (s *Store) UpdateEventStatus(ctx context.Context, id int, status models.EventStatus) error {
	if err := s.api.UpdateEventStatus(ctx, id, status); err != nil {
		return err
	}

	s.mu.Lock()
	if event, ok := s.events[id]; ok {
		event.Status = status
		s.events[id] = event
	}
	s.mu.Unlock()
	return nil
}

// SetEventTag tags a feed entry on the backend and mirrors the confirmed
// tag locally.
func (s *Store) SetEventTag(ctx context.Context, id int, tag models.EventTag) error {
	if err := s.api.SetEventTag(ctx, id, tag); err != nil {
		return err
	}

	s.mu.Lock()
	if event, ok := s.events[id]; ok {
		event.Tag = tag
		s.events[id] = event
	}
	s.mu.Unlock()
	return nil
}
