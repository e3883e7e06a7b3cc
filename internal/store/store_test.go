package store

import (
	"sync"
	"testing"
	"time"

	"interview-service/internal/models"
)

func newTestSession(id string) *models.Session {
	now := time.Now()
	return &models.Session{
		ID:                id,
		Company:           "Google",
		CurrentRound:      models.RoundDSA,
		CurrentDifficulty: models.DifficultyMedium,
		RoundProgress: map[models.Round]models.RoundProgress{
			models.RoundDSA: {Current: 1, Total: 2},
		},
		ConversationHistory: []models.Message{
			{Role: models.RoleSystem, Content: "persona"},
		},
		StartTime:      now,
		LastActionTime: now,
	}
}

func TestPutGet(t *testing.T) {
	s := New()
	s.Put(newTestSession("abc"))

	got, err := s.Get("abc")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ID != "abc" {
		t.Errorf("Get returned session %q", got.ID)
	}
	if _, err := s.Get("missing"); err != ErrNotFound {
		t.Errorf("Get(missing) err = %v, want ErrNotFound", err)
	}
	if s.ActiveCount() != 1 {
		t.Errorf("ActiveCount = %d, want 1", s.ActiveCount())
	}
}

func TestArchiveRemovesFromActive(t *testing.T) {
	s := New()
	s.Put(newTestSession("abc"))

	if err := s.Archive("abc"); err != nil {
		t.Fatalf("Archive failed: %v", err)
	}
	if _, err := s.Get("abc"); err != ErrNotFound {
		t.Error("archived session still live")
	}
	if err := s.Archive("abc"); err != ErrNotFound {
		t.Errorf("second Archive err = %v, want ErrNotFound", err)
	}
}

func TestRecoverStates(t *testing.T) {
	s := New()

	if _, state := s.Recover("abc"); state != RecoveryNotFound {
		t.Errorf("Recover(unknown) = %v, want RecoveryNotFound", state)
	}

	s.Put(newTestSession("abc"))
	if _, state := s.Recover("abc"); state != RecoveryLive {
		t.Errorf("Recover(live) = %v, want RecoveryLive", state)
	}

	if err := s.Archive("abc"); err != nil {
		t.Fatalf("Archive failed: %v", err)
	}
	restored, state := s.Recover("abc")
	if state != RecoveryRestored {
		t.Fatalf("Recover(archived) = %v, want RecoveryRestored", state)
	}
	if restored.ID != "abc" {
		t.Errorf("restored session id = %q", restored.ID)
	}
	if _, err := s.Get("abc"); err != nil {
		t.Error("restored session not promoted to active")
	}
}

func TestRecoverKeepsBackupCopy(t *testing.T) {
	s := New()
	s.Put(newTestSession("abc"))
	if err := s.Archive("abc"); err != nil {
		t.Fatal(err)
	}

	// Promote, archive again by losing the live copy, recover again.
	if _, state := s.Recover("abc"); state != RecoveryRestored {
		t.Fatal("first recovery failed")
	}
	if err := s.Archive("abc"); err != nil {
		t.Fatal(err)
	}
	if _, state := s.Recover("abc"); state != RecoveryRestored {
		t.Error("backup copy was consumed by recovery")
	}
}

func TestRecoveredSessionDoesNotAliasBackup(t *testing.T) {
	s := New()
	original := newTestSession("abc")
	s.Put(original)
	if err := s.Archive("abc"); err != nil {
		t.Fatal(err)
	}

	restored, _ := s.Recover("abc")
	restored.ConversationHistory = append(restored.ConversationHistory,
		models.Message{Role: models.RoleUser, Content: "mutation"})
	restored.RoundProgress[models.RoundDSA] = models.RoundProgress{Current: 2, Total: 2}

	if err := s.Archive("abc"); err != nil {
		t.Fatal(err)
	}
	again, _ := s.Recover("abc")
	if len(again.ConversationHistory) != 2 {
		t.Errorf("mutation lost: history length = %d, want 2", len(again.ConversationHistory))
	}
	if original.RoundProgress[models.RoundDSA].Current != 1 {
		t.Error("recovered session aliased the original's progress map")
	}
}

func TestAutoSaveSnapshotsActive(t *testing.T) {
	s := New()
	s.Put(newTestSession("abc"))

	s.autoSave()

	// The live session must survive, and the snapshot must be recoverable
	// even if the live copy is later dropped.
	if _, err := s.Get("abc"); err != nil {
		t.Fatal("auto-save removed the live session")
	}
	s.mu.Lock()
	delete(s.active, "abc")
	s.mu.Unlock()
	if _, state := s.Recover("abc"); state != RecoveryRestored {
		t.Error("auto-saved snapshot not recoverable")
	}
}

func TestArchiveIdleMovesStaleSessions(t *testing.T) {
	s := New(WithIntervals(time.Minute, time.Minute, 30*time.Minute))

	stale := newTestSession("stale")
	stale.LastActionTime = time.Now().Add(-time.Hour)
	fresh := newTestSession("fresh")

	s.Put(stale)
	s.Put(fresh)

	s.archiveIdle()

	if _, err := s.Get("stale"); err != ErrNotFound {
		t.Error("idle session not archived")
	}
	if _, err := s.Get("fresh"); err != nil {
		t.Error("fresh session archived")
	}
	if _, state := s.Recover("stale"); state != RecoveryRestored {
		t.Error("idle-archived session not recoverable")
	}
}

type recordingPublisher struct {
	events []string
}

func (p *recordingPublisher) Publish(eventType string, payload interface{}) error {
	p.events = append(p.events, eventType)
	return nil
}

func TestSweepPublishesLifecycleEvents(t *testing.T) {
	pub := &recordingPublisher{}
	s := New(
		WithIntervals(time.Minute, time.Minute, time.Nanosecond),
		WithPublisher(pub),
	)

	session := newTestSession("abc")
	session.LastActionTime = time.Now().Add(-time.Second)
	s.Put(session)

	s.SweepNow()

	var sawAutoSave, sawArchive bool
	for _, e := range pub.events {
		switch e {
		case "interview.session.autosaved":
			sawAutoSave = true
		case "interview.session.archived":
			sawArchive = true
		}
	}
	if !sawAutoSave {
		t.Error("auto-save event not published")
	}
	if !sawArchive {
		t.Error("archive event not published")
	}
}

func TestSweepsSerializeWithSessionMutation(t *testing.T) {
	s := New(WithIntervals(time.Minute, time.Minute, time.Hour))
	s.Put(newTestSession("abc"))

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			unlock := s.LockSession("abc")
			if session, err := s.Get("abc"); err == nil {
				session.ConversationHistory = append(session.ConversationHistory,
					models.Message{Role: models.RoleUser, Content: "turn"})
				session.Touch()
			}
			unlock()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			s.SweepNow()
		}
	}()
	wg.Wait()

	session, err := s.Get("abc")
	if err != nil {
		t.Fatal("session lost while sweeps ran")
	}
	if got := len(session.ConversationHistory); got != 201 {
		t.Errorf("history length = %d, want 201", got)
	}
	if _, state := s.Recover("abc"); state != RecoveryLive {
		t.Error("session no longer live after concurrent sweeps")
	}
}

func TestLockRegistryReleased(t *testing.T) {
	s := New()

	unlock := s.LockSession("abc")
	unlock()

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			u := s.LockSession("xyz")
			u()
		}()
	}
	wg.Wait()

	s.locksMu.Lock()
	n := len(s.locks)
	s.locksMu.Unlock()
	if n != 0 {
		t.Errorf("lock registry holds %d entries after all work finished", n)
	}
}

func TestStartStopTerminates(t *testing.T) {
	s := New(WithIntervals(time.Millisecond, time.Millisecond, time.Hour))
	s.Put(newTestSession("abc"))
	s.Start()
	time.Sleep(10 * time.Millisecond)
	s.Stop()

	if _, err := s.Get("abc"); err != nil {
		t.Error("session lost during background sweeps")
	}
}
