package state

import (
	"sync"
	"testing"
)

func TestSessionStartsIdle(t *testing.T) {
	m := NewManager()

	session := m.Session(1)
	if session.State != StateIdle {
		t.Errorf("Expected new session to be idle, got %q", session.State)
	}
	if session.ChatID != 1 {
		t.Errorf("Expected chat id 1, got %d", session.ChatID)
	}
}

func TestSessionReturnsSameInstance(t *testing.T) {
	m := NewManager()

	first := m.Session(7)
	second := m.Session(7)
	if first != second {
		t.Error("Expected the same session instance for one chat")
	}
}

func TestStateDoesNotCreateSession(t *testing.T) {
	m := NewManager()

	if got := m.State(42); got != StateIdle {
		t.Errorf("Expected idle for unknown chat, got %q", got)
	}
	if len(m.sessions) != 0 {
		t.Errorf("Expected no session created by State, got %d", len(m.sessions))
	}
}

func TestPerChatIsolation(t *testing.T) {
	m := NewManager()

	first := m.Session(1)
	first.Lock()
	first.State = StateAwaitingAmount
	first.Title = "Coffee"
	first.Unlock()

	if got := m.State(2); got != StateIdle {
		t.Errorf("Expected chat 2 to stay idle, got %q", got)
	}
	if got := m.State(1); got != StateAwaitingAmount {
		t.Errorf("Expected chat 1 to be awaiting amount, got %q", got)
	}
}

func TestResetClearsCollectedFields(t *testing.T) {
	m := NewManager()

	session := m.Session(1)
	session.Lock()
	session.State = StateAwaitingDescription
	session.Title = "Coffee"
	session.Amount = 4.5
	session.Reset()
	session.Unlock()

	if session.State != StateIdle {
		t.Errorf("Expected idle after reset, got %q", session.State)
	}
	if session.Title != "" || session.Amount != 0 {
		t.Errorf("Expected cleared fields, got title=%q amount=%v", session.Title, session.Amount)
	}
}

func TestConcurrentSessionAccess(t *testing.T) {
	m := NewManager()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			chatID := int64(n % 5)
			session := m.Session(chatID)
			session.Lock()
			session.State = StateAwaitingTitle
			session.Title = "t"
			session.Reset()
			session.Unlock()

			_ = m.State(chatID)
		}(i)
	}
	wg.Wait()

	for chatID := int64(0); chatID < 5; chatID++ {
		if got := m.State(chatID); got != StateIdle {
			t.Errorf("Expected chat %d idle after all resets, got %q", chatID, got)
		}
	}
}
