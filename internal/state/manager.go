package state

import (
	"sync"
)

type DialogState string

const (
	StateIdle                DialogState = "idle"
	StateAwaitingTitle       DialogState = "awaiting_title"
	StateAwaitingAmount      DialogState = "awaiting_amount"
	StateAwaitingDescription DialogState = "awaiting_description"
)

// ChatSession - состояние диалога одного чата вместе с уже собранными
// полями транзакции. Держатель блокировки владеет сессией целиком:
// обработчик захватывает mu на весь шаг диалога, поэтому сообщения
// одного чата применяются строго по очереди.
type ChatSession struct {
	ChatID int64
	State  DialogState
	Title  string
	Amount float64

	mu sync.Mutex
}

func (s *ChatSession) Lock() {
	s.mu.Lock()
}

func (s *ChatSession) Unlock() {
	s.mu.Unlock()
}

// Reset возвращает сессию в Idle и сбрасывает собранные поля.
// Вызывать только под блокировкой сессии.
func (s *ChatSession) Reset() {
	s.State = StateIdle
	s.Title = ""
	s.Amount = 0
}

// Manager хранит сессии всех чатов. Состояние живет только в памяти
// процесса - после рестарта незавершенные диалоги пропадают.
type Manager struct {
	sessions map[int64]*ChatSession
	mu       sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[int64]*ChatSession),
	}
}

// Session возвращает сессию чата, создавая ее при первом обращении
func (m *Manager) Session(chatID int64) *ChatSession {
	m.mu.RLock()
	session, exists := m.sessions[chatID]
	m.mu.RUnlock()
	if exists {
		return session
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if session, exists := m.sessions[chatID]; exists {
		return session
	}

	session = &ChatSession{
		ChatID: chatID,
		State:  StateIdle,
	}
	m.sessions[chatID] = session
	return session
}

// State возвращает текущее состояние диалога без создания сессии
func (m *Manager) State(chatID int64) DialogState {
	m.mu.RLock()
	session, exists := m.sessions[chatID]
	m.mu.RUnlock()

	if !exists {
		return StateIdle
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	return session.State
}
