package models

import "time"

// Transaction - одна запись в общей книге расходов чата.
// Неизменяема после создания, удаляется только вместе со всей книгой.
type Transaction struct {
	ID          int64
	ChatID      int64
	UserID      int64
	Title       string
	Amount      float64
	Description string // пустая строка = без описания
	CreatedAt   time.Time
}

// User - известный участник, обновляется при каждом входящем сообщении
type User struct {
	UserID   int64
	Username string
}
