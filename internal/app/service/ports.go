package service

import (
	"context"

	"github.com/linxfaizan/ig-chatbot/internal/domain"
	"github.com/linxfaizan/ig-chatbot/internal/infra/storage"
)

// Lo implementa internal/adapters/insta.Client
type Roster interface {
	ThreadMembers(ctx context.Context, threadID string) ([]domain.Member, error)
}

// Lo implementa internal/adapters/chat.UserCache: resuelve pk -> username,
// degradando al id crudo si la API falla. Nunca devuelve error.
type NameResolver interface {
	Resolve(ctx context.Context, userID string) string
}

// Lo implementa internal/infra/storage.Store
type ContentStore interface {
	LoadList(name string) []string
	LoadQuestions(name string) []domain.Question
	ListFiles() []storage.FileDetail
}

// Lo implementa internal/infra/storage.ScoreRepo
type ScoreStore interface {
	All() []storage.ScoreEntry
	Add(userID string, points int) error
}

// Lo implementa internal/infra/storage.BirthdayRepo
type BirthdayStore interface {
	All() map[string]string
	Set(userID, ddmm string) error
}

// Lo implementa internal/infra/storage.CommandRepo
type CustomCommandStore interface {
	Get(name string) (string, bool)
	Set(name, text string) error
}
