package chat

import (
	"context"
	"log"
	"sync"

	"github.com/linxfaizan/ig-chatbot/internal/domain"
)

// Lo implementa internal/adapters/insta.Client
type UserAPI interface {
	UserInfo(ctx context.Context, userID string) (domain.Member, error)
}

// UserCache memoiza pk -> username para no pegarle a la API por cada
// mensaje. Los usernames se asumen estables durante la sesión; nunca
// evictamos. Si la API falla devolvemos el pk crudo y no cacheamos.
type UserCache struct {
	mu    sync.Mutex
	api   UserAPI
	names map[string]string
}

func NewUserCache(api UserAPI) *UserCache {
	return &UserCache{api: api, names: map[string]string{}}
}

func (c *UserCache) Resolve(ctx context.Context, userID string) string {
	if userID == "" {
		return "Unknown"
	}

	c.mu.Lock()
	if name, ok := c.names[userID]; ok {
		c.mu.Unlock()
		return name
	}
	c.mu.Unlock()

	u, err := c.api.UserInfo(ctx, userID)
	if err != nil || u.Username == "" {
		log.Printf("no pude resolver username de %s: %v", userID, err)
		return userID
	}

	c.mu.Lock()
	c.names[userID] = u.Username
	c.mu.Unlock()
	return u.Username
}
