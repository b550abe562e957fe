package insta

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/linxfaizan/ig-chatbot/internal/domain"
)

// DirectThread trae los últimos mensajes del hilo, del más nuevo al más
// viejo, tal como los devuelve la API.
func (c *Client) DirectThread(ctx context.Context, threadID string, limit int) ([]domain.Message, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))

	var dto threadDTO
	if err := c.doJSON(ctx, "GET", fmt.Sprintf("/direct_v2/threads/%s/", threadID), q, nil, &dto); err != nil {
		return nil, err
	}

	msgs := make([]domain.Message, 0, len(dto.Thread.Items))
	for _, it := range dto.Thread.Items {
		msgs = append(msgs, domain.Message{
			ID:       it.ItemID,
			ItemType: it.ItemType,
			Text:     it.Text,
			SenderID: it.UserID,
			SentAt:   time.UnixMicro(it.Timestamp),
		})
	}
	return msgs, nil
}

// DirectSend manda un texto al hilo grupal.
func (c *Client) DirectSend(ctx context.Context, threadID, text string) error {
	form := url.Values{}
	form.Set("text", text)
	return c.doJSON(ctx, "POST", fmt.Sprintf("/direct_v2/threads/%s/items/text/", threadID), nil, form, nil)
}

// ThreadMembers devuelve los participantes del hilo (sin el bot mismo: la
// API no incluye al viewer en users).
func (c *Client) ThreadMembers(ctx context.Context, threadID string) ([]domain.Member, error) {
	q := url.Values{}
	q.Set("limit", "0") // solo metadata, sin items

	var dto threadDTO
	if err := c.doJSON(ctx, "GET", fmt.Sprintf("/direct_v2/threads/%s/", threadID), q, nil, &dto); err != nil {
		return nil, err
	}

	members := make([]domain.Member, 0, len(dto.Thread.Users))
	for _, u := range dto.Thread.Users {
		members = append(members, domain.Member{ID: u.PK, Username: u.Username})
	}
	return members, nil
}

// UserInfo resuelve un pk a su perfil. 404 => ErrNotFound.
func (c *Client) UserInfo(ctx context.Context, userID string) (domain.Member, error) {
	var dto userInfoDTO
	if err := c.doJSON(ctx, "GET", fmt.Sprintf("/users/%s/info/", userID), nil, nil, &dto); err != nil {
		return domain.Member{}, err
	}
	return domain.Member{ID: dto.User.PK, Username: dto.User.Username}, nil
}

// Timeline es el ping barato para validar que la sesión siga viva.
func (c *Client) Timeline(ctx context.Context) error {
	return c.doJSON(ctx, "GET", "/feed/timeline/", nil, nil, nil)
}
