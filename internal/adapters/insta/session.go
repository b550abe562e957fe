package insta

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"os"
)

// Session es lo que dumpeamos a session.json para no reloguear en cada
// arranque (los logins repetidos son lo que más bandera la cuenta).
type Session struct {
	Token    string `json:"token"`
	ViewerID string `json:"viewer_id"`
	Username string `json:"username"`
}

// Login autentica con usuario/clave y deja la sesión activa en el cliente.
func (c *Client) Login(ctx context.Context, username, password string) error {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var dto loginDTO
	if err := c.doJSON(ctx, "POST", "/accounts/login/", nil, form, &dto); err != nil {
		return err
	}
	c.token = dto.Token
	c.viewerID = dto.LoggedInUser.PK
	return nil
}

// RestoreSession carga session.json si existe. Devuelve ErrLoginRequired si
// no hay archivo; el caller decide loguear de cero.
func (c *Client) RestoreSession(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrLoginRequired
		}
		return err
	}
	var s Session
	if err := json.Unmarshal(b, &s); err != nil {
		return ErrLoginRequired
	}
	c.token = s.Token
	c.viewerID = s.ViewerID
	return nil
}

// DumpSession persiste la sesión activa (pretty, legible para debug).
func (c *Client) DumpSession(path, username string) error {
	b, err := json.MarshalIndent(Session{Token: c.token, ViewerID: c.viewerID, Username: username}, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}
