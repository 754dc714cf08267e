package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"top-walker/pkg/model"
)

// Fields is the wire body of a create or patch: lower-cased field name to
// staged text.
type Fields map[string]string

// Gateway is the remote data-access surface the controller runs against.
type Gateway interface {
	ListSessions(ctx context.Context) ([]model.Session, error)
	GetSession(ctx context.Context, id uuid.UUID) (*model.Session, error)
	CreateSession(ctx context.Context, fields Fields) error
	PatchSession(ctx context.Context, id uuid.UUID, fields Fields) error
	DeleteSession(ctx context.Context, id uuid.UUID) error

	ListAgendaItems(ctx context.Context, sessionID uuid.UUID) ([]model.AgendaItem, error)
	GetAgendaItem(ctx context.Context, id uuid.UUID) (*model.AgendaItem, error)
	CreateAgendaItem(ctx context.Context, sessionID uuid.UUID, fields Fields) error
	PatchAgendaItem(ctx context.Context, id, sessionID uuid.UUID, fields Fields) error
	DeleteAgendaItem(ctx context.Context, id uuid.UUID) error

	ListMotions(ctx context.Context, itemID uuid.UUID) ([]model.Motion, error)
	GetMotion(ctx context.Context, id uuid.UUID) (*model.Motion, error)
	CreateMotion(ctx context.Context, itemID uuid.UUID, fields Fields) error
	PatchMotion(ctx context.Context, id uuid.UUID, fields Fields) error
	DeleteMotion(ctx context.Context, id uuid.UUID) error
}

const defaultTimeout = 10 * time.Second

// cookieName carries the bearer token on mutating calls.
const cookieName = "access_token"

// Client talks to the topmanager HTTP API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

var _ Gateway = (*Client)(nil)

// New builds a client for baseURL. The token is attached to every mutating
// call for the lifetime of the process.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

func (c *Client) ListSessions(ctx context.Context) ([]model.Session, error) {
	var out []model.Session
	if err := c.get(ctx, "/api/topmanager/sitzungen/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetSession(ctx context.Context, id uuid.UUID) (*model.Session, error) {
	var out model.Session
	if err := c.get(ctx, fmt.Sprintf("/api/topmanager/sitzung/%s/", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateSession(ctx context.Context, fields Fields) error {
	return c.write(ctx, http.MethodPut, "/api/topmanager/sitzung/", payload(fields, nil))
}

func (c *Client) PatchSession(ctx context.Context, id uuid.UUID, fields Fields) error {
	body := payload(fields, map[string]uuid.UUID{"id": id})
	return c.write(ctx, http.MethodPatch, "/api/topmanager/sitzung/", body)
}

func (c *Client) DeleteSession(ctx context.Context, id uuid.UUID) error {
	body := payload(nil, map[string]uuid.UUID{"id": id})
	return c.write(ctx, http.MethodDelete, "/api/topmanager/sitzung/", body)
}

func (c *Client) ListAgendaItems(ctx context.Context, sessionID uuid.UUID) ([]model.AgendaItem, error) {
	var out []model.AgendaItem
	path := fmt.Sprintf("/api/topmanager/sitzung/%s/tops/", sessionID)
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetAgendaItem(ctx context.Context, id uuid.UUID) (*model.AgendaItem, error) {
	var out model.AgendaItem
	if err := c.get(ctx, fmt.Sprintf("/api/topmanager/tops/%s/", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateAgendaItem(ctx context.Context, sessionID uuid.UUID, fields Fields) error {
	path := fmt.Sprintf("/api/topmanager/sitzung/%s/top/", sessionID)
	return c.write(ctx, http.MethodPut, path, payload(fields, nil))
}

func (c *Client) PatchAgendaItem(ctx context.Context, id, sessionID uuid.UUID, fields Fields) error {
	body := payload(fields, map[string]uuid.UUID{"id": id, "sitzung_id": sessionID})
	return c.write(ctx, http.MethodPatch, "/api/topmanager/top/", body)
}

func (c *Client) DeleteAgendaItem(ctx context.Context, id uuid.UUID) error {
	body := payload(nil, map[string]uuid.UUID{"id": id})
	return c.write(ctx, http.MethodDelete, "/api/topmanager/top/", body)
}

func (c *Client) ListMotions(ctx context.Context, itemID uuid.UUID) ([]model.Motion, error) {
	var out []model.Motion
	path := fmt.Sprintf("/api/topmanager/tops/%s/anträge/", itemID)
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetMotion(ctx context.Context, id uuid.UUID) (*model.Motion, error) {
	var out model.Motion
	if err := c.get(ctx, fmt.Sprintf("/api/topmanager/antrag/%s/", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateMotion(ctx context.Context, itemID uuid.UUID, fields Fields) error {
	path := fmt.Sprintf("/api/topmanager/top/%s/antrag/", itemID)
	return c.write(ctx, http.MethodPut, path, payload(fields, nil))
}

func (c *Client) PatchMotion(ctx context.Context, id uuid.UUID, fields Fields) error {
	body := payload(fields, map[string]uuid.UUID{"id": id})
	return c.write(ctx, http.MethodPatch, "/api/topmanager/antrag/", body)
}

func (c *Client) DeleteMotion(ctx context.Context, id uuid.UUID) error {
	return c.write(ctx, http.MethodDelete, fmt.Sprintf("/api/topmanager/antrag/%s/", id), nil)
}

// payload merges staged fields with id columns into one JSON object.
func payload(fields Fields, ids map[string]uuid.UUID) map[string]any {
	body := make(map[string]any, len(fields)+len(ids))
	for k, v := range fields {
		body[k] = v
	}
	for k, v := range ids {
		body[k] = v.String()
	}
	return body
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		log.WithField("path", path).WithError(err).Debug("get failed")
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

// write performs a mutating call with a JSON body and the auth cookie.
func (c *Client) write(ctx context.Context, method, path string, body any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: cookieName, Value: c.token})
	resp, err := c.http.Do(req)
	if err != nil {
		log.WithFields(log.Fields{"method": method, "path": path}).WithError(err).Debug("write failed")
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode}
	}
	return nil
}
