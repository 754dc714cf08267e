package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method string
	path   string
	body   map[string]any
	cookie string
}

// recordingServer answers every request with response and records what the
// client sent.
func recordingServer(t *testing.T, status int, response string) (*httptest.Server, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		if c, err := r.Cookie("access_token"); err == nil {
			rec.cookie = c.Value
		}
		if b, _ := io.ReadAll(r.Body); len(b) > 0 {
			_ = json.Unmarshal(b, &rec.body)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

var (
	sessionID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	itemID    = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	motionID  = uuid.MustParse("33333333-3333-3333-3333-333333333333")
)

func TestReads(t *testing.T) {
	ctx := context.Background()

	t.Run("list sessions", func(t *testing.T) {
		srv, rec := recordingServer(t, http.StatusOK,
			`[{"name":"Plenum","datetime":"2024-05-01T18:30:00","id":"11111111-1111-1111-1111-111111111111"}]`)
		c := New(srv.URL, "tok")
		sessions, err := c.ListSessions(ctx)
		require.NoError(t, err)
		require.Len(t, sessions, 1)
		assert.Equal(t, "Plenum", sessions[0].Name)
		assert.Equal(t, http.MethodGet, rec.method)
		assert.Equal(t, "/api/topmanager/sitzungen/", rec.path)
		assert.Empty(t, rec.cookie, "reads do not send the token")
	})

	t.Run("list agenda items scoped to session", func(t *testing.T) {
		srv, rec := recordingServer(t, http.StatusOK, `[]`)
		c := New(srv.URL, "tok")
		_, err := c.ListAgendaItems(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, "/api/topmanager/sitzung/11111111-1111-1111-1111-111111111111/tops/", rec.path)
	})

	t.Run("list motions scoped to item", func(t *testing.T) {
		srv, rec := recordingServer(t, http.StatusOK, `[]`)
		c := New(srv.URL, "tok")
		_, err := c.ListMotions(ctx, itemID)
		require.NoError(t, err)
		assert.Equal(t, "/api/topmanager/tops/22222222-2222-2222-2222-222222222222/anträge/", rec.path)
	})

	t.Run("get single agenda item", func(t *testing.T) {
		srv, rec := recordingServer(t, http.StatusOK,
			`{"name":"Budget","id":"22222222-2222-2222-2222-222222222222","content":"numbers","weight":1}`)
		c := New(srv.URL, "tok")
		item, err := c.GetAgendaItem(ctx, itemID)
		require.NoError(t, err)
		assert.Equal(t, "Budget", item.Name)
		assert.Equal(t, "/api/topmanager/tops/22222222-2222-2222-2222-222222222222/", rec.path)
	})
}

func TestWrites(t *testing.T) {
	ctx := context.Background()

	t.Run("create session", func(t *testing.T) {
		srv, rec := recordingServer(t, http.StatusOK, "")
		c := New(srv.URL, "tok")
		require.NoError(t, c.CreateSession(ctx, Fields{"date": "2024-05-01T18:30:00", "name": "Plenum"}))
		assert.Equal(t, http.MethodPut, rec.method)
		assert.Equal(t, "/api/topmanager/sitzung/", rec.path)
		assert.Equal(t, "Plenum", rec.body["name"])
		assert.Equal(t, "tok", rec.cookie)
	})

	t.Run("create agenda item under session", func(t *testing.T) {
		srv, rec := recordingServer(t, http.StatusOK, "")
		c := New(srv.URL, "tok")
		require.NoError(t, c.CreateAgendaItem(ctx, sessionID, Fields{"title": "Budget", "content": ""}))
		assert.Equal(t, http.MethodPut, rec.method)
		assert.Equal(t, "/api/topmanager/sitzung/11111111-1111-1111-1111-111111111111/top/", rec.path)
	})

	t.Run("patch agenda item carries both ids", func(t *testing.T) {
		srv, rec := recordingServer(t, http.StatusOK, "")
		c := New(srv.URL, "tok")
		require.NoError(t, c.PatchAgendaItem(ctx, itemID, sessionID, Fields{"title": "Budget", "content": "new"}))
		assert.Equal(t, http.MethodPatch, rec.method)
		assert.Equal(t, "/api/topmanager/top/", rec.path)
		assert.Equal(t, itemID.String(), rec.body["id"])
		assert.Equal(t, sessionID.String(), rec.body["sitzung_id"])
		assert.Equal(t, "new", rec.body["content"])
		assert.Equal(t, "tok", rec.cookie)
	})

	t.Run("patch motion carries id", func(t *testing.T) {
		srv, rec := recordingServer(t, http.StatusOK, "")
		c := New(srv.URL, "tok")
		require.NoError(t, c.PatchMotion(ctx, motionID, Fields{"title": "Chairs"}))
		assert.Equal(t, "/api/topmanager/antrag/", rec.path)
		assert.Equal(t, motionID.String(), rec.body["id"])
	})

	t.Run("delete session sends id in body", func(t *testing.T) {
		srv, rec := recordingServer(t, http.StatusOK, "")
		c := New(srv.URL, "tok")
		require.NoError(t, c.DeleteSession(ctx, sessionID))
		assert.Equal(t, http.MethodDelete, rec.method)
		assert.Equal(t, "/api/topmanager/sitzung/", rec.path)
		assert.Equal(t, sessionID.String(), rec.body["id"])
	})

	t.Run("delete motion addresses the id in the path", func(t *testing.T) {
		srv, rec := recordingServer(t, http.StatusOK, "")
		c := New(srv.URL, "tok")
		require.NoError(t, c.DeleteMotion(ctx, motionID))
		assert.Equal(t, "/api/topmanager/antrag/33333333-3333-3333-3333-333333333333/", rec.path)
		assert.Empty(t, rec.body)
	})
}

func TestErrorTaxonomy(t *testing.T) {
	ctx := context.Background()

	t.Run("connection failure is a transport error", func(t *testing.T) {
		srv, _ := recordingServer(t, http.StatusOK, "[]")
		c := New(srv.URL, "tok")
		srv.Close()
		_, err := c.ListSessions(ctx)
		var te *TransportError
		assert.ErrorAs(t, err, &te)
	})

	t.Run("malformed json is a decode error", func(t *testing.T) {
		srv, _ := recordingServer(t, http.StatusOK, `{"not": "a list"`)
		c := New(srv.URL, "tok")
		_, err := c.ListSessions(ctx)
		var de *DecodeError
		assert.ErrorAs(t, err, &de)
	})

	t.Run("non-2xx is a status error", func(t *testing.T) {
		srv, _ := recordingServer(t, http.StatusForbidden, "")
		c := New(srv.URL, "tok")
		err := c.DeleteSession(ctx, sessionID)
		var se *StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, http.StatusForbidden, se.Code)
	})

	t.Run("errors unwrap", func(t *testing.T) {
		base := errors.New("boom")
		assert.ErrorIs(t, &TransportError{Err: base}, base)
		assert.ErrorIs(t, &DecodeError{Err: base}, base)
	})
}
