package model

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTime(t *testing.T) {
	t.Run("unmarshal naive timestamp", func(t *testing.T) {
		var s Session
		raw := `{"name":"Plenum","datetime":"2024-05-01T18:30:00","id":"8e1f9ab2-0cf6-4a43-93d5-9017dd7ee48b"}`
		require.NoError(t, json.Unmarshal([]byte(raw), &s))
		assert.Equal(t, "Plenum", s.Name)
		assert.Equal(t, "2024-05-01T18:30:00", s.Datetime.String())
		assert.Equal(t, uuid.MustParse("8e1f9ab2-0cf6-4a43-93d5-9017dd7ee48b"), s.ID)
	})

	t.Run("marshal round-trips", func(t *testing.T) {
		var d DateTime
		require.NoError(t, d.UnmarshalJSON([]byte(`"2024-12-24T09:00:00"`)))
		b, err := d.MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, `"2024-12-24T09:00:00"`, string(b))
	})

	t.Run("rejects non-string", func(t *testing.T) {
		var d DateTime
		assert.Error(t, d.UnmarshalJSON([]byte(`42`)))
	})
}

func TestDisplay(t *testing.T) {
	var d DateTime
	_ = d.UnmarshalJSON([]byte(`"2024-05-01T18:30:00"`))

	s := Session{Name: "Plenum", Datetime: d}
	assert.Equal(t, "Plenum 2024-05-01T18:30:00", s.Display())

	top := AgendaItem{Name: "Budget", Weight: 3}
	assert.Equal(t, "Budget", top.Display())

	m := Motion{Title: "New chairs"}
	assert.Equal(t, "New chairs", m.Display())
}
