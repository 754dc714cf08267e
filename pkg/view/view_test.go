package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewView(t *testing.T) {
	v := NewView()
	require.NotNil(t, v.App)
	require.NotNil(t, v.List)
	require.NotNil(t, v.Fields)
	require.NotNil(t, v.Editor)

	t.Run("page switching", func(t *testing.T) {
		v.ShowEdit("Edit session")
		name, _ := v.Pages.GetFrontPage()
		assert.Equal(t, "edit", name)

		v.ShowEditor("Content")
		name, _ = v.Pages.GetFrontPage()
		assert.Equal(t, "editor", name)

		v.ShowBrowse()
		name, _ = v.Pages.GetFrontPage()
		assert.Equal(t, "browse", name)
	})

	t.Run("status line", func(t *testing.T) {
		v.ShowError("boom")
		assert.Contains(t, v.Status.GetText(true), "boom")
		v.ClearStatus()
		assert.Empty(t, v.Status.GetText(true))
	})
}
