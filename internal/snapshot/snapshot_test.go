// internal/snapshot/snapshot_test.go
package snapshot_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagemark/pagemark/internal/snapshot"
)

func TestLoad(t *testing.T) {
	t.Run("round trips a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "page.html")
		require.NoError(t, os.WriteFile(path,
			[]byte(`<html><body><div data-annotation-surface></div></body></html>`), 0o644))

		doc, err := snapshot.Load(path)
		require.NoError(t, err)
		require.NotNil(t, doc)

		root := snapshot.RootElement(doc)
		require.NotNil(t, root)
		assert.Equal(t, "html", root.Data)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := snapshot.Load(filepath.Join(t.TempDir(), "absent.html"))
		assert.Error(t, err)
	})
}

func TestParse(t *testing.T) {
	doc, err := snapshot.Parse(strings.NewReader(`<html><body></body></html>`))
	require.NoError(t, err)
	assert.NotNil(t, snapshot.RootElement(doc))
}
