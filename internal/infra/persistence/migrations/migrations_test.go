package migrations

import (
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestVersion(t *testing.T) {
	latest, err := LatestVersion()

	require.NoError(t, err)
	assert.Equal(t, uint(4), latest)
}

func TestMigrationFilesArePaired(t *testing.T) {
	src, err := iofs.New(migrationFiles, "files")
	require.NoError(t, err)
	defer src.Close()

	version, err := src.First()
	require.NoError(t, err)
	for {
		up, _, err := src.ReadUp(version)
		require.NoError(t, err, "up migration %d", version)
		up.Close()
		down, _, err := src.ReadDown(version)
		require.NoError(t, err, "down migration %d", version)
		down.Close()

		next, err := src.Next(version)
		if err != nil {
			break
		}
		version = next
	}
}

func TestStatus_UpToDate(t *testing.T) {
	assert.True(t, Status{Version: 4, Latest: 4}.UpToDate())
	assert.False(t, Status{Version: 3, Latest: 4}.UpToDate())
	assert.False(t, Status{Version: 4, Latest: 4, Dirty: true}.UpToDate())
}
