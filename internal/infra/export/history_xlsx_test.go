package export

import (
	"bytes"
	"testing"
	"time"

	"projectforge/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestHistoryWorkbook(t *testing.T) {
	entries := []entity.DisplayHistoryEntry{
		{
			MasterID:       7,
			EntityName:     "User",
			EntityID:       42,
			EntityOpType:   entity.EntityOpUpdate,
			ModifiedAt:     time.Date(2023, 2, 10, 13, 34, 25, 184_000_000, time.UTC),
			ModifiedBy:     "1",
			ModifiedByName: "Kai Reinhard",
			PropertyName:   "email",
			PropertyType:   "string",
			OldValue:       "a@x.com",
			NewValue:       "b@x.com",
			OpType:         "Update",
		},
	}

	data, err := HistoryWorkbook(entries)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(historySheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Master", rows[0][0])
	assert.Equal(t, []string{
		"7", "User", "42", "Update", "2023-02-10 13:34:25:184", "1", "Kai Reinhard",
		"email", "string", "a@x.com", "b@x.com", "Update",
	}, rows[1])
}

func TestHistoryWorkbook_Empty(t *testing.T) {
	data, err := HistoryWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(historySheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
