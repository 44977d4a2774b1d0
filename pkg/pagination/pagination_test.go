package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginationParamsValidate(t *testing.T) {
	params := &PaginationParams{Page: 0, PerPage: 0}
	params.Validate()
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 15, params.PerPage)

	params = &PaginationParams{Page: 3, PerPage: 500}
	params.Validate()
	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 100, params.PerPage)
}

func TestPaginationOffset(t *testing.T) {
	params := &PaginationParams{Page: 4, PerPage: 25}
	assert.Equal(t, 75, params.Offset())
}

func TestNewPagination(t *testing.T) {
	pag := NewPagination(2, 15, 31)
	assert.Equal(t, 3, pag.TotalPages)
	assert.True(t, pag.HasNext)
	assert.True(t, pag.HasPrev)

	pag = NewPagination(1, 15, 10)
	assert.Equal(t, 1, pag.TotalPages)
	assert.False(t, pag.HasNext)
	assert.False(t, pag.HasPrev)
}

func TestCursorRoundTrip(t *testing.T) {
	createdAt := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	encoded := EncodeCursor("abc-123", createdAt)

	params := &CursorParams{Cursor: encoded}
	cursor, err := params.DecodeCursor()
	require.NoError(t, err)
	assert.Equal(t, "abc-123", cursor.ID)
	assert.True(t, cursor.CreatedAt.Equal(createdAt))
}

func TestDecodeCursor_Empty(t *testing.T) {
	params := &CursorParams{Cursor: ""}
	cursor, err := params.DecodeCursor()
	require.NoError(t, err)
	assert.Nil(t, cursor)
}

func TestDecodeCursor_Invalid(t *testing.T) {
	params := &CursorParams{Cursor: "not base64!!"}
	_, err := params.DecodeCursor()
	assert.Error(t, err)
}

type cursorItem struct {
	ID        string
	CreatedAt time.Time
}

func TestNewCursorPagination(t *testing.T) {
	now := time.Now()
	items := []cursorItem{
		{ID: "a", CreatedAt: now},
		{ID: "b", CreatedAt: now.Add(time.Second)},
		{ID: "c", CreatedAt: now.Add(2 * time.Second)},
	}

	// Three items fetched against a limit of two means there is a next page
	pag, trimmed := NewCursorPagination(items, 2,
		func(i cursorItem) string { return i.ID },
		func(i cursorItem) time.Time { return i.CreatedAt },
	)
	assert.True(t, pag.HasNext)
	require.Len(t, trimmed, 2)
	require.NotNil(t, pag.NextCursor)

	next := &CursorParams{Cursor: *pag.NextCursor}
	cursor, err := next.DecodeCursor()
	require.NoError(t, err)
	assert.Equal(t, "b", cursor.ID)

	pag, trimmed = NewCursorPagination(items[:1], 2,
		func(i cursorItem) string { return i.ID },
		func(i cursorItem) time.Time { return i.CreatedAt },
	)
	assert.False(t, pag.HasNext)
	assert.Len(t, trimmed, 1)
}
