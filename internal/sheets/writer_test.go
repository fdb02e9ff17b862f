package sheets

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nikita-tita/idea-intake/internal/canvas"
)

type appendCall struct {
	rangeA1 string
	row     []interface{}
}

// fakeAppender records appends and fails the ranges listed in failOn.
type fakeAppender struct {
	calls  []appendCall
	failOn map[string]error
}

func (f *fakeAppender) AppendRow(_ context.Context, rangeA1 string, row []interface{}) error {
	if err, ok := f.failOn[rangeA1]; ok {
		return err
	}
	f.calls = append(f.calls, appendCall{rangeA1: rangeA1, row: row})
	return nil
}

func newTestWriter(appender RangeAppender) *Writer {
	w := NewWriter(appender, zap.NewNop())
	w.newID = func() string { return "abcd1234" }
	return w
}

func TestAppendWritesBothRows(t *testing.T) {
	fake := &fakeAppender{}
	w := newTestWriter(fake)

	sub := canvas.IdeaSubmission{Title: "Title", Description: "Desc"}
	rec := canvas.LeanCanvasRecord{Problem: "p", Solution: "s"}

	id, err := w.Append(context.Background(), sub, rec)
	require.NoError(t, err)
	assert.Equal(t, "abcd1234", id)

	require.Len(t, fake.calls, 2)
	assert.Equal(t, "Ideas!A:E", fake.calls[0].rangeA1)
	assert.Equal(t, "LeanCanvas!A:I", fake.calls[1].rangeA1)

	// Both rows carry the same id in column A.
	assert.Equal(t, id, fake.calls[0].row[0])
	assert.Equal(t, id, fake.calls[1].row[0])
}

func TestAppendNotInitialized(t *testing.T) {
	w := NewWriter(nil, zap.NewNop())

	_, err := w.Append(context.Background(), canvas.IdeaSubmission{}, canvas.LeanCanvasRecord{})
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestAppendIdeasPhaseFailure(t *testing.T) {
	fake := &fakeAppender{failOn: map[string]error{
		"Ideas!A:E": errors.New("quota exceeded"),
	}}
	w := newTestWriter(fake)

	_, err := w.Append(context.Background(), canvas.IdeaSubmission{Title: "T", Description: "D"}, canvas.LeanCanvasRecord{})
	require.Error(t, err)

	var appendErr *AppendError
	require.ErrorAs(t, err, &appendErr)
	assert.Equal(t, PhaseIdeas, appendErr.Phase)

	// Nothing was written.
	assert.Empty(t, fake.calls)
}

func TestAppendCanvasPhaseFailureLeavesIdeasRow(t *testing.T) {
	fake := &fakeAppender{failOn: map[string]error{
		"LeanCanvas!A:I": errors.New("range not found"),
	}}
	w := newTestWriter(fake)

	_, err := w.Append(context.Background(), canvas.IdeaSubmission{Title: "T", Description: "D"}, canvas.LeanCanvasRecord{})
	require.Error(t, err)

	var appendErr *AppendError
	require.ErrorAs(t, err, &appendErr)
	assert.Equal(t, PhaseCanvas, appendErr.Phase)

	// The Ideas row was written and no compensating call removed it:
	// the inconsistency window is observable, not hidden.
	require.Len(t, fake.calls, 1)
	assert.Equal(t, "Ideas!A:E", fake.calls[0].rangeA1)
}

func TestAppendTruncatesNotes(t *testing.T) {
	fake := &fakeAppender{}
	w := newTestWriter(fake)

	sub := canvas.IdeaSubmission{Title: "T", Description: strings.Repeat("d", 600)}
	_, err := w.Append(context.Background(), sub, canvas.LeanCanvasRecord{})
	require.NoError(t, err)

	notes, ok := fake.calls[0].row[4].(string)
	require.True(t, ok)
	assert.Len(t, notes, 500)
}
