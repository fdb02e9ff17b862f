package sheets

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/nikita-tita/idea-intake/internal/canvas"
	"github.com/nikita-tita/idea-intake/internal/observability"
)

const (
	ideasRange  = "Ideas!A:E"
	canvasRange = "LeanCanvas!A:I"

	// Phase names reported by AppendError.
	PhaseIdeas  = "ideas"
	PhaseCanvas = "leancanvas"
)

// ErrNotInitialized means the spreadsheet client was never configured,
// typically because credentials were missing at startup.
var ErrNotInitialized = errors.New("sheets client not initialized")

// AppendError reports which of the two appends failed. When Phase is
// PhaseCanvas the Ideas row was already written and stays in place;
// there is no compensating delete.
type AppendError struct {
	Phase string
	Err   error
}

func (e *AppendError) Error() string {
	return fmt.Sprintf("append %s row: %v", e.Phase, e.Err)
}

func (e *AppendError) Unwrap() error { return e.Err }

// RangeAppender is the one spreadsheet operation the writer needs:
// append a row after the last row of a named range.
type RangeAppender interface {
	AppendRow(ctx context.Context, rangeA1 string, row []interface{}) error
}

// Writer appends one Ideas row and one LeanCanvas row per submission,
// joined by a freshly generated idea id.
type Writer struct {
	appender RangeAppender
	log      *zap.Logger

	newID func() string
	now   func() time.Time
}

// NewWriter builds a writer over an appender. A nil appender is legal
// and makes every Append fail with ErrNotInitialized, so the process
// can come up without credentials and still serve health checks.
func NewWriter(appender RangeAppender, log *zap.Logger) *Writer {
	return &Writer{
		appender: appender,
		log:      log,
		newID:    canvas.NewIdeaID,
		now:      time.Now,
	}
}

// Append writes the two rows in order and returns the idea id joining
// them. The writes are not transactional: if the LeanCanvas append
// fails after the Ideas append succeeded, the returned *AppendError
// names the failed phase and the orphan Ideas row remains.
func (w *Writer) Append(ctx context.Context, sub canvas.IdeaSubmission, rec canvas.LeanCanvasRecord) (string, error) {
	if w.appender == nil {
		return "", ErrNotInitialized
	}

	id := w.newID()

	if err := w.appender.AppendRow(ctx, ideasRange, canvas.IdeasRow(id, sub, w.now())); err != nil {
		observability.SheetAppends.WithLabelValues(PhaseIdeas, "error").Inc()
		return "", &AppendError{Phase: PhaseIdeas, Err: err}
	}
	observability.SheetAppends.WithLabelValues(PhaseIdeas, "ok").Inc()

	if err := w.appender.AppendRow(ctx, canvasRange, canvas.CanvasRow(id, rec)); err != nil {
		observability.SheetAppends.WithLabelValues(PhaseCanvas, "error").Inc()
		w.log.Error("leancanvas append failed after ideas append, rows are inconsistent",
			zap.String("idea_id", id),
			zap.Error(err))
		return "", &AppendError{Phase: PhaseCanvas, Err: err}
	}
	observability.SheetAppends.WithLabelValues(PhaseCanvas, "ok").Inc()

	w.log.Info("idea appended",
		zap.String("idea_id", id),
		zap.String("title", sub.Title))
	return id, nil
}
