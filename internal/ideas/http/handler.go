package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nikita-tita/idea-intake/internal/api/http/middleware"
	"github.com/nikita-tita/idea-intake/internal/canvas"
)

// Structurer turns a raw idea into a LeanCanvasRecord. It never fails;
// the LLM client degrades to a fallback record internally.
type Structurer interface {
	Structure(ctx context.Context, title, description string) canvas.LeanCanvasRecord
}

// CanvasWriter persists one submission as two spreadsheet rows and
// returns the idea id joining them.
type CanvasWriter interface {
	Append(ctx context.Context, sub canvas.IdeaSubmission, rec canvas.LeanCanvasRecord) (string, error)
}

type Handler struct {
	llm    Structurer
	writer CanvasWriter
	log    *zap.Logger
}

func New(llm Structurer, writer CanvasWriter, log *zap.Logger) *Handler {
	return &Handler{
		llm:    llm,
		writer: writer,
		log:    log,
	}
}

// Submit handles POST /api/ideas: validate, structure via the model,
// merge, append the two rows, reply with the id and the merged data.
func (h *Handler) Submit(c *gin.Context) {
	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sub := canvas.IdeaSubmission{
		Title:       strings.TrimSpace(req.IdeaTitle),
		Description: strings.TrimSpace(req.IdeaDescription),
	}
	if sub.Title == "" || sub.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ideaTitle and ideaDescription are required"})
		return
	}

	ctx := c.Request.Context()

	rec := h.llm.Structure(ctx, sub.Title, sub.Description)

	ideaID, err := h.writer.Append(ctx, sub, rec)
	if err != nil {
		h.log.Error("failed to process idea",
			zap.String("request_id", middleware.GetRequestID(ctx)),
			zap.String("title", sub.Title),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to process idea",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, submitResp{
		Success: true,
		IdeaID:  ideaID,
		Message: "Idea processed and saved",
		Data:    mergeData(sub, rec),
	})
}

// mergeData combines the canvas record with the original submission.
// The submission's title and description win on key collision.
func mergeData(sub canvas.IdeaSubmission, rec canvas.LeanCanvasRecord) map[string]interface{} {
	return map[string]interface{}{
		"problem":                  rec.Problem,
		"customer_segments":        rec.CustomerSegments,
		"unique_value_proposition": rec.UniqueValueProposition,
		"solution":                 rec.Solution,
		"channels":                 rec.Channels,
		"revenue_streams":          rec.RevenueStreams,
		"cost_structure":           rec.CostStructure,
		"key_metrics":              rec.KeyMetrics,
		"ideaTitle":                sub.Title,
		"ideaDescription":          sub.Description,
	}
}
