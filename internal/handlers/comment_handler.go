package handlers

import (
	"net/http"

	"github.com/Ricozl/commerce/internal/auctionerrors"
	"github.com/Ricozl/commerce/internal/auth"

	"github.com/gin-gonic/gin"
)

// CommentHandler accepts comment submissions
type CommentHandler struct {
	comments CommentPoster
}

func NewCommentHandler(comments CommentPoster) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// Post saves a comment and sends the user back to the index.
// POST /api/comments
func (h *CommentHandler) Post(c *gin.Context) {
	identity, ok := auth.CurrentIdentity(c)
	if !ok {
		respondError(c, "PostComment", auctionerrors.ErrUnauthorized, "")
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, "PostComment", err, indexPath)
		return
	}

	comment, err := h.comments.AddComment(c.Request.Context(), identity, req.ListingID, req.Text)
	if err != nil {
		respondError(c, "PostComment", err, indexPath)
		return
	}

	respondMessage(c, http.StatusCreated, LevelSuccess, "Comments are saved to listing.", indexPath, toCommentResponse(comment))
}
