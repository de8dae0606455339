package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Ricozl/commerce/internal/auctionerrors"
	"github.com/Ricozl/commerce/internal/utils"

	"github.com/gin-gonic/gin"
)

// Message levels
const (
	LevelInfo    = "info"
	LevelSuccess = "success"
	LevelWarning = "warning"
	LevelError   = "error"
)

// Message is the status line shown to the user after an action
type Message struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

// Response is the envelope of every API reply
type Response struct {
	Success  bool     `json:"success"`
	Message  *Message `json:"message,omitempty"`
	Redirect string   `json:"redirect,omitempty"`
	Data     any      `json:"data,omitempty"`
}

func listingPath(listingID uint) string {
	return fmt.Sprintf("/listings/%d", listingID)
}

const (
	indexPath     = "/"
	watchlistPath = "/watch_list"
	loginPath     = "/login"
)

// respondOK sends data without a status message
func respondOK(c *gin.Context, status int, data any) {
	c.JSON(status, Response{Success: true, Data: data})
}

// respondMessage sends a successful reply carrying a status message and redirect
func respondMessage(c *gin.Context, status int, level, text, redirect string, data any) {
	c.JSON(status, Response{
		Success:  true,
		Message:  &Message{Level: level, Text: text},
		Redirect: redirect,
		Data:     data,
	})
}

// respondError maps err onto a status code and message. redirect is used for
// validation failures; missing records always go back to the index.
func respondError(c *gin.Context, handlerName string, err error, redirect string) {
	status, level, text := MapErrorToHTTP(err)

	switch {
	case status == http.StatusNotFound:
		redirect = indexPath
	case status == http.StatusUnauthorized:
		redirect = loginPath
	}

	fields := map[string]any{"error": err.Error(), "status": status, "request_id": RequestID(c)}
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		utils.Error(handlerName+": request failed", fields)
	} else {
		utils.Warn(handlerName+": request rejected", fields)
	}

	c.JSON(status, Response{
		Success:  false,
		Message:  &Message{Level: level, Text: text},
		Redirect: redirect,
	})
}

// handleBindError replies to a request body that could not be decoded
func handleBindError(c *gin.Context, handlerName string, err error, redirect string) {
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
	c.JSON(http.StatusBadRequest, Response{
		Success:  false,
		Message:  &Message{Level: LevelWarning, Text: "Invalid request payload."},
		Redirect: redirect,
	})
}

// MapErrorToHTTP maps service errors to an HTTP status, message level and text
func MapErrorToHTTP(err error) (int, string, string) {
	var rejected *auctionerrors.BidRejectedError
	switch {
	case errors.As(err, &rejected):
		return http.StatusConflict, LevelWarning, "Bid must be higher than Current Price of $" + rejected.CurrentPrice.StringFixed(2) + "."
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, LevelWarning, "Bid must be higher than Current Price."
	case errors.Is(err, auctionerrors.ErrInvalidAmount):
		return http.StatusBadRequest, LevelWarning, "Bid must be a positive amount with at most two decimal places."
	case errors.Is(err, auctionerrors.ErrListingInactive):
		return http.StatusConflict, LevelWarning, "This auction has ended."
	case errors.Is(err, auctionerrors.ErrAlreadyClosed):
		return http.StatusConflict, LevelWarning, "This auction has already ended."
	case errors.Is(err, auctionerrors.ErrAlreadyWatching):
		return http.StatusConflict, LevelWarning, "Listing is already on Watchlist"
	case errors.Is(err, auctionerrors.ErrNotWatching):
		return http.StatusConflict, LevelWarning, "Listing is not on Watchlist."
	case errors.Is(err, auctionerrors.ErrPasswordMismatch):
		return http.StatusBadRequest, LevelWarning, "Passwords must match."
	case errors.Is(err, auctionerrors.ErrUsernameTaken):
		return http.StatusConflict, LevelWarning, "Username already taken."
	case errors.Is(err, auctionerrors.ErrInvalidListing):
		return http.StatusBadRequest, LevelWarning, "Problem with Listing. Try again."
	case errors.Is(err, auctionerrors.ErrInvalidComment):
		return http.StatusBadRequest, LevelWarning, "Comments couldn't be saved. Please try again."
	case errors.Is(err, auctionerrors.ErrUnknownAction):
		return http.StatusBadRequest, LevelWarning, "Unknown action."
	case errors.Is(err, auctionerrors.ErrValidation):
		return http.StatusBadRequest, LevelWarning, validationText(err)
	case errors.Is(err, auctionerrors.ErrListingNotFound):
		return http.StatusNotFound, LevelWarning, "Listing doesn't exist."
	case errors.Is(err, auctionerrors.ErrCategoryNotFound):
		return http.StatusNotFound, LevelWarning, "Category doesn't exist."
	case errors.Is(err, auctionerrors.ErrUserNotFound):
		return http.StatusNotFound, LevelWarning, "Account doesn't exist."
	case errors.Is(err, auctionerrors.ErrNotFound):
		return http.StatusNotFound, LevelWarning, "Not found."
	case errors.Is(err, auctionerrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, LevelWarning, "Invalid username and/or password."
	case errors.Is(err, auctionerrors.ErrUnauthorized):
		return http.StatusUnauthorized, LevelWarning, "You must be logged in."
	case errors.Is(err, auctionerrors.ErrNotListingOwner):
		return http.StatusForbidden, LevelWarning, "Only the listing creator can end this auction."
	case errors.Is(err, auctionerrors.ErrForbidden):
		return http.StatusForbidden, LevelWarning, "Not allowed."
	case errors.Is(err, auctionerrors.ErrTryAgain):
		return http.StatusServiceUnavailable, LevelWarning, "Please try again."
	default:
		return http.StatusInternalServerError, LevelError, "Something went wrong. Please try again."
	}
}

// validationText strips the kind prefix from a validation error
func validationText(err error) string {
	prefix := auctionerrors.ErrValidation.Error() + ": "
	text := err.Error()
	if len(text) > len(prefix) && text[:len(prefix)] == prefix {
		return text[len(prefix):]
	}
	return text
}
