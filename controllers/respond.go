package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Single translation point between error kinds and HTTP envelopes. Keeping
// it in one place means the status mapping can change without touching the
// handlers.

// respondStorageError reports a failed storage call. Compatibility note:
// the frontend expects HTTP 200 with {error:true, message}, so storage
// failures deliberately do not set a non-2xx status. Flip the status here
// if that contract is ever renegotiated.
func respondStorageError(c *gin.Context, log zerolog.Logger, err error) {
	log.Error().
		Err(err).
		Str("path", c.Request.URL.Path).
		Msg("storage operation failed")
	c.JSON(http.StatusOK, gin.H{"error": true, "message": err.Error()})
}

// respondInvalidID rejects a malformed path identifier with 400.
func respondInvalidID(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": "invalid identifier: " + err.Error()})
}

// respondBadInput rejects a body that failed binding with 400.
func respondBadInput(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": "Invalid input: " + err.Error()})
}
