package controllers

import (
	"net/http"

	"cardoctor-backend/auth"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// TokenInput is the identity claim posted to /jwt.
type TokenInput struct {
	Email string `json:"email" binding:"required,email"`
}

type AuthController struct {
	codec *auth.Codec
	log   zerolog.Logger
}

func NewAuthController(codec *auth.Codec, log zerolog.Logger) *AuthController {
	return &AuthController{codec: codec, log: log}
}

// IssueToken signs a session token for the posted identity claim and sets
// it as the httpOnly "token" cookie. The token itself never appears in the
// response body.
func (ac *AuthController) IssueToken(c *gin.Context) {
	var input TokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadInput(c, err)
		return
	}

	token, err := ac.codec.Issue(input.Email)
	if err != nil {
		ac.log.Error().Err(err).Msg("failed to sign token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "Failed to generate token"})
		return
	}

	c.SetCookie(
		"token",
		token,
		int(ac.codec.TTL().Seconds()),
		"/",
		"",
		false,
		true,
	)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout clears the token cookie. Nothing is revoked server-side: a copy
// of the token stays valid until expiry.
func (ac *AuthController) Logout(c *gin.Context) {
	c.SetCookie(
		"token",
		"",
		-1,
		"/",
		"",
		false,
		true,
	)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
