package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cardoctor-backend/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedEngine(codec *auth.Codec) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", VerifyToken(codec), func(c *gin.Context) {
		claims, ok := UserClaims(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "no claims"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": claims.Email})
	})
	return r
}

func TestVerifyTokenAttachesClaims(t *testing.T) {
	codec := auth.NewCodec("test-secret", time.Hour)
	r := newProtectedEngine(codec)

	token, err := codec.Issue("a@x.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"email":"a@x.com"}`, w.Body.String())
}

func TestVerifyTokenMissingCookie(t *testing.T) {
	r := newProtectedEngine(auth.NewCodec("test-secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"auth":false,"message":"Not authorized"}`, w.Body.String())
}

func TestVerifyTokenBadSignature(t *testing.T) {
	issuer := auth.NewCodec("other-secret", time.Hour)
	r := newProtectedEngine(auth.NewCodec("test-secret", time.Hour))

	token, err := issuer.Issue("a@x.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Unauthorized"}`, w.Body.String())
}
