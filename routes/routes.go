package routes

import (
	"net/http"

	"cardoctor-backend/auth"
	"cardoctor-backend/controllers"
	"cardoctor-backend/middleware"
	"cardoctor-backend/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Deps bundles everything the router needs. The storage handles are
// created once at startup and passed down here; nothing in the handler
// chain reaches for globals.
type Deps struct {
	Services       repository.ServiceRepository
	Orders         repository.OrderRepository
	Codec          *auth.Codec
	Log            zerolog.Logger
	AllowedOrigins []string
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Credentialed CORS: only the configured origins may set or receive
	// the auth cookie.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	logged := middleware.RequestLogger(deps.Log)
	protected := middleware.VerifyToken(deps.Codec)

	authController := controllers.NewAuthController(deps.Codec, deps.Log)
	serviceController := controllers.NewServiceController(deps.Services, deps.Log)
	checkoutController := controllers.NewCheckoutController(deps.Orders, deps.Log)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Car Doctor Server is Running!")
	})

	r.POST("/jwt", logged, authController.IssueToken)
	r.POST("/logout", logged, authController.Logout)

	r.GET("/services", logged, serviceController.List)
	r.GET("/services/:id", logged, serviceController.Get)
	r.POST("/services", serviceController.Create)

	r.GET("/checkout", logged, protected, checkoutController.ListForUser)
	r.POST("/checkout", checkoutController.Submit)
	r.PATCH("/checkout/:id", checkoutController.Approve)
	r.DELETE("/checkout/:id", checkoutController.Cancel)

	return r
}
