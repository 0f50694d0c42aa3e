package main

import (
	"fmt"

	"cardoctor-backend/auth"
	"cardoctor-backend/config"
	"cardoctor-backend/logger"
	"cardoctor-backend/models"
	"cardoctor-backend/repository"
	"cardoctor-backend/routes"
	"cardoctor-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	log := logger.New("server")

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}
	log.Info().Msg("connected to database")

	if err := db.AutoMigrate(
		&models.Service{},
		&models.ServiceOrder{},
	); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	serviceRepo := repository.NewGormServices(db)
	orderRepo := repository.NewGormOrders(db)
	codec := auth.NewCodec(cfg.AccessTokenSecret, cfg.TokenTTL)

	digest := services.NewOrderDigest(orderRepo, log)
	if err := digest.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start order digest")
	}
	defer digest.Stop()

	r := routes.SetupRouter(routes.Deps{
		Services:       serviceRepo,
		Orders:         orderRepo,
		Codec:          codec,
		Log:            log,
		AllowedOrigins: cfg.AllowedOrigins,
	})
	printRoutes(r)

	log.Info().Str("port", cfg.Port).Msg("server started")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
