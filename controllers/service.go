package controllers

import (
	"errors"
	"net/http"

	"cardoctor-backend/models"
	"cardoctor-backend/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	ServiceID   string       `json:"service_id" binding:"required"`
	Title       string       `json:"title" binding:"required"`
	Price       float64      `json:"price" binding:"required,min=0"`
	Img         string       `json:"img"`
	Description string       `json:"description"`
	Facility    models.JSONB `json:"facility"`
}

type ServiceController struct {
	services repository.ServiceRepository
	log      zerolog.Logger
}

func NewServiceController(services repository.ServiceRepository, log zerolog.Logger) *ServiceController {
	return &ServiceController{services: services, log: log}
}

// List returns every service in summary form. Description and facility
// are never included here; they stay on the detail document.
func (sc *ServiceController) List(c *gin.Context) {
	services, err := sc.services.List(c.Request.Context())
	if err != nil {
		respondStorageError(c, sc.log, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// Get returns the checkout-page projection of one service: title, price
// and image. A well-formed id that matches nothing yields a JSON null body,
// which is what the frontend checks for.
func (sc *ServiceController) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondInvalidID(c, err)
		return
	}

	service, err := sc.services.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		respondStorageError(c, sc.log, err)
		return
	}
	c.JSON(http.StatusOK, service)
}

// Create inserts a service unless one with the same (service_id, title,
// price) already exists, in which case the existing id is returned. The
// pre-check and the insert are separate storage calls, so two concurrent
// identical submissions can still both insert.
func (sc *ServiceController) Create(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadInput(c, err)
		return
	}

	ctx := c.Request.Context()
	existing, err := sc.services.FindByFingerprint(ctx, input.ServiceID, input.Title, input.Price)
	if err == nil {
		c.JSON(http.StatusOK, models.InsertResult{
			InsertedID: existing.ID,
			Status:     "Already exists in DB",
		})
		return
	}
	if !errors.Is(err, repository.ErrNotFound) {
		respondStorageError(c, sc.log, err)
		return
	}

	service := models.Service{
		ServiceID:   input.ServiceID,
		Title:       input.Title,
		Price:       input.Price,
		Img:         input.Img,
		Description: input.Description,
		Facility:    input.Facility,
	}
	if err := sc.services.Create(ctx, &service); err != nil {
		respondStorageError(c, sc.log, err)
		return
	}

	c.JSON(http.StatusOK, models.InsertResult{
		InsertedID: service.ID,
		Status:     "Added",
	})
}
