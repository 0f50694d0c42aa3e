package controllers

import (
	"net/http"

	"cardoctor-backend/middleware"
	"cardoctor-backend/models"
	"cardoctor-backend/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ApproveInput carries the new status for an order. The field name comes
// from the frontend, which posts {approved: "<status>"}.
type ApproveInput struct {
	Approved string `json:"approved" binding:"required"`
}

type CheckoutController struct {
	orders repository.OrderRepository
	log    zerolog.Logger
}

func NewCheckoutController(orders repository.OrderRepository, log zerolog.Logger) *CheckoutController {
	return &CheckoutController{orders: orders, log: log}
}

// ListForUser returns the orders belonging to the requested email. The
// route runs behind VerifyToken; on top of that the query email must match
// the token's email, so one user cannot read another's orders no matter
// what they put in the query string.
func (cc *CheckoutController) ListForUser(c *gin.Context) {
	claims, ok := middleware.UserClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}
	if c.Query("email") != claims.Email {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized Access Forbidden"})
		return
	}

	orders, err := cc.orders.ListByEmail(c.Request.Context(), claims.Email)
	if err != nil {
		respondStorageError(c, cc.log, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Submit inserts a new order and echoes the assigned id.
func (cc *CheckoutController) Submit(c *gin.Context) {
	var order models.ServiceOrder
	if err := c.ShouldBindJSON(&order); err != nil {
		respondBadInput(c, err)
		return
	}

	if err := cc.orders.Create(c.Request.Context(), &order); err != nil {
		respondStorageError(c, cc.log, err)
		return
	}
	c.JSON(http.StatusOK, models.InsertResult{InsertedID: order.ID})
}

// Approve sets the status field of one order and nothing else.
func (cc *CheckoutController) Approve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondInvalidID(c, err)
		return
	}

	var input ApproveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadInput(c, err)
		return
	}

	result, err := cc.orders.SetStatus(c.Request.Context(), id, input.Approved)
	if err != nil {
		respondStorageError(c, cc.log, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Cancel deletes one order. Deleting an id that no longer exists is not an
// error; the result just reports zero deletions.
func (cc *CheckoutController) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondInvalidID(c, err)
		return
	}

	result, err := cc.orders.Delete(c.Request.Context(), id)
	if err != nil {
		respondStorageError(c, cc.log, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
