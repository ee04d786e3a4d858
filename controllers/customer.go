package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salon-booking-api/repository"
	"salon-booking-api/utils"
)

// CustomerController exposes the read-only admin view over customers.
// Customers themselves are created lazily by the booking flow, never here.
type CustomerController struct {
	customers repository.CustomerRepository
}

func NewCustomerController(customers repository.CustomerRepository) *CustomerController {
	return &CustomerController{customers: customers}
}

// GetCustomers retrieves all customers
func (cc *CustomerController) GetCustomers(c *gin.Context) {
	customers, err := cc.customers.List(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	c.JSON(http.StatusOK, customers)
}
