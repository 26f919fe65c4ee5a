package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"backend/entity"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// StaffOrderController is the staff-facing channel that advances order
// status. Every write here runs through the StatusService, which mails the
// owner when the persisted status actually changes.
type StaffOrderController struct {
	Status *services.StatusService
	Orders *services.OrderService
}

func NewStaffOrderController(status *services.StatusService, orders *services.OrderService) *StaffOrderController {
	return &StaffOrderController{Status: status, Orders: orders}
}

type statusReq struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /staff/order/:id/status
func (sc *StaffOrderController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	status, ok := entity.ParseOrderStatus(req.Status)
	if !ok {
		resp.BadRequest(c, services.ErrUnknownStatus.Error())
		return
	}

	if err := sc.Status.UpdateStatus(uint(id), status); err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			resp.NotFound(c, "order not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}

	view, err := sc.Orders.Detail(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
