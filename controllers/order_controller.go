package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// ===== Request body =====

type orderDetailIn struct {
	Product struct {
		ID uint `json:"id" binding:"required"`
	} `json:"product" binding:"required"`
	ChosenOption map[string]any `json:"chosen_option"`
}

type orderReq struct {
	OrderDetails []orderDetailIn `json:"order_details"`
}

func (req *orderReq) toItems() []services.OrderItemIn {
	items := make([]services.OrderItemIn, 0, len(req.OrderDetails))
	for _, d := range req.OrderDetails {
		items = append(items, services.OrderItemIn{
			ProductID:    d.Product.ID,
			ChosenOption: d.ChosenOption,
		})
	}
	return items
}

func writeOrderErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmptyOrder), errors.Is(err, services.ErrProductNotFound):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrOrderNotFound):
		resp.NotFound(c, "order not found")
	default:
		resp.ServerError(c, err)
	}
}

// POST /order/
func (oc *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req orderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	view, err := oc.Orders.Create(uid, req.toItems())
	if err != nil {
		writeOrderErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GET /order/
func (oc *OrderController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	views, err := oc.Orders.ListForUser(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GET /order/:id
func (oc *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	view, err := oc.Orders.DetailForUser(uid, uint(id))
	if err != nil {
		writeOrderErr(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// PUT /order/:id
func (oc *OrderController) Update(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	var req orderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	view, err := oc.Orders.Update(uid, uint(id), req.toItems())
	if err != nil {
		writeOrderErr(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// DELETE /order/:id
func (oc *OrderController) Delete(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	if err := oc.Orders.Delete(uid, uint(id)); err != nil {
		writeOrderErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
