package controllers

import (
	"errors"
	"fmt"
	"strconv"

	"foodhub/configs"
	"foodhub/pkg/resp"
	"foodhub/services"
	"foodhub/utils"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

// ฝั่งลูกค้า: checkout + ดูออเดอร์ตัวเอง
type OrderController struct {
	Svc *services.OrderService
	Cfg *configs.Config
}

func NewOrderController(svc *services.OrderService, cfg *configs.Config) *OrderController {
	return &OrderController{Svc: svc, Cfg: cfg}
}

// POST /orders
func (h *OrderController) Checkout(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := h.Svc.CheckoutFromCart(uid, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCartEmpty),
			errors.Is(err, services.ErrBelowMinOrder),
			errors.Is(err, services.ErrInsufficientPoints):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrRestaurantClosed):
			resp.Conflict(c, err.Error())
		case errors.Is(err, services.ErrRestaurantMissing), errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, out)
}

// GET /orders?limit=
func (h *OrderController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	limit, _ := strconv.Atoi(c.Query("limit"))

	items, err := h.Svc.ListForCustomer(uid, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	o, err := h.Svc.DetailForCustomer(uid, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, o)
}

// GET /orders/:id/qr → PNG QR ของลิงก์ tracking เอาไว้สแกนเปิดบนมือถือ
func (h *OrderController) TrackingQR(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	// เช็คว่าเป็นออเดอร์ของตัวเองจริงก่อนแจกลิงก์
	o, err := h.Svc.DetailForCustomer(uid, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	url := fmt.Sprintf("%s/orders/%d/track", h.Cfg.BaseURL, o.ID)
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Data(200, "image/png", png)
}
