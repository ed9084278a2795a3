package controllers

import (
	"errors"
	"strconv"

	"foodhub/entity"
	"foodhub/pkg/resp"
	"foodhub/services"
	"foodhub/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// คิวออเดอร์ฝั่งร้าน + ปุ่มเปลี่ยนสถานะ
type OwnerOrderController struct{ Svc *services.OrderService }

func NewOwnerOrderController(svc *services.OrderService) *OwnerOrderController {
	return &OwnerOrderController{Svc: svc}
}

// GET /partner/restaurant/:id/orders?status=&page=&limit=
// ไม่ส่ง status มา = คิวที่ยังต้องจัดการ (pending..ready)
func (h *OwnerOrderController) Orders(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	var statuses []entity.OrderStatus
	if s := c.Query("status"); s != "" {
		st := entity.OrderStatus(s)
		if !st.Valid() {
			resp.BadRequest(c, "invalid status")
			return
		}
		statuses = []entity.OrderStatus{st}
	}

	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	out, err := h.Svc.ListForRestaurant(uid, uint(id), statuses, page, limit)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			resp.Forbidden(c, "forbidden")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /partner/restaurant/:id/orders/:orderId
func (h *OwnerOrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	restID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	o, err := h.Svc.DetailForRestaurant(uid, uint(restID), uint(orderID))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrForbidden):
			resp.Forbidden(c, "forbidden")
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "order not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, o)
}

// ----- Transitions -----

func (h *OwnerOrderController) Confirm(c *gin.Context) {
	h.transition(c, h.Svc.OwnerConfirm)
}

func (h *OwnerOrderController) Cancel(c *gin.Context) {
	h.transition(c, h.Svc.OwnerCancel)
}

func (h *OwnerOrderController) StartPreparing(c *gin.Context) {
	h.transition(c, h.Svc.OwnerStartPreparing)
}

func (h *OwnerOrderController) MarkReady(c *gin.Context) {
	h.transition(c, h.Svc.OwnerMarkReady)
}

type handoffReq struct {
	DriverID uint `json:"driverId" binding:"required"`
}

// PATCH /partner/orders/:orderId/handoff — ร้านส่งของให้คนขับหน้าร้านเอง
func (h *OwnerOrderController) Handoff(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req handoffReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	writeTransitionResult(c, h.Svc.OwnerHandoff(uid, uint(orderID), req.DriverID))
}

func (h *OwnerOrderController) transition(c *gin.Context, fn func(ownerID, orderID uint) error) {
	uid := utils.CurrentUserID(c)
	orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	writeTransitionResult(c, fn(uid, uint(orderID)))
}

// แปลงผล transition เป็น HTTP: invalid transition = 409 (กดผิดลำดับหรือแพ้ race)
func writeTransitionResult(c *gin.Context, err error) {
	switch {
	case err == nil:
		resp.OK(c, gin.H{"ok": true})
	case errors.Is(err, services.ErrInvalidTransition):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "forbidden")
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "order not found")
	default:
		resp.ServerError(c, err)
	}
}
