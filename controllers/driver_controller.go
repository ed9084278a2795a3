package controllers

import (
	"strconv"

	"foodhub/pkg/resp"
	"foodhub/services"
	"foodhub/utils"

	"github.com/gin-gonic/gin"
)

// ฝั่งคนขับ: ดูงานว่าง รับงาน อัปเดตพิกัด ปิดงาน
type DriverController struct{ Svc *services.OrderService }

func NewDriverController(svc *services.OrderService) *DriverController {
	return &DriverController{Svc: svc}
}

// GET /partner/driver/jobs — ออเดอร์ ready ที่ยังไม่มีคนรับ
func (h *DriverController) Jobs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	items, err := h.Svc.ListAvailableJobs(limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /partner/driver/deliveries — งานของตัวเอง (กำลังส่ง + ประวัติ)
func (h *DriverController) MyDeliveries(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	limit, _ := strconv.Atoi(c.Query("limit"))
	items, err := h.Svc.ListForDriver(uid, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// PATCH /partner/driver/jobs/:orderId/accept
// สองคนกดรับพร้อมกัน ชนะคนเดียว — คนแพ้ได้ 409
func (h *DriverController) Accept(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	writeTransitionResult(c, h.Svc.DriverAccept(uid, uint(orderID)))
}

type locationReq struct {
	Lat float64 `json:"lat" binding:"required"`
	Lng float64 `json:"lng" binding:"required"`
}

// PATCH /partner/driver/jobs/:orderId/location
func (h *DriverController) UpdateLocation(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req locationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	writeTransitionResult(c, h.Svc.DriverUpdateLocation(uid, uint(orderID), req.Lat, req.Lng))
}

// PATCH /partner/driver/jobs/:orderId/complete
func (h *DriverController) Complete(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	writeTransitionResult(c, h.Svc.DriverComplete(uid, uint(orderID)))
}
