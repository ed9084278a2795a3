package controllers

import (
	"errors"

	"foodhub/pkg/resp"
	"foodhub/services"
	"foodhub/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	cart := h.Svc.Snapshot(uid)
	resp.OK(c, gin.H{
		"cart":      cart,
		"subtotal":  cart.Total(),
		"itemCount": cart.ItemCount(),
	})
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.Add(uid, &req); err != nil {
		switch {
		case errors.Is(err, services.ErrDifferentRestaurant):
			// ลูกค้าต้องเคลียร์ตะกร้าก่อนเริ่มร้านใหม่
			resp.Conflict(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "menu item not found")
		default:
			resp.BadRequest(c, err.Error())
		}
		return
	}
	resp.Created(c, gin.H{"ok": true})
}

type updateQtyReq struct {
	Index int `json:"index" binding:"min=0"`
	Qty   int `json:"qty"`
}

// PATCH /cart/items/qty
func (h *CartController) UpdateQty(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req updateQtyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	h.Svc.UpdateQty(uid, req.Index, req.Qty)
	resp.OK(c, h.Svc.Snapshot(uid))
}

type removeLineReq struct {
	Index int `json:"index" binding:"min=0"`
}

// DELETE /cart/items
func (h *CartController) Remove(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req removeLineReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	h.Svc.Remove(uid, req.Index)
	resp.OK(c, h.Svc.Snapshot(uid))
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	h.Svc.Clear(uid)
	resp.OK(c, gin.H{"ok": true})
}
