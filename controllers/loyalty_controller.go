package controllers

import (
	"errors"
	"strconv"

	"foodhub/pkg/resp"
	"foodhub/services"
	"foodhub/utils"

	"github.com/gin-gonic/gin"
)

type LoyaltyController struct{ Svc *services.LoyaltyService }

func NewLoyaltyController(svc *services.LoyaltyService) *LoyaltyController {
	return &LoyaltyController{Svc: svc}
}

// GET /loyalty — ยอดแต้มปัจจุบัน (คิดจาก ledger เสมอ)
func (h *LoyaltyController) Points(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	balance, err := h.Svc.BalanceForUser(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	// 100 แต้ม = 1.00
	resp.OK(c, gin.H{"points": balance, "value": utils.FormatCents(int64(balance))})
}

// GET /loyalty/history?limit=
func (h *LoyaltyController) History(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	limit, _ := strconv.Atoi(c.Query("limit"))
	items, err := h.Svc.History(uid, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

type redeemReq struct {
	Points      int    `json:"points" binding:"required,min=1"`
	Description string `json:"description"`
}

// POST /loyalty/redeem — ตัดแต้มแบบไม่ผูกออเดอร์ (เช่นแลกคูปอง)
func (h *LoyaltyController) Redeem(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req redeemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.Redeem(uid, req.Points, req.Description); err != nil {
		if errors.Is(err, services.ErrInsufficientPoints) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}
