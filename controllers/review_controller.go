package controllers

import (
	"errors"

	"foodhub/pkg/resp"
	"foodhub/services"
	"foodhub/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReviewController struct{ Svc *services.ReviewService }

func NewReviewController(svc *services.ReviewService) *ReviewController {
	return &ReviewController{Svc: svc}
}

// POST /reviews — รีวิวออเดอร์ที่ส่งเสร็จแล้ว
func (h *ReviewController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.AddReviewIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rv, err := h.Svc.Add(uid, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotDelivered):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrAlreadyReviewed):
			resp.Conflict(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "order not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, rv)
}
