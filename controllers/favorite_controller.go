package controllers

import (
	"errors"

	"foodhub/pkg/resp"
	"foodhub/services"
	"foodhub/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FavoriteController struct{ Svc *services.FavoriteService }

func NewFavoriteController(svc *services.FavoriteService) *FavoriteController {
	return &FavoriteController{Svc: svc}
}

// POST /favorites/toggle
func (h *FavoriteController) Toggle(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.ToggleFavoriteIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	favorited, err := h.Svc.Toggle(uid, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBadFavoriteTarget):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "target not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"favorited": favorited})
}

// GET /favorites
func (h *FavoriteController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	out, err := h.Svc.List(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}
