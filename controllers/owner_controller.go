package controllers

import (
	"errors"
	"strconv"

	"foodhub/pkg/resp"
	"foodhub/services"
	"foodhub/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ฝั่งเจ้าของร้าน: โปรไฟล์ร้าน + จัดการเมนู
type OwnerController struct {
	RestSvc *services.RestaurantService
	MenuSvc *services.MenuService
}

func NewOwnerController(restSvc *services.RestaurantService, menuSvc *services.MenuService) *OwnerController {
	return &OwnerController{RestSvc: restSvc, MenuSvc: menuSvc}
}

// GET /partner/restaurant
func (h *OwnerController) MyRestaurant(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	rest, err := h.RestSvc.MyRestaurant(uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "no restaurant yet")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rest)
}

// POST /partner/restaurant — เปิดร้าน (owner หนึ่งคนร้านเดียว)
func (h *OwnerController) CreateRestaurant(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	if _, err := h.RestSvc.MyRestaurant(uid); err == nil {
		resp.Conflict(c, "restaurant already exists")
		return
	}

	var req services.RestaurantProfileIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Name == "" {
		resp.BadRequest(c, "name is required")
		return
	}

	rest, err := h.RestSvc.CreateForOwner(uid, &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, rest)
}

// PATCH /partner/restaurant/:id
func (h *OwnerController) UpdateRestaurant(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	var req services.RestaurantProfileIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, err := h.RestSvc.UpdateForOwner(uid, uint(id), &req)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			resp.Forbidden(c, "forbidden")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rest)
}

// GET /partner/restaurant/:id/menu
func (h *OwnerController) Menus(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	items, err := h.MenuSvc.ListForOwner(uid, uint(id))
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			resp.Forbidden(c, "forbidden")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /partner/restaurant/:id/menu
func (h *OwnerController) CreateMenu(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	m, err := h.MenuSvc.Create(uid, uint(id), &req)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			resp.Forbidden(c, "forbidden")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, m)
}

// PATCH /partner/menu/:id
func (h *OwnerController) UpdateMenu(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	m, err := h.MenuSvc.Update(uid, uint(id), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrForbidden):
			resp.Forbidden(c, "forbidden")
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "menu item not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, m)
}

// DELETE /partner/menu/:id
func (h *OwnerController) DeleteMenu(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	if err := h.MenuSvc.Delete(uid, uint(id)); err != nil {
		switch {
		case errors.Is(err, services.ErrForbidden):
			resp.Forbidden(c, "forbidden")
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "menu item not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"ok": true})
}
