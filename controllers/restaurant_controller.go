package controllers

import (
	"errors"
	"strconv"

	"foodhub/pkg/resp"
	"foodhub/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ฝั่ง public — ลูกค้าเปิดดูร้าน/เมนู/รีวิวโดยไม่ต้อง login
type RestaurantController struct {
	Svc       *services.RestaurantService
	ReviewSvc *services.ReviewService
}

func NewRestaurantController(svc *services.RestaurantService, reviewSvc *services.ReviewService) *RestaurantController {
	return &RestaurantController{Svc: svc, ReviewSvc: reviewSvc}
}

// GET /restaurants?limit=
func (h *RestaurantController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	items, err := h.Svc.List(limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /restaurants/search?q=&cuisine=
func (h *RestaurantController) Search(c *gin.Context) {
	items, err := h.Svc.Search(c.Query("q"), c.Query("cuisine"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /restaurants/:id
func (h *RestaurantController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	rest, err := h.Svc.Detail(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rest)
}

// GET /restaurants/:id/menu
func (h *RestaurantController) Menu(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	items, err := h.Svc.Menu(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /restaurants/:id/reviews
func (h *RestaurantController) Reviews(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	items, err := h.ReviewSvc.ListByRestaurant(uint(id), limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}
