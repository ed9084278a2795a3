package controllers

import (
	"foodhub/configs"
	"foodhub/entity"
	"foodhub/pkg/resp"
	"foodhub/repository"
	"foodhub/services"
	"foodhub/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(db *gorm.DB, cfg *configs.Config) *AuthController {
	repo := repository.NewUserRepository(db)
	return &AuthController{Svc: services.NewAuthService(repo, cfg.JWTSecret, cfg.JWTTTL)}
}

type registerReq struct {
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required,min=6"`
	Name     string      `json:"name" binding:"required"`
	Phone    string      `json:"phone"`
	Role     entity.Role `json:"role" binding:"omitempty,oneof=customer restaurant driver"`
}

// POST /auth/register
func (h *AuthController) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := h.Svc.Register(req.Email, req.Password, req.Name, req.Phone, req.Role)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, user)
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func (h *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := h.Svc.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

// GET /auth/me
func (h *AuthController) Me(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	user, err := h.Svc.GetProfile(uid)
	if err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, user)
}

type updateMeReq struct {
	Name    string          `json:"name"`
	Phone   string          `json:"phone"`
	Address *entity.Address `json:"address"`
}

// PATCH /auth/me
func (h *AuthController) UpdateMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req updateMeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.Address != nil {
		updates["addr_street"] = req.Address.Street
		updates["addr_city"] = req.Address.City
		updates["addr_state"] = req.Address.State
		updates["addr_zip_code"] = req.Address.ZipCode
		updates["addr_lat"] = req.Address.Lat
		updates["addr_lng"] = req.Address.Lng
	}

	user, err := h.Svc.UpdateProfile(uid, updates)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, user)
}
