package services

import (
	"errors"
	"fmt"
	"time"

	"foodhub/entity"
	"foodhub/repository"

	"gorm.io/gorm"
)

var (
	ErrCartEmpty         = errors.New("cart is empty")
	ErrRestaurantClosed  = errors.New("restaurant is closed")
	ErrBelowMinOrder     = errors.New("below minimum order")
	ErrRestaurantMissing = errors.New("restaurant not found")
)

// OrderUpdate คือ event ที่ push ให้คนที่ track ออเดอร์อยู่ (ผ่าน ws hub)
type OrderUpdate struct {
	OrderID   uint               `json:"orderId"`
	Status    entity.OrderStatus `json:"status"`
	DriverID  *uint              `json:"driverId,omitempty"`
	DriverLat *float64           `json:"driverLat,omitempty"`
	DriverLng *float64           `json:"driverLng,omitempty"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// OrderPublisher ให้ ws hub เสียบเข้ามา — service ไม่รู้จัก websocket
type OrderPublisher interface {
	PublishOrderUpdate(u OrderUpdate)
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	RestRepo *repository.RestaurantRepository
	UserRepo *repository.UserRepository
	Loyalty  *repository.LoyaltyRepository
	Notify   *repository.NotificationRepository
	Carts    *CartService

	TaxRate   float64
	Publisher OrderPublisher // nil ได้ (เช่นใน test)
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	restRepo *repository.RestaurantRepository,
	userRepo *repository.UserRepository,
	loyalty *repository.LoyaltyRepository,
	notify *repository.NotificationRepository,
	carts *CartService,
	taxRate float64,
) *OrderService {
	return &OrderService{
		DB: db, Repo: repo, RestRepo: restRepo, UserRepo: userRepo,
		Loyalty: loyalty, Notify: notify, Carts: carts, TaxRate: taxRate,
	}
}

// ----- Checkout -----

type CheckoutReq struct {
	Address             entity.Address `json:"address" binding:"required"`
	PaymentMethod       string         `json:"paymentMethod" binding:"omitempty,oneof=card cash"`
	SpecialInstructions string         `json:"specialInstructions"`
	RedeemPoints        int            `json:"redeemPoints" binding:"omitempty,min=0"`
}

type CheckoutRes struct {
	ID    uint  `json:"id"`
	Quote Quote `json:"quote"`
}

// CheckoutFromCart สร้างออเดอร์จากตะกร้าของ user ใน transaction เดียว:
// order + items (snapshot) + แต้ม earned (+ redeemed ถ้าใช้แต้ม) + notification
// แล้วค่อยล้างตะกร้าเมื่อ commit ผ่าน
func (s *OrderService) CheckoutFromCart(userID uint, req *CheckoutReq) (*CheckoutRes, error) {
	cart := s.Carts.Snapshot(userID)
	if len(cart.Lines) == 0 {
		return nil, ErrCartEmpty
	}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	rest, err := s.RestRepo.Get(cart.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantMissing
		}
		return nil, err
	}
	if !rest.IsOpen {
		return nil, ErrRestaurantClosed
	}

	subtotal := cart.Total()
	if subtotal < rest.MinOrder {
		return nil, ErrBelowMinOrder
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "card"
	}

	var out CheckoutRes
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		// ใช้แต้ม → เช็คยอดจาก ledger ใน transaction เดียวกัน
		if req.RedeemPoints > 0 {
			txs, err := s.Loyalty.ListAllByUser(tx, userID)
			if err != nil {
				return err
			}
			if !CanRedeem(Balance(txs), req.RedeemPoints) {
				return ErrInsufficientPoints
			}
		}

		quote := ComputeQuote(subtotal, rest.DeliveryFee, s.TaxRate, req.RedeemPoints)

		order := entity.Order{
			CustomerID:          userID,
			CustomerName:        user.Name,
			CustomerPhone:       user.Phone,
			RestaurantID:        rest.ID,
			RestaurantName:      rest.Name,
			DeliveryAddress:     req.Address,
			Subtotal:            quote.Subtotal,
			DeliveryFee:         quote.DeliveryFee,
			Tax:                 quote.Tax,
			Discount:            quote.Discount,
			Total:               quote.Total,
			PointsRedeemed:      quote.PointsRedeemed,
			Status:              entity.StatusPending,
			PaymentMethod:       paymentMethod,
			SpecialInstructions: req.SpecialInstructions,
		}
		for _, l := range cart.Lines {
			order.Items = append(order.Items, entity.OrderItem{
				MenuItemID:          l.MenuItemID,
				Name:                l.Name,
				Price:               l.Price,
				Qty:                 l.Qty,
				SpecialInstructions: l.SpecialInstructions,
				Addons:              l.Addons,
				Total:               l.Total(),
			})
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		// แต้มจากยอดก่อนค่าส่ง/ภาษี — ศูนย์แต้มก็บันทึก ให้ประวัติครบทุกออเดอร์
		earned := EarnFromOrder(quote.Subtotal)
		if err := s.Loyalty.Append(tx, &entity.LoyaltyTransaction{
			UserID:      userID,
			OrderID:     &order.ID,
			Points:      earned,
			Type:        entity.LoyaltyEarned,
			Description: fmt.Sprintf("Points earned from order #%d", order.ID),
		}); err != nil {
			return err
		}

		if quote.PointsRedeemed > 0 {
			if err := s.Loyalty.Append(tx, &entity.LoyaltyTransaction{
				UserID:      userID,
				OrderID:     &order.ID,
				Points:      quote.PointsRedeemed,
				Type:        entity.LoyaltyRedeemed,
				Description: fmt.Sprintf("Redeemed on order #%d", order.ID),
			}); err != nil {
				return err
			}
		}

		if err := s.Notify.Create(tx, &entity.Notification{
			UserID:  userID,
			Title:   "Order placed",
			Message: fmt.Sprintf("Your order at %s is waiting for confirmation", rest.Name),
			Type:    entity.NotifyOrder,
			OrderID: &order.ID,
		}); err != nil {
			return err
		}

		out = CheckoutRes{ID: order.ID, Quote: quote}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Carts.Clear(userID)
	return &out, nil
}

// ----- List & Detail -----

func (s *OrderService) ListForCustomer(userID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForCustomer(userID, limit)
}

func (s *OrderService) DetailForCustomer(userID, orderID uint) (*entity.Order, error) {
	return s.Repo.GetOrderForCustomer(userID, orderID)
}

type RestaurantOrdersOut struct {
	Items []entity.Order `json:"items"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// ListForRestaurant — default เฉพาะคิวที่ยังไม่จบ (pending..ready)
func (s *OrderService) ListForRestaurant(ownerID, restID uint, statuses []entity.OrderStatus, page, limit int) (*RestaurantOrdersOut, error) {
	ok, err := s.RestRepo.IsOwnedBy(restID, ownerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}

	if len(statuses) == 0 {
		statuses = entity.ActiveStatuses()
	}
	items, total, err := s.Repo.ListOrdersForRestaurant(restID, statuses, page, limit)
	if err != nil {
		return nil, err
	}
	return &RestaurantOrdersOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *OrderService) DetailForRestaurant(ownerID, restID, orderID uint) (*entity.Order, error) {
	ok, err := s.RestRepo.IsOwnedBy(restID, ownerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}
	return s.Repo.GetOrderForRestaurant(restID, orderID)
}

// งานว่างสำหรับคนขับ (ready + ยังไม่มีคนรับ)
func (s *OrderService) ListAvailableJobs(limit int) ([]entity.Order, error) {
	return s.Repo.ListReadyOrders(limit)
}

func (s *OrderService) ListForDriver(driverID uint, limit int) ([]entity.Order, error) {
	return s.Repo.ListOrdersForDriver(driverID, limit)
}

// ----- Internal -----

var statusMessages = map[entity.OrderStatus]string{
	entity.StatusConfirmed:      "Your order was confirmed by the restaurant",
	entity.StatusPreparing:      "The kitchen started preparing your order",
	entity.StatusReady:          "Your order is ready and waiting for a driver",
	entity.StatusOutForDelivery: "Your order is on the way",
	entity.StatusDelivered:      "Your order was delivered. Enjoy!",
	entity.StatusCancelled:      "Your order was cancelled by the restaurant",
}

func (s *OrderService) notifyStatus(tx *gorm.DB, o *entity.Order, to entity.OrderStatus) {
	msg, ok := statusMessages[to]
	if ok {
		// แจ้งเตือนพลาดไม่ควรล้ม transition — เก็บ error ไว้เฉย ๆ
		_ = s.Notify.Create(tx, &entity.Notification{
			UserID:  o.CustomerID,
			Title:   "Order update",
			Message: msg,
			Type:    entity.NotifyOrder,
			OrderID: &o.ID,
		})
	}

	if s.Publisher != nil {
		u := OrderUpdate{OrderID: o.ID, Status: to, UpdatedAt: time.Now()}
		if to == entity.StatusOutForDelivery || o.DriverID != nil {
			u.DriverID = o.DriverID
		}
		s.Publisher.PublishOrderUpdate(u)
	}
}

func (s *OrderService) publishLocation(orderID, driverID uint, lat, lng float64) {
	if s.Publisher == nil {
		return
	}
	s.Publisher.PublishOrderUpdate(OrderUpdate{
		OrderID:   orderID,
		Status:    entity.StatusOutForDelivery,
		DriverID:  &driverID,
		DriverLat: &lat,
		DriverLng: &lng,
		UpdatedAt: time.Now(),
	})
}
