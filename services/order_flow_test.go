package services

import (
	"fmt"
	"testing"

	"foodhub/entity"
	"foodhub/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fixture ครบชุด: customer + owner + driver + ร้านเปิด + เมนูหนึ่งจานพร้อม addon
type testEnv struct {
	db       *gorm.DB
	orders   *OrderService
	carts    *CartService
	loyalty  *repository.LoyaltyRepository
	customer entity.User
	owner    entity.User
	driver   entity.User
	rest     entity.Restaurant
	item     entity.MenuItem
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Restaurant{}, &entity.MenuItem{}, &entity.Addon{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.LoyaltyTransaction{}, &entity.Notification{},
	))

	env := &testEnv{db: db}
	env.customer = entity.User{Email: "cust@test.local", Name: "Cust", Role: entity.RoleCustomer}
	env.owner = entity.User{Email: "owner@test.local", Name: "Owner", Role: entity.RoleRestaurant}
	env.driver = entity.User{Email: "driver@test.local", Name: "Driver", Role: entity.RoleDriver}
	require.NoError(t, db.Create(&env.customer).Error)
	require.NoError(t, db.Create(&env.owner).Error)
	require.NoError(t, db.Create(&env.driver).Error)

	env.rest = entity.Restaurant{
		Name: "Golden Wok", IsOpen: true,
		DeliveryFee: 299, MinOrder: 0,
		OwnerID: env.owner.ID,
	}
	require.NoError(t, db.Create(&env.rest).Error)

	env.item = entity.MenuItem{
		RestaurantID: env.rest.ID,
		Name:         "Pad Thai", Price: 1000, IsAvailable: true,
		Addons: []entity.Addon{{Name: "Fried Egg", Price: 150}},
	}
	require.NoError(t, db.Create(&env.item).Error)

	menuRepo := repository.NewMenuRepository(db)
	env.carts = NewCartService(menuRepo)
	env.loyalty = repository.NewLoyaltyRepository(db)
	env.orders = NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewRestaurantRepository(db),
		repository.NewUserRepository(db),
		env.loyalty,
		repository.NewNotificationRepository(db),
		env.carts,
		0.08,
	)
	return env
}

func (e *testEnv) fillCart(t *testing.T) {
	t.Helper()
	require.NoError(t, e.carts.Add(e.customer.ID, &AddToCartIn{
		MenuItemID: e.item.ID,
		Qty:        2,
		AddonIDs:   []uint{e.item.Addons[0].ID},
	}))
}

func TestCheckout(t *testing.T) {
	env := newTestEnv(t)
	env.fillCart(t)

	res, err := env.orders.CheckoutFromCart(env.customer.ID, &CheckoutReq{})
	require.NoError(t, err)

	// 2 x (10.00 + 1.50) = 23.00, tax 1.84, fee 2.99 → 27.83
	assert.Equal(t, int64(2300), res.Quote.Subtotal)
	assert.Equal(t, int64(184), res.Quote.Tax)
	assert.Equal(t, int64(2783), res.Quote.Total)

	o, err := env.orders.DetailForCustomer(env.customer.ID, res.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, o.Status)
	assert.Equal(t, "Golden Wok", o.RestaurantName)
	require.Len(t, o.Items, 1)
	assert.Equal(t, int64(2300), o.Items[0].Total)
	require.Len(t, o.Items[0].Addons, 1)
	assert.Equal(t, "Fried Egg", o.Items[0].Addons[0].Name)

	// ได้แต้ม 23 + ตะกร้าถูกล้าง
	txs, err := env.loyalty.ListAllByUser(env.db, env.customer.ID)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, 23, txs[0].Points)
	assert.Equal(t, entity.LoyaltyEarned, txs[0].Type)
	assert.Empty(t, env.carts.Snapshot(env.customer.ID).Lines)
}

func TestCheckout_EmptyCart(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.orders.CheckoutFromCart(env.customer.ID, &CheckoutReq{})
	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestCheckout_ClosedRestaurant(t *testing.T) {
	env := newTestEnv(t)
	env.fillCart(t)
	require.NoError(t, env.db.Model(&env.rest).Update("is_open", false).Error)

	_, err := env.orders.CheckoutFromCart(env.customer.ID, &CheckoutReq{})
	assert.ErrorIs(t, err, ErrRestaurantClosed)
}

func TestCheckout_BelowMinOrder(t *testing.T) {
	env := newTestEnv(t)
	env.fillCart(t)
	require.NoError(t, env.db.Model(&env.rest).Update("min_order", 5000).Error)

	_, err := env.orders.CheckoutFromCart(env.customer.ID, &CheckoutReq{})
	assert.ErrorIs(t, err, ErrBelowMinOrder)
}

func TestCheckout_RedeemPoints(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.loyalty.Append(env.db, &entity.LoyaltyTransaction{
		UserID: env.customer.ID, Points: 1000, Type: entity.LoyaltyEarned, Description: "seed",
	}))
	env.fillCart(t)

	res, err := env.orders.CheckoutFromCart(env.customer.ID, &CheckoutReq{RedeemPoints: 1000})
	require.NoError(t, err)
	assert.Equal(t, int64(1000), res.Quote.Discount)
	assert.Equal(t, int64(1783), res.Quote.Total)

	// 1000 - 1000 แลกไป + 23 จากออเดอร์ใหม่
	txs, err := env.loyalty.ListAllByUser(env.db, env.customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 23, Balance(txs))
}

func TestCheckout_InsufficientPoints(t *testing.T) {
	env := newTestEnv(t)
	env.fillCart(t)

	_, err := env.orders.CheckoutFromCart(env.customer.ID, &CheckoutReq{RedeemPoints: 500})
	assert.ErrorIs(t, err, ErrInsufficientPoints)

	// ต้อง rollback หมด — ไม่มีออเดอร์ ไม่มีแต้ม และตะกร้ายังอยู่
	var n int64
	require.NoError(t, env.db.Model(&entity.Order{}).Count(&n).Error)
	assert.Equal(t, int64(0), n)
	assert.NotEmpty(t, env.carts.Snapshot(env.customer.ID).Lines)
}

func TestOrderLifecycle(t *testing.T) {
	env := newTestEnv(t)
	env.fillCart(t)
	res, err := env.orders.CheckoutFromCart(env.customer.ID, &CheckoutReq{})
	require.NoError(t, err)
	orderID := res.ID

	// ข้ามขั้นไม่ได้
	assert.ErrorIs(t, env.orders.OwnerMarkReady(env.owner.ID, orderID), ErrInvalidTransition)
	// ร้านคนอื่นมายุ่งไม่ได้
	assert.ErrorIs(t, env.orders.OwnerConfirm(env.customer.ID, orderID), ErrForbidden)

	require.NoError(t, env.orders.OwnerConfirm(env.owner.ID, orderID))
	// confirm ซ้ำ = guard ไม่ผ่าน
	assert.ErrorIs(t, env.orders.OwnerConfirm(env.owner.ID, orderID), ErrInvalidTransition)
	// confirm แล้วยกเลิกไม่ได้แล้ว
	assert.ErrorIs(t, env.orders.OwnerCancel(env.owner.ID, orderID), ErrInvalidTransition)

	require.NoError(t, env.orders.OwnerStartPreparing(env.owner.ID, orderID))
	require.NoError(t, env.orders.OwnerMarkReady(env.owner.ID, orderID))

	jobs, err := env.orders.ListAvailableJobs(10)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, orderID, jobs[0].ID)

	// คนที่ไม่ใช่ driver รับงานไม่ได้
	assert.ErrorIs(t, env.orders.DriverAccept(env.customer.ID, orderID), ErrForbidden)

	require.NoError(t, env.orders.DriverAccept(env.driver.ID, orderID))

	// งานถูกรับไปแล้ว — driver คนที่สองแพ้ race
	driver2 := entity.User{Email: "driver2@test.local", Role: entity.RoleDriver}
	require.NoError(t, env.db.Create(&driver2).Error)
	assert.ErrorIs(t, env.orders.DriverAccept(driver2.ID, orderID), ErrInvalidTransition)

	o, err := env.orders.DetailForCustomer(env.customer.ID, orderID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusOutForDelivery, o.Status)
	require.NotNil(t, o.DriverID)
	assert.Equal(t, env.driver.ID, *o.DriverID)

	// อัปเดตพิกัดได้เฉพาะคนขับเจ้าของงาน ระหว่าง out_for_delivery
	assert.ErrorIs(t, env.orders.DriverUpdateLocation(driver2.ID, orderID, 13.75, 100.5), ErrInvalidTransition)
	require.NoError(t, env.orders.DriverUpdateLocation(env.driver.ID, orderID, 13.75, 100.5))

	// ปิดงานได้เฉพาะคนขับเจ้าของงาน
	assert.ErrorIs(t, env.orders.DriverComplete(driver2.ID, orderID), ErrForbidden)
	require.NoError(t, env.orders.DriverComplete(env.driver.ID, orderID))

	o, err = env.orders.DetailForCustomer(env.customer.ID, orderID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDelivered, o.Status)

	// delivered เป็นทางตัน
	assert.ErrorIs(t, env.orders.DriverComplete(env.driver.ID, orderID), ErrInvalidTransition)
	assert.ErrorIs(t, env.orders.DriverUpdateLocation(env.driver.ID, orderID, 13.76, 100.51), ErrInvalidTransition)
}

func TestLoyaltyRedeemStandalone(t *testing.T) {
	env := newTestEnv(t)
	svc := NewLoyaltyService(env.db, env.loyalty)

	require.NoError(t, env.loyalty.Append(env.db, &entity.LoyaltyTransaction{
		UserID: env.customer.ID, Points: 50, Type: entity.LoyaltyEarned, Description: "seed",
	}))

	assert.ErrorIs(t, svc.Redeem(env.customer.ID, 60, ""), ErrInsufficientPoints)
	require.NoError(t, svc.Redeem(env.customer.ID, 20, ""))

	bal, err := svc.BalanceForUser(env.customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, bal)

	// แลกเกินยอดที่เหลือไม่ได้ และยอดต้องไม่ขยับ
	assert.ErrorIs(t, svc.Redeem(env.customer.ID, 31, ""), ErrInsufficientPoints)
	bal, err = svc.BalanceForUser(env.customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, bal)
}

func TestOwnerHandoff(t *testing.T) {
	env := newTestEnv(t)
	env.fillCart(t)
	res, err := env.orders.CheckoutFromCart(env.customer.ID, &CheckoutReq{})
	require.NoError(t, err)

	require.NoError(t, env.orders.OwnerConfirm(env.owner.ID, res.ID))
	require.NoError(t, env.orders.OwnerStartPreparing(env.owner.ID, res.ID))
	require.NoError(t, env.orders.OwnerMarkReady(env.owner.ID, res.ID))

	// ส่งให้คนที่ไม่ใช่ driver ไม่ได้
	assert.ErrorIs(t, env.orders.OwnerHandoff(env.owner.ID, res.ID, env.customer.ID), ErrForbidden)

	require.NoError(t, env.orders.OwnerHandoff(env.owner.ID, res.ID, env.driver.ID))

	o, err := env.orders.DetailForCustomer(env.customer.ID, res.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusOutForDelivery, o.Status)
	require.NotNil(t, o.DriverID)
	assert.Equal(t, env.driver.ID, *o.DriverID)

	mine, err := env.orders.ListForDriver(env.driver.ID, 10)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, res.ID, mine[0].ID)
}
