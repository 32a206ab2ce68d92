package http

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	domcart "example.com/forever-shop/backend/internal/domain/cart"
	domorder "example.com/forever-shop/backend/internal/domain/order"
	domproduct "example.com/forever-shop/backend/internal/domain/product"
	domuser "example.com/forever-shop/backend/internal/domain/user"
	"example.com/forever-shop/backend/internal/infra/security"
	authuc "example.com/forever-shop/backend/internal/usecase/auth"
	cartuc "example.com/forever-shop/backend/internal/usecase/cart"
	orderuc "example.com/forever-shop/backend/internal/usecase/order"
	productuc "example.com/forever-shop/backend/internal/usecase/product"
)

const (
	testAdminEmail    = "admin@forever.com"
	testAdminPassword = "supersecret"
	testRzpSecret     = "rzp-test-secret"
)

// memoryUserStore backs both the user repository and the embedded cart, the
// same shape the document store uses.
type memoryUserStore struct {
	mu     sync.Mutex
	users  map[string]*domuser.User
	nextID int
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{users: make(map[string]*domuser.User)}
}

func (s *memoryUserStore) Create(ctx context.Context, u *domuser.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return domuser.ErrEmailAlreadyUsed
		}
	}
	s.nextID++
	u.ID = fmt.Sprintf("user-%d", s.nextID)
	s.users[u.ID] = u
	return nil
}

func (s *memoryUserStore) GetByEmail(ctx context.Context, email string) (*domuser.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domuser.ErrUserNotFound
}

func (s *memoryUserStore) GetByID(ctx context.Context, id string) (*domuser.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, domuser.ErrUserNotFound
}

func (s *memoryUserStore) Get(ctx context.Context, userID string) (domcart.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, domuser.ErrUserNotFound
	}
	return u.Cart, nil
}

func (s *memoryUserStore) Save(ctx context.Context, userID string, c domcart.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return domuser.ErrUserNotFound
	}
	u.Cart = c
	return nil
}

func (s *memoryUserStore) Clear(ctx context.Context, userID string) error {
	return s.Save(ctx, userID, domcart.New())
}

type memoryProductStore struct {
	mu       sync.Mutex
	products map[string]*domproduct.Product
	nextID   int
}

func newMemoryProductStore() *memoryProductStore {
	return &memoryProductStore{products: make(map[string]*domproduct.Product)}
}

func (s *memoryProductStore) Create(ctx context.Context, p *domproduct.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	p.ID = fmt.Sprintf("prod-%d", s.nextID)
	s.products[p.ID] = p
	return nil
}

func (s *memoryProductStore) List(ctx context.Context) ([]*domproduct.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domproduct.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	return out, nil
}

func (s *memoryProductStore) GetByID(ctx context.Context, id string) (*domproduct.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.products[id]; ok {
		return p, nil
	}
	return nil, domproduct.ErrProductNotFound
}

func (s *memoryProductStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return domproduct.ErrProductNotFound
	}
	delete(s.products, id)
	return nil
}

type memoryOrderStore struct {
	mu     sync.Mutex
	orders map[string]*domorder.Order
	nextID int
}

func newMemoryOrderStore() *memoryOrderStore {
	return &memoryOrderStore{orders: make(map[string]*domorder.Order)}
}

func (s *memoryOrderStore) Create(ctx context.Context, o *domorder.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	o.ID = fmt.Sprintf("order-%d", s.nextID)
	s.orders[o.ID] = o
	return nil
}

func (s *memoryOrderStore) GetByID(ctx context.Context, id string) (*domorder.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o, ok := s.orders[id]; ok {
		return o, nil
	}
	return nil, domorder.ErrOrderNotFound
}

func (s *memoryOrderStore) List(ctx context.Context) ([]*domorder.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domorder.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	return out, nil
}

func (s *memoryOrderStore) ListByUser(ctx context.Context, userID string) ([]*domorder.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domorder.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *memoryOrderStore) UpdatePayment(ctx context.Context, id string, paid bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return domorder.ErrOrderNotFound
	}
	o.Payment = paid
	return nil
}

func (s *memoryOrderStore) MarkPaid(ctx context.Context, id string, status domorder.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return domorder.ErrOrderNotFound
	}
	o.Payment = true
	o.Status = status
	return nil
}

func (s *memoryOrderStore) UpdateStatus(ctx context.Context, id string, status domorder.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return domorder.ErrOrderNotFound
	}
	o.Status = status
	return nil
}

func (s *memoryOrderStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[id]; !ok {
		return domorder.ErrOrderNotFound
	}
	delete(s.orders, id)
	return nil
}

type fakeStripeGateway struct{}

func (fakeStripeGateway) CreateCheckoutSession(ctx context.Context, ord *domorder.Order, origin string) (string, error) {
	return fmt.Sprintf("https://checkout.stripe.test/%s", ord.ID), nil
}

type fakeRazorpayGateway struct{}

func (fakeRazorpayGateway) CreateProviderOrder(ctx context.Context, ord *domorder.Order) (*orderuc.ProviderOrder, error) {
	return &orderuc.ProviderOrder{ID: "rzp_" + ord.ID, Amount: int64(ord.Amount * 100), Currency: "USD"}, nil
}

func (fakeRazorpayGateway) VerifySignature(providerOrderID, paymentID, signature string) bool {
	return rzpSign(providerOrderID, paymentID) == signature
}

func (fakeRazorpayGateway) KeyID() string { return "rzp_test_key" }

func rzpSign(providerOrderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(testRzpSecret))
	mac.Write([]byte(providerOrderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

type fakeUploader struct{}

func (fakeUploader) Upload(ctx context.Context, file io.Reader, name string) (string, error) {
	return "https://media.test/" + name, nil
}

type apiTestEnv struct {
	router   http.Handler
	users    *memoryUserStore
	orders   *memoryOrderStore
	products *memoryProductStore
}

func newAPITestEnv(t *testing.T) *apiTestEnv {
	t.Helper()

	users := newMemoryUserStore()
	orders := newMemoryOrderStore()
	products := newMemoryProductStore()

	tokens := security.NewJWTService("test-secret", time.Hour)
	hasher := security.NewPasswordHasher(bcrypt.MinCost)

	authSvc := authuc.NewService(users, hasher, tokens, testAdminEmail, testAdminPassword)
	cartSvc := cartuc.NewService(users)
	productSvc := productuc.NewService(products, fakeUploader{})
	orderSvc := orderuc.NewService(orders, users, fakeStripeGateway{}, fakeRazorpayGateway{}, zerolog.Nop())

	api := NewAPI(Dependencies{
		AuthService:    authSvc,
		CartService:    cartSvc,
		ProductService: productSvc,
		OrderService:   orderSvc,
	})
	return &apiTestEnv{router: api.Router(), users: users, orders: orders, products: products}
}

func (env *apiTestEnv) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "https://shop.test")
	if token != "" {
		req.Header.Set("token", token)
	}

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	var resp map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func (env *apiTestEnv) registerUser(t *testing.T, email string) string {
	t.Helper()
	rec, resp := env.do(t, http.MethodPost, "/api/user/register", "", map[string]any{
		"name":     "Alice",
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	token, _ := resp["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func (env *apiTestEnv) adminToken(t *testing.T) string {
	t.Helper()
	rec, resp := env.do(t, http.MethodPost, "/api/user/admin-login", "", map[string]any{
		"email":    testAdminEmail,
		"password": testAdminPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	token, _ := resp["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func placeOrderBody() map[string]any {
	return map[string]any{
		"items": []map[string]any{
			{"_id": "prod-1", "name": "Shirt", "price": 20, "size": "M", "quantity": 2},
		},
		"address": map[string]any{
			"firstName": "Alice",
			"street":    "1 Main St",
			"city":      "Springfield",
		},
		"amount":   40,
		"cartData": map[string]any{},
	}
}

func TestHealth(t *testing.T) {
	env := newAPITestEnv(t)

	rec, resp := env.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", resp["status"])
}

func TestRegister_DuplicateEmail(t *testing.T) {
	env := newAPITestEnv(t)
	env.registerUser(t, "alice@example.com")

	rec, resp := env.do(t, http.MethodPost, "/api/user/register", "", map[string]any{
		"name":     "Alice Again",
		"email":    "Alice@Example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, false, resp["success"])
}

func TestRegister_ShortPasswordRejected(t *testing.T) {
	env := newAPITestEnv(t)

	rec, _ := env.do(t, http.MethodPost, "/api/user/register", "", map[string]any{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "short",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_Flow(t *testing.T) {
	env := newAPITestEnv(t)
	env.registerUser(t, "alice@example.com")

	rec, resp := env.do(t, http.MethodPost, "/api/user/login", "", map[string]any{
		"email":    "alice@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, resp["token"])
	user, ok := resp["user"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "alice@example.com", user["email"])

	rec, _ = env.do(t, http.MethodPost, "/api/user/login", "", map[string]any{
		"email":    "alice@example.com",
		"password": "wrongpassword",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminLogin_RejectsWrongCredentials(t *testing.T) {
	env := newAPITestEnv(t)

	rec, _ := env.do(t, http.MethodPost, "/api/user/admin-login", "", map[string]any{
		"email":    testAdminEmail,
		"password": "not-the-password",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserRoutes_RequireToken(t *testing.T) {
	env := newAPITestEnv(t)

	for _, path := range []string{"/api/cart/get", "/api/order/place", "/api/order/userorders"} {
		rec, resp := env.do(t, http.MethodPost, path, "", map[string]any{})
		require.Equal(t, http.StatusUnauthorized, rec.Code, path)
		require.Equal(t, false, resp["success"], path)
	}

	rec, _ := env.do(t, http.MethodPost, "/api/cart/get", "garbage-token", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRoutes_RejectUserToken(t *testing.T) {
	env := newAPITestEnv(t)
	userToken := env.registerUser(t, "alice@example.com")

	rec, _ := env.do(t, http.MethodPost, "/api/order/list", userToken, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCart_AddUpdateGet(t *testing.T) {
	env := newAPITestEnv(t)
	token := env.registerUser(t, "alice@example.com")

	rec, _ := env.do(t, http.MethodPost, "/api/cart/add", token, map[string]any{
		"itemId": "prod-1", "size": "M",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = env.do(t, http.MethodPost, "/api/cart/add", token, map[string]any{
		"itemId": "prod-1", "size": "M",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, resp := env.do(t, http.MethodPost, "/api/cart/get", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cartData, ok := resp["cartData"].(map[string]any)
	require.True(t, ok)
	sizes, ok := cartData["prod-1"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, float64(2), sizes["M"])

	rec, _ = env.do(t, http.MethodPost, "/api/cart/update", token, map[string]any{
		"itemId": "prod-1", "size": "M", "quantity": 0,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, resp = env.do(t, http.MethodPost, "/api/cart/get", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, resp["cartData"])
}

func TestCart_AddWithoutSizeRejected(t *testing.T) {
	env := newAPITestEnv(t)
	token := env.registerUser(t, "alice@example.com")

	rec, _ := env.do(t, http.MethodPost, "/api/cart/add", token, map[string]any{
		"itemId": "prod-1",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCart_UpdateUnknownItem(t *testing.T) {
	env := newAPITestEnv(t)
	token := env.registerUser(t, "alice@example.com")

	rec, _ := env.do(t, http.MethodPost, "/api/cart/update", token, map[string]any{
		"itemId": "ghost", "size": "M", "quantity": 3,
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPlaceOrder_CODClearsCart(t *testing.T) {
	env := newAPITestEnv(t)
	token := env.registerUser(t, "alice@example.com")

	rec, _ := env.do(t, http.MethodPost, "/api/cart/add", token, map[string]any{
		"itemId": "prod-1", "size": "M",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, resp := env.do(t, http.MethodPost, "/api/order/place", token, placeOrderBody())
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, resp["success"])
	ord, ok := resp["order"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "COD", ord["paymentMethod"])
	require.Equal(t, "Processing", ord["status"])
	require.Equal(t, true, ord["payment"])

	rec, resp = env.do(t, http.MethodPost, "/api/cart/get", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, resp["cartData"])

	rec, resp = env.do(t, http.MethodPost, "/api/order/userorders", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	ordersResp, ok := resp["orders"].([]any)
	require.True(t, ok)
	require.Len(t, ordersResp, 1)
}

func TestPlaceOrder_InvalidPayloadRejected(t *testing.T) {
	env := newAPITestEnv(t)
	token := env.registerUser(t, "alice@example.com")

	body := placeOrderBody()
	body["items"] = []map[string]any{}
	rec, _ := env.do(t, http.MethodPost, "/api/order/place", token, body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body = placeOrderBody()
	delete(body, "amount")
	rec, _ = env.do(t, http.MethodPost, "/api/order/place", token, body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStripe_PlaceAndVerify(t *testing.T) {
	env := newAPITestEnv(t)
	token := env.registerUser(t, "alice@example.com")

	rec, resp := env.do(t, http.MethodPost, "/api/order/stripe", token, placeOrderBody())
	require.Equal(t, http.StatusOK, rec.Code)
	url, _ := resp["url"].(string)
	require.Contains(t, url, "checkout.stripe.test")

	var orderID string
	for id := range env.orders.orders {
		orderID = id
	}
	require.NotEmpty(t, orderID)

	rec, resp = env.do(t, http.MethodPost, "/api/order/verifyStripe", token, map[string]any{
		"orderId": orderID, "success": "true", "userId": "user-1",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, resp["success"])
	require.True(t, env.orders.orders[orderID].Payment)
}

func TestStripe_VerifyFailureDeletesOrder(t *testing.T) {
	env := newAPITestEnv(t)
	token := env.registerUser(t, "alice@example.com")

	rec, _ := env.do(t, http.MethodPost, "/api/order/stripe", token, placeOrderBody())
	require.Equal(t, http.StatusOK, rec.Code)

	var orderID string
	for id := range env.orders.orders {
		orderID = id
	}

	rec, resp := env.do(t, http.MethodPost, "/api/order/verifyStripe", token, map[string]any{
		"orderId": orderID, "success": "false", "userId": "user-1",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, false, resp["success"])
	require.Empty(t, env.orders.orders)
}

func TestRazorpay_PlaceAndVerify(t *testing.T) {
	env := newAPITestEnv(t)
	token := env.registerUser(t, "alice@example.com")

	rec, resp := env.do(t, http.MethodPost, "/api/order/razorpay", token, placeOrderBody())
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "rzp_test_key", resp["key"])
	require.Equal(t, "https://shop.test/orders", resp["redirectUrl"])

	orderID, _ := resp["orderId"].(string)
	providerOrder, ok := resp["razorpayOrder"].(map[string]any)
	require.True(t, ok)
	providerOrderID, _ := providerOrder["id"].(string)
	require.Equal(t, float64(4000), providerOrder["amount"])

	rec, _ = env.do(t, http.MethodPost, "/api/order/verifyRazorpay", token, map[string]any{
		"orderId":             orderID,
		"razorpay_payment_id": "payId456",
		"razorpay_order_id":   providerOrderID,
		"razorpay_signature":  rzpSign(providerOrderID, "payId456"),
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, domorder.StatusPaid, env.orders.orders[orderID].Status)
	require.True(t, env.orders.orders[orderID].Payment)
}

func TestRazorpay_BadSignatureRejected(t *testing.T) {
	env := newAPITestEnv(t)
	token := env.registerUser(t, "alice@example.com")

	rec, resp := env.do(t, http.MethodPost, "/api/order/razorpay", token, placeOrderBody())
	require.Equal(t, http.StatusOK, rec.Code)
	orderID, _ := resp["orderId"].(string)

	rec, _ = env.do(t, http.MethodPost, "/api/order/verifyRazorpay", token, map[string]any{
		"orderId":             orderID,
		"razorpay_payment_id": "payId456",
		"razorpay_order_id":   "rzp_" + orderID,
		"razorpay_signature":  "deadbeef",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.False(t, env.orders.orders[orderID].Payment)
}

func TestAdmin_ListAndStatus(t *testing.T) {
	env := newAPITestEnv(t)
	userToken := env.registerUser(t, "alice@example.com")
	adminToken := env.adminToken(t)

	rec, _ := env.do(t, http.MethodPost, "/api/order/place", userToken, placeOrderBody())
	require.Equal(t, http.StatusOK, rec.Code)

	rec, resp := env.do(t, http.MethodPost, "/api/order/list", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	ordersResp, ok := resp["orders"].([]any)
	require.True(t, ok)
	require.Len(t, ordersResp, 1)
	first, ok := ordersResp[0].(map[string]any)
	require.True(t, ok)
	orderID, _ := first["_id"].(string)

	rec, _ = env.do(t, http.MethodPost, "/api/order/status", adminToken, map[string]any{
		"orderId": orderID, "status": "Shipped",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, domorder.Status("Shipped"), env.orders.orders[orderID].Status)

	rec, _ = env.do(t, http.MethodPost, "/api/order/status", adminToken, map[string]any{
		"orderId": "missing", "status": "Shipped",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProduct_SingleAndList(t *testing.T) {
	env := newAPITestEnv(t)
	p := &domproduct.Product{Name: "Shirt", Price: 20, Image: []string{"https://media.test/a.jpg"}}
	require.NoError(t, env.products.Create(context.Background(), p))

	rec, resp := env.do(t, http.MethodPost, "/api/product/single", "", map[string]any{"id": p.ID})
	require.Equal(t, http.StatusOK, rec.Code)
	prod, ok := resp["product"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Shirt", prod["name"])

	rec, resp = env.do(t, http.MethodGet, "/api/product/list", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list, ok := resp["products"].([]any)
	require.True(t, ok)
	require.Len(t, list, 1)

	rec, _ = env.do(t, http.MethodPost, "/api/product/single", "", map[string]any{"id": "missing"})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProduct_AddMultipart(t *testing.T) {
	env := newAPITestEnv(t)
	adminToken := env.adminToken(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("name", "Linen Shirt"))
	require.NoError(t, mw.WriteField("description", "Lightweight"))
	require.NoError(t, mw.WriteField("price", "49.99"))
	require.NoError(t, mw.WriteField("category", "Men"))
	require.NoError(t, mw.WriteField("subCategory", "Topwear"))
	require.NoError(t, mw.WriteField("sizes", `["S","M","L"]`))
	require.NoError(t, mw.WriteField("bestseller", "true"))
	part, err := mw.CreateFormFile("image1", "front.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("image-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/product/add", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("token", adminToken)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	prod, ok := resp["product"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Linen Shirt", prod["name"])
	images, ok := prod["image"].([]any)
	require.True(t, ok)
	require.Equal(t, []any{"https://media.test/front.jpg"}, images)
}

func TestProduct_RemoveRequiresAdmin(t *testing.T) {
	env := newAPITestEnv(t)
	p := &domproduct.Product{Name: "Shirt", Price: 20, Image: []string{"x"}}
	require.NoError(t, env.products.Create(context.Background(), p))

	rec, _ := env.do(t, http.MethodPost, "/api/product/remove", "", map[string]any{"id": p.ID})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	adminToken := env.adminToken(t)
	rec, _ = env.do(t, http.MethodPost, "/api/product/remove", adminToken, map[string]any{"id": p.ID})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, env.products.products)
}
