package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/printshophq/printshop-admin/internal/category"
	"github.com/printshophq/printshop-admin/internal/console/session"
	"github.com/printshophq/printshop-admin/internal/coupon"
	"github.com/printshophq/printshop-admin/internal/notification"
	"github.com/printshophq/printshop-admin/internal/order"
	"github.com/printshophq/printshop-admin/internal/product"
	"github.com/printshophq/printshop-admin/internal/review"
	"github.com/printshophq/printshop-admin/internal/xerox"
)

// LoginResult is the login endpoint's response.
type LoginResult struct {
	Message string        `json:"message"`
	Token   string        `json:"token"`
	Admin   session.Admin `json:"admin"`
}

// Login authenticates and records the session on success. Bad credentials
// surface as an APIError without touching any existing session.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var out LoginResult
	err := c.do(ctx, http.MethodPost, "/admin/login", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		return LoginResult{}, err
	}
	if err := c.session.Set(out.Token, out.Admin); err != nil {
		return LoginResult{}, err
	}
	return out, nil
}

// Logout drops the session locally. The token is stateless server-side so
// no request is needed.
func (c *Client) Logout() {
	c.session.Clear()
}

func (c *Client) Me(ctx context.Context) (session.Admin, error) {
	var out struct {
		Admin session.Admin `json:"admin"`
	}
	err := c.do(ctx, http.MethodGet, "/admin/me", nil, &out)
	return out.Admin, err
}

type listEnvelope[T any] struct {
	Data       []T `json:"data"`
	Pagination struct {
		Total int `json:"total"`
	} `json:"pagination"`
}

type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

func (c *Client) ListProducts(ctx context.Context, f product.ListFilter) ([]product.Product, int, error) {
	values := url.Values{}
	setQuery(values, "search", f.Search)
	setQuery(values, "category", f.Category)
	if f.Limit > 0 {
		values.Set("limit", strconv.Itoa(f.Limit))
	}
	var out listEnvelope[product.Product]
	err := c.do(ctx, http.MethodGet, withQuery("/products", values), nil, &out)
	return out.Data, out.Pagination.Total, err
}

func (c *Client) GetProduct(ctx context.Context, id int) (product.Product, error) {
	var out dataEnvelope[product.Product]
	err := c.do(ctx, http.MethodGet, idPath("/products", id, ""), nil, &out)
	return out.Data, err
}

func (c *Client) CreateProduct(ctx context.Context, p product.Product) (product.Product, error) {
	var out dataEnvelope[product.Product]
	err := c.do(ctx, http.MethodPost, "/products", p, &out)
	return out.Data, err
}

func (c *Client) UpdateProduct(ctx context.Context, id int, p product.Product) (product.Product, error) {
	var out dataEnvelope[product.Product]
	err := c.do(ctx, http.MethodPut, idPath("/products", id, ""), p, &out)
	return out.Data, err
}

func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, idPath("/products", id, ""), nil, nil)
}

func (c *Client) ListCategories(ctx context.Context) ([]category.Category, error) {
	var out listEnvelope[category.Category]
	err := c.do(ctx, http.MethodGet, "/categories", nil, &out)
	return out.Data, err
}

func (c *Client) CreateCategory(ctx context.Context, cat category.Category) (category.Category, error) {
	var out dataEnvelope[category.Category]
	err := c.do(ctx, http.MethodPost, "/admin/categories", cat, &out)
	return out.Data, err
}

func (c *Client) UpdateCategory(ctx context.Context, id int, cat category.Category) (category.Category, error) {
	var out dataEnvelope[category.Category]
	err := c.do(ctx, http.MethodPut, idPath("/admin/categories", id, ""), cat, &out)
	return out.Data, err
}

func (c *Client) DeleteCategory(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, idPath("/admin/categories", id, ""), nil, nil)
}

func (c *Client) ListOrders(ctx context.Context, f order.ListFilter) ([]order.Order, int, error) {
	values := url.Values{}
	setQuery(values, "status", f.Status)
	setQuery(values, "payment_status", f.PaymentStatus)
	setQuery(values, "search", f.Search)
	if f.Limit > 0 {
		values.Set("limit", strconv.Itoa(f.Limit))
	}
	var out listEnvelope[order.Order]
	err := c.do(ctx, http.MethodGet, withQuery("/admin/orders", values), nil, &out)
	return out.Data, out.Pagination.Total, err
}

func (c *Client) GetOrder(ctx context.Context, id int) (order.Order, error) {
	var out dataEnvelope[order.Order]
	err := c.do(ctx, http.MethodGet, idPath("/admin/orders", id, ""), nil, &out)
	return out.Data, err
}

// UpdateOrderStatus moves an order through the fulfilment workflow. A
// rejected transition comes back as an APIError carrying the server's
// reason verbatim.
func (c *Client) UpdateOrderStatus(ctx context.Context, id int, status string) (order.Order, error) {
	var out dataEnvelope[order.Order]
	err := c.do(ctx, http.MethodPut, idPath("/admin/orders", id, "/status"),
		map[string]string{"order_status": status}, &out)
	return out.Data, err
}

func (c *Client) UpdateOrderPaymentStatus(ctx context.Context, id int, status string) (order.Order, error) {
	var out dataEnvelope[order.Order]
	err := c.do(ctx, http.MethodPut, idPath("/admin/orders", id, "/payment-status"),
		map[string]string{"payment_status": status}, &out)
	return out.Data, err
}

func (c *Client) ListXeroxOrders(ctx context.Context, f xerox.ListFilter) ([]xerox.Order, int, error) {
	values := url.Values{}
	setQuery(values, "status", f.Status)
	setQuery(values, "payment_status", f.PaymentStatus)
	setQuery(values, "search", f.Search)
	if f.Limit > 0 {
		values.Set("limit", strconv.Itoa(f.Limit))
	}
	var out listEnvelope[xerox.Order]
	err := c.do(ctx, http.MethodGet, withQuery("/admin/xerox/orders", values), nil, &out)
	return out.Data, out.Pagination.Total, err
}

func (c *Client) GetXeroxOrder(ctx context.Context, id int) (xerox.Order, error) {
	var out dataEnvelope[xerox.Order]
	err := c.do(ctx, http.MethodGet, idPath("/admin/xerox/orders", id, ""), nil, &out)
	return out.Data, err
}

func (c *Client) CreateXeroxOrder(ctx context.Context, o xerox.Order) (xerox.Order, error) {
	var out dataEnvelope[xerox.Order]
	err := c.do(ctx, http.MethodPost, "/admin/xerox/orders", o, &out)
	return out.Data, err
}

func (c *Client) UpdateXeroxOrder(ctx context.Context, id int, o xerox.Order) (xerox.Order, error) {
	var out dataEnvelope[xerox.Order]
	err := c.do(ctx, http.MethodPut, idPath("/admin/xerox/orders", id, ""), o, &out)
	return out.Data, err
}

func (c *Client) DeleteXeroxOrder(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, idPath("/admin/xerox/orders", id, ""), nil, nil)
}

func (c *Client) UpdateXeroxOrderStatus(ctx context.Context, id int, status string) (xerox.Order, error) {
	var out dataEnvelope[xerox.Order]
	err := c.do(ctx, http.MethodPut, idPath("/admin/xerox/orders", id, "/status"),
		map[string]string{"order_status": status}, &out)
	return out.Data, err
}

func (c *Client) ListXeroxPricing(ctx context.Context) ([]xerox.Pricing, error) {
	var out listEnvelope[xerox.Pricing]
	err := c.do(ctx, http.MethodGet, "/admin/xerox-pricing", nil, &out)
	return out.Data, err
}

func (c *Client) CreateXeroxPricing(ctx context.Context, p xerox.Pricing) (xerox.Pricing, error) {
	var out dataEnvelope[xerox.Pricing]
	err := c.do(ctx, http.MethodPost, "/admin/xerox-pricing", p, &out)
	return out.Data, err
}

func (c *Client) UpdateXeroxPricing(ctx context.Context, id int, p xerox.Pricing) (xerox.Pricing, error) {
	var out dataEnvelope[xerox.Pricing]
	err := c.do(ctx, http.MethodPut, idPath("/admin/xerox-pricing", id, ""), p, &out)
	return out.Data, err
}

func (c *Client) DeleteXeroxPricing(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, idPath("/admin/xerox-pricing", id, ""), nil, nil)
}

// SeedXeroxPricing installs the default price grid; the server reports
// how many rows were newly inserted.
func (c *Client) SeedXeroxPricing(ctx context.Context) (int, error) {
	var out struct {
		Inserted int `json:"inserted"`
	}
	err := c.do(ctx, http.MethodPost, "/admin/xerox-pricing/seed", nil, &out)
	return out.Inserted, err
}

func (c *Client) ListCoupons(ctx context.Context) ([]coupon.Coupon, error) {
	var out listEnvelope[coupon.Coupon]
	err := c.do(ctx, http.MethodGet, "/coupons", nil, &out)
	return out.Data, err
}

func (c *Client) CreateCoupon(ctx context.Context, cp coupon.Coupon) (coupon.Coupon, error) {
	var out dataEnvelope[coupon.Coupon]
	err := c.do(ctx, http.MethodPost, "/coupons", cp, &out)
	return out.Data, err
}

func (c *Client) UpdateCoupon(ctx context.Context, id int, cp coupon.Coupon) (coupon.Coupon, error) {
	var out dataEnvelope[coupon.Coupon]
	err := c.do(ctx, http.MethodPut, idPath("/coupons", id, ""), cp, &out)
	return out.Data, err
}

func (c *Client) ToggleCouponStatus(ctx context.Context, id int) (coupon.Coupon, error) {
	var out dataEnvelope[coupon.Coupon]
	err := c.do(ctx, http.MethodPut, idPath("/coupons", id, "/toggle-status"), nil, &out)
	return out.Data, err
}

func (c *Client) DeleteCoupon(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, idPath("/coupons", id, ""), nil, nil)
}

func (c *Client) ListReviews(ctx context.Context) ([]review.Review, error) {
	var out listEnvelope[review.Review]
	err := c.do(ctx, http.MethodGet, "/admin/reviews", nil, &out)
	return out.Data, err
}

func (c *Client) ToggleReviewVisibility(ctx context.Context, id int) (review.Review, error) {
	var out dataEnvelope[review.Review]
	err := c.do(ctx, http.MethodPut, idPath("/admin/reviews", id, "/visibility"), nil, &out)
	return out.Data, err
}

func (c *Client) RespondToReview(ctx context.Context, id int, response string) (review.Review, error) {
	var out dataEnvelope[review.Review]
	err := c.do(ctx, http.MethodPut, idPath("/admin/reviews", id, "/response"),
		map[string]string{"admin_response": response}, &out)
	return out.Data, err
}

// NotificationFilter narrows the inbox listing. Read is tri-state: nil
// fetches both read and unread entries.
type NotificationFilter struct {
	Type string
	Read *bool
}

func (c *Client) ListNotifications(ctx context.Context, f NotificationFilter) ([]notification.Notification, error) {
	values := url.Values{}
	setQuery(values, "type", f.Type)
	if f.Read != nil {
		values.Set("is_read", strconv.FormatBool(*f.Read))
	}
	var out listEnvelope[notification.Notification]
	err := c.do(ctx, http.MethodGet, withQuery("/admin/notifications", values), nil, &out)
	return out.Data, err
}

func (c *Client) UnreadNotificationCount(ctx context.Context) (int, error) {
	var out struct {
		Count int `json:"count"`
	}
	err := c.do(ctx, http.MethodGet, "/admin/notifications/unread-count", nil, &out)
	return out.Count, err
}

func (c *Client) MarkNotificationRead(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPut, idPath("/admin/notifications", id, "/read"), nil, nil)
}
