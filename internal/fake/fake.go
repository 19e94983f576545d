// Package fake builds the synthetic payload objects returned by the demo
// REST endpoints. The values are decoration for response bodies only;
// nothing here feeds the metric instruments.
package fake

import (
	"time"

	gofakeit "github.com/brianvoe/gofakeit/v7"

	"analytics-demo/internal/metrics"
)

var orderStatuses = []string{"pending", "processing", "shipped", "delivered", "cancelled"}

var fulfillmentTypes = []string{"warehouse", "dropship", "digital", "pickup"}

var userTypes = []string{"free", "premium", "enterprise", "trial"}

// Order is a synthetic order line.
type Order struct {
	ID              int64   `json:"id"`
	Customer        string  `json:"customer"`
	Product         string  `json:"product"`
	Total           float64 `json:"total"`
	Status          string  `json:"status"`
	FulfillmentType string  `json:"fulfillmentType"`
}

// Orders returns 3-9 synthetic orders.
func Orders() []Order {
	orders := make([]Order, metrics.IntBetween(3, 10))
	for i := range orders {
		orders[i] = Order{
			ID:              metrics.Int64Between(10000, 999999),
			Customer:        gofakeit.Name(),
			Product:         gofakeit.ProductName(),
			Total:           metrics.FloatBetween(10.0, 500.0),
			Status:          metrics.Pick(orderStatuses),
			FulfillmentType: metrics.Pick(fulfillmentTypes),
		}
	}
	return orders
}

// Product is a synthetic catalog entry.
type Product struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	InStock  bool    `json:"inStock"`
	Rating   float64 `json:"rating"`
}

// Products returns 8-19 synthetic products.
func Products() []Product {
	products := make([]Product, metrics.IntBetween(8, 20))
	for i := range products {
		products[i] = Product{
			ID:       metrics.Int64Between(1, 1000),
			Name:     gofakeit.ProductName(),
			Price:    metrics.FloatBetween(5.0, 200.0),
			Category: gofakeit.ProductCategory(),
			InStock:  metrics.Chance(0.5),
			Rating:   metrics.FloatBetween(1.0, 5.0),
		}
	}
	return products
}

// CartItem is a synthetic cart line.
type CartItem struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// CartItems returns 1-5 synthetic cart items.
func CartItems() []CartItem {
	items := make([]CartItem, metrics.IntBetween(1, 6))
	for i := range items {
		items[i] = CartItem{
			ProductID: metrics.Int64Between(1, 1000),
			Name:      gofakeit.ProductName(),
			Price:     metrics.FloatBetween(5.0, 100.0),
			Quantity:  metrics.IntBetween(1, 5),
		}
	}
	return items
}

// User is a synthetic account summary.
type User struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	City     string    `json:"city"`
	JoinDate time.Time `json:"joinDate"`
	UserType string    `json:"userType"`
}

// Users returns 5-14 synthetic users.
func Users() []User {
	users := make([]User, metrics.IntBetween(5, 15))
	for i := range users {
		users[i] = User{
			ID:       metrics.Int64Between(1, 10000),
			Name:     gofakeit.Name(),
			Email:    gofakeit.Email(),
			City:     gofakeit.City(),
			JoinDate: gofakeit.PastDate(),
			UserType: metrics.Pick(userTypes),
		}
	}
	return users
}
