package models

import (
	"time"
)

type Product struct {
	ID              int        `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	MoreDescription string     `json:"moreDescription"` // long-form feature list
	Price           float64    `json:"price"`
	SalePrice       *float64   `json:"salePrice,omitempty"`
	Category        string     `json:"category"`
	Material        string     `json:"material"`
	Sizes           []string   `json:"size"`
	Colors          []string   `json:"colors"`
	Tags            []string   `json:"tags"`
	Stock           int        `json:"stock"`
	SKU             string     `json:"sku"`
	Brand           string     `json:"brand"`
	Weight          float64    `json:"weight"`
	Dimensions      Dimensions `json:"dimensions"`
	ImageURL        string     `json:"image"`
	Rating          float64    `json:"rating"`     // server-computed
	NumReviews      int        `json:"numReviews"` // server-computed
	CreatedAt       time.Time  `json:"createdAt"`
}

type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"` // unit price
	Image    string  `json:"image"`
}

type ShippingAddress struct {
	PersonName   string `json:"personName"`
	MobileNumber string `json:"mobileNumber"`
	Address      string `json:"address"`
	Pincode      string `json:"pincode"`
	State        string `json:"state"`
}

// OrderUser is the slice of the ordering user shown alongside an order.
type OrderUser struct {
	Username     string `json:"username"`
	MobileNumber string `json:"mobileNumber"`
}

type Order struct {
	ID              int             `json:"id"`
	UserID          int             `json:"-"`
	User            OrderUser       `json:"user"`
	Items           []OrderItem     `json:"products"`
	TotalPrice      float64         `json:"totalPrice"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	Status          OrderStatus     `json:"orderStatus"`
	DeliveryOption  string          `json:"deliveryOption"`
	AdminMessage    string          `json:"adminMessage"`
	CreatedAt       time.Time       `json:"createdAt"`
}

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Age          int       `json:"age"`
	MobileNumber string    `json:"mobileNumber"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Admin struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"` // bcrypt hash
}
