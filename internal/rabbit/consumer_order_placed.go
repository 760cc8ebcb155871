package rabbit

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"smartkuliner-seller-service/internal/model"
	"smartkuliner-seller-service/internal/service"
)

// OrderPlacedConsumer turns checkout events into pending order
// documents.
type OrderPlacedConsumer struct {
	Service *service.OrderService
	Log     *zap.Logger
}

func NewOrderPlacedConsumer(s *service.OrderService, log *zap.Logger) *OrderPlacedConsumer {
	return &OrderPlacedConsumer{Service: s, Log: log}
}

type OrderPlacedMessage struct {
	CorrelationID string `json:"correlation_id"`
	Message       struct {
		OrderID         string  `json:"orderId"`
		TotalAmount     float64 `json:"totalAmount"`
		CreatedAt       string  `json:"createdAt"`
		BuyerName       string  `json:"buyerName"`
		BuyerEmail      string  `json:"buyerEmail"`
		BuyerPhone      string  `json:"buyerPhone"`
		ShippingAddress string  `json:"shippingAddress"`
		PaymentMethod   string  `json:"paymentMethod"`
		Notes           string  `json:"notes"`
		Items           []struct {
			ProductName string  `json:"productName"`
			Quantity    int     `json:"quantity"`
			Price       float64 `json:"price"`
			SellerID    string  `json:"sellerId"`
			ImageURL    string  `json:"imageUrl"`
			Description string  `json:"description"`
		} `json:"items"`
	} `json:"message"`
}

func (c *OrderPlacedConsumer) Handle(msg []byte) error {
	var event OrderPlacedMessage
	if err := json.Unmarshal(msg, &event); err != nil {
		c.Log.Error("unparseable order_placed event", zap.Error(err))
		return err
	}

	m := event.Message
	order := &model.Order{
		ID:              m.OrderID,
		TotalAmount:     m.TotalAmount,
		CreatedAt:       m.CreatedAt,
		BuyerName:       m.BuyerName,
		BuyerEmail:      m.BuyerEmail,
		BuyerPhone:      m.BuyerPhone,
		ShippingAddress: m.ShippingAddress,
		PaymentMethod:   m.PaymentMethod,
		Notes:           m.Notes,
	}
	for _, it := range m.Items {
		order.Items = append(order.Items, model.LineItem{
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
			SellerID:    it.SellerID,
			ImageURL:    it.ImageURL,
			Description: it.Description,
		})
	}

	if err := c.Service.CreateFromIntake(context.Background(), order); err != nil {
		c.Log.Error("order intake failed", zap.String("orderId", m.OrderID), zap.Error(err))
		return err
	}

	c.Log.Info("order intake processed", zap.String("orderId", m.OrderID))
	return nil
}
