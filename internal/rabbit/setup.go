// setup.go
package rabbit

import (
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"smartkuliner-seller-service/internal/service"
)

func SetupConsumers(ch *amqp091.Channel, svc *service.OrderService, log *zap.Logger) {
	consumer := NewOrderPlacedConsumer(svc, log)

	q, err := ch.QueueDeclare(
		"seller_service_orders",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Error("queue declare failed", zap.Error(err))
		return
	}

	// fanout exchange, routing key ignored
	err = ch.QueueBind(
		q.Name,
		"",
		"order_placed",
		false,
		nil,
	)
	if err != nil {
		log.Error("exchange bind failed", zap.Error(err))
		return
	}

	msgs, err := ch.Consume(
		q.Name,
		"",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Error("consume failed", zap.Error(err))
		return
	}

	go func() {
		for m := range msgs {
			consumer.Handle(m.Body)
		}
	}()

	log.Info("subscribed to order_placed exchange")
}
