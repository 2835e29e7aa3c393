package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/m04kA/SMC-TableBooking/internal/engine"
)

const (
	ExchangeKind   = "topic"
	publishTimeout = 5 * time.Second
)

// Publisher публикует события бронирования движка в RabbitMQ.
// Остальные уведомления движка (занятость, выбор столика) не публикуются.
type Publisher struct {
	conn     *amqp.Connection
	channel  Channel
	exchange string
	now      func() time.Time
	logger   Logger
}

// NewPublisher подключается к RabbitMQ и объявляет topic exchange
func NewPublisher(url, exchange string, logger Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, ExchangeKind, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("rabbitmq exchange declare: %w", err)
	}

	p := NewPublisherWithChannel(ch, exchange, logger)
	p.conn = conn
	return p, nil
}

// NewPublisherWithChannel создает публикатор поверх готового канала
func NewPublisherWithChannel(ch Channel, exchange string, logger Logger) *Publisher {
	return &Publisher{
		channel:  ch,
		exchange: exchange,
		now:      time.Now,
		logger:   logger,
	}
}

// Notify реализует engine.Notifier. Ошибки публикации только логируются:
// состояние движка от брокера не зависит.
func (p *Publisher) Notify(n engine.Notification) {
	key, ok := routingKey(n.Kind)
	if !ok {
		return
	}

	msg := ReservationMessage{
		TxID:       n.TxID.String(),
		Date:       n.Date,
		Hour:       n.Hour,
		Table:      n.Table,
		OccurredAt: p.now().UTC(),
	}
	if n.Booking != nil {
		msg.BookingID = n.Booking.ID
	}
	if n.Err != nil {
		msg.Error = n.Err.Error()
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := p.Publish(ctx, key, msg); err != nil {
		p.logger.Error("Notifier: failed to publish %s tx=%s: %v", key, msg.TxID, err)
		return
	}
	p.logger.Info("Notifier: published %s tx=%s table=%s", key, msg.TxID, msg.Table)
}

// Publish сериализует payload в JSON и публикует его с routingKey
func (p *Publisher) Publish(ctx context.Context, key string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	err = p.channel.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    p.now(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}
	return nil
}

// Close закрывает канал и соединение
func (p *Publisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}

func routingKey(kind engine.Kind) (string, bool) {
	switch kind {
	case engine.KindReservationCommitted:
		return KeyReservationCommitted, true
	case engine.KindReservationConfirmed:
		return KeyReservationConfirmed, true
	case engine.KindReservationRolledBack:
		return KeyReservationRolledBack, true
	default:
		return "", false
	}
}
