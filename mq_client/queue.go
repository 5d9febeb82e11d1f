package mq_client

import (
	"errors"
	"os"
	"strconv"

	"github.com/streadway/amqp"
)

var ErrNotConnected = errors.New("mq_client.not_connected")

var AMQPChannel *amqp.Channel
var Connection *amqp.Connection

func CreateAMQP() (*amqp.Connection, error) {
	return amqp.Dial(os.Getenv("AMQP_URL"))
}

func Connect() error {
	cn, err := CreateAMQP()
	if err != nil {
		return err
	}

	Connection = cn

	return nil
}

func GetChannel() *amqp.Channel {
	if AMQPChannel != nil {
		return AMQPChannel
	}

	channel, _ := Connection.Channel()

	AMQPChannel = channel

	return AMQPChannel
}

// Enqueue publishes a worker payload on the named queue, declaring it
// durable so messages survive a broker restart ahead of the daemon.
func Enqueue(queue string, payload []byte) error {
	if Connection == nil {
		return ErrNotConnected
	}

	if _, err := GetChannel().QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return err
	}

	return GetChannel().Publish(
		"",
		queue,
		false,
		false,
		amqp.Publishing{
			Headers:      amqp.Table{},
			ContentType:  "application/json",
			Body:         payload,
			DeliveryMode: amqp.Persistent,
			Priority:     0,
		},
	)
}

// EnqueueEvent publishes a user-facing event on the topic exchange with a
// kind.user.event routing key.
func EnqueueEvent(kind string, userID uint64, event string, payload []byte) error {
	if Connection == nil {
		return ErrNotConnected
	}

	routing_key := kind + "." + strconv.FormatUint(userID, 10) + "." + event

	GetChannel().ExchangeDeclare("dreamy.events", "topic", false, false, false, false, nil)

	return GetChannel().Publish(
		"dreamy.events",
		routing_key,
		false,
		false,
		amqp.Publishing{
			Headers:      amqp.Table{},
			ContentType:  "application/json",
			Body:         payload,
			DeliveryMode: amqp.Persistent,
			Priority:     0,
		},
	)
}

// Consume delivers messages from the named queue.
func Consume(queue string) (<-chan amqp.Delivery, error) {
	if Connection == nil {
		return nil, ErrNotConnected
	}

	if _, err := GetChannel().QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return nil, err
	}

	return GetChannel().Consume(queue, "", true, false, false, false, nil)
}
