package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ReceiptSender delivers the post-payment welcome email. The worker is the
// only consumer of the receipt queue, so a payment's side effects run at
// most once even when poll and webhook race: only the transition winner
// publishes.
type ReceiptSender interface {
	SendWelcome(to, name, packageName string, amount float64) error
}

type Worker struct {
	Channel *amqp.Channel
	Sender  ReceiptSender
}

func NewWorker(ch *amqp.Channel, sender ReceiptSender) *Worker {
	return &Worker{Channel: ch, Sender: sender}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",
		false, // manual ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Fatalf("[worker] failed to register consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload ReceiptPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("[worker] malformed receipt message: %s", err)
				// Poison message, reject without requeue so it dead-letters.
				d.Nack(false, false)
				continue
			}

			if payload.CustomerEmail == "" {
				log.Printf("[worker] receipt for session %s has no customer email, skipping", payload.SessionID)
				d.Ack(false)
				continue
			}

			if err := w.Sender.SendWelcome(payload.CustomerEmail, "", payload.PackageID, payload.Amount); err != nil {
				log.Printf("[worker] receipt email failed session=%s: %s", payload.SessionID, err)
				d.Nack(false, false)
				continue
			}

			log.Printf("[worker] receipt email sent session=%s to=%s", payload.SessionID, payload.CustomerEmail)
			d.Ack(false)
		}
	}()

	log.Printf("[worker] consuming queue %q", queueName)
	<-forever
}
