package email

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultQueueSize is the number of events a Queue buffers.
const DefaultQueueSize = 64

// sendTimeout bounds the delivery of a single mail.
const sendTimeout = 30 * time.Second

// Queue is a Notifier that renders and sends mails on a background worker.
//
// Events that do not fit into the queue are dropped.
type Queue struct {
	frontendURL string
	sender      Sender
	events      chan Event

	once sync.Once
	done chan struct{}
}

// NewQueue starts a worker that delivers events with sender.
func NewQueue(frontendURL string, sender Sender, size int) *Queue {
	q := &Queue{
		frontendURL: frontendURL,
		sender:      sender,
		events:      make(chan Event, size),
		done:        make(chan struct{}),
	}

	go q.run()
	return q
}

// Notify queues the event. It never blocks.
func (q *Queue) Notify(_ context.Context, event Event) {
	select {
	case q.events <- event:
	default:
		mailsTotal.WithLabelValues(event.Kind.String(), "dropped").Inc()
		log.Warn().Str("kind", event.Kind.String()).Str("to", event.Email).Msg("mail queue is full, dropping mail")
	}
}

// Close stops accepting events and waits until all queued events have been handled.
// Notify must not be called after Close.
func (q *Queue) Close() {
	q.once.Do(func() {
		close(q.events)
	})
	<-q.done
}

func (q *Queue) run() {
	defer close(q.done)

	for event := range q.events {
		q.deliver(event)
	}
}

func (q *Queue) deliver(event Event) {
	msg, err := Render(q.frontendURL, event)
	if err != nil {
		mailsTotal.WithLabelValues(event.Kind.String(), "failed").Inc()
		log.Error().Err(err).Str("kind", event.Kind.String()).Msg("mail")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	if err := q.sender.Send(ctx, msg); err != nil {
		mailsTotal.WithLabelValues(event.Kind.String(), "failed").Inc()
		log.Error().Err(err).Str("kind", event.Kind.String()).Str("to", msg.To).Msg("mail delivery failed")
		return
	}

	mailsTotal.WithLabelValues(event.Kind.String(), "sent").Inc()
	log.Debug().Str("kind", event.Kind.String()).Str("to", msg.To).Msg("mail sent")
}
