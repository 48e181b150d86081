package mailer

//go:generate mockgen -source=dispatcher.go -destination=mocks/dispatcher.go -package=mocks

import (
	"context"
	"time"

	"github.com/shenikar/sos_alert_system/internal/config"
	"github.com/shenikar/sos_alert_system/internal/metrics"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Outcome - результат доставки одного сообщения
type Outcome struct {
	Message Message
	Err     error
}

// Dispatcher рассылает пачку сообщений и возвращает результат по каждому
type Dispatcher interface {
	Dispatch(ctx context.Context, msgs []Message) []Outcome
}

// FanOut отправляет все сообщения параллельно и ждет завершения каждой отправки.
// Положительный MailConcurrency ограничивает число одновременных отправок.
// Ошибка одного получателя не влияет на остальных и не возвращается вызывающему.
type FanOut struct {
	sink    Sink
	logger  *logrus.Logger
	limit   int
	timeout time.Duration
}

// NewFanOut создает FanOut поверх канала доставки
func NewFanOut(sink Sink, logger *logrus.Logger, cfg *config.Config) *FanOut {
	limit := cfg.MailConcurrency
	if limit < 1 {
		limit = -1
	}
	timeout := cfg.MailSendTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &FanOut{
		sink:    sink,
		logger:  logger,
		limit:   limit,
		timeout: timeout,
	}
}

// Dispatch запускает отправки и возвращает исходы в порядке входных сообщений
func (f *FanOut) Dispatch(ctx context.Context, msgs []Message) []Outcome {
	outcomes := make([]Outcome, len(msgs))
	if len(msgs) == 0 {
		return outcomes
	}

	// Отключение клиента не должно обрывать рассылку
	ctx = context.WithoutCancel(ctx)

	var g errgroup.Group
	g.SetLimit(f.limit)
	for i, msg := range msgs {
		g.Go(func() error {
			sendCtx, cancel := context.WithTimeout(ctx, f.timeout)
			defer cancel()

			err := f.sink.Send(sendCtx, msg)
			outcomes[i] = Outcome{Message: msg, Err: err}

			log := f.logger.WithField("to", msg.To)
			if err != nil {
				metrics.EmailsTotal.WithLabelValues("failed").Inc()
				log.WithError(err).Error("Failed to deliver email")
				return nil
			}
			metrics.EmailsTotal.WithLabelValues("sent").Inc()
			log.Debug("Email delivered")
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

// Failed возвращает число неудачных отправок
func Failed(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}
