package mailer

//go:generate mockgen -source=sink.go -destination=mocks/sink.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/shenikar/sos_alert_system/internal/config"
	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// Message - одно письмо одному получателю
type Message struct {
	To      string `json:"to"`
	ToName  string `json:"to_name,omitempty"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Sink - канал доставки одного сообщения
type Sink interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPSink отправляет письма через SMTP-сервер
type SMTPSink struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSink создает SMTPSink по настройкам почты
func NewSMTPSink(cfg *config.Config) *SMTPSink {
	return &SMTPSink{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.MailFrom,
	}
}

// Send доставляет письмо; ожидание прерывается по отмене контекста.
// Установка соединения в gomail ограничена 10 секундами. Отправка, брошенная
// по контексту, доживает в фоне до ответа или закрытия соединения сервером.
func (s *SMTPSink) Send(ctx context.Context, msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetAddressHeader("To", msg.To, msg.ToName)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send email to %s: %w", msg.To, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("email to %s aborted: %w", msg.To, ctx.Err())
	}
}

// LogSink используется, когда SMTP не настроен: письмо только пишется в лог
type LogSink struct {
	logger *logrus.Logger
}

func NewLogSink(logger *logrus.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Send(_ context.Context, msg Message) error {
	s.logger.WithFields(logrus.Fields{
		"to":      msg.To,
		"subject": msg.Subject,
	}).Warn("SMTP is not configured. Email logged instead of delivered.")
	return nil
}

// NewSink выбирает SMTPSink или LogSink в зависимости от конфигурации
func NewSink(cfg *config.Config, logger *logrus.Logger) Sink {
	if cfg.SMTPHost == "" {
		return NewLogSink(logger)
	}
	return NewSMTPSink(cfg)
}
