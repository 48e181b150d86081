package mailer

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/shenikar/sos_alert_system/internal/models"
)

const timestampLayout = "02/01/2006 15:04 MST"

var alertTemplate = template.Must(template.New("alert").Parse(`Hola {{.ContactName}},

Se ha registrado una alerta SOS en la que usted figura como contacto de emergencia.

Detalle: {{.Detail}}
Dirección: {{.Address}}
Fecha y hora: {{.Timestamp}}
{{if .MapURL}}Ubicación: {{.MapURL}}
{{end}}
Si puede, comuníquese con la persona o con los servicios de emergencia.
`))

var resetTemplate = template.Must(template.New("reset").Parse(`Hola {{.Name}},

Su código para restablecer la contraseña es: {{.Code}}

El código vence en {{.TTL}}. Si usted no lo solicitó, ignore este mensaje.
`))

// NewAlertMessage составляет письмо экстренному контакту о новой тревоге
func NewAlertMessage(contact *models.Contact, alert *models.Alert, loc *time.Location) (Message, error) {
	if loc == nil {
		loc = time.UTC
	}

	data := struct {
		ContactName string
		Detail      string
		Address     string
		Timestamp   string
		MapURL      string
	}{
		ContactName: contact.FullName(),
		Detail:      strings.TrimSpace(alert.Detail),
		Address:     alert.Address,
		Timestamp:   alert.Timestamp.In(loc).Format(timestampLayout),
		MapURL:      mapURL(alert.Location),
	}

	var buf bytes.Buffer
	if err := alertTemplate.Execute(&buf, data); err != nil {
		return Message{}, fmt.Errorf("failed to render alert email: %w", err)
	}

	return Message{
		To:      contact.Email,
		ToName:  contact.FullName(),
		Subject: "Alerta SOS: " + alert.Address,
		Body:    buf.String(),
	}, nil
}

// NewResetCodeMessage составляет письмо с одноразовым кодом сброса пароля
func NewResetCodeMessage(user *models.User, code string, ttl time.Duration) (Message, error) {
	data := struct {
		Name string
		Code string
		TTL  string
	}{
		Name: user.FullName,
		Code: code,
		TTL:  ttl.String(),
	}

	var buf bytes.Buffer
	if err := resetTemplate.Execute(&buf, data); err != nil {
		return Message{}, fmt.Errorf("failed to render reset email: %w", err)
	}

	return Message{
		To:      user.Email,
		ToName:  user.FullName,
		Subject: "Código de restablecimiento de contraseña",
		Body:    buf.String(),
	}, nil
}

func mapURL(c models.Coordinates) string {
	if c.Lat == 0 && c.Lng == 0 {
		return ""
	}
	return fmt.Sprintf("https://maps.google.com/?q=%.6f,%.6f", c.Lat, c.Lng)
}
