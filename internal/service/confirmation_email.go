package service

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/Roy125512/SacrePadel/internal/domain"
)

var confirmationHTML = template.Must(template.New("confirmation").Parse(`
<div style="font-family: ui-sans-serif, system-ui, Helvetica, Arial; line-height:1.4; color:#111;">
  <h2 style="margin:0 0 10px;">Confirmación de reserva</h2>
  <p style="margin:0 0 14px;">Hola <b>{{.Name}}</b>, tu reserva quedó confirmada en <b>{{.Club}}</b>.</p>
  <div style="border:1px solid #e5e7eb; border-radius:12px; padding:14px; background:#fafafa;">
    <div><b>Cancha:</b> {{.Court}}</div>
    <div><b>Fecha:</b> {{.Date}}</div>
    <div><b>Horario:</b> {{.Start}} - {{.End}}</div>
    <div><b>Total:</b> ${{.Amount}} MXN</div>
    <div style="margin-top:10px;"><b>Tolerancia:</b> {{.Tolerance}} minutos</div>
    <div><b>Pago:</b> en recepción</div>
    {{if .Contact}}<div style="margin-top:12px; font-size:13px; color:#374151;">
      Si necesitas cancelar, por favor llama al <b>{{.Contact}}</b>.
    </div>{{end}}
  </div>
</div>`))

type confirmationView struct {
	Name      string
	Club      string
	Court     string
	Date      string
	Start     string
	End       string
	Amount    string
	Tolerance int
	Contact   string
}

func buildConfirmationEmail(to string, res *domain.ConfirmResult, p Policy) domain.Email {
	zone := p.Facility.Zone
	v := confirmationView{
		Name:      res.Customer.FullName,
		Club:      p.ClubName,
		Court:     res.Court.Name,
		Date:      res.Booking.StartAt.In(zone).Format("02/01/2006"),
		Start:     res.Booking.StartAt.In(zone).Format("15:04"),
		End:       res.Booking.EndAt.In(zone).Format("15:04"),
		Amount:    fmt.Sprintf("%.2f", res.Amount),
		Tolerance: res.ToleranceMinutes,
		Contact:   p.ContactPhone,
	}

	var html bytes.Buffer
	if err := confirmationHTML.Execute(&html, v); err != nil {
		// шаблон статический, падать тут нечему; письмо уйдёт текстом
		html.Reset()
	}

	lines := []string{
		fmt.Sprintf("Hola %s,", v.Name),
		"",
		fmt.Sprintf("Tu reserva quedó confirmada en %s.", v.Club),
		fmt.Sprintf("Cancha: %s", v.Court),
		fmt.Sprintf("Fecha: %s", v.Date),
		fmt.Sprintf("Horario: %s - %s", v.Start, v.End),
		fmt.Sprintf("Total: $%s MXN", v.Amount),
		"",
		fmt.Sprintf("Tienes %d minutos de tolerancia.", v.Tolerance),
		"Pago en recepción.",
	}
	if v.Contact != "" {
		lines = append(lines, "", fmt.Sprintf("Si necesitas cancelar, por favor llama al %s.", v.Contact))
	}

	return domain.Email{
		To:      to,
		Subject: fmt.Sprintf("Confirmación de reserva - %s", v.Club),
		HTML:    html.String(),
		Text:    strings.Join(lines, "\n"),
	}
}
