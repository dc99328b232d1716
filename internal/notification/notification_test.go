package notification

import (
	"context"
	"mime"
	"testing"
	"time"

	"github.com/Roy125512/SacrePadel/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"github.com/wneessen/go-mail"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestSMTPMailer_Disabled(t *testing.T) {
	m, err := NewSMTPMailer(SMTPConfig{}, newTestLogger(t))
	require.NoError(t, err)

	err = m.Send(context.Background(), domain.Email{To: "ana@example.com"})

	assert.ErrorIs(t, err, ErrMailerDisabled)
}

func TestSMTPMailer_Message(t *testing.T) {
	m := &SMTPMailer{from: "reservas@sacrepadel.mx", name: "Sacre Padel", logger: newTestLogger(t)}

	msg, err := m.message(domain.Email{
		To:      "ana@example.com",
		Subject: "Confirmación de reserva - Sacre Padel",
		Text:    "Hola Ana",
		HTML:    "<p>Hola Ana</p>",
	})

	require.NoError(t, err)

	// заголовок хранится в RFC 2047
	subject := msg.GetGenHeader(mail.HeaderSubject)
	require.Len(t, subject, 1)
	decoded, err := new(mime.WordDecoder).DecodeHeader(subject[0])
	require.NoError(t, err)
	assert.Equal(t, "Confirmación de reserva - Sacre Padel", decoded)

	to := msg.GetTo()
	require.Len(t, to, 1)
	assert.Equal(t, "ana@example.com", to[0].Address)

	from := msg.GetFrom()
	require.Len(t, from, 1)
	assert.Equal(t, "reservas@sacrepadel.mx", from[0].Address)
	assert.Equal(t, "Sacre Padel", from[0].Name)
}

func TestSMTPMailer_Message_InvalidRecipient(t *testing.T) {
	m := &SMTPMailer{from: "reservas@sacrepadel.mx", logger: newTestLogger(t)}

	_, err := m.message(domain.Email{To: "not an address", Subject: "x", Text: "x"})

	assert.Error(t, err)
}

func TestTLSPolicy(t *testing.T) {
	assert.Equal(t, mail.TLSMandatory, tlsPolicy("mandatory"))
	assert.Equal(t, mail.NoTLS, tlsPolicy("none"))
	assert.Equal(t, mail.TLSOpportunistic, tlsPolicy(""))
}

func TestTelegramNotifier_DisabledDoesNotPanic(t *testing.T) {
	zone := time.FixedZone("-06:00", -6*60*60)
	n, err := NewTelegramNotifier("", 0, zone, newTestLogger(t))
	require.NoError(t, err)

	start := time.Date(2026, 3, 10, 18, 0, 0, 0, zone)
	b := &domain.Booking{ID: "b1", StartAt: start, EndAt: start.Add(90 * time.Minute)}

	assert.NotPanics(t, func() {
		n.NotifyBookingConfirmed(context.Background(), b, &domain.Customer{FullName: "Ana"}, &domain.Court{Name: "Cancha 1"}, 600)
		n.NotifyBookingPaid(context.Background(), b)
		n.NotifyBookingCancelled(context.Background(), b)
	})
	assert.Equal(t, "10/03/2026 18:00-19:30", n.period(b))
}

func TestEscape(t *testing.T) {
	assert.Equal(t, `Ana\_Maria \*VIP\*`, escape("Ana_Maria *VIP*"))
}
