package queue

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/vetclinic/vetclinic-api/internal/core/ports"
)

// LogSender writes notifications to the structured log. It stands in for
// a real channel (email, SMS) until one is wired up.
type LogSender struct {
	log zerolog.Logger
}

func NewLogSender(log zerolog.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(_ context.Context, n ports.Notification) error {
	s.log.Info().
		Str("appointment_id", n.AppointmentID).
		Str("kind", n.Kind).
		Str("owner_id", n.OwnerID).
		Str("pet_id", n.PetID).
		Str("date", n.Date).
		Str("time", n.Time).
		Msg("appointment notification")
	return nil
}
