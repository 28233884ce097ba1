package ports

import "context"

// Notification kinds emitted by the appointment service.
const (
	NotifyBooked      = "booked"
	NotifyRescheduled = "rescheduled"
	NotifyCancelled   = "cancelled"
)

// Notification describes an appointment change to communicate to the
// owner. Delivery is best-effort and asynchronous.
type Notification struct {
	AppointmentID string
	Kind          string
	Date          string
	Time          string
	PetID         string
	OwnerID       string
}

// NotificationSender delivers a single notification.
type NotificationSender interface {
	Send(ctx context.Context, n Notification) error
}

// NotificationQueue accepts notifications for asynchronous delivery.
type NotificationQueue interface {
	Enqueue(n Notification)
}
