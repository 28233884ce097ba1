package domain

import "time"

// Appointment books a pet with a doctor for a given date and time slot.
// Date is a calendar day (YYYY-MM-DD) and Time a wall-clock slot
// (HH:MM:SS); together they are unique across the clinic.
type Appointment struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	DoctorID  string    `json:"doctor_id"`
	PetID     string    `json:"pet_id"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
