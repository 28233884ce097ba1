package handler

// appointmentRequest covers both create and update. Date is a calendar
// day and Time a wall-clock slot; together they identify the booking
// slot, which must be free.
type appointmentRequest struct {
	Date     string `json:"date"      validate:"required,datetime=2006-01-02"`
	Time     string `json:"time"      validate:"required,datetime=15:04:05"`
	DoctorID string `json:"doctor_id" validate:"required"`
	PetID    string `json:"pet_id"    validate:"required"`
	OwnerID  string `json:"owner_id"  validate:"required"`
}
