package handler

// petRequest covers both create and update; the shapes are identical.
// Age is a non-negative integer (years).
type petRequest struct {
	Name    string `json:"name"     validate:"required"`
	Species string `json:"species"  validate:"required"`
	Breed   string `json:"breed"    validate:"required"`
	Size    string `json:"size"     validate:"required"`
	Age     int    `json:"age"      validate:"gte=0"`
	OwnerID string `json:"owner_id" validate:"required"`
}
