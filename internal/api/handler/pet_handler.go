package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vetclinic/vetclinic-api/internal/core/ports"
)

// PetHandler handles HTTP requests for pets.
type PetHandler struct {
	service      ports.PetService
	appointments ports.AppointmentService
}

func NewPetHandler(service ports.PetService, appointments ports.AppointmentService) *PetHandler {
	return &PetHandler{service: service, appointments: appointments}
}

// List returns pets visible to the caller: everything for staff, own
// pets for owners.
//
// @Summary      List pets
// @Tags         pets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Pet
// @Failure      401  {object}  errorResponse
// @Router       /v1/pets [get]
func (h *PetHandler) List(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	pets, err := h.service.List(c.Request().Context(), claims)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pets)
}

// Get returns a single pet.
//
// @Summary      Get a pet by id
// @Tags         pets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Pet id"
// @Success      200  {object}  domain.Pet
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/pets/{id} [get]
func (h *PetHandler) Get(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	pet, err := h.service.Get(c.Request().Context(), claims, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pet)
}

// Create registers a new pet.
//
// @Summary      Register a pet
// @Tags         pets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      petRequest  true  "Pet details"
// @Success      201   {object}  domain.Pet
// @Failure      400   {object}  errorResponse
// @Router       /v1/pets [post]
func (h *PetHandler) Create(c echo.Context) error {
	var req petRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	pet, err := h.service.Create(c.Request().Context(), ports.PetInput{
		Name:    req.Name,
		Species: req.Species,
		Breed:   req.Breed,
		Size:    req.Size,
		Age:     req.Age,
		OwnerID: req.OwnerID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, pet)
}

// Update replaces a pet's record.
//
// @Summary      Update a pet
// @Tags         pets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string      true  "Pet id"
// @Param        body  body      petRequest  true  "Pet details"
// @Success      200   {object}  domain.Pet
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/pets/{id} [put]
func (h *PetHandler) Update(c echo.Context) error {
	var req petRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	pet, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.PetInput{
		Name:    req.Name,
		Species: req.Species,
		Breed:   req.Breed,
		Size:    req.Size,
		Age:     req.Age,
		OwnerID: req.OwnerID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pet)
}

// Delete removes a pet and returns the deleted record.
//
// @Summary      Delete a pet
// @Tags         pets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Pet id"
// @Success      200  {object}  domain.Pet
// @Failure      404  {object}  errorResponse
// @Router       /v1/pets/{id} [delete]
func (h *PetHandler) Delete(c echo.Context) error {
	pet, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pet)
}

// Appointments lists the bookings attached to a pet.
//
// @Summary      List a pet's appointments
// @Tags         pets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Pet id"
// @Success      200  {array}   domain.Appointment
// @Failure      401  {object}  errorResponse
// @Router       /v1/pets/{id}/appointments [get]
func (h *PetHandler) Appointments(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	appts, err := h.appointments.ListByPet(c.Request().Context(), claims, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appts)
}
