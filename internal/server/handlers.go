package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"covidportal/internal/auth"
	"covidportal/internal/logging"
	"covidportal/internal/repository"
)

// Handlers translates parsed requests into core operations and core results
// into HTTP responses. Domain errors become status codes here and nowhere
// else; store failures surface as 500 without internal detail.
type Handlers struct {
	authenticator auth.Authenticator
	repo          repository.Manager
	logger        logging.Logger
}

// NewHandlers wires the HTTP handlers to the core components.
func NewHandlers(authenticator auth.Authenticator, repo repository.Manager, logger logging.Logger) *Handlers {
	if logger == nil {
		logger = logging.NewDefault()
	}
	return &Handlers{
		authenticator: authenticator,
		repo:          repo,
		logger:        logger,
	}
}

// Login handles POST /login.
func (h *Handlers) Login(c *fiber.Ctx) error {
	payload := LoginRequest{}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid request body")
	}
	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	token, err := h.authenticator.Login(c.Context(), payload.Username, payload.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			return c.Status(fiber.StatusBadRequest).SendString("Invalid user")
		case errors.Is(err, auth.ErrMismatchedHashAndPassword):
			return c.Status(fiber.StatusBadRequest).SendString("Invalid password")
		}
		h.logger.Error("login failed", "error", err)
		return internalError(c)
	}

	return c.JSON(TokenResponse{JWTToken: token})
}

// ListStates handles GET /states.
func (h *Handlers) ListStates(c *fiber.Ctx) error {
	records, err := h.repo.States().List(c.Context())
	if err != nil {
		h.logger.Error("listing states failed", "error", err)
		return internalError(c)
	}
	return c.JSON(records)
}

// GetState handles GET /states/:stateId.
func (h *Handlers) GetState(c *fiber.Ctx) error {
	id, err := c.ParamsInt("stateId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid state id")
	}

	record, err := h.repo.States().GetByID(c.Context(), int64(id))
	if err != nil {
		if errors.Is(err, repository.ErrStateNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("State not found")
		}
		h.logger.Error("fetching state failed", "state_id", id, "error", err)
		return internalError(c)
	}

	return c.JSON(record)
}

// CreateDistrict handles POST /districts.
func (h *Handlers) CreateDistrict(c *fiber.Ctx) error {
	payload := DistrictRequest{}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid request body")
	}
	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	record, err := h.repo.Districts().Create(c.Context(), payload.toModel())
	if err != nil {
		h.logger.Error("creating district failed", "error", err)
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(CreatedResponse{
		DistrictID: record.ID,
		Message:    "District Successfully Added",
	})
}

// GetDistrict handles GET /districts/:districtId.
func (h *Handlers) GetDistrict(c *fiber.Ctx) error {
	id, err := c.ParamsInt("districtId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid district id")
	}

	record, err := h.repo.Districts().GetByID(c.Context(), int64(id))
	if err != nil {
		if errors.Is(err, repository.ErrDistrictNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("District not found")
		}
		h.logger.Error("fetching district failed", "district_id", id, "error", err)
		return internalError(c)
	}

	return c.JSON(record)
}

// UpdateDistrict handles PUT /districts/:districtId, a full-record replace.
func (h *Handlers) UpdateDistrict(c *fiber.Ctx) error {
	id, err := c.ParamsInt("districtId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid district id")
	}

	payload := DistrictRequest{}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid request body")
	}
	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	record := payload.toModel()
	record.ID = int64(id)

	if err := h.repo.Districts().Update(c.Context(), record); err != nil {
		if errors.Is(err, repository.ErrDistrictNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("District not found")
		}
		h.logger.Error("updating district failed", "district_id", id, "error", err)
		return internalError(c)
	}

	return c.SendString("District Details Updated")
}

// DeleteDistrict handles DELETE /districts/:districtId.
func (h *Handlers) DeleteDistrict(c *fiber.Ctx) error {
	id, err := c.ParamsInt("districtId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid district id")
	}

	if err := h.repo.Districts().Delete(c.Context(), int64(id)); err != nil {
		if errors.Is(err, repository.ErrDistrictNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("District not found")
		}
		h.logger.Error("deleting district failed", "district_id", id, "error", err)
		return internalError(c)
	}

	return c.SendString("District Removed")
}

// StateStats handles GET /states/:stateId/stats. A state with no districts
// reports zeros for all four totals.
func (h *Handlers) StateStats(c *fiber.Ctx) error {
	id, err := c.ParamsInt("stateId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid state id")
	}

	stats, err := h.repo.Districts().StateStats(c.Context(), int64(id))
	if err != nil {
		h.logger.Error("aggregating state stats failed", "state_id", id, "error", err)
		return internalError(c)
	}

	return c.JSON(stats)
}

// DistrictDetails handles GET /districts/:districtId/details. The result is
// an empty array when the district or its state reference does not exist.
func (h *Handlers) DistrictDetails(c *fiber.Ctx) error {
	id, err := c.ParamsInt("districtId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid district id")
	}

	names, err := h.repo.Districts().StateNames(c.Context(), int64(id))
	if err != nil {
		h.logger.Error("resolving district state name failed", "district_id", id, "error", err)
		return internalError(c)
	}

	out := make([]StateNameResponse, 0, len(names))
	for _, name := range names {
		out = append(out, StateNameResponse{StateName: name})
	}

	return c.JSON(out)
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
}
