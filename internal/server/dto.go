package server

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"covidportal/internal/model"
)

// LoginRequest is the credential payload for POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate will run validation rules.
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// DistrictRequest is the payload for creating or replacing a district. The
// metric fields are non-negative integers; negative or non-numeric input is
// rejected, never coerced.
type DistrictRequest struct {
	DistrictName string `json:"districtName"`
	StateID      int64  `json:"stateId"`
	Cases        int64  `json:"cases"`
	Cured        int64  `json:"cured"`
	Active       int64  `json:"active"`
	Deaths       int64  `json:"deaths"`
}

// Validate will run validation rules.
func (r DistrictRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DistrictName, validation.Required),
		validation.Field(&r.StateID, validation.Required),
		validation.Field(&r.Cases, validation.Min(0)),
		validation.Field(&r.Cured, validation.Min(0)),
		validation.Field(&r.Active, validation.Min(0)),
		validation.Field(&r.Deaths, validation.Min(0)),
	)
}

func (r DistrictRequest) toModel() *model.District {
	return &model.District{
		Name:    r.DistrictName,
		StateID: r.StateID,
		Cases:   r.Cases,
		Cured:   r.Cured,
		Active:  r.Active,
		Deaths:  r.Deaths,
	}
}

// StateNameResponse is one row of GET /districts/:districtId/details.
type StateNameResponse struct {
	StateName string `json:"stateName"`
}

// TokenResponse is the login success payload.
type TokenResponse struct {
	JWTToken string `json:"jwtToken"`
}

// CreatedResponse confirms district creation and carries the assigned id.
type CreatedResponse struct {
	DistrictID int64  `json:"districtId"`
	Message    string `json:"message"`
}
