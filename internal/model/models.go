// Package model holds the persisted entities of the portal.
package model

import (
	"github.com/uptrace/bun"
)

// User is a registered principal. Records are provisioned out of band and are
// read-only to the portal core.
type User struct {
	bun.BaseModel `bun:"table:user,alias:usr"`
	Username      string `bun:"username,pk" json:"username,omitempty"`
	PasswordHash  string `bun:"password_hash,notnull" json:"-"`
}

// State is a geographic region. Read-only through this service.
type State struct {
	bun.BaseModel `bun:"table:state,alias:st"`
	ID            int64  `bun:"state_id,pk" json:"stateId"`
	Name          string `bun:"state_name,notnull" json:"stateName"`
	Population    int64  `bun:"population,notnull" json:"population"`
}

// District is a subdivision of a State carrying case-count metrics. The id is
// assigned by the store on creation and never reused within a store lifetime.
type District struct {
	bun.BaseModel `bun:"table:district,alias:dst"`
	ID            int64  `bun:"district_id,pk,autoincrement" json:"districtId"`
	Name          string `bun:"district_name,notnull" json:"districtName"`
	StateID       int64  `bun:"state_id,notnull" json:"stateId"`
	Cases         int64  `bun:"cases,notnull" json:"cases"`
	Cured         int64  `bun:"cured,notnull" json:"cured"`
	Active        int64  `bun:"active,notnull" json:"active"`
	Deaths        int64  `bun:"deaths,notnull" json:"deaths"`
}

// StateStats aggregates the four metric columns across the districts of one
// state. Sums over zero districts are zero, never null.
type StateStats struct {
	TotalCases  int64 `bun:"total_cases" json:"totalCases"`
	TotalCured  int64 `bun:"total_cured" json:"totalCured"`
	TotalActive int64 `bun:"total_active" json:"totalActive"`
	TotalDeaths int64 `bun:"total_deaths" json:"totalDeaths"`
}
