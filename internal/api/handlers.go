package api

import (
	"errors"
	"time"

	"github.com/skoskinen/painovahti/internal/db"
	"github.com/skoskinen/painovahti/internal/services"
)

type Handler struct {
	users         *db.UserRepository
	weights       *services.WeightLogService
	periods       *services.DietaryPeriodService
	location      *time.Location
	defaultUserID uint
}

type weightPayload struct {
	Date     string  `json:"date" form:"date"`
	WeightKg float64 `json:"weight_kg" form:"weight_kg"`
	Notes    string  `json:"notes" form:"notes"`
}

type weightUpdatePayload struct {
	WeightKg float64 `json:"weight_kg" form:"weight_kg"`
	Notes    string  `json:"notes" form:"notes"`
}

type periodPayload struct {
	StartDate    string `json:"start_date" form:"start_date"`
	EndDate      string `json:"end_date" form:"end_date"`
	Name         string `json:"name" form:"name"`
	ProtocolType string `json:"protocol_type" form:"protocol_type"`
	Description  string `json:"description" form:"description"`
	Notes        string `json:"notes" form:"notes"`
}

type endPeriodPayload struct {
	EndDate string `json:"end_date" form:"end_date"`
}

type periodUpdatePayload struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	ProtocolType *string `json:"protocol_type"`
	Notes        *string `json:"notes"`
	StartDate    *string `json:"start_date"`
	EndDate      *string `json:"end_date"`
	IsActive     *bool   `json:"is_active"`
}

func NewHandler(repositories *db.Repositories, location *time.Location) (*Handler, error) {
	if repositories == nil {
		return nil, errors.New("repositories are required")
	}
	if location == nil {
		location = time.Local
	}

	defaultUser, err := repositories.Users.EnsureDefaultUser()
	if err != nil {
		return nil, err
	}

	weightService := services.NewWeightLogService(repositories.WeightLogs, repositories.Periods)
	periodService := services.NewDietaryPeriodService(repositories.Periods, weightService)

	return &Handler{
		users:         repositories.Users,
		weights:       weightService,
		periods:       periodService,
		location:      location,
		defaultUserID: defaultUser.ID,
	}, nil
}

func (handler *Handler) now() time.Time {
	return time.Now().In(handler.location)
}
