package dto

import (
	"errors"
	"strings"
)

// CreateGameRequest deliberately has no ID, IsActive-forcing or CreatedAt
// fields beyond what an admin may set; workflow-controlled fields never come
// from the client at the type level.
type CreateGameRequest struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

func (r *CreateGameRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	return nil
}

// UpdateGameRequest is a partial patch: nil means "leave unchanged".
type UpdateGameRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

func (r *UpdateGameRequest) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return errors.New("name must not be empty")
	}
	if r.Slug != nil && strings.TrimSpace(*r.Slug) == "" {
		return errors.New("slug must not be empty")
	}
	return nil
}

type CreateCardRequest struct {
	Points   string  `json:"points"`
	Bonus    *string `json:"bonus"`
	Price    int     `json:"price"`
	IsActive *bool   `json:"isActive"`
}

func (r *CreateCardRequest) Validate() error {
	if strings.TrimSpace(r.Points) == "" {
		return errors.New("points is required")
	}
	if r.Price <= 0 {
		return errors.New("price must be positive")
	}
	return nil
}

type UpdateCardRequest struct {
	Points   *string `json:"points"`
	Bonus    *string `json:"bonus"`
	Price    *int    `json:"price"`
	IsActive *bool   `json:"isActive"`
}

func (r *UpdateCardRequest) Validate() error {
	if r.Points != nil && strings.TrimSpace(*r.Points) == "" {
		return errors.New("points must not be empty")
	}
	if r.Price != nil && *r.Price <= 0 {
		return errors.New("price must be positive")
	}
	return nil
}
