package dto

import (
	"errors"
	"strings"
)

// CreateCommentRequest has no IsApproved field: new comments always enter
// the moderation queue unapproved, regardless of what the client sends.
type CreateCommentRequest struct {
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (r *CreateCommentRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	if r.Rating < 1 || r.Rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	if strings.TrimSpace(r.Comment) == "" {
		return errors.New("comment is required")
	}
	return nil
}
