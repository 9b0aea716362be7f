package utils

import (
	"fmt"
	"unicode/utf8"

	"github.com/itchan-dev/agora/shared/config"
	"github.com/itchan-dev/agora/shared/domain"
	internal_errors "github.com/itchan-dev/agora/shared/errors"
)

// Validator checks user supplied text against the configured limits.
// Input is expected to be trimmed and sanitized already.
type Validator struct {
	cfg *config.Public
}

func New(cfg *config.Public) *Validator {
	return &Validator{cfg: cfg}
}

func (v *Validator) Title(title domain.ThreadTitle) error {
	if title == "" {
		return internal_errors.Validation("Title is empty")
	}
	return maxLength("Title", title, v.cfg.MaxTitleLength)
}

func (v *Validator) Description(description string) error {
	return maxLength("Description", description, v.cfg.MaxDescriptionLength)
}

func (v *Validator) Comment(content domain.CommentText) error {
	if content == "" {
		return internal_errors.Validation("Comment is empty")
	}
	return maxLength("Comment", content, v.cfg.MaxCommentLength)
}

func (v *Validator) Query(query domain.SearchQuery) error {
	return maxLength("Query", query, v.cfg.MaxQueryLength)
}

func maxLength(field, s string, limit int) error {
	if limit > 0 && utf8.RuneCountInString(s) > limit {
		return internal_errors.Validation(fmt.Sprintf("%s is too long (max %d characters)", field, limit))
	}
	return nil
}
