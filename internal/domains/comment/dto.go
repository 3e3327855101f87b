package comment

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Form is the comment-submission form descriptor attached to post detail
// pages. A fresh detail page carries it empty.
type Form struct {
	Text string `json:"text"`
}

// SubmitRequest carries the single editable field of a comment, for both
// create and update.
type SubmitRequest struct {
	Text string `json:"text"`
}

func (r SubmitRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text, validation.Required),
	)
}
