// Package forms validates and normalizes user-submitted post data before it
// reaches storage.
package forms

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/quill-dev/quill/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Errors maps a form field name to a user-facing message.
type Errors map[string]string

// PostForm is the raw submission: text plus an optional group id as it came
// off the wire.
type PostForm struct {
	Text  string `validate:"required"`
	Group string
}

// PostData is the normalized result, ready for storage create/update.
type PostData struct {
	Text    domain.PostText
	GroupId *domain.GroupId
}

// GroupLookup resolves a submitted group id against existing groups.
type GroupLookup interface {
	GetGroup(id domain.GroupId) (*domain.Group, error)
}

// ParsePostForm reads the post form fields from the request. Text is trimmed
// here so validation sees the normalized value.
func ParsePostForm(r *http.Request) PostForm {
	return PostForm{
		Text:  strings.TrimSpace(r.FormValue("text")),
		Group: strings.TrimSpace(r.FormValue("group")),
	}
}

// Validate checks the submission and resolves the optional group reference.
// The group field is permissive: the form only offers existing groups, so an
// unparsable or unknown id means a stale or hand-crafted request and the post
// is simply stored without a group.
func (f PostForm) Validate(groups GroupLookup) (PostData, Errors) {
	errs := Errors{}

	if err := validate.Struct(f); err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			if fieldErr.Field() == "Text" {
				errs["text"] = "text required"
			}
		}
	}

	data := PostData{Text: f.Text}
	if f.Group != "" {
		if id, err := strconv.ParseInt(f.Group, 10, 64); err == nil {
			if group, err := groups.GetGroup(id); err == nil && group != nil {
				data.GroupId = &group.Id
			}
		}
	}

	if len(errs) > 0 {
		return PostData{}, errs
	}
	return data, nil
}
