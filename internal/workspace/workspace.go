package workspace

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Limits bounds workspace form fields and selection counts. Callers pass
// a Limits value into the wizard, picker and store so tests can shrink
// the caps.
type Limits struct {
	MaxNameLength        int
	MaxDescriptionLength int
	MinPages             int
	MaxPages             int
	MaxWorkspaces        int
}

func DefaultLimits() Limits {
	return Limits{
		MaxNameLength:        50,
		MaxDescriptionLength: 200,
		MinPages:             1,
		MaxPages:             20,
		MaxWorkspaces:        10,
	}
}

// FormData is the transient state of the creation wizard. It is created
// fresh when the wizard opens and discarded on any close.
type FormData struct {
	Name        string
	Description string
	Icon        string
	Color       string
	PageIDs     []string
	TemplateID  string
}

func NewFormData() FormData {
	return FormData{
		Icon:  DefaultIcon,
		Color: DefaultColor,
	}
}

// Workspace is a persisted custom workspace.
type Workspace struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Icon        string   `yaml:"icon" json:"icon"`
	Color       string   `yaml:"color" json:"color"`
	PageIDs     []string `yaml:"pages" json:"pageIds"`
	TemplateID  string   `yaml:"template,omitempty" json:"templateId,omitempty"`
	CreatedAt   string   `yaml:"created_at" json:"createdAt"`
	UpdatedAt   string   `yaml:"updated_at" json:"updatedAt"`
}

// CreateInput is the payload handed to a Creator. Name and Description
// arrive trimmed.
type CreateInput struct {
	Name        string
	Description string
	Icon        string
	Color       string
	PageIDs     []string
	TemplateID  string
}

// Creator persists a new workspace and returns its id. The wizard sees
// only this boundary; the local store and the platform API both satisfy it.
type Creator interface {
	Create(ctx context.Context, input CreateInput) (string, error)
}

// CreateFailedMessage is the retryable banner shown when a Creator
// returns no id.
const CreateFailedMessage = "Failed to create workspace. You may have reached the maximum limit."

// ValidateBasicInfo checks the step-1 fields and returns an inline error
// message, or "" when the step may advance.
func ValidateBasicInfo(form FormData, limits Limits) string {
	name := strings.TrimSpace(form.Name)
	if name == "" {
		return "Workspace name is required"
	}
	// Limits count characters, not bytes, matching the inputs' CharLimit.
	if utf8.RuneCountInString(name) > limits.MaxNameLength {
		return fmt.Sprintf("Name must be %d characters or less", limits.MaxNameLength)
	}
	if utf8.RuneCountInString(strings.TrimSpace(form.Description)) > limits.MaxDescriptionLength {
		return fmt.Sprintf("Description must be %d characters or less", limits.MaxDescriptionLength)
	}
	return ""
}

// ValidatePageCount checks the step-2 selection and returns an inline
// error message, or "" when the step may advance.
func ValidatePageCount(form FormData, limits Limits) string {
	if len(form.PageIDs) < limits.MinPages {
		return fmt.Sprintf("Select at least %d page", limits.MinPages)
	}
	if len(form.PageIDs) > limits.MaxPages {
		return fmt.Sprintf("Select at most %d pages", limits.MaxPages)
	}
	return ""
}

// BuildCreateInput trims the form into the payload handed to a Creator.
func BuildCreateInput(form FormData) CreateInput {
	return CreateInput{
		Name:        strings.TrimSpace(form.Name),
		Description: strings.TrimSpace(form.Description),
		Icon:        form.Icon,
		Color:       form.Color,
		PageIDs:     append([]string(nil), form.PageIDs...),
		TemplateID:  form.TemplateID,
	}
}
