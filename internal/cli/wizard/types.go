// Package wizard collects the answers for "restsnap new", either through
// huh forms or, without a terminal, from flags and configured defaults.
package wizard

import (
	"errors"

	"github.com/restsnap/restsnap/pkg/models"
)

// Answers holds the user's selections. Values are raw; they are validated
// when turned into a project request.
type Answers struct {
	ProjectName    string
	Dockerize      bool
	PackageManager string
}

// Defaults seeds each question's initial value.
type Defaults struct {
	ProjectName    string
	Dockerize      bool
	PackageManager models.PackageManager
}

// QuestionType represents the kind of form field a question renders as.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeInput is a text input question.
	QuestionTypeInput
	// QuestionTypeConfirm is a yes/no question.
	QuestionTypeConfirm
)

// Question defines a single wizard question.
type Question struct {
	ID          string
	Type        QuestionType
	Title       string
	Description string
	Options     []Option // select questions only
	Default     string   // "true"/"false" for confirm questions
	Required    bool
}

// Option represents a selectable option.
type Option struct {
	Label string
	Value string
	Desc  string
}

// Question IDs.
const (
	QuestionProjectName    = "project_name"
	QuestionDockerize      = "dockerize"
	QuestionPackageManager = "package_manager"
)

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
	// ErrRequired is the validation message for an empty required answer.
	ErrRequired = errors.New("this field is required")
)
