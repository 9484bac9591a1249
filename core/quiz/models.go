package quiz

import (
	"time"

	"github.com/pkg/errors"

	"github.com/eskwela/admin/core"
	"github.com/eskwela/admin/core/content"
	"github.com/eskwela/admin/core/user"
)

// Quiz statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// Scoring methods.
const (
	ScoringPoints     = "points"
	ScoringPercentage = "percentage"
)

// Attempt statuses.
const (
	AttemptInProgress = "in_progress"
	AttemptCompleted  = "completed"
	AttemptAbandoned  = "abandoned"
)

// Validation message texts surfaced to the frontend verbatim.
const (
	msgOptionsCount  = "Question must have exactly 4 options"
	msgCorrectAnswer = "Correct answer must be between 0 and 3"
)

// OptionsPerQuestion is fixed: every question is multiple-choice with four options.
const OptionsPerQuestion = 4

type Quiz struct {
	ID                  int    `json:"id"`
	Title               string `json:"title"`
	Description         string `json:"description,omitempty"`
	Subject             string `json:"subject"`
	GradeLevel          string `json:"gradeLevel"`
	TimeLimit           int    `json:"timeLimit"` // minutes
	MaxAttempts         int    `json:"maxAttempts"`
	ScoringMethod       string `json:"scoringMethod"`
	Status              string `json:"status"`
	AssociatedContentID int    `json:"associatedContentId,omitempty"`
	// AssociatedContent is attached on reads when AssociatedContentID is set.
	AssociatedContent *content.ARContent `json:"associatedContent,omitempty"`
	QuestionsCount    int                `json:"questionsCount"`
	TotalPoints       int                `json:"totalPoints"`
	CreatedAt         time.Time          `json:"createdAt"` // UTC
	UpdatedAt         time.Time          `json:"updatedAt"` // UTC
	CreatedBy         int                `json:"createdBy"`
}

type Question struct {
	ID            int      `json:"id"`
	QuizID        int      `json:"quizId"`
	Title         string   `json:"title"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"` // index into Options
	Order         int      `json:"order"`
	Points        int      `json:"points"`
	Explanation   string   `json:"explanation,omitempty"`
}

type QuizAttempt struct {
	ID          int          `json:"id"`
	QuizID      int          `json:"quizId"`
	UserID      int          `json:"userId"`
	User        *user.User   `json:"user,omitempty"` // attached on reads
	Quiz        *Quiz        `json:"quiz,omitempty"` // attached on reads
	StartedAt   time.Time    `json:"startedAt"`      // UTC
	CompletedAt *time.Time   `json:"completedAt,omitempty"`
	Score       int          `json:"score"`
	TotalPoints int          `json:"totalPoints"`
	Percentage  int          `json:"percentage"`
	TimeSpent   int          `json:"timeSpent"` // seconds
	Answers     []QuizAnswer `json:"answers"`
	Status      string       `json:"status"`
}

type QuizAnswer struct {
	QuestionID     int  `json:"questionId"`
	SelectedAnswer int  `json:"selectedAnswer"`
	IsCorrect      bool `json:"isCorrect"`
	PointsEarned   int  `json:"pointsEarned"`
	TimeSpent      int  `json:"timeSpent"` // seconds
}

// NewQuiz contains information needed to create a new Quiz.
// New quizzes always start as drafts with no questions.
type NewQuiz struct {
	Title               string `json:"title" validate:"required"`
	Description         string `json:"description"`
	Subject             string `json:"subject" validate:"required,subject"`
	GradeLevel          string `json:"gradeLevel" validate:"required,gradelevel"`
	TimeLimit           int    `json:"timeLimit" validate:"required,min=1"`
	MaxAttempts         int    `json:"maxAttempts" validate:"required,min=1"`
	ScoringMethod       string `json:"scoringMethod" validate:"required,oneof=points percentage"`
	AssociatedContentID int    `json:"associatedContentId"`
}

func (nq *NewQuiz) Validate() error {
	nq.Title = core.CleanString(nq.Title)
	nq.Description = core.CleanString(nq.Description)
	return core.Validate.Struct(nq)
}

// UpdateQuiz defines what information may be provided to modify an existing
// Quiz. Zero-valued fields are left unchanged.
type UpdateQuiz struct {
	Title               string `json:"title"`
	Description         string `json:"description"`
	Subject             string `json:"subject" validate:"omitempty,subject"`
	GradeLevel          string `json:"gradeLevel" validate:"omitempty,gradelevel"`
	TimeLimit           int    `json:"timeLimit" validate:"omitempty,min=1"`
	MaxAttempts         int    `json:"maxAttempts" validate:"omitempty,min=1"`
	ScoringMethod       string `json:"scoringMethod" validate:"omitempty,oneof=points percentage"`
	Status              string `json:"status" validate:"omitempty,oneof=draft published archived"`
	AssociatedContentID int    `json:"associatedContentId"`
}

func (uq *UpdateQuiz) Validate() error {
	uq.Title = core.CleanString(uq.Title)
	uq.Description = core.CleanString(uq.Description)
	return core.Validate.Struct(uq)
}

// NewQuestion contains information needed to create a new Question.
type NewQuestion struct {
	Title         string   `json:"title" validate:"required"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Points        int      `json:"points" validate:"required,min=1"`
	Explanation   string   `json:"explanation"`
}

func (nq *NewQuestion) Validate() error {
	nq.Title = core.CleanString(nq.Title)
	if len(nq.Options) != OptionsPerQuestion {
		return core.NewValidationError(errors.New(msgOptionsCount))
	}
	if nq.CorrectAnswer < 0 || nq.CorrectAnswer > OptionsPerQuestion-1 {
		return core.NewValidationError(errors.New(msgCorrectAnswer))
	}
	return core.Validate.Struct(nq)
}

// UpdateQuestion defines what information may be provided to modify an
// existing Question. Nil/zero fields are left unchanged.
type UpdateQuestion struct {
	Title         string   `json:"title"`
	Options       []string `json:"options"`
	CorrectAnswer *int     `json:"correctAnswer"`
	Points        int      `json:"points" validate:"omitempty,min=1"`
	Explanation   string   `json:"explanation"`
	Order         int      `json:"order" validate:"omitempty,min=1"`
}

func (uq *UpdateQuestion) Validate() error {
	uq.Title = core.CleanString(uq.Title)
	if uq.Options != nil && len(uq.Options) != OptionsPerQuestion {
		return core.NewValidationError(errors.New(msgOptionsCount))
	}
	if uq.CorrectAnswer != nil && (*uq.CorrectAnswer < 0 || *uq.CorrectAnswer > OptionsPerQuestion-1) {
		return core.NewValidationError(errors.New(msgCorrectAnswer))
	}
	return core.Validate.Struct(uq)
}

// QueryFilter narrows, orders and pages quiz listings.
type QueryFilter struct {
	Page                int    `query:"page"`
	PerPage             int    `query:"per_page"`
	Subject             string `query:"subject"`
	GradeLevel          string `query:"gradeLevel"`
	Status              string `query:"status"`
	AssociatedContentID int    `query:"associatedContentId"`
	Search              string `query:"search"`
	SortBy              string `query:"sortBy"`    // title | subject | gradeLevel | createdAt | questionsCount
	SortOrder           string `query:"sortOrder"` // asc (default) | desc
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}

// AttemptFilter narrows, orders and pages attempt listings.
type AttemptFilter struct {
	Page      int       `query:"page"`
	PerPage   int       `query:"per_page"`
	QuizID    int       `query:"quizId"`
	UserID    int       `query:"userId"`
	Status    string    `query:"status"`
	DateFrom  time.Time `query:"dateFrom"`
	DateTo    time.Time `query:"dateTo"`
	SortBy    string    `query:"sortBy"`    // startedAt | completedAt | score | percentage
	SortOrder string    `query:"sortOrder"` // desc (default) | asc
}
