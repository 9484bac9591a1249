package quiz

import (
	"math"
	"sort"
	"time"

	"github.com/eskwela/admin/core"
	"github.com/eskwela/admin/core/content"
	"github.com/eskwela/admin/core/user"
)

var (
	// errors
	ErrNotFound         = core.NewNotFoundError("Quiz not found")
	ErrQuestionNotFound = core.NewNotFoundError("Question not found")
	ErrAttemptNotFound  = core.NewNotFoundError("Quiz attempt not found")
)

// Simulated latencies.
const (
	lookupDelay         = 300 * time.Millisecond
	listDelay           = 500 * time.Millisecond
	createDelay         = 800 * time.Millisecond
	updateDelay         = 600 * time.Millisecond
	deleteDelay         = 400 * time.Millisecond
	questionsDelay      = 400 * time.Millisecond
	questionCreateDelay = 600 * time.Millisecond
	questionUpdateDelay = 500 * time.Millisecond
	questionDeleteDelay = 300 * time.Millisecond
	reorderDelay        = 400 * time.Millisecond
	startAttemptDelay   = 400 * time.Millisecond
	submitAttemptDelay  = 800 * time.Millisecond
)

type (
	Repository interface {
		CreateQuiz(q Quiz) (Quiz, error)
		GetQuizByID(id int) (Quiz, error)
		// FilterQuizzes applies AND operation on available QueryFilter fields.
		// QueryFilter.Search does a case-insensitive match on Title or Description.
		FilterQuizzes(filter QueryFilter) ([]Quiz, error)
		UpdateQuiz(q Quiz) (Quiz, error)
		// DeleteQuizByID cascades to the quiz's questions and attempts.
		DeleteQuizByID(id int) error
		CountQuizzes() (int, error)

		CreateQuestion(qn Question) (Question, error)
		GetQuestionByID(id int) (Question, error)
		// QuestionsByQuizID returns the quiz's questions ordered by Order.
		QuestionsByQuizID(quizID int) ([]Question, error)
		UpdateQuestion(qn Question) (Question, error)
		DeleteQuestionByID(id int) error

		CreateAttempt(att QuizAttempt) (QuizAttempt, error)
		GetAttemptByID(id int) (QuizAttempt, error)
		// FilterAttempts applies AND operation on available AttemptFilter fields.
		FilterAttempts(filter AttemptFilter) ([]QuizAttempt, error)
		UpdateAttempt(att QuizAttempt) (QuizAttempt, error)
	}

	// ContentRepository resolves associated AR content for reads.
	ContentRepository interface {
		GetContentByID(id int) (content.ARContent, error)
	}

	// UserRepository resolves attempt owners for reads.
	UserRepository interface {
		GetUserByID(id int) (user.User, error)
	}

	Service struct {
		repo        Repository
		contentRepo ContentRepository
		userRepo    UserRepository
		lat         core.Latency
	}
)

func NewService(repo Repository, contentRepo ContentRepository, userRepo UserRepository, lat core.Latency) *Service {
	return &Service{repo: repo, contentRepo: contentRepo, userRepo: userRepo, lat: lat}
}

// Quizzes

// Create stores a new quiz. New quizzes always start as drafts with zero
// questions and points.
func (svc *Service) Create(nq NewQuiz, createdBy int) (Quiz, error) {
	svc.lat.Sleep(createDelay)

	if err := nq.Validate(); err != nil {
		return Quiz{}, err
	}
	if nq.AssociatedContentID != 0 {
		if _, err := svc.contentRepo.GetContentByID(nq.AssociatedContentID); err != nil {
			return Quiz{}, err
		}
	}

	now := time.Now().UTC()
	q := Quiz{
		Title:               nq.Title,
		Description:         nq.Description,
		Subject:             nq.Subject,
		GradeLevel:          nq.GradeLevel,
		TimeLimit:           nq.TimeLimit,
		MaxAttempts:         nq.MaxAttempts,
		ScoringMethod:       nq.ScoringMethod,
		Status:              StatusDraft,
		AssociatedContentID: nq.AssociatedContentID,
		CreatedAt:           now,
		UpdatedAt:           now,
		CreatedBy:           createdBy,
	}
	q, err := svc.repo.CreateQuiz(q)
	if err != nil {
		return Quiz{}, err
	}
	return svc.attachContent(q), nil
}

func (svc *Service) GetByID(id int) (Quiz, error) {
	svc.lat.Sleep(lookupDelay)

	q, err := svc.repo.GetQuizByID(id)
	if err != nil {
		return Quiz{}, err
	}
	return svc.attachContent(q), nil
}

// Query runs the filter -> sort -> paginate pipeline over the quiz pool.
func (svc *Service) Query(filter QueryFilter) ([]Quiz, core.Pagination, error) {
	svc.lat.Sleep(listDelay)

	filter.Clean()
	quizzes, err := svc.repo.FilterQuizzes(filter)
	if err != nil {
		return nil, core.Pagination{}, err
	}
	sortQuizzes(quizzes, filter.SortBy, filter.SortOrder)

	perPage := filter.PerPage
	if perPage < 1 {
		perPage = core.DefaultPageSize
	}
	page, pg := core.Paginate(quizzes, filter.Page, perPage)
	for i := range page {
		page[i] = svc.attachContent(page[i])
	}
	return page, pg, nil
}

// Update merges the set fields of uq into the stored quiz and bumps UpdatedAt.
func (svc *Service) Update(id int, uq UpdateQuiz) (Quiz, error) {
	svc.lat.Sleep(updateDelay)

	if err := uq.Validate(); err != nil {
		return Quiz{}, err
	}
	q, err := svc.repo.GetQuizByID(id)
	if err != nil {
		return Quiz{}, err
	}
	if uq.Title != "" {
		q.Title = uq.Title
	}
	if uq.Description != "" {
		q.Description = uq.Description
	}
	if uq.Subject != "" {
		q.Subject = uq.Subject
	}
	if uq.GradeLevel != "" {
		q.GradeLevel = uq.GradeLevel
	}
	if uq.TimeLimit != 0 {
		q.TimeLimit = uq.TimeLimit
	}
	if uq.MaxAttempts != 0 {
		q.MaxAttempts = uq.MaxAttempts
	}
	if uq.ScoringMethod != "" {
		q.ScoringMethod = uq.ScoringMethod
	}
	if uq.Status != "" {
		q.Status = uq.Status
	}
	if uq.AssociatedContentID != 0 {
		if _, err = svc.contentRepo.GetContentByID(uq.AssociatedContentID); err != nil {
			return Quiz{}, err
		}
		q.AssociatedContentID = uq.AssociatedContentID
	}
	q.UpdatedAt = time.Now().UTC()
	q, err = svc.repo.UpdateQuiz(q)
	if err != nil {
		return Quiz{}, err
	}
	return svc.attachContent(q), nil
}

// Delete removes the quiz along with its questions and attempts; a second
// call for the same id returns ErrNotFound.
func (svc *Service) Delete(id int) error {
	svc.lat.Sleep(deleteDelay)
	return svc.repo.DeleteQuizByID(id)
}

// Questions

func (svc *Service) Questions(quizID int) ([]Question, error) {
	svc.lat.Sleep(questionsDelay)

	if _, err := svc.repo.GetQuizByID(quizID); err != nil {
		return nil, err
	}
	return svc.repo.QuestionsByQuizID(quizID)
}

// CreateQuestion appends a validated question to the quiz and keeps the
// quiz's QuestionsCount/TotalPoints in sync.
func (svc *Service) CreateQuestion(quizID int, nq NewQuestion) (Question, error) {
	svc.lat.Sleep(questionCreateDelay)

	if err := nq.Validate(); err != nil {
		return Question{}, err
	}
	if _, err := svc.repo.GetQuizByID(quizID); err != nil {
		return Question{}, err
	}
	existing, err := svc.repo.QuestionsByQuizID(quizID)
	if err != nil {
		return Question{}, err
	}

	qn := Question{
		QuizID:        quizID,
		Title:         nq.Title,
		Options:       nq.Options,
		CorrectAnswer: nq.CorrectAnswer,
		Order:         len(existing) + 1,
		Points:        nq.Points,
		Explanation:   nq.Explanation,
	}
	qn, err = svc.repo.CreateQuestion(qn)
	if err != nil {
		return Question{}, err
	}
	if err = svc.syncQuizTotals(quizID); err != nil {
		return Question{}, err
	}
	return qn, nil
}

// UpdateQuestion merges the set fields of uq into the stored question,
// re-validating option count and answer bounds.
func (svc *Service) UpdateQuestion(id int, uq UpdateQuestion) (Question, error) {
	svc.lat.Sleep(questionUpdateDelay)

	if err := uq.Validate(); err != nil {
		return Question{}, err
	}
	qn, err := svc.repo.GetQuestionByID(id)
	if err != nil {
		return Question{}, err
	}
	if uq.Title != "" {
		qn.Title = uq.Title
	}
	if uq.Options != nil {
		qn.Options = uq.Options
	}
	if uq.CorrectAnswer != nil {
		qn.CorrectAnswer = *uq.CorrectAnswer
	}
	if uq.Points != 0 {
		qn.Points = uq.Points
	}
	if uq.Explanation != "" {
		qn.Explanation = uq.Explanation
	}
	if uq.Order != 0 {
		qn.Order = uq.Order
	}
	qn, err = svc.repo.UpdateQuestion(qn)
	if err != nil {
		return Question{}, err
	}
	if err = svc.syncQuizTotals(qn.QuizID); err != nil {
		return Question{}, err
	}
	return qn, nil
}

// DeleteQuestion removes the question; a second call for the same id
// returns ErrQuestionNotFound.
func (svc *Service) DeleteQuestion(id int) error {
	svc.lat.Sleep(questionDeleteDelay)

	qn, err := svc.repo.GetQuestionByID(id)
	if err != nil {
		return err
	}
	if err = svc.repo.DeleteQuestionByID(id); err != nil {
		return err
	}
	return svc.syncQuizTotals(qn.QuizID)
}

// ReorderQuestions rewrites the quiz's question order to follow ids.
// Ids not belonging to the quiz keep the question that already occupied
// that position.
func (svc *Service) ReorderQuestions(quizID int, ids []int) ([]Question, error) {
	svc.lat.Sleep(reorderDelay)

	questions, err := svc.repo.QuestionsByQuizID(quizID)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]Question, len(questions))
	for _, qn := range questions {
		byID[qn.ID] = qn
	}

	reordered := make([]Question, 0, len(ids))
	for i, id := range ids {
		qn, ok := byID[id]
		if !ok && i < len(questions) {
			qn = questions[i]
		} else if !ok {
			continue
		}
		qn.Order = i + 1
		if qn, err = svc.repo.UpdateQuestion(qn); err != nil {
			return nil, err
		}
		reordered = append(reordered, qn)
	}
	return reordered, nil
}

// Attempts

func (svc *Service) GetAttempt(id int) (QuizAttempt, error) {
	svc.lat.Sleep(lookupDelay)

	att, err := svc.repo.GetAttemptByID(id)
	if err != nil {
		return QuizAttempt{}, err
	}
	return svc.attachAttempt(att), nil
}

// QueryAttempts runs the filter -> sort -> paginate pipeline over the
// attempt pool. Unlike other listings, attempts default to most-recent first.
func (svc *Service) QueryAttempts(filter AttemptFilter) ([]QuizAttempt, core.Pagination, error) {
	svc.lat.Sleep(listDelay)

	attempts, err := svc.repo.FilterAttempts(filter)
	if err != nil {
		return nil, core.Pagination{}, err
	}
	sortBy := filter.SortBy
	if sortBy == "" {
		sortBy = "startedAt"
	}
	sortOrder := filter.SortOrder
	if sortOrder == "" {
		sortOrder = core.SortDesc
	}
	sortAttempts(attempts, sortBy, sortOrder)

	perPage := filter.PerPage
	if perPage < 1 {
		perPage = core.DefaultPageSize
	}
	page, pg := core.Paginate(attempts, filter.Page, perPage)
	for i := range page {
		page[i] = svc.attachAttempt(page[i])
	}
	return page, pg, nil
}

// StartAttempt opens an in-progress attempt for the user on the quiz.
func (svc *Service) StartAttempt(quizID, userID int) (QuizAttempt, error) {
	svc.lat.Sleep(startAttemptDelay)

	q, err := svc.repo.GetQuizByID(quizID)
	if err != nil {
		return QuizAttempt{}, err
	}
	if _, err = svc.userRepo.GetUserByID(userID); err != nil {
		return QuizAttempt{}, err
	}
	att := QuizAttempt{
		QuizID:      quizID,
		UserID:      userID,
		StartedAt:   time.Now().UTC(),
		TotalPoints: q.TotalPoints,
		Answers:     []QuizAnswer{},
		Status:      AttemptInProgress,
	}
	return svc.repo.CreateAttempt(att)
}

// SubmitAttempt completes the attempt: score is the sum of points earned,
// percentage = round(score/totalPoints*100), and completedAt is startedAt
// plus the total time spent over all answers.
func (svc *Service) SubmitAttempt(id int, answers []QuizAnswer) (QuizAttempt, error) {
	svc.lat.Sleep(submitAttemptDelay)

	att, err := svc.repo.GetAttemptByID(id)
	if err != nil {
		return QuizAttempt{}, err
	}

	var score, timeSpent int
	for _, ans := range answers {
		score += ans.PointsEarned
		timeSpent += ans.TimeSpent
	}
	completedAt := att.StartedAt.Add(time.Duration(timeSpent) * time.Second)

	att.Score = score
	att.Percentage = percentage(score, att.TotalPoints)
	att.TimeSpent = timeSpent
	att.Answers = answers
	att.CompletedAt = &completedAt
	att.Status = AttemptCompleted

	att, err = svc.repo.UpdateAttempt(att)
	if err != nil {
		return QuizAttempt{}, err
	}
	return svc.attachAttempt(att), nil
}

// helpers

func percentage(score, totalPoints int) int {
	if totalPoints <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(totalPoints) * 100))
}

func (svc *Service) attachContent(q Quiz) Quiz {
	if q.AssociatedContentID == 0 {
		return q
	}
	if item, err := svc.contentRepo.GetContentByID(q.AssociatedContentID); err == nil {
		q.AssociatedContent = &item
	}
	return q
}

func (svc *Service) attachAttempt(att QuizAttempt) QuizAttempt {
	if usr, err := svc.userRepo.GetUserByID(att.UserID); err == nil {
		att.User = &usr
	}
	if q, err := svc.repo.GetQuizByID(att.QuizID); err == nil {
		q = svc.attachContent(q)
		att.Quiz = &q
	}
	return att
}

// syncQuizTotals recomputes the quiz's stored QuestionsCount and
// TotalPoints after a question mutation.
func (svc *Service) syncQuizTotals(quizID int) error {
	q, err := svc.repo.GetQuizByID(quizID)
	if err != nil {
		return err
	}
	questions, err := svc.repo.QuestionsByQuizID(quizID)
	if err != nil {
		return err
	}
	q.QuestionsCount = len(questions)
	q.TotalPoints = 0
	for _, qn := range questions {
		q.TotalPoints += qn.Points
	}
	q.UpdatedAt = time.Now().UTC()
	_, err = svc.repo.UpdateQuiz(q)
	return err
}

func sortQuizzes(quizzes []Quiz, sortBy, sortOrder string) {
	var less func(a, b Quiz) bool
	switch sortBy {
	case "title":
		less = func(a, b Quiz) bool { return core.LessStrings(a.Title, b.Title) }
	case "subject":
		less = func(a, b Quiz) bool { return core.LessStrings(a.Subject, b.Subject) }
	case "gradeLevel":
		less = func(a, b Quiz) bool { return core.LessStrings(a.GradeLevel, b.GradeLevel) }
	case "createdAt":
		less = func(a, b Quiz) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case "questionsCount":
		less = func(a, b Quiz) bool { return a.QuestionsCount < b.QuestionsCount }
	default:
		return
	}
	sort.SliceStable(quizzes, func(i, j int) bool {
		if sortOrder == core.SortDesc {
			return less(quizzes[j], quizzes[i])
		}
		return less(quizzes[i], quizzes[j])
	})
}

func sortAttempts(attempts []QuizAttempt, sortBy, sortOrder string) {
	timeOrZero := func(t *time.Time) time.Time {
		if t == nil {
			return time.Time{}
		}
		return *t
	}
	var less func(a, b QuizAttempt) bool
	switch sortBy {
	case "startedAt":
		less = func(a, b QuizAttempt) bool { return a.StartedAt.Before(b.StartedAt) }
	case "completedAt":
		less = func(a, b QuizAttempt) bool { return timeOrZero(a.CompletedAt).Before(timeOrZero(b.CompletedAt)) }
	case "score":
		less = func(a, b QuizAttempt) bool { return a.Score < b.Score }
	case "percentage":
		less = func(a, b QuizAttempt) bool { return a.Percentage < b.Percentage }
	default:
		return
	}
	sort.SliceStable(attempts, func(i, j int) bool {
		if sortOrder == core.SortDesc {
			return less(attempts[j], attempts[i])
		}
		return less(attempts[i], attempts[j])
	})
}
