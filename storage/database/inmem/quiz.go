package inmemdb

import (
	"sort"

	"github.com/eskwela/admin/core"
	"github.com/eskwela/admin/core/quiz"
)

type quizRepository struct {
	db *DB
}

var _ quiz.Repository = (*quizRepository)(nil) // interface compliance check

func NewQuizRepository(db *DB) quiz.Repository {
	return &quizRepository{db: db}
}

// Quizzes

func (repo *quizRepository) queryQuizzes() []quiz.Quiz {
	quizzes := make([]quiz.Quiz, 0, len(repo.db.quiz.table))
	for _, q := range repo.db.quiz.table {
		quizzes = append(quizzes, *q)
	}
	sort.Slice(quizzes, func(i, j int) bool { return quizzes[i].ID < quizzes[j].ID })
	return quizzes
}

func (repo *quizRepository) CreateQuiz(q quiz.Quiz) (quiz.Quiz, error) {
	repo.db.quiz.Lock()
	defer repo.db.quiz.Unlock()

	repo.db.quiz.seq++
	q.ID = repo.db.quiz.seq
	repo.db.quiz.table[q.ID] = &q
	return q, nil
}

func (repo *quizRepository) GetQuizByID(id int) (quiz.Quiz, error) {
	repo.db.quiz.RLock()
	defer repo.db.quiz.RUnlock()

	if q, ok := repo.db.quiz.table[id]; ok {
		return *q, nil
	}
	return quiz.Quiz{}, quiz.ErrNotFound
}

func (repo *quizRepository) FilterQuizzes(filter quiz.QueryFilter) ([]quiz.Quiz, error) {
	repo.db.quiz.RLock()
	defer repo.db.quiz.RUnlock()

	quizzes := repo.queryQuizzes()

	if filter.Subject != "" {
		var filtered []quiz.Quiz
		for _, q := range quizzes {
			if q.Subject == filter.Subject {
				filtered = append(filtered, q)
			}
		}
		quizzes = filtered
	}
	if filter.GradeLevel != "" {
		var filtered []quiz.Quiz
		for _, q := range quizzes {
			if q.GradeLevel == filter.GradeLevel {
				filtered = append(filtered, q)
			}
		}
		quizzes = filtered
	}
	if filter.Status != "" {
		var filtered []quiz.Quiz
		for _, q := range quizzes {
			if q.Status == filter.Status {
				filtered = append(filtered, q)
			}
		}
		quizzes = filtered
	}
	if filter.AssociatedContentID != 0 {
		var filtered []quiz.Quiz
		for _, q := range quizzes {
			if q.AssociatedContentID == filter.AssociatedContentID {
				filtered = append(filtered, q)
			}
		}
		quizzes = filtered
	}
	if filter.Search != "" {
		var filtered []quiz.Quiz
		for _, q := range quizzes {
			if core.MatchesSearch(filter.Search, q.Title, q.Description) {
				filtered = append(filtered, q)
			}
		}
		quizzes = filtered
	}
	return quizzes, nil
}

func (repo *quizRepository) UpdateQuiz(q quiz.Quiz) (quiz.Quiz, error) {
	repo.db.quiz.Lock()
	defer repo.db.quiz.Unlock()

	if _, ok := repo.db.quiz.table[q.ID]; !ok {
		return quiz.Quiz{}, quiz.ErrNotFound
	}
	repo.db.quiz.table[q.ID] = &q
	return q, nil
}

// DeleteQuizByID removes the quiz and cascades to its questions and attempts.
func (repo *quizRepository) DeleteQuizByID(id int) error {
	repo.db.quiz.Lock()
	defer repo.db.quiz.Unlock()

	if _, ok := repo.db.quiz.table[id]; !ok {
		return quiz.ErrNotFound
	}
	delete(repo.db.quiz.table, id)

	repo.db.question.Lock()
	for qnID, qn := range repo.db.question.table {
		if qn.QuizID == id {
			delete(repo.db.question.table, qnID)
		}
	}
	repo.db.question.Unlock()

	repo.db.attempt.Lock()
	for attID, att := range repo.db.attempt.table {
		if att.QuizID == id {
			delete(repo.db.attempt.table, attID)
		}
	}
	repo.db.attempt.Unlock()
	return nil
}

func (repo *quizRepository) CountQuizzes() (int, error) {
	repo.db.quiz.RLock()
	defer repo.db.quiz.RUnlock()
	return len(repo.db.quiz.table), nil
}

// Questions

func (repo *quizRepository) CreateQuestion(qn quiz.Question) (quiz.Question, error) {
	repo.db.question.Lock()
	defer repo.db.question.Unlock()

	repo.db.question.seq++
	qn.ID = repo.db.question.seq
	repo.db.question.table[qn.ID] = &qn
	return qn, nil
}

func (repo *quizRepository) GetQuestionByID(id int) (quiz.Question, error) {
	repo.db.question.RLock()
	defer repo.db.question.RUnlock()

	if qn, ok := repo.db.question.table[id]; ok {
		return *qn, nil
	}
	return quiz.Question{}, quiz.ErrQuestionNotFound
}

func (repo *quizRepository) QuestionsByQuizID(quizID int) ([]quiz.Question, error) {
	repo.db.question.RLock()
	defer repo.db.question.RUnlock()

	var questions []quiz.Question
	for _, qn := range repo.db.question.table {
		if qn.QuizID == quizID {
			questions = append(questions, *qn)
		}
	}
	sort.Slice(questions, func(i, j int) bool {
		if questions[i].Order != questions[j].Order {
			return questions[i].Order < questions[j].Order
		}
		return questions[i].ID < questions[j].ID
	})
	return questions, nil
}

func (repo *quizRepository) UpdateQuestion(qn quiz.Question) (quiz.Question, error) {
	repo.db.question.Lock()
	defer repo.db.question.Unlock()

	if _, ok := repo.db.question.table[qn.ID]; !ok {
		return quiz.Question{}, quiz.ErrQuestionNotFound
	}
	repo.db.question.table[qn.ID] = &qn
	return qn, nil
}

func (repo *quizRepository) DeleteQuestionByID(id int) error {
	repo.db.question.Lock()
	defer repo.db.question.Unlock()

	if _, ok := repo.db.question.table[id]; !ok {
		return quiz.ErrQuestionNotFound
	}
	delete(repo.db.question.table, id)
	return nil
}

// Attempts

func (repo *quizRepository) CreateAttempt(att quiz.QuizAttempt) (quiz.QuizAttempt, error) {
	repo.db.attempt.Lock()
	defer repo.db.attempt.Unlock()

	repo.db.attempt.seq++
	att.ID = repo.db.attempt.seq
	repo.db.attempt.table[att.ID] = &att
	return att, nil
}

func (repo *quizRepository) GetAttemptByID(id int) (quiz.QuizAttempt, error) {
	repo.db.attempt.RLock()
	defer repo.db.attempt.RUnlock()

	if att, ok := repo.db.attempt.table[id]; ok {
		return *att, nil
	}
	return quiz.QuizAttempt{}, quiz.ErrAttemptNotFound
}

func (repo *quizRepository) FilterAttempts(filter quiz.AttemptFilter) ([]quiz.QuizAttempt, error) {
	repo.db.attempt.RLock()
	defer repo.db.attempt.RUnlock()

	attempts := make([]quiz.QuizAttempt, 0, len(repo.db.attempt.table))
	for _, att := range repo.db.attempt.table {
		attempts = append(attempts, *att)
	}
	sort.Slice(attempts, func(i, j int) bool { return attempts[i].ID < attempts[j].ID })

	if filter.QuizID != 0 {
		var filtered []quiz.QuizAttempt
		for _, att := range attempts {
			if att.QuizID == filter.QuizID {
				filtered = append(filtered, att)
			}
		}
		attempts = filtered
	}
	if filter.UserID != 0 {
		var filtered []quiz.QuizAttempt
		for _, att := range attempts {
			if att.UserID == filter.UserID {
				filtered = append(filtered, att)
			}
		}
		attempts = filtered
	}
	if filter.Status != "" {
		var filtered []quiz.QuizAttempt
		for _, att := range attempts {
			if att.Status == filter.Status {
				filtered = append(filtered, att)
			}
		}
		attempts = filtered
	}
	if !filter.DateFrom.IsZero() {
		var filtered []quiz.QuizAttempt
		from := filter.DateFrom.UTC()
		for _, att := range attempts {
			if att.StartedAt.Equal(from) || att.StartedAt.After(from) {
				filtered = append(filtered, att)
			}
		}
		attempts = filtered
	}
	if !filter.DateTo.IsZero() {
		var filtered []quiz.QuizAttempt
		to := filter.DateTo.UTC()
		for _, att := range attempts {
			if att.StartedAt.Equal(to) || att.StartedAt.Before(to) {
				filtered = append(filtered, att)
			}
		}
		attempts = filtered
	}
	return attempts, nil
}

func (repo *quizRepository) UpdateAttempt(att quiz.QuizAttempt) (quiz.QuizAttempt, error) {
	repo.db.attempt.Lock()
	defer repo.db.attempt.Unlock()

	if _, ok := repo.db.attempt.table[att.ID]; !ok {
		return quiz.QuizAttempt{}, quiz.ErrAttemptNotFound
	}
	repo.db.attempt.table[att.ID] = &att
	return att, nil
}
