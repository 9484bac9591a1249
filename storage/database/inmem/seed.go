package inmemdb

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/eskwela/admin/core"
	"github.com/eskwela/admin/core/content"
	"github.com/eskwela/admin/core/quiz"
	"github.com/eskwela/admin/core/user"
)

const (
	questionsPerQuiz = 10
	attemptsPerQuiz  = 5
	attemptedQuizzes = 10

	// DemoPassword is shared by every seeded account.
	DemoPassword = "eskwela123"
)

// Seed fills an empty DB with the demo pools derived from conf.Mock.Seed.
// The same seed always produces the same data set.
func Seed(db *DB, conf *core.Config) error {
	rng := rand.New(rand.NewSource(conf.Mock.Seed))

	userRepo := NewUserRepository(db)
	contentRepo := NewContentRepository(db)
	quizRepo := NewQuizRepository(db)

	// All demo accounts share one hash so seeding stays fast.
	demo := user.User{}
	if err := demo.SetPassword(DemoPassword); err != nil {
		return errors.Wrap(err, "hashing demo password")
	}

	var teacherIDs []int
	for _, usr := range user.Generate(rng, conf.Mock.UserCount) {
		usr.PasswordHash = demo.PasswordHash
		usr, err := userRepo.CreateUser(usr)
		if err != nil {
			return errors.Wrap(err, "seeding users")
		}
		if usr.IsTeacher() {
			teacherIDs = append(teacherIDs, usr.ID)
		}
	}

	for _, item := range content.Generate(rng, conf.Mock.ContentCount) {
		if _, err := contentRepo.CreateContent(item); err != nil {
			return errors.Wrap(err, "seeding content")
		}
	}

	quizzes := quiz.GenerateQuizzes(rng, conf.Mock.QuizCount, teacherIDs, conf.Mock.ContentCount)
	for i, q := range quizzes {
		q, err := quizRepo.CreateQuiz(q)
		if err != nil {
			return errors.Wrap(err, "seeding quizzes")
		}

		questions := make([]quiz.Question, 0, questionsPerQuiz)
		for _, qn := range quiz.GenerateQuestions(rng, q.ID, questionsPerQuiz) {
			qn, err := quizRepo.CreateQuestion(qn)
			if err != nil {
				return errors.Wrap(err, "seeding questions")
			}
			questions = append(questions, qn)
		}

		// Keep the stored counters coherent with the seeded questions.
		q.QuestionsCount = len(questions)
		q.TotalPoints = 0
		for _, qn := range questions {
			q.TotalPoints += qn.Points
		}
		if q, err = quizRepo.UpdateQuiz(q); err != nil {
			return errors.Wrap(err, "seeding quizzes")
		}

		if i >= attemptedQuizzes {
			continue
		}
		for _, att := range quiz.GenerateAttempts(rng, q, questions, conf.Mock.UserCount, attemptsPerQuiz) {
			if _, err := quizRepo.CreateAttempt(att); err != nil {
				return errors.Wrap(err, "seeding attempts")
			}
		}
	}
	return nil
}
