package quiz_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eskwela/admin/core/quiz"
)

func TestGenerateQuizzes_deterministic(t *testing.T) {
	teacherIDs := []int{4, 17, 42}

	a := quiz.GenerateQuizzes(rand.New(rand.NewSource(3)), 15, teacherIDs, 8)
	b := quiz.GenerateQuizzes(rand.New(rand.NewSource(3)), 15, teacherIDs, 8)
	assert.Equal(t, a, b, "the same seed yields an identical pool, timestamps included")

	for _, q := range a {
		assert.Contains(t, teacherIDs, q.CreatedBy, "quizzes are created by actual teacher accounts")
		if q.AssociatedContentID != 0 {
			assert.LessOrEqual(t, q.AssociatedContentID, 8)
		}
	}
}

func TestGenerateAttempts_answerCoherence(t *testing.T) {
	q := quiz.Quiz{ID: 1, TotalPoints: 20}
	questions := make([]quiz.Question, 10)
	for i := range questions {
		questions[i] = quiz.Question{ID: i + 1, QuizID: 1, CorrectAnswer: 0, Points: 2}
	}

	a := quiz.GenerateAttempts(rand.New(rand.NewSource(3)), q, questions, 12, 20)
	b := quiz.GenerateAttempts(rand.New(rand.NewSource(3)), q, questions, 12, 20)
	assert.Equal(t, a, b)

	for _, att := range a {
		if att.Status != quiz.AttemptCompleted {
			assert.Empty(t, att.Answers)
			continue
		}
		for _, ans := range att.Answers {
			if ans.IsCorrect {
				assert.Equal(t, 0, ans.SelectedAnswer)
				assert.Equal(t, 2, ans.PointsEarned)
			} else {
				assert.NotEqual(t, 0, ans.SelectedAnswer, "a wrong answer never selects the correct option")
				assert.Zero(t, ans.PointsEarned)
			}
		}
	}
}
