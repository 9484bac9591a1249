package quiz_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/eskwela/admin/core"
	"github.com/eskwela/admin/core/quiz"
	"github.com/eskwela/admin/core/user"
	inmemdb "github.com/eskwela/admin/storage/database/inmem"
)

type fixture struct {
	svc     *quiz.Service
	userSvc *user.Service
	teacher user.User
	student user.User
}

func setup(t *testing.T) fixture {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	userRepo := inmemdb.NewUserRepository(db)
	contentRepo := inmemdb.NewContentRepository(db)
	quizRepo := inmemdb.NewQuizRepository(db)

	userSvc := user.NewService(userRepo, nil, core.Latency{})
	teacher, err := userSvc.Create(user.NewUser{
		Name: "Maria Santos", Email: "maria@eskwela.edu.ph", Role: user.RoleTeacher, Password: "pwd-123",
	})
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	student, err := userSvc.Create(user.NewUser{
		Name: "Juan Dela Cruz", Email: "juan@eskwela.edu.ph", Role: user.RoleStudent,
		GradeLevel: "Grade 4", Password: "pwd-123",
	})
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}

	return fixture{
		svc:     quiz.NewService(quizRepo, contentRepo, userRepo, core.Latency{}),
		userSvc: userSvc,
		teacher: teacher,
		student: student,
	}
}

func newQuiz(title string) quiz.NewQuiz {
	return quiz.NewQuiz{
		Title:         title,
		Subject:       core.SubjectHistory,
		GradeLevel:    "Grade 4",
		TimeLimit:     20,
		MaxAttempts:   3,
		ScoringMethod: quiz.ScoringPoints,
	}
}

func createQuestion(t *testing.T, f fixture, quizID, points int) quiz.Question {
	qn, err := f.svc.CreateQuestion(quizID, quiz.NewQuestion{
		Title:         "Who led the Katipunan?",
		Options:       []string{"Bonifacio", "Rizal", "Aguinaldo", "Mabini"},
		CorrectAnswer: 0,
		Points:        points,
	})
	if err != nil {
		t.Fatalf("createQuestion() failed: %v", err)
	}
	return qn
}

func TestService_Create(t *testing.T) {
	f := setup(t)

	q, err := f.svc.Create(newQuiz("Philippine Revolution"), f.teacher.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, q.ID)
	assert.Equal(t, quiz.StatusDraft, q.Status, "new quizzes start as drafts")
	assert.Zero(t, q.QuestionsCount)
	assert.Zero(t, q.TotalPoints)
	assert.Equal(t, f.teacher.ID, q.CreatedBy)
}

func TestService_Update(t *testing.T) {
	f := setup(t)
	q, err := f.svc.Create(newQuiz("Draft Quiz"), f.teacher.ID)
	assert.NoError(t, err)

	got, err := f.svc.Update(q.ID, quiz.UpdateQuiz{Status: quiz.StatusPublished, TimeLimit: 30})
	assert.NoError(t, err)
	assert.Equal(t, quiz.StatusPublished, got.Status)
	assert.Equal(t, 30, got.TimeLimit)
	assert.Equal(t, q.Title, got.Title)

	_, err = f.svc.Update(999, quiz.UpdateQuiz{Title: "ghost"})
	assert.True(t, core.IsNotFound(err))
	assert.EqualError(t, err, "Quiz not found")
}

func TestService_CreateQuestion_validation(t *testing.T) {
	f := setup(t)
	q, err := f.svc.Create(newQuiz("Validation Quiz"), f.teacher.ID)
	assert.NoError(t, err)

	tests := []struct {
		name    string
		data    quiz.NewQuestion
		wantErr string
	}{
		{
			name: "three options",
			data: quiz.NewQuestion{
				Title: "Q", Options: []string{"a", "b", "c"}, CorrectAnswer: 0, Points: 1,
			},
			wantErr: "Question must have exactly 4 options",
		},
		{
			name: "five options",
			data: quiz.NewQuestion{
				Title: "Q", Options: []string{"a", "b", "c", "d", "e"}, CorrectAnswer: 0, Points: 1,
			},
			wantErr: "Question must have exactly 4 options",
		},
		{
			name: "answer out of range",
			data: quiz.NewQuestion{
				Title: "Q", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 4, Points: 1,
			},
			wantErr: "Correct answer must be between 0 and 3",
		},
		{
			name: "negative answer",
			data: quiz.NewQuestion{
				Title: "Q", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: -1, Points: 1,
			},
			wantErr: "Correct answer must be between 0 and 3",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.CreateQuestion(q.ID, tt.data)
			assert.Error(t, err)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestService_CreateQuestion_syncsQuizTotals(t *testing.T) {
	f := setup(t)
	q, err := f.svc.Create(newQuiz("Totals Quiz"), f.teacher.ID)
	assert.NoError(t, err)

	qn1 := createQuestion(t, f, q.ID, 2)
	qn2 := createQuestion(t, f, q.ID, 3)
	assert.Equal(t, 1, qn1.Order)
	assert.Equal(t, 2, qn2.Order, "order follows insertion")

	got, err := f.svc.GetByID(q.ID)
	assert.NoError(t, err)
	assert.Equal(t, 2, got.QuestionsCount)
	assert.Equal(t, 5, got.TotalPoints)

	assert.NoError(t, f.svc.DeleteQuestion(qn1.ID))
	got, err = f.svc.GetByID(q.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, got.QuestionsCount)
	assert.Equal(t, 3, got.TotalPoints)

	err = f.svc.DeleteQuestion(qn1.ID)
	assert.True(t, core.IsNotFound(err))
	assert.EqualError(t, err, "Question not found")
}

func TestService_ReorderQuestions(t *testing.T) {
	f := setup(t)
	q, err := f.svc.Create(newQuiz("Reorder Quiz"), f.teacher.ID)
	assert.NoError(t, err)

	qn1 := createQuestion(t, f, q.ID, 1)
	qn2 := createQuestion(t, f, q.ID, 1)
	qn3 := createQuestion(t, f, q.ID, 1)

	reordered, err := f.svc.ReorderQuestions(q.ID, []int{qn3.ID, qn1.ID, qn2.ID})
	assert.NoError(t, err)
	assert.Equal(t, []int{qn3.ID, qn1.ID, qn2.ID}, questionIDs(reordered))
	for i, qn := range reordered {
		assert.Equal(t, i+1, qn.Order)
	}

	// an unknown id keeps the question already at that position
	reordered, err = f.svc.ReorderQuestions(q.ID, []int{qn1.ID, 999, qn2.ID})
	assert.NoError(t, err)
	assert.Len(t, reordered, 3)
	assert.Equal(t, qn1.ID, reordered[0].ID)
	assert.Equal(t, qn2.ID, reordered[2].ID)
}

func TestService_DeleteCascades(t *testing.T) {
	f := setup(t)
	q, err := f.svc.Create(newQuiz("Doomed Quiz"), f.teacher.ID)
	assert.NoError(t, err)
	qn := createQuestion(t, f, q.ID, 2)

	att, err := f.svc.StartAttempt(q.ID, f.student.ID)
	assert.NoError(t, err)

	assert.NoError(t, f.svc.Delete(q.ID))

	_, err = f.svc.GetByID(q.ID)
	assert.True(t, core.IsNotFound(err))
	_, err = f.svc.UpdateQuestion(qn.ID, quiz.UpdateQuestion{Title: "orphan"})
	assert.True(t, core.IsNotFound(err))
	_, err = f.svc.GetAttempt(att.ID)
	assert.True(t, core.IsNotFound(err))
	assert.EqualError(t, err, "Quiz attempt not found")

	assert.True(t, core.IsNotFound(f.svc.Delete(q.ID)), "second delete reports Quiz not found")
}

func TestService_StartAttempt(t *testing.T) {
	f := setup(t)
	q, err := f.svc.Create(newQuiz("Attempt Quiz"), f.teacher.ID)
	assert.NoError(t, err)
	createQuestion(t, f, q.ID, 2)

	att, err := f.svc.StartAttempt(q.ID, f.student.ID)
	assert.NoError(t, err)
	assert.Equal(t, quiz.AttemptInProgress, att.Status)
	assert.Equal(t, 2, att.TotalPoints, "total points snapshot the quiz at start")
	assert.Empty(t, att.Answers)
	assert.Nil(t, att.CompletedAt)

	_, err = f.svc.StartAttempt(999, f.student.ID)
	assert.True(t, core.IsNotFound(err))
	_, err = f.svc.StartAttempt(q.ID, 999)
	assert.True(t, core.IsNotFound(err))
}

func TestService_SubmitAttempt(t *testing.T) {
	f := setup(t)
	q, err := f.svc.Create(newQuiz("Scored Quiz"), f.teacher.ID)
	assert.NoError(t, err)
	for i := 0; i < 10; i++ {
		createQuestion(t, f, q.ID, 2) // 10 questions x 2 points = 20
	}

	att, err := f.svc.StartAttempt(q.ID, f.student.ID)
	assert.NoError(t, err)

	// 7 correct answers worth 2 points each = 14 of 20
	answers := make([]quiz.QuizAnswer, 0, 10)
	for i := 0; i < 10; i++ {
		ans := quiz.QuizAnswer{QuestionID: i + 1, SelectedAnswer: 0, TimeSpent: 60}
		if i < 7 {
			ans.IsCorrect = true
			ans.PointsEarned = 2
		} else {
			ans.SelectedAnswer = 1
		}
		answers = append(answers, ans)
	}

	got, err := f.svc.SubmitAttempt(att.ID, answers)
	assert.NoError(t, err)
	assert.Equal(t, quiz.AttemptCompleted, got.Status)
	assert.Equal(t, 14, got.Score)
	assert.Equal(t, 70, got.Percentage, "14 of 20 points rounds to 70%")
	assert.Equal(t, 600, got.TimeSpent, "time spent sums the per-answer seconds")
	if assert.NotNil(t, got.CompletedAt) {
		assert.Equal(t, att.StartedAt.Add(600*time.Second), *got.CompletedAt)
	}
	if assert.NotNil(t, got.User) {
		assert.Equal(t, f.student.ID, got.User.ID)
	}
	if assert.NotNil(t, got.Quiz) {
		assert.Equal(t, q.ID, got.Quiz.ID)
	}

	_, err = f.svc.SubmitAttempt(999, nil)
	assert.True(t, core.IsNotFound(err))
}

func TestService_QueryAttempts_defaultSort(t *testing.T) {
	f := setup(t)
	q, err := f.svc.Create(newQuiz("History Quiz"), f.teacher.ID)
	assert.NoError(t, err)
	createQuestion(t, f, q.ID, 1)

	first, err := f.svc.StartAttempt(q.ID, f.student.ID)
	assert.NoError(t, err)
	second, err := f.svc.StartAttempt(q.ID, f.student.ID)
	assert.NoError(t, err)

	attempts, pg, err := f.svc.QueryAttempts(quiz.AttemptFilter{QuizID: q.ID})
	assert.NoError(t, err)
	assert.Equal(t, 2, pg.Total)
	// most recent first; ties on StartedAt keep insertion order stable
	got := []int{attempts[0].ID, attempts[1].ID}
	assert.ElementsMatch(t, []int{first.ID, second.ID}, got)

	attempts, _, err = f.svc.QueryAttempts(quiz.AttemptFilter{Status: quiz.AttemptInProgress})
	assert.NoError(t, err)
	assert.Len(t, attempts, 2)
}

func questionIDs(questions []quiz.Question) []int {
	ids := make([]int, 0, len(questions))
	for _, qn := range questions {
		ids = append(ids, qn.ID)
	}
	return ids
}
