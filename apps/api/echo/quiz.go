package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/eskwela/admin/core"
	"github.com/eskwela/admin/core/quiz"
)

type (
	ReorderRequest struct {
		QuestionIDs []int `json:"questionIds"`
	}

	StartAttemptRequest struct {
		UserID int `json:"userId" validate:"required"`
	}

	SubmitAttemptRequest struct {
		Answers []quiz.QuizAnswer `json:"answers"`
	}
)

type quizApi struct {
	svc *quiz.Service
}

func registerQuizAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *quiz.Service) {
	api := quizApi{svc: svc}

	qg := g.Group("/quizzes", jwt, adminMiddleware())
	qg.GET("", api.query)
	qg.POST("", api.create)
	qg.GET("/:id", api.retrieve)
	qg.PUT("/:id", api.update)
	qg.DELETE("/:id", api.destroy)
	qg.GET("/:id/questions", api.questions)
	qg.POST("/:id/questions", api.createQuestion)
	qg.PUT("/:id/questions/reorder", api.reorderQuestions)
	qg.POST("/:id/attempts", api.startAttempt)

	qng := g.Group("/questions", jwt, adminMiddleware())
	qng.PUT("/:id", api.updateQuestion)
	qng.DELETE("/:id", api.destroyQuestion)

	atg := g.Group("/quiz-attempts", jwt, adminMiddleware())
	atg.GET("", api.queryAttempts)
	atg.GET("/:id", api.retrieveAttempt)
	atg.POST("/:id/submit", api.submitAttempt)
}

// Quiz handlers

func (api *quizApi) query(ctx echo.Context) error {
	filter := new(quiz.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}

	quizzes, pg, err := api.svc.Query(*filter)
	if err != nil {
		return errors.Wrap(err, "querying quizzes")
	}
	if quizzes == nil {
		quizzes = []quiz.Quiz{}
	}
	return ctx.JSON(http.StatusOK, core.OKPaged(quizzes, pg))
}

func (api *quizApi) create(ctx echo.Context) error {
	var data quiz.NewQuiz
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewQuiz")
	}
	createdBy, err := contextUserID(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context user id")
	}

	q, err := api.svc.Create(data, createdBy)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, core.OK(q, "Quiz created successfully"))
}

func (api *quizApi) retrieve(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	q, err := api.svc.GetByID(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, core.OK(q))
}

func (api *quizApi) update(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	var data quiz.UpdateQuiz
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateQuiz")
	}

	q, err := api.svc.Update(id, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, core.OK(q, "Quiz updated successfully"))
}

func (api *quizApi) destroy(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	if err = api.svc.Delete(id); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, core.OK[any](nil, "Quiz deleted successfully"))
}

// Question handlers

func (api *quizApi) questions(ctx echo.Context) error {
	quizID, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	questions, err := api.svc.Questions(quizID)
	if err != nil {
		return err
	}
	if questions == nil {
		questions = []quiz.Question{}
	}
	return ctx.JSON(http.StatusOK, core.OK(questions))
}

func (api *quizApi) createQuestion(ctx echo.Context) error {
	quizID, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	var data quiz.NewQuestion
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewQuestion")
	}

	qn, err := api.svc.CreateQuestion(quizID, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, core.OK(qn, "Question created successfully"))
}

func (api *quizApi) updateQuestion(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	var data quiz.UpdateQuestion
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateQuestion")
	}

	qn, err := api.svc.UpdateQuestion(id, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, core.OK(qn, "Question updated successfully"))
}

func (api *quizApi) destroyQuestion(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	if err = api.svc.DeleteQuestion(id); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, core.OK[any](nil, "Question deleted successfully"))
}

func (api *quizApi) reorderQuestions(ctx echo.Context) error {
	quizID, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	var data ReorderRequest
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ReorderRequest")
	}

	questions, err := api.svc.ReorderQuestions(quizID, data.QuestionIDs)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, core.OK(questions, "Questions reordered successfully"))
}

// Attempt handlers

func (api *quizApi) queryAttempts(ctx echo.Context) error {
	filter := new(quiz.AttemptFilter)
	if err := ctx.Bind(filter); err != nil {
		return errors.Wrap(err, "binding to AttemptFilter")
	}

	attempts, pg, err := api.svc.QueryAttempts(*filter)
	if err != nil {
		return errors.Wrap(err, "querying attempts")
	}
	if attempts == nil {
		attempts = []quiz.QuizAttempt{}
	}
	return ctx.JSON(http.StatusOK, core.OKPaged(attempts, pg))
}

func (api *quizApi) retrieveAttempt(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	att, err := api.svc.GetAttempt(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, core.OK(att))
}

func (api *quizApi) startAttempt(ctx echo.Context) error {
	quizID, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	var data StartAttemptRequest
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to StartAttemptRequest")
	}
	if err = core.Validate.Struct(&data); err != nil {
		return err
	}

	att, err := api.svc.StartAttempt(quizID, data.UserID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, core.OK(att, "Quiz attempt started successfully"))
}

func (api *quizApi) submitAttempt(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	var data SubmitAttemptRequest
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SubmitAttemptRequest")
	}

	att, err := api.svc.SubmitAttempt(id, data.Answers)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, core.OK(att, "Quiz attempt submitted successfully"))
}
