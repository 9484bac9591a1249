package main

import (
	"encoding/json"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/eskwela/admin/core"
	"github.com/eskwela/admin/core/content"
	"github.com/eskwela/admin/core/quiz"
	"github.com/eskwela/admin/core/user"
)

// dump prints a freshly generated fixture pool as indented JSON. The same
// seed and count always print the same pool.
func (cli *commandLine) dump(entity string, count int, seed int64) error {
	rng := rand.New(rand.NewSource(seed))

	var pool interface{}
	switch entity {
	case "users":
		if count == 0 {
			count = core.Conf.Mock.UserCount
		}
		pool = user.Generate(rng, count)
	case "content":
		if count == 0 {
			count = core.Conf.Mock.ContentCount
		}
		pool = content.Generate(rng, count)
	case "quizzes":
		if count == 0 {
			count = core.Conf.Mock.QuizCount
		}
		// quizzes reference teacher accounts; derive the teacher ids from the
		// user pool the same seed would produce
		var teacherIDs []int
		for _, usr := range user.Generate(rand.New(rand.NewSource(seed)), core.Conf.Mock.UserCount) {
			if usr.IsTeacher() {
				teacherIDs = append(teacherIDs, usr.ID)
			}
		}
		pool = quiz.GenerateQuizzes(rng, count, teacherIDs, core.Conf.Mock.ContentCount)
	default:
		return errors.Errorf("unknown entity %q", entity)
	}

	enc := json.NewEncoder(cli.out)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(pool), "encoding pool")
}
