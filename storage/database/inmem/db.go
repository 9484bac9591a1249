// Package inmemdb provides the in-memory store backing the mock admin API.
// Entity pools live in mutex-guarded tables seeded once at startup, so
// writes survive across calls instead of being regenerated per request.
package inmemdb

import (
	"sync"

	"github.com/eskwela/admin/core/content"
	"github.com/eskwela/admin/core/quiz"
	"github.com/eskwela/admin/core/user"
)

type (
	DB struct {
		user     *userTable
		content  *contentTable
		quiz     *quizTable
		question *questionTable
		attempt  *attemptTable
	}

	userTable struct {
		sync.RWMutex
		table map[int]*user.User
		seq   int
	}

	contentTable struct {
		sync.RWMutex
		table map[int]*content.ARContent
		seq   int
	}

	quizTable struct {
		sync.RWMutex
		table map[int]*quiz.Quiz
		seq   int
	}

	questionTable struct {
		sync.RWMutex
		table map[int]*quiz.Question
		seq   int
	}

	attemptTable struct {
		sync.RWMutex
		table map[int]*quiz.QuizAttempt
		seq   int
	}
)

func Open() (*DB, error) {
	db := &DB{
		user:     &userTable{table: make(map[int]*user.User)},
		content:  &contentTable{table: make(map[int]*content.ARContent)},
		quiz:     &quizTable{table: make(map[int]*quiz.Quiz)},
		question: &questionTable{table: make(map[int]*quiz.Question)},
		attempt:  &attemptTable{table: make(map[int]*quiz.QuizAttempt)},
	}
	return db, nil
}
