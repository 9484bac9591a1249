package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	. "github.com/eskwela/admin/apps/api/echo"
	"github.com/eskwela/admin/core"
	"github.com/eskwela/admin/core/analytics"
	"github.com/eskwela/admin/core/content"
	"github.com/eskwela/admin/core/quiz"
	"github.com/eskwela/admin/core/user"
	emailsvc "github.com/eskwela/admin/services/email"
	logsvc "github.com/eskwela/admin/services/logger"
	inmemdb "github.com/eskwela/admin/storage/database/inmem"
)

var (
	app Server

	usrSvc     *user.Service
	contentSvc *content.Service
	quizSvc    *quiz.Service

	userSeq int
)

func TestMain(m *testing.M) {
	db, err := inmemdb.Open()
	if err != nil {
		fmt.Printf("inmemdb.Open(): %v", err)
		os.Exit(1)
	}
	usrRepo := inmemdb.NewUserRepository(db)
	contentRepo := inmemdb.NewContentRepository(db)
	quizRepo := inmemdb.NewQuizRepository(db)

	// latency simulation stays off so the suite runs fast
	lat := core.Latency{}
	mailSvc := emailsvc.NewConsoleServiceMock()
	usrSvc = user.NewService(usrRepo, mailSvc, lat)
	contentSvc = content.NewService(contentRepo, lat)
	quizSvc = quiz.NewService(quizRepo, contentRepo, usrRepo, lat)
	analyticsSvc := analytics.NewService(usrRepo, contentRepo, quizRepo, core.Conf.Mock.Seed, lat)

	app = NewServer(&Options{
		DisableReqLogs: true,
		Logger:         logsvc.NewStdLogger(log.Default()),
		UserSvc:        usrSvc,
		ContentSvc:     contentSvc,
		QuizSvc:        quizSvc,
		AnalyticsSvc:   analyticsSvc,
	})

	os.Exit(m.Run())
}

// envelope mirrors the uniform response shape with the payload left raw so
// each test can decode its own type.
type envelope struct {
	Success    bool              `json:"success"`
	Data       json.RawMessage   `json:"data"`
	Message    string            `json:"message"`
	Errors     map[string]string `json:"errors"`
	Pagination *core.Pagination  `json:"pagination"`
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func getToken(t *testing.T, usr user.User) string {
	token, err := GenerateToken(GetUserClaims(usr))
	if err != nil {
		t.Fatalf("getToken(): %v", err)
	}
	return token
}

// createUser provisions a fixture account directly through the service.
// Emails are sequenced so tests sharing the store never collide.
func createUser(t *testing.T, role, password string) user.User {
	userSeq++
	usr, err := usrSvc.Create(user.NewUser{
		Name:     fmt.Sprintf("Test %s %d", role, userSeq),
		Email:    fmt.Sprintf("%s%d@eskwela.edu.ph", role, userSeq),
		Role:     role,
		Password: password,
	})
	if err != nil {
		t.Fatalf("createUser(): %v", err)
	}
	return usr
}

func marshalObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshalObj(): %v", err)
	}
	return data
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decodeEnvelope(): %v; body %s", err, rec.Body.String())
	}
	return env
}

func decodeData(t *testing.T, env envelope, dst interface{}) {
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decodeData(): %v; data %s", err, string(env.Data))
	}
}
