package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eskwela/admin/core/analytics"
	"github.com/eskwela/admin/core/user"
)

// analyticsEnvelope adds the generation metadata carried by analytics responses.
type analyticsEnvelope struct {
	envelope
	GeneratedAt string  `json:"generatedAt"`
	CacheExpiry *string `json:"cacheExpiry"`
}

func decodeAnalyticsEnvelope(t *testing.T, body []byte) analyticsEnvelope {
	var env analyticsEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("decodeAnalyticsEnvelope(): %v; body %s", err, string(body))
	}
	return env
}

func TestAnalyticsAPI_dashboard(t *testing.T) {
	admin := createUser(t, user.RoleAdmin, "s3cr3t-pwd")

	req, rec := newAuthRequest(http.MethodGet, "/v1/dashboard/stats", getToken(t, admin))
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)

	var stats analytics.DashboardStats
	decodeData(t, env, &stats)
	assert.Equal(t, 3421, stats.TotalSessions)
	assert.Equal(t, 78.5, stats.CompletionRate)
	assert.Equal(t, 82.3, stats.AverageScore)
	assert.GreaterOrEqual(t, stats.TotalUsers, 1, "fixture accounts count towards the live total")
}

func TestAnalyticsAPI_get(t *testing.T) {
	admin := createUser(t, user.RoleAdmin, "s3cr3t-pwd")

	req, rec := newAuthRequest(http.MethodGet, "/v1/analytics?gradeLevel=Grade+3", getToken(t, admin))
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeAnalyticsEnvelope(t, rec.Body.Bytes())
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.GeneratedAt)
	assert.NotNil(t, env.CacheExpiry, "full analytics payloads are cacheable")

	var data analytics.Data
	decodeData(t, env.envelope, &data)
	assert.Equal(t, 1156, data.Overview.TotalStudents)
	for _, s := range data.StudentProgress {
		assert.Equal(t, "Grade 3", s.GradeLevel)
	}
}

func TestAnalyticsAPI_studentProgress(t *testing.T) {
	admin := createUser(t, user.RoleAdmin, "s3cr3t-pwd")
	token := getToken(t, admin)

	req, rec := newAuthRequest(http.MethodGet, "/v1/analytics/students/1/progress", token)
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeAnalyticsEnvelope(t, rec.Body.Bytes())
	assert.Nil(t, env.CacheExpiry)

	var progress analytics.StudentProgress
	decodeData(t, env.envelope, &progress)
	assert.Equal(t, 1, progress.UserID)
	assert.NotEmpty(t, progress.ProgressOverTime)

	req, rec = newAuthRequest(http.MethodGet, "/v1/analytics/students/99999/progress", token)
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Student not found", decodeEnvelope(t, rec).Message)
}

func TestAnalyticsAPI_generateReport(t *testing.T) {
	admin := createUser(t, user.RoleAdmin, "s3cr3t-pwd")
	token := getToken(t, admin)

	t.Run("ok", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/analytics/reports/student_progress", token)
		app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "Report generated successfully", env.Message)

		var report analytics.Report
		decodeData(t, env, &report)
		assert.NotEmpty(t, report.ID)
		assert.Equal(t, "Student Progress Report", report.Title)
		assert.Equal(t, "pdf", report.Format)
	})

	t.Run("unknown type", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/analytics/reports/bogus", token)
		app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "unknown report type", decodeEnvelope(t, rec).Message)
	})
}
