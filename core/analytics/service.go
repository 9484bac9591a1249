package analytics

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/eskwela/admin/core"
	"github.com/eskwela/admin/core/user"
)

var ErrStudentNotFound = core.NewNotFoundError("Student not found")

// Simulated latencies. Report generation deliberately takes the longest.
const (
	dashboardDelay  = 300 * time.Millisecond
	analyticsDelay  = 800 * time.Millisecond
	progressDelay   = 500 * time.Millisecond
	engagementDelay = 600 * time.Millisecond
	reportDelay     = 1500 * time.Millisecond
)

// Fixed platform-wide dashboard figures not derivable from the seeded pools.
const (
	dashboardSessions       = 3421
	dashboardCompletionRate = 78.5
	dashboardAverageScore   = 82.3
)

type (
	UserCounter interface {
		CountUsers() (user.Counts, error)
	}

	ContentCounter interface {
		CountContent() (total, active int, err error)
	}

	QuizCounter interface {
		CountQuizzes() (int, error)
	}

	Service struct {
		users   UserCounter
		content ContentCounter
		quizzes QuizCounter
		seed    int64
		lat     core.Latency
	}
)

func NewService(users UserCounter, content ContentCounter, quizzes QuizCounter, seed int64, lat core.Latency) *Service {
	return &Service{users: users, content: content, quizzes: quizzes, seed: seed, lat: lat}
}

// Dashboard assembles the landing-page stat cards. Entity totals come from
// the live pools; session and rate figures are platform-wide constants.
func (svc *Service) Dashboard() (DashboardStats, error) {
	svc.lat.Sleep(dashboardDelay)

	counts, err := svc.users.CountUsers()
	if err != nil {
		return DashboardStats{}, err
	}
	totalContent, _, err := svc.content.CountContent()
	if err != nil {
		return DashboardStats{}, err
	}
	totalQuizzes, err := svc.quizzes.CountQuizzes()
	if err != nil {
		return DashboardStats{}, err
	}

	return DashboardStats{
		TotalUsers:     counts.Total,
		TotalStudents:  counts.Students,
		TotalTeachers:  counts.Teachers,
		TotalAdmins:    counts.Admins,
		TotalContent:   totalContent,
		TotalQuizzes:   totalQuizzes,
		TotalSessions:  dashboardSessions,
		ActiveUsers:    counts.Active,
		CompletionRate: dashboardCompletionRate,
		AverageScore:   dashboardAverageScore,
	}, nil
}

// Get builds the full analytics payload and narrows it by the filters.
// Grade level narrows student progress and content engagement; subject
// additionally narrows quiz performance; content type narrows content
// engagement only.
func (svc *Service) Get(filters Filters) (Data, error) {
	svc.lat.Sleep(analyticsDelay)

	dr := filters.DateRange
	if dr.IsZero() {
		dr = DefaultDateRange()
	}
	data := svc.generate(dr)

	if filters.GradeLevel != "" {
		students := data.StudentProgress[:0]
		for _, s := range data.StudentProgress {
			if s.GradeLevel == filters.GradeLevel {
				students = append(students, s)
			}
		}
		data.StudentProgress = students

		items := data.ContentEngagement[:0]
		for _, c := range data.ContentEngagement {
			if c.GradeLevel == filters.GradeLevel {
				items = append(items, c)
			}
		}
		data.ContentEngagement = items
	}

	if filters.Subject != "" {
		students := data.StudentProgress[:0]
		for _, s := range data.StudentProgress {
			if s.Subject == filters.Subject {
				students = append(students, s)
			}
		}
		data.StudentProgress = students

		items := data.ContentEngagement[:0]
		for _, c := range data.ContentEngagement {
			if c.Subject == filters.Subject {
				items = append(items, c)
			}
		}
		data.ContentEngagement = items

		perf := data.QuizAnalytics.QuizPerformance[:0]
		for _, q := range data.QuizAnalytics.QuizPerformance {
			if q.Subject == filters.Subject {
				perf = append(perf, q)
			}
		}
		data.QuizAnalytics.QuizPerformance = perf
	}

	if filters.ContentType != "" {
		items := data.ContentEngagement[:0]
		for _, c := range data.ContentEngagement {
			if c.Type == filters.ContentType {
				items = append(items, c)
			}
		}
		data.ContentEngagement = items
	}

	return data, nil
}

// StudentProgress returns the single student's progress series for the range.
func (svc *Service) StudentProgress(userID int, dr DateRange) (StudentProgress, error) {
	svc.lat.Sleep(progressDelay)

	if dr.IsZero() {
		dr = DefaultDateRange()
	}
	data := svc.generate(dr)
	for _, s := range data.StudentProgress {
		if s.UserID == userID {
			return s, nil
		}
	}
	return StudentProgress{}, ErrStudentNotFound
}

// ContentEngagement returns engagement figures for every tracked content item.
func (svc *Service) ContentEngagement(dr DateRange) ([]ContentEngagement, error) {
	svc.lat.Sleep(engagementDelay)

	if dr.IsZero() {
		dr = DefaultDateRange()
	}
	return svc.generate(dr).ContentEngagement, nil
}

// GenerateReport packages the requested analytics section as a pdf report.
func (svc *Service) GenerateReport(reportType string, filters Filters) (Report, error) {
	svc.lat.Sleep(reportDelay)

	dr := filters.DateRange
	if dr.IsZero() {
		dr = DefaultDateRange()
		filters.DateRange = dr
	}
	data := svc.generate(dr)

	var section any
	switch reportType {
	case ReportStudentProgress:
		section = data.StudentProgress
	case ReportContentEngagement:
		section = data.ContentEngagement
	case ReportQuizPerformance:
		section = data.QuizAnalytics
	default:
		section = data
	}

	return Report{
		ID:          uuid.New().String(),
		Type:        reportType,
		Title:       reportTitle(reportType),
		GeneratedAt: time.Now().UTC(),
		DateRange:   dr,
		Filters:     filters,
		Data:        section,
		Format:      "pdf",
	}, nil
}

// generate is deterministic for a given service seed and date range.
func (svc *Service) generate(dr DateRange) Data {
	rng := rand.New(rand.NewSource(svc.seed))
	return Generate(rng, dr)
}

// reportTitle turns "student_progress" into "Student Progress Report".
func reportTitle(reportType string) string {
	words := strings.Split(reportType, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ") + " Report"
}
