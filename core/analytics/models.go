package analytics

import "time"

// Report types
const (
	ReportStudentProgress   = "student_progress"
	ReportContentEngagement = "content_engagement"
	ReportQuizPerformance   = "quiz_performance"
)

// Date range presets
const (
	PresetLast7Days   = "last7days"
	PresetLast30Days  = "last30days"
	PresetLast3Months = "last3months"
	PresetLast6Months = "last6months"
	PresetCustom      = "custom"
)

// Difficulty ratings
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// dateLayout is the day-granular format used throughout date ranges and
// trend series.
const dateLayout = "2006-01-02"

type (
	// Data is the full analytics payload for a date range.
	Data struct {
		Overview          OverviewMetrics     `json:"overview"`
		StudentProgress   []StudentProgress   `json:"studentProgress"`
		ContentEngagement []ContentEngagement `json:"contentEngagement"`
		QuizAnalytics     QuizAnalytics       `json:"quizAnalytics"`
		DateRange         DateRange           `json:"dateRange"`
	}

	OverviewMetrics struct {
		PeriodMetrics
		PreviousPeriod PeriodMetrics `json:"previousPeriod"`
	}

	PeriodMetrics struct {
		TotalStudents       int     `json:"totalStudents"`
		ActiveContent       int     `json:"activeContent"`
		QuizCompletionRate  float64 `json:"quizCompletionRate"`
		ARSessionsThisMonth int     `json:"arSessionsThisMonth"`
	}

	StudentProgress struct {
		UserID           int             `json:"userId"`
		UserName         string          `json:"userName"`
		GradeLevel       string          `json:"gradeLevel"`
		Subject          string          `json:"subject"`
		CompletionRate   int             `json:"completionRate"`
		AverageScore     int             `json:"averageScore"`
		TimeSpent        int             `json:"timeSpent"` // minutes
		LastActivity     time.Time       `json:"lastActivity"`
		QuizzesCompleted int             `json:"quizzesCompleted"`
		ARSessionsCount  int             `json:"arSessionsCount"`
		ProgressOverTime []ProgressPoint `json:"progressOverTime"`
	}

	ProgressPoint struct {
		Date           string  `json:"date"`
		CompletionRate int     `json:"completionRate"`
		Score          float64 `json:"score"`
	}

	ContentEngagement struct {
		ContentID              int               `json:"contentId"`
		Title                  string            `json:"title"`
		Subject                string            `json:"subject"`
		GradeLevel             string            `json:"gradeLevel"`
		Type                   string            `json:"type"`
		QRScans                int               `json:"qrScans"`
		AverageSessionDuration int               `json:"averageSessionDuration"` // minutes
		CompletionRate         int               `json:"completionRate"`
		LastAccessed           time.Time         `json:"lastAccessed"`
		PopularityRank         int               `json:"popularityRank"`
		EngagementTrend        []EngagementPoint `json:"engagementTrend"`
	}

	EngagementPoint struct {
		Date     string `json:"date"`
		Scans    int    `json:"scans"`
		Duration int    `json:"duration"`
	}

	QuizAnalytics struct {
		TotalQuizzes       int                  `json:"totalQuizzes"`
		TotalAttempts      int                  `json:"totalAttempts"`
		AverageScore       float64              `json:"averageScore"`
		CompletionRate     float64              `json:"completionRate"`
		QuizPerformance    []QuizPerformance    `json:"quizPerformance"`
		QuestionDifficulty []QuestionDifficulty `json:"questionDifficulty"`
		SubjectComparison  []SubjectComparison  `json:"subjectComparison"`
	}

	QuizPerformance struct {
		QuizID           int    `json:"quizId"`
		Title            string `json:"title"`
		Subject          string `json:"subject"`
		GradeLevel       string `json:"gradeLevel"`
		Attempts         int    `json:"attempts"`
		AverageScore     int    `json:"averageScore"`
		CompletionRate   int    `json:"completionRate"`
		AverageTimeSpent int    `json:"averageTimeSpent"` // minutes
		DifficultyRating string `json:"difficultyRating"`
	}

	QuestionDifficulty struct {
		QuestionID       int    `json:"questionId"`
		QuizTitle        string `json:"quizTitle"`
		Question         string `json:"question"`
		CorrectAnswers   int    `json:"correctAnswers"`
		TotalAnswers     int    `json:"totalAnswers"`
		AccuracyRate     int    `json:"accuracyRate"`
		AverageTimeSpent int    `json:"averageTimeSpent"` // seconds
		DifficultyLevel  string `json:"difficultyLevel"`
	}

	SubjectComparison struct {
		Subject          string  `json:"subject"`
		TotalStudents    int     `json:"totalStudents"`
		AverageScore     float64 `json:"averageScore"`
		CompletionRate   float64 `json:"completionRate"`
		TimeSpent        int     `json:"timeSpent"` // minutes
		ContentAccessed  int     `json:"contentAccessed"`
		QuizzesCompleted int     `json:"quizzesCompleted"`
	}

	// DateRange bounds a reporting window; dates use the 2006-01-02 layout.
	DateRange struct {
		StartDate string `json:"startDate" query:"startDate"`
		EndDate   string `json:"endDate" query:"endDate"`
		Preset    string `json:"preset,omitempty" query:"preset"`
	}

	// Filters narrow the analytics payload.
	Filters struct {
		DateRange   DateRange `json:"dateRange"`
		GradeLevel  string    `json:"gradeLevel,omitempty" query:"gradeLevel"`
		Subject     string    `json:"subject,omitempty" query:"subject"`
		ContentType string    `json:"contentType,omitempty" query:"contentType"`
	}

	Report struct {
		ID          string    `json:"id"`
		Type        string    `json:"type"`
		Title       string    `json:"title"`
		GeneratedAt time.Time `json:"generatedAt"`
		DateRange   DateRange `json:"dateRange"`
		Filters     Filters   `json:"filters"`
		Data        any       `json:"data"`
		Format      string    `json:"format"`
	}

	// DashboardStats is the headline card payload for the admin landing page.
	DashboardStats struct {
		TotalUsers     int     `json:"totalUsers"`
		TotalStudents  int     `json:"totalStudents"`
		TotalTeachers  int     `json:"totalTeachers"`
		TotalAdmins    int     `json:"totalAdmins"`
		TotalContent   int     `json:"totalContent"`
		TotalQuizzes   int     `json:"totalQuizzes"`
		TotalSessions  int     `json:"totalSessions"`
		ActiveUsers    int     `json:"activeUsers"`
		CompletionRate float64 `json:"completionRate"`
		AverageScore   float64 `json:"averageScore"`
	}
)

// Days returns the number of whole days the range spans, parsing both bounds
// with the day-granular layout. Unparseable ranges count as 30 days.
func (dr DateRange) Days() int {
	start, err := time.Parse(dateLayout, dr.StartDate)
	if err != nil {
		return 30
	}
	end, err := time.Parse(dateLayout, dr.EndDate)
	if err != nil {
		return 30
	}
	days := int(end.Sub(start).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// Start returns the parsed start of the range, or 30 days before now when
// the bound is missing or malformed.
func (dr DateRange) Start() time.Time {
	start, err := time.Parse(dateLayout, dr.StartDate)
	if err != nil {
		return time.Now().UTC().AddDate(0, 0, -30)
	}
	return start
}

// IsZero reports whether the range carries no explicit bounds.
func (dr DateRange) IsZero() bool {
	return dr.StartDate == "" && dr.EndDate == ""
}

// DefaultDateRange is the last-30-days window ending today.
func DefaultDateRange() DateRange {
	now := time.Now().UTC()
	return DateRange{
		StartDate: now.AddDate(0, 0, -30).Format(dateLayout),
		EndDate:   now.Format(dateLayout),
		Preset:    PresetLast30Days,
	}
}
