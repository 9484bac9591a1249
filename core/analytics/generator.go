package analytics

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/eskwela/admin/core"
)

const (
	studentSampleSize  = 20
	contentSampleSize  = 15
	quizSampleSize     = 10
	questionSampleSize = 15
	maxSeriesPoints    = 30
)

var difficulties = []string{DifficultyEasy, DifficultyMedium, DifficultyHard}

// currentPeriod and previousPeriod are the platform-wide headline figures.
var (
	currentPeriod = PeriodMetrics{
		TotalStudents:       1156,
		ActiveContent:       156,
		QuizCompletionRate:  78.5,
		ARSessionsThisMonth: 3421,
	}
	previousPeriod = PeriodMetrics{
		TotalStudents:       1089,
		ActiveContent:       142,
		QuizCompletionRate:  74.2,
		ARSessionsThisMonth: 2987,
	}
)

// Generate builds the analytics payload for the range. Trend series span at
// most 30 daily points starting at the range's lower bound. The same rng
// state always yields the same payload.
func Generate(rng *rand.Rand, dr DateRange) Data {
	start := dr.Start()
	points := dr.Days()
	if points > maxSeriesPoints {
		points = maxSeriesPoints
	}

	overview := OverviewMetrics{
		PeriodMetrics:  currentPeriod,
		PreviousPeriod: previousPeriod,
	}

	now := time.Now().UTC()

	studentProgress := make([]StudentProgress, studentSampleSize)
	for i := range studentProgress {
		series := make([]ProgressPoint, points)
		for j := range series {
			series[j] = ProgressPoint{
				Date:           start.AddDate(0, 0, j).Format(dateLayout),
				CompletionRate: rng.Intn(20) + 60 + j,
				Score:          float64(rng.Intn(20)+70) + float64(j)*0.5,
			}
		}
		studentProgress[i] = StudentProgress{
			UserID:           i + 1,
			UserName:         fmt.Sprintf("Student %d", i+1),
			GradeLevel:       core.GradeLevels[rng.Intn(len(core.GradeLevels))],
			Subject:          core.Subjects[rng.Intn(len(core.Subjects))],
			CompletionRate:   rng.Intn(40) + 60,
			AverageScore:     rng.Intn(30) + 70,
			TimeSpent:        rng.Intn(120) + 30,
			LastActivity:     now.Add(-time.Duration(rng.Intn(7*24)) * time.Hour),
			QuizzesCompleted: rng.Intn(15) + 5,
			ARSessionsCount:  rng.Intn(25) + 10,
			ProgressOverTime: series,
		}
	}

	contentEngagement := make([]ContentEngagement, contentSampleSize)
	for i := range contentEngagement {
		trend := make([]EngagementPoint, points)
		for j := range trend {
			trend[j] = EngagementPoint{
				Date:     start.AddDate(0, 0, j).Format(dateLayout),
				Scans:    rng.Intn(50) + 10,
				Duration: rng.Intn(10) + 5,
			}
		}
		typ := "3d_model"
		if rng.Intn(2) == 1 {
			typ = "audio"
		}
		contentEngagement[i] = ContentEngagement{
			ContentID:              i + 1,
			Title:                  fmt.Sprintf("Content Item %d", i+1),
			Subject:                core.Subjects[rng.Intn(len(core.Subjects))],
			GradeLevel:             core.GradeLevels[rng.Intn(len(core.GradeLevels))],
			Type:                   typ,
			QRScans:                rng.Intn(500) + 100,
			AverageSessionDuration: rng.Intn(15) + 5,
			CompletionRate:         rng.Intn(40) + 60,
			LastAccessed:           now.Add(-time.Duration(rng.Intn(7*24)) * time.Hour),
			PopularityRank:         i + 1,
			EngagementTrend:        trend,
		}
	}

	quizPerformance := make([]QuizPerformance, quizSampleSize)
	for i := range quizPerformance {
		quizPerformance[i] = QuizPerformance{
			QuizID:           i + 1,
			Title:            fmt.Sprintf("Quiz %d", i+1),
			Subject:          core.Subjects[rng.Intn(len(core.Subjects))],
			GradeLevel:       core.GradeLevels[rng.Intn(len(core.GradeLevels))],
			Attempts:         rng.Intn(100) + 50,
			AverageScore:     rng.Intn(30) + 70,
			CompletionRate:   rng.Intn(40) + 60,
			AverageTimeSpent: rng.Intn(20) + 10,
			DifficultyRating: difficulties[rng.Intn(len(difficulties))],
		}
	}

	questionDifficulty := make([]QuestionDifficulty, questionSampleSize)
	for i := range questionDifficulty {
		questionDifficulty[i] = QuestionDifficulty{
			QuestionID:       i + 1,
			QuizTitle:        fmt.Sprintf("Quiz %d", i/3+1),
			Question:         fmt.Sprintf("Question %d", i+1),
			CorrectAnswers:   rng.Intn(80) + 20,
			TotalAnswers:     rng.Intn(50) + 100,
			AccuracyRate:     rng.Intn(40) + 60,
			AverageTimeSpent: rng.Intn(60) + 30,
			DifficultyLevel:  difficulties[rng.Intn(len(difficulties))],
		}
	}

	quizAnalytics := QuizAnalytics{
		TotalQuizzes:       89,
		TotalAttempts:      2341,
		AverageScore:       82.3,
		CompletionRate:     78.5,
		QuizPerformance:    quizPerformance,
		QuestionDifficulty: questionDifficulty,
		SubjectComparison: []SubjectComparison{
			{
				Subject:          core.SubjectHistory,
				TotalStudents:    578,
				AverageScore:     81.2,
				CompletionRate:   76.8,
				TimeSpent:        145,
				ContentAccessed:  78,
				QuizzesCompleted: 234,
			},
			{
				Subject:          core.SubjectScience,
				TotalStudents:    578,
				AverageScore:     83.4,
				CompletionRate:   80.2,
				TimeSpent:        162,
				ContentAccessed:  78,
				QuizzesCompleted: 267,
			},
		},
	}

	return Data{
		Overview:          overview,
		StudentProgress:   studentProgress,
		ContentEngagement: contentEngagement,
		QuizAnalytics:     quizAnalytics,
		DateRange:         dr,
	}
}
