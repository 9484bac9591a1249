package quiz

import (
	"math/rand"
	"time"

	"github.com/eskwela/admin/core"
)

// Demo vocabulary cycled through by the generators.
var (
	quizTitles = []string{
		"Philippine History Quiz", "Science Fundamentals", "Heroes of the Philippines",
		"Basic Biology Test", "Cultural Heritage Quiz", "Earth Science Assessment",
		"National Symbols Quiz", "Human Body Quiz", "Filipino Traditions Test",
		"Environmental Science Quiz", "Ancient Civilizations", "Plant Biology",
		"Weather Patterns", "Filipino Culture", "Space Exploration",
	}
	quizDescriptions = []string{
		"Test your knowledge of Philippine history and important events",
		"Fundamental concepts in science for elementary students",
		"Learn about the heroes who shaped our nation",
		"Basic biology concepts and living organisms",
		"Explore the rich cultural heritage of the Philippines",
		"Understanding Earth science and natural phenomena",
		"National symbols and their significance",
		"Human body systems and functions",
		"Traditional Filipino customs and practices",
		"Environmental science and conservation",
	}
	timeLimits   = []int{10, 15, 20, 30, 45, 60}
	quizStatuses = []string{StatusDraft, StatusPublished, StatusArchived}

	questionTitles = []string{
		"Who is considered the national hero of the Philippines?",
		"What is the largest planet in our solar system?",
		"When did the Philippines gain independence?",
		"Which organ pumps blood throughout the body?",
		"What is the capital city of the Philippines?",
		"How many bones are in the adult human body?",
		"Who wrote the Philippine national anthem?",
		"What gas do plants absorb from the atmosphere?",
		"Which sea surrounds the Philippines?",
		"What is the process by which plants make food?",
		"Who was the first president of the Philippines?",
		"What is the smallest unit of matter?",
		"Which mountain is the highest in the Philippines?",
		"What are the three states of matter?",
		"When was Rizal executed?",
	}
	optionSets = [][]string{
		{"Jose Rizal", "Andres Bonifacio", "Emilio Aguinaldo", "Lapu-Lapu"},
		{"Jupiter", "Saturn", "Neptune", "Earth"},
		{"June 12, 1898", "July 4, 1946", "August 31, 1957", "February 25, 1986"},
		{"Heart", "Lungs", "Liver", "Kidneys"},
		{"Manila", "Cebu", "Davao", "Quezon City"},
		{"206", "208", "210", "212"},
		{"Julian Felipe", "Jose Palma", "Nicanor Abelardo", "Francisco Santiago"},
		{"Carbon dioxide", "Oxygen", "Nitrogen", "Hydrogen"},
		{"South China Sea", "Pacific Ocean", "Indian Ocean", "Atlantic Ocean"},
		{"Photosynthesis", "Respiration", "Digestion", "Circulation"},
		{"Emilio Aguinaldo", "Manuel Quezon", "Jose Laurel", "Sergio Osmena"},
		{"Atom", "Molecule", "Cell", "Electron"},
		{"Mount Apo", "Mount Mayon", "Mount Pulag", "Mount Banahaw"},
		{"Solid, Liquid, Gas", "Hot, Cold, Warm", "Big, Medium, Small", "Fast, Slow, Still"},
		{"December 30, 1896", "June 19, 1861", "December 29, 1896", "January 1, 1897"},
	}
	explanations = []string{
		"Jose Rizal is widely considered the national hero of the Philippines for his writings and peaceful resistance.",
		"Jupiter is the largest planet in our solar system, with a mass greater than all other planets combined.",
		"The Philippines declared independence from Spain on June 12, 1898.",
		"The heart is the organ that pumps blood throughout the body via the circulatory system.",
		"Manila is the capital city of the Philippines and the center of government.",
		"The adult human body has 206 bones.",
		"Julian Felipe composed the music for the Philippine national anthem.",
		"Plants absorb carbon dioxide from the atmosphere during photosynthesis.",
		"The Philippines is surrounded by the South China Sea and other bodies of water.",
		"Photosynthesis is the process by which plants make their own food using sunlight.",
		"Emilio Aguinaldo was the first president of the Philippines.",
		"An atom is the smallest unit of matter that retains the properties of an element.",
		"Mount Apo in Mindanao is the highest mountain in the Philippines.",
		"The three states of matter are solid, liquid, and gas.",
		"Jose Rizal was executed on December 30, 1896.",
	}

	// Completed attempts dominate the demo data.
	attemptStatuses = []string{
		AttemptCompleted, AttemptCompleted, AttemptCompleted, AttemptInProgress, AttemptAbandoned,
	}
)

// GenerateQuizzes produces exactly n schema-valid demo quizzes with 1-based
// sequential ids. QuestionsCount/TotalPoints start at zero; the seeder fills
// them in from generated questions so the stored counters stay coherent.
// CreatedBy is drawn from teacherIDs, AssociatedContentID references are
// bounded by contentCount.
func GenerateQuizzes(rng *rand.Rand, n int, teacherIDs []int, contentCount int) []Quiz {
	if len(teacherIDs) == 0 {
		teacherIDs = []int{1}
	}
	now := core.PoolEpoch
	quizzes := make([]Quiz, 0, n)
	for i := 0; i < n; i++ {
		q := Quiz{
			ID:            i + 1,
			Title:         quizTitles[i%len(quizTitles)],
			Description:   quizDescriptions[i%len(quizDescriptions)],
			Subject:       core.Subjects[rng.Intn(len(core.Subjects))],
			GradeLevel:    core.GradeLevels[rng.Intn(len(core.GradeLevels))],
			TimeLimit:     timeLimits[rng.Intn(len(timeLimits))],
			MaxAttempts:   rng.Intn(3) + 1,
			ScoringMethod: ScoringPoints,
			Status:        quizStatuses[rng.Intn(len(quizStatuses))],
			CreatedAt:     now.Add(-time.Duration(rng.Int63n(int64(30 * 24 * time.Hour)))),
			UpdatedAt:     now.Add(-time.Duration(rng.Int63n(int64(7 * 24 * time.Hour)))),
			CreatedBy:     teacherIDs[rng.Intn(len(teacherIDs))],
		}
		if rng.Intn(2) == 1 {
			q.ScoringMethod = ScoringPercentage
		}
		// ~40% of quizzes accompany an AR content item
		if contentCount > 0 && rng.Float64() > 0.6 {
			q.AssociatedContentID = rng.Intn(contentCount) + 1
		}
		quizzes = append(quizzes, q)
	}
	return quizzes
}

// GenerateQuestions produces exactly n demo questions for the given quiz.
// Ids are left zero for the store to assign; QuizID is an explicit foreign key.
func GenerateQuestions(rng *rand.Rand, quizID, n int) []Question {
	questions := make([]Question, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, Question{
			QuizID:        quizID,
			Title:         questionTitles[i%len(questionTitles)],
			Options:       optionSets[i%len(optionSets)],
			CorrectAnswer: 0, // vocabulary lists the right option first
			Order:         i + 1,
			Points:        rng.Intn(3) + 1,
			Explanation:   explanations[i%len(explanations)],
		})
	}
	return questions
}

// GenerateAttempts produces exactly n demo attempts for the given quiz,
// drawing user ids from [1, userCount]. Completed attempts carry answers
// over the quiz's questions, and their score/percentage/completedAt are
// derived from those answers.
func GenerateAttempts(rng *rand.Rand, q Quiz, questions []Question, userCount, n int) []QuizAttempt {
	now := core.PoolEpoch
	attempts := make([]QuizAttempt, 0, n)
	for i := 0; i < n; i++ {
		status := attemptStatuses[rng.Intn(len(attemptStatuses))]
		startedAt := now.Add(-time.Duration(rng.Int63n(int64(7 * 24 * time.Hour))))
		att := QuizAttempt{
			QuizID:      q.ID,
			UserID:      rng.Intn(userCount) + 1,
			StartedAt:   startedAt,
			TotalPoints: q.TotalPoints,
			Answers:     []QuizAnswer{},
			Status:      status,
		}
		if status == AttemptCompleted {
			for _, qn := range questions {
				correct := rng.Float64() > 0.3 // 70% correct rate
				ans := QuizAnswer{
					QuestionID: qn.ID,
					// wrong answers never land on the correct option
					SelectedAnswer: (qn.CorrectAnswer + 1 + rng.Intn(OptionsPerQuestion-1)) % OptionsPerQuestion,
					IsCorrect:      correct,
					TimeSpent:      rng.Intn(120) + 30, // 30-150 seconds per question
				}
				if correct {
					ans.SelectedAnswer = qn.CorrectAnswer
					ans.PointsEarned = qn.Points
				}
				att.Answers = append(att.Answers, ans)
				att.Score += ans.PointsEarned
				att.TimeSpent += ans.TimeSpent
			}
			att.Percentage = percentage(att.Score, att.TotalPoints)
			completedAt := startedAt.Add(time.Duration(att.TimeSpent) * time.Second)
			att.CompletedAt = &completedAt
		} else {
			att.TimeSpent = rng.Intn(1800) + 300 // 5-35 minutes
		}
		attempts = append(attempts, att)
	}
	return attempts
}
