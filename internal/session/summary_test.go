package session

import (
	"testing"
	"time"
)

// seededSession builds a session with activity across two subjects using
// a controllable clock.
func seededSession(t *testing.T) (*Session, *time.Time) {
	t.Helper()

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	s := NewWithClock("seed", func() time.Time { return now })

	s.AddQuestion("Mathematics", "How do I factor algebra expressions?", testAnswer())
	now = now.Add(time.Minute)
	s.AddQuestion("Mathematics", "What is geometry about?", testAnswer())
	now = now.Add(time.Minute)
	s.AddQuestion("Physics", "Explain how electricity flows in a circuit", testAnswer())
	now = now.Add(time.Minute)

	s.RecordQuizAttempt("Mathematics", testQuiz("Mathematics", "Algebra"), 90, 100)
	now = now.Add(time.Minute)
	s.RecordQuizAttempt("Physics", testQuiz("Physics", "Mechanics"), 50, 200)
	now = now.Add(time.Minute)

	return s, &now
}

func TestSummary(t *testing.T) {
	s, now := seededSession(t)
	*now = now.Add(25 * time.Minute)

	sum := s.Summary()
	if sum.TotalQuestions != 3 {
		t.Errorf("total questions = %d, want 3", sum.TotalQuestions)
	}
	if sum.TotalQuizzes != 2 {
		t.Errorf("total quizzes = %d, want 2", sum.TotalQuizzes)
	}
	if sum.AverageQuizScore != 70 {
		t.Errorf("average = %f, want 70", sum.AverageQuizScore)
	}
	if sum.MostActiveSubject != "Mathematics" {
		t.Errorf("most active = %q", sum.MostActiveSubject)
	}
	if sum.Plan != "Free" {
		t.Errorf("plan = %q", sum.Plan)
	}
	if sum.SessionDurationMinutes != 30 {
		t.Errorf("duration = %d, want 30", sum.SessionDurationMinutes)
	}
	if len(sum.SubjectsExplored) != 2 {
		t.Errorf("subjects = %v", sum.SubjectsExplored)
	}
}

func TestBestPerformingSubject(t *testing.T) {
	s := New("s1")

	mathQuiz := testQuiz("Mathematics", "Algebra")
	physQuiz := testQuiz("Physics", "Mechanics")

	id := s.GenerateQuizRecord(mathQuiz)
	if _, err := s.Start(id); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Complete(id, []string{mathQuiz.Questions[0].CorrectOption, mathQuiz.Questions[1].CorrectOption}); err != nil {
		t.Fatal(err)
	}

	id = s.GenerateQuizRecord(physQuiz)
	if _, err := s.Start(id); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Complete(id, []string{"wrong", "wrong"}); err != nil {
		t.Fatal(err)
	}

	sum := s.Summary()
	if sum.BestPerformingSubject != "Mathematics" {
		t.Errorf("best subject = %q, want Mathematics", sum.BestPerformingSubject)
	}
	if sum.QuizzesGenerated != 2 {
		t.Errorf("quizzes generated = %d", sum.QuizzesGenerated)
	}
}

func TestSubjectAnalytics(t *testing.T) {
	s, _ := seededSession(t)

	stats := s.SubjectAnalytics()
	if len(stats) != 2 {
		t.Fatalf("subjects = %d, want 2", len(stats))
	}

	math := stats[0]
	if math.Subject != "Mathematics" {
		t.Fatalf("first subject = %q, want first-appearance order", math.Subject)
	}
	if math.QuestionsAsked != 2 || math.QuizAttempts != 1 {
		t.Errorf("math stats = %+v", math)
	}
	if math.AverageQuizScore != 90 {
		t.Errorf("math average = %f", math.AverageQuizScore)
	}
	if math.HighScores != 1 || math.ImprovementNeeded != 0 {
		t.Errorf("math performance = %+v", math)
	}
	if len(math.TopicsCovered) != 2 {
		t.Errorf("math topics = %v", math.TopicsCovered)
	}

	phys := stats[1]
	if phys.ImprovementNeeded != 1 {
		t.Errorf("physics improvement needed = %d, want 1", phys.ImprovementNeeded)
	}
}

func TestLearningHistoryNewestFirst(t *testing.T) {
	s, _ := seededSession(t)

	history := s.LearningHistory(10)
	if len(history) != 5 {
		t.Fatalf("entries = %d, want 5", len(history))
	}
	for i := 1; i < len(history); i++ {
		if history[i].Timestamp.After(history[i-1].Timestamp) {
			t.Fatal("history not sorted newest first")
		}
	}
	if history[0].Kind != ActivityQuiz {
		t.Errorf("newest entry kind = %s, want quiz", history[0].Kind)
	}
	if history[len(history)-1].Kind != ActivityQuestion {
		t.Errorf("oldest entry kind = %s, want question", history[len(history)-1].Kind)
	}

	limited := s.LearningHistory(2)
	if len(limited) != 2 {
		t.Errorf("limited entries = %d, want 2", len(limited))
	}
}

func TestSessionRoundTrip(t *testing.T) {
	s, _ := seededSession(t)
	quiz := testQuiz("Mathematics", "Geometry")
	id := s.GenerateQuizRecord(quiz)
	if _, err := s.Start(id); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Complete(id, []string{quiz.Questions[0].CorrectOption, "wrong"}); err != nil {
		t.Fatal(err)
	}

	data, err := Marshal(s)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	restored, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if restored.ID != s.ID {
		t.Errorf("id = %q", restored.ID)
	}
	if len(restored.Questions) != len(s.Questions) {
		t.Errorf("questions = %d, want %d", len(restored.Questions), len(s.Questions))
	}
	if len(restored.QuizHistory) != len(s.QuizHistory) {
		t.Errorf("history = %d, want %d", len(restored.QuizHistory), len(s.QuizHistory))
	}
	if restored.StrengthCounts["Algebra"] != s.StrengthCounts["Algebra"] {
		t.Error("strength counts not preserved")
	}
	if restored.GapCounts["Mechanics"] != s.GapCounts["Mechanics"] {
		t.Error("gap counts not preserved")
	}

	record, ok := restored.QuizRecords[id]
	if !ok {
		t.Fatal("quiz record lost in round trip")
	}
	if record.Status != StatusCompleted || record.Results == nil {
		t.Error("quiz record state not preserved")
	}
	if record.Results.ScorePercentage != 50 {
		t.Errorf("restored score = %f, want 50", record.Results.ScorePercentage)
	}

	// Restored sessions keep working.
	restored.AddQuestion("Biology", "What is a cell?", testAnswer())
	if len(restored.Questions) != len(s.Questions)+1 {
		t.Error("restored session should accept new activity")
	}
}

func TestGetOrCreate(t *testing.T) {
	store := NewMemoryStore()

	a := GetOrCreate(store, "s1")
	b := GetOrCreate(store, "s1")
	if a != b {
		t.Error("same id should return the same session")
	}

	c := GetOrCreate(store, "s2")
	if c == a {
		t.Error("distinct ids should not share a session")
	}

	store.Delete("s1")
	if _, ok := store.Get("s1"); ok {
		t.Error("deleted session still present")
	}
}
