package interview

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"interview-service/internal/adaptive"
	"interview-service/internal/catalog"
	"interview-service/internal/execution"
	"interview-service/internal/metrics"
	"interview-service/internal/models"
	"interview-service/internal/prompt"
	"interview-service/internal/store"
)

// Responder obtains a reply for an outbound message list. The llm.Gateway
// satisfies it; it cannot fail, so neither can the conversational actions.
type Responder interface {
	Complete(ctx context.Context, messages []models.Message) string
}

// transitionPhrases are scanned (case-insensitive) in the interviewer's reply
// to decide whether to advance progress. This is a heuristic text contract
// shared with the review instructions in the prompt package: a reply that
// merely mentions "another question" will advance state.
var transitionPhrases = []string{
	"next problem",
	"move to",
	"another topic",
	"another question",
	"let me ask",
}

// Round totals for a fresh session.
var defaultRoundTotals = map[models.Round]int{
	models.RoundDSA:         2,
	models.RoundTheoretical: 3,
	models.RoundHR:          2,
}

// Service is the per-session state machine: it interprets actions, drives
// round transitions, and coordinates catalog, composer, gateway, assessor,
// and runner. Actions hold the store's per-session lock, so one action per
// session runs at a time and the store's sweeps never observe a session
// mid-mutation.
type Service struct {
	store     *store.Store
	responder Responder
	assessor  *adaptive.Assessor
	runner    execution.Runner
	events    store.Publisher
}

func NewService(st *store.Store, responder Responder, assessor *adaptive.Assessor, runner execution.Runner, events store.Publisher) *Service {
	if assessor == nil {
		assessor = adaptive.NewAssessor(nil)
	}
	return &Service{
		store:     st,
		responder: responder,
		assessor:  assessor,
		runner:    runner,
		events:    events,
	}
}

func (s *Service) publish(eventType string, payload interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(eventType, payload); err != nil {
		log.Printf("Failed to publish %s: %v", eventType, err)
	}
}

// StartResult is the response payload of the start action.
type StartResult struct {
	WelcomeMessage string
	Question       string
	Interviewer    models.Interviewer
	Round          models.Round
	RoundProgress  string
	Difficulty     models.Difficulty
}

// Start creates a session (or reuses a live one with the same id), seeds the
// conversation with the coding-round persona and welcome message, and issues
// the first question.
func (s *Service) Start(ctx context.Context, sessionID, company, language string) (*StartResult, error) {
	if sessionID == "" {
		return nil, ErrMissingSessionID
	}
	unlock := s.store.LockSession(sessionID)
	defer unlock()

	session, err := s.store.Get(sessionID)
	if err != nil {
		session = newSession(sessionID, company, language)
		s.store.Put(session)
		metrics.SessionsStarted.Inc()
		s.publish("interview.session.started", map[string]interface{}{
			"session_id": sessionID,
			"company":    session.Company,
			"timestamp":  time.Now(),
		})
	}
	session.Touch()

	welcome := prompt.Welcome(session.Interviewer, session.Company)

	question := catalog.Select(session.Company, models.RoundDSA, session.CurrentDifficulty, session.UsedQuestions)
	session.UsedQuestions = append(session.UsedQuestions, question)
	session.LastQuestionTime = time.Now()

	session.ConversationHistory = []models.Message{
		prompt.Persona(models.RoundDSA, session.Interviewer, session.Company),
		{Role: models.RoleAssistant, Content: welcome},
	}

	progress := session.RoundProgress[models.RoundDSA]
	progress.Current = 1
	session.RoundProgress[models.RoundDSA] = progress

	return &StartResult{
		WelcomeMessage: welcome,
		Question:       catalog.FormatQuestion(question),
		Interviewer:    session.Interviewer,
		Round:          session.CurrentRound,
		RoundProgress:  progress.String(),
		Difficulty:     session.CurrentDifficulty,
	}, nil
}

func newSession(id, company, language string) *models.Session {
	if company == "" {
		company = catalog.DefaultCompany
	}
	if language == "" {
		language = "javascript"
	}

	now := time.Now()
	return &models.Session{
		ID:                id,
		Company:           company,
		Language:          language,
		Interviewer:       catalog.PickInterviewer(company),
		CurrentRound:      models.RoundDSA,
		CurrentDifficulty: models.DifficultyMedium,
		RoundProgress: map[models.Round]models.RoundProgress{
			models.RoundDSA:         {Total: defaultRoundTotals[models.RoundDSA]},
			models.RoundTheoretical: {Total: defaultRoundTotals[models.RoundTheoretical]},
			models.RoundHR:          {Total: defaultRoundTotals[models.RoundHR]},
		},
		Metrics: models.PerformanceMetrics{
			DifficultyProgression: []models.Difficulty{models.DifficultyMedium},
		},
		StartTime:        now,
		LastActionTime:   now,
		LastQuestionTime: now,
	}
}

// Clarify answers a candidate question without touching round, difficulty,
// or progress.
func (s *Service) Clarify(ctx context.Context, sessionID, question string) (string, error) {
	session, unlock, err := s.resolve(sessionID)
	if err != nil {
		return "", err
	}
	defer unlock()

	session.Metrics.ClarificationsAsked++

	userTurn := fmt.Sprintf("Clarification question: %s", question)
	outbound := prompt.WithInstruction(session.ConversationHistory, userTurn, prompt.ClarifyInstruction())
	reply := s.responder.Complete(ctx, outbound)

	session.ConversationHistory = append(session.ConversationHistory,
		models.Message{Role: models.RoleUser, Content: userTurn},
		models.Message{Role: models.RoleAssistant, Content: reply},
	)
	return reply, nil
}

// HintResult carries the marked hint text and its level.
type HintResult struct {
	Response string
	Level    int
}

// Hint issues a progressively more specific hint. The hint counter doubles as
// the level and resets on round transitions.
func (s *Service) Hint(ctx context.Context, sessionID, currentQuestion string) (*HintResult, error) {
	session, unlock, err := s.resolve(sessionID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	session.Metrics.HintsUsed++
	level := session.Metrics.HintsUsed

	userTurn := "[Candidate requested a hint]"
	outbound := prompt.WithInstruction(session.ConversationHistory, userTurn, prompt.HintInstruction(level, currentQuestion))
	reply := s.responder.Complete(ctx, outbound)

	marked := fmt.Sprintf("💡 Hint #%d: %s", level, reply)
	session.ConversationHistory = append(session.ConversationHistory,
		models.Message{Role: models.RoleUser, Content: userTurn},
		models.Message{Role: models.RoleAssistant, Content: marked},
	)

	return &HintResult{Response: marked, Level: level}, nil
}

// AnswerResult is the response payload of the answer action.
type AnswerResult struct {
	Response      string
	NextQuestion  string
	Round         models.Round
	RoundProgress string
	Difficulty    models.Difficulty
	Transitioned  bool
	Execution     *execution.Result
}

// Answer processes a candidate submission: reviews it through the gateway,
// re-assesses difficulty, and advances progress when the interviewer's reply
// signals a transition.
func (s *Service) Answer(ctx context.Context, sessionID, answer string, isCode bool) (*AnswerResult, error) {
	session, unlock, err := s.resolve(sessionID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	userMessage := answer
	var execResult *execution.Result

	if isCode {
		session.Metrics.CodeSubmissions++

		elapsed := int(time.Since(session.LastQuestionTime).Seconds())
		session.Metrics.TimePerProblemSeconds = append(session.Metrics.TimePerProblemSeconds, elapsed)

		result, runErr := s.runner.Run(ctx, answer, session.Language)
		if runErr != nil {
			log.Printf("Execution stub failed: %v", runErr)
			result = execution.Result{Status: "Execution Unavailable"}
		}
		if result.Accepted {
			session.Metrics.SuccessfulExecutions++
		}
		execResult = &result

		userMessage = fmt.Sprintf("Here's my %s solution:\n\n```%s\n%s\n```\n\nExecution: %s",
			session.Language, session.Language, truncate(answer, 500), result.Status)
	}

	instruction := prompt.ReviewInstruction(session.CurrentRound, isCode)
	outbound := prompt.WithInstruction(session.ConversationHistory, userMessage, instruction)
	reply := s.responder.Complete(ctx, outbound)

	session.ConversationHistory = append(session.ConversationHistory,
		models.Message{Role: models.RoleUser, Content: userMessage},
		models.Message{Role: models.RoleAssistant, Content: reply},
	)

	session.CurrentDifficulty = s.assessor.Assess(session.ConversationHistory, session.CurrentDifficulty)
	session.Metrics.DifficultyProgression = append(session.Metrics.DifficultyProgression, session.CurrentDifficulty)

	result := &AnswerResult{
		Response:   reply,
		Round:      session.CurrentRound,
		Difficulty: session.CurrentDifficulty,
		Execution:  execResult,
	}

	if containsTransitionPhrase(reply) {
		s.advance(session, result)
	}

	result.Round = session.CurrentRound
	result.RoundProgress = session.Progress().String()
	return result, nil
}

// advance moves to the next question within the round, or to the next round
// once the active round's quota is met. hr is terminal: a transition signal
// there changes nothing further.
func (s *Service) advance(session *models.Session, result *AnswerResult) {
	round := session.CurrentRound
	progress := session.RoundProgress[round]

	session.Metrics.HintsUsed = 0

	if progress.Current < progress.Total {
		progress.Current++
		session.RoundProgress[round] = progress

		next := catalog.Select(session.Company, round, session.CurrentDifficulty, session.UsedQuestions)
		session.UsedQuestions = append(session.UsedQuestions, next)
		session.LastQuestionTime = time.Now()
		result.NextQuestion = catalog.FormatQuestion(next)
		return
	}

	nextRound, ok := round.Next()
	if !ok {
		return
	}

	session.CurrentRound = nextRound
	result.Transitioned = true

	session.ConversationHistory = append(session.ConversationHistory,
		prompt.Persona(nextRound, session.Interviewer, session.Company))

	next := catalog.Select(session.Company, nextRound, session.CurrentDifficulty, session.UsedQuestions)
	session.UsedQuestions = append(session.UsedQuestions, next)
	session.LastQuestionTime = time.Now()

	nextProgress := session.RoundProgress[nextRound]
	nextProgress.Current++
	session.RoundProgress[nextRound] = nextProgress

	result.NextQuestion = catalog.FormatQuestion(next)
}

// EndResult is the response payload of the end action.
type EndResult struct {
	Feedback          string
	DurationMinutes   int
	QuestionsAnswered map[models.Round]int
	Metrics           models.PerformanceMetrics
}

// End issues the one-shot feedback request, archives the session, and
// returns the summary. The id stays recoverable from backup.
func (s *Service) End(ctx context.Context, sessionID string) (*EndResult, error) {
	session, unlock, err := s.resolve(sessionID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	duration := int(time.Since(session.StartTime).Minutes())

	avgSeconds := 0
	if n := len(session.Metrics.TimePerProblemSeconds); n > 0 {
		total := 0
		for _, t := range session.Metrics.TimePerProblemSeconds {
			total += t
		}
		avgSeconds = total / n
	}

	stats := prompt.FeedbackStats{
		DurationMinutes:   duration,
		DSAProgress:       session.RoundProgress[models.RoundDSA],
		TheoryProgress:    session.RoundProgress[models.RoundTheoretical],
		HRProgress:        session.RoundProgress[models.RoundHR],
		HintsUsed:         session.Metrics.HintsUsed,
		CodeSubmissions:   session.Metrics.CodeSubmissions,
		SuccessfulRuns:    session.Metrics.SuccessfulExecutions,
		AvgSecondsPerTask: avgSeconds,
		Progression:       session.Metrics.DifficultyProgression,
	}

	feedback := s.responder.Complete(ctx, prompt.FeedbackMessages(session.Interviewer, session.Company, stats))

	answered := map[models.Round]int{
		models.RoundDSA:         session.RoundProgress[models.RoundDSA].Current,
		models.RoundTheoretical: session.RoundProgress[models.RoundTheoretical].Current,
		models.RoundHR:          session.RoundProgress[models.RoundHR].Current,
	}
	metricsCopy := session.Clone().Metrics

	if err := s.store.Archive(sessionID); err != nil {
		return nil, err
	}
	metrics.SessionsEnded.WithLabelValues("ended").Inc()
	s.publish("interview.session.ended", map[string]interface{}{
		"session_id":       sessionID,
		"duration_minutes": duration,
		"timestamp":        time.Now(),
	})

	return &EndResult{
		Feedback:          feedback,
		DurationMinutes:   duration,
		QuestionsAnswered: answered,
		Metrics:           metricsCopy,
	}, nil
}

// StatusResult is the side-effect-free session status snapshot.
type StatusResult struct {
	Exists      bool
	Round       models.Round
	Progress    map[models.Round]models.RoundProgress
	ElapsedSecs int
}

// Status reports existence, round, progress, and elapsed time. It takes the
// session lock so the snapshot is consistent, but mutates nothing.
func (s *Service) Status(sessionID string) *StatusResult {
	unlock := s.store.LockSession(sessionID)
	defer unlock()

	session, err := s.store.Get(sessionID)
	if err != nil {
		return &StatusResult{}
	}

	progress := make(map[models.Round]models.RoundProgress, len(session.RoundProgress))
	for round, p := range session.RoundProgress {
		progress[round] = p
	}

	return &StatusResult{
		Exists:      true,
		Round:       session.CurrentRound,
		Progress:    progress,
		ElapsedSecs: int(time.Since(session.StartTime).Seconds()),
	}
}

// RecoveryResult describes the outcome of a recovery request.
type RecoveryResult struct {
	Recovered   bool
	Restored    bool
	Round       models.Round
	ElapsedSecs int
	Message     string
}

// Recover reports a live session, promotes one from backup, or reports
// not-found.
func (s *Service) Recover(sessionID string) (*RecoveryResult, error) {
	if sessionID == "" {
		return nil, ErrMissingSessionID
	}
	unlock := s.store.LockSession(sessionID)
	defer unlock()

	session, state := s.store.Recover(sessionID)
	switch state {
	case store.RecoveryLive:
		return &RecoveryResult{
			Recovered:   true,
			Round:       session.CurrentRound,
			ElapsedSecs: int(time.Since(session.StartTime).Seconds()),
			Message:     "Active session found",
		}, nil
	case store.RecoveryRestored:
		return &RecoveryResult{
			Recovered: true,
			Restored:  true,
			Message:   "Session restored from backup",
		}, nil
	default:
		return &RecoveryResult{Message: "Session not found"}, nil
	}
}

// resolve validates the id, locks the session, and loads it. Callers must
// invoke the returned unlock.
func (s *Service) resolve(sessionID string) (*models.Session, func(), error) {
	if sessionID == "" {
		return nil, nil, ErrMissingSessionID
	}
	unlock := s.store.LockSession(sessionID)

	session, err := s.store.Get(sessionID)
	if err != nil {
		unlock()
		return nil, nil, ErrSessionNotFound
	}
	session.Touch()
	return session, unlock, nil
}

func containsTransitionPhrase(reply string) bool {
	lower := strings.ToLower(reply)
	for _, phrase := range transitionPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
