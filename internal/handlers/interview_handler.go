package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"interview-service/internal/interview"
	"interview-service/utils"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	Service *interview.Service
}

func NewInterviewHandler(s *interview.Service) *InterviewHandler {
	return &InterviewHandler{Service: s}
}

type agentRequest struct {
	Action          string          `json:"action" binding:"required"`
	SessionID       string          `json:"sessionId"`
	Company         string          `json:"company"`
	Language        string          `json:"language"`
	Answer          string          `json:"answer"`
	Type            string          `json:"type"`
	CurrentQuestion json.RawMessage `json:"currentQuestion"`
}

// questionTitle accepts the current question as either a plain string or an
// object with a title, mirroring what the UI sends.
func (r *agentRequest) questionTitle() string {
	if len(r.CurrentQuestion) == 0 {
		return ""
	}
	var text string
	if err := json.Unmarshal(r.CurrentQuestion, &text); err == nil {
		return text
	}
	var obj struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(r.CurrentQuestion, &obj); err == nil {
		return obj.Title
	}
	return ""
}

// HandleAgent is the single action-discriminated interview endpoint.
func (h *InterviewHandler) HandleAgent(c *gin.Context) {
	var req agentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}

	ctx := c.Request.Context()

	switch req.Action {
	case "start":
		result, err := h.Service.Start(ctx, req.SessionID, req.Company, req.Language)
		if err != nil {
			h.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":           true,
			"welcomeMessage":    result.WelcomeMessage,
			"question":          result.Question,
			"interviewerName":   result.Interviewer.Name,
			"interviewerGender": result.Interviewer.Gender,
			"currentRound":      result.Round,
			"roundProgress":     result.RoundProgress,
			"difficulty":        result.Difficulty,
			"sessionId":         req.SessionID,
		})

	case "clarify":
		reply, err := h.Service.Clarify(ctx, req.SessionID, req.Answer)
		if err != nil {
			h.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"response": reply,
			"type":     "clarification",
		})

	case "hint":
		result, err := h.Service.Hint(ctx, req.SessionID, req.questionTitle())
		if err != nil {
			h.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"response":  result.Response,
			"hintLevel": result.Level,
			"type":      "hint",
		})

	case "answer":
		result, err := h.Service.Answer(ctx, req.SessionID, req.Answer, req.Type == "code")
		if err != nil {
			h.fail(c, err)
			return
		}
		response := gin.H{
			"success":          true,
			"response":         result.Response,
			"currentRound":     result.Round,
			"roundProgress":    result.RoundProgress,
			"difficulty":       result.Difficulty,
			"shouldTransition": result.Transitioned,
		}
		if result.NextQuestion != "" {
			response["nextQuestion"] = result.NextQuestion
		}
		if result.Execution != nil {
			response["executionResults"] = result.Execution
		}
		c.JSON(http.StatusOK, response)

	case "end":
		result, err := h.Service.End(ctx, req.SessionID)
		if err != nil {
			h.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":           true,
			"feedback":          result.Feedback,
			"duration":          result.DurationMinutes,
			"questionsAnswered": result.QuestionsAnswered,
			"metrics":           result.Metrics,
		})

	default:
		h.fail(c, interview.ErrInvalidAction)
	}
}

// RecoverSession promotes an archived session back to active.
func (h *InterviewHandler) RecoverSession(c *gin.Context) {
	var req struct {
		SessionID string `json:"sessionId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}

	result, err := h.Service.Recover(req.SessionID)
	if err != nil {
		h.fail(c, err)
		return
	}

	response := gin.H{
		"success":   result.Recovered,
		"recovered": result.Recovered,
		"message":   result.Message,
	}
	if result.Recovered && !result.Restored {
		response["currentRound"] = result.Round
		response["timeElapsed"] = result.ElapsedSecs
	}
	c.JSON(http.StatusOK, response)
}

// GetSessionStatus reports existence, round, progress, and elapsed time with
// no side effects.
func (h *InterviewHandler) GetSessionStatus(c *gin.Context) {
	status := h.Service.Status(c.Param("sessionId"))
	if !status.Exists {
		c.JSON(http.StatusOK, gin.H{"exists": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"exists":       true,
		"currentRound": status.Round,
		"progress":     status.Progress,
		"timeElapsed":  status.ElapsedSecs,
	})
}

// fail maps orchestrator sentinels onto the error taxonomy: bad input and
// unknown sessions are 4xx, anything else is a genuine local defect.
func (h *InterviewHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, interview.ErrMissingSessionID):
		utils.BadRequestResponse(c, "Session ID is required")
	case errors.Is(err, interview.ErrInvalidAction):
		utils.BadRequestResponse(c, "Invalid action specified")
	case errors.Is(err, interview.ErrSessionNotFound):
		utils.NotFoundResponse(c, "Session not found. Please start a new interview.")
	default:
		utils.InternalErrorResponse(c, "Internal server error", err)
	}
}
