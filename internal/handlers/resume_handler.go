package handlers

import (
	"io"
	"net/http"

	"interview-service/internal/resume"
	"interview-service/utils"

	"github.com/gin-gonic/gin"
)

const maxResumeBytes = 5 << 20 // 5 MB

type ResumeHandler struct {
	Extractor resume.TextExtractor
}

func NewResumeHandler(extractor resume.TextExtractor) *ResumeHandler {
	if extractor == nil {
		extractor = resume.PlainTextExtractor{}
	}
	return &ResumeHandler{Extractor: extractor}
}

// ParseResume extracts a skill list from an uploaded resume file.
func (h *ResumeHandler) ParseResume(c *gin.Context) {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		utils.BadRequestResponse(c, "No resume file uploaded")
		return
	}
	if fileHeader.Size > maxResumeBytes {
		utils.BadRequestResponse(c, "Resume file too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to read resume file", err)
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(io.LimitReader(file, maxResumeBytes))
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to read resume file", err)
		return
	}

	text, err := h.Extractor.Extract(c.Request.Context(), raw, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		utils.BadRequestResponse(c, "Unsupported resume format")
		return
	}

	skills := resume.ExtractSkills(text)
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"filename": fileHeader.Filename,
		"skills":   skills,
		"message":  "Resume parsed successfully",
	})
}
