package catalog

import (
	"math/rand"

	"interview-service/internal/models"
)

var interviewers = []models.Interviewer{
	{Name: "Alex Chen", Gender: "male", Personality: "Analytical and precise", Company: "Google"},
	{Name: "Sarah Kumar", Gender: "female", Personality: "Warm and encouraging", Company: "Meta"},
	{Name: "Michael Torres", Gender: "male", Personality: "Direct and efficient", Company: "Amazon"},
	{Name: "Priya Sharma", Gender: "female", Personality: "Detailed and thorough", Company: "Apple"},
	{Name: "David Kim", Gender: "male", Personality: "Friendly and patient", Company: "Google"},
	{Name: "Jessica Liu", Gender: "female", Personality: "Engaging and curious", Company: "Meta"},
}

// PickInterviewer prefers a persona specializing in the company, falling back
// to a random pick.
func PickInterviewer(company string) models.Interviewer {
	matches := make([]models.Interviewer, 0, len(interviewers))
	for _, i := range interviewers {
		if i.Company == company {
			matches = append(matches, i)
		}
	}
	if len(matches) > 0 {
		return matches[rand.Intn(len(matches))]
	}
	return interviewers[rand.Intn(len(interviewers))]
}

// Companies lists the companies with a dedicated question bank.
func Companies() []string {
	names := make([]string, 0, len(questionBank))
	for name := range questionBank {
		names = append(names, name)
	}
	return names
}
