// Package ai defines the analysis collaborators the dashboards consume:
// symptom triage, clinical note summarization and procedure recommendation.
// Handlers depend on the interfaces only; the canned implementations below
// stand in until a real analysis backend is wired.
package ai

import (
	"context"
	"errors"
)

// Analysis is the structured result of symptom triage.
type Analysis struct {
	Severity            string   `json:"severity"`
	Recommendations     []string `json:"recommendations"`
	SuggestedSpecialist string   `json:"suggestedSpecialist"`
	Urgency             string   `json:"urgency"`
}

// Summary is the condensed form of a set of clinical notes.
type Summary struct {
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"keyPoints"`
}

// Procedure is a single recommended follow-up procedure.
type Procedure struct {
	Name    string `json:"name"`
	Reason  string `json:"reason"`
	Urgency string `json:"urgency"`
}

// Analyzer turns free-text symptoms into a triage result.
type Analyzer interface {
	Analyze(ctx context.Context, symptoms string) (*Analysis, error)
}

// Summarizer condenses free-text clinical notes.
type Summarizer interface {
	Summarize(ctx context.Context, notes string) (*Summary, error)
}

// Recommender suggests follow-up procedures from a patient history.
type Recommender interface {
	Recommend(ctx context.Context, history string) ([]Procedure, error)
}

// ErrEmptyInput is returned when there is no text to analyze.
var ErrEmptyInput = errors.New("input text is empty")

// StaticResponder serves canned responses synchronously. It implements
// Analyzer, Summarizer and Recommender.
type StaticResponder struct{}

// NewStaticResponder creates a new StaticResponder.
func NewStaticResponder() *StaticResponder {
	return &StaticResponder{}
}

// Analyze returns the canned triage result.
func (s *StaticResponder) Analyze(ctx context.Context, symptoms string) (*Analysis, error) {
	if symptoms == "" {
		return nil, ErrEmptyInput
	}
	return &Analysis{
		Severity: "Moderate",
		Recommendations: []string{
			"Schedule an appointment with a cardiologist within 1-2 weeks",
			"Monitor blood pressure daily",
			"Avoid strenuous physical activity until consultation",
		},
		SuggestedSpecialist: "Dr. Sarah Johnson - Cardiology",
		Urgency:             "Medium Priority",
	}, nil
}

// Summarize returns the canned note summary.
func (s *StaticResponder) Summarize(ctx context.Context, notes string) (*Summary, error) {
	if notes == "" {
		return nil, ErrEmptyInput
	}
	return &Summary{
		Summary: "Patient John Smith, 45-year-old male with history of hypertension. " +
			"Chief complaint: chest discomfort and shortness of breath during physical activity. " +
			"Vital signs stable. Current medications: Lisinopril 10mg daily. " +
			"Physical examination reveals no acute abnormalities. " +
			"Recommend ECG and stress test for further evaluation.",
		KeyPoints: []string{
			"Stable vital signs",
			"History of hypertension",
			"Currently on Lisinopril",
			"Needs cardiac workup",
		},
	}, nil
}

// Recommend returns the canned procedure list.
func (s *StaticResponder) Recommend(ctx context.Context, history string) ([]Procedure, error) {
	if history == "" {
		return nil, ErrEmptyInput
	}
	return []Procedure{
		{
			Name:    "ECG (Electrocardiogram)",
			Reason:  "To assess cardiac rhythm and detect any abnormalities",
			Urgency: "Routine",
		},
		{
			Name:    "Exercise Stress Test",
			Reason:  "To evaluate cardiac function under stress",
			Urgency: "Within 2 weeks",
		},
		{
			Name:    "Lipid Panel",
			Reason:  "To assess cardiovascular risk factors",
			Urgency: "Routine",
		},
	}, nil
}
