package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticResponderRejectsEmptyInput(t *testing.T) {
	r := NewStaticResponder()
	ctx := context.Background()

	_, err := r.Analyze(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyInput)
	_, err = r.Summarize(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyInput)
	_, err = r.Recommend(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestStaticResponderPayloads(t *testing.T) {
	r := NewStaticResponder()
	ctx := context.Background()

	analysis, err := r.Analyze(ctx, "chest pain and shortness of breath")
	require.NoError(t, err)
	assert.Equal(t, "Moderate", analysis.Severity)
	assert.Len(t, analysis.Recommendations, 3)
	assert.NotEmpty(t, analysis.SuggestedSpecialist)

	summary, err := r.Summarize(ctx, "long consultation notes")
	require.NoError(t, err)
	assert.NotEmpty(t, summary.Summary)
	assert.Len(t, summary.KeyPoints, 4)

	procedures, err := r.Recommend(ctx, "hypertension history")
	require.NoError(t, err)
	require.Len(t, procedures, 3)
	assert.Equal(t, "ECG (Electrocardiogram)", procedures[0].Name)
}
