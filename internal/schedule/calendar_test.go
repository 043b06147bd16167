package schedule

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventURLScenario(t *testing.T) {
	got, err := EventURL(Event{
		ParticipantName: "Sarah Wilson",
		Date:            "2024-12-15",
		Time:            "10:00 AM",
		Details:         "Patient appointment approved through HealthCare AI",
		Location:        "Medical Center",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "https://calendar.google.com/calendar/render?action=TEMPLATE"))
	assert.Contains(t, got, "dates=20241215T100000Z/20241215T110000Z")
	assert.Contains(t, got, "text=Appointment+with+Sarah+Wilson")
	assert.Contains(t, got, "location=Medical+Center")
}

func TestEventURLIsDeterministic(t *testing.T) {
	ev := Event{
		ParticipantName: "John Smith",
		Date:            "2024-12-16",
		Time:            "2:00 PM",
		DurationHours:   2,
		Details:         "Appointment Type: Follow-up",
		Location:        "Medical Center",
	}
	first, err := EventURL(ev)
	require.NoError(t, err)
	second, err := EventURL(ev)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Contains(t, first, "dates=20241216T140000Z/20241216T160000Z")
}

func TestEventURLDefaultDuration(t *testing.T) {
	got, err := EventURL(Event{
		ParticipantName: "David Martinez",
		Date:            "2024-12-18",
		Time:            "9:00 AM",
	})
	require.NoError(t, err)
	assert.Contains(t, got, "dates=20241218T090000Z/20241218T100000Z")
}

func TestEventURLEscapesFreeText(t *testing.T) {
	got, err := EventURL(Event{
		ParticipantName: "O'Neil & Sons",
		Date:            "2024-12-18",
		Time:            "9:00 AM",
		Details:         "Notes: follow-up & labs",
	})
	require.NoError(t, err)
	assert.NotContains(t, got, "& Sons")
	assert.Contains(t, got, "O%27Neil+%26+Sons")
	assert.Contains(t, got, "follow-up+%26+labs")
}

func TestEventURLRejectsBadInputs(t *testing.T) {
	var fErr *FormatError

	_, err := EventURL(Event{ParticipantName: "X", Date: "2024-12-18", Time: "25:00"})
	assert.ErrorAs(t, err, &fErr)

	_, err = EventURL(Event{ParticipantName: "X", Date: "Dec 18, 2024", Time: "9:00 AM"})
	assert.ErrorAs(t, err, &fErr)
}

func TestEventURLMidnightAndNoon(t *testing.T) {
	got, err := EventURL(Event{ParticipantName: "X", Date: "2024-12-18", Time: "12:00 AM"})
	require.NoError(t, err)
	assert.Contains(t, got, "dates=20241218T000000Z/20241218T010000Z")

	got, err = EventURL(Event{ParticipantName: "X", Date: "2024-12-18", Time: "12:00 PM"})
	require.NoError(t, err)
	assert.Contains(t, got, "dates=20241218T120000Z/20241218T130000Z")
}
