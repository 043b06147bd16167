package schedule

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlot(t *testing.T) {
	tests := []struct {
		input  string
		hour   int
		minute int
	}{
		{"9:00 AM", 9, 0},
		{"09:00 AM", 9, 0},
		{"11:30 AM", 11, 30},
		{"12:00 PM", 12, 0}, // noon must not gain 12
		{"12:00 AM", 0, 0},  // midnight must map to 0
		{"12:30 AM", 0, 30},
		{"1:00 PM", 13, 0},
		{"5:30 PM", 17, 30},
		{"11:59 PM", 23, 59},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			hour, minute, err := ParseSlot(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.hour, hour)
			assert.Equal(t, tc.minute, minute)
		})
	}
}

func TestParseSlotRejectsMalformedInput(t *testing.T) {
	bad := []string{
		"",
		"10:00",      // no AM/PM marker
		"10:00 XM",   // unknown marker
		"ten:00 AM",  // non-numeric hour
		"10:0x AM",   // non-numeric minute
		"0:30 AM",    // hour below 1
		"13:00 PM",   // hour above 12
		"10:60 AM",   // minute above 59
		"10 AM",      // no colon
		"10:00:00 AM",
	}
	for _, input := range bad {
		t.Run(fmt.Sprintf("%q", input), func(t *testing.T) {
			_, _, err := ParseSlot(input)
			require.Error(t, err)
			var fErr *FormatError
			assert.ErrorAs(t, err, &fErr)
		})
	}
}

func TestSlotRoundTrip(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		for _, minute := range []int{0, 30} {
			formatted := FormatSlot(hour, minute)
			gotHour, gotMinute, err := ParseSlot(formatted)
			require.NoError(t, err, "formatted %q", formatted)
			assert.Equal(t, hour, gotHour, "hour for %q", formatted)
			assert.Equal(t, minute, gotMinute, "minute for %q", formatted)
		}
	}
}

func TestFormatSlotEdges(t *testing.T) {
	assert.Equal(t, "12:00 AM", FormatSlot(0, 0))
	assert.Equal(t, "12:00 PM", FormatSlot(12, 0))
	assert.Equal(t, "1:00 PM", FormatSlot(13, 0))
	assert.Equal(t, "11:30 PM", FormatSlot(23, 30))
}

func TestStorageConversions(t *testing.T) {
	stored, err := SlotToStorage("2:00 PM")
	require.NoError(t, err)
	assert.Equal(t, "14:00:00", stored)

	slot, err := StorageToSlot("14:00:00")
	require.NoError(t, err)
	assert.Equal(t, "2:00 PM", slot)

	_, err = StorageToSlot("not a time")
	var fErr *FormatError
	assert.ErrorAs(t, err, &fErr)
}

func TestEnumeratedSlotSetsAreParseable(t *testing.T) {
	for _, set := range [][]string{BookingSlots, RescheduleSlots} {
		for _, slot := range set {
			_, _, err := ParseSlot(slot)
			assert.NoError(t, err, "slot %q", slot)
		}
	}
}

func TestIsListed(t *testing.T) {
	assert.True(t, IsListed("10:30 AM", RescheduleSlots))
	assert.False(t, IsListed("10:30 AM", BookingSlots))
	assert.False(t, IsListed("6:00 AM", RescheduleSlots))
}
