// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package common

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestNowUTC(t *testing.T) {
	local := time.FixedZone("UTC+2", 2*60*60)
	clock := clockwork.NewFakeClockAt(time.Date(2025, 10, 17, 14, 23, 45, 123456789, local))

	result := NowUTC(clock)

	if result.Location() != time.UTC {
		t.Errorf("Expected UTC timezone, got %v", result.Location())
	}
	expected := time.Date(2025, 10, 17, 12, 23, 45, 123456000, time.UTC)
	if !result.Equal(expected) {
		t.Errorf("Expected %v, got %v", expected, result)
	}

	clock.Advance(time.Second)
	if got := NowUTC(clock); !got.Equal(expected.Add(time.Second)) {
		t.Errorf("Expected clock advance to be observed, got %v", got)
	}
}

func TestTruncateToMicrosUTC(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "drops nanoseconds",
			input:    time.Date(2025, 10, 17, 14, 23, 45, 999999999, time.UTC),
			expected: time.Date(2025, 10, 17, 14, 23, 45, 999999000, time.UTC),
		},
		{
			name:     "already microsecond precision",
			input:    time.Date(2025, 10, 17, 14, 23, 45, 1000, time.UTC),
			expected: time.Date(2025, 10, 17, 14, 23, 45, 1000, time.UTC),
		},
		{
			name:     "non-UTC timezone",
			input:    time.Date(2025, 10, 17, 23, 59, 59, 500, time.FixedZone("EST", -5*60*60)),
			expected: time.Date(2025, 10, 18, 4, 59, 59, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := TruncateToMicrosUTC(tt.input)
			if !result.Equal(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
			if result.Location() != time.UTC {
				t.Errorf("Expected UTC timezone, got %v", result.Location())
			}
		})
	}
}
