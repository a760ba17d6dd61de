// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package common

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// NowUTC returns the clock's current time in UTC, truncated to microseconds.
// This matches PostgreSQL TIMESTAMPTZ precision, so a stored publish time reads back equal.
//
// Example:
//   - Input: 2025-10-17 14:23:45.123456789 +0200
//   - Output: 2025-10-17 12:23:45.123456 UTC
func NowUTC(clock clockwork.Clock) time.Time {
	return TruncateToMicrosUTC(clock.Now())
}

// TruncateToMicrosUTC converts t to UTC and drops sub-microsecond precision.
func TruncateToMicrosUTC(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
