// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package common

import "math"

// IsFinite reports whether v is neither NaN nor an infinity.
//
// Ordered comparisons are always false for NaN, so a check such as v <= 0
// lets NaN through; range checks on configured floats must call this first.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// IsPositive reports whether v is a finite number above zero.
func IsPositive(v float64) bool {
	return IsFinite(v) && v > 0
}
