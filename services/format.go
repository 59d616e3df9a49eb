// ABOUTME: Storage quantity formatter producing GiB/TiB display strings
// ABOUTME: Carries fixed-point exceptions for industry-standard disk sizes

package services

import (
	"fmt"
	"math"
)

// fixedPointTiB lists industry-standard disk sizes that must always
// render with exactly two decimal digits, never fewer.
var fixedPointTiB = []float64{1.92, 3.84, 7.68, 15.36}

const fixedPointEpsilon = 1e-6

// FormatStorage renders a gigabyte quantity for display. Values below
// 1024 render as GiB with two decimals; larger values divide by 1024
// and render as TiB, as a bare integer when whole, else with two
// decimals. The fixed points 1.92, 3.84, 7.68, and 15.36 TiB always
// keep their two decimal digits.
func FormatStorage(gb float64) string {
	if gb < 1024 {
		return fmt.Sprintf("%.2f GiB", gb)
	}

	tib := gb / 1024

	for _, fp := range fixedPointTiB {
		if math.Abs(tib-fp) < fixedPointEpsilon {
			return fmt.Sprintf("%.2f TiB", fp)
		}
	}

	if tib == math.Trunc(tib) {
		return fmt.Sprintf("%d TiB", int64(tib))
	}
	return fmt.Sprintf("%.2f TiB", tib)
}
