package config

import (
	"fmt"
	"time"
)

// ValidatePort checks that p is a usable non-privileged TCP port.
func ValidatePort(p int) error {
	if p < 1024 || p > 65535 {
		return fmt.Errorf("port %d out of range [1024, 65535]", p)
	}
	return nil
}

// ValidatePositiveInt checks that n is greater than zero.
func ValidatePositiveInt(n int) error {
	if n <= 0 {
		return fmt.Errorf("value %d must be positive", n)
	}
	return nil
}

// ValidatePositiveFloat checks that f is greater than zero.
func ValidatePositiveFloat(f float64) error {
	if f <= 0 {
		return fmt.Errorf("value %g must be positive", f)
	}
	return nil
}

// ValidatePositiveDuration checks that d is greater than zero.
func ValidatePositiveDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("duration %s must be positive", d)
	}
	return nil
}
