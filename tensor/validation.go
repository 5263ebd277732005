package tensor

import "sync/atomic"

var validationEnabled atomic.Bool

func init() {
	validationEnabled.Store(true)
}

// ValidationEnabled reports whether misuse checks on Index
// construction and prime operations are active.
func ValidationEnabled() bool {
	return validationEnabled.Load()
}

// SetValidationEnabled toggles misuse checks. Checks are on by
// default; hot loops that cannot afford them can switch them off, at
// the cost of letting prime levels go negative silently.
func SetValidationEnabled(enabled bool) {
	validationEnabled.Store(enabled)
}
