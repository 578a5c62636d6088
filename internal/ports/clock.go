package ports

import "time"

// Clock supplies "now" so the evaluation day can be injected in tests.
type Clock interface {
	Now() time.Time
}
