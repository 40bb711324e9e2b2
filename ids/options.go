package ids

import "github.com/ClickerMonkey/nage/internal/arena"

type options struct {
	pagePower int
	logger    *Logger
	compress  bool
}

// Option configures Interner construction.
type Option func(*options)

// WithPagePower sets the string page size as a power-of-two exponent.
// The default is 12 (4096-byte pages). Identifiers longer than a page get a
// dedicated oversized page.
func WithPagePower(power int) Option {
	return func(o *options) {
		if power <= 0 {
			power = arena.DefaultPagePower
		}
		o.pagePower = power
	}
}

// WithLogger sets the logger used for page-allocation and snapshot events.
// If nil is passed, the default text logger is used.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NewLogger(nil)
		}
		o.logger = l
	}
}

// WithCompression enables zstd compression of snapshot payloads written by
// WriteTo. ReadFrom detects compression from the snapshot header regardless
// of this setting.
func WithCompression(on bool) Option {
	return func(o *options) {
		o.compress = on
	}
}
