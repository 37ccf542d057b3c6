package dashboard

import "fmt"

// Banner is the transient, dismissible outcome message a view shows after
// an operation. Nothing is logged durably; a new operation replaces it.
type Banner struct {
	OK   bool
	Text string
}

func successf(format string, args ...any) Banner {
	return Banner{OK: true, Text: fmt.Sprintf(format, args...)}
}

func failuref(format string, args ...any) Banner {
	return Banner{OK: false, Text: fmt.Sprintf(format, args...)}
}

func (b Banner) Empty() bool {
	return b.Text == ""
}

func (b Banner) String() string {
	if b.Text == "" {
		return ""
	}
	if b.OK {
		return "✅ " + b.Text
	}
	return "❌ " + b.Text
}

// ConfirmFunc asks the admin to confirm an irreversible action.
type ConfirmFunc func(prompt string) bool
