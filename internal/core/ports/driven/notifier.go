package driven

// ToastLevel is the visual weight of a toast.
type ToastLevel string

// Toast levels.
const (
	// ToastSuccess is a prominent, longer-duration success toast.
	ToastSuccess ToastLevel = "success"

	// ToastError is a destructive-style error toast.
	ToastError ToastLevel = "error"

	// ToastInfo is a neutral informational toast.
	ToastInfo ToastLevel = "info"
)

// Notifier renders user-visible notifications. It holds no state:
// exactly-once delivery is the caller's responsibility.
type Notifier interface {
	// Toast renders an in-app toast.
	Toast(level ToastLevel, title, message string)

	// OSNotify raises an OS-level notification when permission has been
	// granted, and is a no-op otherwise. The tag deduplicates: a repeat
	// call with the same tag replaces the previous notification rather
	// than stacking a new one.
	OSNotify(tag, title, message string)
}
