// Package notify renders user notifications: styled toasts on the
// terminal plus optional desktop notifications through the OS notifier.
package notify
