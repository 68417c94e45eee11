package interact

import "errors"

// ErrorKind classifies a command failure the invoker is told about.
type ErrorKind int

const (
	KindNoInvoker ErrorKind = iota + 1
	KindBadInteractionData
	KindNoResolvedData
	KindNoTargetID
	KindMissingMessage
	KindSelfReport
	KindDeliveryFailed
)

var userMessages = map[ErrorKind]string{
	KindNoInvoker:          "No interaction invoker!",
	KindBadInteractionData: "Bad interaction data",
	KindNoResolvedData:     "No resolved data",
	KindNoTargetID:         "No target ID",
	KindMissingMessage:     "Missing message in resolved data",
	KindSelfReport:         "You can't report your own message!",
	KindDeliveryFailed:     "Contacting discord returned an error",
}

// Error is a domain failure of a command. Its message is shown to the
// invoker; the wrapped cause is only logged.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	if msg, ok := userMessages[e.Kind]; ok {
		return msg
	}
	return "Something went wrong"
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches errors of the same kind, so the sentinels below work with
// errors.Is regardless of the wrapped cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrNoInvoker          = &Error{Kind: KindNoInvoker}
	ErrBadInteractionData = &Error{Kind: KindBadInteractionData}
	ErrNoResolvedData     = &Error{Kind: KindNoResolvedData}
	ErrNoTargetID         = &Error{Kind: KindNoTargetID}
	ErrMissingMessage     = &Error{Kind: KindMissingMessage}
	ErrSelfReport         = &Error{Kind: KindSelfReport}
	ErrDeliveryFailed     = &Error{Kind: KindDeliveryFailed}
)

// UserMessage returns the text shown to the invoker for err.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Error()
	}
	return "Something went wrong"
}
