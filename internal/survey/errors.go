package survey

// Error codes for survey failures
const (
	ErrCodeMissingChannel = "MISSING_CHANNEL"
	ErrCodeEmptyChannel   = "EMPTY_CHANNEL"
	ErrCodeInvalidState   = "INVALID_STATE"
)

// ChannelError represents a channel-related precondition failure
type ChannelError struct {
	Channel string `json:"channel"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

func (e *ChannelError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ChannelError) Unwrap() error {
	return e.Cause
}

// NewChannelError creates a new channel error
func NewChannelError(channel, code, message string, cause error) *ChannelError {
	return &ChannelError{
		Channel: channel,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}
