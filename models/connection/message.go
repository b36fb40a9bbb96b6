package connection

// NoPayload marks messages that carry a code and nothing else.
type NoPayload bool

// Message is the envelope of every frame on the event boundary, in both
// directions. A frame carries either a payload or an error, never both.
type Message[T any] struct {
	Code    uint8    `json:"code"`
	Payload T        `json:"payload,omitempty"`
	Error   *RespErr `json:"error,omitempty"`
}

func NewMessage[T any](code uint8, payload T) Message[T] {
	return Message[T]{Code: code, Payload: payload}
}

// NewErrMessage builds the failure form of a frame. The code keeps the
// request kind so the bridge can match the reply to what it sent; the
// payload stays zero.
func NewErrMessage[T any](code uint8, errorDetails, message string) Message[T] {
	return Message[T]{Code: code, Error: NewRespErr(errorDetails, message)}
}
