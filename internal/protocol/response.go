package protocol

type ResponseKind int

const (
	ResponseOK ResponseKind = iota
	ResponseValue
	ResponseNil
	ResponseError
)

// Response is the reply to exactly one request line.
type Response struct {
	Kind  ResponseKind
	Value string
}

func NewOK() Response {
	return Response{Kind: ResponseOK}
}

func NewValue(v string) Response {
	return Response{Kind: ResponseValue, Value: v}
}

func NewNil() Response {
	return Response{Kind: ResponseNil}
}

func NewError(msg string) Response {
	return Response{Kind: ResponseError, Value: msg}
}

// Encode renders the wire form of the response, terminator included.
func (r Response) Encode() []byte {
	switch r.Kind {
	case ResponseOK:
		return []byte("OK\n")
	case ResponseValue:
		return append([]byte(r.Value), '\n')
	case ResponseNil:
		return []byte("nil\n")
	case ResponseError:
		return []byte("ERR " + r.Value + "\n")
	}
	return nil
}
