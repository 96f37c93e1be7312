package errcode

// Code is a stable error identifier printed on the console by the fault path.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK Code = "ok"

	// Ownership
	BoardTaken Code = "board_taken"
	BusInUse   Code = "bus_in_use"
	LeaseLimit Code = "lease_limit"

	// Sensors
	NotConnected Code = "not_connected"
	CRC          Code = "crc_mismatch"
	Timeout      Code = "timeout"
	IOError      Code = "io_error"

	// Rendering / layout
	Capacity    Code = "capacity_exceeded"
	Overlap     Code = "region_overlap"
	OutOfBounds Code = "out_of_bounds"
	Unsupported Code = "unsupported"

	Error Code = "error" // generic fallback
)

// E keeps the failing operation and a cause alongside a Code.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Err != nil && e.Err != error(e.C) {
		s += ": " + e.Err.Error()
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Is lets errors.Is(err, SomeCode) match a wrapped *E.
func (e *E) Is(target error) bool {
	c, ok := target.(Code)
	return ok && c == e.C
}

// Wrap attaches op and a Code to err. A nil err stays nil.
func Wrap(c Code, op string, err error) error {
	if err == nil {
		return nil
	}
	return &E{C: c, Op: op, Err: err}
}

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	type unwrapper interface{ Unwrap() error }
	if u, ok := err.(unwrapper); ok {
		return Of(u.Unwrap())
	}
	return Error
}
