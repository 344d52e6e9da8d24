package result

// EmptyValueError signals that an unwrap-family method was called on the
// variant that does not hold the requested payload. It marks a programming
// error at the call site, never a domain failure.
type EmptyValueError struct {
	Message string
}

func (e *EmptyValueError) Error() string {
	if e.Message == "" {
		return "result: empty value"
	}
	return "result: empty value: " + e.Message
}
