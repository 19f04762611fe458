package memhashmap

// NoRecordFound - Custom error to inform that no entry was found for a key
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no entry was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// Is - Makes errors.Is(err, NoRecordFound{}) match regardless of message
func (E NoRecordFound) Is(target error) bool {
	_, ok := target.(NoRecordFound)
	return ok
}

// InvalidArgument - Custom error to inform that an operation was called with a nil table, a destroyed
// table, a nil entry or an empty key. It is always a caller error.
type InvalidArgument struct {
	msg string
}

// Error - Used to notify about an invalid argument
func (I InvalidArgument) Error() string {
	if I.msg == "" {
		return "invalid argument"
	}
	return I.msg
}

// Is - Makes errors.Is(err, InvalidArgument{}) match regardless of message
func (I InvalidArgument) Is(target error) bool {
	_, ok := target.(InvalidArgument)
	return ok
}

// CapacityExceeded - Custom error to inform that the table can not grow any further
type CapacityExceeded struct {
	msg string
}

// Error - Used to notify that the table is at its maximum capacity
func (C CapacityExceeded) Error() string {
	if C.msg == "" {
		return "table capacity exceeded"
	}
	return C.msg
}

// Is - Makes errors.Is(err, CapacityExceeded{}) match regardless of message
func (C CapacityExceeded) Is(target error) bool {
	_, ok := target.(CapacityExceeded)
	return ok
}

// HashRange - Custom error to inform that a hash algorithm gave a bucket number or table size that the
// table can not use
type HashRange struct {
	msg string
}

// Error - Used to notify about a hash algorithm out of range
func (H HashRange) Error() string {
	if H.msg == "" {
		return "hash algorithm out of range"
	}
	return H.msg
}

// Is - Makes errors.Is(err, HashRange{}) match regardless of message
func (H HashRange) Is(target error) bool {
	_, ok := target.(HashRange)
	return ok
}
