package repositories

// DatabaseError reports a failed store operation. Not-found results use the
// sentinel errors instead.
type DatabaseError struct {
	Op  string
	Err error
}

func (e *DatabaseError) Error() string {
	return "failed to " + e.Op + ": " + e.Err.Error()
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}
