package wheel

// WheelError is a custom error type for wheel errors
type WheelError string

// Error implements the error interface
func (e WheelError) Error() string {
	return string(e)
}

const (
	ErrNoOptions      WheelError = "wheel has no options"
	ErrInvalidAngle   WheelError = "angle is not a finite number"
	ErrSpinInProgress WheelError = "wheel is already spinning"
	ErrNilConfig      WheelError = "config cannot be nil"
	ErrNilRandom      WheelError = "random source cannot be nil"
)
