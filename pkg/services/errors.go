package services

// FetchFailedMessage is the only error text users ever see.
const FetchFailedMessage = "Failed to fetch images. Please try again."

// FetchError hides the cause of a failed fetch behind FetchFailedMessage.
// The cause stays reachable through errors.Is / errors.As.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return FetchFailedMessage
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
