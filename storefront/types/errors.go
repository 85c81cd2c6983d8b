package types

// PermanentError represents an error that should not be retried
type PermanentError struct {
	Msg string
}

func (e *PermanentError) Error() string {
	return e.Msg
}

// ValidationError represents malformed entity construction. It is not retried.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// InvalidQuantityError is returned when a non-positive quantity reaches a stock or pricing operation
type InvalidQuantityError struct {
	Quantity int
}

func (e *InvalidQuantityError) Error() string {
	return "quantity must be positive"
}

// InvalidConfigurationError is returned when a pricing strategy is built with out-of-range settings
type InvalidConfigurationError struct {
	Msg string
}

func (e *InvalidConfigurationError) Error() string {
	return e.Msg
}

// InvalidInputError is returned when a caller-supplied pricing parameter is out of range
type InvalidInputError struct {
	Msg string
}

func (e *InvalidInputError) Error() string {
	return e.Msg
}
