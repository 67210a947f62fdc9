package spammer

import "errors"

// Submission failures fall into four categories. Callers branch with
// errors.Is; only a credential failure at startup is treated as fatal by
// main, everything else is contained to the attempt it occurred in.
var (
	ErrConfig       = errors.New("bad deployment config")
	ErrCredential   = errors.New("bad signing credential")
	ErrSubmission   = errors.New("transaction submission failed")
	ErrConfirmation = errors.New("transaction confirmation failed")
)
