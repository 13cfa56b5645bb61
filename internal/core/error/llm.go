package errx

import "net/http"

// WrapLLM marks a failed completion call. The provider itself failed, not the
// shape of its output, so the error is surfaced to the caller as a bad gateway.
func WrapLLM(err error) error {
	if err == nil {
		return nil
	}
	return New(err, http.StatusBadGateway, LLMErrorMessage)
}
