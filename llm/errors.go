package llm

import "errors"

// ErrEmptyResponse means the API call succeeded but carried no choices.
var ErrEmptyResponse = errors.New("llm: empty completion response")
