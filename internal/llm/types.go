package llm

import "errors"

// ErrEmptyResponse is returned when the completion carries no choice to read.
var ErrEmptyResponse = errors.New("llm returned no choices")

// questionVar is the human-turn template variable.
const questionVar = "user_question"
