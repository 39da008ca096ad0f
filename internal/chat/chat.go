package chat

import (
	"fmt"
	"strings"

	"expert-chat/internal/persona"
)

const (
	WarningEmptyQuestion = "質問を入力してください。"
	ErrorHint            = "【開発者向け】: .envファイルにOPENAI_API_KEYが正しく設定されているか確認してください。"
)

// Exchange is one submit and its outcome. It lives for a single request.
type Exchange struct {
	Persona  persona.Persona `json:"persona"`
	Question string          `json:"question"`
	Answer   string          `json:"answer,omitempty"`
	Warning  string          `json:"warning,omitempty"`
	Errors   []string        `json:"errors,omitempty"`
	answered bool
}

// NewExchange starts an exchange for the submitted form values.
func NewExchange(p persona.Persona, question string) *Exchange {
	return &Exchange{Persona: p, Question: question}
}

// Blank reports whether the question has no visible content.
func (e *Exchange) Blank() bool {
	return strings.TrimSpace(e.Question) == ""
}

// Reject marks an empty submission; nothing is sent to the model.
func (e *Exchange) Reject() {
	e.Warning = WarningEmptyQuestion
}

// Succeed stores the answer exactly as returned.
func (e *Exchange) Succeed(answer string) {
	e.Answer = answer
	e.answered = true
}

// Fail records the user facing message plus the credential hint.
func (e *Exchange) Fail(err error) {
	e.Answer = ""
	e.answered = false
	e.Errors = []string{ErrorMessage(err), ErrorHint}
}

// HasAnswer is false for warnings, failures and pending exchanges.
func (e *Exchange) HasAnswer() bool {
	return e.answered
}

// Submitted is true once the question passed the blank check.
func (e *Exchange) Submitted() bool {
	return e.Warning == ""
}

// AnswerTitle heads the success panel.
func (e *Exchange) AnswerTitle() string {
	return fmt.Sprintf("%sからの回答:", e.Persona)
}

func ErrorMessage(err error) string {
	return fmt.Sprintf("AIの呼び出し中にエラーが発生しました: %v", err)
}
