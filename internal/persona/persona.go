// Package persona holds the closed set of experts a question can be addressed
// to and the fixed system prompt each one speaks with.
package persona

// Persona is the value submitted by the expert radio group.
type Persona string

const (
	HealthAdvisor    Persona = "健康アドバイザー"
	CareerConsultant Persona = "キャリアコンサルタント"
)

const (
	healthAdvisorPrompt    = "あなたは優秀な健康アドバイザーです。ユーザーの質問に対して、健康的で実践的なアドバイスを簡潔に提供してください。"
	careerConsultantPrompt = "あなたは経験豊富なキャリアコンサルタントです。ユーザーのキャリアに関する悩みや質問に対し、具体的で前向きな助言を簡潔に行ってください。"

	// FallbackPrompt is used for any value outside the known set.
	FallbackPrompt = "あなたは親切なアシスタントです。"
)

var systemPrompts = map[Persona]string{
	HealthAdvisor:    healthAdvisorPrompt,
	CareerConsultant: careerConsultantPrompt,
}

// All returns the personas in the order they are offered on the page.
func All() []Persona {
	return []Persona{HealthAdvisor, CareerConsultant}
}

// Default is the preselected choice.
func Default() Persona {
	return HealthAdvisor
}

// Known reports whether p is one of the offered personas.
func (p Persona) Known() bool {
	_, ok := systemPrompts[p]
	return ok
}

// SystemPrompt never fails: unknown values get FallbackPrompt.
func (p Persona) SystemPrompt() string {
	if prompt, ok := systemPrompts[p]; ok {
		return prompt
	}
	return FallbackPrompt
}

func (p Persona) String() string {
	return string(p)
}
