package generator

import "fmt"

// Prompt is the pair of messages sent to the LLM: a rephrasing instruction
// followed by the email content.
type Prompt struct {
	System string
	User   string
}

// BuildReplyPrompt builds the fixed two-part prompt for one generation
// request. The instruction names the tone; the content part carries the
// literal email text.
func BuildReplyPrompt(email string, tone Tone) Prompt {
	return Prompt{
		System: fmt.Sprintf("Rephrase the following email in a %s tone.", tone),
		User:   "Email content: " + email,
	}
}
