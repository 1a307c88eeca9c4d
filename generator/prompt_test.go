package generator

import (
	"strings"
	"testing"
)

func TestBuildReplyPrompt(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		tone       Tone
		wantSystem string
	}{
		{
			name:       "casual",
			email:      "Hi, can we reschedule?",
			tone:       ToneCasual,
			wantSystem: "Rephrase the following email in a casual tone.",
		},
		{
			name:       "formal",
			email:      "Please find attached the report.",
			tone:       ToneFormal,
			wantSystem: "Rephrase the following email in a formal tone.",
		},
		{
			name:       "enthusiastic",
			email:      "We won the bid!",
			tone:       ToneEnthusiastic,
			wantSystem: "Rephrase the following email in a enthusiastic tone.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildReplyPrompt(tt.email, tt.tone)
			if p.System != tt.wantSystem {
				t.Errorf("System = %q, want %q", p.System, tt.wantSystem)
			}
			if !strings.Contains(p.User, tt.email) {
				t.Errorf("User = %q, does not contain the email text %q", p.User, tt.email)
			}
		})
	}
}

func TestBuildReplyPromptUserPrefix(t *testing.T) {
	p := BuildReplyPrompt("hello", ToneFriendly)
	if p.User != "Email content: hello" {
		t.Errorf("User = %q, want %q", p.User, "Email content: hello")
	}
}
