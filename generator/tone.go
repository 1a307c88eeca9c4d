package generator

// Tone is one of the fixed reply styles applied to the rephrasing
// instruction.
type Tone string

const (
	ToneFormal       Tone = "formal"
	ToneCasual       Tone = "casual"
	ToneFriendly     Tone = "friendly"
	ToneProfessional Tone = "professional"
	ToneEnthusiastic Tone = "enthusiastic"
)

// Tones returns the selectable tones in display order. The first entry is
// the default.
func Tones() []Tone {
	return []Tone{ToneFormal, ToneCasual, ToneFriendly, ToneProfessional, ToneEnthusiastic}
}

// DefaultTone is the tone used when the user has not picked one.
func DefaultTone() Tone {
	return ToneFormal
}

func (t Tone) Valid() bool {
	switch t {
	case ToneFormal, ToneCasual, ToneFriendly, ToneProfessional, ToneEnthusiastic:
		return true
	}
	return false
}

func (t Tone) String() string {
	return string(t)
}
