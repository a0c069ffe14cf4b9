package models

// Tone controls the writing style requested from the generation provider.
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneCasual       Tone = "casual"
	ToneEnthusiastic Tone = "enthusiastic"
	ToneInformative  Tone = "informative"
)

func (t Tone) Valid() bool {
	switch t {
	case ToneProfessional, ToneCasual, ToneEnthusiastic, ToneInformative:
		return true
	}
	return false
}

type Audience string

const (
	AudienceGeneral   Audience = "general"
	AudienceTechnical Audience = "technical"
	AudienceBusiness  Audience = "business"
	AudienceAcademic  Audience = "academic"
)

func (a Audience) Valid() bool {
	switch a {
	case AudienceGeneral, AudienceTechnical, AudienceBusiness, AudienceAcademic:
		return true
	}
	return false
}

type Voice string

const (
	VoiceFirstPerson Voice = "first_person"
	VoiceThirdPerson Voice = "third_person"
	VoiceCompany     Voice = "company"
)

func (v Voice) Valid() bool {
	switch v {
	case VoiceFirstPerson, VoiceThirdPerson, VoiceCompany:
		return true
	}
	return false
}

// Format selects the output shape of the final formatting stage.
type Format string

const (
	FormatJSON     Format = "json"
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

func (f Format) Valid() bool {
	switch f {
	case FormatJSON, FormatText, FormatMarkdown, FormatHTML:
		return true
	}
	return false
}

// Transcript is the result of the fetch stage. When Error is set the
// transcript text is empty and must not be fed into later stages.
type Transcript struct {
	VideoID         string `json:"video_id"`
	VideoTitle      string `json:"video_title"`
	Transcript      string `json:"transcript"`
	Language        string `json:"language"`
	DurationSeconds int    `json:"duration_seconds"`
	ChannelName     string `json:"channel_name,omitempty"`
	Error           string `json:"error,omitempty"`
}

func (t *Transcript) Failed() bool { return t.Error != "" }

type Summary struct {
	Summary   string   `json:"summary"`
	WordCount int      `json:"word_count"`
	KeyPoints []string `json:"key_points"`
}

type Post struct {
	PostContent       string   `json:"post_content"`
	CharacterCount    int      `json:"character_count"`
	EstimatedReadTime string   `json:"estimated_read_time"`
	HashtagsUsed      []string `json:"hashtags_used"`
}
