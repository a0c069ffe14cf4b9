package models

// TranscriptRequest is the body of POST /api/v1/transcript.
type TranscriptRequest struct {
	YouTubeURL    string `json:"youtube_url"`
	Language      string `json:"language,omitempty"`
	YouTubeAPIKey string `json:"youtube_api_key,omitempty"`
}

// SummaryRequest is the body of POST /api/v1/summarize. Zero values for
// tone, audience and the word bounds are filled in during validation.
type SummaryRequest struct {
	Transcript   string   `json:"transcript"`
	VideoTitle   string   `json:"video_title,omitempty"`
	Tone         Tone     `json:"tone,omitempty"`
	Audience     Audience `json:"audience,omitempty"`
	MinLength    int      `json:"min_length,omitempty"`
	MaxLength    int      `json:"max_length,omitempty"`
	OpenAIAPIKey string   `json:"openai_api_key,omitempty"`
}

// PostRequest is the body of POST /api/v1/generate-post.
type PostRequest struct {
	Summary             string   `json:"summary"`
	VideoTitle          string   `json:"video_title,omitempty"`
	VideoURL            string   `json:"video_url"`
	SpeakerName         string   `json:"speaker_name,omitempty"`
	Hashtags            []string `json:"hashtags,omitempty"`
	Tone                Tone     `json:"tone,omitempty"`
	Voice               Voice    `json:"voice,omitempty"`
	Audience            Audience `json:"audience,omitempty"`
	IncludeCallToAction *bool    `json:"include_call_to_action,omitempty"`
	MaxLength           int      `json:"max_length,omitempty"`
	OpenAIAPIKey        string   `json:"openai_api_key,omitempty"`
}

// CallToAction resolves the optional flag; unset means true.
func (r *PostRequest) CallToAction() bool {
	if r.IncludeCallToAction == nil {
		return true
	}
	return *r.IncludeCallToAction
}

// OutputRequest is the body of POST /api/v1/output.
type OutputRequest struct {
	PostContent string `json:"post_content"`
	Title       string `json:"title,omitempty"`
	Format      Format `json:"format"`
}

// OutputResponse wraps the post content in the requested shape. Content is
// a map for the json format and a string for every other format.
type OutputResponse struct {
	Content interface{} `json:"content"`
	Format  Format      `json:"format"`
}
