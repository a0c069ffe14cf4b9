package handlers

import (
	"github.com/gofiber/fiber/v2"

	"yt-post/models"
)

// Tool manifest types, shaped for programmatic discovery by an
// orchestrating agent.
type toolProperty struct {
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Enum        []string `json:"enum,omitempty"`
}

type toolParameters struct {
	Type       string                  `json:"type"`
	Properties map[string]toolProperty `json:"properties"`
	Required   []string                `json:"required"`
}

type toolFunction struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  toolParameters `json:"parameters"`
}

type tool struct {
	Type     string       `json:"type"`
	Function toolFunction `json:"function"`
}

type toolManifest struct {
	SchemaVersion       string `json:"schema_version"`
	NameForHuman        string `json:"name_for_human"`
	NameForModel        string `json:"name_for_model"`
	DescriptionForHuman string `json:"description_for_human"`
	DescriptionForModel string `json:"description_for_model"`
	Tools               []tool `json:"tools"`
}

func enumValues[T ~string](values ...T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

var manifest = toolManifest{
	SchemaVersion:       "v1",
	NameForHuman:        "YouTube to LinkedIn Post Generator",
	NameForModel:        "yt_post",
	DescriptionForHuman: "Generate LinkedIn posts from YouTube videos",
	DescriptionForModel: "This service extracts transcripts from YouTube videos, " +
		"summarizes them, and generates LinkedIn posts.",
	Tools: []tool{
		{
			Type: "function",
			Function: toolFunction{
				Name:        "extract_transcript",
				Description: "Extract transcript and metadata from a YouTube video",
				Parameters: toolParameters{
					Type: "object",
					Properties: map[string]toolProperty{
						"youtube_url": {Type: "string", Description: "URL or ID of the YouTube video"},
						"language":    {Type: "string", Description: "Preferred transcript language code (default: en)"},
						"youtube_api_key": {
							Type:        "string",
							Description: "Optional YouTube Data API key for metadata enrichment",
						},
					},
					Required: []string{"youtube_url"},
				},
			},
		},
		{
			Type: "function",
			Function: toolFunction{
				Name:        "generate_summary",
				Description: "Generate a summary and key points from a video transcript",
				Parameters: toolParameters{
					Type: "object",
					Properties: map[string]toolProperty{
						"transcript":  {Type: "string", Description: "Video transcript text"},
						"video_title": {Type: "string", Description: "Title of the video"},
						"tone": {
							Type:        "string",
							Description: "Tone of the summary",
							Enum: enumValues(models.ToneProfessional, models.ToneCasual,
								models.ToneEnthusiastic, models.ToneInformative),
						},
						"audience": {
							Type:        "string",
							Description: "Target audience",
							Enum: enumValues(models.AudienceGeneral, models.AudienceTechnical,
								models.AudienceBusiness, models.AudienceAcademic),
						},
						"min_length":     {Type: "integer", Description: "Minimum summary length in words"},
						"max_length":     {Type: "integer", Description: "Maximum summary length in words"},
						"openai_api_key": {Type: "string", Description: "Optional OpenAI API key"},
					},
					Required: []string{"transcript"},
				},
			},
		},
		{
			Type: "function",
			Function: toolFunction{
				Name:        "generate_post",
				Description: "Generate a LinkedIn post from a video summary",
				Parameters: toolParameters{
					Type: "object",
					Properties: map[string]toolProperty{
						"summary":      {Type: "string", Description: "Video summary text"},
						"video_title":  {Type: "string", Description: "Title of the video"},
						"video_url":    {Type: "string", Description: "URL of the video"},
						"speaker_name": {Type: "string", Description: "Optional speaker or creator name"},
						"hashtags":     {Type: "array", Description: "Hashtags to weave into the post"},
						"tone": {
							Type:        "string",
							Description: "Tone of the post",
							Enum: enumValues(models.ToneProfessional, models.ToneCasual,
								models.ToneEnthusiastic, models.ToneInformative),
						},
						"voice": {
							Type:        "string",
							Description: "Voice of the post",
							Enum: enumValues(models.VoiceFirstPerson, models.VoiceThirdPerson,
								models.VoiceCompany),
						},
						"audience": {
							Type:        "string",
							Description: "Target audience",
							Enum: enumValues(models.AudienceGeneral, models.AudienceTechnical,
								models.AudienceBusiness, models.AudienceAcademic),
						},
						"include_call_to_action": {Type: "boolean", Description: "Append a soft call to action"},
						"max_length":             {Type: "integer", Description: "Maximum post length in characters"},
						"openai_api_key":         {Type: "string", Description: "Optional OpenAI API key"},
					},
					Required: []string{"summary", "video_url"},
				},
			},
		},
		{
			Type: "function",
			Function: toolFunction{
				Name:        "format_output",
				Description: "Format a generated post for delivery",
				Parameters: toolParameters{
					Type: "object",
					Properties: map[string]toolProperty{
						"post_content": {Type: "string", Description: "Generated post content"},
						"title":        {Type: "string", Description: "Optional heading for markdown and html output"},
						"format": {
							Type:        "string",
							Description: "Output format",
							Enum: enumValues(models.FormatJSON, models.FormatText,
								models.FormatMarkdown, models.FormatHTML),
						},
					},
					Required: []string{"post_content"},
				},
			},
		},
	},
}

// ListTools handles GET /list-tools.
func ListTools(c *fiber.Ctx) error {
	return c.JSON(manifest)
}
