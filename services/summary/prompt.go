package summary

import (
	"fmt"
	"strings"

	"yt-post/models"
)

const systemPrompt = "You are a professional content summarizer that creates " +
	"concise, insightful summaries of video transcripts."

// The prompt keeps the transcript within a safe share of the context window.
const maxTranscriptChars = 15000

var toneDescriptions = map[models.Tone]string{
	models.ToneProfessional: "professional and authoritative",
	models.ToneCasual:       "casual and approachable",
	models.ToneEnthusiastic: "enthusiastic and energetic",
	models.ToneInformative:  "informative and matter-of-fact",
}

var audienceDescriptions = map[models.Audience]string{
	models.AudienceGeneral:   "a general audience with varied backgrounds",
	models.AudienceTechnical: "technical professionals with domain expertise",
	models.AudienceBusiness:  "business leaders and decision-makers",
	models.AudienceAcademic:  "academics and researchers",
}

// buildPrompt asks the model to answer in the fixed SUMMARY / KEY POINTS
// layout that parseResponse understands.
func buildPrompt(req *models.SummaryRequest) string {
	transcript := req.Transcript
	if len(transcript) > maxTranscriptChars {
		transcript = transcript[:maxTranscriptChars] + "..."
	}

	var b strings.Builder
	b.WriteString("Create a concise summary of a YouTube video based on its transcript.\n\n")
	if req.VideoTitle != "" {
		fmt.Fprintf(&b, "Video Title: %s\n\n", req.VideoTitle)
	}
	b.WriteString("Please create:\n")
	fmt.Fprintf(&b, "1. A summary between %d and %d words that captures the main points and insights from the video.\n",
		req.MinLength, req.MaxLength)
	b.WriteString("2. A list of 3-5 key points or takeaways from the video.\n\n")
	b.WriteString("The summary should be:\n")
	fmt.Fprintf(&b, "- Tone: %s\n", toneDescriptions[req.Tone])
	fmt.Fprintf(&b, "- Target Audience: %s\n", audienceDescriptions[req.Audience])
	b.WriteString("- Well-structured with clear paragraphs\n")
	b.WriteString("- Focused on the most valuable insights\n\n")
	b.WriteString("Format your response exactly as:\n\n")
	b.WriteString("SUMMARY:\n[Your summary here]\n\n")
	b.WriteString("KEY POINTS:\n- [Key point 1]\n- [Key point 2]\n- [Key point 3]\n\n")
	b.WriteString("Here is the transcript:\n")
	b.WriteString(transcript)

	return b.String()
}
