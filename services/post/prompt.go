package post

import (
	"fmt"
	"strings"

	"yt-post/models"
)

const systemPrompt = "You are a professional content creator specializing in " +
	"LinkedIn posts that drive engagement."

var toneDescriptions = map[models.Tone]string{
	models.ToneProfessional: "professional and authoritative",
	models.ToneCasual:       "casual and approachable",
	models.ToneEnthusiastic: "enthusiastic and energetic",
	models.ToneInformative:  "informative and matter-of-fact",
}

var voiceDescriptions = map[models.Voice]string{
	models.VoiceFirstPerson: "first person (I, we, my, our)",
	models.VoiceThirdPerson: "third person (objective, reporting style)",
	models.VoiceCompany:     "a company's collective voice (our team, we at the company)",
}

var audienceDescriptions = map[models.Audience]string{
	models.AudienceGeneral:   "general professionals on LinkedIn",
	models.AudienceTechnical: "technical professionals and specialists",
	models.AudienceBusiness:  "business leaders and decision-makers",
	models.AudienceAcademic:  "academics and researchers",
}

func buildPrompt(req *models.PostRequest, hashtags []string) string {
	var b strings.Builder
	b.WriteString("Create an engaging LinkedIn post based on a YouTube video summary.\n\n")
	if req.VideoTitle != "" {
		fmt.Fprintf(&b, "Video Title: %s\n", req.VideoTitle)
	}
	fmt.Fprintf(&b, "Video URL: %s\n", req.VideoURL)
	if req.SpeakerName != "" {
		fmt.Fprintf(&b, "The speaker/creator of the video is: %s\n", req.SpeakerName)
	}
	b.WriteString("\nPost requirements:\n")
	fmt.Fprintf(&b, "- Maximum length: %d characters\n", req.MaxLength)
	fmt.Fprintf(&b, "- Tone: %s\n", toneDescriptions[req.Tone])
	fmt.Fprintf(&b, "- Voice: %s\n", voiceDescriptions[req.Voice])
	fmt.Fprintf(&b, "- Target Audience: %s\n", audienceDescriptions[req.Audience])
	b.WriteString("- Structure: start with an engaging hook, share insights from the video, end with a thought-provoking question\n")
	b.WriteString("- Include the video URL somewhere in the post\n")
	if len(hashtags) > 0 {
		fmt.Fprintf(&b, "- Include these hashtags, preferably at the end: %s\n",
			strings.Join(hashtags, ", "))
	}
	if req.CallToAction() {
		b.WriteString("- Include a soft call to action at the end (asking for thoughts, suggesting to watch the video)\n")
	}
	b.WriteString("\nHere is the summary of the video:\n")
	b.WriteString(req.Summary)

	return b.String()
}
