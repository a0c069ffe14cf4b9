package youtube

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"html"
	"regexp"
	"strings"

	apperrors "yt-post/errors"
)

const watchURL = "https://www.youtube.com/watch?v="

// captionTrack mirrors the entries of the watch page's captionTracks list.
type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"`
}

// FetchTranscript retrieves the transcript for a video, preferring the
// requested language and falling back to whatever track the video carries.
// Returns the cleaned transcript text and the language of the chosen track.
func (c *Client) FetchTranscript(ctx context.Context, videoID, language string) (string, string, error) {
	const op = "youtube.Client.FetchTranscript"

	page, err := c.get(ctx, watchURL+videoID)
	if err != nil {
		if ctx.Err() != nil {
			return "", "", apperrors.Upstream(op, err, "transcript source timed out")
		}
		return "", "", apperrors.Upstream(op, err, "failed to reach the transcript source")
	}

	tracks, err := parseCaptionTracks(page)
	if err != nil {
		return "", "", apperrors.Upstream(op, err, "could not parse the caption track list")
	}
	if len(tracks) == 0 {
		return "", "", apperrors.TranscriptUnavailable(op, nil,
			"no transcript is available for this video")
	}

	track := pickTrack(tracks, language)

	body, err := c.get(ctx, track.BaseURL)
	if err != nil {
		if ctx.Err() != nil {
			return "", "", apperrors.Upstream(op, err, "transcript source timed out")
		}
		return "", "", apperrors.Upstream(op, err, "failed to download the transcript")
	}

	text, err := parseTimedText(body)
	if err != nil {
		return "", "", apperrors.Upstream(op, err, "could not parse the transcript")
	}
	if text == "" {
		return "", "", apperrors.TranscriptUnavailable(op, nil,
			"the transcript for this video is empty")
	}

	return text, track.LanguageCode, nil
}

// parseCaptionTracks pulls the captionTracks JSON array out of the watch
// page. An absent marker means the video has no captions (or is private or
// removed, which renders the same page without player config).
func parseCaptionTracks(page []byte) ([]captionTrack, error) {
	const marker = `"captionTracks":`

	idx := strings.Index(string(page), marker)
	if idx < 0 {
		return nil, nil
	}

	dec := json.NewDecoder(strings.NewReader(string(page[idx+len(marker):])))
	var tracks []captionTrack
	if err := dec.Decode(&tracks); err != nil {
		return nil, err
	}
	return tracks, nil
}

// pickTrack prefers an exact language match, then a prefix match so "en"
// also selects "en-US", then the first available track.
func pickTrack(tracks []captionTrack, language string) captionTrack {
	if language != "" {
		for _, t := range tracks {
			if t.LanguageCode == language {
				return t
			}
		}
		for _, t := range tracks {
			if strings.HasPrefix(t.LanguageCode, language+"-") {
				return t
			}
		}
	}
	return tracks[0]
}

type timedText struct {
	Texts []struct {
		Value string `xml:",chardata"`
	} `xml:"text"`
}

// parseTimedText concatenates the caption segments in order.
func parseTimedText(body []byte) (string, error) {
	var doc timedText
	if err := xml.Unmarshal(body, &doc); err != nil {
		return "", err
	}

	parts := make([]string, 0, len(doc.Texts))
	for _, t := range doc.Texts {
		if s := strings.TrimSpace(t.Value); s != "" {
			parts = append(parts, html.UnescapeString(s))
		}
	}

	return CleanTranscript(strings.Join(parts, " ")), nil
}

var (
	timestampPattern  = regexp.MustCompile(`\[\d+:\d+(?::\d+)?\]`)
	speakerPattern    = regexp.MustCompile(`(?m)^\s*[A-Za-z][\w ]*:\s*`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// CleanTranscript strips inline timestamps and speaker labels and collapses
// runs of whitespace.
func CleanTranscript(text string) string {
	text = timestampPattern.ReplaceAllString(text, "")
	text = speakerPattern.ReplaceAllString(text, "")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
