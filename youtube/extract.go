package youtube

import (
	"net/url"
	"regexp"
	"strings"

	apperrors "yt-post/errors"
)

// videoIDPattern matches the short-code shape YouTube assigns to videos.
var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{6,16}$`)

// ExtractVideoID resolves a video URL or bare identifier to the canonical
// video ID. Accepted URL forms: watch?v=, youtu.be/, /embed/, /v/, /shorts/
// and /live/.
func ExtractVideoID(ref string) (string, error) {
	const op = "youtube.ExtractVideoID"

	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", apperrors.InvalidReference(op, nil, "video reference is required")
	}

	// Bare identifiers pass through unchanged.
	if videoIDPattern.MatchString(ref) {
		return ref, nil
	}

	parsed, err := url.Parse(ref)
	if err != nil {
		return "", apperrors.InvalidReference(op, err, "could not parse video reference")
	}

	host := strings.TrimPrefix(parsed.Hostname(), "www.")
	var id string

	switch host {
	case "youtu.be":
		id = firstPathSegment(parsed.Path)
	case "youtube.com", "m.youtube.com", "music.youtube.com":
		switch {
		case parsed.Path == "/watch":
			id = parsed.Query().Get("v")
		case strings.HasPrefix(parsed.Path, "/embed/"),
			strings.HasPrefix(parsed.Path, "/v/"),
			strings.HasPrefix(parsed.Path, "/shorts/"),
			strings.HasPrefix(parsed.Path, "/live/"):
			id = secondPathSegment(parsed.Path)
		}
	}

	if !videoIDPattern.MatchString(id) {
		return "", apperrors.InvalidReference(op, nil,
			"could not extract a video ID from the reference")
	}

	return id, nil
}

func firstPathSegment(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) == 0 {
		return ""
	}
	return segments[0]
}

func secondPathSegment(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) < 2 {
		return ""
	}
	return segments[1]
}
