package youtube

import (
	"context"
	"encoding/json"
	"net/url"
	"regexp"
	"strconv"

	"github.com/pkg/errors"

	apperrors "yt-post/errors"
)

const videosAPIURL = "https://www.googleapis.com/youtube/v3/videos"

// Metadata holds the fields the Data API contributes to a Transcript.
type Metadata struct {
	Title           string
	ChannelName     string
	DurationSeconds int
}

type videosResponse struct {
	Items []struct {
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
		} `json:"snippet"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
	} `json:"items"`
}

// FetchMetadata looks up title, channel and duration via the Data API v3.
func (c *Client) FetchMetadata(ctx context.Context, videoID, apiKey string) (*Metadata, error) {
	const op = "youtube.Client.FetchMetadata"

	query := url.Values{}
	query.Set("part", "snippet,contentDetails")
	query.Set("id", videoID)
	query.Set("key", apiKey)

	body, err := c.get(ctx, videosAPIURL+"?"+query.Encode())
	if err != nil {
		return nil, apperrors.Upstream(op, err, "metadata lookup failed")
	}

	var resp videosResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, apperrors.Upstream(op, err, "could not parse the metadata response")
	}
	if len(resp.Items) == 0 {
		return nil, apperrors.Upstream(op, nil, "no metadata found for this video")
	}

	item := resp.Items[0]
	duration, err := ParseISODuration(item.ContentDetails.Duration)
	if err != nil {
		c.logger.WithError(err).WithField("video_id", videoID).
			Warn("Unparseable video duration, defaulting to zero")
		duration = 0
	}

	return &Metadata{
		Title:           item.Snippet.Title,
		ChannelName:     item.Snippet.ChannelTitle,
		DurationSeconds: duration,
	}, nil
}

var isoDurationPattern = regexp.MustCompile(`^P(?:(\d+)D)?T?(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// ParseISODuration converts the Data API's ISO-8601 duration (PT#H#M#S) to
// seconds.
func ParseISODuration(s string) (int, error) {
	m := isoDurationPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, errors.Errorf("invalid ISO-8601 duration %q", s)
	}

	total := 0
	multipliers := []int{86400, 3600, 60, 1}
	for i, part := range m[1:] {
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid duration component %q", part)
		}
		total += n * multipliers[i]
	}

	return total, nil
}
