package youtube

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/akulsh/TutorAPI/internal/config"
	"github.com/akulsh/TutorAPI/internal/customHttpClient"
	"github.com/akulsh/TutorAPI/internal/extract"
	"github.com/akulsh/TutorAPI/pkg/logger_i"
)

// Typed failures so the handler can report something better than an
// unqualified fetch error.
var (
	ErrNoTranscript        = errors.New("no transcript available for this video")
	ErrTranscriptsDisabled = errors.New("transcripts are disabled for this video")
	ErrVideoUnavailable    = errors.New("video is private or unavailable")
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logger_i.Logger
}

func NewClient() *Client {
	return &Client{
		httpClient: customHttpClient.GetPooledClient(config.TranscriptTimeout),
		baseURL:    config.TimedTextBaseURL,
		logger:     logger_i.NewLogger("YouTube"),
	}
}

// NewTestClient points the fetcher at a stub server.
func NewTestClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger_i.NewLogger("YouTube test"),
	}
}

type trackList struct {
	Tracks []struct {
		LangCode string `xml:"lang_code,attr"`
	} `xml:"track"`
}

type timedText struct {
	Lines []struct {
		Body string `xml:",chardata"`
	} `xml:"text"`
}

// Transcript fetches the caption track for videoID, preferring the
// configured languages and falling back to whatever language is listed.
func (c *Client) Transcript(ctx context.Context, videoID string) (string, error) {
	log := c.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "videoId", videoID)

	tracks, err := c.listTracks(ctx, videoID)
	if err != nil {
		log.Error("Listing caption tracks failed", "error", err)
		return "", err
	}
	if len(tracks.Tracks) == 0 {
		return "", ErrTranscriptsDisabled
	}

	langCode := tracks.Tracks[0].LangCode //any-language fallback
	for _, preferred := range config.TranscriptLanguages {
		if hasLanguage(tracks, preferred) {
			langCode = preferred
			break
		}
	}
	log.Debug("Fetching transcript", "lang", langCode)

	body, err := c.get(ctx, url.Values{"v": {videoID}, "lang": {langCode}})
	if err != nil {
		log.Error("Fetching transcript failed", "error", err)
		return "", err
	}

	var parsed timedText
	if err := xml.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decoding transcript: %w", err)
	}

	var lines []string
	for _, line := range parsed.Lines {
		// the endpoint double-escapes entities inside the cdata
		if text := strings.TrimSpace(html.UnescapeString(line.Body)); text != "" {
			lines = append(lines, text)
		}
	}
	if len(lines) == 0 {
		return "", ErrNoTranscript
	}

	return extract.CleanText(strings.Join(lines, " ")), nil
}

func (c *Client) listTracks(ctx context.Context, videoID string) (trackList, error) {
	var tracks trackList

	body, err := c.get(ctx, url.Values{"v": {videoID}, "type": {"list"}})
	if err != nil {
		return tracks, err
	}
	if err := xml.Unmarshal(body, &tracks); err != nil {
		return tracks, fmt.Errorf("decoding track list: %w", err)
	}
	return tracks, nil
}

func (c *Client) get(ctx context.Context, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrVideoUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrVideoUnavailable, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func hasLanguage(tracks trackList, langCode string) bool {
	for _, track := range tracks.Tracks {
		if track.LangCode == langCode {
			return true
		}
	}
	return false
}
