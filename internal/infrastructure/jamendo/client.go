package jamendo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-diary-api/internal/domain/entity"
)

const DefaultBaseURL = "https://api.jamendo.com/v3.0"

// ErrTrackNotFound is returned by Track when the catalog has no such id.
var ErrTrackNotFound = errors.New("track not found")

type Client struct {
	baseURL    string
	clientID   string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewClient(baseURL, clientID string, logger *logrus.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		clientID: clientID,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

type trackResult struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ArtistName    string `json:"artist_name"`
	Duration      int    `json:"duration"`
	Audio         string `json:"audio"`
	AudioDownload string `json:"audiodownload"`
	Image         string `json:"image"`
	AlbumImage    string `json:"album_image"`
	AlbumName     string `json:"album_name"`
}

type tracksResponse struct {
	Headers struct {
		Status       string `json:"status"`
		Code         int    `json:"code"`
		ErrorMessage string `json:"error_message"`
	} `json:"headers"`
	Results []trackResult `json:"results"`
}

func (t trackResult) toTrack() entity.Track {
	image := t.Image
	if image == "" {
		image = t.AlbumImage
	}
	return entity.Track{
		ID:            t.ID,
		Name:          t.Name,
		Artist:        t.ArtistName,
		Duration:      t.Duration,
		Audio:         t.Audio,
		AudioDownload: t.AudioDownload,
		Image:         image,
		Album:         t.AlbumName,
	}
}

func (c *Client) tracks(ctx context.Context, params url.Values) ([]entity.Track, error) {
	params.Set("client_id", c.clientID)
	params.Set("format", "json")
	params.Set("include", "musicinfo stats licenses")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/tracks/?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if c.logger != nil {
			c.logger.WithField("status", resp.StatusCode).Warn("jamendo api error")
		}
		return nil, fmt.Errorf("jamendo api error: status %d", resp.StatusCode)
	}

	var parsed tracksResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if parsed.Headers.Code != 0 {
		return nil, fmt.Errorf("jamendo api error: %d %s", parsed.Headers.Code, parsed.Headers.ErrorMessage)
	}

	out := make([]entity.Track, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		out = append(out, r.toTrack())
	}
	return out, nil
}

// Search queries the catalog, one result per artist.
func (c *Client) Search(ctx context.Context, q string, limit int) ([]entity.Track, error) {
	params := url.Values{}
	params.Set("search", q)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("groupby", "artist_id")
	return c.tracks(ctx, params)
}

func (c *Client) Track(ctx context.Context, id string) (*entity.Track, error) {
	params := url.Values{}
	params.Set("id", id)
	res, err := c.tracks(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(res) == 0 {
		return nil, ErrTrackNotFound
	}
	return &res[0], nil
}
