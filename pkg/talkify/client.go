// Package talkify is a thin client for the Talkify text-to-speech web API:
// speech synthesis, the voice catalog, and language detection. It issues one
// HTTP request per call and hands failures straight back to the caller.
package talkify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the production Talkify API host.
const DefaultBaseURL = "https://talkify.net/api"

const (
	speechPath = "speech/v1"
	voicesPath = "speech/v1/voices"
	detectPath = "language/v1/detect"
)

// Fallback messages used when the transport gives us no status text.
const (
	speechFallbackMsg = "Could not synthesize the audio"
	voicesFallbackMsg = "Could not fetch the voices list"
	detectFallbackMsg = "Could not fetch the language detection response"
)

// Text-type codes the speech endpoint expects. The encoding is numeric on the
// wire even though the option is a boolean.
const (
	textTypePlain  = 0
	textTypeMarkup = 1
)

// Client talks to the Talkify API. It holds no mutable state after
// construction, so one Client is safe to share across goroutines. Streams
// returned by Speech are owned by the caller.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	defaults   SpeechOptions
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL points the client at a different API host.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient sets a custom HTTP client. Timeouts and cancellation are the
// transport's business; the library imposes none of its own.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient validates cfg and returns a ready Client. It fails with a
// KindKeyMissing error when no API key is supplied and a KindValidation error
// when a default option is out of range.
func NewClient(cfg Config, opts ...ClientOption) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, newKeyMissingError()
	}
	if err := validate(cfg.SpeechOptions); err != nil {
		return nil, err
	}

	defaults := cfg.SpeechOptions
	if defaults.Format == "" {
		defaults.Format = FormatMP3
	}
	if defaults.UseMarkup == nil {
		defaults.UseMarkup = Bool(true)
	}

	c := &Client{
		apiKey:     cfg.APIKey,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{},
		defaults:   defaults,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// speechRequest is the wire shape of the synthesis endpoint.
type speechRequest struct {
	Text             string `json:"Text"`
	Format           string `json:"Format,omitempty"`
	FallbackLanguage string `json:"FallbackLanguage,omitempty"`
	Voice            string `json:"Voice,omitempty"`
	Rate             *int   `json:"Rate,omitempty"`
	TextType         int    `json:"TextType"`
	Whisper          *bool  `json:"Whisper,omitempty"`
	Soft             *bool  `json:"Soft,omitempty"`
	Volume           *int   `json:"Volume,omitempty"`
	WordBreakMs      *int   `json:"WordBreakMs,omitempty"`
	Pitch            *int   `json:"Pitch,omitempty"`
}

// Speech synthesizes text and returns the raw audio stream unconsumed. The
// caller must drain and close it; the client does no buffering or decoding.
// Fields set in opts shadow the client defaults for this call only.
func (c *Client) Speech(ctx context.Context, text string, opts SpeechOptions) (io.ReadCloser, error) {
	if err := validate(opts); err != nil {
		return nil, err
	}
	resolved := merge(c.defaults, opts)

	textType := textTypePlain
	if resolved.UseMarkup != nil && *resolved.UseMarkup {
		textType = textTypeMarkup
	}

	payload := speechRequest{
		Text:             text,
		Format:           resolved.Format,
		FallbackLanguage: resolved.FallbackLanguage,
		Rate:             resolved.Rate,
		TextType:         textType,
		Whisper:          resolved.Whisper,
		Soft:             resolved.Soft,
		Volume:           resolved.Volume,
		WordBreakMs:      resolved.WordBreakMs,
		Pitch:            resolved.Pitch,
	}
	if resolved.Voice != nil {
		payload.Voice = resolved.Voice.voiceName()
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, newRequestError(speechFallbackMsg, 0, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+speechPath, bytes.NewReader(body))
	if err != nil {
		return nil, newRequestError(speechFallbackMsg, 0, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return nil, newRequestError(speechFallbackMsg, 0, err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		defer resp.Body.Close()
		return nil, classifyResponse(resp, speechFallbackMsg)
	}
	return resp.Body, nil
}

// AvailableVoices fetches the voice catalog. When languageFilter is non-empty
// only voices whose language matches case-insensitively are returned, in the
// order the service listed them.
func (c *Client) AvailableVoices(ctx context.Context, languageFilter string) ([]Voice, error) {
	query := url.Values{"key": {c.apiKey}}
	resp, err := c.get(ctx, voicesPath, query, voicesFallbackMsg)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var records []wireVoice
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, newRequestError(voicesFallbackMsg, 0, err)
	}

	voices := make([]Voice, 0, len(records))
	for _, record := range records {
		if languageFilter != "" && !strings.EqualFold(record.Language, languageFilter) {
			continue
		}
		voices = append(voices, record.normalize())
	}
	return voices, nil
}

// detectResponse is the wire shape of the language detection endpoint. A
// Language code of -1 means no confident detection.
type detectResponse struct {
	SpecialCharacters []string `json:"SpecialCharacters"`
	Language          int      `json:"Language"`
	Cultures          []string `json:"Cultures"`
	LanguageName      string   `json:"LanguageName"`
}

const noLanguageDetected = -1

// DetectLanguage asks the service which language text is written in. It
// returns (nil, nil) when the service reports no confident detection.
func (c *Client) DetectLanguage(ctx context.Context, text string) (*Language, error) {
	query := url.Values{"text": {text}, "key": {c.apiKey}}
	resp, err := c.get(ctx, detectPath, query, detectFallbackMsg)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var detected detectResponse
	if err := json.NewDecoder(resp.Body).Decode(&detected); err != nil {
		return nil, newRequestError(detectFallbackMsg, 0, err)
	}
	if detected.Language == noLanguageDetected {
		return nil, nil
	}
	return &Language{
		Name:     detected.LanguageName,
		Cultures: detected.Cultures,
	}, nil
}

// get issues a read request. The API key rides in the query string here on top
// of the x-api-key header; the live service expects both on its GET endpoints.
func (c *Client) get(ctx context.Context, path string, query url.Values, fallbackMsg string) (*http.Response, error) {
	endpoint := fmt.Sprintf("%s/%s?%s", c.baseURL, path, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, newRequestError(fallbackMsg, 0, err)
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, newRequestError(fallbackMsg, 0, err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		defer resp.Body.Close()
		return nil, classifyResponse(resp, fallbackMsg)
	}
	return resp, nil
}

// do attaches the API key header and runs the request.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("x-api-key", c.apiKey)

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug().Err(err).Str("method", req.Method).Str("url", req.URL.Path).Msg("request to talkify failed")
		return nil, err
	}
	log.Debug().Dur("request_time", time.Since(requestStart)).Str("method", req.Method).Str("url", req.URL.Path).Int("status_code", resp.StatusCode).Msg("request done")
	return resp, nil
}

// classifyResponse turns a non-success response into a request Error, keeping
// the transport's own status text when it supplies one.
func classifyResponse(resp *http.Response, fallbackMsg string) *Error {
	message := statusText(resp)
	if message == "" {
		message = fallbackMsg
	}
	return newRequestError(message, resp.StatusCode, nil)
}

// statusText extracts the reason phrase from a response Status line, which is
// formatted like "404 Not Found".
func statusText(resp *http.Response) string {
	text := strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode))
	return strings.TrimSpace(text)
}
