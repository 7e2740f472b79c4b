package advisor

import (
	"context"
	"sync"
	"time"

	genai "google.golang.org/genai"

	"github.com/tacworldhq/storefront-backend/pkg/config"
	"github.com/tacworldhq/storefront-backend/pkg/logger"
	"github.com/tacworldhq/storefront-backend/pkg/metrics"
)

// Preview is a generated holster image payload.
type Preview struct {
	MIMEType string `json:"mime_type"`
	Data     []byte `json:"data"`
}

// chatTransport is one multi-turn conversation against the backend. The
// transport owns the history; Send replays it implicitly.
type chatTransport interface {
	Send(ctx context.Context, text string) (string, error)
}

// imageTransport is the one-shot image generation surface.
type imageTransport interface {
	Generate(ctx context.Context, prompt string) (*Preview, error)
}

// Client wraps the generative backend behind the two advisory operations the
// storefront needs. All transport failures are absorbed here and converted to
// in-band fallback values; callers never see an error from a Send or a
// GeneratePreview.
type Client struct {
	newChat func() chatTransport
	image   imageTransport
	met     *metrics.AdvisorMetrics
	logg    *logger.Logger
	timeout time.Duration
}

// NewClient builds the advisory client on the official genai SDK.
func NewClient(ctx context.Context, cfg config.GeminiConfig, logg *logger.Logger, met *metrics.AdvisorMetrics) (*Client, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	chatConfig := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr(cfg.Temperature),
	}

	return &Client{
		newChat: func() chatTransport {
			return &geminiChat{cli: cli, model: cfg.ChatModel, config: chatConfig}
		},
		image:   &geminiImage{cli: cli, model: cfg.ImageModel},
		met:     met,
		logg:    logg,
		timeout: cfg.CallTimeout,
	}, nil
}

// StartSession creates a fresh advisory conversation seeded with the scripted
// greeting. Creation never fails; backend trouble surfaces at send time as a
// fallback reply.
func (c *Client) StartSession() *Session {
	s := newSession(c.newChat(), c.met, c.logg, c.timeout)
	return s
}

// GeneratePreview asks the backend for a studio shot of a holster molded for
// the given firearm. A nil return means "no preview available" and is the
// defined value for every failure mode, including imageless responses.
func (c *Client) GeneratePreview(ctx context.Context, manufacturer, model string) *Preview {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	preview, err := c.image.Generate(ctx, previewPrompt(manufacturer, model))
	c.met.ObserveDuration("image_preview", time.Since(start))

	if err != nil {
		c.met.IncFallback("image_preview")
		if c.logg != nil {
			c.logg.Warn(c.logg.WithFields(ctx, map[string]any{
				"manufacturer": manufacturer,
				"model":        model,
				"error":        err.Error(),
			}), "advisor.image_preview.failed")
		}
		return nil
	}
	if preview == nil {
		c.met.IncFallback("image_preview")
		return nil
	}
	c.met.IncSuccess("image_preview")
	return preview
}

type geminiChat struct {
	cli    *genai.Client
	model  string
	config *genai.GenerateContentConfig

	mu   sync.Mutex
	chat *genai.Chat
}

func (g *geminiChat) Send(ctx context.Context, text string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	// The underlying chat is created lazily so session creation itself never
	// touches the network.
	if g.chat == nil {
		chat, err := g.cli.Chats.Create(ctx, g.model, g.config, nil)
		if err != nil {
			return "", err
		}
		g.chat = chat
	}

	resp, err := g.chat.SendMessage(ctx, genai.Part{Text: text})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

type geminiImage struct {
	cli   *genai.Client
	model string
}

func (g *geminiImage) Generate(ctx context.Context, prompt string) (*Preview, error) {
	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		&genai.GenerateContentConfig{ResponseModalities: []string{"TEXT", "IMAGE"}},
	)
	if err != nil {
		return nil, err
	}
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return &Preview{MIMEType: part.InlineData.MIMEType, Data: part.InlineData.Data}, nil
			}
		}
	}
	return nil, nil
}
