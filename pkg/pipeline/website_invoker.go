package pipeline

import (
	"context"
	"fmt"

	"ad-compliance-be/internal/pkg/serverutils"
	"ad-compliance-be/pkg/genai"
	"ad-compliance-be/pkg/scraper"
)

// WebsiteInvoker fetches the page text itself; there is no remote asset to
// clean up.
type WebsiteInvoker struct {
	client     genai.Client
	scraper    *scraper.Scraper
	guidelines string
}

func NewWebsiteInvoker(client genai.Client, s *scraper.Scraper, guidelines string) *WebsiteInvoker {
	return &WebsiteInvoker{
		client:     client,
		scraper:    s,
		guidelines: guidelines,
	}
}

func (i *WebsiteInvoker) Guidelines() string {
	return i.guidelines
}

func (i *WebsiteInvoker) Invoke(ctx context.Context, target, instruction string) (string, error) {
	pageText, err := i.scraper.FetchText(ctx, target)
	if err != nil {
		return "", serverutils.NewInvocationError("fetching website failed", err)
	}

	prompt := fmt.Sprintf(
		"%s\n\nWebsite content:\n%s\n\nYou must use the following guidelines for the website: %s%s",
		instruction, pageText, i.guidelines, scoringDirective,
	)

	text, err := i.client.GenerateContent(ctx, []genai.Part{genai.TextPart(prompt)})
	if err != nil {
		return "", serverutils.NewInvocationError("generation call failed", err)
	}
	return text, nil
}
