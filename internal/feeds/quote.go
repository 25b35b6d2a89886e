package feeds

import (
	"context"
	"math/rand/v2"

	"github.com/MaulanaR/zendash/internal/config"
	"github.com/MaulanaR/zendash/internal/logger"
	"github.com/MaulanaR/zendash/internal/utils"
	"github.com/MaulanaR/zendash/models"
)

// fallbackQuotes are served whenever the remote quote API is unreachable.
// Text and author are fixed pairs; a fallback never mixes one quote's text
// with another's author.
var fallbackQuotes = []models.Quote{
	{Text: "Kesuksesan adalah kemampuan untuk bangkit kembali dari kegagalan.", Author: "Winston Churchill"},
	{Text: "Jangan menunggu kesempurnaan. Mulai dengan apa yang Anda miliki.", Author: "Anonymous"},
	{Text: "Kegagalan adalah bumbu yang membuat kesuksesan terasa lebih manis.", Author: "Anonymous"},
	{Text: "Hari ini adalah hadiah, itulah mengapa disebut sebagai masa kini.", Author: "Eleanor Roosevelt"},
	{Text: "Satu langkah kecil setiap hari akan membawa Anda ke tempat yang Anda inginkan.", Author: "Anonymous"},
}

// QuoteFeed fetches the quote of the moment from a random-quote service.
type QuoteFeed struct {
	client *utils.HTTPClient
	cfg    config.Feeds
	logger *logger.Logger
}

func NewQuoteFeed(client *utils.HTTPClient, cfg config.Feeds, log *logger.Logger) *QuoteFeed {
	return &QuoteFeed{client: client, cfg: cfg, logger: log}
}

// Fetch returns a quote. Any transport or status failure degrades to a
// random local quote; Fetch itself never fails.
func (q *QuoteFeed) Fetch(ctx context.Context) models.Quote {
	log := logger.FromContext(ctx)

	var quote models.Quote
	resp, err := q.client.R().
		SetContext(ctx).
		SetResult(&quote).
		Get(q.cfg.QuoteBaseURL + "/quotes/random")
	if err != nil {
		log.Warn().Err(err).
			Str("func", "QuoteFeed.Fetch").
			Msg("quote fetch failed, using local fallback")
		return FallbackQuote()
	}
	if !resp.IsSuccess() || quote.Text == "" {
		log.Warn().
			Str("func", "QuoteFeed.Fetch").
			Int("status", resp.StatusCode()).
			Msg("quote feed returned unusable response, using local fallback")
		return FallbackQuote()
	}

	return quote
}

// FallbackQuote returns a uniformly random local quote.
func FallbackQuote() models.Quote {
	return fallbackQuotes[rand.IntN(len(fallbackQuotes))]
}
