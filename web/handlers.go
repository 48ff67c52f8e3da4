package web

import (
	"context"
	"errors"
	"time"

	"github.com/oarkflow/frame"
	"github.com/oarkflow/frame/middlewares/server/cors"
	"github.com/oarkflow/frame/middlewares/server/monitor"
	"github.com/oarkflow/frame/pkg/common/utils"
	"github.com/oarkflow/frame/pkg/protocol/consts"
	"github.com/oarkflow/frame/pkg/route"
	"github.com/oarkflow/frame/server"
	"github.com/oarkflow/log"
	"github.com/oarkflow/xid"

	"github.com/oarkflow/porter"
	"github.com/oarkflow/porter/janitor"
	"github.com/oarkflow/porter/tokenizer"
)

const requestIDKey = "request_id"

var ErrNoWords = errors.New("no words provided")

type StemController struct {
	config  *porter.Config
	stemmer *tokenizer.CachedStemmer
	janitor *janitor.Janitor
}

// NewStemController merges cfg over the defaults and, when a cleanup period
// is set, starts a janitor that empties the stem cache on that period.
func NewStemController(cfg *porter.Config) *StemController {
	cfg = porter.MergeConfigs(porter.DefaultConfig(), cfg)
	f := &StemController{
		config:  cfg,
		stemmer: tokenizer.NewCachedStemmer(cfg.CacheSize, porter.Stem),
	}
	if cfg.CleanupPeriod > 0 {
		f.janitor = janitor.New("stem-cache", f.stemmer, cfg.CleanupPeriod)
		f.janitor.Start()
	}
	return f
}

func (f *StemController) Close() {
	if f.janitor != nil {
		f.janitor.Stop()
	}
}

func (f *StemController) stem(word string) (StemResponse, error) {
	stemmed, err := f.stemmer.Stem(word)
	if err != nil {
		return StemResponse{}, err
	}
	return StemResponse{Word: word, Stem: stemmed}, nil
}

func (f *StemController) stemWords(words []string) ([]porter.Result, error) {
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	return porter.StemBatch(words, f.config.Workers), nil
}

func (f *StemController) tokenize(req TokenizeRequest) (TokenizeResponse, error) {
	tokens, err := tokenizer.Tokenize(&tokenizer.TokenizeParams{
		Text:            req.Text,
		Language:        tokenizer.Language(req.Language),
		AllowDuplicates: req.AllowDuplicates || f.config.AllowDuplicates,
	}, &tokenizer.Config{
		EnableStemming:  f.config.EnableStemming,
		EnableStopWords: f.config.EnableStopWords,
		Stemmer:         f.stemmer.Stem,
	})
	if err != nil {
		return TokenizeResponse{}, err
	}
	return TokenizeResponse{Tokens: tokens, Count: len(tokens)}, nil
}

func measure(word string) (MeasureResponse, error) {
	body, err := porter.Normalize([]byte(word))
	if err != nil {
		return MeasureResponse{}, err
	}
	return MeasureResponse{Word: string(body), Measure: porter.Measure(body)}, nil
}

func (f *StemController) Stem(_ context.Context, ctx *frame.Context) {
	word := ctx.Param("word")
	res, err := f.stem(word)
	if err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), utils.H{"word": word})
		return
	}
	Success(ctx, consts.StatusOK, res)
}

func (f *StemController) StemBatch(_ context.Context, ctx *frame.Context) {
	var req StemRequest
	if err := ctx.Bind(&req); err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	results, err := f.stemWords(req.Words)
	if err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	if porter.Failed(results) {
		Success(ctx, consts.StatusOK, results, "Some words could not be stemmed")
		return
	}
	Success(ctx, consts.StatusOK, results)
}

func (f *StemController) Tokenize(_ context.Context, ctx *frame.Context) {
	var req TokenizeRequest
	if err := ctx.Bind(&req); err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	res, err := f.tokenize(req)
	if err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), utils.H{"language": req.Language})
		return
	}
	Success(ctx, consts.StatusOK, res)
}

func (f *StemController) Measure(_ context.Context, ctx *frame.Context) {
	word := ctx.Param("word")
	res, err := measure(word)
	if err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), utils.H{"word": word})
		return
	}
	Success(ctx, consts.StatusOK, res)
}

func (f *StemController) cacheStats() CacheStats {
	return CacheStats{Entries: f.stemmer.Len(), Evictions: f.stemmer.Evictions()}
}

func (f *StemController) CacheStats(_ context.Context, ctx *frame.Context) {
	Success(ctx, consts.StatusOK, f.cacheStats())
}

func (f *StemController) ForgetWord(_ context.Context, ctx *frame.Context) {
	word := ctx.Param("word")
	if err := f.stemmer.Forget(word); err != nil {
		Failed(ctx, consts.StatusNotFound, err.Error(), utils.H{"word": word})
		return
	}
	Success(ctx, consts.StatusOK, utils.H{"word": word}, "Word removed from cache")
}

func (f *StemController) ClearCache(_ context.Context, ctx *frame.Context) {
	n := f.stemmer.Purge()
	Success(ctx, consts.StatusOK, utils.H{"purged": n}, "Cache cleared...")
}

// RequestLogger tags every request with an xid and logs it once the
// handler chain has finished.
func RequestLogger() func(c context.Context, ctx *frame.Context) {
	return func(c context.Context, ctx *frame.Context) {
		id := xid.New().String()
		start := time.Now()
		ctx.Set(requestIDKey, id)
		ctx.Response.Header.Set("X-Request-ID", id)
		ctx.Next(c)
		log.Info().
			Str("request_id", id).
			Str("method", string(ctx.Method())).
			Str("path", string(ctx.Path())).
			Int("status", ctx.Response.StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("Handled request")
	}
}

func StemRoutes(route route.IRouter, controller *StemController) route.IRouter {
	route.GET("/stem/:word", controller.Stem)
	route.POST("/stem", controller.StemBatch)
	route.POST("/tokenize", controller.Tokenize)
	route.GET("/measure/:word", controller.Measure)
	route.GET("/cache", controller.CacheStats)
	route.DELETE("/cache/:word", controller.ForgetWord)
	route.POST("/cache/clear", controller.ClearCache)
	return route
}

func StartServer(cfg *porter.Config) {
	controller := NewStemController(cfg)
	defer controller.Close()
	cfg = controller.config
	srv := server.New(
		server.WithDisablePrintRoute(true),
		server.WithHostPorts(cfg.Addr()),
		server.WithHandleMethodNotAllowed(true),
		server.WithStreamBody(true),
	)
	srv.Use(cors.Default(), RequestLogger())
	srv.GET("/monitor", monitor.New())
	StemRoutes(srv.Group(cfg.RoutePrefix), controller)
	log.Info().Str("addr", cfg.Addr()).Str("prefix", cfg.RoutePrefix).Msg("Starting stem server")
	srv.Spin()
}
