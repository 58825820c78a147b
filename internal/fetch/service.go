package fetch

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/ytget/ytdl-desktop/internal/logging"
	"github.com/ytget/ytdl-desktop/internal/model"
)

// YTDLP is the Service backed by the yt-dlp executable
type YTDLP struct {
	executable string
	resolver   Resolver
}

// NewYTDLP creates a Service running executable for transfers. Metadata is
// resolved natively where possible and through yt-dlp otherwise.
func NewYTDLP(executable string, resolveTimeout time.Duration) *YTDLP {
	return &YTDLP{
		executable: executable,
		resolver:   NewChainResolver(executable, resolveTimeout),
	}
}

// Resolve returns title and items for url
func (y *YTDLP) Resolve(ctx context.Context, url string) (*model.Metadata, error) {
	return y.resolver.Resolve(ctx, url)
}

// Fetch downloads url. With IgnoreErrors set, a failing exit status is
// tolerated as long as at least one file finished: the failed items were skipped.
func (y *YTDLP) Fetch(ctx context.Context, url string, opts Options, hooks Hooks) error {
	res, err := run(ctx, y.executable, opts.Args(url), hooks)
	if err == nil {
		return nil
	}

	var exitErr *ExitError
	if opts.IgnoreErrors && errors.As(err, &exitErr) && res.finished > 0 {
		logging.FromContext(ctx).Warn("yt-dlp skipped failing items",
			zap.Int("exit_code", exitErr.Code),
			zap.Int("finished", res.finished),
			zap.String("last_error", exitErr.LastError))
		return nil
	}
	return err
}
