package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/datacounter"
)

type Downloader struct {
	Client   *http.Client
	Attempts uint
	Delay    time.Duration
	MaxDelay time.Duration
}

func NewDownloader() *Downloader {
	return &Downloader{
		Client: &http.Client{
			Timeout: time.Minute,
		},
		Attempts: 5,
		Delay:    time.Second,
		MaxDelay: 30 * time.Second,
	}
}

// Download fetches url with the default Downloader.
func Download(ctx context.Context, url string, w io.Writer) (uint64, error) {
	return NewDownloader().Download(ctx, url, w)
}

// Download fetches url into w, retrying on network errors, on rate limiting
// and on server errors. It returns the amount of bytes written to w.
func (d *Downloader) Download(
	ctx context.Context,
	url string,
	w io.Writer,
) (_ret uint64, _err error) {
	logger.Tracef(ctx, "Download(%q)", url)
	defer func() { logger.Tracef(ctx, "/Download(%q): %d %v", url, _ret, _err) }()

	var body []byte
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if err != nil {
				return retry.Unrecoverable(fmt.Errorf("unable to create a request: %w", err))
			}
			resp, err := d.Client.Do(req)
			if err != nil {
				return err
			}
			defer func() {
				if err := resp.Body.Close(); err != nil {
					logger.Debugf(ctx, "unable to close the response body: %v", err)
				}
			}()

			switch {
			case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
				return fmt.Errorf("HTTP %d", resp.StatusCode)
			case resp.StatusCode != http.StatusOK:
				return retry.Unrecoverable(fmt.Errorf("unexpected HTTP status %d", resp.StatusCode))
			}

			body, err = io.ReadAll(resp.Body)
			if err != nil {
				return fmt.Errorf("unable to read the response body: %w", err)
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(d.Attempts),
		retry.Delay(d.Delay),
		retry.MaxDelay(d.MaxDelay),
		retry.DelayType(retry.FullJitterBackoffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.Debugf(ctx, "retrying to download %q (attempt %d): %v", url, n+1, err)
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("unable to download %q: %w", url, err)
	}

	wc := datacounter.NewWriterCounter(w)
	if _, err := wc.Write(body); err != nil {
		return wc.Count(), fmt.Errorf("unable to write the downloaded data: %w", err)
	}
	logger.Debugf(ctx, "downloaded %d bytes from %q", wc.Count(), url)
	return wc.Count(), nil
}
