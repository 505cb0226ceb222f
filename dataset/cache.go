package dataset

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gregjones/httpcache"
	"github.com/gregjones/httpcache/diskcache"
)

var cacher *diskcache.Cache

func init() {
	dir, err := os.UserCacheDir()
	if err != nil {
		log.Printf("dataset: http cache disabled: os.UserCacheDir: %s", err)
		return
	}
	dir = filepath.Join(dir, "magiceda", "datasets")
	if err = os.MkdirAll(dir, 0755); err != nil {
		log.Printf("dataset: http cache disabled: %s", err)
		return
	}
	cacher = diskcache.New(dir)
}

// CacheClient returns an http client that keeps responses on disk for
// maxAge, so re-profiling a remote dataset does not refetch it. Falls
// back to http.DefaultClient when the cache directory is unavailable
// or maxAge is zero.
func CacheClient(maxAge time.Duration) *http.Client {
	if cacher == nil || maxAge == 0 {
		return http.DefaultClient
	}
	return &http.Client{
		Transport: maxAgeTransport{
			rt:     httpcache.NewTransport(cacher),
			maxAge: fmt.Sprintf("%.0f", maxAge.Seconds()),
		},
	}
}

type maxAgeTransport struct {
	rt     http.RoundTripper
	maxAge string
}

func (t maxAgeTransport) RoundTrip(rq *http.Request) (*http.Response, error) {
	rq.Header.Set("Cache-Control", "max-age="+t.maxAge)
	return t.rt.RoundTrip(rq)
}
