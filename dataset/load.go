// Package dataset loads CSV files into gota data frames, from the
// filesystem or over HTTP with a disk-backed response cache.
package dataset

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
)

// Options control Load and Read.
type Options struct {
	// Delimiter is the CSV field separator. Defaults to ','.
	Delimiter rune
	// NoHeader treats the first record as data; columns get
	// generated names.
	NoHeader bool
	// MaxAge bounds how long fetched responses are served from the
	// disk cache. Defaults to 24h.
	MaxAge time.Duration
}

// Load reads a CSV data frame from a local path or an http(s) URL.
func Load(pathOrURL string, o Options) (dataframe.DataFrame, error) {
	var r io.ReadCloser
	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		maxAge := o.MaxAge
		if maxAge == 0 {
			maxAge = 24 * time.Hour
		}
		resp, err := CacheClient(maxAge).Get(pathOrURL)
		if err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("fetch %s: %w", pathOrURL, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return dataframe.DataFrame{}, fmt.Errorf("fetch %s: %s", pathOrURL, resp.Status)
		}
		r = resp.Body
	} else {
		f, err := os.Open(pathOrURL)
		if err != nil {
			return dataframe.DataFrame{}, err
		}
		r = f
	}
	defer r.Close()
	return Read(r, o)
}

// Read parses a CSV data frame from r, detecting column types.
func Read(r io.Reader, o Options) (dataframe.DataFrame, error) {
	delim := o.Delimiter
	if delim == 0 {
		delim = ','
	}
	df := dataframe.ReadCSV(r,
		dataframe.WithDelimiter(delim),
		dataframe.HasHeader(!o.NoHeader),
		dataframe.DetectTypes(true),
	)
	if df.Err != nil {
		return df, fmt.Errorf("read csv: %w", df.Err)
	}
	return df, nil
}
