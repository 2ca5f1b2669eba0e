package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/dmitrijs2005/seashells/internal/server/models"
)

// SourceBuiltin selects the Builtin collection.
const SourceBuiltin = "builtin"

// Load returns the samples named by source: "builtin" (or empty), an
// s3://bucket/key object, or a local JSON file. Files and objects hold a
// JSON array of {name, species, description}.
func Load(ctx context.Context, source string, opts S3Options) ([]models.SeashellCreate, error) {
	switch {
	case source == "" || source == SourceBuiltin:
		out := make([]models.SeashellCreate, len(Builtin))
		copy(out, Builtin)
		return out, nil

	case strings.HasPrefix(source, "s3://"):
		bucket, key, err := parseS3URL(source)
		if err != nil {
			return nil, err
		}
		body, err := fetchS3Object(ctx, opts, bucket, key)
		if err != nil {
			return nil, fmt.Errorf("error fetching %s: %w", source, err)
		}
		defer body.Close()
		return decode(body, source)

	default:
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("error opening seed file: %w", err)
		}
		defer f.Close()
		return decode(f, source)
	}
}

func parseS3URL(raw string) (string, string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("invalid S3 url %q: %w", raw, err)
	}
	key := strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return "", "", fmt.Errorf("invalid S3 url %q: want s3://bucket/key", raw)
	}
	return u.Host, key, nil
}

func decode(r io.Reader, name string) ([]models.SeashellCreate, error) {
	var items []models.SeashellCreate
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", name, err)
	}
	for i, it := range items {
		if err := it.Validate(); err != nil {
			return nil, fmt.Errorf("%s item %d: %w", name, i, err)
		}
	}
	return items, nil
}
