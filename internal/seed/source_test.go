package seed

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/seashells/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Builtin(t *testing.T) {
	for _, src := range []string{"", SourceBuiltin} {
		items, err := Load(context.Background(), src, S3Options{})
		require.NoError(t, err)
		require.Len(t, items, 8)
		assert.Equal(t, "Queen Conch", items[0].Name)
		assert.Equal(t, "Charonia tritonis", items[7].Species)

		items[0].Name = "mutated"
		assert.Equal(t, "Queen Conch", Builtin[0].Name)
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "shells.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoad_File(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		p := writeFile(t, `[{"name":"Olive","species":"Oliva porphyria"},{"name":"Auger","species":"Terebra","description":"slender"}]`)
		items, err := Load(ctx, p, S3Options{})
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Nil(t, items[0].Description)
		require.NotNil(t, items[1].Description)
		assert.Equal(t, "slender", *items[1].Description)
	})

	t.Run("invalid item", func(t *testing.T) {
		p := writeFile(t, `[{"species":"nameless"}]`)
		_, err := Load(ctx, p, S3Options{})
		assert.ErrorIs(t, err, common.ErrorValidation)
	})

	t.Run("malformed", func(t *testing.T) {
		p := writeFile(t, `{"name":`)
		_, err := Load(ctx, p, S3Options{})
		assert.ErrorContains(t, err, "error decoding")
	})

	t.Run("missing", func(t *testing.T) {
		_, err := Load(ctx, filepath.Join(t.TempDir(), "none.json"), S3Options{})
		assert.ErrorContains(t, err, "error opening seed file")
	})
}

type fakeGetter struct {
	gotBucket, gotKey string
	body              string
	err               error
}

func (f *fakeGetter) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.gotBucket = aws.ToString(in.Bucket)
	f.gotKey = aws.ToString(in.Key)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(f.body))}, nil
}

func stubS3(t *testing.T, g *fakeGetter) *s3.Options {
	t.Helper()
	origLoad, origNew := loadDefaultAWSConfig, newS3Client
	t.Cleanup(func() { loadDefaultAWSConfig, newS3Client = origLoad, origNew })

	applied := &s3.Options{}
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
		var lo config.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		return aws.Config{Region: lo.Region, Credentials: lo.Credentials}, nil
	}
	newS3Client = func(cfg aws.Config, optFns ...func(*s3.Options)) objectGetter {
		applied.Region = cfg.Region
		for _, fn := range optFns {
			fn(applied)
		}
		return g
	}
	return applied
}

func TestLoad_S3(t *testing.T) {
	g := &fakeGetter{body: `[{"name":"Whelk","species":"Buccinum undatum"}]`}
	applied := stubS3(t, g)

	items, err := Load(context.Background(), "s3://samples/shells/2026.json", S3Options{
		Region: "us-east-1", Endpoint: "http://127.0.0.1:9000", User: "admin", Password: "secret",
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Whelk", items[0].Name)

	assert.Equal(t, "samples", g.gotBucket)
	assert.Equal(t, "shells/2026.json", g.gotKey)
	assert.Equal(t, "us-east-1", applied.Region)
	assert.Equal(t, "http://127.0.0.1:9000", aws.ToString(applied.BaseEndpoint))
	assert.True(t, applied.UsePathStyle)
}

func TestLoad_S3Errors(t *testing.T) {
	stubS3(t, &fakeGetter{err: errors.New("NoSuchKey")})

	_, err := Load(context.Background(), "s3://samples/missing.json", S3Options{})
	assert.ErrorContains(t, err, "NoSuchKey")

	for _, bad := range []string{"s3://", "s3://bucket-only", "s3://bucket/"} {
		_, err := Load(context.Background(), bad, S3Options{})
		assert.ErrorContains(t, err, "invalid S3 url", bad)
	}

	loadDefaultAWSConfig = func(context.Context, ...func(*config.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no config")
	}
	_, err = Load(context.Background(), "s3://samples/a.json", S3Options{})
	assert.ErrorContains(t, err, "no config")
}
