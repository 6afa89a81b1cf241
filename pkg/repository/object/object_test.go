package object

import (
	"context"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"

	errdomain "github.com/talkifydocs/ingest-backend/pkg/errors"
)

type fetcherFunc func(ctx context.Context, location string) ([]byte, error)

func (f fetcherFunc) Fetch(ctx context.Context, location string) ([]byte, error) {
	return f(ctx, location)
}

func TestRouter_Fetch(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()

	var got string
	record := fetcherFunc(func(_ context.Context, location string) ([]byte, error) {
		got = location
		return []byte("%PDF"), nil
	})
	r := NewRouter().Register(record, "s3", "minio")

	c.Run("ok - scheme is case insensitive", func(c *qt.C) {
		b, err := r.Fetch(ctx, "S3://bucket/key.pdf")
		c.Assert(err, qt.IsNil)
		c.Check(string(b), qt.Equals, "%PDF")
		c.Check(got, qt.Equals, "S3://bucket/key.pdf")
	})

	c.Run("nok - unsupported scheme", func(c *qt.C) {
		_, err := r.Fetch(ctx, "ftp://host/key.pdf")
		c.Check(err, qt.ErrorIs, errdomain.ErrFetch)
		c.Check(err, qt.ErrorMatches, `.*unsupported location scheme "ftp"`)
	})

	c.Run("nok - malformed location", func(c *qt.C) {
		_, err := r.Fetch(ctx, "://nope")
		c.Check(err, qt.ErrorIs, errdomain.ErrFetch)
	})
}

func TestParseObjectURI(t *testing.T) {
	c := qt.New(t)

	testcases := []struct {
		in         string
		wantBucket string
		wantPath   string
		wantErr    bool
	}{
		{in: "gs://bucket/a/b/c.pdf", wantBucket: "bucket", wantPath: "a/b/c.pdf"},
		{in: "s3://uploads/key.pdf", wantBucket: "uploads", wantPath: "key.pdf"},
		{in: "s3://uploads", wantErr: true},
		{in: "s3://uploads/", wantErr: true},
		{in: "key.pdf", wantErr: true},
	}

	for _, tc := range testcases {
		c.Run(tc.in, func(c *qt.C) {
			bucket, path, err := ParseObjectURI(tc.in)
			if tc.wantErr {
				c.Check(err, qt.IsNotNil)
				return
			}
			c.Assert(err, qt.IsNil)
			c.Check(bucket, qt.Equals, tc.wantBucket)
			c.Check(path, qt.Equals, tc.wantPath)
		})
	}
}

func TestReadAllLimited(t *testing.T) {
	c := qt.New(t)

	b, err := readAllLimited(strings.NewReader("12345"), 5)
	c.Assert(err, qt.IsNil)
	c.Check(string(b), qt.Equals, "12345")

	_, err = readAllLimited(strings.NewReader("123456"), 5)
	c.Check(err, qt.ErrorIs, errdomain.ErrFetch)
	c.Check(err, qt.ErrorMatches, ".*payload exceeds 5 bytes")
}

func TestUnwrapServiceAccountKey(t *testing.T) {
	c := qt.New(t)

	c.Run("plain key", func(c *qt.C) {
		key := []byte(`{"type":"service_account","project_id":"p"}`)
		got, err := unwrapServiceAccountKey(key)
		c.Assert(err, qt.IsNil)
		c.Check(string(got), qt.Equals, string(key))
	})

	c.Run("vault response", func(c *qt.C) {
		key := []byte(`{"data":{"data":{"type":"service_account"}}}`)
		got, err := unwrapServiceAccountKey(key)
		c.Assert(err, qt.IsNil)
		c.Check(string(got), qt.JSONEquals, map[string]any{"type": "service_account"})
	})
}
