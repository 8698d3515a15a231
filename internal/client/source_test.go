package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/Yippine/QuizForge-AI/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDocument(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		want    int
		wantErr bool
	}{
		{name: "success", body: `{"questions":[{"question_id":"L21101_001"},{"question_id":"L21101_002"}]}`, want: 2},
		{name: "empty array", body: `{"questions":[]}`, want: 0},
		{name: "missing questions", body: `{"items":[]}`, wantErr: true},
		{name: "questions not array", body: `{"questions":{"a":1}}`, wantErr: true},
		{name: "null questions", body: `{"questions":null}`, wantErr: true},
		{name: "malformed json", body: `{"questions":[`, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := DecodeDocument("bank", []byte(tt.body))
			if tt.wantErr {
				require.Error(t, err)
				var decodeErr *DecodeError
				require.True(t, errors.As(err, &decodeErr))
				assert.Equal(t, "bank", decodeErr.Source)
				return
			}

			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestHTTPSource_Fetch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.json":
			w.Write([]byte(`{"questions":[]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	body, err := NewHTTPSource("ok", srv.URL+"/ok.json", srv.Client()).Fetch(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"questions":[]}`, string(body))

	_, err = NewHTTPSource("missing", srv.URL+"/missing.json", srv.Client()).Fetch(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestFileSource_Fetch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "bank.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"questions":[]}`), 0o600))

	body, err := NewFileSource("bank", path).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `{"questions":[]}`, string(body))

	_, err = NewFileSource("absent", filepath.Join(dir, "absent.json")).Fetch(context.Background())
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewFileSource("bank", path).Fetch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInitClients(t *testing.T) {
	t.Parallel()

	sources := InitClients([]config.SourceConfig{
		{Name: "local", Location: "questions/a.json"},
		{Name: "remote", Location: "https://example.com/b.json"},
	})
	require.Len(t, sources, 2)

	_, isFile := sources[0].(*FileSource)
	assert.True(t, isFile)
	_, isHTTP := sources[1].(*HTTPSource)
	assert.True(t, isHTTP)
	assert.Equal(t, "remote", sources[1].Name())
}
