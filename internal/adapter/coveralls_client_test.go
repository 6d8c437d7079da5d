package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "jacov.dev/pkg/jacov/internal/model"
)

func intPtr(v int) *int { return &v }

func sampleRequest() m.Request {
	return m.Request{
		RepoToken:   "test-token",
		ServiceName: "other",
		SourceFiles: []m.SourceReport{
			{
				Name:         "src/main/kotlin/Main.kt",
				SourceDigest: "36083cd4c2ac736f9210fd3ed23504b5",
				Coverage:     []*int{nil, intPtr(1), intPtr(0)},
			},
		},
	}
}

func TestHTTPCoverallsClient_Send(t *testing.T) {
	var (
		gotMethod      string
		gotContentType string
		gotFilename    string
		gotPayload     []byte
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method

		reader, err := r.MultipartReader()
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		part, err := reader.NextPart()
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		assert.Equal(t, "json_file", part.FormName())
		gotFilename = part.FileName()
		gotContentType = part.Header.Get("Content-Type")
		gotPayload, _ = io.ReadAll(part)

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := NewHTTPCoverallsClient(time.Second).Send(context.Background(), server.URL, sampleRequest())
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "json_file", gotFilename)
	assert.Equal(t, "application/json; charset=UTF-8", gotContentType)
	assert.JSONEq(t, `{"repo_token":"test-token","service_name":"other","source_files":[`+
		`{"name":"src/main/kotlin/Main.kt","source_digest":"36083cd4c2ac736f9210fd3ed23504b5","coverage":[null,1,0]}]}`,
		string(gotPayload))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(gotPayload, &decoded))
	assert.NotContains(t, decoded, "git")
	assert.NotContains(t, decoded, "service_job_id")
}

func TestHTTPCoverallsClient_SendServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("ERR\n"))
	}))
	defer server.Close()

	err := NewHTTPCoverallsClient(time.Second).Send(context.Background(), server.URL, sampleRequest())
	require.Error(t, err)
	assert.Equal(t, "coveralls returned HTTP 404: ERR", err.Error())
}

func TestHTTPCoverallsClient_SendTimeout(t *testing.T) {
	release := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()
	defer close(release)

	err := NewHTTPCoverallsClient(50*time.Millisecond).Send(context.Background(), server.URL, sampleRequest())
	require.Error(t, err)
}

func TestHTTPCoverallsClient_SendUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	endpoint := server.URL
	server.Close()

	err := NewHTTPCoverallsClient(time.Second).Send(context.Background(), endpoint, sampleRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "send payload")
}

func TestNewHTTPCoverallsClient_DefaultTimeout(t *testing.T) {
	client := NewHTTPCoverallsClient(0)
	assert.Equal(t, DefaultCoverallsTimeout, client.client.Timeout)
}
