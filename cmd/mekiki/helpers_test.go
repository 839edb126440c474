package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadIndex_FetchesConfiguredSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"code":"900","label":"Remote Root"}]`))
	}))
	defer server.Close()

	viper.Set("category_source_url", server.URL)
	defer viper.Reset()

	index := loadIndex(context.Background())

	require.True(t, index.Contains("900"), "the configured source is fetched without an extra flag")
	assert.False(t, index.Contains("010"))
}

func TestLoadIndex_BuiltinWithoutSource(t *testing.T) {
	viper.Reset()

	index := loadIndex(context.Background())

	assert.True(t, index.Contains("021"))
}

func TestLoadIndex_FallsBackOnUnreachableSource(t *testing.T) {
	viper.Set("category_source_url", "http://127.0.0.1:1/categories")
	defer viper.Reset()

	index := loadIndex(context.Background())

	assert.True(t, index.Contains("021"), "fetch failure falls back to the built-in tree")
}
