package profile

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFetcher_HappyPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/students/s1/profile", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(StudentLearningProfile{
			Preferences: Preferences{QuestionComplexity: "concrete"},
			CurrentState: CurrentState{
				CognitiveLoad:  "normal",
				EmotionalState: "engaged",
			},
			Strengths: map[string]int{"metacognition": 85},
		})
	}))
	t.Cleanup(server.Close)

	f := NewHTTPFetcher(server.URL)
	p, err := f.Fetch(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "concrete", p.Preferences.QuestionComplexity)
	assert.Equal(t, 85, p.Strengths["metacognition"])
}

func TestHTTPFetcher_EscapesStudentID(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		json.NewEncoder(w).Encode(StudentLearningProfile{})
	}))
	t.Cleanup(server.Close)

	f := NewHTTPFetcher(server.URL)
	_, err := f.Fetch(context.Background(), "a/b")
	require.NoError(t, err)
	assert.Equal(t, "/students/a%2Fb/profile", gotPath)
}

func TestHTTPFetcher_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	f := NewHTTPFetcher(server.URL)
	_, err := f.Fetch(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestHTTPFetcher_BadBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	t.Cleanup(server.Close)

	f := NewHTTPFetcher(server.URL)
	_, err := f.Fetch(context.Background(), "s1")
	require.Error(t, err)
}

func TestStaticFetcher(t *testing.T) {
	f := &StaticFetcher{Profiles: map[string]*StudentLearningProfile{
		"s1": {Preferences: Preferences{QuestionComplexity: "abstract"}},
	}}

	p, err := f.Fetch(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "abstract", p.Preferences.QuestionComplexity)

	_, err = f.Fetch(context.Background(), "unknown")
	require.Error(t, err)
}
