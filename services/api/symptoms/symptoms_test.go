package symptoms

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/02loveslollipop/aquahealth/services/api/config"
	"github.com/02loveslollipop/aquahealth/services/api/models"
)

func fakeCompletionServer(t *testing.T, content string, gotBody *map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if gotBody != nil {
			_ = json.NewDecoder(r.Body).Decode(gotBody)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": time.Now().Unix(),
			"model":   "test-model",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			}},
		})
	}))
}

func TestAICheckerParsesCompletion(t *testing.T) {
	var body map[string]any
	srv := fakeCompletionServer(t, `{"severity":"severe","possibleConditions":["Cholera"],"recommendations":["Seek care now."]}`, &body)
	defer srv.Close()

	checker := NewAIChecker("test-key", srv.URL+"/v1/", "test-model")
	res, err := checker.Check(context.Background(), []string{"Diarrhea", "Leg Cramps"})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if res.Severity != models.SeveritySevere {
		t.Errorf("severity = %q, want Severe", res.Severity)
	}
	if len(res.PossibleConditions) != 1 || res.PossibleConditions[0] != "Cholera" {
		t.Errorf("conditions = %v", res.PossibleConditions)
	}

	if body["model"] != "test-model" {
		t.Errorf("model = %v", body["model"])
	}
	format, _ := body["response_format"].(map[string]any)
	if format["type"] != "json_object" {
		t.Errorf("response_format = %v", body["response_format"])
	}
	msgs, _ := body["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("messages = %v", body["messages"])
	}
	user, _ := msgs[1].(map[string]any)
	if content, _ := user["content"].(string); !strings.Contains(content, "Diarrhea, Leg Cramps") {
		t.Errorf("prompt does not list the symptoms: %q", content)
	}
}

func TestAICheckerSurfacesErrors(t *testing.T) {
	srv := fakeCompletionServer(t, "not json at all", nil)
	defer srv.Close()

	if _, err := NewAIChecker("test-key", srv.URL+"/v1", "m").Check(context.Background(), []string{"Fever"}); err == nil {
		t.Errorf("expected decode error")
	}
	if _, err := NewAIChecker("wrong-key", srv.URL+"/v1", "m").Check(context.Background(), []string{"Fever"}); err == nil {
		t.Errorf("expected auth error")
	}
}

func TestParseAssessment(t *testing.T) {
	res, err := ParseAssessment("```json\n{\"severity\":\"Critical\"}\n```")
	if err != nil {
		t.Fatalf("ParseAssessment: %v", err)
	}
	if res.Severity != models.SeverityUnknown {
		t.Errorf("severity = %q, want Unknown", res.Severity)
	}
	if res.PossibleConditions == nil || res.Recommendations == nil {
		t.Errorf("missing lists should be empty, not nil")
	}
}

func TestNewPicksMockWithoutKey(t *testing.T) {
	if _, ok := New(config.Config{}).(MockChecker); !ok {
		t.Errorf("expected MockChecker without a key")
	}
	if _, ok := New(config.Config{AIAPIKey: "k", AIModel: "m"}).(*AIChecker); !ok {
		t.Errorf("expected AIChecker with a key")
	}
}

func TestServiceResolve(t *testing.T) {
	s := NewService(MockChecker{}, time.Second)

	names, err := s.Resolve([]string{"fever", "stomach_pain", "fever"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(names) != 2 || names[0] != "Fever" || names[1] != "Stomach Pain" {
		t.Errorf("names = %v", names)
	}
	if _, err := s.Resolve(nil); !errors.Is(err, ErrNoSymptoms) {
		t.Errorf("expected ErrNoSymptoms, got %v", err)
	}
	if _, err := s.Resolve([]string{"sneezing"}); !errors.Is(err, ErrUnknownSymptom) {
		t.Errorf("expected ErrUnknownSymptom, got %v", err)
	}
}

func TestServiceMockCheck(t *testing.T) {
	s := NewService(MockChecker{}, time.Second)
	res, err := s.Check(context.Background(), "client-1", []string{"diarrhea"})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if res.Severity != models.SeverityModerate || len(res.Recommendations) != 5 {
		t.Errorf("unexpected mock result: %+v", res)
	}
}

type funcChecker func(ctx context.Context, symptoms []string) (*models.SymptomCheckResult, error)

func (f funcChecker) Check(ctx context.Context, symptoms []string) (*models.SymptomCheckResult, error) {
	return f(ctx, symptoms)
}

func TestServiceDiscardsSupersededCheck(t *testing.T) {
	started := make(chan struct{})
	var calls atomic.Int32
	checker := funcChecker(func(ctx context.Context, _ []string) (*models.SymptomCheckResult, error) {
		if calls.Add(1) == 1 {
			close(started)
			<-ctx.Done()
			return nil, ctx.Err()
		}
		return &models.SymptomCheckResult{Severity: models.SeverityMild}, nil
	})
	s := NewService(checker, 5*time.Second)

	var wg sync.WaitGroup
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = s.Check(context.Background(), "client-1", []string{"fever"})
	}()
	<-started

	res, err := s.Check(context.Background(), "client-1", []string{"headache"})
	if err != nil {
		t.Fatalf("second check: %v", err)
	}
	if res.Severity != models.SeverityMild {
		t.Errorf("severity = %q", res.Severity)
	}

	wg.Wait()
	if !errors.Is(firstErr, ErrStale) {
		t.Errorf("first check error = %v, want ErrStale", firstErr)
	}
	if s.tracker.InFlight() != 0 {
		t.Errorf("tracker still holds %d flights", s.tracker.InFlight())
	}
}

func TestServiceTimeout(t *testing.T) {
	checker := funcChecker(func(ctx context.Context, _ []string) (*models.SymptomCheckResult, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	s := NewService(checker, 20*time.Millisecond)

	_, err := s.Check(context.Background(), "", []string{"fever"})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want deadline exceeded", err)
	}
}

func TestTrackerUntrackedClient(t *testing.T) {
	tr := NewTracker()
	_, tk := tr.Begin(context.Background(), "")
	if err := tr.Finish(tk); err != nil {
		t.Errorf("untracked finish: %v", err)
	}
	if tr.InFlight() != 0 {
		t.Errorf("untracked client registered")
	}
}
