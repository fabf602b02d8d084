package lsp

import "testing"

func TestDocumentStore(t *testing.T) {
	s := NewDocumentStore()
	uri := "file:///theme.json"

	if _, ok := s.Get(uri); ok {
		t.Error("Get on an empty store reported a document")
	}
	if s.Result(uri) != nil {
		t.Error("Result on an empty store is non-nil")
	}

	result := s.Set(uri, testDoc)
	if result == nil || result.Theme == nil {
		t.Fatal("Set did not analyze the document")
	}

	content, ok := s.Get(uri)
	if !ok || content != testDoc {
		t.Errorf("Get = (%q, %v), want stored content", content, ok)
	}
	if s.Result(uri) != result {
		t.Error("Result did not return the analysis from Set")
	}

	updated := s.Set(uri, `{"name": "broken"}`)
	if updated.Theme != nil {
		t.Error("re-analysis after update did not run")
	}
	if s.Result(uri) != updated {
		t.Error("Result did not return the latest analysis")
	}

	s.Close(uri)
	if _, ok := s.Get(uri); ok {
		t.Error("document survived Close")
	}
}
