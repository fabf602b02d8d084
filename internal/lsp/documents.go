package lsp

import "sync"

// DocumentStore holds open documents and their latest analysis, keyed by URI.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	content string
	result  *AnalysisResult
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]*document)}
}

// Set stores a document's content and re-analyzes it, returning the fresh
// analysis.
func (s *DocumentStore) Set(uri, content string) *AnalysisResult {
	result := Analyze(content)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = &document{content: content, result: result}
	return result
}

func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

// Get returns a document's content.
func (s *DocumentStore) Get(uri string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[uri]
	if !ok {
		return "", false
	}
	return doc.content, true
}

// Result returns the latest analysis for a document, or nil if the document
// is not open.
func (s *DocumentStore) Result(uri string) *AnalysisResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[uri]
	if !ok {
		return nil
	}
	return doc.result
}
