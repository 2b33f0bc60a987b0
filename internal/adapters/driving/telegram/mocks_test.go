package telegram

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/custodia-labs/sercha-bot/internal/core/domain"
	"github.com/custodia-labs/sercha-bot/internal/core/ports/driving"
)

// fakeAPI records everything the bot sends.
type fakeAPI struct {
	mu       sync.Mutex
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
	sendErr  error
	ackErr   error
	fileURLs map[string]string
	updates  chan tgbotapi.Update
	stopped  bool
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		fileURLs: map[string]string{},
		updates:  make(chan tgbotapi.Update),
	}
}

func (f *fakeAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, f.sendErr
}

func (f *fakeAPI) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, c)
	if f.ackErr != nil {
		return nil, f.ackErr
	}
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeAPI) GetFileDirectURL(fileID string) (string, error) {
	url, ok := f.fileURLs[fileID]
	if !ok {
		return "", errors.New("file not found")
	}
	return url, nil
}

func (f *fakeAPI) GetUpdatesChan(_ tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return f.updates
}

func (f *fakeAPI) StopReceivingUpdates() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
}

// messages returns the text messages sent, in order.
func (f *fakeAPI) messages() []tgbotapi.MessageConfig {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []tgbotapi.MessageConfig
	for _, c := range f.sent {
		if m, ok := c.(tgbotapi.MessageConfig); ok {
			out = append(out, m)
		}
	}
	return out
}

// documents returns the files sent, in order.
func (f *fakeAPI) documents() []tgbotapi.DocumentConfig {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []tgbotapi.DocumentConfig
	for _, c := range f.sent {
		if d, ok := c.(tgbotapi.DocumentConfig); ok {
			out = append(out, d)
		}
	}
	return out
}

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results   []domain.SearchResult
	err       error
	lastQuery string
	lastCat   domain.Category
}

func (m *mockSearchService) Search(_ context.Context, query string) ([]domain.SearchResult, error) {
	m.lastQuery = query
	return m.results, m.err
}

func (m *mockSearchService) SearchByCategory(_ context.Context, c domain.Category) ([]domain.SearchResult, error) {
	m.lastCat = c
	return m.results, m.err
}

// mockIndexService is a mock implementation of driving.IndexService.
type mockIndexService struct {
	driving.IndexService
	files       map[string][]byte
	names       map[string]string
	retrieveErr error
	uploadErr   error
	uploaded    map[string][]byte
}

func (m *mockIndexService) Retrieve(_ context.Context, fp string) (*driving.Retrieved, error) {
	if m.retrieveErr != nil {
		return nil, m.retrieveErr
	}
	data, ok := m.files[fp]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &driving.Retrieved{Name: m.names[fp], Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (m *mockIndexService) Upload(_ context.Context, name string, content []byte) (*domain.Document, error) {
	if m.uploadErr != nil {
		return nil, m.uploadErr
	}
	if m.uploaded == nil {
		m.uploaded = map[string][]byte{}
	}
	m.uploaded[name] = content
	return &domain.Document{Name: name, Fingerprint: domain.Fingerprint(name)}, nil
}

// mockAccessService allows a fixed set of users.
type mockAccessService map[int64]bool

func (m mockAccessService) Check(_ context.Context, userID int64) error {
	if !m[userID] {
		return domain.ErrAccessDenied
	}
	return nil
}

// mockFiles serves upload bytes by URL.
type mockFiles map[string][]byte

func (m mockFiles) Open(_ context.Context, url string) (io.ReadCloser, error) {
	data, ok := m[url]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}
