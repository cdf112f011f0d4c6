package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"filedrive/internal/domain"
	"filedrive/internal/domain/services"
)

type fakeProvider struct {
	response string
	err      error
	requests []*services.CompletionRequest
}

func (p *fakeProvider) Name() string { return "fake" }

func (p *fakeProvider) Complete(_ context.Context, req *services.CompletionRequest) (string, error) {
	p.requests = append(p.requests, req)
	if p.err != nil {
		return "", p.err
	}
	return p.response, nil
}

func seedDirectoryWithFiles(t *testing.T, extensions []string) (services.HierarchyService, string) {
	t.Helper()
	hierarchy, _, _ := newTestHierarchy()
	ctx := context.Background()

	root, err := hierarchy.EnsureRootDirectory(ctx, "user-1")
	if err != nil {
		t.Fatalf("EnsureRootDirectory() error = %v", err)
	}
	for i, ext := range extensions {
		name := "file" + strings.Repeat("x", i+1)
		_, err := hierarchy.CreateFile(ctx, &services.CreateFileRequest{
			UserID:      "user-1",
			DirectoryID: root.ID,
			Name:        name,
			Extension:   ext,
			FileURL:     "memory://" + name,
		})
		if err != nil {
			t.Fatalf("CreateFile() error = %v", err)
		}
	}
	return hierarchy, root.ID
}

func TestSummarizeEmptyDirectorySkipsProvider(t *testing.T) {
	hierarchy, dirID := seedDirectoryWithFiles(t, nil)
	provider := &fakeProvider{response: "should not be used"}
	svc := NewInsightService(hierarchy, provider, "gpt-3.5-turbo", 20, testLogger())

	message, err := svc.SummarizeDirectory(context.Background(), dirID)
	if err != nil {
		t.Fatalf("SummarizeDirectory() error = %v", err)
	}
	if message != EmptyDirectoryMessage {
		t.Errorf("message = %q, want %q", message, EmptyDirectoryMessage)
	}
	if len(provider.requests) != 0 {
		t.Errorf("provider was called %d times for an empty directory, want 0", len(provider.requests))
	}
}

func TestSummarizeRelaysCompletion(t *testing.T) {
	hierarchy, dirID := seedDirectoryWithFiles(t, []string{"pdf", "txt"})
	provider := &fakeProvider{response: "  Mostly documents.  "}
	svc := NewInsightService(hierarchy, provider, "gpt-3.5-turbo", 20, testLogger())

	message, err := svc.SummarizeDirectory(context.Background(), dirID)
	if err != nil {
		t.Fatalf("SummarizeDirectory() error = %v", err)
	}
	if message != "Mostly documents." {
		t.Errorf("message = %q, want trimmed completion", message)
	}

	if len(provider.requests) != 1 {
		t.Fatalf("provider called %d times, want 1", len(provider.requests))
	}
	req := provider.requests[0]
	if req.Model != "gpt-3.5-turbo" {
		t.Errorf("request model = %q, want gpt-3.5-turbo", req.Model)
	}
	if req.MaxTokens != 20 {
		t.Errorf("request max tokens = %d, want 20", req.MaxTokens)
	}
	if !strings.Contains(req.Prompt, "(pdf)") || !strings.Contains(req.Prompt, "(txt)") {
		t.Errorf("prompt %q does not list the file extensions", req.Prompt)
	}
}

func TestSummarizePromptOmitsNames(t *testing.T) {
	hierarchy, dirID := seedDirectoryWithFiles(t, []string{"csv"})
	provider := &fakeProvider{response: "Spreadsheets."}
	svc := NewInsightService(hierarchy, provider, "gpt-3.5-turbo", 20, testLogger())

	if _, err := svc.SummarizeDirectory(context.Background(), dirID); err != nil {
		t.Fatalf("SummarizeDirectory() error = %v", err)
	}

	// Only identifiers and extensions go to the model, never the name.
	if strings.Contains(provider.requests[0].Prompt, "filex") {
		t.Errorf("prompt %q leaks the file name", provider.requests[0].Prompt)
	}
}

func TestSummarizeUpstreamFailures(t *testing.T) {
	tests := []struct {
		name     string
		provider *fakeProvider
	}{
		{name: "provider error", provider: &fakeProvider{err: errors.New("rate limited")}},
		{name: "blank completion", provider: &fakeProvider{response: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hierarchy, dirID := seedDirectoryWithFiles(t, []string{"txt"})
			svc := NewInsightService(hierarchy, tt.provider, "gpt-3.5-turbo", 20, testLogger())

			_, err := svc.SummarizeDirectory(context.Background(), dirID)
			if !errors.Is(err, domain.ErrUpstream) {
				t.Errorf("SummarizeDirectory() error = %v, want ErrUpstream", err)
			}
		})
	}
}

func TestSummarizeDirectoryNotFound(t *testing.T) {
	hierarchy, _, _ := newTestHierarchy()
	svc := NewInsightService(hierarchy, &fakeProvider{}, "gpt-3.5-turbo", 20, testLogger())

	_, err := svc.SummarizeDirectory(context.Background(), "no-such-dir")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("SummarizeDirectory() error = %v, want ErrNotFound", err)
	}
}
