package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/kerbaras/purrfect/pkg/data"
	"github.com/kerbaras/purrfect/pkg/gallery"
	"github.com/kerbaras/purrfect/pkg/sources"
	"github.com/kerbaras/purrfect/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSource struct {
	imagesFunc func(ctx context.Context, page, limit int) ([]data.Image, error)
}

func (m *mockSource) Images(ctx context.Context, page, limit int) ([]data.Image, error) {
	if m.imagesFunc != nil {
		return m.imagesFunc(ctx, page, limit)
	}
	return nil, nil
}

func testImages(n int) []data.Image {
	out := make([]data.Image, n)
	for i := range out {
		out[i] = data.Image{ID: fmt.Sprintf("cat-%d", i), URL: fmt.Sprintf("https://example.com/%d.jpg", i)}
	}
	return out
}

func TestFetchSuccess(t *testing.T) {
	var gotPage, gotLimit int
	c := NewFetchController(&mockSource{
		imagesFunc: func(ctx context.Context, page, limit int) ([]data.Image, error) {
			gotPage, gotLimit = page, limit
			return testImages(limit), nil
		},
	}, nil)

	res := c.Fetch(context.Background(), gallery.Request{Seq: 4, Page: 2, Mode: data.GridMode})

	require.NoError(t, res.Err)
	assert.Equal(t, uint64(4), res.Seq)
	assert.Len(t, res.Images, gallery.PageSize)
	assert.Equal(t, 2, gotPage)
	assert.Equal(t, gallery.PageSize, gotLimit)
}

func TestFetchErrorIsGeneric(t *testing.T) {
	cause := &utils.HTTPError{StatusCode: http.StatusTooManyRequests, Status: "429 Too Many Requests"}
	c := NewFetchController(&mockSource{
		imagesFunc: func(ctx context.Context, page, limit int) ([]data.Image, error) {
			return nil, cause
		},
	}, nil)

	res := c.Fetch(context.Background(), gallery.Request{Seq: 1, Page: 1})

	require.Error(t, res.Err)
	assert.Equal(t, "Failed to fetch images. Please try again.", res.Err.Error())
	assert.Nil(t, res.Images)

	var fetchErr *FetchError
	require.True(t, errors.As(res.Err, &fetchErr))
	var httpErr *utils.HTTPError
	assert.True(t, errors.As(res.Err, &httpErr))
}

func TestFetchCancelsSupersededRequest(t *testing.T) {
	started := make(chan struct{})
	c := NewFetchController(&mockSource{
		imagesFunc: func(ctx context.Context, page, limit int) ([]data.Image, error) {
			if page == 1 {
				close(started)
				<-ctx.Done()
				return nil, ctx.Err()
			}
			return testImages(limit), nil
		},
	}, nil)

	var wg sync.WaitGroup
	var slow gallery.Result
	wg.Add(1)
	go func() {
		defer wg.Done()
		slow = c.Fetch(context.Background(), gallery.Request{Seq: 1, Page: 1})
	}()

	<-started
	fast := c.Fetch(context.Background(), gallery.Request{Seq: 2, Page: 2})
	wg.Wait()

	require.NoError(t, fast.Err)
	assert.ErrorIs(t, slow.Err, context.Canceled)
	assert.Equal(t, uint64(1), slow.Seq)
}

func TestOlderRequestDoesNotCancelNewer(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var mu sync.Mutex
	var pages []int
	c := NewFetchController(&mockSource{
		imagesFunc: func(ctx context.Context, page, limit int) ([]data.Image, error) {
			mu.Lock()
			pages = append(pages, page)
			mu.Unlock()
			close(started)
			select {
			case <-release:
				return testImages(limit), nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		},
	}, nil)

	done := make(chan gallery.Result)
	go func() { done <- c.Fetch(context.Background(), gallery.Request{Seq: 2, Page: 3}) }()
	<-started

	late := c.Fetch(context.Background(), gallery.Request{Seq: 1, Page: 2})
	assert.ErrorIs(t, late.Err, context.Canceled)
	assert.EqualError(t, late.Err, FetchFailedMessage)
	assert.Equal(t, uint64(1), late.Seq)

	close(release)
	var newest gallery.Result
	select {
	case newest = <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("newest fetch never finished")
	}
	require.NoError(t, newest.Err)
	assert.Len(t, newest.Images, gallery.PageSize)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{3}, pages)
}

func TestCancel(t *testing.T) {
	started := make(chan struct{})
	c := NewFetchController(&mockSource{
		imagesFunc: func(ctx context.Context, page, limit int) ([]data.Image, error) {
			close(started)
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}, nil)

	done := make(chan gallery.Result)
	go func() { done <- c.Fetch(context.Background(), gallery.Request{Seq: 1, Page: 1}) }()

	<-started
	c.Cancel()

	select {
	case res := <-done:
		assert.ErrorIs(t, res.Err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("fetch was not cancelled")
	}

	// Cancel with nothing in flight is a no-op.
	c.Cancel()
}

func TestFetchTimeout(t *testing.T) {
	c := NewFetchController(&mockSource{
		imagesFunc: func(ctx context.Context, page, limit int) ([]data.Image, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}, nil).WithTimeout(20 * time.Millisecond)

	res := c.Fetch(context.Background(), gallery.Request{Seq: 1, Page: 1})
	assert.ErrorIs(t, res.Err, context.DeadlineExceeded)
	assert.EqualError(t, res.Err, FetchFailedMessage)
}

func TestFetchAgainstCatAPI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			w.Write([]byte(`[{"id":"last","url":"https://example.com/last.jpg"}]`))
			return
		}
		w.Write([]byte(`[
			{"id":"a","url":"u"},{"id":"b","url":"u"},{"id":"c","url":"u"},{"id":"d","url":"u"},{"id":"e","url":"u"},
			{"id":"f","url":"u"},{"id":"g","url":"u"},{"id":"h","url":"u"},{"id":"i","url":"u"},{"id":"j","url":"u"}
		]`))
	}))
	defer server.Close()

	c := NewFetchController(sources.NewCatAPI(server.URL, nil), nil)

	s, req := gallery.New(data.InfiniteMode)
	s = s.Resolve(c.Fetch(context.Background(), *req))
	require.NoError(t, s.Err)
	assert.Len(t, s.Images, 10)
	assert.True(t, s.HasMore)

	s, req = s.LoadMore()
	require.NotNil(t, req)
	s = s.Resolve(c.Fetch(context.Background(), *req))
	assert.Len(t, s.Images, 11)
	assert.False(t, s.HasMore)
	assert.Equal(t, "last", s.Images[10].ID)
}
