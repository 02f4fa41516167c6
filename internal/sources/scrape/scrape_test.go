package scrape

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/trophycase/pkg/errors"
	"github.com/agentstation/trophycase/pkg/identity"
	"github.com/agentstation/trophycase/pkg/parse"
	"github.com/agentstation/trophycase/pkg/sources"
)

type stubFetcher struct {
	pages       map[string][]byte
	searchPage  []byte
	searchErr   error
	pageCalls   []string
	searchCalls []string
}

func (f *stubFetcher) Page(_ context.Context, url string) ([]byte, error) {
	f.pageCalls = append(f.pageCalls, url)
	page, ok := f.pages[url]
	if !ok {
		return nil, &errors.ScrapeError{URL: url, StatusCode: 404, Message: "not found"}
	}
	return page, nil
}

func (f *stubFetcher) Search(_ context.Context, query string) ([]byte, error) {
	f.searchCalls = append(f.searchCalls, query)
	return f.searchPage, f.searchErr
}

func newRequest(t *testing.T, scrapeURL string) *sources.Request {
	t.Helper()
	root := t.TempDir()
	return &sources.Request{
		AccountRoot: root,
		Platform:    "PC",
		Title:       "Portal 2",
		ScrapeURL:   scrapeURL,
		Identity:    identity.Resolve(root, "PC", "Portal 2"),
	}
}

const achievementPage = `<ul><li class="achieveRow"><a>Lunacy</a></li></ul>`

func TestFetchKnownURL(t *testing.T) {
	fetcher := &stubFetcher{pages: map[string][]byte{
		"https://example.com/portal2/achievements": []byte(achievementPage),
	}}

	payloads, err := New(fetcher).Fetch(context.Background(), newRequest(t, "https://example.com/portal2/achievements"))
	require.NoError(t, err)
	require.Len(t, payloads, 1)

	p := payloads[0]
	assert.Equal(t, parse.ShapeMarkup, p.Shape)
	assert.True(t, p.Trusted, "a navigated page belongs to the title")
	assert.Empty(t, fetcher.searchCalls, "a known URL skips search")
}

func TestFetchViaSearch(t *testing.T) {
	fetcher := &stubFetcher{
		searchPage: []byte(`<ol>
			<li><a href="/portal">Portal</a></li>
			<li><a href="/portal2">Portal 2</a></li>
			<li><a href="/portal2-bundle">Portal 2 Bundle</a></li>
		</ol>`),
		pages: map[string][]byte{"/portal2": []byte(achievementPage)},
	}

	payloads, err := New(fetcher).Fetch(context.Background(), newRequest(t, ""))
	require.NoError(t, err)
	require.Len(t, payloads, 1)

	assert.Equal(t, []string{"Portal 2"}, fetcher.searchCalls)
	assert.Equal(t, []string{"/portal2"}, fetcher.pageCalls, "only the exact-text match is followed")
}

func TestFetchSearchNoExactMatch(t *testing.T) {
	fetcher := &stubFetcher{
		searchPage: []byte(`<a href="/similar">Portal 2: The Board Game</a>`),
	}

	payloads, err := New(fetcher).Fetch(context.Background(), newRequest(t, ""))
	require.NoError(t, err)
	assert.Nil(t, payloads, "approximate matches are never followed")
	assert.Empty(t, fetcher.pageCalls)
}

func TestFetchSearchCaseInsensitive(t *testing.T) {
	fetcher := &stubFetcher{
		searchPage: []byte(`<a href="/portal2"> PORTAL 2 </a>`),
		pages:      map[string][]byte{"/portal2": []byte(achievementPage)},
	}

	payloads, err := New(fetcher).Fetch(context.Background(), newRequest(t, ""))
	require.NoError(t, err)
	require.Len(t, payloads, 1)
}

func TestFetchSearchError(t *testing.T) {
	fetcher := &stubFetcher{searchErr: &errors.ScrapeError{URL: "search", StatusCode: 503, Message: "down"}}

	_, err := New(fetcher).Fetch(context.Background(), newRequest(t, ""))
	require.Error(t, err)
	assert.True(t, errors.IsSourceUnavailable(err))
}

func TestFetchNilFetcher(t *testing.T) {
	payloads, err := New(nil).Fetch(context.Background(), newRequest(t, "https://example.com"))
	require.NoError(t, err)
	assert.Nil(t, payloads)
}
