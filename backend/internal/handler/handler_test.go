package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/agora/shared/domain"
	mw "github.com/itchan-dev/agora/shared/middleware"
	"github.com/stretchr/testify/assert"
)

// --- Mocks ---

type MockFeedService struct {
	MockHome   func(ctx context.Context) ([]domain.RankedThread, error)
	MockStats  func(ctx context.Context) ([]domain.RankedThread, error)
	MockSearch func(ctx context.Context, query domain.SearchQuery) (domain.SearchResult, error)
}

func (m *MockFeedService) Home(ctx context.Context) ([]domain.RankedThread, error) {
	if m.MockHome != nil {
		return m.MockHome(ctx)
	}
	return nil, nil
}

func (m *MockFeedService) Stats(ctx context.Context) ([]domain.RankedThread, error) {
	if m.MockStats != nil {
		return m.MockStats(ctx)
	}
	return nil, nil
}

func (m *MockFeedService) Search(ctx context.Context, query domain.SearchQuery) (domain.SearchResult, error) {
	if m.MockSearch != nil {
		return m.MockSearch(ctx, query)
	}
	return domain.SearchResult{}, nil
}

type MockThreadService struct {
	MockCreate func(ctx context.Context, creationData domain.ThreadCreationData) (domain.ThreadId, error)
	MockGet    func(ctx context.Context, id domain.ThreadId) (domain.ThreadPage, error)
	MockRandom func(ctx context.Context) (domain.ThreadId, error)
	MockDelete func(ctx context.Context, id domain.ThreadId, user domain.User) error
}

func (m *MockThreadService) Create(ctx context.Context, creationData domain.ThreadCreationData) (domain.ThreadId, error) {
	if m.MockCreate != nil {
		return m.MockCreate(ctx, creationData)
	}
	return 1, nil
}

func (m *MockThreadService) Get(ctx context.Context, id domain.ThreadId) (domain.ThreadPage, error) {
	if m.MockGet != nil {
		return m.MockGet(ctx, id)
	}
	return domain.ThreadPage{Thread: domain.Thread{Id: id}}, nil
}

func (m *MockThreadService) Random(ctx context.Context) (domain.ThreadId, error) {
	if m.MockRandom != nil {
		return m.MockRandom(ctx)
	}
	return 1, nil
}

func (m *MockThreadService) Delete(ctx context.Context, id domain.ThreadId, user domain.User) error {
	if m.MockDelete != nil {
		return m.MockDelete(ctx, id, user)
	}
	return nil
}

type MockCommentService struct {
	MockCreate func(ctx context.Context, creationData domain.CommentCreationData) (domain.CommentId, error)
	MockEdit   func(ctx context.Context, id domain.CommentId, user domain.User, content domain.CommentText) error
	MockDelete func(ctx context.Context, id domain.CommentId, user domain.User) error
}

func (m *MockCommentService) Create(ctx context.Context, creationData domain.CommentCreationData) (domain.CommentId, error) {
	if m.MockCreate != nil {
		return m.MockCreate(ctx, creationData)
	}
	return 1, nil
}

func (m *MockCommentService) Edit(ctx context.Context, id domain.CommentId, user domain.User, content domain.CommentText) error {
	if m.MockEdit != nil {
		return m.MockEdit(ctx, id, user, content)
	}
	return nil
}

func (m *MockCommentService) Delete(ctx context.Context, id domain.CommentId, user domain.User) error {
	if m.MockDelete != nil {
		return m.MockDelete(ctx, id, user)
	}
	return nil
}

type MockLikeService struct {
	MockToggle func(ctx context.Context, target domain.LikeTarget, id int64, userId domain.UserId) (domain.LikeResult, error)
}

func (m *MockLikeService) Toggle(ctx context.Context, target domain.LikeTarget, id int64, userId domain.UserId) (domain.LikeResult, error) {
	if m.MockToggle != nil {
		return m.MockToggle(ctx, target, id, userId)
	}
	return domain.LikeResult{Liked: true, Likes: 1}, nil
}

// --- Helpers ---

var testUser = &domain.User{Id: 123, Username: "gurshaan"}

// withUser puts user into the request context the same way the auth middleware does.
func withUser(user *domain.User) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user != nil {
				r = r.WithContext(context.WithValue(r.Context(), mw.UserClaimsKey, user))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// newTestRouter mounts the handler the way the real router does, minus auth.
func newTestRouter(h *Handler, user *domain.User) *chi.Mux {
	r := chi.NewRouter()
	r.Use(withUser(user))
	r.Get("/v1/threads", h.GetHome)
	r.Get("/v1/stats", h.GetStats)
	r.Get("/v1/search", h.Search)
	r.Get("/v1/random", h.RandomThread)
	r.Post("/v1/threads", h.CreateThread)
	r.Get("/v1/threads/{thread}", h.GetThread)
	r.Delete("/v1/threads/{thread}", h.DeleteThread)
	r.Post("/v1/threads/{thread}/like", h.ToggleThreadLike)
	r.Post("/v1/threads/{thread}/comments", h.CreateComment)
	r.Put("/v1/comments/{comment}", h.EditComment)
	r.Delete("/v1/comments/{comment}", h.DeleteComment)
	r.Post("/v1/comments/{comment}/like", h.ToggleCommentLike)
	return r
}

func serve(router http.Handler, method, url string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewBuffer(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// --- Tests ---

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name             string
		input            interface{}
		expected         string
		status           int
		checkContentType bool
	}{
		{
			name:             "Valid JSON",
			input:            map[string]string{"message": "hello"},
			expected:         `{"message":"hello"}`,
			status:           http.StatusOK,
			checkContentType: true,
		},
		{
			name:     "Invalid JSON (channel)", // Test for encoding errors
			input:    make(chan int),
			expected: "Internal error",
			status:   http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()

			writeJSON(rr, tt.input)

			assert.Equal(t, tt.status, rr.Code, "handler returned wrong status code")
			if tt.checkContentType {
				assert.Equal(t, "application/json", rr.Header().Get("Content-Type"), "handler returned wrong content type")
			}
			assert.Equal(t, tt.expected+"\n", rr.Body.String(), "handler returned unexpected body")
		})
	}
}
