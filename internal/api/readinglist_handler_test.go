package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/bloglist-api/internal/domain"
	"github.com/phrazzld/bloglist-api/internal/mocks"
	"github.com/phrazzld/bloglist-api/internal/store"
)

func withPathID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestReadingListHandler_Create(t *testing.T) {
	t.Parallel()

	caller := testUser(t)
	blogID := uuid.New()

	tests := []struct {
		name       string
		body       string
		noIdentity bool
		createErr  error
		wantStatus int
		wantError  string
	}{
		{
			name:       "adds to own list",
			body:       fmt.Sprintf(`{"userId":%q,"blogId":%q}`, caller.ID, blogID),
			wantStatus: http.StatusCreated,
		},
		{
			name:       "adding to another list is denied",
			body:       fmt.Sprintf(`{"userId":%q,"blogId":%q}`, uuid.New(), blogID),
			wantStatus: http.StatusUnauthorized,
			wantError:  MsgNoListPermission,
		},
		{
			name:       "unknown blog",
			body:       fmt.Sprintf(`{"userId":%q,"blogId":%q}`, caller.ID, blogID),
			createErr:  store.ErrOwnerMissing,
			wantStatus: http.StatusBadRequest,
			wantError:  "Validation error: owner does not exist",
		},
		{
			name:       "no identity",
			body:       fmt.Sprintf(`{"userId":%q,"blogId":%q}`, caller.ID, blogID),
			noIdentity: true,
			wantStatus: http.StatusUnauthorized,
			wantError:  MsgTokenMissing,
		},
		{
			name:       "malformed body",
			body:       `{"userId":`,
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid request format",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var created *domain.ReadingListEntry
			rlStore := &mocks.MockReadingListStore{
				CreateFn: func(_ context.Context, e *domain.ReadingListEntry) error {
					if tc.createErr != nil {
						return tc.createErr
					}
					created = e
					return nil
				},
			}
			handler := NewReadingListHandler(rlStore)

			req := httptest.NewRequest(
				http.MethodPost,
				"/api/readinglists",
				bytes.NewBufferString(tc.body),
			)
			if !tc.noIdentity {
				req = requestWith(req, caller, nil)
			}
			rr := httptest.NewRecorder()
			handler.Create(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)

			if tc.wantError != "" {
				var resp map[string]string
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tc.wantError, resp["error"])
				return
			}

			require.NotNil(t, created)
			assert.Equal(t, caller.ID, created.UserID)
			assert.Equal(t, blogID, created.BlogID)
			assert.False(t, created.Read, "new entries start unread")
		})
	}
}

func TestReadingListHandler_MarkRead(t *testing.T) {
	t.Parallel()

	caller := testUser(t)

	ownEntry, err := domain.NewReadingListEntry(caller.ID, uuid.New())
	require.NoError(t, err)
	foreignEntry, err := domain.NewReadingListEntry(uuid.New(), uuid.New())
	require.NoError(t, err)

	tests := []struct {
		name       string
		pathID     string
		entry      *domain.ReadingListEntry
		getErr     error
		markErr    error
		wantStatus int
		wantError  string
	}{
		{
			name:       "marks own entry read",
			pathID:     ownEntry.ID.String(),
			entry:      ownEntry,
			wantStatus: http.StatusOK,
		},
		{
			name:       "absent entry reads as not on the list",
			pathID:     uuid.NewString(),
			getErr:     store.ErrReadingListEntryNotFound,
			wantStatus: http.StatusForbidden,
			wantError:  MsgNotOnReadingList,
		},
		{
			name:       "foreign entry reads as not on the list",
			pathID:     foreignEntry.ID.String(),
			entry:      foreignEntry,
			wantStatus: http.StatusForbidden,
			wantError:  MsgNotOnReadingList,
		},
		{
			name:       "already read",
			pathID:     ownEntry.ID.String(),
			entry:      ownEntry,
			markErr:    store.ErrAlreadyRead,
			wantStatus: http.StatusBadRequest,
			wantError:  MsgAlreadyRead,
		},
		{
			name:       "malformed identifier",
			pathID:     "not-a-uuid",
			wantStatus: http.StatusBadRequest,
			wantError:  MsgMalformedID,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rlStore := &mocks.MockReadingListStore{
				GetByIDFn: func(context.Context, uuid.UUID) (*domain.ReadingListEntry, error) {
					return tc.entry, tc.getErr
				},
				MarkReadFn: func(_ context.Context, id uuid.UUID) (*domain.ReadingListEntry, error) {
					if tc.markErr != nil {
						return nil, tc.markErr
					}
					updated := *tc.entry
					updated.Read = true
					return &updated, nil
				},
			}
			handler := NewReadingListHandler(rlStore)

			req := withPathID(
				httptest.NewRequest(http.MethodPut, "/api/readinglists/"+tc.pathID, nil),
				tc.pathID,
			)
			req = requestWith(req, caller, nil)
			rr := httptest.NewRecorder()
			handler.MarkRead(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)

			if tc.wantError != "" {
				var resp map[string]string
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tc.wantError, resp["error"])
				return
			}

			var resp domain.ReadingListEntry
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.True(t, resp.Read)
		})
	}
}

func TestReadingListHandler_MarkRead_NoIdentity(t *testing.T) {
	t.Parallel()

	handler := NewReadingListHandler(&mocks.MockReadingListStore{})

	req := withPathID(
		httptest.NewRequest(http.MethodPut, "/api/readinglists/"+uuid.NewString(), nil),
		uuid.NewString(),
	)
	rr := httptest.NewRecorder()
	handler.MarkRead(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
