package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/bloglist-api/internal/api/shared"
	"github.com/phrazzld/bloglist-api/internal/domain"
	"github.com/phrazzld/bloglist-api/internal/service/authz"
	"github.com/phrazzld/bloglist-api/internal/store"
)

// ReadingListHandler handles reading list creation and the unread-to-read
// transition.
type ReadingListHandler struct {
	readingListStore store.ReadingListStore
}

// NewReadingListHandler creates a new ReadingListHandler.
func NewReadingListHandler(readingListStore store.ReadingListStore) *ReadingListHandler {
	return &ReadingListHandler{readingListStore: readingListStore}
}

// Create handles POST /api/readinglists. The payload names a target list
// owner; a caller can only add to their own list, and a mismatch is a 401
// on this route.
func (h *ReadingListHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := shared.GetUser(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, MsgTokenMissing)
		return
	}

	var req CreateReadingListRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}

	if err := authz.CanModify(user.ID, req.UserID); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, MsgNoListPermission, err)
		return
	}

	entry, err := domain.NewReadingListEntry(req.UserID, req.BlogID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.readingListStore.Create(r.Context(), entry); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, entry)
}

// MarkRead handles PUT /api/readinglists/{id}. An entry that does not exist
// and an entry on someone else's list are indistinguishable to the caller:
// both are a 403 with the same message, so the route leaks nothing about
// other users' lists.
func (h *ReadingListHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	user, ok := shared.GetUser(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, MsgTokenMissing)
		return
	}

	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	entry, err := h.readingListStore.GetByID(r.Context(), id)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithErrorAndLog(w, r, http.StatusForbidden, MsgNotOnReadingList, err)
			return
		}
		HandleAPIError(w, r, err)
		return
	}

	if err := authz.CanModify(user.ID, entry.UserID); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusForbidden, MsgNotOnReadingList, err)
		return
	}

	updated, err := h.readingListStore.MarkRead(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyRead) {
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgAlreadyRead, err)
			return
		}
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, updated)
}
