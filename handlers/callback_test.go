package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	callbackRepo "roofline/database/repository/callback"
	"roofline/models"
)

type fakeCallbackRepo struct {
	callbacks []models.Callback
}

func (f *fakeCallbackRepo) List(_ context.Context, status string) ([]models.Callback, error) {
	if status == "" {
		return f.callbacks, nil
	}
	var out []models.Callback
	for _, cb := range f.callbacks {
		if cb.Status == status {
			out = append(out, cb)
		}
	}
	return out, nil
}

func (f *fakeCallbackRepo) Create(_ context.Context, cb *models.Callback) error {
	if cb.ID == "" {
		cb.ID = "cb-1"
	}
	if cb.Status == "" {
		cb.Status = models.CallbackPending
	}
	f.callbacks = append(f.callbacks, *cb)
	return nil
}

func (f *fakeCallbackRepo) UpdateStatus(_ context.Context, id, status string) error {
	for i := range f.callbacks {
		if f.callbacks[i].ID == id {
			f.callbacks[i].Status = status
			return nil
		}
	}
	return callbackRepo.ErrNotFound
}

func (f *fakeCallbackRepo) Delete(_ context.Context, id string) error {
	for i := range f.callbacks {
		if f.callbacks[i].ID == id {
			f.callbacks = append(f.callbacks[:i], f.callbacks[i+1:]...)
			return nil
		}
	}
	return callbackRepo.ErrNotFound
}

func TestCreateCallbackDefaultsToPending(t *testing.T) {
	repo := &fakeCallbackRepo{}
	h := NewCallbackHandler(repo)

	body := `{"customerName":"Dale","phone":"555-0134","callbackDate":"2026-09-16"}`
	w := perform(t, h.CreateCallback, http.MethodPost, "/api/callbacks", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body %s", w.Code, w.Body.String())
	}
	if len(repo.callbacks) != 1 || repo.callbacks[0].Status != models.CallbackPending {
		t.Errorf("callbacks = %+v, want one pending entry", repo.callbacks)
	}
}

func TestCreateCallbackRequiresCoreFields(t *testing.T) {
	h := NewCallbackHandler(&fakeCallbackRepo{})

	w := perform(t, h.CreateCallback, http.MethodPost, "/api/callbacks", `{"customerName":"Dale"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestListCallbacksFiltersByStatus(t *testing.T) {
	repo := &fakeCallbackRepo{callbacks: []models.Callback{
		{ID: "cb-1", CustomerName: "Dale", Status: models.CallbackPending},
		{ID: "cb-2", CustomerName: "Rae", Status: models.CallbackDone},
	}}
	h := NewCallbackHandler(repo)

	w := perform(t, h.ListCallbacks, http.MethodGet, "/api/callbacks?status=done", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	out := decode(t, w)
	list, ok := out["callbacks"].([]any)
	if !ok || len(list) != 1 {
		t.Fatalf("callbacks = %v, want one done entry", out["callbacks"])
	}

	w = perform(t, h.ListCallbacks, http.MethodGet, "/api/callbacks?status=bogus", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("bogus status: status = %d, want 400", w.Code)
	}
}

func TestUpdateCallbackStatus(t *testing.T) {
	repo := &fakeCallbackRepo{callbacks: []models.Callback{
		{ID: "cb-1", CustomerName: "Dale", Status: models.CallbackPending},
	}}
	h := NewCallbackHandler(repo)

	w := perform(t, h.UpdateCallbackStatus, http.MethodPatch, "/api/callbacks/cb-1/status",
		`{"status":"done"}`, gin.Param{Key: "id", Value: "cb-1"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}
	if repo.callbacks[0].Status != models.CallbackDone {
		t.Errorf("stored status = %q, want done", repo.callbacks[0].Status)
	}

	w = perform(t, h.UpdateCallbackStatus, http.MethodPatch, "/api/callbacks/cb-9/status",
		`{"status":"done"}`, gin.Param{Key: "id", Value: "cb-9"})
	if w.Code != http.StatusNotFound {
		t.Errorf("missing id: status = %d, want 404", w.Code)
	}
}
