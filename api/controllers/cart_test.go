package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestCartAddItem(t *testing.T) {
	store := testStore(t)
	logg := testLogger()

	t.Run("success", func(t *testing.T) {
		session := testSession(t, store, nil)
		body := `{"product_id":"h201","selected_options":{"hand":"Right Hand","color":"Black"}}`
		req := sessionRequest(http.MethodPost, "/api/v1/cart/items", body, session)
		rec := httptest.NewRecorder()
		CartAddItem(store, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if session.Cart.Count() != 1 {
			t.Fatalf("expected one line item, got %d", session.Cart.Count())
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		session := testSession(t, store, nil)
		req := sessionRequest(http.MethodPost, "/api/v1/cart/items", `{"product_id":"ghost"}`, session)
		rec := httptest.NewRecorder()
		CartAddItem(store, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("invalid option value", func(t *testing.T) {
		session := testSession(t, store, nil)
		body := `{"product_id":"h201","selected_options":{"hand":"Ambidextrous","color":"Black"}}`
		req := sessionRequest(http.MethodPost, "/api/v1/cart/items", body, session)
		rec := httptest.NewRecorder()
		CartAddItem(store, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if session.Cart.Count() != 0 {
			t.Fatal("rejected add must not touch the cart")
		}
	})

	t.Run("missing session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", nil)
		rec := httptest.NewRecorder()
		CartAddItem(store, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestCartRemoveItem(t *testing.T) {
	store := testStore(t)
	logg := testLogger()
	session := testSession(t, store, nil)

	product, _ := store.GetProduct("gcode-xst")
	item, err := session.Cart.AddItem(product, map[string]string{"hand": "Right Hand", "color": "Mahogany"})
	if err != nil {
		t.Fatalf("seed cart: %v", err)
	}

	remove := func(id string) *httptest.ResponseRecorder {
		req := sessionRequest(http.MethodDelete, "/api/v1/cart/items/"+id, "", session)
		req = withURLParam(req, "lineItemId", id)
		rec := httptest.NewRecorder()
		CartRemoveItem(logg).ServeHTTP(rec, req)
		return rec
	}

	if rec := remove("not-a-uuid"); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d", rec.Code)
	}

	if rec := remove(item.ID.String()); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if session.Cart.Count() != 0 {
		t.Fatal("line item not removed")
	}

	// Retried delete of a gone item is a quiet no-op.
	if rec := remove(uuid.NewString()); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for absent id, got %d", rec.Code)
	}
}

func TestCartFetch(t *testing.T) {
	store := testStore(t)
	logg := testLogger()
	session := testSession(t, store, nil)

	req := sessionRequest(http.MethodGet, "/api/v1/cart", "", session)
	rec := httptest.NewRecorder()
	CartFetch(logg).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data := decodeData(t, rec)
	if got := data["count"].(float64); got != 0 {
		t.Fatalf("expected empty cart, count %v", got)
	}
	if got := data["total"].(string); got != "0" {
		t.Fatalf("expected zero total, got %q", got)
	}
}
