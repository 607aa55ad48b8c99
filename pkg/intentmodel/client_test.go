package intentmodel_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"food-ordering-assistant/pkg/intentmodel"
)

func TestClientClassify(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/classify" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var req struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if req.Text == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"predictions": [
				{"label": "admin_list_orders", "score": 0.93},
				{"label": "admin_view_stats", "score": 0.04}
			]
		}`))
	}))
	defer ts.Close()

	client := intentmodel.NewClient(ts.URL, 2*time.Second)

	t.Run("Success Flow", func(t *testing.T) {
		preds, err := client.Classify(context.Background(), "show all orders")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(preds) != 2 {
			t.Fatalf("expected 2 predictions, got %d", len(preds))
		}
		if preds[0].Label != "admin_list_orders" || preds[0].Score != 0.93 {
			t.Errorf("unexpected top prediction: %+v", preds[0])
		}
	})

	t.Run("Server Error", func(t *testing.T) {
		_, err := client.Classify(context.Background(), "cause_500")
		if err == nil {
			t.Error("expected error on 500 response")
		}
	})

	t.Run("Unreachable Server", func(t *testing.T) {
		dead := intentmodel.NewClient("http://127.0.0.1:1", 200*time.Millisecond)
		_, err := dead.Classify(context.Background(), "anything")
		if err == nil {
			t.Error("expected error on unreachable server")
		}
	})
}
