package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GbFerrera/asc-admin-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return New(server.URL, 2 * time.Second), server
}

func TestClientAttachesContextCredential(t *testing.T) {
	var gotAuthorization string

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotAuthorization = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	})
	defer server.Close()

	ctx := WithCredential(context.Background(), "session-token")

	_, err := client.ListOrders(ctx)

	require.NoError(t, err)
	assert.Equal(t, "Bearer session-token", gotAuthorization)
}

func TestClientSendsNoAuthorizationWithoutCredential(t *testing.T) {
	var gotAuthorization string

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotAuthorization = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	})
	defer server.Close()

	_, err := client.ListOrders(context.Background())

	require.NoError(t, err)
	assert.Empty(t, gotAuthorization)
}

func TestListOrdersDecodesCollection(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"id":1,"user_id":2,"total_amount":150,"status":"pending","payment_status":"paid",
			 "created_at":"2024-05-01T10:00:00Z","updated_at":"2024-05-01T10:00:00Z",
			 "items":[{"id":10,"certificate_id":3,"certificate_name":"Certificado Digital","price":150,"quantity":1,"status":"pending"}],
			 "user":{"id":2,"name":"Ana","email":"ana@example.com"}}
		]`))
	})
	defer server.Close()

	orders, err := client.ListOrders(context.Background())

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, int64(1), orders[0].ID)
	assert.Equal(t, models.StatusPending, orders[0].Status)
	assert.Equal(t, models.PaymentPaid, orders[0].PaymentStatus)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, "Certificado Digital", orders[0].Items[0].CertificateName)
	require.NotNil(t, orders[0].User)
	assert.Equal(t, "Ana", orders[0].User.Name)
}

func TestListUserOrdersTargetsUserPath(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/user/42", r.URL.Path)
		_, _ = w.Write([]byte(`[]`))
	})
	defer server.Close()

	orders, err := client.ListUserOrders(context.Background(), 42)

	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestGetOrderReturnsNilForMissingOrder(t *testing.T) {
	testCases := []struct {
		testName string
		handler  http.HandlerFunc
	}{
		{
			testName: "Should treat 404 as a missing order",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		},
		{
			testName: "Should treat an empty body as a missing order",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
		},
		{
			testName: "Should treat a null body as a missing order",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`null`))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			client, server := newTestClient(tc.handler)
			defer server.Close()

			order, err := client.GetOrder(context.Background(), 5)

			assert.NoError(t, err)
			assert.Nil(t, order)
		})
	}
}

func TestClientErrorTaxonomy(t *testing.T) {
	testCases := []struct {
		testName    string
		status      int
		expectedErr error
	}{
		{"Should map 401 to ErrUnauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"Should map 403 to ErrForbidden", http.StatusForbidden, ErrForbidden},
		{"Should map 500 to ErrServer", http.StatusInternalServerError, ErrServer},
		{"Should map 503 to ErrServer", http.StatusServiceUnavailable, ErrServer},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			})
			defer server.Close()

			err := client.UpdateOrderStatus(context.Background(), 5, models.StatusCompleted)

			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func TestClientReportsUnreachableBackend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := New(server.URL, 2 * time.Second)
	server.Close()

	err := client.UpdateOrderStatus(context.Background(), 5, models.StatusCompleted)

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClientSurfacesBackendMessage(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"status desconhecido"}`))
	})
	defer server.Close()

	err := client.UpdateOrderStatus(context.Background(), 5, models.OrderStatus("shipped"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status desconhecido")
}

func TestUpdateOrderStatusSendsPartialUpdate(t *testing.T) {
	var gotMethod, gotPath, gotBody string

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotMethod, gotPath, gotBody = r.Method, r.URL.Path, string(body)
		_, _ = w.Write([]byte(`{"id":5,"status":"completed"}`))
	})
	defer server.Close()

	err := client.UpdateOrderStatus(context.Background(), 5, models.StatusCompleted)

	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/orders/5", gotPath)
	assert.JSONEq(t, `{"status":"completed"}`, gotBody)
}

func TestUpdatePaymentStatusSendsPartialUpdate(t *testing.T) {
	var gotPath, gotBody string

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotPath, gotBody = r.URL.Path, string(body)
		w.WriteHeader(http.StatusOK)
	})
	defer server.Close()

	err := client.UpdatePaymentStatus(context.Background(), 5, models.PaymentPaid)

	require.NoError(t, err)
	assert.Equal(t, "/orders/5", gotPath)
	assert.JSONEq(t, `{"payment_status":"paid"}`, gotBody)
}

func TestUpdateItemStatusTargetsSubResource(t *testing.T) {
	var gotPath, gotBody string

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotPath, gotBody = r.URL.Path, string(body)
		w.WriteHeader(http.StatusOK)
	})
	defer server.Close()

	err := client.UpdateItemStatus(context.Background(), 5, 10, models.StatusProcessing)

	require.NoError(t, err)
	assert.Equal(t, "/orders/5/items/10", gotPath)
	assert.JSONEq(t, `{"status":"processing"}`, gotBody)
}

func TestCancelOrderPatchesBothStatuses(t *testing.T) {
	var gotMethod, gotPath, gotBody string

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotMethod, gotPath, gotBody = r.Method, r.URL.Path, string(body)
		w.WriteHeader(http.StatusOK)
	})
	defer server.Close()

	err := client.CancelOrder(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/orders/5", gotPath)
	assert.JSONEq(t, `{"status":"cancelled","payment_status":"failed"}`, gotBody)
}

func TestCreateOrderSendsPayload(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)

		var data models.OrderCreateData
		require.NoError(t, json.NewDecoder(r.Body).Decode(&data))
		assert.Equal(t, int64(2), data.UserID)
		require.Len(t, data.CertificateItems, 1)
		assert.Equal(t, int64(3), data.CertificateItems[0].CertificateID)

		_, _ = w.Write([]byte(`{"id":9,"user_id":2,"total_amount":150,"status":"pending","payment_status":"pending",
			"created_at":"2024-05-01T10:00:00Z","updated_at":"2024-05-01T10:00:00Z","items":[]}`))
	})
	defer server.Close()

	order, err := client.CreateOrder(context.Background(), models.OrderCreateData{
		UserID:           2,
		CertificateItems: []models.OrderCreateItem{{CertificateID: 3, Quantity: 1}},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(9), order.ID)
	assert.Equal(t, models.StatusPending, order.Status)
}
