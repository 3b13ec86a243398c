package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/oksasatya/qos-portal/internal/domain/contract"
	"github.com/oksasatya/qos-portal/pkg/apiclient"
)

type recorded struct {
	method string
	path   string
	query  string
	body   string
	ctype  string
}

func newServer(t *testing.T, status int, reply string) (*Repositories, *[]recorded, *apiclient.MemoryStore) {
	t.Helper()
	var calls []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		calls = append(calls, recorded{method: r.Method, path: r.URL.Path, query: r.URL.RawQuery, body: string(b), ctype: r.Header.Get("Content-Type")})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	store := apiclient.NewMemoryStore("tok")
	api := apiclient.New(apiclient.Config{BaseURL: srv.URL + "/api", Tokens: store, Mode: apiclient.ModeServer})
	return NewRepositories(api), &calls, store
}

func TestRoutes(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name   string
		call   func(r *Repositories) error
		method string
		path   string
	}{
		{"users list", func(r *Repositories) error { _, err := r.Users.List(ctx, contract.ListQuery{}); return err }, http.MethodGet, "/api/users"},
		{"users get", func(r *Repositories) error { _, err := r.Users.Get(ctx, 3); return err }, http.MethodGet, "/api/users/3"},
		{"users update me", func(r *Repositories) error {
			_, err := r.Users.UpdateMe(ctx, contract.UpdateMeBody{Name: "x"})
			return err
		}, http.MethodPut, "/api/users/me"},
		{"users change password", func(r *Repositories) error {
			_, err := r.Users.ChangePassword(ctx, contract.ChangePasswordBody{})
			return err
		}, http.MethodPut, "/api/users/me/password"},
		{"plans create", func(r *Repositories) error {
			_, err := r.ServicePlans.Create(ctx, contract.CreateServicePlanBody{Name: "Pro"})
			return err
		}, http.MethodPost, "/api/service-plans"},
		{"plans update", func(r *Repositories) error {
			_, err := r.ServicePlans.Update(ctx, 9, contract.UpdateServicePlanBody{})
			return err
		}, http.MethodPut, "/api/service-plans/9"},
		{"plans delete", func(r *Repositories) error { return r.ServicePlans.Delete(ctx, 9) }, http.MethodDelete, "/api/service-plans/9"},
		{"subscriptions mine", func(r *Repositories) error { _, err := r.Subscriptions.ListMine(ctx, contract.ListQuery{}); return err }, http.MethodGet, "/api/subscriptions/me"},
		{"subscriptions cancel", func(r *Repositories) error { _, err := r.Subscriptions.Cancel(ctx, 4); return err }, http.MethodPut, "/api/subscriptions/4/cancel"},
		{"reviews delete", func(r *Repositories) error { return r.Reviews.Delete(ctx, 1) }, http.MethodDelete, "/api/reviews/1"},
		{"qos health check", func(r *Repositories) error { _, err := r.QosInstances.HealthCheck(ctx, 5); return err }, http.MethodPost, "/api/qos-instances/5/health-check"},
		{"payments mine", func(r *Repositories) error { _, err := r.Payments.ListMine(ctx, contract.ListQuery{}); return err }, http.MethodGet, "/api/payments/me"},
		{"payments get", func(r *Repositories) error { _, err := r.Payments.Get(ctx, 8); return err }, http.MethodGet, "/api/payments/8"},
		{"auth otp", func(r *Repositories) error { _, err := r.Auth.SendOTP(ctx, contract.SendOTPBody{}); return err }, http.MethodPost, "/api/auth/otp"},
		{"auth forgot", func(r *Repositories) error {
			_, err := r.Auth.ForgotPassword(ctx, contract.ForgotPasswordBody{})
			return err
		}, http.MethodPost, "/api/auth/forgot-password"},
		{"auth me", func(r *Repositories) error { _, err := r.Auth.Me(ctx); return err }, http.MethodGet, "/api/auth/me"},
		{"auth logout", func(r *Repositories) error { return r.Auth.Logout(ctx) }, http.MethodPost, "/api/auth/logout"},
	}
	// list endpoints answer with an array under data
	lists := map[string]bool{"users list": true, "subscriptions mine": true, "payments mine": true}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reply := `{"message":"ok","data":{}}`
			if lists[tc.name] {
				reply = `{"data":[],"totalItems":0}`
			}
			repos, calls, _ := newServer(t, http.StatusOK, reply)
			if err := tc.call(repos); err != nil {
				t.Fatalf("call: %v", err)
			}
			if len(*calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(*calls))
			}
			got := (*calls)[0]
			if got.method != tc.method || got.path != tc.path {
				t.Fatalf("expected %s %s, got %s %s", tc.method, tc.path, got.method, got.path)
			}
		})
	}
}

func TestList_DecodesEnvelopeAndQuery(t *testing.T) {
	repos, calls, _ := newServer(t, http.StatusOK, `{"data":[{"id":1,"name":"Basic","price":10,"durationDays":30,"maxTables":5,"status":"ACTIVE"}],"totalItems":1,"page":2,"limit":10,"totalPages":1}`)
	res, err := repos.ServicePlans.List(context.Background(), contract.ListQuery{Page: 2, Limit: 10, Search: " basic ", Status: "all"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(res.Data) != 1 || res.Data[0].Name != "Basic" || res.TotalItems != 1 || res.Page != 2 {
		t.Fatalf("unexpected result %+v", res)
	}
	if q := (*calls)[0].query; q != "limit=10&page=2&search=basic" {
		t.Fatalf("unexpected query %q", q)
	}
}

func TestList_EmptyDataIsNotNil(t *testing.T) {
	repos, _, _ := newServer(t, http.StatusOK, `{"totalItems":0}`)
	res, err := repos.Reviews.List(context.Background(), contract.ListQuery{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if res.Data == nil {
		t.Fatal("expected empty slice")
	}
}

func TestLogin_StoresToken(t *testing.T) {
	repos, calls, store := newServer(t, http.StatusOK, `{"message":"ok","data":{"accessToken":"fresh","user":{"id":1,"role":"ADMIN"}}}`)
	data, err := repos.Auth.Login(context.Background(), contract.LoginBody{Email: "a@b.co", Password: "secret1"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if data.AccessToken != "fresh" || data.User == nil || !data.User.IsAdmin() {
		t.Fatalf("unexpected data %+v", data)
	}
	if store.Get(context.Background()) != "fresh" {
		t.Fatal("expected token stored after login")
	}
	var sent map[string]string
	_ = json.Unmarshal([]byte((*calls)[0].body), &sent)
	if sent["email"] != "a@b.co" {
		t.Fatalf("unexpected body %v", sent)
	}
}

func TestLogin_EntityError(t *testing.T) {
	repos, _, _ := newServer(t, http.StatusUnprocessableEntity, `{"message":[{"path":"email","message":"Invalid"}]}`)
	_, err := repos.Auth.Login(context.Background(), contract.LoginBody{})
	var ee *apiclient.EntityError
	if !errors.As(err, &ee) {
		t.Fatalf("expected EntityError, got %v", err)
	}
	if len(ee.Errors) != 1 || ee.Errors[0].Field != "email" || ee.Errors[0].Message != "Invalid" {
		t.Fatalf("unexpected errors %+v", ee.Errors)
	}
}

func TestPaymentsCreate(t *testing.T) {
	repos, calls, _ := newServer(t, http.StatusCreated, `{"data":{"paymentUrl":"https://pay.example/abc","orderId":"ORD-1"}}`)
	sub := int64(3)
	res, err := repos.Payments.Create(context.Background(), contract.CreatePaymentBody{ServicePlanID: 2, SubscriptionID: &sub})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if res.PaymentURL != "https://pay.example/abc" || res.OrderID != "ORD-1" {
		t.Fatalf("unexpected result %+v", res)
	}
	if !strings.Contains((*calls)[0].body, `"subscriptionId":3`) {
		t.Fatalf("unexpected body %s", (*calls)[0].body)
	}
}

func TestGoogleLink(t *testing.T) {
	repos, _, _ := newServer(t, http.StatusOK, `{"data":"https://accounts.example/o/oauth"}`)
	link, err := repos.Auth.GoogleLink(context.Background())
	if err != nil {
		t.Fatalf("GoogleLink: %v", err)
	}
	if link != "https://accounts.example/o/oauth" {
		t.Fatalf("unexpected link %q", link)
	}
}

func TestMediaUpload_Multipart(t *testing.T) {
	repos, calls, _ := newServer(t, http.StatusCreated, `{"data":{"url":"https://cdn.example/a.png"}}`)
	m, err := repos.Media.UploadImage(context.Background(), "a.png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("UploadImage: %v", err)
	}
	if m.URL != "https://cdn.example/a.png" {
		t.Fatalf("unexpected media %+v", m)
	}
	got := (*calls)[0]
	if got.path != "/api/media/images/upload" || !strings.HasPrefix(got.ctype, "multipart/form-data") {
		t.Fatalf("unexpected request %s %s", got.path, got.ctype)
	}
	if !strings.Contains(got.body, `name="file"; filename="a.png"`) || !strings.Contains(got.body, "png-bytes") {
		t.Fatalf("file part missing from body")
	}
}
