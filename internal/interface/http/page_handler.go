package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/qos-portal/internal/application"
	"github.com/oksasatya/qos-portal/internal/domain/contract"
	"github.com/oksasatya/qos-portal/internal/domain/entity"
	"github.com/oksasatya/qos-portal/internal/interface/middleware"
	"github.com/oksasatya/qos-portal/pkg/apiclient"
	"github.com/oksasatya/qos-portal/pkg/helpers"
	"github.com/oksasatya/qos-portal/pkg/pagination"
)

const (
	adminPageSize = 10
	plansPageSize = 9
)

type PageHandler struct {
	Base
	Svc *application.Services
}

func NewPageHandler(svc *application.Services, cookies *helpers.Manager, logger *logrus.Logger) *PageHandler {
	return &PageHandler{Base: Base{Logger: logger, Cookies: cookies}, Svc: svc}
}

type pageBase struct {
	Title   string
	Session *helpers.TokenPayload
	Flash   string
}

func newPage(c *gin.Context, title string) pageBase {
	p, _ := middleware.SessionFromCtx(c)
	return pageBase{Title: title, Session: p, Flash: c.Query("flash")}
}

type loginView struct {
	pageBase
	Redirect string
}

type listView struct {
	pageBase
	BasePath   string
	Search     string
	Status     string
	Statuses   []string
	Columns    []string
	Rows       [][]string
	Page       int
	TotalPages int
	TotalItems int
	Pager      []pagination.Item
	Query      url.Values
}

type adminSection struct {
	Label string
	Path  string
	Count int
}

type adminView struct {
	pageBase
	Sections []adminSection
}

type portalView struct {
	pageBase
	Me            *entity.User
	Subscriptions []entity.Subscription
}

func (portalView) DaysLeft(s entity.Subscription) int { return s.DaysLeft(time.Now()) }

type accountView struct {
	pageBase
	Me *entity.User
}

type paymentView struct {
	pageBase
	Success bool
	OrderID string
	Amount  string
	Status  string
}

type errorView struct {
	pageBase
	Message string
}

func (h *PageHandler) Login(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", loginView{pageBase: newPage(c, "Log in"), Redirect: safeRedirect(c.Query("redirect"))})
}

func (h *PageHandler) Register(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", newPage(c, "Register"))
}

func (h *PageHandler) ForgotPassword(c *gin.Context) {
	c.HTML(http.StatusOK, "forgot_password.html", newPage(c, "Forgot password"))
}

// Dashboard sends the user to the home of their role. A token that does not
// decode, or names no known role, is treated as no session at all.
func (h *PageHandler) Dashboard(c *gin.Context) {
	p, ok := middleware.SessionFromCtx(c)
	if !ok || !p.HasKnownRole() {
		h.Cookies.Clear(c)
		c.Redirect(http.StatusFound, loginPath)
		return
	}
	c.Redirect(http.StatusFound, p.HomePath())
}

func (h *PageHandler) Admin(c *gin.Context) {
	ctx := c.Request.Context()
	one := contract.ListQuery{Page: 1, Limit: 1}
	type counter struct {
		label, path string
		count       func(context.Context) (int, error)
	}
	counters := []counter{
		{"Customers", "/admin/users", func(ctx context.Context) (int, error) { return total(h.Svc.Users.List(ctx, one)) }},
		{"Service plans", "/admin/service-plans", func(ctx context.Context) (int, error) { return total(h.Svc.ServicePlans.List(ctx, one)) }},
		{"Subscriptions", "/admin/subscriptions", func(ctx context.Context) (int, error) { return total(h.Svc.Subscriptions.List(ctx, one)) }},
		{"Reviews", "/admin/reviews", func(ctx context.Context) (int, error) { return total(h.Svc.Reviews.List(ctx, one)) }},
		{"QOS instances", "/admin/qos-instances", func(ctx context.Context) (int, error) { return total(h.Svc.QosInstances.List(ctx, one)) }},
		{"Payments", "/admin/payments", func(ctx context.Context) (int, error) { return total(h.Svc.Payments.List(ctx, one)) }},
	}
	view := adminView{pageBase: newPage(c, "Admin")}
	for _, ct := range counters {
		n, err := ct.count(ctx)
		if err != nil {
			h.pageError(c, err)
			return
		}
		view.Sections = append(view.Sections, adminSection{Label: ct.label, Path: ct.path, Count: n})
	}
	c.HTML(http.StatusOK, "admin.html", view)
}

func total[T any](res *contract.ListRes[T], err error) (int, error) {
	if err != nil {
		return 0, err
	}
	return res.TotalItems, nil
}

// listPage describes an admin table backed by a paged backend list.
type listPage[T any] struct {
	title    string
	path     string
	statuses []string
	columns  []string
	list     func(ctx context.Context, q contract.ListQuery) (*contract.ListRes[T], error)
	row      func(T) []string
}

func adminList[T any](h *PageHandler, lp listPage[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := pageQuery(c, adminPageSize)
		res, err := lp.list(c.Request.Context(), q)
		if err != nil {
			h.pageError(c, err)
			return
		}
		rows := make([][]string, 0, len(res.Data))
		for _, it := range res.Data {
			rows = append(rows, lp.row(it))
		}
		page := res.Page
		if page <= 0 {
			page = q.Page
		}
		c.HTML(http.StatusOK, "list.html", listView{
			pageBase:   newPage(c, lp.title),
			BasePath:   lp.path,
			Search:     q.Search,
			Status:     q.Status,
			Statuses:   lp.statuses,
			Columns:    lp.columns,
			Rows:       rows,
			Page:       page,
			TotalPages: res.TotalPages,
			TotalItems: res.TotalItems,
			Pager:      pagination.Window(page, res.TotalPages),
			Query:      filterQuery(q),
		})
	}
}

func (h *PageHandler) AdminUsers() gin.HandlerFunc {
	return adminList(h, listPage[entity.User]{
		title:    "Customers",
		path:     "/admin/users",
		statuses: []string{string(entity.UserActive), string(entity.UserInactive), string(entity.UserBlocked)},
		columns:  []string{"ID", "Name", "Email", "Restaurant", "Status"},
		list:     h.Svc.Users.List,
		row: func(u entity.User) []string {
			return []string{idStr(u.ID), u.Name, u.Email, u.RestaurantName, string(u.Status)}
		},
	})
}

func (h *PageHandler) AdminServicePlans() gin.HandlerFunc {
	return adminList(h, listPage[entity.ServicePlan]{
		title:    "Service plans",
		path:     "/admin/service-plans",
		statuses: []string{string(entity.PlanActive), string(entity.PlanInactive)},
		columns:  []string{"ID", "Name", "Price", "Days", "Tables", "Status"},
		list:     h.Svc.ServicePlans.List,
		row: func(p entity.ServicePlan) []string {
			return []string{idStr(p.ID), p.Name, money(p.Price), strconv.Itoa(p.DurationDays), strconv.Itoa(p.MaxTables), string(p.Status)}
		},
	})
}

func (h *PageHandler) AdminSubscriptions() gin.HandlerFunc {
	return adminList(h, listPage[entity.Subscription]{
		title:    "Subscriptions",
		path:     "/admin/subscriptions",
		statuses: []string{string(entity.SubscriptionPending), string(entity.SubscriptionActive), string(entity.SubscriptionExpired), string(entity.SubscriptionCancelled)},
		columns:  []string{"ID", "Customer", "Plan", "Ends", "Status"},
		list:     h.Svc.Subscriptions.List,
		row: func(s entity.Subscription) []string {
			customer, plan := idStr(s.UserID), idStr(s.ServicePlanID)
			if s.User != nil {
				customer = s.User.Name
			}
			if s.ServicePlan != nil {
				plan = s.ServicePlan.Name
			}
			return []string{idStr(s.ID), customer, plan, date(s.EndDate), string(s.Status)}
		},
	})
}

func (h *PageHandler) AdminReviews() gin.HandlerFunc {
	return adminList(h, listPage[entity.Review]{
		title:    "Reviews",
		path:     "/admin/reviews",
		statuses: []string{string(entity.ReviewPending), string(entity.ReviewApproved), string(entity.ReviewHidden)},
		columns:  []string{"ID", "Customer", "Rating", "Content", "Status"},
		list:     h.Svc.Reviews.List,
		row: func(r entity.Review) []string {
			customer := idStr(r.UserID)
			if r.User != nil {
				customer = r.User.Name
			}
			return []string{idStr(r.ID), customer, strconv.Itoa(r.Rating), r.Content, string(r.Status)}
		},
	})
}

func (h *PageHandler) AdminQosInstances() gin.HandlerFunc {
	return adminList(h, listPage[entity.QosInstance]{
		title:    "QOS instances",
		path:     "/admin/qos-instances",
		statuses: []string{string(entity.InstanceRunning), string(entity.InstanceStopped), string(entity.InstanceError)},
		columns:  []string{"ID", "Name", "Domain", "Status", "Health", "Response", "Checked"},
		list:     h.Svc.QosInstances.List,
		row: func(q entity.QosInstance) []string {
			rt := "-"
			if q.ResponseTimeMs != nil {
				rt = strconv.FormatInt(*q.ResponseTimeMs, 10) + " ms"
			}
			return []string{idStr(q.ID), q.Name, q.Domain, string(q.Status), string(q.HealthStatus), rt, date(q.LastHealthCheckAt)}
		},
	})
}

func (h *PageHandler) AdminPayments() gin.HandlerFunc {
	return adminList(h, listPage[entity.Payment]{
		title:    "Payments",
		path:     "/admin/payments",
		statuses: []string{string(entity.PaymentPending), string(entity.PaymentSuccess), string(entity.PaymentFailed)},
		columns:  paymentColumns,
		list:     h.Svc.Payments.List,
		row:      paymentRow,
	})
}

func (h *PageHandler) PortalPayments() gin.HandlerFunc {
	return adminList(h, listPage[entity.Payment]{
		title:    "My payments",
		path:     "/portal/payments",
		statuses: []string{string(entity.PaymentPending), string(entity.PaymentSuccess), string(entity.PaymentFailed)},
		columns:  paymentColumns,
		list:     h.Svc.Payments.ListMine,
		row:      paymentRow,
	})
}

var paymentColumns = []string{"Order", "Amount", "Method", "Paid", "Status"}

func paymentRow(p entity.Payment) []string {
	return []string{p.OrderID, money(p.Amount), p.Method, date(p.PaidAt), string(p.Status)}
}

func (h *PageHandler) Portal(c *gin.Context) {
	ctx := c.Request.Context()
	me, err := h.Svc.Auth.Me(ctx)
	if err != nil {
		h.pageError(c, err)
		return
	}
	subs, err := h.Svc.Subscriptions.ListMine(ctx, contract.ListQuery{Page: 1, Limit: 20})
	if err != nil {
		h.pageError(c, err)
		return
	}
	c.HTML(http.StatusOK, "portal.html", portalView{pageBase: newPage(c, "Portal"), Me: me, Subscriptions: subs.Data})
}

// PortalPlans lists the plans on sale. The catalogue is small, so it is
// fetched whole and searched and paged in memory.
func (h *PageHandler) PortalPlans(c *gin.Context) {
	q := pageQuery(c, plansPageSize)
	res, err := h.Svc.ServicePlans.List(c.Request.Context(), contract.ListQuery{Page: 1, Limit: 100, Status: string(entity.PlanActive)})
	if err != nil {
		h.pageError(c, err)
		return
	}
	matched := pagination.Filter(res.Data, pagination.Criteria{Search: q.Search}, func(p entity.ServicePlan) []string {
		return append([]string{p.Name, p.Description}, p.Features...)
	}, nil)
	items, meta := pagination.Paginate(matched, q.Page, q.Limit)

	rows := make([][]string, 0, len(items))
	for _, p := range items {
		rows = append(rows, []string{p.Name, money(p.Price), strconv.Itoa(p.DurationDays) + " days", strconv.Itoa(p.MaxTables), p.Description})
	}
	c.HTML(http.StatusOK, "list.html", listView{
		pageBase:   newPage(c, "Plans"),
		BasePath:   "/portal/plans",
		Search:     q.Search,
		Columns:    []string{"Plan", "Price", "Duration", "Tables", "Description"},
		Rows:       rows,
		Page:       meta.Page,
		TotalPages: meta.TotalPages,
		TotalItems: meta.TotalItems,
		Pager:      pagination.Window(meta.Page, meta.TotalPages),
		Query:      filterQuery(contract.ListQuery{Search: q.Search}),
	})
}

func (h *PageHandler) Account(c *gin.Context) {
	me, err := h.Svc.Auth.Me(c.Request.Context())
	if err != nil {
		h.pageError(c, err)
		return
	}
	c.HTML(http.StatusOK, "account.html", accountView{pageBase: newPage(c, "Account"), Me: me})
}

func (h *PageHandler) PaymentSuccess(c *gin.Context) { h.paymentResult(c, true) }

func (h *PageHandler) PaymentFailure(c *gin.Context) { h.paymentResult(c, false) }

func (h *PageHandler) paymentResult(c *gin.Context, ok bool) {
	title := "Payment failed"
	if ok {
		title = "Payment successful"
	}
	c.HTML(http.StatusOK, "payment_result.html", paymentView{
		pageBase: newPage(c, title),
		Success:  ok,
		OrderID:  c.Query("orderId"),
		Amount:   c.Query("amount"),
		Status:   c.Query("status"),
	})
}

// pageError redirects on a dead session and renders the error page otherwise.
func (h *PageHandler) pageError(c *gin.Context, err error) {
	var (
		ae *apiclient.AuthError
		he *apiclient.HTTPError
	)
	switch {
	case errors.As(err, &ae):
		if ae.RedirectTo != "" {
			c.Redirect(http.StatusFound, ae.RedirectTo)
			return
		}
		h.Cookies.Clear(c)
		c.Redirect(http.StatusFound, loginPath)
	case errors.As(err, &he):
		c.HTML(he.Status, "error.html", errorView{pageBase: newPage(c, "Something went wrong"), Message: he.Message})
	default:
		helpers.LogError(h.Logger, "page render failed", err, logrus.Fields{"path": c.Request.URL.Path, "request_id": c.GetString("request_id")})
		c.HTML(http.StatusBadGateway, "error.html", errorView{pageBase: newPage(c, "Something went wrong"), Message: "The service is unavailable. Please try again."})
	}
}

// pageQuery reads page, search and status from the URL with lenient defaults.
func pageQuery(c *gin.Context, limit int) contract.ListQuery {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	return contract.ListQuery{Page: page, Limit: limit, Search: c.Query("search"), Status: c.Query("status")}
}

// filterQuery is what the pager links carry besides the page number.
func filterQuery(q contract.ListQuery) url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	return v
}

func idStr(n int64) string { return strconv.FormatInt(n, 10) }

func money(v float64) string { return fmt.Sprintf("%.2f", v) }

func date(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02")
}
