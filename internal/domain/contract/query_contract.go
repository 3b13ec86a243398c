package contract

import (
	"net/url"
	"strconv"
	"strings"
)

// ListQuery carries the list parameters every collection endpoint accepts.
type ListQuery struct {
	Page   int    `form:"page" json:"page,omitempty" binding:"omitempty,gte=1"`
	Limit  int    `form:"limit" json:"limit,omitempty" binding:"omitempty,gte=1,lte=100"`
	Search string `form:"search" json:"search,omitempty" binding:"omitempty,max=100"`
	Status string `form:"status" json:"status,omitempty"`
}

// Values encodes the non-zero fields. "all" is the UI's no-filter status and is dropped.
func (q ListQuery) Values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		v.Set("search", s)
	}
	if q.Status != "" && !strings.EqualFold(q.Status, "all") {
		v.Set("status", q.Status)
	}
	return v
}

// CacheKey is a stable encoding of the query for cache keys.
func (q ListQuery) CacheKey() string {
	enc := q.Values().Encode()
	if enc == "" {
		return "-"
	}
	return enc
}
