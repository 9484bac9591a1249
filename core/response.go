package core

import "time"

// Pagination describes the page window of a list response.
// Total is the post-filter, pre-slice count.
type Pagination struct {
	CurrentPage int `json:"current_page"`
	Total       int `json:"total"`
	PerPage     int `json:"per_page"`
}

// Response is the uniform envelope returned by every API operation.
type Response[T any] struct {
	Success    bool        `json:"success"`
	Data       T           `json:"data"`
	Message    string      `json:"message,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

func OK[T any](data T, msg ...string) Response[T] {
	resp := Response[T]{Success: true, Data: data}
	if len(msg) > 0 {
		resp.Message = msg[0]
	}
	return resp
}

func OKPaged[T any](data T, pg Pagination) Response[T] {
	return Response[T]{Success: true, Data: data, Pagination: &pg}
}

// AnalyticsResponse extends the envelope with generation metadata.
type AnalyticsResponse[T any] struct {
	Response[T]
	GeneratedAt time.Time  `json:"generatedAt"`
	CacheExpiry *time.Time `json:"cacheExpiry,omitempty"`
}

// AnalyticsCacheTTL is how long generated analytics may be cached.
const AnalyticsCacheTTL = 5 * time.Minute

func AnalyticsOK[T any](data T, msg ...string) AnalyticsResponse[T] {
	return AnalyticsResponse[T]{
		Response:    OK(data, msg...),
		GeneratedAt: time.Now().UTC(),
	}
}

// AnalyticsOKCached marks the payload as cacheable for AnalyticsCacheTTL.
func AnalyticsOKCached[T any](data T, msg ...string) AnalyticsResponse[T] {
	resp := AnalyticsOK(data, msg...)
	expiry := resp.GeneratedAt.Add(AnalyticsCacheTTL)
	resp.CacheExpiry = &expiry
	return resp
}
