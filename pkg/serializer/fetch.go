// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package serializer

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/mchmarny/recipe-finder/pkg/defaults"
	rferrors "github.com/mchmarny/recipe-finder/pkg/errors"
)

const (
	// HttpReaderUserAgent is sent when no other user agent is configured.
	HttpReaderUserAgent = "recipe-finder/1.0"

	// HttpReaderMaxBodyBytes caps a response body read by HttpReader.
	HttpReaderMaxBodyBytes int64 = 8 << 20
)

// HttpReaderOption configures an HttpReader.
type HttpReaderOption func(*HttpReader)

// HttpReader fetches JSON documents over HTTP. The zero-option reader uses a
// pooled transport with connect, TLS and response header timeouts from
// package defaults.
type HttpReader struct {
	UserAgent    string
	MaxBodyBytes int64
	Client       *http.Client

	totalTimeout time.Duration
}

// WithUserAgent sets the User-Agent request header.
func WithUserAgent(userAgent string) HttpReaderOption {
	return func(r *HttpReader) {
		r.UserAgent = userAgent
	}
}

// WithTotalTimeout bounds each request end to end, including the body read.
func WithTotalTimeout(timeout time.Duration) HttpReaderOption {
	return func(r *HttpReader) {
		r.totalTimeout = timeout
	}
}

// WithMaxBodyBytes overrides HttpReaderMaxBodyBytes.
func WithMaxBodyBytes(n int64) HttpReaderOption {
	return func(r *HttpReader) {
		r.MaxBodyBytes = n
	}
}

// WithClient replaces the HTTP client. A total timeout set with
// WithTotalTimeout is still applied to it.
func WithClient(client *http.Client) HttpReaderOption {
	return func(r *HttpReader) {
		r.Client = client
	}
}

// NewHttpReader returns an HttpReader configured with options.
func NewHttpReader(options ...HttpReaderOption) *HttpReader {
	r := &HttpReader{
		UserAgent:    HttpReaderUserAgent,
		MaxBodyBytes: HttpReaderMaxBodyBytes,
	}
	for _, opt := range options {
		opt(r)
	}

	if r.Client == nil {
		r.Client = &http.Client{
			Timeout:   defaults.HTTPClientTimeout,
			Transport: newTransport(),
		}
	}
	if r.totalTimeout > 0 {
		r.Client.Timeout = r.totalTimeout
	}
	if r.UserAgent == "" {
		r.UserAgent = HttpReaderUserAgent
	}
	if r.MaxBodyBytes <= 0 {
		r.MaxBodyBytes = HttpReaderMaxBodyBytes
	}
	return r
}

func newTransport() *http.Transport {
	return &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		DialContext: (&net.Dialer{
			Timeout:   defaults.HTTPConnectTimeout,
			KeepAlive: defaults.HTTPKeepAlive,
		}).DialContext,
		TLSHandshakeTimeout:   defaults.HTTPTLSHandshakeTimeout,
		ResponseHeaderTimeout: defaults.HTTPResponseHeaderTimeout,
		ExpectContinueTimeout: defaults.HTTPExpectContinueTimeout,
		IdleConnTimeout:       defaults.HTTPIdleConnTimeout,
		ForceAttemptHTTP2:     true,
		TLSClientConfig:       &tls.Config{MinVersion: tls.VersionTLS12},
	}
}

// Read is ReadWithContext with a background context.
func (r *HttpReader) Read(url string) ([]byte, error) {
	return r.ReadWithContext(context.Background(), url)
}

// ReadWithContext GETs url and returns the body of a 200 response.
//
// Failures to reach the server, non-200 responses and oversized bodies are
// reported with ErrCodeUpstream, deadline and cancellation with
// ErrCodeTimeout.
func (r *HttpReader) ReadWithContext(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, rferrors.New(rferrors.ErrCodeInvalidRequest, "url is empty")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if r.Client == nil {
		return nil, rferrors.New(rferrors.ErrCodeInternal, "http client is nil")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, rferrors.Wrap(rferrors.ErrCodeInvalidRequest,
			fmt.Sprintf("failed to create request for url %s", url), err)
	}
	req.Header.Set("User-Agent", r.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := r.Client.Do(req)
	if err != nil {
		code := rferrors.ErrCodeUpstream
		if ctx.Err() != nil {
			code = rferrors.ErrCodeTimeout
		}
		return nil, rferrors.WrapWithContext(code, "http request failed", err,
			map[string]any{"url": url})
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, rferrors.NewWithContext(rferrors.ErrCodeUpstream,
			fmt.Sprintf("failed to fetch data: status %s", resp.Status),
			map[string]any{"url": url, "status": resp.StatusCode})
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, r.MaxBodyBytes+1))
	if err != nil {
		code := rferrors.ErrCodeUpstream
		if ctx.Err() != nil {
			code = rferrors.ErrCodeTimeout
		}
		return nil, rferrors.Wrap(code, "failed to read response body", err)
	}
	if int64(len(data)) > r.MaxBodyBytes {
		return nil, rferrors.NewWithContext(rferrors.ErrCodeUpstream,
			"response body exceeds limit",
			map[string]any{"url": url, "limit": r.MaxBodyBytes})
	}

	return data, nil
}
