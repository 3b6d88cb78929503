package coinfolio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
)

// contains http utils to deal with the remote ticker service

// jget performs a single HTTP GET request and returns the response body.
// Any failure is an ErrDataSource, a failure due to a deadline is also an ErrNetworkTimeout.
func jget(ctx context.Context, client *http.Client, addr string, header http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataSource, err)
	}
	for k, v := range header {
		req.Header[k] = v
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, transportError(req, err)
	}
	defer resp.Body.Close()
	log.Printf("%v %v%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, transportError(req, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := resp.Status
		if detail := apiErrorMessage(buf.Bytes()); detail != "" {
			msg += ": " + detail
		}
		return nil, fmt.Errorf("%w: cannot http GET %v%v: %v", ErrDataSource, req.URL.Host, req.URL.Path, msg)
	}
	return buf.Bytes(), nil
}

func transportError(req *http.Request, err error) error {
	var nerr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &nerr) && nerr.Timeout()) {
		return fmt.Errorf("%w: %w: GET %v%v", ErrDataSource, ErrNetworkTimeout, req.URL.Host, req.URL.Path)
	}
	return fmt.Errorf("%w: %w", ErrDataSource, err)
}
