package cryptoalert

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// doJSON sends a request with an optional JSON body and decodes the JSON response into T.
// An empty 2xx body decodes to the zero value of T.
//
//nolint:revive // Has no sense, it's cause Go doesn't allow struct methods to be generic.
func doJSON[T any](
	c *ClientImpl,
	ctx context.Context,
	method string,
	uri string,
	query url.Values,
	body any,
) (*T, error) {
	route, err := url.JoinPath(c.apiRoot, uri)
	if err != nil {
		return nil, err
	}

	requestBody := io.Reader(http.NoBody)

	if body != nil {
		payload, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", marshalErr)
		}

		requestBody = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, route, requestBody)
	if err != nil {
		return nil, err
	}

	if query != nil {
		request.URL.RawQuery = query.Encode()
	}

	request.Header.Set(acceptHeader, jsonContentType)

	if body != nil {
		request.Header.Set(contentTypeHeader, jsonContentType)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}

		return nil, newTransportError(method, uri, err)
	}

	defer response.Body.Close()

	// One byte past the limit tells an oversized body from one that fits exactly.
	payload, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBodySize+1))
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}

		return nil, newTransportError(method, uri, err)
	}

	tooLarge := len(payload) > maxResponseBodySize
	if tooLarge {
		payload = payload[:maxResponseBodySize]
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return nil, newStatusError(method, uri, response.StatusCode, payload)
	}

	if tooLarge {
		return nil, fmt.Errorf("%s %s: %w (limit %d bytes)", method, uri, ErrResponseTooLarge, maxResponseBodySize)
	}

	var result T

	if len(bytes.TrimSpace(payload)) == 0 {
		return &result, nil
	}

	if err = json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("failed to decode %s %s response: %w", method, uri, err)
	}

	return &result, nil
}
