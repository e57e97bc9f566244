/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package httpx writes result outcomes as HTTP responses.
//
// Failures are rendered as the protojson form of the google.rpc.Status built
// by grpcx.ToStatus, so HTTP and gRPC clients see the same error payload.
// Successes are rendered as a small JSON object unless the resolved HTTP
// status is 204.
package httpx

import (
	"fmt"
	"net/http"
	"strconv"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/grpcx"
	"dirpx.dev/dresult/mapper"
	"dirpx.dev/dresult/result"
)

// Header names set by Writer.
const (
	HeaderCorrelationID = "X-Correlation-Id"
	HeaderRetryAfter    = "Retry-After"
)

// Meta carries extra context that the HTTP layer can add on top of an
// outcome. All fields are optional and typically come from request context,
// headers, or rate-limiter output.
type Meta struct {
	Correlation       string
	RetryAfterSeconds int32
}

// Writer is a thin adapter that knows how to turn an outcome into an HTTP
// response using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper
}

// Write resolves the HTTP status via the Mapper and writes the response.
//
// The body is fully encoded before anything is written, so a returned error
// means rw was left untouched. No redaction is performed: whatever the
// outcome carries is exposed as-is.
func (w Writer) Write(rw http.ResponseWriter, o result.Outcome, meta Meta) error {
	if o == nil {
		return fmt.Errorf("%w: nil outcome", dresult.ErrInvalidState)
	}
	if w.Mapper == nil {
		return fmt.Errorf("%w: writer without mapper", dresult.ErrInvalidState)
	}

	st := mapper.StatusOf(w.Mapper, o)
	body, err := encode(w.Mapper, o, st.HTTP)
	if err != nil {
		return err
	}

	h := rw.Header()
	if body != nil {
		h.Set("Content-Type", "application/json")
	}
	if meta.Correlation != "" {
		h.Set(HeaderCorrelationID, meta.Correlation)
	}
	if meta.RetryAfterSeconds > 0 {
		h.Set(HeaderRetryAfter, strconv.Itoa(int(meta.RetryAfterSeconds)))
	}
	rw.WriteHeader(st.HTTP)
	if body != nil {
		if _, err := rw.Write(body); err != nil {
			return fmt.Errorf("httpx: write body: %w", err)
		}
	}
	return nil
}

func encode(m apis.Mapper, o result.Outcome, httpStatus int) ([]byte, error) {
	if o.IsSuccess() {
		if httpStatus == http.StatusNoContent {
			return nil, nil
		}
		s, err := structpb.NewStruct(map[string]any{
			"status":  o.Status().String(),
			"message": o.SuccessMessage(),
		})
		if err != nil {
			return nil, fmt.Errorf("httpx: build body: %w", err)
		}
		return marshal(s)
	}

	gs, err := grpcx.ToStatus(m, o)
	if err != nil {
		return nil, err
	}
	return marshal(gs.Proto())
}

// protojson keeps field names and well-known types (Any details) intact.
func marshal(m proto.Message) ([]byte, error) {
	b, err := protojson.MarshalOptions{EmitUnpopulated: false}.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("httpx: encode body: %w", err)
	}
	return b, nil
}
