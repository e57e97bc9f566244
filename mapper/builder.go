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

package mapper

import (
	"net/http"

	"dirpx.dev/dresult/result"
	"google.golang.org/grpc/codes"
)

type prefixRule struct {
	// prefix is the raw, dot-separated domain code prefix (may contain "*").
	prefix string
	// val is the transport status. gRPC codes are kept as int until New.
	val int
}

// builder collects user adjustments on top of the library defaults.
type builder struct {
	httpDefaults map[result.Status]int
	grpcDefaults map[result.Status]int

	httpOverride map[result.Status]int
	grpcOverride map[result.Status]int

	httpPrefixes map[result.Status][]prefixRule
	grpcPrefixes map[result.Status][]prefixRule

	// used for statuses without any default
	fallbackHTTP int
	fallbackGRPC codes.Code
}

func newBuilder() *builder {
	b := &builder{
		httpDefaults: make(map[result.Status]int, len(defaultHTTP)),
		grpcDefaults: make(map[result.Status]int, len(defaultGRPC)),
		httpOverride: make(map[result.Status]int),
		grpcOverride: make(map[result.Status]int),
		httpPrefixes: make(map[result.Status][]prefixRule),
		grpcPrefixes: make(map[result.Status][]prefixRule),
		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = int(v)
	}
	return b
}
