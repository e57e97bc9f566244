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

// Package grpcx projects result outcomes onto gRPC statuses and back.
//
// A failed outcome becomes a *status.Status whose code comes from an
// apis.Mapper and whose details are standard google.rpc messages:
//
//   - one errdetails.ErrorInfo with Reason set to the outcome status name;
//   - for Invalid outcomes, one errdetails.BadRequest with a field violation
//     per validation error;
//   - otherwise, one errdetails.ErrorInfo{Reason: "ERROR"} per opaque error
//     string, carrying the raw string in Metadata["error"].
//
// FromStatus reverses the projection, so outcomes survive a gRPC hop
// without loss.
package grpcx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/adapter"
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/mapper"
	"dirpx.dev/dresult/result"
)

// Domain is the ErrorInfo domain used for every detail this package emits.
const Domain = "dirpx.dev/dresult"

const (
	reasonError    = "ERROR"
	metaError      = "error"
	metaSeverity   = "severity."
	metaStatusCode = "status"
)

// ToStatus converts a failed outcome into a gRPC status resolved via m.
// Successful outcomes yield (nil, nil).
func ToStatus(m apis.Mapper, o result.Outcome) (*status.Status, error) {
	if o == nil || o.IsSuccess() {
		return nil, nil
	}
	st := o.Status()
	if !st.Known() {
		return nil, fmt.Errorf("%w: %s", dresult.ErrUnrecognizedStatus, st)
	}

	gc := mapper.StatusOf(m, o).GRPC
	if gc == codes.OK {
		// A failure must never travel as OK, whatever the mapping says.
		gc = codes.Unknown
	}

	head := &errdetails.ErrorInfo{
		Domain:   Domain,
		Reason:   st.String(),
		Metadata: map[string]string{metaStatusCode: strconv.Itoa(int(st))},
	}
	details := []protoadapt.MessageV1{head}

	if st == result.StatusInvalid {
		br := &errdetails.BadRequest{}
		for i, v := range o.ValidationErrors() {
			br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       v.Identifier,
				Reason:      v.ErrorCode,
				Description: v.ErrorMessage,
			})
			if v.Severity != "" {
				head.Metadata[metaSeverity+strconv.Itoa(i)] = string(v.Severity)
			}
		}
		details = append(details, br)
	} else {
		for _, raw := range o.Errors() {
			details = append(details, &errdetails.ErrorInfo{
				Domain:   Domain,
				Reason:   reasonError,
				Metadata: map[string]string{metaError: raw},
			})
		}
	}

	out, err := status.New(gc, adapter.Error(o)).WithDetails(details...)
	if err != nil {
		return nil, fmt.Errorf("grpcx: attach details: %w", err)
	}
	return out, nil
}

// FromStatus rebuilds a result from a gRPC status.
//
// Statuses produced by ToStatus round-trip exactly. Foreign statuses, which
// carry none of our details, are classified by their gRPC code and keep the
// status message as their single error string. A nil or OK status is a
// plain success.
func FromStatus(s *status.Status) (result.Result, error) {
	if s == nil || s.Code() == codes.OK {
		return result.Success(), nil
	}

	var (
		head  *errdetails.ErrorInfo
		errs  []string
		br    *errdetails.BadRequest
		found bool
	)
	for _, d := range s.Details() {
		switch v := d.(type) {
		case *errdetails.ErrorInfo:
			if v.GetDomain() != Domain {
				continue
			}
			if v.GetReason() == reasonError {
				errs = append(errs, v.GetMetadata()[metaError])
				continue
			}
			if head == nil {
				head, found = v, true
			}
		case *errdetails.BadRequest:
			if br == nil {
				br = v
			}
		}
	}

	if !found {
		return result.Of(statusOfCode(s.Code()), "", []string{s.Message()}, nil), nil
	}

	st, err := result.ParseStatus(head.GetReason())
	if err != nil {
		return result.Result{}, fmt.Errorf("%w: %q", dresult.ErrUnrecognizedStatus, head.GetReason())
	}
	if st.IsSuccess() {
		return result.Result{}, fmt.Errorf("%w: success status %s in error details", dresult.ErrInvalidFormat, st)
	}

	if st == result.StatusInvalid {
		var verrs []result.ValidationError
		for i, fv := range br.GetFieldViolations() {
			verrs = append(verrs, result.ValidationError{
				Identifier:   fv.GetField(),
				ErrorCode:    fv.GetReason(),
				ErrorMessage: fv.GetDescription(),
				Severity:     result.Severity(head.GetMetadata()[metaSeverity+strconv.Itoa(i)]),
			})
		}
		return result.Invalid(verrs...), nil
	}
	return result.Of(st, "", errs, nil), nil
}

// FromError extracts a result from an error returned by a gRPC call.
// It reports false when err does not carry a gRPC status.
func FromError(err error) (result.Result, bool) {
	s, ok := status.FromError(err)
	if !ok || err == nil {
		return result.Result{}, false
	}
	r, ferr := FromStatus(s)
	if ferr != nil {
		return result.Result{}, false
	}
	return r, true
}

// statusOfCode classifies a foreign gRPC code. Foreign statuses carry no
// structured validation data, so InvalidArgument lands on StatusError.
func statusOfCode(c codes.Code) result.Status {
	switch c {
	case codes.Unauthenticated:
		return result.StatusUnauthorized
	case codes.PermissionDenied:
		return result.StatusForbidden
	case codes.NotFound:
		return result.StatusNotFound
	case codes.Aborted, codes.AlreadyExists:
		return result.StatusConflict
	case codes.Internal, codes.DataLoss:
		return result.StatusCriticalError
	case codes.Unavailable:
		return result.StatusUnavailable
	default:
		return result.StatusError
	}
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that turns
// handler errors carrying an outcome (apis.OutcomeError) or a domain error
// (dresult.Error) into gRPC status errors resolved via m. Each converted
// failure is logged at the level of its outcome. Other errors pass through.
func UnaryServerInterceptor(m apis.Mapper, logger *slog.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		o, ok := outcomeOf(err)
		if !ok {
			return nil, err
		}

		method := ""
		if info != nil {
			method = info.FullMethod
		}
		lvl, lerr := adapter.LogLevel(o)
		attrs := []slog.Attr{
			slog.String("method", method),
			slog.String("status", o.Status().String()),
			slog.String("snapshot", adapter.Snapshot(o)),
		}
		if lerr != nil {
			attrs = append(attrs, slog.String("error", lerr.Error()))
		}
		logger.LogAttrs(ctx, lvl, "grpc request failed", attrs...)

		st, serr := ToStatus(m, o)
		if serr != nil {
			return nil, status.Error(codes.Internal, serr.Error())
		}
		if st == nil {
			return resp, nil
		}
		return nil, st.Err()
	}
}

func outcomeOf(err error) (result.Outcome, bool) {
	if o, ok := adapter.FromError(err); ok {
		return o, true
	}
	var de dresult.Error
	if errors.As(err, &de) {
		r, cerr := de.ToErrorResult()
		if cerr != nil {
			return nil, false
		}
		return r, true
	}
	return nil, false
}
