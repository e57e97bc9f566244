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

package adapter

import (
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/result"
)

const unknown = result.Status(99)

func verr(id, code, msg string) result.ValidationError {
	return result.ValidationError{Identifier: id, ErrorCode: code, ErrorMessage: msg, Severity: result.SeverityError}
}

func typedOf(st result.Status, errs []string, verrs []result.ValidationError) result.Typed[int] {
	return result.Lift[int](result.Of(st, "", errs, verrs))
}

func TestToResult_Success(t *testing.T) {
	r, err := ToResult(result.ValueWithMessage(5, "fine"))
	require.NoError(t, err)
	assert.Equal(t, result.StatusOk, r.Status())
	assert.Equal(t, "fine", r.SuccessMessage())

	r, err = ToResult(result.CreatedValue("id", "made"))
	require.NoError(t, err)
	assert.Equal(t, result.StatusCreated, r.Status())
	assert.Equal(t, "made", r.SuccessMessage())

	r, err = ToResult(result.Lift[int](result.NoContent()))
	require.NoError(t, err)
	assert.Equal(t, result.StatusNoContent, r.Status())
}

func TestToResult_FailuresPreserved(t *testing.T) {
	for _, st := range result.Statuses() {
		if st.IsSuccess() {
			continue
		}
		t.Run(st.String(), func(t *testing.T) {
			var in result.Typed[int]
			if st == result.StatusInvalid {
				in = typedOf(st, nil, []result.ValidationError{verr("A", "1", "m1")})
			} else {
				in = typedOf(st, []string{"X.Y¬boom", "second"}, nil)
			}
			got, err := ToResult(in)
			require.NoError(t, err)
			assert.Equal(t, st, got.Status())
			assert.Equal(t, in.Errors(), got.Errors())
			assert.Equal(t, in.ValidationErrors(), got.ValidationErrors())
		})
	}
}

func TestToResult_Unrecognized(t *testing.T) {
	_, err := ToResult(typedOf(unknown, []string{"x"}, nil))
	require.ErrorIs(t, err, dresult.ErrUnrecognizedStatus)
}

func TestConvert(t *testing.T) {
	in := result.Lift[string](result.Unavailable("Db.Down¬primary unreachable"))
	out, err := Convert[string, int](in)
	require.NoError(t, err)
	assert.Equal(t, result.StatusUnavailable, out.Status())
	assert.Equal(t, []string{"Db.Down¬primary unreachable"}, out.Errors())
	assert.Zero(t, out.Value())

	inv := result.Lift[string](result.Invalid(verr("A", "1", "m")))
	outInv, err := Convert[string, bool](inv)
	require.NoError(t, err)
	assert.Equal(t, inv.ValidationErrors(), outInv.ValidationErrors())

	for _, s := range []result.Typed[string]{
		result.Value("x"),
		result.CreatedValue("x", ""),
		result.Lift[string](result.NoContent()),
	} {
		_, err := Convert[string, int](s)
		require.ErrorIs(t, err, dresult.ErrInvalidOperation, s.Status().String())
	}

	_, err = Convert[int, int](typedOf(unknown, nil, nil))
	require.ErrorIs(t, err, dresult.ErrUnrecognizedStatus)
}

func TestAppendValidationErrors_Identity(t *testing.T) {
	got, err := AppendValidationErrors(result.Success(), result.Value(1))
	require.NoError(t, err)
	assert.Equal(t, result.StatusOk, got.Status())
	assert.Nil(t, got.ValidationErrors())
}

func TestAppendValidationErrors_Accumulates(t *testing.T) {
	first := result.Lift[int](result.Invalid(verr("A", "1", "m1")))
	second := result.Lift[int](result.Invalid(verr("B", "2", "m2")))

	agg, err := AppendValidationErrors(result.Success(), first)
	require.NoError(t, err)
	agg, err = AppendValidationErrors(agg, result.Value(0))
	require.NoError(t, err)
	agg, err = AppendValidationErrors(agg, second)
	require.NoError(t, err)

	assert.Equal(t, result.StatusInvalid, agg.Status())
	assert.Equal(t, []result.ValidationError{verr("A", "1", "m1"), verr("B", "2", "m2")}, agg.ValidationErrors())

	// Duplicates are kept.
	agg, err = AppendValidationErrors(agg, first)
	require.NoError(t, err)
	assert.Len(t, agg.ValidationErrors(), 3)
}

func TestAppendValidationErrors_Rejects(t *testing.T) {
	invalid := result.Lift[int](result.Invalid(verr("A", "1", "m1")))
	aggs := []result.Result{result.Success(), result.Invalid(verr("Z", "0", "z")), result.Error("E.1¬e")}

	for _, st := range result.Statuses() {
		if st == result.StatusOk || st == result.StatusInvalid {
			continue
		}
		next := typedOf(st, []string{"E.1¬e"}, nil)
		for _, agg := range aggs {
			_, err := AppendValidationErrors(agg, next)
			require.ErrorIs(t, err, dresult.ErrInvalidState, "next=%s agg=%s", st, agg.Status())
		}
	}

	for _, next := range []result.Typed[int]{result.Value(1), invalid, typedOf(result.StatusError, []string{"x"}, nil)} {
		_, err := AppendValidationErrors(result.Error("E.1¬e"), next)
		require.ErrorIs(t, err, dresult.ErrInvalidState, "next=%s", next.Status())
	}

	_, err := AppendValidationErrors(result.Conflict("C.1¬c"), invalid)
	require.ErrorIs(t, err, dresult.ErrInvalidState)
}

func TestAggregateValidation(t *testing.T) {
	got, err := AggregateValidation[int]()
	require.NoError(t, err)
	assert.Equal(t, result.StatusOk, got.Status())

	got, err = AggregateValidation(
		result.Value(1),
		result.Lift[int](result.Invalid(verr("A", "1", "m1"))),
		result.Value(2),
		result.Lift[int](result.Invalid(verr("B", "2", "m2"))),
	)
	require.NoError(t, err)
	assert.Equal(t, "A.1¬m1; B.2¬m2", Error(got))

	_, err = AggregateValidation(result.Value(1), typedOf(result.StatusCriticalError, []string{"x"}, nil))
	require.ErrorIs(t, err, dresult.ErrInvalidState)
	assert.Contains(t, err.Error(), "aggregate step 1")
}

func TestError_Rendering(t *testing.T) {
	assert.Equal(t, "A.1¬m1; B.2¬m2", Error(result.Invalid(verr("A", "1", "m1"), verr("B", "2", "m2"))))
	assert.Equal(t, "X.Y¬a; plain", Error(result.Error("X.Y¬a", "plain")))
	assert.Equal(t, "", Error(result.Success()))
	assert.Equal(t, "first; I.C¬v", Error(result.Of(result.StatusError, "", []string{"first"}, []result.ValidationError{verr("I", "C", "v")})))
}

func TestSnapshot(t *testing.T) {
	tests := []struct {
		name string
		in   result.Outcome
		want string
	}{
		{"ok", result.SuccessWithMessage("saved"), "SUCCESS: saved"},
		{"ok empty", result.Success(), "SUCCESS: "},
		{"created", result.Created("new"), "SUCCESS: new"},
		{"typed", result.ValueWithMessage(1, "v"), "SUCCESS: v"},
		{"not found", result.NotFound("Order.NotFound¬No such order"), "NotFound: Order.NotFound¬No such order"},
		{"invalid", result.Invalid(verr("A", "1", "m1")), "Invalid: A.1¬m1"},
		{"unknown", result.Of(unknown, "", []string{"x"}, nil), "Status(99): x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Snapshot(tt.in))
		})
	}
}

func TestLogLevel_Total(t *testing.T) {
	want := map[result.Status]slog.Level{
		result.StatusOk:            slog.LevelInfo,
		result.StatusCreated:       slog.LevelInfo,
		result.StatusNoContent:     slog.LevelInfo,
		result.StatusInvalid:       slog.LevelWarn,
		result.StatusUnauthorized:  slog.LevelWarn,
		result.StatusForbidden:     slog.LevelWarn,
		result.StatusNotFound:      slog.LevelWarn,
		result.StatusConflict:      slog.LevelWarn,
		result.StatusError:         slog.LevelWarn,
		result.StatusCriticalError: slog.LevelError,
		result.StatusUnavailable:   slog.LevelError,
	}
	require.Len(t, want, len(result.Statuses()))
	for _, st := range result.Statuses() {
		got, err := LogLevel(result.Of(st, "", nil, nil))
		require.NoError(t, err)
		assert.Equal(t, want[st], got, st.String())
	}

	_, err := LogLevel(result.Of(unknown, "", nil, nil))
	require.ErrorIs(t, err, dresult.ErrUnrecognizedStatus)
}

func TestErrorCodeAndMessage(t *testing.T) {
	r := result.Forbidden("Acl.Denied¬not yours")
	c, err := ErrorCode(r)
	require.NoError(t, err)
	assert.Equal(t, "Acl.Denied", c)
	m, err := ErrorMessage(r)
	require.NoError(t, err)
	assert.Equal(t, "not yours", m)

	inv := result.Invalid(verr("Customer", "Email", "required"))
	c, err = ErrorCode(inv)
	require.NoError(t, err)
	assert.Equal(t, "Customer.Email", c)

	_, err = ErrorCode(result.Success())
	require.ErrorIs(t, err, dresult.ErrInvalidOperation)
	_, err = ErrorMessage(result.Error("no separator"))
	require.ErrorIs(t, err, dresult.ErrInvalidFormat)
}

func TestIsFailure(t *testing.T) {
	assert.False(t, IsFailure(result.Success()))
	assert.False(t, IsFailure(result.Value(1)))
	assert.True(t, IsFailure(result.NotFound()))
	assert.True(t, IsFailure(result.Lift[int](result.Invalid())))
}

func TestAsError(t *testing.T) {
	assert.NoError(t, AsError(result.Success()))
	assert.NoError(t, AsError(nil))

	r := result.Conflict("Order.Version¬stale")
	err := AsError(r)
	require.Error(t, err)
	assert.Equal(t, "Conflict: Order.Version¬stale", err.Error())

	wrapped := fmt.Errorf("save: %w", err)
	got, ok := FromError(wrapped)
	require.True(t, ok)
	assert.Equal(t, result.StatusConflict, got.Status())

	var oe apis.OutcomeError
	assert.True(t, errors.As(wrapped, &oe))

	_, ok = FromError(errors.New("plain"))
	assert.False(t, ok)
}

func TestToView(t *testing.T) {
	assert.Equal(t, apis.ErrorView{}, ToView(result.Success()))

	v := ToView(result.Invalid(verr("A", "1", "m1"), verr("B", "2", "m2")))
	assert.Equal(t, "Invalid", v.Status)
	assert.Equal(t, "A.1", v.Code)
	assert.Equal(t, "m1", v.Message)
	assert.Equal(t, []apis.Detail{
		{Identifier: "A", Code: "1", Message: "m1", Severity: "Error"},
		{Identifier: "B", Code: "2", Message: "m2", Severity: "Error"},
	}, v.Details)

	v = ToView(result.Error("opaque"))
	assert.Equal(t, "Error", v.Status)
	assert.Empty(t, v.Code)
	assert.Equal(t, []string{"opaque"}, v.Errors)
}

func TestToDescriptor(t *testing.T) {
	d := ToDescriptor(result.Unavailable("Db.Down¬gone"), apis.Status{HTTP: 503, GRPC: 14})
	assert.Equal(t, apis.ErrorDescriptor{
		Status:      "Unavailable",
		Code:        "Db.Down",
		Description: "gone",
		Level:       "ERROR",
		HTTPStatus:  503,
		GRPCCode:    14,
	}, d)

	assert.Equal(t, "INFO", ToDescriptor(result.Success(), apis.Status{HTTP: 200}).Level)
	assert.Empty(t, ToDescriptor(result.Of(unknown, "", nil, nil), apis.Status{}).Level)
}
