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

package result

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestStatus_StringAndParse(t *testing.T) {
	for _, st := range Statuses() {
		t.Run(st.String(), func(t *testing.T) {
			assert.True(t, st.Known())
			got, err := ParseStatus(st.String())
			require.NoError(t, err)
			assert.Equal(t, st, got)
		})
	}

	assert.Len(t, Statuses(), 11)
	assert.Equal(t, "Status(42)", Status(42).String())
	assert.False(t, Status(-1).Known())

	_, err := ParseStatus("notfound")
	require.ErrorIs(t, err, ErrStatusUnknown)
}

func TestStatus_IsSuccess(t *testing.T) {
	success := map[Status]bool{StatusOk: true, StatusCreated: true, StatusNoContent: true}
	for _, st := range Statuses() {
		assert.Equal(t, success[st], st.IsSuccess(), st.String())
	}
	assert.False(t, Status(99).IsSuccess())
}

func TestStatus_Text(t *testing.T) {
	type doc struct {
		Status Status `json:"status" yaml:"status"`
	}

	b, err := json.Marshal(doc{Status: StatusConflict})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"Conflict"}`, string(b))

	var got doc
	require.NoError(t, yaml.Unmarshal([]byte("status: Unavailable\n"), &got))
	assert.Equal(t, StatusUnavailable, got.Status)

	_, err = json.Marshal(doc{Status: Status(77)})
	require.ErrorIs(t, err, ErrStatusUnknown)
}

func TestFactories(t *testing.T) {
	tests := []struct {
		name string
		r    Result
		want Status
	}{
		{"Success", Success(), StatusOk},
		{"SuccessWithMessage", SuccessWithMessage("done"), StatusOk},
		{"Created", Created("made"), StatusCreated},
		{"NoContent", NoContent(), StatusNoContent},
		{"Error", Error("e"), StatusError},
		{"Forbidden", Forbidden("e"), StatusForbidden},
		{"Unauthorized", Unauthorized("e"), StatusUnauthorized},
		{"NotFound", NotFound("e"), StatusNotFound},
		{"Conflict", Conflict("e"), StatusConflict},
		{"CriticalError", CriticalError("e"), StatusCriticalError},
		{"Unavailable", Unavailable("e"), StatusUnavailable},
		{"Invalid", Invalid(ValidationError{Identifier: "A"}), StatusInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.Status())
			assert.Equal(t, tt.want.IsSuccess(), tt.r.IsSuccess())
		})
	}

	assert.Equal(t, "done", SuccessWithMessage("done").SuccessMessage())
	assert.Equal(t, []string{"a", "b"}, NotFound("a", "b").Errors())
	assert.Nil(t, NotFound().Errors())
	assert.Nil(t, Success().ValidationErrors())
}

func TestResult_IsImmutable(t *testing.T) {
	errs := []string{"A.B¬m"}
	r := Error(errs...)
	errs[0] = "changed"
	assert.Equal(t, []string{"A.B¬m"}, r.Errors())

	out := r.Errors()
	out[0] = "changed"
	assert.Equal(t, []string{"A.B¬m"}, r.Errors())

	verrs := []ValidationError{{Identifier: "A", ErrorCode: "1"}}
	inv := Invalid(verrs...)
	verrs[0].Identifier = "Z"
	got := inv.ValidationErrors()
	got[0].ErrorCode = "9"
	assert.Equal(t, []ValidationError{{Identifier: "A", ErrorCode: "1"}}, inv.ValidationErrors())
}

func TestOf(t *testing.T) {
	r := Of(StatusConflict, "m", []string{"x"}, []ValidationError{{Identifier: "I"}})
	assert.Equal(t, StatusConflict, r.Status())
	assert.Equal(t, "m", r.SuccessMessage())
	assert.Equal(t, []string{"x"}, r.Errors())
	assert.Len(t, r.ValidationErrors(), 1)

	assert.Equal(t, Status(42), Of(Status(42), "", nil, nil).Status())
}

func TestTyped(t *testing.T) {
	v := Value(42)
	assert.True(t, v.IsSuccess())
	assert.Equal(t, 42, v.Value())
	assert.Empty(t, v.SuccessMessage())

	m := ValueWithMessage("x", "hello")
	assert.Equal(t, "x", m.Value())
	assert.Equal(t, "hello", m.SuccessMessage())

	c := CreatedValue(7, "made")
	assert.Equal(t, StatusCreated, c.Status())
	assert.Equal(t, 7, c.Value())
}

func TestLift(t *testing.T) {
	src := Invalid(ValidationError{Identifier: "A", ErrorCode: "1", ErrorMessage: "m", Severity: SeverityWarning})
	got := Lift[int](src)
	assert.Equal(t, StatusInvalid, got.Status())
	assert.Equal(t, src.ValidationErrors(), got.ValidationErrors())
	assert.Zero(t, got.Value())

	nf := Lift[string](NotFound("X.Y¬gone"))
	assert.Equal(t, StatusNotFound, nf.Status())
	assert.Equal(t, []string{"X.Y¬gone"}, nf.Errors())
}

func TestOutcome_Interface(t *testing.T) {
	var outs []Outcome
	outs = append(outs, Success(), Value(1), Lift[bool](Conflict("c")))
	assert.Equal(t, StatusOk, outs[0].Status())
	assert.Equal(t, StatusOk, outs[1].Status())
	assert.Equal(t, StatusConflict, outs[2].Status())
}
