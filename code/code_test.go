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

package code

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantID  string
		wantSub string
		wantErr bool
	}{
		{"two parts", "Order.NotFound", "Order", "NotFound", false},
		{"extra parts ignored", "A.B.C", "A", "B", false},
		{"no delimiter", "Order", "", "", true},
		{"empty", "", "", "", true},
		{"empty identifier", ".NotFound", "", "", true},
		{"empty sub-code", "Order.", "", "", true},
		{"lenient characters", "Order Line.Not Found", "Order Line", "Not Found", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, sub, err := Split(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrCodeInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantSub, sub)
		})
	}
}

func TestJoin_InverseOfSplit(t *testing.T) {
	id, sub, err := Split(Join("Customer", "Missing"))
	require.NoError(t, err)
	assert.Equal(t, "Customer", id)
	assert.Equal(t, "Missing", sub)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Code
		wantErr bool
	}{
		{"simple", "Order.NotFound", "Order.NotFound", false},
		{"trimmed", "  Order.NotFound  ", "Order.NotFound", false},
		{"dash and underscore", "order-line.not_found", "order-line.not_found", false},
		{"three segments", "A.B.C", Empty, true},
		{"one segment", "Order", Empty, true},
		{"space inside", "Order.Not Found", Empty, true},
		{"separator inside", "Order.Not¬Found", Empty, true},
		{"too long", "A." + strings.Repeat("b", MaxLength), Empty, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrCodeInvalid)
				assert.Equal(t, Empty, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, Code("Order.NotFound"), MustParse("Order.NotFound"))
	assert.Panics(t, func() { MustParse("nope") })
}

func TestCode_Accessors(t *testing.T) {
	c := MustParse("Payment.Declined")
	assert.Equal(t, "Payment", c.Identifier())
	assert.Equal(t, "Declined", c.SubCode())
	assert.Equal(t, "Payment.Declined", c.String())

	assert.Empty(t, Empty.Identifier())
	assert.Empty(t, Empty.SubCode())
}

func TestValidSegment(t *testing.T) {
	assert.True(t, ValidSegment("Order"))
	assert.True(t, ValidSegment("not_found-2"))
	assert.False(t, ValidSegment(""))
	assert.False(t, ValidSegment("a.b"))
	assert.False(t, ValidSegment("*"))
}

func TestCode_TextRoundTrip(t *testing.T) {
	type doc struct {
		Code Code `json:"code"`
	}

	b, err := json.Marshal(doc{Code: MustParse("User.Locked")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":"User.Locked"}`, string(b))

	var got doc
	require.NoError(t, json.Unmarshal([]byte(`{"code":" User.Locked "}`), &got))
	assert.Equal(t, Code("User.Locked"), got.Code)

	_, err = json.Marshal(doc{Code: Code("bad")})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrCodeInvalid)

	require.ErrorIs(t, json.Unmarshal([]byte(`{"code":"bad"}`), &got), ErrCodeInvalid)
}
