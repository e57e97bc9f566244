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

package dresult

import (
	"errors"
	"strings"
)

// ExpandedMessage renders an error chain on a single line, one link per
// segment, joined by " || ".
//
// Each link contributes only the text it adds on top of the error it wraps,
// so fmt.Errorf("load: %w", io.EOF) expands to "load || EOF". Links that add
// nothing are skipped. Only the errors.Unwrap chain is followed; errors that
// wrap several errors contribute their own text in full.
func ExpandedMessage(err error) string {
	var segs []string
	for cur := err; cur != nil; cur = errors.Unwrap(cur) {
		msg := cur.Error()
		if next := errors.Unwrap(cur); next != nil {
			msg = strings.TrimSuffix(msg, next.Error())
			msg = strings.TrimRight(msg, ": ")
		}
		if msg != "" {
			segs = append(segs, msg)
		}
	}
	return strings.Join(segs, " || ")
}
