/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package layers

import (
	"fmt"
)

// ErrTruncatedHeader returned when a buffer is too short to hold a song header
// record or the whole header table
type ErrTruncatedHeader struct {
	Length int
	Need   int
}

func (e ErrTruncatedHeader) Error() string {
	return fmt.Sprintf("Header is truncated: got %d bytes, need %d", e.Length, e.Need)
}

// ErrTooManyHeaders returned when a header table is asked to serialize more slots than it has
type ErrTooManyHeaders struct {
	Number int
}

func (e ErrTooManyHeaders) Error() string {
	return fmt.Sprintf("Header table holds at most %d songs, got %d", MaxSongs, e.Number)
}
