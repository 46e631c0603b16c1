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

package blob

import (
	"errors"
	"fmt"
)

// ErrEmptyBlob returned by Decode together with an empty blob when the buffer
// is well formed but has no valid songs
var ErrEmptyBlob = errors.New("Blob has no valid songs")

// ErrTruncatedPayload returned when a valid slot declares more bytes than the buffer holds
type ErrTruncatedPayload struct {
	Slot      int
	Size      uint32
	Remaining uint64
}

func (e ErrTruncatedPayload) Error() string {
	return fmt.Sprintf("Payload of song %d is truncated: size %d, remaining %d bytes", e.Slot, e.Size, e.Remaining)
}

// ErrOutOfRange returned when a song index is not less than the number of songs
type ErrOutOfRange struct {
	Index int
	Count int
}

func (e ErrOutOfRange) Error() string {
	return fmt.Sprintf("Song index %d is out of range, blob has %d songs", e.Index, e.Count)
}

// ErrPayloadTooLarge returned when a song payload does not fit the 32-bit size field
type ErrPayloadTooLarge struct {
	Slot int
	Size int
}

func (e ErrPayloadTooLarge) Error() string {
	return fmt.Sprintf("Payload of song %d is too large: %d bytes", e.Slot, e.Size)
}
