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

package library

import (
	"fmt"

	digest "github.com/opencontainers/go-digest"
)

// ErrBlobNotFound returned when no blob is archived under a name
type ErrBlobNotFound struct {
	Name string
}

func (e ErrBlobNotFound) Error() string {
	return fmt.Sprintf("Blob not found in library: %s", e.Name)
}

// ErrSongNotFound returned when an archived blob has no song at an index
type ErrSongNotFound struct {
	Name  string
	Index int
}

func (e ErrSongNotFound) Error() string {
	return fmt.Sprintf("Song %d not found in blob %s", e.Index, e.Name)
}

// ErrMissingPayload returned when a song record points to a payload that is not stored
type ErrMissingPayload struct {
	Digest digest.Digest
}

func (e ErrMissingPayload) Error() string {
	return fmt.Sprintf("Payload not found in library: %s", e.Digest)
}

// ErrDigestMismatch returned when a stored payload does not hash to its recorded digest
type ErrDigestMismatch struct {
	Name     string
	Index    int
	Expected digest.Digest
}

func (e ErrDigestMismatch) Error() string {
	return fmt.Sprintf("Payload of song %d in blob %s does not match digest %s", e.Index, e.Name, e.Expected)
}
