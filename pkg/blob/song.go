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

// Song is one audio track of a blob. The payload is opaque.
// Name, filename and notes are never written to the blob itself.
type Song struct {
	name     string
	filename string
	notes    string
	data     []byte
}

// NewSong creates a detached song holding a copy of data
func NewSong(data []byte) *Song {
	s := &Song{}
	s.SetData(data)
	return s
}

func (s *Song) Name() string {
	return s.name
}

func (s *Song) SetName(name string) {
	s.name = name
}

func (s *Song) Filename() string {
	return s.filename
}

func (s *Song) SetFilename(filename string) {
	s.filename = filename
}

func (s *Song) Notes() string {
	return s.notes
}

func (s *Song) SetNotes(notes string) {
	s.notes = notes
}

// Data returns a copy of the payload
func (s *Song) Data() []byte {
	return append([]byte{}, s.data...)
}

// SetData replaces the payload with a copy of data
func (s *Song) SetData(data []byte) {
	s.data = append([]byte{}, data...)
}

// Size returns the payload length in bytes
func (s *Song) Size() int {
	return len(s.data)
}

// Clone returns a detached copy of the song
func (s *Song) Clone() *Song {
	c := *s
	c.data = s.Data()
	return &c
}
