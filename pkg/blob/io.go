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
	"fmt"
	"io"
	"os"

	"github.com/vvvflip/go-vvvflip/pkg/log"
)

// FromReader reads r to the end and decodes the result
func FromReader(r io.Reader) (*Blob, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("Error while reading blob: %w", err)
	}
	return Decode(data)
}

// FromPath reads and decodes the blob file at path
func FromPath(path string) (*Blob, error) {
	file, err := os.Open(path)
	if err != nil {
		log.Error("Error while opening file: %s", path)
		return nil, err
	}
	defer file.Close()
	return FromReader(file)
}

// WriteTo encodes the blob and writes it to w in one call
func (b *Blob) WriteTo(w io.Writer) (int64, error) {
	data, err := b.Encode()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	if err != nil {
		return int64(n), fmt.Errorf("Error while writing blob: %w", err)
	}
	return int64(n), nil
}

// ToPath writes the blob to a file at path, replacing any existing file.
// The blob is encoded before the file is touched.
func (b *Blob) ToPath(path string) error {
	data, err := b.Encode()
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		log.Error("Error while creating file: %s", path)
		return err
	}
	if _, err := file.Write(data); err != nil {
		file.Close()
		return fmt.Errorf("Error while writing blob: %w", err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
