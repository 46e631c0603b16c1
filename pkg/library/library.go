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

// Package library archives blobs in a bbolt database. Unlike the blob file itself
// it keeps song names, filenames and notes. Payloads are stored once per digest.
package library

import (
	_ "crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"
	digest "github.com/opencontainers/go-digest"
	"go.etcd.io/bbolt"
	"sigs.k8s.io/yaml"

	"github.com/vvvflip/go-vvvflip/pkg/blob"
	"github.com/vvvflip/go-vvvflip/pkg/log"
)

const (
	BucketPrefix  = "blob_"
	PayloadBucket = "payloads"
	OpenTimeout   = time.Second
)

// first byte of every stored payload
const (
	payloadRaw  byte = 0x00
	payloadZstd byte = 0x01
)

// SongRecord describes one song of an archived blob
type SongRecord struct {
	Index    int           `json:"index"`
	Name     string        `json:"name,omitempty"`
	Filename string        `json:"filename,omitempty"`
	Notes    string        `json:"notes,omitempty"`
	Digest   digest.Digest `json:"digest"`
	Size     int           `json:"size"`
}

type Library struct {
	DB       *bbolt.DB
	compress bool
	encoder  *zstd.Encoder
	decoder  *zstd.Decoder
}

// Open opens or creates the library database at path.
// With compress set, newly stored payloads are zstd compressed. Reading handles both.
func Open(path string, compress bool) (*Library, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: OpenTimeout})
	if err != nil {
		return nil, err
	}
	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(PayloadBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1))
	if err != nil {
		db.Close()
		return nil, err
	}
	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		encoder.Close()
		db.Close()
		return nil, err
	}
	return &Library{
		DB:       db,
		compress: compress,
		encoder:  encoder,
		decoder:  decoder,
	}, nil
}

// Close ...
func (l *Library) Close() error {
	l.decoder.Close()
	l.encoder.Close()
	return l.DB.Close()
}

func BucketName(name string) []byte {
	return []byte(fmt.Sprintf("%s%s", BucketPrefix, name))
}

func indexKey(index int) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(index))
	return b
}

func (l *Library) pack(data []byte) []byte {
	if l.compress {
		return l.encoder.EncodeAll(data, []byte{payloadZstd})
	}
	return append([]byte{payloadRaw}, data...)
}

func (l *Library) unpack(stored []byte) ([]byte, error) {
	if len(stored) == 0 {
		return nil, errors.New("Stored payload has no encoding marker")
	}
	switch stored[0] {
	case payloadRaw:
		return append([]byte{}, stored[1:]...), nil
	case payloadZstd:
		return l.decoder.DecodeAll(stored[1:], nil)
	default:
		return nil, fmt.Errorf("Unknown payload encoding: 0x%02x", stored[0])
	}
}

func decodeRecord(data []byte) (*SongRecord, error) {
	record := &SongRecord{}
	if err := yaml.Unmarshal(data, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Import archives b under name, replacing any blob archived under the same name
func (l *Library) Import(name string, b *blob.Blob) error {
	log.Debug("Importing blob %s: %d songs", name, b.Len())
	return l.DB.Update(func(tx *bbolt.Tx) error {
		if tx.Bucket(BucketName(name)) != nil {
			if err := tx.DeleteBucket(BucketName(name)); err != nil {
				return err
			}
		}
		bucket, err := tx.CreateBucket(BucketName(name))
		if err != nil {
			return err
		}
		payloads := tx.Bucket([]byte(PayloadBucket))
		for index, song := range b.Songs() {
			data := song.Data()
			dgst := digest.FromBytes(data)
			if payloads.Get([]byte(dgst)) == nil {
				if err := payloads.Put([]byte(dgst), l.pack(data)); err != nil {
					return err
				}
			}
			recordBytes, err := yaml.Marshal(&SongRecord{
				Index:    index,
				Name:     song.Name(),
				Filename: song.Filename(),
				Notes:    song.Notes(),
				Digest:   dgst,
				Size:     len(data),
			})
			if err != nil {
				return err
			}
			if err := bucket.Put(indexKey(index), recordBytes); err != nil {
				return err
			}
		}
		return prune(tx)
	})
}

// Export rebuilds an archived blob, payloads are checked against their digests
func (l *Library) Export(name string) (*blob.Blob, error) {
	log.Debug("Exporting blob %s", name)
	b := blob.NewBlob()
	if err := l.DB.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(BucketName(name))
		if bucket == nil {
			return ErrBlobNotFound{Name: name}
		}
		payloads := tx.Bucket([]byte(PayloadBucket))
		return bucket.ForEach(func(_, v []byte) error {
			record, err := decodeRecord(v)
			if err != nil {
				return err
			}
			if err := record.Digest.Validate(); err != nil {
				return err
			}
			stored := payloads.Get([]byte(record.Digest))
			if stored == nil {
				return ErrMissingPayload{Digest: record.Digest}
			}
			data, err := l.unpack(stored)
			if err != nil {
				return err
			}
			verifier := record.Digest.Verifier()
			verifier.Write(data)
			if !verifier.Verified() {
				return ErrDigestMismatch{Name: name, Index: record.Index, Expected: record.Digest}
			}
			song := b.AddSong(data)
			song.SetName(record.Name)
			song.SetFilename(record.Filename)
			song.SetNotes(record.Notes)
			return nil
		})
	}); err != nil {
		return nil, err
	}
	return b, nil
}

// Names returns the names of all archived blobs
func (l *Library) Names() ([]string, error) {
	var names []string
	if err := l.DB.View(func(tx *bbolt.Tx) error {
		return tx.ForEach(func(bucketName []byte, _ *bbolt.Bucket) error {
			if strings.HasPrefix(string(bucketName), BucketPrefix) {
				names = append(names, strings.TrimPrefix(string(bucketName), BucketPrefix))
			}
			return nil
		})
	}); err != nil {
		return nil, err
	}
	return names, nil
}

// Songs returns the song records of an archived blob in slot order
func (l *Library) Songs(name string) ([]*SongRecord, error) {
	var records []*SongRecord
	if err := l.DB.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(BucketName(name))
		if bucket == nil {
			return ErrBlobNotFound{Name: name}
		}
		return bucket.ForEach(func(_, v []byte) error {
			record, err := decodeRecord(v)
			if err != nil {
				log.Error("Error while unmarshalling SongRecord %s", err)
				return err
			}
			records = append(records, record)
			return nil
		})
	}); err != nil {
		return nil, err
	}
	return records, nil
}

// SetNotes updates the notes of one archived song
func (l *Library) SetNotes(name string, index int, notes string) error {
	log.Debug("Setting notes: blob: %s song: %d", name, index)
	return l.DB.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(BucketName(name))
		if bucket == nil {
			return ErrBlobNotFound{Name: name}
		}
		if index < 0 {
			return ErrSongNotFound{Name: name, Index: index}
		}
		v := bucket.Get(indexKey(index))
		if v == nil {
			return ErrSongNotFound{Name: name, Index: index}
		}
		record, err := decodeRecord(v)
		if err != nil {
			return err
		}
		record.Notes = notes
		recordBytes, err := yaml.Marshal(record)
		if err != nil {
			return err
		}
		return bucket.Put(indexKey(index), recordBytes)
	})
}

// Delete removes an archived blob and the payloads no other blob uses
func (l *Library) Delete(name string) error {
	log.Debug("Deleting blob %s", name)
	return l.DB.Update(func(tx *bbolt.Tx) error {
		if tx.Bucket(BucketName(name)) == nil {
			return ErrBlobNotFound{Name: name}
		}
		if err := tx.DeleteBucket(BucketName(name)); err != nil {
			return err
		}
		return prune(tx)
	})
}

// PayloadCount returns the number of distinct payloads stored
func (l *Library) PayloadCount() (int, error) {
	var count int
	err := l.DB.View(func(tx *bbolt.Tx) error {
		count = tx.Bucket([]byte(PayloadBucket)).Stats().KeyN
		return nil
	})
	return count, err
}

// prune deletes payloads that no song record references
func prune(tx *bbolt.Tx) error {
	used := make(map[string]bool)
	if err := tx.ForEach(func(bucketName []byte, b *bbolt.Bucket) error {
		if !strings.HasPrefix(string(bucketName), BucketPrefix) {
			return nil
		}
		return b.ForEach(func(_, v []byte) error {
			record, err := decodeRecord(v)
			if err != nil {
				return err
			}
			used[string(record.Digest)] = true
			return nil
		})
	}); err != nil {
		return err
	}

	payloads := tx.Bucket([]byte(PayloadBucket))
	var unused [][]byte
	if err := payloads.ForEach(func(k, _ []byte) error {
		if !used[string(k)] {
			unused = append(unused, append([]byte{}, k...))
		}
		return nil
	}); err != nil {
		return err
	}
	for _, k := range unused {
		log.Debug("Pruning payload %s", string(k))
		if err := payloads.Delete(k); err != nil {
			return err
		}
	}
	return nil
}
