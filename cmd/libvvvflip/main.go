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

// Command libvvvflip is the C ABI of the blob codec.
//
//	go build -buildmode=c-shared -o libvvvflip.so ./cmd/libvvvflip
//
// Blobs and songs are passed around as uint64_t handles, 0 means failure.
// Buffers returned by the library must be released with vvvflip_free.
// song_getData returns NULL both for an invalid handle and for an empty
// payload, use song_getSize to tell them apart.
package main

/*
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"github.com/vvvflip/go-vvvflip/pkg/blob"
	"github.com/vvvflip/go-vvvflip/pkg/handle"
	"github.com/vvvflip/go-vvvflip/pkg/log"
)

var registry = handle.NewRegistry()

func main() {}

func view(p *C.uint8_t, size C.size_t) []byte {
	return bytesAt(unsafe.Pointer(p), uint64(size))
}

func cBool(ok bool) C.int {
	return C.int(boolFlag(ok))
}

//export vvvflip_free
func vvvflip_free(p unsafe.Pointer) {
	C.free(p)
}

//export song_getData
func song_getData(song C.uint64_t) *C.uint8_t {
	data, err := registry.SongData(handle.Handle(song))
	if err != nil || len(data) == 0 {
		return nil
	}
	return (*C.uint8_t)(C.CBytes(data))
}

//export song_getSize
func song_getSize(song C.uint64_t) C.size_t {
	return C.size_t(registry.SongSize(handle.Handle(song)))
}

//export song_setData
func song_setData(song C.uint64_t, p *C.uint8_t, size C.size_t) C.int {
	return cBool(registry.SetSongData(handle.Handle(song), view(p, size)) == nil)
}

//export blob_create
func blob_create() C.uint64_t {
	return C.uint64_t(registry.NewBlob())
}

//export blob_destroy
func blob_destroy(b C.uint64_t) {
	registry.Destroy(handle.Handle(b))
}

//export blob_fromBuffer
func blob_fromBuffer(p *C.uint8_t, size C.size_t) C.uint64_t {
	decoded, err := blob.Decode(view(p, size))
	if err != nil {
		log.Error("Error while decoding blob: %s", err)
		return 0
	}
	return C.uint64_t(registry.Register(decoded))
}

//export blob_fromPath
func blob_fromPath(path *C.char) C.uint64_t {
	decoded, err := blob.FromPath(C.GoString(path))
	if err != nil {
		log.Error("Error while loading blob: %s", err)
		return 0
	}
	return C.uint64_t(registry.Register(decoded))
}

//export blob_toBuffer
func blob_toBuffer(b C.uint64_t, size *C.size_t) *C.uint8_t {
	source, err := registry.Blob(handle.Handle(b))
	if err != nil {
		return nil
	}
	data, err := source.Encode()
	if err != nil {
		log.Error("Error while encoding blob: %s", err)
		return nil
	}
	if size != nil {
		*size = C.size_t(len(data))
	}
	return (*C.uint8_t)(C.CBytes(data))
}

//export blob_toPath
func blob_toPath(b C.uint64_t, path *C.char) C.int {
	source, err := registry.Blob(handle.Handle(b))
	if err != nil {
		return 0
	}
	if err := source.ToPath(C.GoString(path)); err != nil {
		log.Error("Error while saving blob: %s", err)
		return 0
	}
	return 1
}

//export blob_addSong
func blob_addSong(b C.uint64_t, p *C.uint8_t, size C.size_t) C.uint64_t {
	song, err := registry.AddSong(handle.Handle(b), view(p, size))
	if err != nil {
		return 0
	}
	return C.uint64_t(song)
}

//export blob_removeSong
func blob_removeSong(b C.uint64_t, index C.uint32_t) C.int {
	return cBool(registry.RemoveSong(handle.Handle(b), int(index)))
}

//export blob_getSong
func blob_getSong(b C.uint64_t, index C.uint32_t) C.uint64_t {
	song, err := registry.Song(handle.Handle(b), int(index))
	if err != nil {
		return 0
	}
	return C.uint64_t(song)
}

//export blob_getSize
func blob_getSize(b C.uint64_t) C.size_t {
	return C.size_t(registry.Len(handle.Handle(b)))
}
