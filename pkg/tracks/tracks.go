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

// Package tracks holds the table of the 16 songs shipped with the game.
// The table is only used to name header paths on encode and to recognise
// known paths on decode.
package tracks

import (
	"strings"
)

const (
	// Count is the number of known tracks
	Count = 16
	// PathPrefix and PathSuffix wrap a filename stem into the path stored in a song header
	PathPrefix = "data/music/"
	PathSuffix = ".ogg"
)

var names = [Count]string{
	"Level Complete",
	"Pushing Onwards",
	"Positive Force",
	"Potential For Anything",
	"Passion For Exploring",
	"Pause",
	"Presenting VVVVVV",
	"Plenary",
	"Predestined Fate",
	"ecroF evitisoP",
	"Popular Potpourri",
	"Pipe Dream",
	"Pressure Cooker",
	"Paced Energy",
	"Piercing The Sky",
	"Predestined Fate Remix",
}

var filenames = [Count]string{
	"0levelcomplete",
	"1pushingonwards",
	"2positiveforce",
	"3potentialforanything",
	"4passionforexploring",
	"5intermission",
	"6presentingvvvvvv",
	"7gamecomplete",
	"8predestinedfate",
	"9positiveforcereversed",
	"10popularpotpourri",
	"11pipedream",
	"12pressurecooker",
	"13pacedenergy",
	"14piercingthesky",
	"predestinedfatefinallevel",
}

// Track is one entry of the known track table
type Track struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	Filename string `json:"filename"`
	Path     string `json:"path"`
}

func known(index int) bool {
	return index >= 0 && index < Count
}

// Name returns the display name of the track in the given slot or "" if the slot is unknown
func Name(index int) string {
	if !known(index) {
		return ""
	}
	return names[index]
}

// Filename returns the filename stem of the track in the given slot or "" if the slot is unknown
func Filename(index int) string {
	if !known(index) {
		return ""
	}
	return filenames[index]
}

// Path returns the relative path the game uses for the track in the given slot
// or "" if the slot is unknown
func Path(index int) string {
	if !known(index) {
		return ""
	}
	return PathPrefix + filenames[index] + PathSuffix
}

// Get returns the full table entry for a slot
func Get(index int) (Track, bool) {
	if !known(index) {
		return Track{}, false
	}
	return Track{
		Index:    index,
		Name:     names[index],
		Filename: filenames[index],
		Path:     Path(index),
	}, true
}

// Lookup finds the slot of a known track by its header path
func Lookup(path string) (int, bool) {
	if !strings.HasPrefix(path, PathPrefix) || !strings.HasSuffix(path, PathSuffix) {
		return -1, false
	}
	stem := strings.TrimSuffix(strings.TrimPrefix(path, PathPrefix), PathSuffix)
	for i, filename := range filenames {
		if filename == stem {
			return i, true
		}
	}
	return -1, false
}

// All returns a copy of the whole table
func All() []Track {
	result := make([]Track, 0, Count)
	for i := 0; i < Count; i++ {
		track, _ := Get(i)
		result = append(result, track)
	}
	return result
}
