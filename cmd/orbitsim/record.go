// cmd/orbitsim/record.go
// Copyright(c) 2024-2026 orbit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"os"

	"github.com/uaspilot/orbit/nav"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// Frame is one guidance cycle's inputs and outputs.
type Frame struct {
	T           float32
	Longitude   float32
	Latitude    float32
	Track       float32
	Groundspeed float32
	Output      nav.Output
}

type recorder struct {
	Frames []Frame
}

func newRecorder() *recorder {
	return &recorder{}
}

func (r *recorder) Append(ts float32, state nav.State, out nav.Output) {
	r.Frames = append(r.Frames, Frame{
		T:           ts,
		Longitude:   state.Position.Longitude(),
		Latitude:    state.Position.Latitude(),
		Track:       state.Track,
		Groundspeed: state.Groundspeed,
		Output:      out,
	})
}

// WriteFile saves the recording as zstd-compressed msgpack.
func (r *recorder) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	zw, err := zstd.NewWriter(f)
	if err != nil {
		f.Close()
		return err
	}

	enc := msgpack.NewEncoder(zw)
	if err := enc.Encode(r.Frames); err != nil {
		zw.Close()
		f.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
