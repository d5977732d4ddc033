// Copyright (C) 2019-2025 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package protocol

import (
	"errors"
	"fmt"
	"sync"

	"github.com/algorand/go-codec/codec"
)

// ErrInvalidObject is returned when a stored record cannot be decoded.
var ErrInvalidObject = errors.New("stored record is invalid")

// CodecHandle is the msgpack handle for every record the actor persists.
// Encoding is canonical; decoding fails on fields or array elements the
// target type does not have.
var CodecHandle = newRecordHandle()

func newRecordHandle() *codec.MsgpackHandle {
	h := new(codec.MsgpackHandle)
	h.ErrorIfNoField = true
	h.ErrorIfNoArrayExpand = true
	h.Canonical = true
	h.RecursiveEmptyCheck = true
	h.WriteExt = true
	h.PositiveIntUnsigned = true
	h.Raw = true
	return h
}

// recordBufSize covers admin lists and asset configurations of typical size.
const recordBufSize = 128

type recordEncoder struct {
	enc *codec.Encoder
	buf []byte
}

var recordEncoders = sync.Pool{
	New: func() interface{} {
		return &recordEncoder{enc: codec.NewEncoderBytes(nil, CodecHandle)}
	},
}

// EncodeRecord returns the msgpack encoding of obj.
func EncodeRecord(obj interface{}) []byte {
	re := recordEncoders.Get().(*recordEncoder)
	re.buf = make([]byte, recordBufSize)
	re.enc.ResetBytes(&re.buf)
	re.enc.MustEncode(obj)
	out := re.buf
	re.buf = nil
	recordEncoders.Put(re)
	return out
}

// DecodeRecord decodes b into the value objptr points to. Any failure,
// including a panic inside the codec, is reported as ErrInvalidObject.
func DecodeRecord(b []byte, objptr interface{}) (err error) {
	defer func() {
		if x := recover(); x != nil {
			err = fmt.Errorf("%w: %v", ErrInvalidObject, x)
		}
	}()
	if err := codec.NewDecoderBytes(b, CodecHandle).Decode(objptr); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidObject, err)
	}
	return nil
}
