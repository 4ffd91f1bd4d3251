// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/golang/snappy"
)

// Encoder defines encoders; e.g. gob or json
type Encoder interface {
	Encode(e interface{}) error
}

// Decoder defines decoders; e.g. gob or json
type Decoder interface {
	Decode(e interface{}) error
}

// GetEncoder returns a new encoder
func GetEncoder(w goio.Writer, enctype string) Encoder {
	if enctype == "json" {
		return json.NewEncoder(w)
	}
	return gob.NewEncoder(w)
}

// GetDecoder returns a new decoder
func GetDecoder(r goio.Reader, enctype string) Decoder {
	if enctype == "json" {
		return json.NewDecoder(r)
	}
	return gob.NewDecoder(r)
}

// SumPath returns the path of the summary file
//  Note: compressed files get the ".sz" extension appended
func SumPath(dir, fnkey, enctype string, compress bool) string {
	fn := io.Sf("%s_sum.%s", fnkey, enctype)
	if compress {
		fn += ".sz"
	}
	return filepath.Join(dir, fn)
}

// TablePath returns the path of the intrusion curve table
func TablePath(dir, fnkey string) string {
	return filepath.Join(dir, fnkey+"_curve.dat")
}

// saveFile writes buf to a file; optionally compressed with snappy
func saveFile(filename string, buf *bytes.Buffer, compress, verbose bool) (err error) {
	fil, err := os.Create(filename)
	if err != nil {
		return
	}
	defer func() {
		if e := fil.Close(); err == nil {
			err = e
		}
	}()
	b := buf.Bytes()
	if compress {
		b = snappy.Encode(nil, b)
	}
	if _, err = fil.Write(b); err != nil {
		return
	}
	if verbose {
		io.Pfblue2("file <%s> written\n", filename)
	}
	return
}

// readFile reads a file; optionally compressed with snappy
func readFile(filename string, compress bool) (b []byte, err error) {
	b, err = os.ReadFile(filename)
	if err != nil {
		return
	}
	if compress {
		b, err = snappy.Decode(nil, b)
		if err != nil {
			return nil, chk.Err("cannot decompress file <%s>:\n%v", filename, err)
		}
	}
	return
}
