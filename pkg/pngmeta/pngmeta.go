// Package pngmeta extracts tEXt/zTXt metadata keys from a PNG byte stream.
// image/png decodes pixels but discards ancillary text chunks, so embedded
// workflow documents (the way ComfyUI round-trips a generation's graph
// through the image that produced it) need a small hand-rolled chunk
// reader instead.
package pngmeta

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrNotPNG is returned when the input does not start with the PNG
	// signature.
	ErrNotPNG = errors.New("not a PNG file")
	// ErrTruncated is returned when a chunk header or body runs past the
	// end of the input.
	ErrTruncated = errors.New("truncated PNG chunk")
	// ErrKeyNotFound is returned by Lookup when none of the requested keys
	// are present.
	ErrKeyNotFound = errors.New("metadata key not found")
)

var signature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// ReadTextChunks walks every tEXt and zTXt chunk in r and returns the
// keyword → text map. Chunk order is preserved only insofar as a later
// chunk with the same keyword overwrites an earlier one, matching how a
// PNG writer that re-embeds metadata would expect readers to behave.
func ReadTextChunks(r io.Reader) (map[string]string, error) {
	sig := make([]byte, len(signature))
	if _, err := io.ReadFull(r, sig); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotPNG, err)
	}
	if !bytes.Equal(sig, signature) {
		return nil, ErrNotPNG
	}

	texts := make(map[string]string)
	header := make([]byte, 8)
	for {
		if _, err := io.ReadFull(r, header); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
		}
		length := binary.BigEndian.Uint32(header[:4])
		chunkType := string(header[4:8])

		data := make([]byte, length)
		if _, err := io.ReadFull(r, data); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
		}
		// crc (4 bytes) trailing the chunk; not verified since a corrupt
		// crc with intact length/data still yields a usable text chunk.
		crc := make([]byte, 4)
		if _, err := io.ReadFull(r, crc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
		}

		switch chunkType {
		case "tEXt":
			keyword, text, ok := splitNulTerminated(data)
			if ok {
				texts[keyword] = text
			}
		case "zTXt":
			idx := bytes.IndexByte(data, 0)
			if idx >= 0 && idx+1 < len(data) {
				keyword := string(data[:idx])
				compressed := data[idx+2:] // data[idx+1] is the compression method, always 0
				if text, err := inflateLatin1(compressed); err == nil {
					texts[keyword] = text
				}
			}
		case "IEND":
			return texts, nil
		}
	}
	return texts, nil
}

// Lookup extracts the first of keys present among a PNG's text chunks.
func Lookup(r io.Reader, keys ...string) (string, error) {
	texts, err := ReadTextChunks(r)
	if err != nil {
		return "", err
	}
	for _, key := range keys {
		if text, ok := texts[key]; ok {
			return text, nil
		}
	}
	return "", fmt.Errorf("%w: %v", ErrKeyNotFound, keys)
}

func splitNulTerminated(data []byte) (keyword, rest string, ok bool) {
	idx := bytes.IndexByte(data, 0)
	if idx < 0 {
		return "", "", false
	}
	return string(data[:idx]), string(data[idx+1:]), true
}

func inflateLatin1(compressed []byte) (string, error) {
	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return "", err
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

