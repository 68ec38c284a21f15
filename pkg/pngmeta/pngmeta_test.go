package pngmeta

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"errors"
	"testing"
)

func chunk(chunkType string, data []byte) []byte {
	var buf bytes.Buffer
	length := make([]byte, 4)
	binary.BigEndian.PutUint32(length, uint32(len(data)))
	buf.Write(length)
	buf.WriteString(chunkType)
	buf.Write(data)
	buf.Write([]byte{0, 0, 0, 0}) // crc, unverified by the reader
	return buf.Bytes()
}

func textChunk(keyword, text string) []byte {
	data := append([]byte(keyword), 0)
	data = append(data, []byte(text)...)
	return chunk("tEXt", data)
}

func zTextChunk(t *testing.T, keyword, text string) []byte {
	t.Helper()
	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	if _, err := zw.Write([]byte(text)); err != nil {
		t.Fatalf("zlib write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zlib close: %v", err)
	}

	data := append([]byte(keyword), 0, 0) // keyword NUL compression-method
	data = append(data, compressed.Bytes()...)
	return chunk("zTXt", data)
}

func buildPNG(chunks ...[]byte) []byte {
	var buf bytes.Buffer
	buf.Write(signature)
	for _, c := range chunks {
		buf.Write(c)
	}
	buf.Write(chunk("IEND", nil))
	return buf.Bytes()
}

func TestReadTextChunks_ExtractsPlainText(t *testing.T) {
	png := buildPNG(textChunk("prompt", `{"1": {"class_type": "KSampler"}}`))

	texts, err := ReadTextChunks(bytes.NewReader(png))
	if err != nil {
		t.Fatalf("ReadTextChunks: %v", err)
	}
	if texts["prompt"] != `{"1": {"class_type": "KSampler"}}` {
		t.Fatalf("prompt = %q", texts["prompt"])
	}
}

func TestReadTextChunks_ExtractsCompressedText(t *testing.T) {
	png := buildPNG(zTextChunk(t, "workflow", `{"2": {"class_type": "SaveImage"}}`))

	texts, err := ReadTextChunks(bytes.NewReader(png))
	if err != nil {
		t.Fatalf("ReadTextChunks: %v", err)
	}
	if texts["workflow"] != `{"2": {"class_type": "SaveImage"}}` {
		t.Fatalf("workflow = %q", texts["workflow"])
	}
}

func TestReadTextChunks_RejectsNonPNG(t *testing.T) {
	_, err := ReadTextChunks(bytes.NewReader([]byte("not a png")))
	if !errors.Is(err, ErrNotPNG) {
		t.Fatalf("expected ErrNotPNG, got %v", err)
	}
}

func TestLookup_FirstKeyWins(t *testing.T) {
	png := buildPNG(
		textChunk("prompt", "prompt-doc"),
		textChunk("workflow", "workflow-doc"),
	)

	text, err := Lookup(bytes.NewReader(png), "prompt", "workflow")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if text != "prompt-doc" {
		t.Fatalf("Lookup = %q, want prompt-doc", text)
	}
}

func TestLookup_FallsBackToSecondKey(t *testing.T) {
	png := buildPNG(textChunk("workflow", "workflow-doc"))

	text, err := Lookup(bytes.NewReader(png), "prompt", "workflow")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if text != "workflow-doc" {
		t.Fatalf("Lookup = %q, want workflow-doc", text)
	}
}

func TestLookup_NoMatchingKey(t *testing.T) {
	png := buildPNG(textChunk("other", "value"))

	_, err := Lookup(bytes.NewReader(png), "prompt", "workflow")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
}
